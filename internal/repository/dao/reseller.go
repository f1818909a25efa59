package dao

import (
	"context"

	"github.com/ego-component/egorm"
)

type resellerDAO struct {
	db *egorm.Component
}

func (dao *resellerDAO) GetSetting(ctx context.Context, resellerID int64) (ResellerSetting, error) {
	var setting ResellerSetting
	err := dao.db.WithContext(ctx).Where("reseller_id = ?", resellerID).First(&setting).Error
	return setting, err
}

func (dao *resellerDAO) FindEmployeeEmails(ctx context.Context, resellerID int64, permit string) ([]string, error) {
	var emails []string
	err := dao.db.WithContext(ctx).
		Model(&Contractor{}).
		Joins("JOIN employee_permit ON employee_permit.employee_id = contractor.id").
		Where("employee_permit.reseller_id = ? AND employee_permit.permit = ? AND contractor.email <> ''", resellerID, permit).
		Order("contractor.id").
		Pluck("contractor.email", &emails).Error
	return emails, err
}

func NewResellerDAO(db *egorm.Component) ResellerDAO {
	return &resellerDAO{db: db}
}

// ResellerSetting 经销商通知配置表
type ResellerSetting struct {
	ResellerID    int64  `gorm:"primaryKey;type:BIGINT;comment:'经销商ID'"`
	Locale        string `gorm:"type:VARCHAR(16);NOT NULL;DEFAULT:'en';comment:'文案语言'"`
	EmailFrom     string `gorm:"type:VARCHAR(256);comment:'发件人邮箱'"`
	SMSSignName   string `gorm:"column:sms_sign_name;type:VARCHAR(64);comment:'短信签名'"`
	SMSTemplateID string `gorm:"column:sms_template_id;type:VARCHAR(64);comment:'退货状态短信模版ID'"`
	Ctime         int64
	Utime         int64
}

// TableName 重命名表
func (ResellerSetting) TableName() string {
	return "reseller_setting"
}

// EmployeePermit 员工权限表，决定谁能收到哪类通知
type EmployeePermit struct {
	ID         int64  `gorm:"primaryKey;autoIncrement"`
	ResellerID int64  `gorm:"type:BIGINT;NOT NULL;uniqueIndex:idx_reseller_employee_permit;comment:'经销商ID'"`
	EmployeeID int64  `gorm:"type:BIGINT;NOT NULL;uniqueIndex:idx_reseller_employee_permit;comment:'员工ID'"`
	Permit     string `gorm:"type:VARCHAR(64);NOT NULL;uniqueIndex:idx_reseller_employee_permit;comment:'权限标识，如 tsGoodsReturn'"`
	Ctime      int64
}

// TableName 重命名表
func (EmployeePermit) TableName() string {
	return "employee_permit"
}
