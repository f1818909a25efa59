package dao

import (
	"context"

	"github.com/ego-component/egorm"
)

type contractorDAO struct {
	db *egorm.Component
}

func (dao *contractorDAO) FindByID(ctx context.Context, id int64) (Contractor, error) {
	var contractor Contractor
	err := dao.db.WithContext(ctx).Where("id = ?", id).First(&contractor).Error
	return contractor, err
}

func NewContractorDAO(db *egorm.Component) ContractorDAO {
	return &contractorDAO{db: db}
}

// Contractor 合作方表，经销商、客户、员工都存在这里
type Contractor struct {
	ID         int64  `gorm:"primaryKey;autoIncrement;comment:'合作方ID'"`
	Type       int    `gorm:"type:TINYINT;NOT NULL;DEFAULT:1;comment:'类型，0-客户，1-其他'"`
	Role       string `gorm:"type:ENUM('SELLER','CLIENT','EMPLOYEE');NOT NULL;comment:'角色'"`
	Name       string `gorm:"type:VARCHAR(128);NOT NULL;comment:'原始名称'"`
	FirstName  string `gorm:"type:VARCHAR(64);comment:'名'"`
	LastName   string `gorm:"type:VARCHAR(64);comment:'姓'"`
	Email      string `gorm:"type:VARCHAR(256);comment:'邮箱'"`
	Mobile     string `gorm:"type:VARCHAR(32);comment:'手机号'"`
	ResellerID int64  `gorm:"type:BIGINT;NOT NULL;index:idx_reseller_id;comment:'所属经销商ID'"`
	Ctime      int64
	Utime      int64
}

// TableName 重命名表
func (Contractor) TableName() string {
	return "contractor"
}
