package dao

import "context"

type ContractorDAO interface {
	// FindByID 根据ID查找合作方
	FindByID(ctx context.Context, id int64) (Contractor, error)
}

type ResellerDAO interface {
	// GetSetting 获取经销商通知配置
	GetSetting(ctx context.Context, resellerID int64) (ResellerSetting, error)
	// FindEmployeeEmails 查找拥有指定权限的员工邮箱
	FindEmployeeEmails(ctx context.Context, resellerID int64, permit string) ([]string, error)
}
