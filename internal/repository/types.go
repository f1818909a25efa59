package repository

import (
	"context"

	"github.com/olegtuta/refactoring/internal/domain"
)

// ContractorRepository 合作方仓储接口，每次请求都实时查询，不做缓存
//
//go:generate mockgen -source=./types.go -destination=./mocks/repository.mock.go -package=repomocks ContractorRepository,ResellerRepository
type ContractorRepository interface {
	// FindByID 根据ID查找合作方，不存在时返回 errs.ErrContractorNotFound
	FindByID(ctx context.Context, id int64) (domain.Contractor, error)
}

// ResellerRepository 经销商配置仓储接口
type ResellerRepository interface {
	// GetSetting 获取经销商通知配置，没有配置时返回只有 ResellerID 的零值
	GetSetting(ctx context.Context, resellerID int64) (domain.ResellerSetting, error)
	// FindEmployeeEmails 获取拥有权限的员工邮箱
	FindEmployeeEmails(ctx context.Context, resellerID int64, permit string) ([]string, error)
}
