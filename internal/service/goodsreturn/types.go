package goodsreturn

import (
	"context"

	"github.com/olegtuta/refactoring/internal/domain"
)

// PermitGoodsReturn 能收到退货邮件的员工权限
const PermitGoodsReturn = "tsGoodsReturn"

// Service 退货通知服务
//
//go:generate mockgen -source=./types.go -destination=./mocks/service.mock.go -package=goodsreturnmocks Service
type Service interface {
	// Notify 处理一次退货事件。校验、查询、模版数据出错时返回错误且不发送任何通知；
	// 发送阶段的失败只记录日志，体现在 DispatchResult 里
	Notify(ctx context.Context, evt domain.ReturnEvent) (domain.DispatchResult, error)
}

// ContractorResolver 查询退货事件涉及的合作方
type ContractorResolver interface {
	ResolveSeller(ctx context.Context, id int64) (domain.Contractor, error)
	// ResolveClient 客户必须是 CUSTOMER 类型且属于 resellerID，否则返回 errs.ErrContractorNotFound
	ResolveClient(ctx context.Context, id, resellerID int64) (domain.Contractor, error)
	// ResolveEmployee 创建人和处理专家都用它
	ResolveEmployee(ctx context.Context, id int64) (domain.Contractor, error)
}
