package ratelimit

import (
	"context"
	"fmt"

	"github.com/gotomicro/ego/core/elog"
	"github.com/olegtuta/refactoring/internal/domain"
	"github.com/olegtuta/refactoring/internal/errs"
	"github.com/olegtuta/refactoring/internal/pkg/ratelimit"
	"github.com/olegtuta/refactoring/internal/service/provider"
)

// Provider 供应商限流装饰器，被限流时直接返回错误，由渠道切换到下一个供应商
type Provider struct {
	provider provider.Provider
	limiter  ratelimit.Limiter
	name     string
	logger   *elog.Component
}

func (p *Provider) Send(ctx context.Context, msg domain.Message) (domain.SendResponse, error) {
	key := fmt.Sprintf("%s:%s", p.name, msg.Channel)
	limited, err := p.limiter.Limit(ctx, key)
	if err != nil {
		// 限流器不可用时放行，外部服务自己也会限流
		p.logger.Warn("限流器调用失败", elog.FieldErr(err), elog.String("key", key))
	} else if limited {
		return domain.SendResponse{}, fmt.Errorf("%w: %s", errs.ErrRateLimited, key)
	}
	return p.provider.Send(ctx, msg)
}

func NewProvider(name string, p provider.Provider, limiter ratelimit.Limiter) *Provider {
	return &Provider{
		provider: p,
		limiter:  limiter,
		name:     name,
		logger:   elog.DefaultLogger,
	}
}
