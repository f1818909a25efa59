package circuitbreaker

import (
	"context"
	"fmt"

	"github.com/go-kratos/aegis/circuitbreaker"
	"github.com/olegtuta/refactoring/internal/domain"
	"github.com/olegtuta/refactoring/internal/errs"
	"github.com/olegtuta/refactoring/internal/service/provider"
)

// Provider 供应商熔断装饰器，熔断期间直接失败，由渠道切换到下一个供应商
type Provider struct {
	provider provider.Provider
	breaker  circuitbreaker.CircuitBreaker
	name     string
}

func (p *Provider) Send(ctx context.Context, msg domain.Message) (domain.SendResponse, error) {
	if err := p.breaker.Allow(); err != nil {
		p.breaker.MarkFailed()
		return domain.SendResponse{}, fmt.Errorf("%w: %s", errs.ErrCircuitOpen, p.name)
	}
	resp, err := p.provider.Send(ctx, msg)
	if err != nil {
		p.breaker.MarkFailed()
		return resp, err
	}
	p.breaker.MarkSuccess()
	return resp, nil
}

func NewProvider(name string, p provider.Provider, breaker circuitbreaker.CircuitBreaker) *Provider {
	return &Provider{
		provider: p,
		breaker:  breaker,
		name:     name,
	}
}
