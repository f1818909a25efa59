package tracing

import (
	"context"
	"strconv"

	"github.com/olegtuta/refactoring/internal/domain"
	"github.com/olegtuta/refactoring/internal/service/provider"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Provider 为供应商实现添加链路追踪的装饰器
type Provider struct {
	provider provider.Provider
	tracer   trace.Tracer
	name     string
}

func (p *Provider) Send(ctx context.Context, msg domain.Message) (domain.SendResponse, error) {
	ctx, span := p.tracer.Start(ctx, "Provider.Send",
		trace.WithAttributes(
			attribute.String("provider.name", p.name),
			attribute.String("message.channel", msg.Channel.String()),
			attribute.String("message.event", msg.Event.String()),
			attribute.String("message.resellerId", strconv.FormatInt(msg.ResellerID, 10)),
			attribute.Int("message.receivers", len(msg.Receivers)),
		))
	defer span.End()

	response, err := p.provider.Send(ctx, msg)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetAttributes(attribute.String("message.status", response.Status.String()))
	}
	return response, err
}

// NewProvider 创建一个新的带有链路追踪的供应商
// name 应该传入类似于 smtp, aliyun, tencent 这种名字
func NewProvider(p provider.Provider, name string) *Provider {
	return &Provider{
		provider: p,
		name:     name,
		tracer:   otel.Tracer("goods-return/provider"),
	}
}
