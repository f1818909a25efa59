package channel

import (
	"context"
	"fmt"

	"github.com/gotomicro/ego/core/elog"
	"github.com/olegtuta/refactoring/internal/domain"
	"github.com/olegtuta/refactoring/internal/errs"
	"github.com/olegtuta/refactoring/internal/service/provider"
)

// baseChannel 按选择器给出的顺序逐个尝试供应商，直到有一个发送成功
type baseChannel struct {
	builder provider.SelectorBuilder
	logger  *elog.Component
}

func (b *baseChannel) send(ctx context.Context, msg domain.Message) (domain.SendResponse, error) {
	selector, err := b.builder.Build()
	if err != nil {
		return domain.SendResponse{}, fmt.Errorf("%w: %w", errs.ErrSendNotificationFailed, err)
	}

	for {
		p, err1 := selector.Next(ctx, msg)
		if err1 != nil {
			// 没有可用的供应商了
			return domain.SendResponse{}, fmt.Errorf("%w: %w", errs.ErrSendNotificationFailed, err1)
		}

		resp, err2 := p.Send(ctx, msg)
		if err2 == nil {
			return resp, nil
		}
		b.logger.Warn("供应商发送失败，尝试下一个供应商",
			elog.FieldErr(err2),
			elog.String("channel", msg.Channel.String()),
			elog.Any("receivers", msg.Receivers))
	}
}
