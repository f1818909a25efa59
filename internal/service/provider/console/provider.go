package console

import (
	"context"

	"github.com/gotomicro/ego/core/elog"
	"github.com/olegtuta/refactoring/internal/domain"
)

// Provider 只把消息输出到日志，本地调试用
type Provider struct {
	logger *elog.Component
}

func NewProvider() *Provider {
	return &Provider{
		logger: elog.DefaultLogger,
	}
}

func (p *Provider) Send(_ context.Context, msg domain.Message) (domain.SendResponse, error) {
	p.logger.Info("发送通知",
		elog.String("channel", msg.Channel.String()),
		elog.Int64("resellerID", msg.ResellerID),
		elog.String("event", msg.Event.String()),
		elog.Any("receivers", msg.Receivers),
		elog.String("subject", msg.Subject),
		elog.Any("template", msg.Template))
	return domain.SendResponse{Status: domain.SendStatusSucceeded}, nil
}
