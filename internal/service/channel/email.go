package channel

import (
	"context"

	"github.com/gotomicro/ego/core/elog"
	"github.com/hashicorp/go-multierror"
	"github.com/olegtuta/refactoring/internal/domain"
	"github.com/olegtuta/refactoring/internal/service/provider"
)

type emailChannel struct {
	baseChannel
}

// Send 每封邮件单独走一次供应商选择，失败的邮件不影响后面的邮件
func (c *emailChannel) Send(ctx context.Context, req domain.EmailRequest) error {
	var result *multierror.Error
	for _, m := range req.Messages {
		msg := domain.Message{
			Channel:    domain.ChannelEmail,
			ResellerID: req.ResellerID,
			ClientID:   req.ClientID,
			Event:      req.Event,
			Receivers:  []string{m.To},
			From:       m.From,
			Subject:    m.Subject,
			Body:       m.Body,
		}
		if _, err := c.send(ctx, msg); err != nil {
			result = multierror.Append(result, err)
			continue
		}
		c.logger.Debug("邮件发送成功",
			elog.Int64("resellerID", req.ResellerID),
			elog.Int64("clientID", req.ClientID),
			elog.String("event", req.Event.String()),
			elog.Any("difference", req.Difference))
	}
	return result.ErrorOrNil()
}

func NewEmailChannel(builder provider.SelectorBuilder) EmailSender {
	return &emailChannel{
		baseChannel: baseChannel{
			builder: builder,
			logger:  elog.DefaultLogger,
		},
	}
}
