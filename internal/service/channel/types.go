package channel

import (
	"context"

	"github.com/olegtuta/refactoring/internal/domain"
)

// EmailSender 邮件客户端
//
//go:generate mockgen -source=./types.go -destination=./mocks/channel.mock.go -package=channelmocks EmailSender,SMSSender
type EmailSender interface {
	// Send 发送一批邮件，任意一封失败都返回错误
	Send(ctx context.Context, req domain.EmailRequest) error
}

// SMSSender 短信客户端
type SMSSender interface {
	// Send 给客户发短信，客户没有手机号或经销商没配置短信模版时返回 false, nil
	Send(ctx context.Context, req domain.SMSRequest) (bool, error)
}
