package email

import (
	"context"
	"crypto/tls"
	"fmt"
	"time"

	"github.com/gotomicro/ego/core/elog"
	"github.com/olegtuta/refactoring/internal/domain"
	"github.com/olegtuta/refactoring/internal/errs"
	"github.com/olegtuta/refactoring/internal/service/provider"
	"github.com/wneessen/go-mail"
)

const defaultTimeout = 30 * time.Second

// SMTPConfig SMTP 服务器配置
type SMTPConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	TLS      bool   `yaml:"tls"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	// From 消息里没有发件人时使用
	From string `yaml:"from"`
}

// mailer *mail.Client 的子集
type mailer interface {
	DialAndSendWithContext(ctx context.Context, messages ...*mail.Msg) error
}

// smtpProvider 通过 SMTP 发送邮件
type smtpProvider struct {
	client mailer
	from   string
	logger *elog.Component
}

func (p *smtpProvider) Send(ctx context.Context, msg domain.Message) (domain.SendResponse, error) {
	m, err := p.newMsg(msg)
	if err != nil {
		return domain.SendResponse{}, fmt.Errorf("%w: %w", errs.ErrSendNotificationFailed, err)
	}
	if err = p.client.DialAndSendWithContext(ctx, m); err != nil {
		return domain.SendResponse{}, fmt.Errorf("%w: %w", errs.ErrSendNotificationFailed, err)
	}
	p.logger.Debug("邮件已投递", elog.Any("receivers", msg.Receivers))
	return domain.SendResponse{Status: domain.SendStatusSucceeded}, nil
}

func (p *smtpProvider) newMsg(msg domain.Message) (*mail.Msg, error) {
	from := msg.From
	if from == "" {
		from = p.from
	}
	if len(msg.Receivers) == 0 {
		return nil, fmt.Errorf("%w: 收件人不能为空", errs.ErrInvalidParameter)
	}

	m := mail.NewMsg()
	if err := m.From(from); err != nil {
		return nil, fmt.Errorf("%w: from = %q: %w", errs.ErrInvalidParameter, from, err)
	}
	if err := m.To(msg.Receivers...); err != nil {
		return nil, fmt.Errorf("%w: to = %v: %w", errs.ErrInvalidParameter, msg.Receivers, err)
	}
	m.Subject(msg.Subject)
	m.SetBodyString(mail.TypeTextPlain, msg.Body)
	return m, nil
}

// NewSMTPProvider 创建 SMTP 邮件供应商
func NewSMTPProvider(cfg SMTPConfig) (provider.Provider, error) {
	opts := []mail.Option{
		mail.WithPort(cfg.Port),
		mail.WithTimeout(defaultTimeout),
	}
	if cfg.Username != "" && cfg.Password != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthLogin),
			mail.WithUsername(cfg.Username),
			mail.WithPassword(cfg.Password),
		)
	}
	if cfg.TLS {
		opts = append(opts,
			mail.WithTLSConfig(&tls.Config{ServerName: cfg.Host, MinVersion: tls.VersionTLS12}),
			mail.WithTLSPolicy(mail.TLSMandatory),
		)
	} else {
		opts = append(opts, mail.WithTLSPolicy(mail.NoTLS))
	}

	client, err := mail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, err
	}
	return newSMTPProvider(client, cfg.From), nil
}

func newSMTPProvider(client mailer, from string) *smtpProvider {
	return &smtpProvider{
		client: client,
		from:   from,
		logger: elog.DefaultLogger,
	}
}
