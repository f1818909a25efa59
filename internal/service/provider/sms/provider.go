package sms

import (
	"context"
	"fmt"
	"strings"

	"github.com/olegtuta/refactoring/internal/domain"
	"github.com/olegtuta/refactoring/internal/errs"
	"github.com/olegtuta/refactoring/internal/service/provider"
	"github.com/olegtuta/refactoring/internal/service/provider/sms/client"
)

// smsProvider SMS供应商
type smsProvider struct {
	name   string
	client client.Client
}

func (p *smsProvider) Send(ctx context.Context, msg domain.Message) (domain.SendResponse, error) {
	if msg.Template.TemplateID == "" {
		return domain.SendResponse{}, fmt.Errorf("%w: 未配置短信模版", errs.ErrSendNotificationFailed)
	}

	resp, err := p.send(ctx, client.SendReq{
		PhoneNumbers:   msg.Receivers,
		SignName:       msg.Template.SignName,
		TemplateID:     msg.Template.TemplateID,
		TemplateParam:  msg.Template.Params,
		TemplateValues: msg.Template.Values,
	})
	if err != nil {
		return domain.SendResponse{}, fmt.Errorf("%w: %w", errs.ErrSendNotificationFailed, err)
	}

	if len(resp.PhoneNumbers) == 0 {
		return domain.SendResponse{}, fmt.Errorf("%w: 供应商没有返回手机号状态, RequestID = %s", errs.ErrSendNotificationFailed, resp.RequestID)
	}
	for _, status := range resp.PhoneNumbers {
		if !strings.EqualFold(status.Code, client.OK) {
			return domain.SendResponse{}, fmt.Errorf("%w: Code = %s, Message = %s", errs.ErrSendNotificationFailed, status.Code, status.Message)
		}
	}

	return domain.SendResponse{
		Status: domain.SendStatusSucceeded,
	}, nil
}

// send 到 ctx 结束为止，客户端没有及时返回时当作失败，迟到的结果丢弃
func (p *smsProvider) send(ctx context.Context, req client.SendReq) (client.SendResp, error) {
	type result struct {
		resp client.SendResp
		err  error
	}
	ch := make(chan result, 1)
	go func() {
		resp, err := p.client.Send(ctx, req)
		ch <- result{resp: resp, err: err}
	}()

	select {
	case res := <-ch:
		return res.resp, res.err
	case <-ctx.Done():
		return client.SendResp{}, fmt.Errorf("供应商 %s 调用超时: %w", p.name, ctx.Err())
	}
}

// NewSMSProvider SMS供应商
func NewSMSProvider(name string, c client.Client) provider.Provider {
	return &smsProvider{
		name:   name,
		client: c,
	}
}
