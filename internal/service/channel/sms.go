package channel

import (
	"context"

	"github.com/gotomicro/ego/core/elog"
	"github.com/olegtuta/refactoring/internal/domain"
	"github.com/olegtuta/refactoring/internal/repository"
	"github.com/olegtuta/refactoring/internal/service/provider"
)

// smsChannel 给客户发短信，手机号和短信模版都由这里自己查
type smsChannel struct {
	baseChannel
	contractors repository.ContractorRepository
	resellers   repository.ResellerRepository
}

func (c *smsChannel) Send(ctx context.Context, req domain.SMSRequest) (bool, error) {
	client, err := c.contractors.FindByID(ctx, req.ClientID)
	if err != nil {
		return false, err
	}
	if !client.HasMobile() {
		return false, nil
	}

	setting, err := c.resellers.GetSetting(ctx, req.ResellerID)
	if err != nil {
		return false, err
	}
	if setting.SMSTemplateID == "" {
		c.logger.Info("经销商没有配置短信模版，不发送短信", elog.Int64("resellerID", req.ResellerID))
		return false, nil
	}

	if req.PriorError != "" {
		c.logger.Info("客户邮件发送失败，改用短信通知",
			elog.Int64("clientID", req.ClientID),
			elog.String("emailError", req.PriorError))
	}

	params := req.TemplateData.Params()
	if name, ok := req.Difference.Name(); ok {
		params["STATUS"] = name
	}
	resp, err := c.send(ctx, domain.Message{
		Channel:    domain.ChannelSMS,
		ResellerID: req.ResellerID,
		ClientID:   req.ClientID,
		Event:      req.Event,
		Receivers:  []string{client.Mobile},
		Template: domain.SMSTemplate{
			SignName:   setting.SMSSignName,
			TemplateID: setting.SMSTemplateID,
			Params:     params,
			Values:     req.TemplateData.Values(),
		},
	})
	if err != nil {
		return false, err
	}
	return resp.Status == domain.SendStatusSucceeded, nil
}

func NewSMSChannel(builder provider.SelectorBuilder,
	contractors repository.ContractorRepository,
	resellers repository.ResellerRepository,
) SMSSender {
	return &smsChannel{
		baseChannel: baseChannel{
			builder: builder,
			logger:  elog.DefaultLogger,
		},
		contractors: contractors,
		resellers:   resellers,
	}
}
