package client

import (
	"context"
	"fmt"
	"strings"

	"github.com/tencentcloud/tencentcloud-sdk-go/tencentcloud/common"
	"github.com/tencentcloud/tencentcloud-sdk-go/tencentcloud/common/profile"
	sms "github.com/tencentcloud/tencentcloud-sdk-go/tencentcloud/sms/v20210111"
)

var _ Client = (*TencentSMS)(nil)

const tencentEndpoint = "sms.tencentcloudapi.com"

// TencentSMS 腾讯云短信实现，模版参数只支持按位置替换
type TencentSMS struct {
	client *sms.Client
	appID  string
}

func (c *TencentSMS) Send(ctx context.Context, req SendReq) (SendResp, error) {
	if len(req.PhoneNumbers) == 0 {
		return SendResp{}, fmt.Errorf("%w: %v", ErrInvalidParameter, "手机号码不能为空")
	}

	request := sms.NewSendSmsRequest()
	request.PhoneNumberSet = common.StringPtrs(req.PhoneNumbers)
	request.SmsSdkAppId = common.StringPtr(c.appID)
	request.SignName = common.StringPtr(req.SignName)
	request.TemplateId = common.StringPtr(req.TemplateID)
	request.TemplateParamSet = common.StringPtrs(req.TemplateValues)
	request.SetContext(ctx)

	response, err := c.client.SendSms(request)
	if err != nil {
		return SendResp{}, fmt.Errorf("%w: %w", ErrSendFailed, err)
	}
	if response.Response == nil {
		return SendResp{}, fmt.Errorf("%w: %v", ErrSendFailed, "响应异常")
	}

	result := SendResp{
		PhoneNumbers: make(map[string]SendRespStatus, len(response.Response.SendStatusSet)),
	}
	if response.Response.RequestId != nil {
		result.RequestID = *response.Response.RequestId
	}
	for _, status := range response.Response.SendStatusSet {
		if status == nil || status.PhoneNumber == nil {
			continue
		}
		var code, message string
		if status.Code != nil {
			// 腾讯云成功码是 Ok
			code = strings.ToUpper(*status.Code)
		}
		if status.Message != nil {
			message = *status.Message
		}
		result.PhoneNumbers[strings.TrimPrefix(*status.PhoneNumber, "+86")] = SendRespStatus{
			Code:    code,
			Message: message,
		}
	}
	return result, nil
}

// NewTencentSMS 创建腾讯云短信实例
func NewTencentSMS(regionID, secretID, secretKey, appID string) (*TencentSMS, error) {
	credential := common.NewCredential(secretID, secretKey)
	cpf := profile.NewClientProfile()
	cpf.HttpProfile.Endpoint = tencentEndpoint
	client, err := sms.NewClient(credential, regionID, cpf)
	if err != nil {
		return nil, err
	}
	return &TencentSMS{client: client, appID: appID}, nil
}
