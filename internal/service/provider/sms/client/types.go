package client

import (
	"context"
	"errors"
)

// OK 供应商返回的成功码
const OK = "OK"

var (
	ErrInvalidParameter = errors.New("参数错误")
	ErrSendFailed       = errors.New("发送短信失败")
)

// Client 短信供应商客户端
//
//go:generate mockgen -source=./types.go -destination=./mocks/client.mock.go -package=smsmocks Client
type Client interface {
	// Send ctx 的 deadline 会作为请求超时传给供应商 SDK
	Send(ctx context.Context, req SendReq) (SendResp, error)
}

type SendReq struct {
	PhoneNumbers []string
	SignName     string
	TemplateID   string
	// TemplateParam 按名字替换的参数，阿里云使用
	TemplateParam map[string]string
	// TemplateValues 按位置替换的参数，腾讯云使用
	TemplateValues []string
}

type SendResp struct {
	RequestID string
	// PhoneNumbers 手机号 -> 发送状态
	PhoneNumbers map[string]SendRespStatus
}

type SendRespStatus struct {
	Code    string
	Message string
}
