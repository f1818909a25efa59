package provider

import (
	"context"

	"github.com/olegtuta/refactoring/internal/domain"
)

// Provider 供应商接口
//
//go:generate mockgen -source=./types.go -destination=./mocks/provider.mock.go -package=providermocks Provider,Selector,SelectorBuilder
type Provider interface {
	// Send 发送消息
	Send(ctx context.Context, msg domain.Message) (domain.SendResponse, error)
}

// Selector 供应商选择器接口，每次发送都要新建
type Selector interface {
	// Next 获取下一个供应商，没有可用供应商时返回错误
	Next(ctx context.Context, msg domain.Message) (Provider, error)
}

type SelectorBuilder interface {
	// Build 构建选择器，可以在这里做一些初始化，也可以预先计算好顺序
	Build() (Selector, error)
}
