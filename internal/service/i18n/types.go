package i18n

import (
	"context"

	"github.com/olegtuta/refactoring/internal/domain"
)

// 消息键
const (
	KeyNewPositionAdded         = "NewPositionAdded"
	KeyPositionStatusHasChanged = "PositionStatusHasChanged"
	KeyEmployeeEmailSubject     = "complaintEmployeeEmailSubject"
	KeyEmployeeEmailBody        = "complaintEmployeeEmailBody"
	KeyClientEmailSubject       = "complaintClientEmailSubject"
	KeyClientEmailBody          = "complaintClientEmailBody"
)

// DefaultLocale 经销商未配置语言时使用
const DefaultLocale = "en"

// Renderer 按经销商的语言渲染消息
//
//go:generate mockgen -source=./types.go -destination=./mocks/renderer.mock.go -package=i18nmocks Renderer
type Renderer interface {
	// Render 渲染 key 对应的消息，消息中的 #FIELD# 用 data 中同名字段替换
	Render(ctx context.Context, key string, data domain.TemplateData, resellerID int64) (string, error)
}

// Catalog locale -> key -> 消息
type Catalog map[string]map[string]string
