package goodsreturn

import (
	"context"
	"fmt"

	"github.com/olegtuta/refactoring/internal/domain"
	"github.com/olegtuta/refactoring/internal/errs"
	"github.com/olegtuta/refactoring/internal/service/i18n"
)

type differenceFormatter struct {
	renderer i18n.Renderer
}

// Format 生成本地化的变更描述。不支持的组合返回空字符串，
// 由模版数据校验在 DIFFERENCES 字段上拒绝
func (f differenceFormatter) Format(ctx context.Context, evt domain.ReturnEvent) (string, error) {
	switch {
	case evt.NotificationType == domain.NotificationTypeNew:
		return f.renderer.Render(ctx, i18n.KeyNewPositionAdded, nil, evt.ResellerID)
	case evt.NotificationType == domain.NotificationTypeChange && evt.HasDifferences():
		from, err := statusName(evt.Differences.From)
		if err != nil {
			return "", err
		}
		to, err := statusName(evt.Differences.To)
		if err != nil {
			return "", err
		}
		return f.renderer.Render(ctx, i18n.KeyPositionStatusHasChanged, domain.TemplateData{
			"FROM": from,
			"TO":   to,
		}, evt.ResellerID)
	default:
		return "", nil
	}
}

func statusName(s domain.ReturnStatus) (string, error) {
	name, ok := s.Name()
	if !ok {
		return "", fmt.Errorf("%w: %d", errs.ErrUnknownReturnStatus, int(s))
	}
	return name, nil
}
