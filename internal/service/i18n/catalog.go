package i18n

import (
	"context"
	"fmt"
	"strings"

	"github.com/olegtuta/refactoring/internal/domain"
	"github.com/olegtuta/refactoring/internal/errs"
	"github.com/olegtuta/refactoring/internal/repository"
)

type catalogRenderer struct {
	resellers     repository.ResellerRepository
	catalog       Catalog
	defaultLocale string
}

func (r *catalogRenderer) Render(ctx context.Context, key string, data domain.TemplateData, resellerID int64) (string, error) {
	setting, err := r.resellers.GetSetting(ctx, resellerID)
	if err != nil {
		return "", err
	}

	msg, ok := r.lookup(setting.Locale, key)
	if !ok {
		return "", fmt.Errorf("%w: locale = %s, key = %s", errs.ErrMessageNotFound, setting.Locale, key)
	}
	if len(data) == 0 {
		return msg, nil
	}

	oldnew := make([]string, 0, len(data)*2)
	for field, value := range data {
		oldnew = append(oldnew, "#"+field+"#", fmt.Sprint(value))
	}
	return strings.NewReplacer(oldnew...).Replace(msg), nil
}

// lookup 先找经销商的语言，找不到再用默认语言
func (r *catalogRenderer) lookup(locale, key string) (string, bool) {
	if locale != "" {
		if msg, ok := r.catalog[locale][key]; ok {
			return msg, true
		}
	}
	msg, ok := r.catalog[r.defaultLocale][key]
	return msg, ok
}

// NewCatalogRenderer 基于内存消息目录的渲染器，defaultLocale 为空时使用 DefaultLocale
func NewCatalogRenderer(resellers repository.ResellerRepository, catalog Catalog, defaultLocale string) Renderer {
	if defaultLocale == "" {
		defaultLocale = DefaultLocale
	}
	return &catalogRenderer{
		resellers:     resellers,
		catalog:       catalog,
		defaultLocale: defaultLocale,
	}
}
