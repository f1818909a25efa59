package ioc

import (
	"strings"

	"github.com/gotomicro/ego/core/econf"
	"github.com/olegtuta/refactoring/internal/repository"
	"github.com/olegtuta/refactoring/internal/service/i18n"
)

var messageKeys = []string{
	i18n.KeyNewPositionAdded,
	i18n.KeyPositionStatusHasChanged,
	i18n.KeyEmployeeEmailSubject,
	i18n.KeyEmployeeEmailBody,
	i18n.KeyClientEmailSubject,
	i18n.KeyClientEmailBody,
}

// InitRenderer 文案只来自配置，运行期只读
func InitRenderer(resellers repository.ResellerRepository) i18n.Renderer {
	type Config struct {
		DefaultLocale string       `yaml:"defaultLocale"`
		Messages      i18n.Catalog `yaml:"messages"`
	}
	var cfg Config
	if err := econf.UnmarshalKey("i18n", &cfg); err != nil {
		panic(err)
	}
	if cfg.DefaultLocale == "" {
		cfg.DefaultLocale = i18n.DefaultLocale
	}
	catalog := normalizeCatalog(cfg.Messages)
	if len(catalog[cfg.DefaultLocale]) == 0 {
		panic("i18n 缺少默认语言的文案: " + cfg.DefaultLocale)
	}
	return i18n.NewCatalogRenderer(resellers, catalog, cfg.DefaultLocale)
}

// normalizeCatalog 配置层可能改写 key 的大小写，这里按已知的消息键还原
func normalizeCatalog(raw i18n.Catalog) i18n.Catalog {
	catalog := make(i18n.Catalog, len(raw))
	for locale, messages := range raw {
		normalized := make(map[string]string, len(messages))
		for key, msg := range messages {
			normalized[canonicalKey(key)] = msg
		}
		catalog[locale] = normalized
	}
	return catalog
}

func canonicalKey(key string) string {
	for _, k := range messageKeys {
		if strings.EqualFold(k, key) {
			return k
		}
	}
	return key
}
