package local

import (
	"context"
	"errors"

	"github.com/olegtuta/refactoring/internal/domain"
	"github.com/olegtuta/refactoring/internal/repository/cache"
	ca "github.com/patrickmn/go-cache"
)

var _ cache.ResellerSettingCache = (*Cache)(nil)

// Cache 经销商配置的本地缓存
type Cache struct {
	localCache *ca.Cache
}

func (c *Cache) Get(_ context.Context, resellerID int64) (domain.ResellerSetting, error) {
	v, ok := c.localCache.Get(cache.ResellerSettingKey(resellerID))
	if !ok {
		return domain.ResellerSetting{}, cache.ErrKeyNotFound
	}
	vv, ok := v.(domain.ResellerSetting)
	if !ok {
		return domain.ResellerSetting{}, errors.New("数据类型不正确")
	}
	return vv, nil
}

func (c *Cache) Set(_ context.Context, setting domain.ResellerSetting) error {
	c.localCache.Set(cache.ResellerSettingKey(setting.ResellerID), setting, cache.DefaultExpiredTime)
	return nil
}

func (c *Cache) Del(_ context.Context, resellerID int64) error {
	c.localCache.Delete(cache.ResellerSettingKey(resellerID))
	return nil
}

func NewLocalCache(localCache *ca.Cache) *Cache {
	return &Cache{
		localCache: localCache,
	}
}
