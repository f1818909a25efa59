package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/olegtuta/refactoring/internal/domain"
)

var ErrKeyNotFound = errors.New("key not found")

const (
	ResellerSettingPrefix = "reseller_setting"
	DefaultExpiredTime    = 10 * time.Minute
)

type ResellerSettingCache interface {
	Get(ctx context.Context, resellerID int64) (domain.ResellerSetting, error)
	Set(ctx context.Context, setting domain.ResellerSetting) error
	Del(ctx context.Context, resellerID int64) error
}

func ResellerSettingKey(resellerID int64) string {
	return fmt.Sprintf("%s:%d", ResellerSettingPrefix, resellerID)
}
