package ratelimit

import "golang.org/x/net/context"

// Limiter 限流器，key 一般是供应商加渠道
//
//go:generate mockgen -source=./types.go -package=limitmocks -destination=./mocks/limiter.mock.go Limiter
type Limiter interface {
	// Limit 判断是否应该限流
	Limit(ctx context.Context, key string) (bool, error)
}
