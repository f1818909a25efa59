package idempotent

import "context"

// Service 幂等判断
//
//go:generate mockgen -source=./types.go -destination=./mocks/idempotent.mock.go -package=idempotentmocks Service
type Service interface {
	// Exists 第一次调用返回 false 并记录 key，之后在过期前都返回 true
	Exists(ctx context.Context, key string) (bool, error)
}
