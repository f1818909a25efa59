package mqx

import (
	"context"
	"time"

	"github.com/ecodeclub/ekit/retry"
)

const (
	DefaultBackoffInitial = 100 * time.Millisecond
	DefaultBackoffMax     = 5 * time.Second
	backoffMaxRetries     = 10
)

// Backoff 连续出错时逐步拉长等待时间，成功一次之后调用 Reset 从头开始
type Backoff struct {
	initial  time.Duration
	max      time.Duration
	strategy *retry.ExponentialBackoffRetryStrategy
}

func NewBackoff(initial, maxInterval time.Duration) *Backoff {
	b := &Backoff{initial: initial, max: maxInterval}
	b.Reset()
	return b
}

// Wait 等待下一个间隔，重试次数用完之后一直按最大间隔等待。ctx 结束时返回 ctx.Err()
func (b *Backoff) Wait(ctx context.Context) error {
	interval := b.max
	if b.strategy != nil {
		if next, ok := b.strategy.Next(); ok {
			interval = next
		}
	}
	timer := time.NewTimer(interval)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (b *Backoff) Reset() {
	strategy, err := retry.NewExponentialBackoffRetryStrategy(b.initial, b.max, backoffMaxRetries)
	if err != nil {
		// 参数不合法时固定按最大间隔等待
		b.strategy = nil
		return
	}
	b.strategy = strategy
}
