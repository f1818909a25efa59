package ioc

import (
	"context"
	"time"

	"github.com/ecodeclub/ekit/retry"
	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/mq-api/memory"
	"github.com/gotomicro/ego/core/econf"
	"github.com/olegtuta/refactoring/internal/event/goodsreturn"
	"github.com/olegtuta/refactoring/internal/pkg/idempotent"
	"github.com/olegtuta/refactoring/internal/pkg/mqx"
	"github.com/redis/go-redis/v9"
)

const (
	maxInterval        = 10 * time.Second
	maxRetries         = 10
	defaultDedupExpiry = 24 * time.Hour
)

type mqConfig struct {
	// Addr 为空时使用内存队列，只适合本地调试
	Addr       string `yaml:"addr"`
	Partitions int    `yaml:"partitions"`
}

// InitEventConsumer 订阅退货事件 topic，kafka 的重复投递通过 redis 去重
func InitEventConsumer(cmd redis.Cmdable) mq.Consumer {
	var cfg mqConfig
	if err := econf.UnmarshalKey("kafka", &cfg); err != nil {
		panic(err)
	}
	if cfg.Partitions <= 0 {
		cfg.Partitions = 1
	}
	if cfg.Addr == "" {
		consumer, err := InitMemoryMQ(cfg.Partitions).Consumer(goodsreturn.EventName, goodsreturn.GroupID)
		if err != nil {
			panic(err)
		}
		return consumer
	}

	withRetry("创建 topic", func() error {
		ctx, cancel := context.WithTimeout(context.Background(), maxInterval)
		defer cancel()
		return mqx.CreateTopic(ctx, cfg.Addr, goodsreturn.EventName, cfg.Partitions)
	})
	consumer, err := mqx.NewKafkaConsumer(cfg.Addr, goodsreturn.GroupID, goodsreturn.EventName)
	if err != nil {
		panic(err)
	}
	// 重复投递判断的时间窗口
	expiry := econf.GetDuration("kafka.dedupExpiry")
	if expiry <= 0 {
		expiry = defaultDedupExpiry
	}
	return mqx.NewDedupConsumer(consumer, idempotent.NewRedisIdempotencyService(cmd, expiry))
}

func InitMemoryMQ(partitions int) mq.MQ {
	q := memory.NewMQ()
	if err := q.CreateTopic(context.Background(), goodsreturn.EventName, partitions); err != nil {
		panic(err)
	}
	return q
}

func withRetry(name string, fn func() error) {
	strategy, err := retry.NewExponentialBackoffRetryStrategy(time.Second, maxInterval, maxRetries)
	if err != nil {
		panic(err)
	}
	for {
		if err = fn(); err == nil {
			return
		}
		next, ok := strategy.Next()
		if !ok {
			panic(name + " 重试失败......: " + err.Error())
		}
		time.Sleep(next)
	}
}
