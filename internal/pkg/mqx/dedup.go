package mqx

import (
	"context"
	"fmt"

	"github.com/ecodeclub/mq-api"
	"github.com/gotomicro/ego/core/elog"
	"github.com/olegtuta/refactoring/internal/pkg/idempotent"
)

var _ mq.Consumer = (*DedupConsumer)(nil)

// DedupConsumer 跳过重复投递的消息，按 topic、分区和 offset 判断
type DedupConsumer struct {
	consumer mq.Consumer
	idem     idempotent.Service
	logger   *elog.Component
}

func NewDedupConsumer(consumer mq.Consumer, idem idempotent.Service) *DedupConsumer {
	return &DedupConsumer{
		consumer: consumer,
		idem:     idem,
		logger:   elog.DefaultLogger,
	}
}

func (c *DedupConsumer) Consume(ctx context.Context) (*mq.Message, error) {
	for {
		msg, err := c.consumer.Consume(ctx)
		if err != nil {
			return nil, err
		}
		key := messageKey(msg)
		exists, err := c.idem.Exists(ctx, key)
		if err != nil {
			// 幂等服务不可用时放行
			c.logger.Warn("消息幂等判断失败", elog.FieldErr(err), elog.String("key", key))
			return msg, nil
		}
		if !exists {
			return msg, nil
		}
		c.logger.Info("跳过重复消息", elog.String("key", key))
	}
}

func (c *DedupConsumer) ConsumeChan(ctx context.Context) (<-chan *mq.Message, error) {
	ch := make(chan *mq.Message)
	go func() {
		defer close(ch)
		backoff := NewBackoff(DefaultBackoffInitial, DefaultBackoffMax)
		for {
			msg, err := c.Consume(ctx)
			if err != nil {
				if ctx.Err() != nil || backoff.Wait(ctx) != nil {
					return
				}
				continue
			}
			backoff.Reset()
			select {
			case ch <- msg:
			case <-ctx.Done():
				return
			}
		}
	}()
	return ch, nil
}

func messageKey(msg *mq.Message) string {
	return fmt.Sprintf("%s:%d:%d", msg.Topic, msg.Partition, msg.Offset)
}
