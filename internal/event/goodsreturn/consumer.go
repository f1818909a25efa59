package goodsreturn

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ecodeclub/mq-api"
	"github.com/gotomicro/ego/core/elog"
	"github.com/olegtuta/refactoring/internal/domain"
	"github.com/olegtuta/refactoring/internal/pkg/mqx"
	goodsreturnsvc "github.com/olegtuta/refactoring/internal/service/goodsreturn"
)

var errFetchMessage = errors.New("获取消息失败")

// Consumer 从消息队列读取退货事件，每条事件单独处理
type Consumer struct {
	svc      goodsreturnsvc.Service
	consumer mq.Consumer
	logger   *elog.Component
}

// NewConsumer consumer 需要已经订阅了 EventName
func NewConsumer(svc goodsreturnsvc.Service, consumer mq.Consumer) *Consumer {
	return &Consumer{
		svc:      svc,
		consumer: consumer,
		logger:   elog.DefaultLogger,
	}
}

func (c *Consumer) Start(ctx context.Context) {
	go func() {
		backoff := mqx.NewBackoff(mqx.DefaultBackoffInitial, mqx.DefaultBackoffMax)
		for {
			err := c.Consume(ctx)
			if ctx.Err() != nil {
				c.logger.Info("退货事件消费者退出", elog.FieldErr(ctx.Err()))
				return
			}
			switch {
			case errors.Is(err, errFetchMessage):
				// 消息队列不可用，等一会儿再读
				c.logger.Error("读取退货事件失败", elog.FieldErr(err))
				_ = backoff.Wait(ctx)
			case err != nil:
				backoff.Reset()
				c.logger.Error("消费退货事件失败", elog.FieldErr(err))
			default:
				backoff.Reset()
			}
		}
	}()
}

// Consume 处理一条消息。消息格式不对时跳过，处理失败时返回错误，都不会阻塞后续消息
func (c *Consumer) Consume(ctx context.Context) error {
	msg, err := c.consumer.Consume(ctx)
	if err != nil {
		return fmt.Errorf("%w: %w", errFetchMessage, err)
	}

	var evt domain.ReturnEvent
	if err = json.Unmarshal(msg.Value, &evt); err != nil {
		c.logger.Warn("解析退货事件失败",
			elog.FieldErr(err),
			elog.String("value", string(msg.Value)))
		return nil
	}

	result, err := c.svc.Notify(ctx, evt)
	if err != nil {
		return fmt.Errorf("处理退货事件失败 resellerId = %d, complaintId = %d: %w",
			evt.ResellerID, evt.ComplaintID, err)
	}
	c.logger.Info("退货事件处理完成",
		elog.Int64("resellerID", evt.ResellerID),
		elog.Int64("complaintID", evt.ComplaintID),
		elog.Any("result", result))
	return nil
}

// Producer 上游系统和测试用来投递退货事件
type Producer struct {
	producer mq.Producer
}

func NewProducer(q mq.MQ) (*Producer, error) {
	producer, err := q.Producer(EventName)
	if err != nil {
		return nil, err
	}
	return &Producer{producer: producer}, nil
}

func (p *Producer) Produce(ctx context.Context, evt domain.ReturnEvent) error {
	if evt.ResellerID == 0 {
		return errors.New("resellerId 不能为空")
	}
	val, err := json.Marshal(evt)
	if err != nil {
		return err
	}
	_, err = p.producer.Produce(ctx, &mq.Message{Value: val})
	return err
}
