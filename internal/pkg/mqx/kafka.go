package mqx

import (
	"context"
	"errors"
	"time"

	"github.com/confluentinc/confluent-kafka-go/v2/kafka"
	"github.com/ecodeclub/mq-api"
)

const defaultPollTimeout = 100 * time.Millisecond

var _ mq.Consumer = (*KafkaConsumer)(nil)

// KafkaConsumer 把 confluent kafka 消费者适配成 mq.Consumer
type KafkaConsumer struct {
	consumer    *kafka.Consumer
	pollTimeout time.Duration
}

// NewKafkaConsumer 订阅 topic，offset 由 kafka 自动提交
func NewKafkaConsumer(addr, groupID, topic string) (*KafkaConsumer, error) {
	consumer, err := kafka.NewConsumer(&kafka.ConfigMap{
		"bootstrap.servers": addr,
		"group.id":          groupID,
		"auto.offset.reset": "earliest",
	})
	if err != nil {
		return nil, err
	}
	if err = consumer.SubscribeTopics([]string{topic}, nil); err != nil {
		_ = consumer.Close()
		return nil, err
	}
	return &KafkaConsumer{consumer: consumer, pollTimeout: defaultPollTimeout}, nil
}

// Consume 阻塞到读到一条消息或者 ctx 结束
func (c *KafkaConsumer) Consume(ctx context.Context) (*mq.Message, error) {
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		msg, err := c.consumer.ReadMessage(c.pollTimeout)
		if err != nil {
			var kErr kafka.Error
			if errors.As(err, &kErr) && kErr.Code() == kafka.ErrTimedOut {
				continue
			}
			return nil, err
		}
		return toMessage(msg), nil
	}
}

func (c *KafkaConsumer) ConsumeChan(ctx context.Context) (<-chan *mq.Message, error) {
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

func (c *KafkaConsumer) Close() error {
	return c.consumer.Close()
}

func toMessage(msg *kafka.Message) *mq.Message {
	header := make(mq.Header, len(msg.Headers))
	for _, h := range msg.Headers {
		header[h.Key] = string(h.Value)
	}
	m := &mq.Message{
		Key:    msg.Key,
		Value:  msg.Value,
		Header: header,
	}
	if msg.TopicPartition.Topic != nil {
		m.Topic = *msg.TopicPartition.Topic
	}
	m.Partition = int64(msg.TopicPartition.Partition)
	m.Offset = int64(msg.TopicPartition.Offset)
	return m
}

// CreateTopic 创建 topic，已经存在时不报错
func CreateTopic(ctx context.Context, addr, topic string, partitions int) error {
	admin, err := kafka.NewAdminClient(&kafka.ConfigMap{
		"bootstrap.servers": addr,
	})
	if err != nil {
		return err
	}
	defer admin.Close()

	results, err := admin.CreateTopics(ctx, []kafka.TopicSpecification{
		{Topic: topic, NumPartitions: partitions, ReplicationFactor: 1},
	})
	if err != nil {
		return err
	}
	for _, result := range results {
		if result.Error.Code() != kafka.ErrNoError && result.Error.Code() != kafka.ErrTopicAlreadyExists {
			return result.Error
		}
	}
	return nil
}
