package events

import (
	"context"
	"fmt"
	"strings"
	"sync"

	rocketmq "github.com/apache/rocketmq-client-go/v2"
	"github.com/apache/rocketmq-client-go/v2/consumer"
	"github.com/apache/rocketmq-client-go/v2/primitive"
	"github.com/apache/rocketmq-client-go/v2/producer"
)

// RocketMQConfig carries broker connection settings from the environment.
type RocketMQConfig struct {
	NameServers   []string
	ConsumerGroup string
}

// RocketMQBroker carries event envelopes over a RocketMQ cluster. Queue names
// become topics with dots replaced, e.g. "member.created.queue" ->
// "member-created-queue".
type RocketMQBroker struct {
	cfg    RocketMQConfig
	mu     sync.Mutex
	prod   rocketmq.Producer
	cons   rocketmq.PushConsumer
	consUp bool
}

func NewRocketMQBroker(cfg RocketMQConfig) (*RocketMQBroker, error) {
	prod, err := rocketmq.NewProducer(
		producer.WithNameServer(cfg.NameServers),
		producer.WithRetry(2),
	)
	if err != nil {
		return nil, fmt.Errorf("create rocketmq producer: %w", err)
	}
	if err := prod.Start(); err != nil {
		return nil, fmt.Errorf("start rocketmq producer: %w", err)
	}
	return &RocketMQBroker{cfg: cfg, prod: prod}, nil
}

func (b *RocketMQBroker) Publish(ctx context.Context, queue string, body []byte) error {
	msg := &primitive.Message{
		Topic: topicFor(queue),
		Body:  body,
	}
	msg.WithProperty("queue", queue)

	if _, err := b.prod.SendSync(ctx, msg); err != nil {
		return fmt.Errorf("rocketmq send: %w", err)
	}
	return nil
}

func (b *RocketMQBroker) Subscribe(queue string, handler func(ctx context.Context, body []byte) error) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.cons == nil {
		group := b.cfg.ConsumerGroup
		if strings.TrimSpace(group) == "" {
			group = "shepherd"
		}
		cons, err := rocketmq.NewPushConsumer(
			consumer.WithGroupName(group),
			consumer.WithNameServer(b.cfg.NameServers),
		)
		if err != nil {
			return fmt.Errorf("create rocketmq consumer: %w", err)
		}
		b.cons = cons
	}

	err := b.cons.Subscribe(topicFor(queue), consumer.MessageSelector{},
		func(c context.Context, msgs ...*primitive.MessageExt) (consumer.ConsumeResult, error) {
			for _, msg := range msgs {
				if err := handler(c, msg.Body); err != nil {
					return consumer.ConsumeRetryLater, nil
				}
			}
			return consumer.ConsumeSuccess, nil
		})
	if err != nil {
		return fmt.Errorf("subscribe to %s: %w", queue, err)
	}

	// Start consumer lazily after the first subscription.
	if !b.consUp {
		if err := b.cons.Start(); err != nil {
			return fmt.Errorf("start rocketmq consumer: %w", err)
		}
		b.consUp = true
	}
	return nil
}

func (b *RocketMQBroker) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.prod != nil {
		_ = b.prod.Shutdown()
		b.prod = nil
	}
	if b.cons != nil {
		_ = b.cons.Shutdown()
		b.cons = nil
	}
	b.consUp = false
	return nil
}

func topicFor(queue string) string {
	return strings.ReplaceAll(queue, ".", "-")
}
