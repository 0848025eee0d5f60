package events

import (
	"context"
	"errors"
	"log"
	"sync"
)

// Broker moves serialized event envelopes between a publisher and the queue
// consumers. The in-process implementation below is the default; a RocketMQ
// implementation exists for deployments with a real broker.
type Broker interface {
	Publish(ctx context.Context, queue string, body []byte) error
	Subscribe(queue string, handler func(ctx context.Context, body []byte) error) error
	Close() error
}

const queueDepth = 256

// ChannelBroker delivers messages over in-process channels, one consumer
// goroutine per queue. Publishing decouples the producer's goroutine from the
// consumer's; delivery order within a queue follows publish order.
type ChannelBroker struct {
	mu     sync.Mutex
	queues map[string]chan []byte
	wg     sync.WaitGroup
	closed bool
}

func NewChannelBroker() *ChannelBroker {
	return &ChannelBroker{
		queues: make(map[string]chan []byte),
	}
}

func (b *ChannelBroker) queue(name string) chan []byte {
	b.mu.Lock()
	defer b.mu.Unlock()
	ch, ok := b.queues[name]
	if !ok {
		ch = make(chan []byte, queueDepth)
		b.queues[name] = ch
	}
	return ch
}

func (b *ChannelBroker) Publish(ctx context.Context, queue string, body []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	// The lock is held through the send so Close cannot close the channel
	// between the closed check and the send. The send never blocks: a full
	// queue falls through to the default branch.
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return errors.New("broker closed")
	}
	ch, ok := b.queues[queue]
	if !ok {
		ch = make(chan []byte, queueDepth)
		b.queues[queue] = ch
	}

	select {
	case ch <- body:
		return nil
	default:
		return errors.New("queue full: " + queue)
	}
}

func (b *ChannelBroker) Subscribe(queue string, handler func(ctx context.Context, body []byte) error) error {
	ch := b.queue(queue)
	b.wg.Add(1)
	go func() {
		defer b.wg.Done()
		for body := range ch {
			if err := handler(context.Background(), body); err != nil {
				log.Printf("events: consumer error on %s: %v", queue, err)
			}
		}
	}()
	return nil
}

// Close stops delivery after draining buffered messages.
func (b *ChannelBroker) Close() error {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return nil
	}
	b.closed = true
	for _, ch := range b.queues {
		close(ch)
	}
	b.mu.Unlock()

	b.wg.Wait()
	return nil
}
