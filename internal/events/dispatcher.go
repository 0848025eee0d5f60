package events

import (
	"context"
	"encoding/json"
	"log"
	"sync"
)

// Consumer is one registered handler for an event type.
type Consumer struct {
	Name   string
	Handle func(ctx context.Context, payload json.RawMessage) error
}

// ErrorSink receives every consumer or transport failure. Failures never
// propagate back to the publisher: once the triggering CRUD operation has
// succeeded, the pipeline's only failure path is the sink.
type ErrorSink func(event Type, consumer string, err error)

// Dispatcher maps each event type to an ordered list of consumers. Queued
// consumers receive the serialized envelope through the broker on the event's
// named queue; direct consumers run synchronously in the publisher's
// goroutine. The two branches carry different delivery guarantees and their
// relative order is not defined.
type Dispatcher struct {
	broker  Broker
	errSink ErrorSink

	mu              sync.RWMutex
	direct          map[Type][]Consumer
	queuedConsumers map[Type][]Consumer
	subscribed      map[Type]bool
}

func NewDispatcher(broker Broker, errSink ErrorSink) *Dispatcher {
	if errSink == nil {
		errSink = func(event Type, consumer string, err error) {
			log.Printf("events: %s consumer %q failed: %v", event, consumer, err)
		}
	}
	return &Dispatcher{
		broker:          broker,
		errSink:         errSink,
		direct:          make(map[Type][]Consumer),
		queuedConsumers: make(map[Type][]Consumer),
		subscribed:      make(map[Type]bool),
	}
}

// SubscribeQueued registers a consumer behind the event's queue. All queued
// consumers of one event type share a single broker subscription and run in
// registration order per message.
func (d *Dispatcher) SubscribeQueued(t Type, consumers ...Consumer) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.queuedConsumers[t] = append(d.queuedConsumers[t], consumers...)
	if d.subscribed[t] {
		return nil
	}
	d.subscribed[t] = true

	return d.broker.Subscribe(QueueFor(t), func(ctx context.Context, body []byte) error {
		env, err := DecodeEnvelope(body)
		if err != nil {
			d.errSink(t, "decode", err)
			return nil
		}
		d.mu.RLock()
		queued := append([]Consumer(nil), d.queuedConsumers[t]...)
		d.mu.RUnlock()
		for _, c := range queued {
			if err := c.Handle(ctx, env.Payload); err != nil {
				d.errSink(env.Event, c.Name, err)
			}
		}
		return nil
	})
}

// SubscribeDirect registers a consumer invoked synchronously during Publish.
func (d *Dispatcher) SubscribeDirect(t Type, consumers ...Consumer) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.direct[t] = append(d.direct[t], consumers...)
}

// Publish serializes payload, forwards it on the event's queue, then runs the
// direct consumers. All failures go to the error sink.
func (d *Dispatcher) Publish(ctx context.Context, t Type, payload any) {
	env, err := NewEnvelope(t, payload)
	if err != nil {
		d.errSink(t, "marshal", err)
		return
	}

	body, err := env.Encode()
	if err != nil {
		d.errSink(t, "marshal", err)
		return
	}

	if err := d.broker.Publish(ctx, QueueFor(t), body); err != nil {
		d.errSink(t, "broker", err)
	}

	d.mu.RLock()
	direct := append([]Consumer(nil), d.direct[t]...)
	d.mu.RUnlock()

	for _, c := range direct {
		if err := c.Handle(ctx, env.Payload); err != nil {
			d.errSink(t, c.Name, err)
		}
	}
}

// Close shuts the underlying broker down.
func (d *Dispatcher) Close() error {
	return d.broker.Close()
}
