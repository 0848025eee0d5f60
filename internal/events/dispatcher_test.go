package events

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	Name string `json:"name"`
}

func waitFor(t *testing.T, ch <-chan payload) payload {
	t.Helper()
	select {
	case p := <-ch:
		return p
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for consumer delivery")
		return payload{}
	}
}

func TestQueuedConsumerReceivesPublishedEvent(t *testing.T) {
	d := NewDispatcher(NewChannelBroker(), nil)
	defer d.Close()

	got := make(chan payload, 1)
	err := d.SubscribeQueued(MemberCreated, Consumer{
		Name: "capture",
		Handle: func(ctx context.Context, body json.RawMessage) error {
			var p payload
			if err := json.Unmarshal(body, &p); err != nil {
				return err
			}
			got <- p
			return nil
		},
	})
	require.NoError(t, err)

	d.Publish(context.Background(), MemberCreated, payload{Name: "John"})

	assert.Equal(t, "John", waitFor(t, got).Name)
}

func TestQueuedConsumersDoNotCrosstalk(t *testing.T) {
	d := NewDispatcher(NewChannelBroker(), nil)
	defer d.Close()

	members := make(chan payload, 1)
	donations := make(chan payload, 1)

	require.NoError(t, d.SubscribeQueued(MemberCreated, Consumer{
		Name: "members",
		Handle: func(ctx context.Context, body json.RawMessage) error {
			var p payload
			_ = json.Unmarshal(body, &p)
			members <- p
			return nil
		},
	}))
	require.NoError(t, d.SubscribeQueued(DonationCreated, Consumer{
		Name: "donations",
		Handle: func(ctx context.Context, body json.RawMessage) error {
			var p payload
			_ = json.Unmarshal(body, &p)
			donations <- p
			return nil
		},
	}))

	d.Publish(context.Background(), DonationCreated, payload{Name: "tithe"})

	assert.Equal(t, "tithe", waitFor(t, donations).Name)
	select {
	case p := <-members:
		t.Fatalf("member consumer received donation event: %+v", p)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestDirectConsumerRunsInline(t *testing.T) {
	d := NewDispatcher(NewChannelBroker(), nil)
	defer d.Close()

	var ran bool
	d.SubscribeDirect(MemberCreated, Consumer{
		Name: "inline",
		Handle: func(ctx context.Context, body json.RawMessage) error {
			ran = true
			return nil
		},
	})

	d.Publish(context.Background(), MemberCreated, payload{Name: "Jane"})

	// Direct consumers complete before Publish returns.
	assert.True(t, ran)
}

func TestConsumerFailureGoesToSinkNotCaller(t *testing.T) {
	var mu sync.Mutex
	var failures []string
	sink := func(event Type, consumer string, err error) {
		mu.Lock()
		defer mu.Unlock()
		failures = append(failures, consumer)
	}

	d := NewDispatcher(NewChannelBroker(), sink)
	defer d.Close()

	d.SubscribeDirect(MemberCreated, Consumer{
		Name: "boom",
		Handle: func(ctx context.Context, body json.RawMessage) error {
			return errors.New("smtp down")
		},
	})

	ran := make(chan struct{}, 1)
	d.SubscribeDirect(MemberCreated, Consumer{
		Name: "after-boom",
		Handle: func(ctx context.Context, body json.RawMessage) error {
			ran <- struct{}{}
			return nil
		},
	})

	// Publish does not surface the failure.
	d.Publish(context.Background(), MemberCreated, payload{Name: "Jo"})

	select {
	case <-ran:
	default:
		t.Fatal("consumer after the failing one did not run")
	}

	mu.Lock()
	defer mu.Unlock()
	assert.Contains(t, failures, "boom")
	assert.NotContains(t, failures, "after-boom")
}

func TestQueuedFailureGoesToSink(t *testing.T) {
	sunk := make(chan string, 1)
	sink := func(event Type, consumer string, err error) {
		sunk <- consumer
	}

	d := NewDispatcher(NewChannelBroker(), sink)
	defer d.Close()

	require.NoError(t, d.SubscribeQueued(DonationCreated, Consumer{
		Name: "audit-broken",
		Handle: func(ctx context.Context, body json.RawMessage) error {
			return errors.New("disk full")
		},
	}))

	d.Publish(context.Background(), DonationCreated, payload{Name: "gift"})

	select {
	case name := <-sunk:
		assert.Equal(t, "audit-broken", name)
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for error sink")
	}
}

func TestEnvelopeRoundTrip(t *testing.T) {
	env, err := NewEnvelope(MemberCreated, payload{Name: "Ann"})
	require.NoError(t, err)

	body, err := env.Encode()
	require.NoError(t, err)

	decoded, err := DecodeEnvelope(body)
	require.NoError(t, err)
	assert.Equal(t, MemberCreated, decoded.Event)

	var p payload
	require.NoError(t, json.Unmarshal(decoded.Payload, &p))
	assert.Equal(t, "Ann", p.Name)
}

func TestQueueForMapping(t *testing.T) {
	assert.Equal(t, MemberCreatedQueue, QueueFor(MemberCreated))
	assert.Equal(t, DonationCreatedQueue, QueueFor(DonationCreated))
}
