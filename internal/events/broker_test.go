package events

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBrokerPublishAfterCloseFails(t *testing.T) {
	b := NewChannelBroker()

	require.NoError(t, b.Publish(context.Background(), "q", []byte("before")))
	require.NoError(t, b.Close())

	assert.Error(t, b.Publish(context.Background(), "q", []byte("after")))
}

func TestBrokerPublishRacingCloseDoesNotPanic(t *testing.T) {
	for i := 0; i < 200; i++ {
		b := NewChannelBroker()

		var wg sync.WaitGroup
		for p := 0; p < 4; p++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for j := 0; j < 20; j++ {
					// Publishes racing Close either land or report
					// the broker closed; none may panic.
					_ = b.Publish(context.Background(), "q", []byte("x"))
				}
			}()
		}

		_ = b.Close()
		wg.Wait()
	}
}

func TestBrokerPublishHonorsCancelledContext(t *testing.T) {
	b := NewChannelBroker()
	defer b.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.Error(t, b.Publish(ctx, "q", []byte("x")))
}
