package broadcast

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryBroadcaster_Subscribe(t *testing.T) {
	t.Run("subscribe creates active subscriber", func(t *testing.T) {
		b := NewMemoryBroadcaster[string](10)
		defer b.Close()

		ctx := context.Background()
		sub := b.Subscribe(ctx)
		require.NotNil(t, sub)
		require.NotNil(t, sub.Receive(ctx))
	})

	t.Run("subscribe after close returns closed subscriber", func(t *testing.T) {
		b := NewMemoryBroadcaster[string](10)
		require.NoError(t, b.Close())

		ctx := context.Background()
		sub := b.Subscribe(ctx)

		_, ok := <-sub.Receive(ctx)
		assert.False(t, ok)
	})

	t.Run("context cancellation unsubscribes", func(t *testing.T) {
		b := NewMemoryBroadcaster[string](10)
		defer b.Close()

		ctx, cancel := context.WithCancel(context.Background())
		sub := b.Subscribe(ctx)

		cancel()
		time.Sleep(50 * time.Millisecond)

		require.NoError(t, b.Broadcast(context.Background(), Message[string]{Data: "after cancel"}))

		select {
		case msg, ok := <-sub.Receive(context.Background()):
			if ok {
				t.Fatalf("should not receive after context cancel, got: %v", msg)
			}
		case <-time.After(50 * time.Millisecond):
		}
	})
}

func TestMemoryBroadcaster_Broadcast(t *testing.T) {
	t.Run("delivers to all subscribers", func(t *testing.T) {
		b := NewMemoryBroadcaster[int](10)
		defer b.Close()

		ctx := context.Background()
		first := b.Subscribe(ctx)
		second := b.Subscribe(ctx)

		require.NoError(t, b.Broadcast(ctx, Message[int]{Data: 42}))

		for _, sub := range []Subscriber[int]{first, second} {
			select {
			case msg := <-sub.Receive(ctx):
				assert.Equal(t, 42, msg.Data)
			case <-time.After(time.Second):
				t.Fatal("subscriber did not receive message")
			}
		}
	})

	t.Run("drops for full buffers without blocking", func(t *testing.T) {
		b := NewMemoryBroadcaster[int](1)
		defer b.Close()

		ctx := context.Background()
		sub := b.Subscribe(ctx)

		require.NoError(t, b.Broadcast(ctx, Message[int]{Data: 1}))
		require.NoError(t, b.Broadcast(ctx, Message[int]{Data: 2})) // dropped, buffer full

		msg := <-sub.Receive(ctx)
		assert.Equal(t, 1, msg.Data)

		select {
		case msg := <-sub.Receive(ctx):
			t.Fatalf("expected dropped message, got: %v", msg.Data)
		case <-time.After(50 * time.Millisecond):
		}
	})

	t.Run("returns ErrClosed after close", func(t *testing.T) {
		b := NewMemoryBroadcaster[int](1)
		require.NoError(t, b.Close())

		err := b.Broadcast(context.Background(), Message[int]{Data: 1})
		assert.ErrorIs(t, err, ErrClosed)
	})
}

func TestMemoryBroadcaster_Close(t *testing.T) {
	t.Run("closes all subscribers", func(t *testing.T) {
		b := NewMemoryBroadcaster[string](10)

		ctx := context.Background()
		sub := b.Subscribe(ctx)

		require.NoError(t, b.Close())

		_, ok := <-sub.Receive(ctx)
		assert.False(t, ok)
	})

	t.Run("idempotent", func(t *testing.T) {
		b := NewMemoryBroadcaster[string](10)
		require.NoError(t, b.Close())
		require.NoError(t, b.Close())
	})

	t.Run("does not hang on live subscriber contexts", func(t *testing.T) {
		b := NewMemoryBroadcaster[string](10)

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		b.Subscribe(ctx)

		done := make(chan struct{})
		go func() {
			_ = b.Close()
			close(done)
		}()

		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("Close blocked on a live subscriber context")
		}
	})
}

func TestSubscriber_Close(t *testing.T) {
	t.Run("idempotent", func(t *testing.T) {
		b := NewMemoryBroadcaster[string](10)
		defer b.Close()

		sub := b.Subscribe(context.Background())
		require.NoError(t, sub.Close())
		require.NoError(t, sub.Close())
	})

	t.Run("closed subscriber misses broadcasts", func(t *testing.T) {
		b := NewMemoryBroadcaster[string](10)
		defer b.Close()

		ctx := context.Background()
		sub := b.Subscribe(ctx)
		require.NoError(t, sub.Close())

		require.NoError(t, b.Broadcast(ctx, Message[string]{Data: "late"}))

		_, ok := <-sub.Receive(ctx)
		assert.False(t, ok)
	})
}
