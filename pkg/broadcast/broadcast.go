package broadcast

import (
	"context"
	"sync"
)

// Message wraps data of type T for type-safe broadcasting.
type Message[T any] struct {
	Data T
}

// Subscriber receives messages from a Broadcaster.
// Implementations must be safe for concurrent use.
type Subscriber[T any] interface {
	// Receive returns the channel messages arrive on. The context parameter
	// exists for adapter implementations with blocking receives; the
	// in-memory implementation ignores it.
	Receive(ctx context.Context) <-chan Message[T]

	// Close stops delivery and closes the receive channel. Idempotent.
	Close() error
}

// Broadcaster fans messages out to every active subscriber. Slow consumers
// must not block a broadcast; implementations drop for them instead.
type Broadcaster[T any] interface {
	// Subscribe registers a new subscriber. Cancelling the context tears the
	// subscription down automatically.
	Subscribe(ctx context.Context) Subscriber[T]

	// Broadcast delivers msg to all active subscribers, dropping it for any
	// whose buffer is full.
	Broadcast(ctx context.Context, msg Message[T]) error

	// Close shuts the broadcaster down and closes every subscriber.
	Close() error
}

type subscriber[T any] struct {
	ch     chan Message[T]
	closed bool
	mu     sync.RWMutex
}

func newSubscriber[T any](bufferSize int) *subscriber[T] {
	return &subscriber[T]{
		ch: make(chan Message[T], bufferSize),
	}
}

func (s *subscriber[T]) Receive(ctx context.Context) <-chan Message[T] {
	return s.ch
}

func (s *subscriber[T]) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.closed {
		close(s.ch)
		s.closed = true
	}
	return nil
}

// send delivers without blocking and reports whether the message landed.
func (s *subscriber[T]) send(msg Message[T]) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return false
	}

	select {
	case s.ch <- msg:
		return true
	default:
		return false
	}
}
