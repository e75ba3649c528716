// Package broadcast provides type-safe one-to-many message fan-out with
// automatic subscriber cleanup and non-blocking delivery.
//
// It is the channel-based counterpart to callback observers: a producer
// broadcasts a value and every subscriber receives it on its own buffered
// channel. Slow consumers miss messages instead of blocking the producer,
// which suits state-snapshot streams where every message supersedes the
// previous one.
//
// Basic usage:
//
//	broadcaster := broadcast.NewMemoryBroadcaster[[]toast.Snapshot](8)
//	defer broadcaster.Close()
//
//	sub := broadcaster.Subscribe(ctx)
//	defer sub.Close()
//
//	go func() {
//		for msg := range sub.Receive(ctx) {
//			render(msg.Data)
//		}
//	}()
//
//	broadcaster.Broadcast(ctx, broadcast.Message[[]toast.Snapshot]{Data: snapshots})
//
// Subscriptions end when their context is cancelled, when the subscriber is
// closed, or when the broadcaster is closed.
package broadcast
