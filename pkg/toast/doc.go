// Package toast provides an in-process, renderer-agnostic toast queue:
// a bounded, priority-aware, timer-driven collection of transient user-facing
// messages with pause/resume on interaction, batched insertion, and
// promise-style lifecycle wrapping.
//
// # Architecture
//
//   - Store: the ordered collection, capacity enforcement, and the only
//     component that mutates toast state
//   - Service: the dispatcher with typed entry points (ShowSuccess, Promise,
//     ShowMultiple, ...)
//   - Observers: callbacks that receive a consistent snapshot list after
//     every mutation, keeping rendering decoupled from this package
//
// # Basic Usage
//
//	svc := toast.New(toast.Config{MaxVisible: 5})
//	toast.SetDefault(svc)
//
//	sub := svc.Subscribe(func(toasts []toast.Snapshot) {
//		render(toasts)
//	})
//	defer sub.Cancel()
//
//	svc.ShowSuccess("Answer saved")
//	svc.ShowError("Submission failed")
//
// # Capacity and Eviction
//
// The store never holds more than MaxVisible toasts. Overflow is trimmed from
// the front of the ordered list, which is positional rather than
// priority-aware: a high-priority toast inserted at the front can itself be
// evicted once later insertions push it out of the retained tail. Evicted
// toasts fire their OnClose exactly once, the same as any other removal.
//
// # Timers
//
// Each non-persistent toast counts down in 100ms ticks. Pausing captures the
// remaining time at the last tick and resuming picks it up unchanged, no
// matter how much real time passed in between. Countdowns run against the
// Clock interface, so tests can substitute a virtual clock.
//
// # Wrapping Slow Operations
//
//	result, err := toast.Promise(ctx, svc, fetchResults, toast.PromiseMessages[int]{
//		Loading:     "Grading exam...",
//		SuccessFunc: func(score int) string { return fmt.Sprintf("Scored %d points", score) },
//	})
//
// The loading toast is persistent and is swapped for a success or error toast
// once the computation settles. Failures are returned to the caller
// unchanged.
package toast
