// Package async provides small generic helpers for running a computation in
// the background and awaiting its result.
//
// Run starts the supplied function in its own goroutine and returns a
// *Future. The caller waits with Await, bounds the wait with
// AwaitWithTimeout, or polls with IsComplete. WaitAll coordinates several
// futures and collects their results in order.
//
// If the context passed to Run is already cancelled, the computation is
// skipped and the future settles with the context error.
//
// # Usage
//
//	future := async.Run(ctx, func(ctx context.Context) (int, error) {
//	    return grade(ctx, submission)
//	})
//
//	score, err := future.Await()
package async
