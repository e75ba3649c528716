package toast

import (
	"context"

	"github.com/examlab/examkit/pkg/async"
)

// Default phase messages used when PromiseMessages leaves one blank.
const (
	defaultLoadingMessage = "Loading..."
	defaultSuccessMessage = "Done"
)

// PromiseMessages configures the three phases of a wrapped computation.
// The func variants win over the plain strings when both are set, letting the
// final message incorporate the result or the failure.
type PromiseMessages[T any] struct {
	Loading     string
	Success     string
	SuccessFunc func(result T) string
	Error       string
	ErrorFunc   func(err error) string
}

func (m PromiseMessages[T]) loading() string {
	if m.Loading == "" {
		return defaultLoadingMessage
	}
	return m.Loading
}

func (m PromiseMessages[T]) success(result T) string {
	if m.SuccessFunc != nil {
		return m.SuccessFunc(result)
	}
	if m.Success == "" {
		return defaultSuccessMessage
	}
	return m.Success
}

func (m PromiseMessages[T]) failure(err error) string {
	if m.ErrorFunc != nil {
		return m.ErrorFunc(err)
	}
	if m.Error == "" {
		return err.Error()
	}
	return m.Error
}

// Promise wraps a computation with the loading → success/error toast
// lifecycle: it shows a persistent loading toast, runs fn, swaps the loading
// toast for a success or error one, and hands the result back to the caller.
// A failure is returned unchanged so caller-side error handling still runs.
func Promise[T any](ctx context.Context, svc *Service, fn func(context.Context) (T, error), msgs PromiseMessages[T]) (T, error) {
	var zero T
	if fn == nil {
		return zero, ErrNilComputation
	}

	loadingID, err := svc.ShowLoading(msgs.loading())
	if err != nil {
		return zero, err
	}

	result, err := async.Run(ctx, fn).Await()

	svc.Remove(loadingID)

	if err != nil {
		_, _ = svc.ShowError(msgs.failure(err))
		return zero, err
	}

	_, _ = svc.ShowSuccess(msgs.success(result))
	return result, nil
}
