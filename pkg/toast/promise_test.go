package toast

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordEvents subscribes to the service and records, per delivery, the
// (type, message) pairs visible at that moment.
func recordEvents(svc *Service) *[][]string {
	var events [][]string
	svc.Subscribe(func(snaps []Snapshot) {
		view := make([]string, len(snaps))
		for i, s := range snaps {
			view[i] = string(s.Type) + ":" + s.Message
		}
		events = append(events, view)
	})
	return &events
}

func TestPromise_Success(t *testing.T) {
	t.Parallel()

	svc := New(Config{}, WithClock(newMockClock()))
	events := recordEvents(svc)

	result, err := Promise(context.Background(), svc,
		func(ctx context.Context) (int, error) { return 42, nil },
		PromiseMessages[int]{
			Loading:     "L",
			SuccessFunc: func(r int) string { return fmt.Sprintf("got %d", r) },
		},
	)

	require.NoError(t, err)
	assert.Equal(t, 42, result)

	// Loading shown, loading removed, success shown.
	require.Len(t, *events, 3)
	assert.Equal(t, []string{"loading:L"}, (*events)[0])
	assert.Empty(t, (*events)[1])
	assert.Equal(t, []string{"success:got 42"}, (*events)[2])
}

func TestPromise_Failure(t *testing.T) {
	t.Parallel()

	svc := New(Config{}, WithClock(newMockClock()))
	events := recordEvents(svc)

	wantErr := errors.New("submission rejected")
	_, err := Promise(context.Background(), svc,
		func(ctx context.Context) (int, error) { return 0, wantErr },
		PromiseMessages[int]{
			Loading:   "L",
			ErrorFunc: func(err error) string { return err.Error() },
		},
	)

	// The original failure comes back unchanged.
	assert.Same(t, wantErr, err)

	require.Len(t, *events, 3)
	assert.Equal(t, []string{"loading:L"}, (*events)[0])
	assert.Empty(t, (*events)[1])
	assert.Equal(t, []string{"error:submission rejected"}, (*events)[2])
}

func TestPromise_Defaults(t *testing.T) {
	t.Parallel()

	t.Run("default messages", func(t *testing.T) {
		t.Parallel()

		svc := New(Config{}, WithClock(newMockClock()))

		_, err := Promise(context.Background(), svc,
			func(ctx context.Context) (struct{}, error) { return struct{}{}, nil },
			PromiseMessages[struct{}]{},
		)
		require.NoError(t, err)

		snaps := svc.List()
		require.Len(t, snaps, 1)
		assert.Equal(t, TypeSuccess, snaps[0].Type)
		assert.Equal(t, "Done", snaps[0].Message)
	})

	t.Run("error falls back to err.Error", func(t *testing.T) {
		t.Parallel()

		svc := New(Config{}, WithClock(newMockClock()))

		wantErr := errors.New("timed out")
		_, err := Promise(context.Background(), svc,
			func(ctx context.Context) (int, error) { return 0, wantErr },
			PromiseMessages[int]{},
		)
		require.ErrorIs(t, err, wantErr)

		snaps := svc.List()
		require.Len(t, snaps, 1)
		assert.Equal(t, TypeError, snaps[0].Type)
		assert.Equal(t, "timed out", snaps[0].Message)
	})

	t.Run("plain string messages", func(t *testing.T) {
		t.Parallel()

		svc := New(Config{}, WithClock(newMockClock()))

		_, err := Promise(context.Background(), svc,
			func(ctx context.Context) (int, error) { return 1, nil },
			PromiseMessages[int]{Loading: "Uploading...", Success: "Uploaded"},
		)
		require.NoError(t, err)
		assert.Equal(t, "Uploaded", svc.List()[0].Message)
	})
}

func TestPromise_NilComputation(t *testing.T) {
	t.Parallel()

	svc := New(Config{}, WithClock(newMockClock()))

	_, err := Promise[int](context.Background(), svc, nil, PromiseMessages[int]{})
	assert.ErrorIs(t, err, ErrNilComputation)
	assert.Zero(t, svc.Count())
}
