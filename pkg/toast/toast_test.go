package toast

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanTransition(t *testing.T) {
	t.Parallel()

	allowed := []struct{ from, to State }{
		{StateActive, StatePaused},
		{StateActive, StateRemoving},
		{StatePaused, StateActive},
		{StatePaused, StateRemoving},
		{StateRemoving, StateRemoved},
	}
	for _, tt := range allowed {
		assert.True(t, canTransition(tt.from, tt.to), "%s -> %s", tt.from, tt.to)
	}

	denied := []struct{ from, to State }{
		{StateActive, StateRemoved},
		{StatePaused, StateRemoved},
		{StateRemoving, StateActive},
		{StateRemoved, StateActive},
		{StateRemoved, StateRemoving},
		{StateActive, StateActive},
	}
	for _, tt := range denied {
		assert.False(t, canTransition(tt.from, tt.to), "%s -> %s", tt.from, tt.to)
	}
}

func TestSnapshot_CopiesActions(t *testing.T) {
	t.Parallel()

	s := newTestStore(t, 5, newMockClock())
	_, err := s.Add(Spec{
		Message: "m",
		Actions: []Action{{Label: "Undo", OnActivate: func() {}}},
	})
	require.NoError(t, err)

	snaps := s.List()
	require.Len(t, snaps[0].Actions, 1)

	// Mutating the snapshot must not leak into the store.
	snaps[0].Actions[0].Label = "changed"
	assert.Equal(t, "Undo", s.List()[0].Actions[0].Label)
}

func TestSnapshot_ProgressBounds(t *testing.T) {
	t.Parallel()

	clock := newMockClock()
	s := newTestStore(t, 5, clock)

	_, _ = s.Add(Spec{Message: "timed", Duration: time.Second})
	_, _ = s.Add(Spec{Message: "forever", Persistent: true})

	snaps := s.List()
	assert.Equal(t, float64(1), snaps[0].Progress)
	assert.Equal(t, float64(1), snaps[1].Progress)

	clock.Advance(500 * time.Millisecond)
	snaps = s.List()
	assert.InDelta(t, 0.5, snaps[0].Progress, 1e-9)
	assert.Equal(t, float64(1), snaps[1].Progress, "persistent toasts report full progress")
}
