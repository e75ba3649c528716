package toast

import (
	"time"
)

// Type represents the toast type/severity.
type Type string

const (
	TypeSuccess Type = "success"
	TypeError   Type = "error"
	TypeWarning Type = "warning"
	TypeInfo    Type = "info"
	TypeLoading Type = "loading"
	TypeCustom  Type = "custom"
)

// Priority controls where a toast is inserted into the visible stack.
type Priority int

const (
	PriorityNormal Priority = iota
	PriorityHigh
)

// State represents the lifecycle state of a toast.
type State string

const (
	StateActive   State = "active"
	StatePaused   State = "paused"
	StateRemoving State = "removing"
	StateRemoved  State = "removed"
)

// NoTimeout disables the automatic dismissal timer for a single toast.
// Unlike Persistent it only suppresses the countdown; the toast is still
// subject to capacity eviction and manual dismissal.
const NoTimeout time.Duration = -1

// Action represents a call-to-action button attached to a toast.
type Action struct {
	Label      string
	OnActivate func()
	// KeepOpen leaves the toast visible after the action is activated.
	// The zero value closes the toast, which is what most actions want.
	KeepOpen bool
}

// Spec describes a toast to create. Zero-valued fields receive defaults:
// Type falls back to TypeInfo and Duration falls back to the service-wide
// default. Use NoTimeout for a toast that never times out on its own.
type Spec struct {
	Type     Type
	Message  string
	Title    string
	Duration time.Duration
	// Persistent exempts the toast from automatic timeout entirely;
	// only an explicit Remove or ClearAll dismisses it.
	Persistent bool
	Priority   Priority
	Actions    []Action
	// OnClose fires exactly once when the toast leaves the store,
	// whether by timeout, manual close, eviction, or ClearAll.
	OnClose func()
}

// Snapshot is a read-only view of one live toast, safe to hand to renderers.
type Snapshot struct {
	ID         string
	Type       Type
	Message    string
	Title      string
	State      State
	Priority   Priority
	Persistent bool
	Duration   time.Duration
	Remaining  time.Duration
	// Progress is the fraction of the time budget still remaining,
	// in [0, 1]. Toasts without a countdown report 1.
	Progress  float64
	Actions   []Action
	CreatedAt time.Time
}

// item is the live entity held by the store. Only the store mutates it.
type item struct {
	id         string
	typ        Type
	message    string
	title      string
	duration   time.Duration // effective budget; 0 means no countdown
	persistent bool
	priority   Priority
	actions    []Action
	onClose    func()
	createdAt  time.Time
	state      State
	timer      *timerTask // nil when no countdown runs
}

func (it *item) snapshot() Snapshot {
	snap := Snapshot{
		ID:         it.id,
		Type:       it.typ,
		Message:    it.message,
		Title:      it.title,
		State:      it.state,
		Priority:   it.priority,
		Persistent: it.persistent,
		Duration:   it.duration,
		Remaining:  it.duration,
		Progress:   1,
		CreatedAt:  it.createdAt,
	}
	if len(it.actions) > 0 {
		snap.Actions = make([]Action, len(it.actions))
		copy(snap.Actions, it.actions)
	}
	if it.timer != nil && it.duration > 0 {
		snap.Remaining = it.timer.remainingTime()
		snap.Progress = float64(snap.Remaining) / float64(it.duration)
	}
	return snap
}
