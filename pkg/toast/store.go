package toast

import (
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/examlab/examkit/pkg/logger"
)

// Observer receives the full ordered snapshot list after every store change.
// Callbacks run outside the store lock, so an observer may call back into the
// store (for example to close a toast it just rendered).
type Observer func(toasts []Snapshot)

// Subscription identifies a registered observer. Observers are funcs and not
// comparable, so cancellation goes through the token instead.
type Subscription struct {
	id    uuid.UUID
	store *Store
}

// Cancel stops delivery to the observer. Safe to call more than once.
func (s *Subscription) Cancel() {
	if s == nil || s.store == nil {
		return
	}
	s.store.unsubscribe(s.id)
}

type registration struct {
	id uuid.UUID
	fn Observer
}

// Store maintains the live ordered set of toasts, enforces capacity, and owns
// every mutation. No other component holds a reference to the collection.
type Store struct {
	maxVisible      int
	defaultDuration time.Duration
	clock           Clock
	log             *slog.Logger

	mu        sync.Mutex
	ordered   []*item
	observers []registration

	lastID atomic.Uint64
}

func newStore(maxVisible int, defaultDuration time.Duration, clock Clock, log *slog.Logger) *Store {
	return &Store{
		maxVisible:      maxVisible,
		defaultDuration: defaultDuration,
		clock:           clock,
		log:             log,
	}
}

// nextID mints an opaque id from a process-lifetime monotonic counter.
// IDs are never reused, which lets a late timer tick be matched against a
// stale id safely.
func (s *Store) nextID() string {
	return fmt.Sprintf("toast-%d", s.lastID.Add(1))
}

// Add constructs a toast from the spec, inserts it by priority, enforces
// capacity by trimming from the front, and starts its countdown. It returns
// the generated id.
func (s *Store) Add(spec Spec) (string, error) {
	if spec.Message == "" {
		return "", ErrEmptyMessage
	}

	s.mu.Lock()

	it := s.newItem(spec)
	if it.priority == PriorityHigh {
		s.ordered = append([]*item{it}, s.ordered...)
	} else {
		s.ordered = append(s.ordered, it)
	}

	// Capacity trim is positional, not priority-aware: the retained window is
	// always the tail, so a high-priority toast sitting at the front can be
	// pushed out by later normal insertions.
	var evicted []*item
	for len(s.ordered) > s.maxVisible {
		head := s.ordered[0]
		s.ordered = s.ordered[1:]
		s.finalizeLocked(head)
		evicted = append(evicted, head)
	}

	// The countdown starts only if the toast survived the trim.
	if it.state != StateRemoved && it.duration > 0 && !it.persistent {
		it.timer = newTimerTask(s.clock, s.tickFunc(), s.expireFunc(it.id))
		it.timer.start(it.duration)
	}

	obs, snap := s.deliveryLocked()
	s.mu.Unlock()

	for _, e := range evicted {
		s.log.Debug("toast evicted",
			logger.ToastID(e.id),
			logger.ToastType(string(e.typ)),
		)
		if e.onClose != nil {
			e.onClose()
		}
	}
	s.log.Debug("toast added",
		logger.ToastID(it.id),
		logger.ToastType(string(it.typ)),
		logger.Count(len(snap)),
	)
	deliver(obs, snap)

	return it.id, nil
}

// newItem applies spec defaults. Callers must hold s.mu.
func (s *Store) newItem(spec Spec) *item {
	typ := spec.Type
	if typ == "" {
		typ = TypeInfo
	}

	duration := spec.Duration
	switch {
	case duration == 0:
		duration = s.defaultDuration
	case duration < 0:
		// NoTimeout and any other negative value mean manual dismissal only.
		duration = 0
	}

	it := &item{
		id:         s.nextID(),
		typ:        typ,
		message:    spec.Message,
		title:      spec.Title,
		duration:   duration,
		persistent: spec.Persistent,
		priority:   spec.Priority,
		onClose:    spec.OnClose,
		createdAt:  s.clock.Now(),
		state:      StateActive,
	}
	if len(spec.Actions) > 0 {
		it.actions = make([]Action, len(spec.Actions))
		copy(it.actions, spec.Actions)
	}
	return it
}

// Remove dismisses the toast with the given id. Unknown or already removed
// ids are a no-op, so callers may race a timeout against a manual close.
func (s *Store) Remove(id string) {
	s.mu.Lock()
	idx := s.indexLocked(id)
	if idx < 0 {
		s.mu.Unlock()
		return
	}

	it := s.ordered[idx]
	s.ordered = append(s.ordered[:idx], s.ordered[idx+1:]...)
	s.finalizeLocked(it)

	obs, snap := s.deliveryLocked()
	s.mu.Unlock()

	s.log.Debug("toast removed", logger.ToastID(it.id), logger.Count(len(snap)))
	if it.onClose != nil {
		it.onClose()
	}
	deliver(obs, snap)
}

// ClearAll removes every toast through the same path as Remove, preserving
// per-toast OnClose invocation in display order.
func (s *Store) ClearAll() {
	s.mu.Lock()
	cleared := s.ordered
	s.ordered = nil
	for _, it := range cleared {
		s.finalizeLocked(it)
	}
	obs, snap := s.deliveryLocked()
	s.mu.Unlock()

	s.log.Debug("cleared all toasts", logger.Count(len(cleared)))
	for _, it := range cleared {
		if it.onClose != nil {
			it.onClose()
		}
	}
	deliver(obs, snap)
}

// Patch is a partial update applied to a live toast. Nil fields are left
// untouched. A non-nil Duration restarts the countdown with the new budget,
// and setting Persistent cancels any running countdown; every other field
// changes without touching the timer.
type Patch struct {
	Type       *Type
	Message    *string
	Title      *string
	Priority   *Priority
	Persistent *bool
	Duration   *time.Duration
	Actions    []Action
}

// Update shallow-merges the patch into the toast with the given id.
func (s *Store) Update(id string, patch Patch) error {
	s.mu.Lock()
	idx := s.indexLocked(id)
	if idx < 0 {
		s.mu.Unlock()
		return ErrToastNotFound
	}

	it := s.ordered[idx]
	if patch.Type != nil {
		it.typ = *patch.Type
	}
	if patch.Message != nil {
		it.message = *patch.Message
	}
	if patch.Title != nil {
		it.title = *patch.Title
	}
	if patch.Priority != nil {
		it.priority = *patch.Priority
	}
	if patch.Persistent != nil {
		it.persistent = *patch.Persistent
		// A toast promoted to persistent must outlive its old countdown;
		// only an explicit Remove or ClearAll may dismiss it from here on.
		if it.persistent && it.timer != nil {
			it.timer.cancel()
			it.timer = nil
		}
	}
	if patch.Actions != nil {
		it.actions = make([]Action, len(patch.Actions))
		copy(it.actions, patch.Actions)
	}
	if patch.Duration != nil {
		if it.timer != nil {
			it.timer.cancel()
			it.timer = nil
		}
		d := *patch.Duration
		if d < 0 {
			d = 0
		}
		it.duration = d
		if d > 0 && !it.persistent {
			it.timer = newTimerTask(s.clock, s.tickFunc(), s.expireFunc(it.id))
			// A paused toast stays halted; the new budget becomes the
			// remaining time Resume will count down from.
			if it.state == StatePaused {
				it.timer.startPaused(d)
			} else {
				it.timer.start(d)
			}
		}
	}

	obs, snap := s.deliveryLocked()
	s.mu.Unlock()

	s.log.Debug("toast updated", logger.ToastID(id))
	deliver(obs, snap)
	return nil
}

// Pause halts the toast's countdown, typically on pointer enter. No-op for
// unknown ids or toasts that are not active.
func (s *Store) Pause(id string) {
	s.mu.Lock()
	idx := s.indexLocked(id)
	if idx < 0 {
		s.mu.Unlock()
		return
	}
	it := s.ordered[idx]
	if !it.transition(StatePaused) {
		s.mu.Unlock()
		return
	}
	if it.timer != nil {
		it.timer.pause()
	}
	obs, snap := s.deliveryLocked()
	s.mu.Unlock()

	deliver(obs, snap)
}

// Resume restarts a paused countdown from the remaining time captured at
// pause, regardless of how much real time elapsed in between.
func (s *Store) Resume(id string) {
	s.mu.Lock()
	idx := s.indexLocked(id)
	if idx < 0 {
		s.mu.Unlock()
		return
	}
	it := s.ordered[idx]
	if it.state != StatePaused || !it.transition(StateActive) {
		s.mu.Unlock()
		return
	}
	if it.timer != nil {
		it.timer.resume()
	}
	obs, snap := s.deliveryLocked()
	s.mu.Unlock()

	deliver(obs, snap)
}

// ActivateAction invokes the action at the given index and then closes the
// toast unless the action is marked KeepOpen. Out-of-range indexes are a
// no-op.
func (s *Store) ActivateAction(id string, actionIndex int) {
	s.mu.Lock()
	idx := s.indexLocked(id)
	if idx < 0 {
		s.mu.Unlock()
		return
	}
	it := s.ordered[idx]
	if actionIndex < 0 || actionIndex >= len(it.actions) {
		s.mu.Unlock()
		s.log.Warn("action index out of range",
			logger.ToastID(id),
			slog.Int("action_index", actionIndex),
		)
		return
	}
	action := it.actions[actionIndex]
	s.mu.Unlock()

	if action.OnActivate != nil {
		action.OnActivate()
	}
	if !action.KeepOpen {
		s.Remove(id)
	}
}

// Subscribe registers an observer that receives the ordered snapshot list
// after every mutation. It does not deliver the current state immediately;
// use List for that.
func (s *Store) Subscribe(fn Observer) *Subscription {
	sub := &Subscription{id: uuid.New(), store: s}

	s.mu.Lock()
	s.observers = append(s.observers, registration{id: sub.id, fn: fn})
	s.mu.Unlock()

	return sub
}

func (s *Store) unsubscribe(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, reg := range s.observers {
		if reg.id == id {
			s.observers = append(s.observers[:i], s.observers[i+1:]...)
			return
		}
	}
}

// List returns a copy of the ordered toast list.
func (s *Store) List() []Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Count returns the number of live toasts.
func (s *Store) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.ordered)
}

// HasAny reports whether any toast is live.
func (s *Store) HasAny() bool {
	return s.Count() > 0
}

func (s *Store) indexLocked(id string) int {
	for i, it := range s.ordered {
		if it.id == id {
			return i
		}
	}
	return -1
}

// finalizeLocked walks the item through removing to removed and cancels its
// countdown. It never fires OnClose; callers do that outside the lock.
func (s *Store) finalizeLocked(it *item) {
	if it.timer != nil {
		it.timer.cancel()
		it.timer = nil
	}
	it.transition(StateRemoving)
	it.transition(StateRemoved)
}

func (s *Store) snapshotLocked() []Snapshot {
	snap := make([]Snapshot, len(s.ordered))
	for i, it := range s.ordered {
		snap[i] = it.snapshot()
	}
	return snap
}

// deliveryLocked captures the observer list and a consistent snapshot in one
// step so observers never see a partially applied mutation.
func (s *Store) deliveryLocked() ([]Observer, []Snapshot) {
	obs := make([]Observer, len(s.observers))
	for i, reg := range s.observers {
		obs[i] = reg.fn
	}
	return obs, s.snapshotLocked()
}

func deliver(obs []Observer, snap []Snapshot) {
	for _, fn := range obs {
		fn(snap)
	}
}

// tickFunc publishes a fresh snapshot on every countdown tick so renderers
// can animate progress.
func (s *Store) tickFunc() func(time.Duration) {
	return func(time.Duration) {
		s.mu.Lock()
		obs, snap := s.deliveryLocked()
		s.mu.Unlock()
		deliver(obs, snap)
	}
}

// expireFunc routes a countdown expiry through the ordinary removal path.
// Cancellation in finalizeLocked is a no-op for the task that just fired.
func (s *Store) expireFunc(id string) func() {
	return func() {
		s.Remove(id)
	}
}
