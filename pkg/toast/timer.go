package toast

import (
	"sync"
	"time"
)

// tickInterval is the countdown resolution. Remaining time only changes at
// tick boundaries; between ticks it is a snapshot, which is what makes
// pause/resume reproduce the exact value observed at pause time.
const tickInterval = 100 * time.Millisecond

// timerTask drives a single toast's countdown. It reports each tick and
// signals expiry exactly once. All methods are safe for concurrent use and
// idempotent, so a late Remove racing a timeout needs no coordination.
type timerTask struct {
	clock    Clock
	onTick   func(remaining time.Duration)
	onExpire func()

	mu        sync.Mutex
	remaining time.Duration
	pending   Timer
	paused    bool
	done      bool
}

func newTimerTask(clock Clock, onTick func(time.Duration), onExpire func()) *timerTask {
	return &timerTask{
		clock:    clock,
		onTick:   onTick,
		onExpire: onExpire,
	}
}

// start begins the countdown. Non-positive budgets disable the task entirely.
func (t *timerTask) start(d time.Duration) {
	if d <= 0 {
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if t.done {
		return
	}
	t.remaining = d
	t.scheduleLocked()
}

// startPaused arms the task with a budget but schedules nothing; resume
// begins the countdown. Non-positive budgets disable the task entirely.
func (t *timerTask) startPaused(d time.Duration) {
	if d <= 0 {
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if t.done {
		return
	}
	t.remaining = d
	t.paused = true
}

func (t *timerTask) scheduleLocked() {
	t.pending = t.clock.AfterFunc(tickInterval, t.tick)
}

func (t *timerTask) tick() {
	t.mu.Lock()
	if t.done || t.paused {
		// A tick that lost the race against cancel or pause must not act.
		t.mu.Unlock()
		return
	}

	t.remaining -= tickInterval
	if t.remaining < 0 {
		t.remaining = 0
	}

	expired := t.remaining == 0
	if expired {
		t.done = true
	} else {
		t.scheduleLocked()
	}
	remaining := t.remaining
	t.mu.Unlock()

	// Callbacks run outside the lock so they may call back into the task.
	if t.onTick != nil {
		t.onTick(remaining)
	}
	if expired && t.onExpire != nil {
		t.onExpire()
	}
}

// pause halts the countdown, keeping the remaining time captured at the last
// tick. Pausing an already paused or finished task is a no-op.
func (t *timerTask) pause() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.done || t.paused {
		return
	}
	t.paused = true
	if t.pending != nil {
		t.pending.Stop()
	}
}

// resume restarts the countdown from the remaining time captured at pause.
// Resuming a running or finished task is a no-op.
func (t *timerTask) resume() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.done || !t.paused {
		return
	}
	t.paused = false
	t.scheduleLocked()
}

// cancel stops all scheduled work immediately. Cancelling a task that already
// fired is a no-op.
func (t *timerTask) cancel() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.done {
		return
	}
	t.done = true
	if t.pending != nil {
		t.pending.Stop()
	}
}

func (t *timerTask) remainingTime() time.Duration {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.remaining
}
