// Package deferred implements one-shot cancellable tasks on the Bubble Tea
// loop.
//
// A Timer run is delivered as a FireMsg. Cancelling or restarting a timer
// retags it, so a message from an older run no longer matches and is dropped
// by Fire.
package deferred

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

var lastID atomic.Int64

func nextID() int { return int(lastID.Add(1)) }

// FireMsg is sent when a timer run elapses.
type FireMsg struct {
	ID  int
	tag int
}

// Timer schedules at most one pending run at a time.
type Timer struct {
	id      int
	tag     int
	pending bool
	d       time.Duration
}

// New returns a timer with delay d. A non-positive delay fires on the next
// loop turn.
func New(d time.Duration) *Timer {
	return &Timer{id: nextID(), d: d}
}

// Pending reports whether a run is scheduled and not yet fired or cancelled.
func (t *Timer) Pending() bool { return t.pending }

// Start schedules a run, cancelling any pending one first.
func (t *Timer) Start() tea.Cmd {
	t.tag++
	t.pending = true

	msg := FireMsg{ID: t.id, tag: t.tag}
	if t.d <= 0 {
		return func() tea.Msg { return msg }
	}
	return tea.Tick(t.d, func(time.Time) tea.Msg { return msg })
}

// Cancel drops the pending run. It reports whether one was pending.
func (t *Timer) Cancel() bool {
	was := t.pending
	t.tag++
	t.pending = false
	return was
}

// Owns reports whether msg was produced by this timer, current or stale.
func (t *Timer) Owns(msg tea.Msg) bool {
	fm, ok := msg.(FireMsg)
	return ok && fm.ID == t.id
}

// Fire reports whether msg is the live run of this timer and marks it done.
// It returns true at most once per Start.
func (t *Timer) Fire(msg tea.Msg) bool {
	fm, ok := msg.(FireMsg)
	if !ok || fm.ID != t.id || fm.tag != t.tag || !t.pending {
		return false
	}
	t.pending = false
	return true
}
