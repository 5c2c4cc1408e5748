package game

import (
	"time"

	"memory-ledger-go/internal/common"
	"memory-ledger-go/internal/scheduler"
)

// Timer measures one game. A new Start overwrites the previous run.
type Timer struct {
	sched        scheduler.Scheduler
	view         TimerView
	tickInterval time.Duration

	startedAt *time.Time
	stoppedAt *time.Time
	tick      scheduler.Handle
}

// NewTimer shows 00:00 immediately.
func NewTimer(sched scheduler.Scheduler, view TimerView, tickInterval time.Duration) *Timer {
	t := &Timer{sched: sched, view: view, tickInterval: tickInterval}
	t.show()
	return t
}

// Elapsed is zero before the first start, live while running and frozen
// once stopped.
func (t *Timer) Elapsed() time.Duration {
	switch {
	case t.startedAt == nil:
		return 0
	case t.stoppedAt == nil:
		return t.sched.Now().Sub(*t.startedAt)
	default:
		return t.stoppedAt.Sub(*t.startedAt)
	}
}

func (t *Timer) Formatted() string {
	return common.FormatElapsed(t.Elapsed())
}

func (t *Timer) Running() bool {
	return t.startedAt != nil && t.stoppedAt == nil
}

func (t *Timer) StoppedAt() (time.Time, bool) {
	if t.stoppedAt == nil {
		return time.Time{}, false
	}
	return *t.stoppedAt, true
}

func (t *Timer) Start() {
	t.cancelTick()
	now := t.sched.Now()
	t.startedAt = &now
	t.stoppedAt = nil
	t.tick = t.sched.Every(t.tickInterval, t.show)
	t.show()
}

// Stop freezes the elapsed time. It does nothing unless the timer is running.
func (t *Timer) Stop() {
	if !t.Running() {
		return
	}
	now := t.sched.Now()
	t.stoppedAt = &now
	t.cancelTick()
	t.show()
}

func (t *Timer) Reset() {
	t.cancelTick()
	t.startedAt = nil
	t.stoppedAt = nil
	t.show()
}

func (t *Timer) show() {
	t.view.ShowTime(t.Formatted())
}

func (t *Timer) cancelTick() {
	if t.tick != nil {
		t.tick.Stop()
		t.tick = nil
	}
}
