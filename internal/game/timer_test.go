package game

import (
	"testing"
	"time"

	"memory-ledger-go/internal/scheduler"
)

func TestTimer_Lifecycle(t *testing.T) {
	sched := scheduler.NewManual(epoch)
	view := &fakeView{}
	timer := NewTimer(sched, view, time.Second)

	if view.lastTime() != "00:00" {
		t.Errorf("Expected initial display 00:00, got %q", view.lastTime())
	}
	if timer.Elapsed() != 0 {
		t.Errorf("Expected 0 before start, got %v", timer.Elapsed())
	}

	timer.Stop()
	if _, ok := timer.StoppedAt(); ok {
		t.Error("Stop before Start must not record a stop time")
	}

	timer.Start()
	sched.Advance(2500 * time.Millisecond)
	if timer.Elapsed() != 2500*time.Millisecond {
		t.Errorf("Expected 2.5s running, got %v", timer.Elapsed())
	}
	if view.lastTime() != "00:02" {
		t.Errorf("Expected tick display 00:02, got %q", view.lastTime())
	}

	timer.Stop()
	sched.Advance(10 * time.Second)
	if timer.Elapsed() != 2500*time.Millisecond {
		t.Errorf("Expected frozen 2.5s, got %v", timer.Elapsed())
	}
	if sched.Pending() != 0 {
		t.Errorf("Expected tick cancelled, %d timers pending", sched.Pending())
	}

	timer.Reset()
	if timer.Elapsed() != 0 || timer.Running() {
		t.Errorf("Expected reset timer, got %v running=%v", timer.Elapsed(), timer.Running())
	}
}

func TestTimer_RestartOverwrites(t *testing.T) {
	sched := scheduler.NewManual(epoch)
	timer := NewTimer(sched, &fakeView{}, time.Second)

	timer.Start()
	sched.Advance(5 * time.Second)
	timer.Stop()

	timer.Start()
	sched.Advance(time.Second)
	if timer.Elapsed() != time.Second {
		t.Errorf("Expected 1s after restart, got %v", timer.Elapsed())
	}
	if sched.Pending() != 1 {
		t.Errorf("Expected exactly one tick scheduled, got %d", sched.Pending())
	}
}
