package scheduler

import (
	"testing"
	"time"
)

var epoch = time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC)

func TestManual_AfterFuncFiresAtDueTime(t *testing.T) {
	m := NewManual(epoch)

	var firedAt time.Time
	m.AfterFunc(time.Second, func() { firedAt = m.Now() })

	m.Advance(999 * time.Millisecond)
	if !firedAt.IsZero() {
		t.Fatal("Timer fired early")
	}

	m.Advance(time.Millisecond)
	if !firedAt.Equal(epoch.Add(time.Second)) {
		t.Errorf("Expected fire at %v, got %v", epoch.Add(time.Second), firedAt)
	}
	if m.Pending() != 0 {
		t.Errorf("Expected no pending timers, got %d", m.Pending())
	}
}

func TestManual_EveryFiresPerPeriod(t *testing.T) {
	m := NewManual(epoch)

	count := 0
	h := m.Every(time.Second, func() { count++ })

	m.Advance(3500 * time.Millisecond)
	if count != 3 {
		t.Errorf("Expected 3 ticks, got %d", count)
	}

	h.Stop()
	m.Advance(5 * time.Second)
	if count != 3 {
		t.Errorf("Expected ticks to stop at 3, got %d", count)
	}
}

func TestManual_OrderAndStopFromCallback(t *testing.T) {
	m := NewManual(epoch)

	var order []string
	var second Handle
	m.AfterFunc(2*time.Second, func() { order = append(order, "late") })
	m.AfterFunc(time.Second, func() {
		order = append(order, "early")
		second.Stop()
	})
	second = m.AfterFunc(time.Second, func() { order = append(order, "cancelled") })

	m.Advance(3 * time.Second)

	if len(order) != 2 || order[0] != "early" || order[1] != "late" {
		t.Errorf("Unexpected firing order: %v", order)
	}
}
