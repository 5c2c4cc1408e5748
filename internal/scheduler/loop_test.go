package scheduler

import (
	"context"
	"testing"
	"time"
)

func startLoop(t *testing.T) (*Loop, func()) {
	loop := NewLoop(16)
	ctx, cancel := context.WithCancel(context.Background())
	go loop.Run(ctx)

	cleanup := func() {
		cancel()
		loop.Stop()
	}
	return loop, cleanup
}

func TestLoop_PostRunsInOrder(t *testing.T) {
	loop, cleanup := startLoop(t)
	defer cleanup()

	got := make(chan int, 3)
	for i := 1; i <= 3; i++ {
		i := i
		if !loop.Post(func() { got <- i }) {
			t.Fatalf("Post %d rejected on running loop", i)
		}
	}

	for want := 1; want <= 3; want++ {
		select {
		case v := <-got:
			if v != want {
				t.Errorf("Expected task %d, got %d", want, v)
			}
		case <-time.After(time.Second):
			t.Fatalf("Timed out waiting for task %d", want)
		}
	}
}

func TestLoop_AfterFuncFires(t *testing.T) {
	loop, cleanup := startLoop(t)
	defer cleanup()

	fired := make(chan struct{})
	loop.AfterFunc(10*time.Millisecond, func() { close(fired) })

	select {
	case <-fired:
	case <-time.After(time.Second):
		t.Fatal("AfterFunc callback never ran")
	}
}

func TestLoop_AfterFuncStopped(t *testing.T) {
	loop, cleanup := startLoop(t)
	defer cleanup()

	fired := make(chan struct{}, 1)
	h := loop.AfterFunc(20*time.Millisecond, func() { fired <- struct{}{} })
	h.Stop()
	h.Stop()

	select {
	case <-fired:
		t.Fatal("Stopped AfterFunc callback ran")
	case <-time.After(60 * time.Millisecond):
	}
}

func TestLoop_EveryStops(t *testing.T) {
	loop, cleanup := startLoop(t)
	defer cleanup()

	ticks := make(chan struct{}, 100)
	h := loop.Every(5*time.Millisecond, func() { ticks <- struct{}{} })

	select {
	case <-ticks:
	case <-time.After(time.Second):
		t.Fatal("Every callback never ran")
	}

	done := make(chan struct{})
	loop.Post(func() {
		h.Stop()
		close(done)
	})
	<-done

	// Drain anything queued before Stop ran on the loop.
	time.Sleep(20 * time.Millisecond)
	for len(ticks) > 0 {
		<-ticks
	}

	select {
	case <-ticks:
		t.Fatal("Every callback ran after Stop")
	case <-time.After(30 * time.Millisecond):
	}
}

func TestLoop_EveryRejectsNonPositiveInterval(t *testing.T) {
	loop, cleanup := startLoop(t)
	defer cleanup()

	ticks := make(chan struct{}, 1)
	h := loop.Every(0, func() { ticks <- struct{}{} })
	if h == nil {
		t.Fatal("Expected a handle for a zero interval")
	}
	h.Stop()

	select {
	case <-ticks:
		t.Fatal("Every callback ran for a zero interval")
	case <-time.After(30 * time.Millisecond):
	}

	// The loop must still be serving tasks.
	done := make(chan struct{})
	loop.Post(func() { close(done) })
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Loop stopped serving tasks after a zero interval")
	}
}

func TestLoop_PostAfterStop(t *testing.T) {
	loop := NewLoop(1)
	go loop.Run(context.Background())
	loop.Stop()

	if loop.Post(func() {}) {
		t.Error("Expected Post to be rejected after Stop")
	}
}

func TestLoop_RecoversFromPanic(t *testing.T) {
	loop, cleanup := startLoop(t)
	defer cleanup()

	loop.Post(func() { panic("boom") })

	ran := make(chan struct{})
	loop.Post(func() { close(ran) })

	select {
	case <-ran:
	case <-time.After(time.Second):
		t.Fatal("Loop did not survive a panicking task")
	}
}
