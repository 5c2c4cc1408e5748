/**
 * Copyright 2025-present Coinbase Global, Inc.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *  http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package scheduler

import (
	"context"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
)

// Handle cancels a scheduled callback. Stop is idempotent.
type Handle interface {
	Stop()
}

// Scheduler is the host event loop seen by the game core. Callbacks passed to
// AfterFunc and Every run on the loop, never concurrently with each other or
// with a task submitted through Post.
type Scheduler interface {
	Now() time.Time
	Post(fn func()) bool
	AfterFunc(d time.Duration, fn func()) Handle
	Every(d time.Duration, fn func()) Handle
}

var _ Scheduler = (*Loop)(nil)

// Loop is a single-goroutine cooperative event loop. Timers and tickers fire
// on their own goroutines but only enqueue work; every callback executes
// inside Run.
type Loop struct {
	tasks    chan func()
	stopChan chan struct{}
	doneChan chan struct{}
	stopped  atomic.Bool
}

func NewLoop(queueSize int) *Loop {
	if queueSize <= 0 {
		queueSize = 64
	}
	return &Loop{
		tasks:    make(chan func(), queueSize),
		stopChan: make(chan struct{}),
		doneChan: make(chan struct{}),
	}
}

// Run executes queued tasks until ctx is cancelled or Stop is called.
func (l *Loop) Run(ctx context.Context) {
	defer close(l.doneChan)

	zap.L().Debug("Event loop started")
	for {
		select {
		case task := <-l.tasks:
			l.execute(task)
		case <-l.stopChan:
			zap.L().Debug("Event loop stopped")
			return
		case <-ctx.Done():
			zap.L().Debug("Event loop cancelled", zap.Error(ctx.Err()))
			return
		}
	}
}

// Stop ends Run and waits for the running task to return.
func (l *Loop) Stop() {
	if l.stopped.CompareAndSwap(false, true) {
		close(l.stopChan)
	}
	<-l.doneChan
}

func (l *Loop) execute(task func()) {
	defer func() {
		if r := recover(); r != nil {
			zap.L().Error("Event loop task panicked", zap.Any("panic", r))
		}
	}()
	task()
}

func (l *Loop) Now() time.Time {
	return time.Now()
}

// Post enqueues fn. It reports false once the loop has been stopped.
func (l *Loop) Post(fn func()) bool {
	if l.stopped.Load() {
		return false
	}
	select {
	case l.tasks <- fn:
		return true
	case <-l.stopChan:
		return false
	case <-l.doneChan:
		return false
	}
}

type timerHandle struct {
	timer     *time.Timer
	cancelled atomic.Bool
}

func (h *timerHandle) Stop() {
	h.cancelled.Store(true)
	h.timer.Stop()
}

// AfterFunc runs fn on the loop once d has elapsed. A callback that was
// already queued when Stop is called is skipped.
func (l *Loop) AfterFunc(d time.Duration, fn func()) Handle {
	h := &timerHandle{}
	h.timer = time.AfterFunc(d, func() {
		l.Post(func() {
			if h.cancelled.Load() {
				return
			}
			fn()
		})
	})
	return h
}

type tickerHandle struct {
	stopChan  chan struct{}
	cancelled atomic.Bool
}

func (h *tickerHandle) Stop() {
	if h.cancelled.CompareAndSwap(false, true) {
		close(h.stopChan)
	}
}

// Every runs fn on the loop each time d elapses until the handle is stopped.
// A non-positive d schedules nothing and returns an already stopped handle.
func (l *Loop) Every(d time.Duration, fn func()) Handle {
	h := &tickerHandle{stopChan: make(chan struct{})}
	if d <= 0 {
		zap.L().Error("Refusing to schedule ticker with non-positive interval", zap.Duration("interval", d))
		h.Stop()
		return h
	}

	go func() {
		ticker := time.NewTicker(d)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				l.Post(func() {
					if h.cancelled.Load() {
						return
					}
					fn()
				})
			case <-h.stopChan:
				return
			case <-l.doneChan:
				return
			}
		}
	}()

	return h
}
