package usecase

import (
	"sync"
	"time"

	"github.com/bnema/tabshell/internal/application/port"
)

// RetryPolicy bounds a retried operation.
type RetryPolicy struct {
	MaxAttempts int
	Backoff     func(attempt int) time.Duration
	// Retryable reports whether err is worth another attempt. nil retries everything.
	Retryable func(err error) bool
}

// LinearBackoff waits step×attempt before the next attempt.
func LinearBackoff(step time.Duration) func(attempt int) time.Duration {
	return func(attempt int) time.Duration {
		return step * time.Duration(attempt)
	}
}

func (p RetryPolicy) delay(attempt int) time.Duration {
	if p.Backoff == nil {
		return 0
	}
	return p.Backoff(attempt)
}

func (p RetryPolicy) retryable(err error) bool {
	return p.Retryable == nil || p.Retryable(err)
}

// CancelHandle stops a scheduled retry or poll. Cancel may be called any
// number of times; callbacks never run once it returns.
type CancelHandle struct {
	mu        sync.Mutex
	cancelled bool
	timer     port.Timer
}

// Cancel stops the pending timer, if any.
func (h *CancelHandle) Cancel() {
	if h == nil {
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.cancelled {
		return
	}
	h.cancelled = true
	if h.timer != nil {
		h.timer.Stop()
		h.timer = nil
	}
}

// Cancelled reports whether Cancel was called.
func (h *CancelHandle) Cancelled() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.cancelled
}

func (h *CancelHandle) schedule(s port.Scheduler, d time.Duration, fn func()) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.cancelled {
		return
	}
	h.timer = s.AfterFunc(d, func() {
		if h.Cancelled() {
			return
		}
		fn()
	})
}

// Retry runs fn at once and again after each backoff while it fails with a
// retryable error, up to MaxAttempts. onDone gets the final error (nil on
// success) unless the handle was cancelled first.
func Retry(s port.Scheduler, policy RetryPolicy, fn func(attempt int) error, onDone func(error)) *CancelHandle {
	h := &CancelHandle{}
	maxAttempts := max(policy.MaxAttempts, 1)

	var run func(attempt int)
	run = func(attempt int) {
		err := fn(attempt)
		if h.Cancelled() {
			return
		}
		if err == nil || attempt >= maxAttempts || !policy.retryable(err) {
			if onDone != nil {
				onDone(err)
			}
			return
		}
		h.schedule(s, policy.delay(attempt), func() { run(attempt + 1) })
	}
	run(1)
	return h
}

// Poll calls fn every interval until fn returns false or the handle is cancelled.
func Poll(s port.Scheduler, interval time.Duration, fn func() bool) *CancelHandle {
	h := &CancelHandle{}
	var tick func()
	tick = func() {
		if !fn() {
			return
		}
		h.schedule(s, interval, tick)
	}
	h.schedule(s, interval, tick)
	return h
}
