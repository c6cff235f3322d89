package usecase

import (
	"sort"
	"sync"
	"time"

	"github.com/bnema/tabshell/internal/application/port"
)

// fakeScheduler is a manual clock: timers fire only inside Advance.
type fakeScheduler struct {
	mu     sync.Mutex
	now    time.Duration
	seq    int
	timers []*fakeTimer
}

type fakeTimer struct {
	s       *fakeScheduler
	at      time.Duration
	seq     int
	fn      func()
	stopped bool
	fired   bool
}

func newFakeScheduler() *fakeScheduler {
	return &fakeScheduler{}
}

func (s *fakeScheduler) AfterFunc(d time.Duration, fn func()) port.Timer {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	t := &fakeTimer{s: s, at: s.now + d, seq: s.seq, fn: fn}
	s.timers = append(s.timers, t)
	return t
}

func (t *fakeTimer) Stop() bool {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()
	if t.stopped || t.fired {
		return false
	}
	t.stopped = true
	return true
}

// Advance moves the clock forward, firing due timers in deadline order,
// including timers scheduled by callbacks that fall inside the window.
func (s *fakeScheduler) Advance(d time.Duration) {
	s.mu.Lock()
	target := s.now + d
	s.mu.Unlock()

	for {
		s.mu.Lock()
		var next *fakeTimer
		live := s.timers[:0]
		for _, t := range s.timers {
			if t.stopped || t.fired {
				continue
			}
			live = append(live, t)
		}
		s.timers = live
		sort.Slice(s.timers, func(i, j int) bool {
			if s.timers[i].at == s.timers[j].at {
				return s.timers[i].seq < s.timers[j].seq
			}
			return s.timers[i].at < s.timers[j].at
		})
		if len(s.timers) > 0 && s.timers[0].at <= target {
			next = s.timers[0]
			next.fired = true
			s.now = next.at
		}
		s.mu.Unlock()

		if next == nil {
			break
		}
		next.fn()
	}

	s.mu.Lock()
	s.now = target
	s.mu.Unlock()
}

// Pending counts timers that have neither fired nor been stopped.
func (s *fakeScheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, t := range s.timers {
		if !t.stopped && !t.fired {
			n++
		}
	}
	return n
}
