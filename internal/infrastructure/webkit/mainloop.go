package webkit

import (
	"sync"
	"time"

	"github.com/diamondburned/gotk4/pkg/core/glib"

	"github.com/bnema/tabshell/internal/application/port"
)

// RunOnMainThread schedules fn on the GTK main loop.
func RunOnMainThread(fn func()) {
	glib.IdleAdd(func() bool {
		fn()
		return false
	})
}

// Scheduler runs callbacks on the GTK main loop. It implements port.Scheduler.
type Scheduler struct{}

// NewScheduler creates a main loop scheduler.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// AfterFunc implements port.Scheduler.
func (*Scheduler) AfterFunc(d time.Duration, fn func()) port.Timer {
	t := &mainLoopTimer{}
	ms := uint(d / time.Millisecond)
	t.mu.Lock()
	defer t.mu.Unlock()
	t.source = glib.TimeoutAdd(ms, func() bool {
		if t.fire() {
			fn()
		}
		return false
	})
	return t
}

type mainLoopTimer struct {
	mu     sync.Mutex
	source glib.SourceHandle
	done   bool
}

func (t *mainLoopTimer) fire() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.done {
		return false
	}
	t.done = true
	return true
}

// Stop implements port.Timer.
func (t *mainLoopTimer) Stop() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.done {
		return false
	}
	t.done = true
	glib.SourceRemove(t.source)
	return true
}

var _ port.Scheduler = (*Scheduler)(nil)
