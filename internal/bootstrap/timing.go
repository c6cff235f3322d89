package bootstrap

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/bnema/tabshell/internal/logging"
)

// StartupTimer records how long each startup phase took. Safe for use from
// the parallel init goroutines.
type StartupTimer struct {
	mu     sync.Mutex
	start  time.Time
	last   time.Time
	phases []phase
}

type phase struct {
	name string
	dur  time.Duration
}

// NewStartupTimer starts a timer now.
func NewStartupTimer() *StartupTimer {
	now := time.Now()
	return &StartupTimer{start: now, last: now}
}

// Mark closes the phase that began at the previous mark.
func (t *StartupTimer) Mark(name string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	now := time.Now()
	t.phases = append(t.phases, phase{name: name, dur: now.Sub(t.last)})
	t.last = now
}

// MarkDuration records a phase timed elsewhere.
func (t *StartupTimer) MarkDuration(name string, d time.Duration) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.phases = append(t.phases, phase{name: name, dur: d})
}

// Phases returns the recorded phase names in order.
func (t *StartupTimer) Phases() []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	names := make([]string, len(t.phases))
	for i, p := range t.phases {
		names[i] = p.name
	}
	return names
}

// Log writes every phase at debug level.
func (t *StartupTimer) Log(ctx context.Context) {
	t.mu.Lock()
	defer t.mu.Unlock()
	log := logging.FromContext(ctx)
	if log.GetLevel() > zerolog.DebugLevel {
		return
	}
	ev := log.Debug().Dur("total", time.Since(t.start))
	for _, p := range t.phases {
		ev = ev.Dur(p.name, p.dur)
	}
	ev.Msg("startup timing")
}
