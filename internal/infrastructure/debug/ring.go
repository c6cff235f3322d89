// Package debug keeps the debug echo of bridged calls.
package debug

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/bnema/tabshell/internal/application/port"
	"github.com/bnema/tabshell/internal/domain/entity"
	"github.com/bnema/tabshell/internal/logging"
)

// DefaultSize is used when a non-positive size is requested.
const DefaultSize = 200

// Entry is one recorded echo.
type Entry struct {
	ID   string
	At   time.Time
	Info entity.DebugInfo
}

// Ring is a fixed-size buffer of recent echoes. It implements port.DebugSink.
type Ring struct {
	mu      sync.Mutex
	entries []Entry
	next    int
	full    bool
	logAll  bool
	now     func() time.Time
}

// NewRing creates a ring holding size entries. When logAll is set every
// echo is also written to the context logger at debug level.
func NewRing(size int, logAll bool) *Ring {
	if size <= 0 {
		size = DefaultSize
	}
	return &Ring{
		entries: make([]Entry, size),
		logAll:  logAll,
		now:     time.Now,
	}
}

// Record stores info under a new correlation id.
func (r *Ring) Record(ctx context.Context, info *entity.DebugInfo) {
	if info == nil {
		return
	}
	entry := Entry{ID: uuid.NewString(), Info: *info}

	r.mu.Lock()
	entry.At = r.now()
	r.entries[r.next] = entry
	r.next = (r.next + 1) % len(r.entries)
	if r.next == 0 {
		r.full = true
	}
	r.mu.Unlock()

	if r.logAll {
		logging.FromContext(ctx).Debug().
			Str("correlation_id", entry.ID).
			Str("method", info.RequestMethod).
			Str("url", info.RequestURL).
			Int("status", info.ResponseStatus).
			Interface("request_headers", info.RequestHeaders).
			Interface("response_headers", info.ResponseHeaders).
			Msg("bridge echo")
	}
}

// Recent returns up to n entries, newest first. n <= 0 returns everything.
func (r *Ring) Recent(n int) []Entry {
	r.mu.Lock()
	defer r.mu.Unlock()

	count := r.next
	if r.full {
		count = len(r.entries)
	}
	if n <= 0 || n > count {
		n = count
	}

	out := make([]Entry, 0, n)
	for i := 1; i <= n; i++ {
		idx := (r.next - i + len(r.entries)) % len(r.entries)
		out = append(out, r.entries[idx])
	}
	return out
}

// Len returns the number of stored entries.
func (r *Ring) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.full {
		return len(r.entries)
	}
	return r.next
}

var _ port.DebugSink = (*Ring)(nil)
