package usecase

import (
	"context"
	"math"
	"sync"
	"time"

	"github.com/bnema/tabshell/internal/domain/entity"
	"github.com/bnema/tabshell/internal/logging"
)

// GestureConfig tunes horizontal swipe recognition.
type GestureConfig struct {
	Window time.Duration
	// MinDistance is the net travel, in px, a swipe needs.
	MinDistance float64
	// DominanceRatio is how much |dx| must exceed |dy|.
	DominanceRatio float64
	// MinVelocity is in px/ms.
	MinVelocity float64
	// NaturalScrolling reverses the direction mapping.
	NaturalScrolling bool
}

// DefaultGestureConfig returns the default gesture settings. Natural
// scrolling follows the platform convention.
func DefaultGestureConfig() GestureConfig {
	return GestureConfig{
		Window:           300 * time.Millisecond,
		MinDistance:      80,
		DominanceRatio:   2,
		MinVelocity:      0.3,
		NaturalScrolling: IsMacPlatform(),
	}
}

// GestureDirection is a classified swipe.
type GestureDirection int

const (
	GestureNone GestureDirection = iota
	GestureLeft
	GestureRight
)

func (g GestureDirection) String() string {
	switch g {
	case GestureLeft:
		return "left"
	case GestureRight:
		return "right"
	default:
		return "none"
	}
}

// TabSwitcher moves the active tab relative to a tab.
type TabSwitcher interface {
	SwitchToNext(ctx context.Context, id entity.TabID)
	SwitchToPrev(ctx context.Context, id entity.TabID)
}

type pointerSample struct {
	p  entity.Point
	at time.Time
}

// GestureRecognizer buffers recent pointer samples and turns a fast
// horizontal stroke ending in a context-menu request into a tab switch.
type GestureRecognizer struct {
	tabs TabSwitcher
	now  func() time.Time

	mu      sync.Mutex
	cfg     GestureConfig
	samples []pointerSample
}

// NewGestureRecognizer creates a recognizer.
func NewGestureRecognizer(tabs TabSwitcher, cfg GestureConfig) *GestureRecognizer {
	return &GestureRecognizer{tabs: tabs, now: time.Now, cfg: normalizeGestureConfig(cfg)}
}

func normalizeGestureConfig(cfg GestureConfig) GestureConfig {
	defaults := DefaultGestureConfig()
	if cfg.Window <= 0 {
		cfg.Window = defaults.Window
	}
	if cfg.MinDistance <= 0 {
		cfg.MinDistance = defaults.MinDistance
	}
	if cfg.DominanceRatio <= 0 {
		cfg.DominanceRatio = defaults.DominanceRatio
	}
	if cfg.MinVelocity <= 0 {
		cfg.MinVelocity = defaults.MinVelocity
	}
	return cfg
}

// UpdateConfig swaps the thresholds.
func (g *GestureRecognizer) UpdateConfig(cfg GestureConfig) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.cfg = normalizeGestureConfig(cfg)
}

// Record buffers a pointer position at the current time.
func (g *GestureRecognizer) Record(p entity.Point) {
	g.RecordAt(p, g.now())
}

// RecordAt buffers a pointer position observed at t.
func (g *GestureRecognizer) RecordAt(p entity.Point, t time.Time) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.samples = append(g.samples, pointerSample{p: p, at: t})
	g.prune(t)
}

func (g *GestureRecognizer) prune(now time.Time) {
	cutoff := now.Add(-g.cfg.Window)
	i := 0
	for i < len(g.samples) && g.samples[i].at.Before(cutoff) {
		i++
	}
	if i > 0 {
		g.samples = append(g.samples[:0], g.samples[i:]...)
	}
}

// ClassifyAt analyzes the samples still inside the window at now.
func (g *GestureRecognizer) ClassifyAt(now time.Time) GestureDirection {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.prune(now)
	if len(g.samples) < 2 {
		return GestureNone
	}
	first, last := g.samples[0], g.samples[len(g.samples)-1]
	elapsed := float64(last.at.Sub(first.at)) / float64(time.Millisecond)
	if elapsed <= 0 {
		return GestureNone
	}

	d := last.p.Sub(first.p)
	dist := math.Hypot(d.X, d.Y)
	if dist < g.cfg.MinDistance {
		return GestureNone
	}
	if math.Abs(d.X) < g.cfg.DominanceRatio*math.Abs(d.Y) {
		return GestureNone
	}
	if dist/elapsed < g.cfg.MinVelocity {
		return GestureNone
	}
	if d.X > 0 {
		return GestureRight
	}
	return GestureLeft
}

// Trigger handles a context-menu request. It returns true when a swipe was
// recognized, in which case the menu should be suppressed.
func (g *GestureRecognizer) Trigger(ctx context.Context) bool {
	return g.TriggerAt(ctx, g.now())
}

// TriggerAt is Trigger at an explicit time.
func (g *GestureRecognizer) TriggerAt(ctx context.Context, now time.Time) bool {
	dir := g.ClassifyAt(now)

	g.mu.Lock()
	g.samples = g.samples[:0]
	natural := g.cfg.NaturalScrolling
	g.mu.Unlock()

	if dir == GestureNone {
		return false
	}

	next := dir == GestureRight
	if natural {
		next = !next
	}
	logging.FromContext(ctx).Debug().
		Str("direction", dir.String()).
		Bool("natural", natural).
		Bool("next", next).
		Msg("swipe gesture recognized")

	if next {
		g.tabs.SwitchToNext(ctx, "")
	} else {
		g.tabs.SwitchToPrev(ctx, "")
	}
	return true
}
