package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/bnema/tabshell/internal/application/port"
	"github.com/bnema/tabshell/internal/domain/entity"
	"github.com/bnema/tabshell/internal/logging"
)

// ZoomConfig tunes the zoom debounce.
type ZoomConfig struct {
	DebounceBase   time.Duration
	DebouncePerTab time.Duration
	DebounceMax    time.Duration
	// Default is the factor Reset returns to.
	Default float64
}

// DefaultZoomConfig returns the default zoom settings.
func DefaultZoomConfig() ZoomConfig {
	return ZoomConfig{
		DebounceBase:   60 * time.Millisecond,
		DebouncePerTab: 15 * time.Millisecond,
		DebounceMax:    300 * time.Millisecond,
		Default:        entity.ZoomDefault,
	}
}

// ZoomController is the zoom API exposed to callers.
type ZoomController interface {
	Get() float64
	Set(ctx context.Context, factor float64) float64
	ZoomIn(ctx context.Context) float64
	ZoomOut(ctx context.Context) float64
	Reset(ctx context.Context) float64
}

// TabEnumerator lists the contexts a zoom change must reach.
type TabEnumerator interface {
	Count() int
	Contexts() []port.RenderingContext
}

// ZoomCoordinator holds the single shell-wide zoom factor and coalesces
// changes through one debounce timer.
type ZoomCoordinator struct {
	tabs      TabEnumerator
	host      port.WindowHost
	notifier  port.Notification
	scheduler port.Scheduler

	mu      sync.Mutex
	cfg     ZoomConfig
	current float64
	gen     uint64
	timer   port.Timer
}

// NewZoomCoordinator creates a coordinator at the configured default factor.
func NewZoomCoordinator(tabs TabEnumerator, host port.WindowHost, notifier port.Notification, scheduler port.Scheduler, cfg ZoomConfig) *ZoomCoordinator {
	cfg = normalizeZoomConfig(cfg)
	return &ZoomCoordinator{
		tabs:      tabs,
		host:      host,
		notifier:  notifier,
		scheduler: scheduler,
		cfg:       cfg,
		current:   cfg.Default,
	}
}

func normalizeZoomConfig(cfg ZoomConfig) ZoomConfig {
	defaults := DefaultZoomConfig()
	if cfg.DebounceBase <= 0 {
		cfg.DebounceBase = defaults.DebounceBase
	}
	if cfg.DebouncePerTab < 0 {
		cfg.DebouncePerTab = 0
	}
	if cfg.DebounceMax <= 0 {
		cfg.DebounceMax = defaults.DebounceMax
	}
	if cfg.Default <= 0 {
		cfg.Default = defaults.Default
	}
	cfg.Default = entity.ClampZoom(cfg.Default)
	return cfg
}

// UpdateConfig swaps the debounce settings, e.g. after a config reload.
func (z *ZoomCoordinator) UpdateConfig(cfg ZoomConfig) {
	z.mu.Lock()
	defer z.mu.Unlock()
	z.cfg = normalizeZoomConfig(cfg)
}

// Get returns the current factor.
func (z *ZoomCoordinator) Get() float64 {
	z.mu.Lock()
	defer z.mu.Unlock()
	return z.current
}

// DebounceWindow returns the coalescing window for the current tab count.
func (z *ZoomCoordinator) DebounceWindow() time.Duration {
	n := z.tabs.Count()
	z.mu.Lock()
	defer z.mu.Unlock()
	return z.window(n)
}

func (z *ZoomCoordinator) window(tabs int) time.Duration {
	return min(z.cfg.DebounceBase+z.cfg.DebouncePerTab*time.Duration(tabs), z.cfg.DebounceMax)
}

// Set clamps factor, records it and restarts the debounce timer. Only the
// latest value reaches the host.
func (z *ZoomCoordinator) Set(ctx context.Context, factor float64) float64 {
	ctx = context.WithoutCancel(ctx)
	n := z.tabs.Count()

	z.mu.Lock()
	factor = entity.ClampZoom(factor)
	z.current = factor
	z.gen++
	gen := z.gen
	if z.timer != nil {
		z.timer.Stop()
	}
	window := z.window(n)
	z.timer = z.scheduler.AfterFunc(window, func() {
		z.flush(ctx, gen)
	})
	z.mu.Unlock()

	logging.FromContext(ctx).Debug().
		Float64("factor", factor).
		Dur("debounce", window).
		Msg("zoom requested")

	if z.notifier != nil {
		z.notifier.ShowZoom(ctx, entity.ZoomPercentage(factor))
	}
	return factor
}

// ZoomIn steps the factor up.
func (z *ZoomCoordinator) ZoomIn(ctx context.Context) float64 {
	return z.Set(ctx, z.Get()+entity.ZoomStep)
}

// ZoomOut steps the factor down.
func (z *ZoomCoordinator) ZoomOut(ctx context.Context) float64 {
	return z.Set(ctx, z.Get()-entity.ZoomStep)
}

// Reset returns to the default factor.
func (z *ZoomCoordinator) Reset(ctx context.Context) float64 {
	z.mu.Lock()
	def := z.cfg.Default
	z.mu.Unlock()
	return z.Set(ctx, def)
}

// ApplyTo sets the current factor on rc right away.
func (z *ZoomCoordinator) ApplyTo(ctx context.Context, rc port.RenderingContext) {
	if rc == nil {
		return
	}
	factor := z.Get()
	if err := rc.SetZoom(factor); err != nil {
		logging.FromContext(ctx).Debug().Err(err).Uint64("context_id", uint64(rc.ID())).Msg("failed to apply zoom")
	}
}

func (z *ZoomCoordinator) flush(ctx context.Context, gen uint64) {
	defer logging.Recover(ctx, "zoom flush")

	z.mu.Lock()
	if gen != z.gen {
		z.mu.Unlock()
		return
	}
	factor := z.current
	z.timer = nil
	z.mu.Unlock()

	log := logging.FromContext(ctx)
	if z.host != nil {
		if err := z.host.SetNativeZoom(ctx, factor); err != nil {
			log.Warn().Err(err).Float64("factor", factor).Msg("native zoom failed")
		}
	}
	for _, rc := range z.tabs.Contexts() {
		if err := rc.SetZoom(factor); err != nil {
			log.Debug().Err(err).Uint64("context_id", uint64(rc.ID())).Msg("failed to push zoom to context")
		}
	}
	log.Info().Float64("factor", factor).Int("percent", entity.ZoomPercentage(factor)).Msg("zoom applied")
}

// ForContext returns a controller for nested contexts that forwards every
// call here, keeping one zoom state for the whole shell.
func (z *ZoomCoordinator) ForContext() ZoomController {
	return forwardingZoom{top: z}
}

type forwardingZoom struct {
	top *ZoomCoordinator
}

func (f forwardingZoom) Get() float64 { return f.top.Get() }

func (f forwardingZoom) Set(ctx context.Context, factor float64) float64 {
	return f.top.Set(ctx, factor)
}

func (f forwardingZoom) ZoomIn(ctx context.Context) float64  { return f.top.ZoomIn(ctx) }
func (f forwardingZoom) ZoomOut(ctx context.Context) float64 { return f.top.ZoomOut(ctx) }
func (f forwardingZoom) Reset(ctx context.Context) float64   { return f.top.Reset(ctx) }
