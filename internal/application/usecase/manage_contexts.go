package usecase

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/bnema/tabshell/internal/application/port"
	"github.com/bnema/tabshell/internal/domain/entity"
	"github.com/bnema/tabshell/internal/logging"
)

// ContextConfig tunes per-context background work.
type ContextConfig struct {
	// RetryAttempts bounds interception install attempts.
	RetryAttempts int
	// RetryBackoff is the linear backoff step between attempts.
	RetryBackoff time.Duration
	// TitlePollInterval is the fallback title poll period.
	TitlePollInterval time.Duration
}

// DefaultContextConfig returns the default context settings.
func DefaultContextConfig() ContextConfig {
	return ContextConfig{
		RetryAttempts:     5,
		RetryBackoff:      100 * time.Millisecond,
		TitlePollInterval: time.Second,
	}
}

// TitleSink receives resolved tab titles.
type TitleSink interface {
	UpdateTitle(ctx context.Context, id entity.TabID, title string)
}

// InputSink receives key and wheel events forwarded out of contexts.
type InputSink interface {
	HandleInput(ctx context.Context, ev port.InputEvent) bool
}

// ContextHandle owns one tab's rendering context and its background work.
type ContextHandle struct {
	TabID   entity.TabID
	Context port.RenderingContext

	url string

	mu        sync.Mutex
	closed    bool
	watching  bool
	lastTitle string
	inherit   *CancelHandle
	poll      *CancelHandle
	unobserve func()
	unload    func()
	uninput   func()
}

// Cancel stops the interception retry, the title watcher and every
// listener. Safe to call more than once.
func (h *ContextHandle) Cancel() {
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		return
	}
	h.closed = true
	inherit, poll := h.inherit, h.poll
	stops := []func(){h.unobserve, h.unload, h.uninput}
	h.inherit, h.poll = nil, nil
	h.unobserve, h.unload, h.uninput = nil, nil, nil
	h.mu.Unlock()

	inherit.Cancel()
	poll.Cancel()
	for _, stop := range stops {
		if stop != nil {
			stop()
		}
	}
}

// Closed reports whether Cancel was called.
func (h *ContextHandle) Closed() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.closed
}

// Watching reports whether the title watcher is running.
func (h *ContextHandle) Watching() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.watching && !h.closed
}

// acceptTitle dedupes repeated titles from observer and poll.
func (h *ContextHandle) acceptTitle(title string) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed || title == "" || title == h.lastTitle {
		return false
	}
	h.lastTitle = title
	return true
}

// ContextManager creates rendering contexts and wires interception, input
// forwarding and title resolution into each.
type ContextManager struct {
	factory   port.ContextFactory
	scheduler port.Scheduler
	cfg       ContextConfig

	mu     sync.RWMutex
	titles TitleSink
	input  InputSink
}

// NewContextManager creates a context manager.
func NewContextManager(factory port.ContextFactory, scheduler port.Scheduler, cfg ContextConfig) *ContextManager {
	defaults := DefaultContextConfig()
	if cfg.RetryAttempts <= 0 {
		cfg.RetryAttempts = defaults.RetryAttempts
	}
	if cfg.RetryBackoff <= 0 {
		cfg.RetryBackoff = defaults.RetryBackoff
	}
	if cfg.TitlePollInterval <= 0 {
		cfg.TitlePollInterval = defaults.TitlePollInterval
	}
	return &ContextManager{factory: factory, scheduler: scheduler, cfg: cfg}
}

// SetTitleSink sets where resolved titles go.
func (m *ContextManager) SetTitleSink(s TitleSink) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.titles = s
}

// SetInputSink sets where forwarded input goes.
func (m *ContextManager) SetInputSink(s InputSink) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.input = s
}

func (m *ContextManager) sinks() (TitleSink, InputSink) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.titles, m.input
}

// Create builds the context for a tab and starts loading url.
func (m *ContextManager) Create(ctx context.Context, id entity.TabID, url string) (*ContextHandle, error) {
	ctx = logging.WithTabID(context.WithoutCancel(ctx), string(id))
	log := logging.FromContext(ctx)

	rc, err := m.factory.NewContext(ctx, id)
	if err != nil {
		return nil, err
	}
	h := &ContextHandle{TabID: id, Context: rc, url: url}

	policy := RetryPolicy{
		MaxAttempts: m.cfg.RetryAttempts,
		Backoff:     LinearBackoff(m.cfg.RetryBackoff),
		Retryable: func(err error) bool {
			return errors.Is(err, port.ErrContextNotReady)
		},
	}
	inherit := Retry(m.scheduler, policy, func(attempt int) error {
		if h.Closed() {
			return nil
		}
		err := rc.InstallInterception()
		if err != nil {
			log.Debug().Err(err).Int("attempt", attempt).Msg("interception install failed")
		}
		return err
	}, func(err error) {
		if err != nil {
			log.Warn().Err(err).Msg("giving up on network interception for context")
			return
		}
		log.Debug().Msg("network interception installed")
	})

	uninput, err := rc.ForwardInput(func(ev port.InputEvent) bool {
		if h.Closed() {
			return false
		}
		_, input := m.sinks()
		if input == nil {
			return false
		}
		return input.HandleInput(ctx, ev)
	})
	if err != nil {
		log.Warn().Err(err).Msg("input forwarding unavailable")
	}

	unload := rc.OnLoadFinished(func() {
		m.resolveTitle(ctx, h)
	})

	h.mu.Lock()
	h.inherit = inherit
	h.uninput = uninput
	h.unload = unload
	h.mu.Unlock()

	if err := rc.LoadURL(url); err != nil {
		log.Warn().Err(err).Str("url", url).Msg("failed to load url")
	}
	return h, nil
}

// resolveTitle reads the title once and starts the watcher on first success.
func (m *ContextManager) resolveTitle(ctx context.Context, h *ContextHandle) {
	if h.Closed() {
		return
	}
	log := logging.FromContext(ctx)

	title, err := h.Context.Title()
	if err != nil {
		log.Debug().Err(err).Msg("title unreadable, falling back to url")
		m.stopWatching(h)
		m.publishTitle(ctx, h, m.fallbackTitle(h))
		return
	}
	m.publishTitle(ctx, h, title)
	m.startWatching(ctx, h)
}

func (m *ContextManager) fallbackTitle(h *ContextHandle) string {
	if uri, err := h.Context.URI(); err == nil && uri != "" {
		return uri
	}
	if h.url != "" {
		return h.url
	}
	return entity.LoadingTitle
}

func (m *ContextManager) publishTitle(ctx context.Context, h *ContextHandle, title string) {
	if !h.acceptTitle(title) {
		return
	}
	titles, _ := m.sinks()
	if titles != nil {
		titles.UpdateTitle(ctx, h.TabID, title)
	}
}

func (m *ContextManager) startWatching(ctx context.Context, h *ContextHandle) {
	h.mu.Lock()
	if h.closed || h.watching {
		h.mu.Unlock()
		return
	}
	h.watching = true
	h.mu.Unlock()

	unobserve, err := h.Context.ObserveTitle(func(title string) {
		m.publishTitle(ctx, h, title)
	})
	if err != nil {
		logging.FromContext(ctx).Debug().Err(err).Msg("title observer unavailable, relying on poll")
	}

	poll := Poll(m.scheduler, m.cfg.TitlePollInterval, func() bool {
		if h.Closed() {
			return false
		}
		title, err := h.Context.Title()
		if err != nil {
			m.publishTitle(ctx, h, m.fallbackTitle(h))
			m.stopWatching(h)
			return false
		}
		m.publishTitle(ctx, h, title)
		return true
	})

	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		poll.Cancel()
		if unobserve != nil {
			unobserve()
		}
		return
	}
	h.unobserve = unobserve
	h.poll = poll
	h.mu.Unlock()
}

func (m *ContextManager) stopWatching(h *ContextHandle) {
	h.mu.Lock()
	poll, unobserve := h.poll, h.unobserve
	h.poll, h.unobserve = nil, nil
	h.watching = false
	h.mu.Unlock()

	poll.Cancel()
	if unobserve != nil {
		unobserve()
	}
}

// Destroy releases background work, detaches and then destroys the context.
func (m *ContextManager) Destroy(ctx context.Context, h *ContextHandle) {
	if h == nil {
		return
	}
	defer logging.Recover(ctx, "destroy rendering context")
	h.Cancel()
	h.Context.Detach()
	h.Context.Destroy()
	logging.FromContext(ctx).Debug().Str("tab_id", string(h.TabID)).Msg("rendering context destroyed")
}
