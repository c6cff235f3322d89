package usecase

import (
	"context"
	"fmt"
	"sync"

	"github.com/bnema/tabshell/internal/application/port"
	"github.com/bnema/tabshell/internal/domain/entity"
	"github.com/bnema/tabshell/internal/logging"
)

// DefaultMaxTabs is the registry capacity.
const DefaultMaxTabs = 20

const blankURL = "about:blank"

// ContextProvider creates and tears down a tab's rendering context.
type ContextProvider interface {
	Create(ctx context.Context, id entity.TabID, url string) (*ContextHandle, error)
	Destroy(ctx context.Context, h *ContextHandle)
}

// ZoomApplier pushes the current zoom factor onto one context immediately.
type ZoomApplier interface {
	ApplyTo(ctx context.Context, rc port.RenderingContext)
}

// TabRegistryConfig configures a TabRegistry.
type TabRegistryConfig struct {
	MaxTabs int
	EnvName string
}

// TabRegistry owns the tab order and the active pointer. It is the only
// writer of either; everything else goes through its operations.
type TabRegistry struct {
	contexts ContextProvider
	host     port.WindowHost
	notifier port.Notification

	mu        sync.Mutex
	tabs      *entity.TabList
	handles   map[entity.TabID]*ContextHandle
	nextID    uint64
	maxTabs   int
	envName   string
	zoom      ZoomApplier
	observers []port.TabsObserver
}

// NewTabRegistry creates an empty registry.
func NewTabRegistry(contexts ContextProvider, host port.WindowHost, notifier port.Notification, cfg TabRegistryConfig) *TabRegistry {
	if cfg.MaxTabs <= 0 {
		cfg.MaxTabs = DefaultMaxTabs
	}
	return &TabRegistry{
		contexts: contexts,
		host:     host,
		notifier: notifier,
		tabs:     entity.NewTabList(),
		handles:  make(map[entity.TabID]*ContextHandle),
		maxTabs:  cfg.MaxTabs,
		envName:  cfg.EnvName,
	}
}

// AttachZoom sets the coordinator reapplied on activation.
func (r *TabRegistry) AttachZoom(z ZoomApplier) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.zoom = z
}

// AddObserver registers o for tab list changes.
func (r *TabRegistry) AddObserver(o port.TabsObserver) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.observers = append(r.observers, o)
}

// SetEnvName updates the environment suffix of the window title.
func (r *TabRegistry) SetEnvName(ctx context.Context, name string) {
	r.mu.Lock()
	r.envName = name
	active := r.tabs.ActiveTabID
	r.mu.Unlock()
	if active != "" {
		r.syncWindowTitle(ctx, active)
	}
}

// CreateTab appends a tab for url and activates it.
func (r *TabRegistry) CreateTab(ctx context.Context, url string) (entity.TabID, error) {
	log := logging.FromContext(ctx)
	if url == "" {
		url = blankURL
	}

	r.mu.Lock()
	if r.tabs.Count() >= r.maxTabs {
		limit := r.maxTabs
		r.mu.Unlock()
		log.Warn().Int("max_tabs", limit).Str("url", url).Msg("tab limit reached")
		if r.notifier != nil {
			r.notifier.Show(ctx, fmt.Sprintf("Tab limit reached (%d)", limit), port.NotificationWarning, 0)
		}
		return "", entity.ErrTabLimitReached
	}
	r.nextID++
	id := entity.NewTabID(r.nextID)
	r.tabs.Add(entity.NewTab(id, url))
	prev := r.handles[r.tabs.ActiveTabID]
	r.tabs.ActiveTabID = id
	count := r.tabs.Count()
	r.mu.Unlock()

	log.Info().Str("tab_id", string(id)).Str("url", url).Int("count", count).Msg("tab created")

	h, err := r.contexts.Create(ctx, id, url)
	if err != nil {
		log.Error().Err(err).Str("tab_id", string(id)).Msg("failed to create rendering context")
	} else {
		r.mu.Lock()
		if r.tabs.Find(id) == nil {
			r.mu.Unlock()
			r.contexts.Destroy(ctx, h)
		} else {
			r.handles[id] = h
			r.mu.Unlock()
		}
	}

	r.applyActivation(ctx, prev, id)
	r.emit(ctx)
	return id, nil
}

// ActivateTab makes id the active tab.
func (r *TabRegistry) ActivateTab(ctx context.Context, id entity.TabID) error {
	r.mu.Lock()
	if r.tabs.Find(id) == nil {
		r.mu.Unlock()
		return entity.ErrTabNotFound
	}
	var prev *ContextHandle
	if r.tabs.ActiveTabID != id {
		prev = r.handles[r.tabs.ActiveTabID]
	}
	r.tabs.ActiveTabID = id
	r.mu.Unlock()

	r.applyActivation(ctx, prev, id)
	r.emit(ctx)
	return nil
}

// CloseTab removes id. The last tab is never closed.
func (r *TabRegistry) CloseTab(ctx context.Context, id entity.TabID) error {
	log := logging.FromContext(ctx)

	r.mu.Lock()
	tab := r.tabs.Find(id)
	if tab == nil {
		r.mu.Unlock()
		return entity.ErrTabNotFound
	}
	if r.tabs.Count() == 1 {
		r.mu.Unlock()
		log.Debug().Str("tab_id", string(id)).Msg("refusing to close last tab")
		return entity.ErrLastTab
	}
	tab.State = entity.TabClosed
	h := r.handles[id]
	delete(r.handles, id)
	wasActive := r.tabs.ActiveTabID == id
	idx := r.tabs.Remove(id)
	var next entity.TabID
	if wasActive {
		next = r.tabs.At(min(idx, r.tabs.Count()-1)).ID
		r.tabs.ActiveTabID = next
	}
	remaining := r.tabs.Count()
	r.mu.Unlock()

	if h != nil {
		r.contexts.Destroy(ctx, h)
	}
	log.Info().Str("tab_id", string(id)).Str("new_active", string(next)).Int("remaining", remaining).Msg("tab closed")

	if wasActive {
		r.applyActivation(ctx, nil, next)
	}
	r.emit(ctx)
	return nil
}

// DuplicateTab opens a new tab at id's current URL.
func (r *TabRegistry) DuplicateTab(ctx context.Context, id entity.TabID) (entity.TabID, error) {
	url, ok := r.CurrentURL(id)
	if !ok {
		return "", entity.ErrTabNotFound
	}
	return r.CreateTab(ctx, url)
}

// CurrentURL returns the live URL of id's context, falling back to the
// last known URL when the context cannot be read.
func (r *TabRegistry) CurrentURL(id entity.TabID) (string, bool) {
	r.mu.Lock()
	tab := r.tabs.Find(id)
	if tab == nil {
		r.mu.Unlock()
		return "", false
	}
	stored := tab.URL
	h := r.handles[id]
	r.mu.Unlock()

	if h == nil {
		return stored, true
	}
	uri, err := h.Context.URI()
	if err != nil || uri == "" || uri == blankURL {
		return stored, true
	}

	r.mu.Lock()
	if tab := r.tabs.Find(id); tab != nil {
		tab.URL = uri
	}
	r.mu.Unlock()
	return uri, true
}

// ReorderTab moves dragged to target's position, pushing target along.
func (r *TabRegistry) ReorderTab(ctx context.Context, dragged, target entity.TabID) bool {
	if dragged == target {
		return false
	}
	r.mu.Lock()
	targetIdx := r.tabs.IndexOf(target)
	if targetIdx < 0 || r.tabs.IndexOf(dragged) < 0 {
		r.mu.Unlock()
		return false
	}
	moved := r.tabs.Move(dragged, targetIdx)
	r.mu.Unlock()

	if moved {
		logging.FromContext(ctx).Debug().
			Str("dragged", string(dragged)).
			Str("target", string(target)).
			Int("position", targetIdx).
			Msg("tab reordered")
		r.emit(ctx)
	}
	return moved
}

// CloseToLeft closes every tab left of id.
func (r *TabRegistry) CloseToLeft(ctx context.Context, id entity.TabID) int {
	return r.closeBatch(ctx, id, func(ids []entity.TabID, idx int) []entity.TabID {
		return ids[:idx]
	})
}

// CloseToRight closes every tab right of id.
func (r *TabRegistry) CloseToRight(ctx context.Context, id entity.TabID) int {
	return r.closeBatch(ctx, id, func(ids []entity.TabID, idx int) []entity.TabID {
		return ids[idx+1:]
	})
}

// CloseOthers closes every tab except id.
func (r *TabRegistry) CloseOthers(ctx context.Context, id entity.TabID) int {
	return r.closeBatch(ctx, id, func(ids []entity.TabID, idx int) []entity.TabID {
		return append(ids[:idx:idx], ids[idx+1:]...)
	})
}

// closeBatch closes the selected tabs right to left so pending indices stay valid.
func (r *TabRegistry) closeBatch(ctx context.Context, keep entity.TabID, pick func([]entity.TabID, int) []entity.TabID) int {
	r.mu.Lock()
	idx := r.tabs.IndexOf(keep)
	if idx < 0 {
		r.mu.Unlock()
		return 0
	}
	victims := pick(r.tabs.IDs(), idx)
	active := r.tabs.ActiveTabID
	r.mu.Unlock()

	closed := 0
	activeClosed := false
	for i := len(victims) - 1; i >= 0; i-- {
		if err := r.CloseTab(ctx, victims[i]); err != nil {
			continue
		}
		closed++
		if victims[i] == active {
			activeClosed = true
		}
	}
	if activeClosed {
		_ = r.ActivateTab(ctx, keep)
	}
	return closed
}

// SwitchToNext activates the tab after id, wrapping around. An empty id
// means the active tab.
func (r *TabRegistry) SwitchToNext(ctx context.Context, id entity.TabID) {
	r.switchBy(ctx, id, 1)
}

// SwitchToPrev activates the tab before id, wrapping around.
func (r *TabRegistry) SwitchToPrev(ctx context.Context, id entity.TabID) {
	r.switchBy(ctx, id, -1)
}

func (r *TabRegistry) switchBy(ctx context.Context, id entity.TabID, step int) {
	r.mu.Lock()
	n := r.tabs.Count()
	if n < 2 {
		r.mu.Unlock()
		return
	}
	if id == "" {
		id = r.tabs.ActiveTabID
	}
	idx := r.tabs.IndexOf(id)
	if idx < 0 {
		r.mu.Unlock()
		return
	}
	target := r.tabs.At((idx + step + n) % n).ID
	r.mu.Unlock()

	_ = r.ActivateTab(ctx, target)
}

// SwitchToIndex activates the tab at position i.
func (r *TabRegistry) SwitchToIndex(ctx context.Context, i int) error {
	r.mu.Lock()
	tab := r.tabs.At(i)
	r.mu.Unlock()
	if tab == nil {
		return entity.ErrTabNotFound
	}
	return r.ActivateTab(ctx, tab.ID)
}

// RefreshTab reloads id's context.
func (r *TabRegistry) RefreshTab(ctx context.Context, id entity.TabID) error {
	r.mu.Lock()
	if r.tabs.Find(id) == nil {
		r.mu.Unlock()
		return entity.ErrTabNotFound
	}
	h := r.handles[id]
	r.mu.Unlock()
	if h == nil {
		return nil
	}
	if err := h.Context.Reload(); err != nil {
		logging.FromContext(ctx).Warn().Err(err).Str("tab_id", string(id)).Msg("reload failed")
		return err
	}
	return nil
}

// OpenTabInNewWindow opens id's current URL in a new host window. The tab stays.
func (r *TabRegistry) OpenTabInNewWindow(ctx context.Context, id entity.TabID) (port.WindowID, error) {
	url, ok := r.CurrentURL(id)
	if !ok {
		return "", entity.ErrTabNotFound
	}
	return r.host.CreateWindow(ctx, url, nil)
}

// SearchTabs returns tabs whose title contains query.
func (r *TabRegistry) SearchTabs(query string) []entity.TabSummary {
	r.mu.Lock()
	defer r.mu.Unlock()
	matches := r.tabs.Search(query)
	out := make([]entity.TabSummary, len(matches))
	for i, tab := range matches {
		out[i] = entity.TabSummary{
			ID:     tab.ID,
			URL:    tab.URL,
			Title:  tab.DisplayTitle(),
			State:  tab.State,
			Active: tab.ID == r.tabs.ActiveTabID,
		}
	}
	return out
}

// UpdateTitle records a resolved title; the active tab's title also goes
// to the window.
func (r *TabRegistry) UpdateTitle(ctx context.Context, id entity.TabID, title string) {
	r.mu.Lock()
	tab := r.tabs.Find(id)
	if tab == nil || tab.State == entity.TabClosed {
		r.mu.Unlock()
		return
	}
	tab.SetTitle(title)
	active := r.tabs.ActiveTabID == id
	r.mu.Unlock()

	if active {
		r.syncWindowTitle(ctx, id)
	}
	r.emit(ctx)
}

// Tabs returns a snapshot of the tabs in display order.
func (r *TabRegistry) Tabs() []entity.TabSummary {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.tabs.Snapshot()
}

// Count returns the number of tabs.
func (r *TabRegistry) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.tabs.Count()
}

// IDs returns tab ids in display order.
func (r *TabRegistry) IDs() []entity.TabID {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.tabs.IDs()
}

// ActiveTabID returns the active tab id.
func (r *TabRegistry) ActiveTabID() entity.TabID {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.tabs.ActiveTabID
}

// ActiveContext returns the active tab's context, or nil.
func (r *TabRegistry) ActiveContext() port.RenderingContext {
	r.mu.Lock()
	defer r.mu.Unlock()
	if h := r.handles[r.tabs.ActiveTabID]; h != nil {
		return h.Context
	}
	return nil
}

// Handle returns the context handle of id, or nil.
func (r *TabRegistry) Handle(id entity.TabID) *ContextHandle {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.handles[id]
}

// Contexts returns the live contexts in display order.
func (r *TabRegistry) Contexts() []port.RenderingContext {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]port.RenderingContext, 0, len(r.handles))
	for _, id := range r.tabs.IDs() {
		if h := r.handles[id]; h != nil {
			out = append(out, h.Context)
		}
	}
	return out
}

// applyActivation runs the side effects of id becoming active, unless
// another activation overtook it.
func (r *TabRegistry) applyActivation(ctx context.Context, prev *ContextHandle, id entity.TabID) {
	defer logging.Recover(ctx, "tab activation")

	r.mu.Lock()
	if r.tabs.ActiveTabID != id {
		r.mu.Unlock()
		return
	}
	next := r.handles[id]
	zoom := r.zoom
	r.mu.Unlock()

	if prev != nil && prev != next {
		prev.Context.SetVisible(false)
	}
	if next != nil {
		next.Context.SetVisible(true)
		if zoom != nil {
			zoom.ApplyTo(ctx, next.Context)
		}
	}
	r.syncWindowTitle(ctx, id)
}

func (r *TabRegistry) syncWindowTitle(ctx context.Context, id entity.TabID) {
	if r.host == nil {
		return
	}
	r.mu.Lock()
	tab := r.tabs.Find(id)
	if tab == nil {
		r.mu.Unlock()
		return
	}
	title := FormatWindowTitle(tab.DisplayTitle(), r.envName)
	r.mu.Unlock()

	if err := r.host.SetWindowTitle(ctx, title); err != nil {
		logging.FromContext(ctx).Debug().Err(err).Msg("failed to set window title")
	}
}

func (r *TabRegistry) emit(ctx context.Context) {
	r.mu.Lock()
	if len(r.observers) == 0 {
		r.mu.Unlock()
		return
	}
	snapshot := r.tabs.Snapshot()
	observers := append([]port.TabsObserver(nil), r.observers...)
	r.mu.Unlock()

	for _, o := range observers {
		o.OnTabsChanged(ctx, snapshot)
	}
}
