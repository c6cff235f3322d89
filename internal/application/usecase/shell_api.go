package usecase

import (
	"context"

	"github.com/bnema/tabshell/internal/application/port"
	"github.com/bnema/tabshell/internal/domain/entity"
	"github.com/bnema/tabshell/internal/logging"
)

// ShellAPI is the facade exposed to page scripts as window.tabshell.
type ShellAPI struct {
	tabs *TabRegistry
	zoom ZoomController
	host port.WindowHost
}

// NewShellAPI creates the facade.
func NewShellAPI(tabs *TabRegistry, zoom ZoomController, host port.WindowHost) *ShellAPI {
	return &ShellAPI{tabs: tabs, zoom: zoom, host: host}
}

// ForContext returns a facade whose zoom calls forward to the top-level
// coordinator, for use by nested frames.
func (a *ShellAPI) ForContext() *ShellAPI {
	zoom := a.zoom
	if zc, ok := zoom.(*ZoomCoordinator); ok {
		zoom = zc.ForContext()
	}
	return &ShellAPI{tabs: a.tabs, zoom: zoom, host: a.host}
}

// OpenWindow opens url in a new host window seeded with snapshot, which may
// be nil. An empty url uses the active tab's current URL.
func (a *ShellAPI) OpenWindow(ctx context.Context, url string, snapshot *port.StorageSnapshot) (port.WindowID, error) {
	if url == "" {
		url, _ = a.tabs.CurrentURL(a.tabs.ActiveTabID())
	}
	logging.FromContext(ctx).Debug().Str("url", url).Msg("opening window")
	return a.host.CreateWindow(ctx, url, snapshot)
}

// Zoom returns the zoom controller.
func (a *ShellAPI) Zoom() ZoomController {
	return a.zoom
}

// CreateTab opens a tab at url.
func (a *ShellAPI) CreateTab(ctx context.Context, url string) (entity.TabID, error) {
	return a.tabs.CreateTab(ctx, url)
}

// CloseTab closes id.
func (a *ShellAPI) CloseTab(ctx context.Context, id entity.TabID) error {
	return a.tabs.CloseTab(ctx, id)
}

// ActivateTab activates id.
func (a *ShellAPI) ActivateTab(ctx context.Context, id entity.TabID) error {
	return a.tabs.ActivateTab(ctx, id)
}

// DuplicateTab clones id.
func (a *ShellAPI) DuplicateTab(ctx context.Context, id entity.TabID) (entity.TabID, error) {
	return a.tabs.DuplicateTab(ctx, id)
}

// ReorderTab moves dragged onto target's position.
func (a *ShellAPI) ReorderTab(ctx context.Context, dragged, target entity.TabID) bool {
	return a.tabs.ReorderTab(ctx, dragged, target)
}

// SearchTabs finds tabs by title.
func (a *ShellAPI) SearchTabs(query string) []entity.TabSummary {
	return a.tabs.SearchTabs(query)
}

// ListTabs returns every tab in display order.
func (a *ShellAPI) ListTabs() []entity.TabSummary {
	return a.tabs.Tabs()
}
