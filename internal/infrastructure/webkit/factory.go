package webkit

import (
	"context"
	"sync"
	"sync/atomic"

	webkit "github.com/diamondburned/gotk4-webkitgtk/pkg/webkit/v6"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"

	"github.com/bnema/tabshell/internal/application/port"
	"github.com/bnema/tabshell/internal/domain/entity"
	"github.com/bnema/tabshell/internal/infrastructure/webkit/messaging"
	"github.com/bnema/tabshell/internal/infrastructure/webkit/shim"
	"github.com/bnema/tabshell/internal/logging"
)

var contextIDs atomic.Uint64

// GestureSink receives the pointer trace and context-menu requests of
// every view.
type GestureSink interface {
	Record(p entity.Point)
	Trigger(ctx context.Context) bool
}

// AttachFunc places a new view in the window and returns its detach func.
type AttachFunc func(id entity.TabID, view gtk.Widgetter) (detach func())

// Factory creates WebViews for one shell window. It implements
// port.ContextFactory.
type Factory struct {
	router   *messaging.Router
	shim     shim.Config
	settings SettingsConfig
	attach   AttachFunc

	mu       sync.Mutex
	gestures GestureSink
	seed     *port.StorageSnapshot
}

// NewFactory creates a factory.
func NewFactory(router *messaging.Router, shimCfg shim.Config, settings SettingsConfig, attach AttachFunc) *Factory {
	if shimCfg.Handler == "" {
		shimCfg.Handler = messaging.HandlerName
	}
	return &Factory{
		router:   router,
		shim:     shimCfg,
		settings: settings,
		attach:   attach,
	}
}

// SetGestureSink routes pointer gestures of future views to g.
func (f *Factory) SetGestureSink(g GestureSink) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.gestures = g
}

// SeedNextContext hands snapshot to the next context created.
func (f *Factory) SeedNextContext(snapshot *port.StorageSnapshot) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.seed = snapshot
}

// NewContext implements port.ContextFactory.
func (f *Factory) NewContext(ctx context.Context, tabID entity.TabID) (port.RenderingContext, error) {
	log := logging.FromContext(ctx)

	f.mu.Lock()
	gestures, seed := f.gestures, f.seed
	f.seed = nil
	f.mu.Unlock()

	id := port.ContextID(contextIDs.Add(1))
	view := webkit.NewWebView()
	ApplySettings(ctx, view.Settings(), f.settings)
	view.SetHExpand(true)
	view.SetVExpand(true)

	rc := newRenderingContext(ctx, id, view, f.router, f.shim)
	if err := rc.SeedStorage(seed); err != nil {
		log.Warn().Err(err).Msg("storage snapshot not applied")
	}
	if gestures != nil {
		wireGestures(ctx, view, gestures)
	}
	if f.attach != nil {
		rc.detach = f.attach(tabID, view)
	}

	log.Debug().Uint64("context_id", uint64(id)).Msg("webview created")
	return rc, nil
}

func wireGestures(ctx context.Context, view *webkit.WebView, g GestureSink) {
	motion := gtk.NewEventControllerMotion()
	motion.ConnectMotion(func(x, y float64) {
		g.Record(entity.Point{X: x, Y: y})
	})
	view.AddController(motion)

	view.ConnectContextMenu(func(_ *webkit.ContextMenu, _ *webkit.HitTestResult) bool {
		defer logging.Recover(ctx, "context menu gesture")
		return g.Trigger(ctx)
	})
}

var _ port.ContextFactory = (*Factory)(nil)
