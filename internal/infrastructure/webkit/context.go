package webkit

import (
	"context"
	"sync"

	"github.com/diamondburned/gotk4-webkitgtk/pkg/javascriptcore/v6"
	webkit "github.com/diamondburned/gotk4-webkitgtk/pkg/webkit/v6"
	"github.com/diamondburned/gotk4/pkg/core/glib"
	"github.com/diamondburned/gotk4/pkg/gdk/v4"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"

	"github.com/bnema/tabshell/internal/application/port"
	"github.com/bnema/tabshell/internal/infrastructure/webkit/input"
	"github.com/bnema/tabshell/internal/infrastructure/webkit/messaging"
	"github.com/bnema/tabshell/internal/infrastructure/webkit/shim"
	"github.com/bnema/tabshell/internal/logging"
)

// RenderingContext is a tab's WebView. It implements port.RenderingContext.
// Every method must be called on the GTK main thread.
type RenderingContext struct {
	id     port.ContextID
	ctx    context.Context
	view   *webkit.WebView
	router *messaging.Router
	shim   shim.Config
	detach func()

	mu        sync.Mutex
	installed bool
	destroyed bool
	message   glib.SignalHandle
}

func newRenderingContext(ctx context.Context, id port.ContextID, view *webkit.WebView, router *messaging.Router, cfg shim.Config) *RenderingContext {
	cfg.ContextID = uint64(id)
	return &RenderingContext{
		id:     id,
		ctx:    ctx,
		view:   view,
		router: router,
		shim:   cfg,
	}
}

// ID implements port.RenderingContext.
func (c *RenderingContext) ID() port.ContextID {
	return c.id
}

// View returns the underlying WebView.
func (c *RenderingContext) View() *webkit.WebView {
	return c.view
}

func (c *RenderingContext) alive() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return !c.destroyed
}

// LoadURL implements port.RenderingContext.
func (c *RenderingContext) LoadURL(url string) error {
	if !c.alive() {
		return port.ErrContextDestroyed
	}
	c.view.LoadURI(url)
	return nil
}

// Reload implements port.RenderingContext.
func (c *RenderingContext) Reload() error {
	if !c.alive() {
		return port.ErrContextDestroyed
	}
	c.view.Reload()
	return nil
}

// URI implements port.RenderingContext.
func (c *RenderingContext) URI() (string, error) {
	if !c.alive() {
		return "", port.ErrContextDestroyed
	}
	return c.view.URI(), nil
}

// Title implements port.RenderingContext.
func (c *RenderingContext) Title() (string, error) {
	if !c.alive() {
		return "", port.ErrContextDestroyed
	}
	return c.view.Title(), nil
}

// SetZoom implements port.RenderingContext.
func (c *RenderingContext) SetZoom(factor float64) error {
	if !c.alive() {
		return port.ErrContextDestroyed
	}
	c.view.SetZoomLevel(factor)
	return nil
}

// SetVisible implements port.RenderingContext.
func (c *RenderingContext) SetVisible(visible bool) {
	if !c.alive() {
		return
	}
	c.view.SetVisible(visible)
}

// InstallInterception adds the shim to every frame of every future
// document and runs it in the current one.
func (c *RenderingContext) InstallInterception() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.destroyed {
		return port.ErrContextDestroyed
	}
	if c.installed {
		return nil
	}

	ucm := c.view.UserContentManager()
	if ucm == nil {
		return port.ErrContextNotReady
	}
	script, err := shim.Script(c.shim)
	if err != nil {
		return err
	}

	c.message = ucm.ConnectScriptMessageReceived(func(value *javascriptcore.Value) {
		if value == nil || !c.alive() {
			return
		}
		c.router.HandleJSON(value.ToJSON(0), c.evaluate)
	})
	if !ucm.RegisterScriptMessageHandler(messaging.HandlerName, "") {
		ucm.HandlerDisconnect(c.message)
		return port.ErrContextNotReady
	}

	ucm.AddScript(webkit.NewUserScript(
		script,
		webkit.UserContentInjectAllFrames,
		webkit.UserScriptInjectAtDocumentStart,
		nil,
		nil,
	))
	if c.view.URI() != "" {
		c.view.EvaluateJavascript(c.ctx, script, -1, "", "", nil)
	}
	c.installed = true
	return nil
}

// SeedStorage adds a document-start script restoring snapshot.
func (c *RenderingContext) SeedStorage(snapshot *port.StorageSnapshot) error {
	script, err := shim.StorageScript(snapshot)
	if err != nil || script == "" {
		return err
	}
	ucm := c.view.UserContentManager()
	if ucm == nil {
		return port.ErrContextNotReady
	}
	ucm.AddScript(webkit.NewUserScript(
		script,
		webkit.UserContentInjectTopFrame,
		webkit.UserScriptInjectAtDocumentStart,
		nil,
		nil,
	))
	return nil
}

// evaluate runs a reply script; it may be called from any goroutine.
func (c *RenderingContext) evaluate(script string) {
	RunOnMainThread(func() {
		if !c.alive() {
			return
		}
		c.view.EvaluateJavascript(c.ctx, script, -1, "", "", nil)
	})
}

// ForwardInput installs capture-phase key and scroll controllers on the view.
func (c *RenderingContext) ForwardInput(handler func(port.InputEvent) bool) (func(), error) {
	if !c.alive() {
		return nil, port.ErrContextDestroyed
	}

	keys := gtk.NewEventControllerKey()
	keys.SetPropagationPhase(gtk.PhaseCapture)
	keys.ConnectKeyPressed(func(keyval, _ uint, state gdk.ModifierType) bool {
		defer logging.Recover(c.ctx, "key forward")
		return handler(input.KeyEvent(gdk.KeyvalName(keyval), modifiers(state)))
	})

	scroll := gtk.NewEventControllerScroll(gtk.EventControllerScrollVertical)
	scroll.SetPropagationPhase(gtk.PhaseCapture)
	scroll.ConnectScroll(func(_, dy float64) bool {
		defer logging.Recover(c.ctx, "wheel forward")
		mods := modifiers(scroll.CurrentEventState())
		if !mods.Ctrl && !mods.Meta {
			return false
		}
		return handler(input.WheelEvent(dy, mods))
	})

	c.view.AddController(keys)
	c.view.AddController(scroll)

	var once sync.Once
	return func() {
		once.Do(func() {
			c.view.RemoveController(keys)
			c.view.RemoveController(scroll)
		})
	}, nil
}

// OnLoadFinished implements port.RenderingContext.
func (c *RenderingContext) OnLoadFinished(fn func()) func() {
	handle := c.view.ConnectLoadChanged(func(ev webkit.LoadEvent) {
		if ev == webkit.LoadFinished && c.alive() {
			fn()
		}
	})
	return c.disconnecter(handle)
}

// ObserveTitle implements port.RenderingContext.
func (c *RenderingContext) ObserveTitle(fn func(string)) (func(), error) {
	if !c.alive() {
		return nil, port.ErrContextDestroyed
	}
	handle := c.view.Connect("notify::title", func() {
		if c.alive() {
			fn(c.view.Title())
		}
	})
	return c.disconnecter(handle), nil
}

func (c *RenderingContext) disconnecter(handle glib.SignalHandle) func() {
	var once sync.Once
	return func() {
		once.Do(func() {
			c.view.HandlerDisconnect(handle)
		})
	}
}

// Detach implements port.RenderingContext.
func (c *RenderingContext) Detach() {
	c.mu.Lock()
	detach := c.detach
	c.detach = nil
	c.mu.Unlock()
	if detach != nil {
		detach()
	}
}

// Destroy implements port.RenderingContext.
func (c *RenderingContext) Destroy() {
	c.mu.Lock()
	if c.destroyed {
		c.mu.Unlock()
		return
	}
	c.destroyed = true
	installed := c.installed
	c.mu.Unlock()

	c.view.StopLoading()
	if installed {
		if ucm := c.view.UserContentManager(); ucm != nil {
			ucm.HandlerDisconnect(c.message)
			ucm.UnregisterScriptMessageHandler(messaging.HandlerName, "")
			ucm.RemoveAllScripts()
		}
	}
	logging.FromContext(c.ctx).Debug().Uint64("context_id", uint64(c.id)).Msg("webview destroyed")
}

func modifiers(state gdk.ModifierType) input.Modifiers {
	return input.Modifiers{
		Ctrl:  state&gdk.ControlMask != 0,
		Meta:  state&(gdk.MetaMask|gdk.SuperMask) != 0,
		Shift: state&gdk.ShiftMask != 0,
		Alt:   state&gdk.AltMask != 0,
	}
}

var _ port.RenderingContext = (*RenderingContext)(nil)
