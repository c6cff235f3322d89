package bootstrap

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/diamondburned/gotk4/pkg/gio/v2"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"

	"github.com/bnema/tabshell/internal/application/port"
	"github.com/bnema/tabshell/internal/application/usecase"
	"github.com/bnema/tabshell/internal/infrastructure/config"
	"github.com/bnema/tabshell/internal/infrastructure/webkit"
	"github.com/bnema/tabshell/internal/infrastructure/webkit/handlers"
	"github.com/bnema/tabshell/internal/infrastructure/webkit/messaging"
	"github.com/bnema/tabshell/internal/infrastructure/webkit/shim"
	"github.com/bnema/tabshell/internal/logging"
)

// ApplicationID is the GTK application identifier.
const ApplicationID = "dev.bnema.tabshell"

// windowParts are the per-window controllers a config reload updates.
type windowParts struct {
	registry *usecase.TabRegistry
	zoom     *usecase.ZoomCoordinator
	drag     *usecase.DragController
	gesture  *usecase.GestureRecognizer
}

// GUI runs the shell's GTK application.
type GUI struct {
	ctx      context.Context
	services *Services
	shell    *webkit.Shell
	app      *gtk.Application
	mac      bool

	mu      sync.Mutex
	cfg     *config.Config
	windows map[port.WindowID]*windowParts
}

// NewGUI prepares the application. Nothing is shown until Run.
func NewGUI(ctx context.Context, services *Services) *GUI {
	cfg := services.Config
	g := &GUI{
		ctx:      logging.WithComponent(ctx, "gui"),
		services: services,
		app:      gtk.NewApplication(ApplicationID, gio.ApplicationNonUnique),
		mac:      usecase.IsMacPlatform(),
		cfg:      cfg,
		windows:  make(map[port.WindowID]*windowParts),
		shell: webkit.NewShell(webkit.ShellConfig{
			DefaultWidth:  cfg.Window.DefaultWidth,
			DefaultHeight: cfg.Window.DefaultHeight,
			MinSize:       cfg.Window.MinSize,
			MaxSize:       cfg.Window.MaxSize,
		}),
	}
	g.shell.SetBuilder(g.buildWindow)
	g.shell.OnEmpty(g.app.Quit)
	return g
}

// Run opens the first window at startURL and blocks until the last window
// closes. It returns the GTK exit status.
func (g *GUI) Run(startURL string) int {
	g.app.ConnectActivate(func() {
		if _, err := g.shell.OpenWindow(g.ctx, startURL, nil); err != nil {
			logging.FromContext(g.ctx).Error().Err(err).Msg("failed to open first window")
			g.app.Quit()
		}
	})
	return g.app.Run([]string{os.Args[0]})
}

// ApplyConfig pushes a reloaded config onto every open window.
func (g *GUI) ApplyConfig(cfg *config.Config) {
	g.mu.Lock()
	g.cfg = cfg
	parts := make([]*windowParts, 0, len(g.windows))
	for _, p := range g.windows {
		parts = append(parts, p)
	}
	g.mu.Unlock()

	for _, p := range parts {
		p.zoom.UpdateConfig(ZoomConfig(cfg))
		p.drag.UpdateConfig(DragConfig(cfg))
		p.gesture.UpdateConfig(GestureConfig(cfg))
	}
	logging.FromContext(g.ctx).Info().Int("windows", len(parts)).Msg("config applied")
}

func (g *GUI) config() *config.Config {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.cfg
}

func (g *GUI) buildWindow(ctx context.Context, id port.WindowID, url string, snapshot *port.StorageSnapshot) (*webkit.ShellWindow, error) {
	cfg := g.config()
	ctx = logging.WithWindow(context.WithoutCancel(ctx), string(id))

	w := webkit.NewShellWindow(ctx, g.app, id, g.shell.Options())
	host := webkit.NewWindowHost(g.shell, w)
	notifier := w.Notifier()
	scheduler := webkit.NewScheduler()

	router := messaging.NewRouter(ctx)
	factory := webkit.NewFactory(router, shim.Config{
		APIPrefix:       cfg.Interception.APIPrefix,
		InternalSchemes: cfg.Interception.InternalSchemes,
		Origin:          cfg.App.Origin,
	}, webkit.SettingsConfig{
		DeveloperExtras: cfg.Logging.Level == "debug" || cfg.Logging.Level == "trace",
	}, w.Attach)
	factory.SeedNextContext(snapshot)

	contexts := usecase.NewContextManager(factory, scheduler, ContextConfig(cfg))
	regCfg := TabRegistryConfig(cfg)
	regCfg.EnvName = g.services.EnvName
	registry := usecase.NewTabRegistry(contexts, host, notifier, regCfg)

	zoom := usecase.NewZoomCoordinator(registry, host, notifier, scheduler, ZoomConfig(cfg))
	registry.AttachZoom(zoom)

	drag := usecase.NewDragController(registry, host, w.Strip(), nil, DragConfig(cfg))
	gesture := usecase.NewGestureRecognizer(registry, GestureConfig(cfg))
	factory.SetGestureSink(gesture)

	shortcuts := usecase.NewShortcutDispatcher(registry, zoom, host, w, g.mac)
	contexts.SetTitleSink(registry)
	contexts.SetInputSink(shortcuts)

	err := handlers.RegisterAll(ctx, router, handlers.Config{
		Fetcher: g.services.Interceptor,
		Shell:   usecase.NewShellAPI(registry, zoom, host).ForContext(),
		Invoke:  webkit.RunOnMainThread,
	})
	if err != nil {
		return nil, fmt.Errorf("register message handlers: %w", err)
	}

	registry.AddObserver(w.Strip())
	w.Bind(registry, drag, shortcuts)

	g.mu.Lock()
	g.windows[id] = &windowParts{registry: registry, zoom: zoom, drag: drag, gesture: gesture}
	g.mu.Unlock()
	w.OnClose(g.forget)

	if _, err := registry.CreateTab(ctx, url); err != nil {
		return nil, fmt.Errorf("create first tab: %w", err)
	}
	w.Present()
	return w, nil
}

func (g *GUI) forget(id port.WindowID) {
	g.mu.Lock()
	delete(g.windows, id)
	g.mu.Unlock()
}

// Quit closes every window and stops the application. Safe from any goroutine.
func (g *GUI) Quit() {
	webkit.RunOnMainThread(g.app.Quit)
}
