package webkit

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/bnema/tabshell/internal/application/port"
	"github.com/bnema/tabshell/internal/logging"
)

// ErrNoWindowBuilder means the shell cannot open windows yet.
var ErrNoWindowBuilder = errors.New("window builder not set")

// WindowBuilder creates, wires and presents a window loading url.
type WindowBuilder func(ctx context.Context, id port.WindowID, url string, snapshot *port.StorageSnapshot) (*ShellWindow, error)

// ShellConfig bounds window geometry.
type ShellConfig struct {
	DefaultWidth  int
	DefaultHeight int
	MinSize       int
	MaxSize       int
}

// Shell owns every window of the process.
type Shell struct {
	cfg   ShellConfig
	build WindowBuilder
	next  atomic.Uint64

	mu      sync.Mutex
	windows map[port.WindowID]*ShellWindow
	onEmpty func()
}

// NewShell creates a shell with no windows.
func NewShell(cfg ShellConfig) *Shell {
	if cfg.MinSize <= 0 {
		cfg.MinSize = 200
	}
	if cfg.MaxSize < cfg.MinSize {
		cfg.MaxSize = 3000
	}
	return &Shell{cfg: cfg, windows: make(map[port.WindowID]*ShellWindow)}
}

// SetBuilder sets how windows are built.
func (s *Shell) SetBuilder(b WindowBuilder) {
	s.build = b
}

// OnEmpty registers fn, called when the last window closes.
func (s *Shell) OnEmpty(fn func()) {
	s.onEmpty = fn
}

// Options returns the clamped size for a new window.
func (s *Shell) Options() WindowOptions {
	return WindowOptions{
		Width:  s.clamp(s.cfg.DefaultWidth),
		Height: s.clamp(s.cfg.DefaultHeight),
	}
}

func (s *Shell) clamp(v int) int {
	return max(s.cfg.MinSize, min(v, s.cfg.MaxSize))
}

// OpenWindow builds a window loading url. It must run on the main thread.
func (s *Shell) OpenWindow(ctx context.Context, url string, snapshot *port.StorageSnapshot) (port.WindowID, error) {
	if s.build == nil {
		return "", ErrNoWindowBuilder
	}
	id := port.WindowID(fmt.Sprintf("window-%d", s.next.Add(1)))
	w, err := s.build(ctx, id, url, snapshot)
	if err != nil {
		return "", fmt.Errorf("open %s: %w", id, err)
	}

	s.mu.Lock()
	s.windows[id] = w
	s.mu.Unlock()
	w.OnClose(s.forget)

	logging.FromContext(ctx).Info().Str("window", string(id)).Str("url", url).Msg("window opened")
	return id, nil
}

func (s *Shell) forget(id port.WindowID) {
	s.mu.Lock()
	delete(s.windows, id)
	empty := len(s.windows) == 0
	s.mu.Unlock()
	if empty && s.onEmpty != nil {
		s.onEmpty()
	}
}

// Windows returns how many windows are open.
func (s *Shell) Windows() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.windows)
}

// WindowHost is a window's view of the host. It implements port.WindowHost.
type WindowHost struct {
	shell  *Shell
	window *ShellWindow
}

// NewWindowHost creates the host for window.
func NewWindowHost(shell *Shell, window *ShellWindow) *WindowHost {
	return &WindowHost{shell: shell, window: window}
}

// CreateWindow implements port.WindowHost.
func (h *WindowHost) CreateWindow(ctx context.Context, url string, snapshot *port.StorageSnapshot) (port.WindowID, error) {
	return h.shell.OpenWindow(ctx, url, snapshot)
}

// SetWindowTitle implements port.WindowHost.
func (h *WindowHost) SetWindowTitle(_ context.Context, title string) error {
	RunOnMainThread(func() {
		h.window.SetTitle(title)
	})
	return nil
}

// SetNativeZoom implements port.WindowHost.
func (h *WindowHost) SetNativeZoom(_ context.Context, factor float64) error {
	RunOnMainThread(func() {
		h.window.SetChromeZoom(factor)
	})
	return nil
}

var _ port.WindowHost = (*WindowHost)(nil)
