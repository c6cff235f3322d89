package usecase

import (
	"context"
	"runtime"

	"github.com/bnema/tabshell/internal/application/port"
	"github.com/bnema/tabshell/internal/logging"
)

// Action is a shell command triggered by a shortcut.
type Action int

const (
	ActionNone Action = iota
	ActionNewTab
	ActionCloseTab
	ActionSearchTabs
	ActionNewWindow
	ActionSwitchToIndex
	ActionZoomIn
	ActionZoomOut
	ActionZoomReset
	ActionFind
)

var actionNames = map[Action]string{
	ActionNone:          "none",
	ActionNewTab:        "new_tab",
	ActionCloseTab:      "close_tab",
	ActionSearchTabs:    "search_tabs",
	ActionNewWindow:     "new_window",
	ActionSwitchToIndex: "switch_to_index",
	ActionZoomIn:        "zoom_in",
	ActionZoomOut:       "zoom_out",
	ActionZoomReset:     "zoom_reset",
	ActionFind:          "find",
}

func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "unknown"
}

// Shortcut is a resolved shortcut. Index is set for ActionSwitchToIndex.
type Shortcut struct {
	Action Action
	Index  int
}

// IsMacPlatform reports whether Cmd is the shortcut modifier.
func IsMacPlatform() bool {
	return runtime.GOOS == "darwin"
}

// ResolveShortcut maps an input event to a shortcut. mac selects Meta
// instead of Ctrl as the modifier.
func ResolveShortcut(ev port.InputEvent, mac bool) (Shortcut, bool) {
	switch e := ev.(type) {
	case port.KeyEvent:
		return resolveKey(e, mac)
	case port.WheelEvent:
		held := e.Ctrl
		if mac {
			held = e.Meta
		}
		if !held || e.DeltaY == 0 {
			return Shortcut{}, false
		}
		if e.DeltaY < 0 {
			return Shortcut{Action: ActionZoomIn}, true
		}
		return Shortcut{Action: ActionZoomOut}, true
	default:
		return Shortcut{}, false
	}
}

func resolveKey(e port.KeyEvent, mac bool) (Shortcut, bool) {
	held := e.Ctrl
	if mac {
		held = e.Meta
	}
	if !held || e.Alt {
		return Shortcut{}, false
	}

	if e.Shift {
		switch e.Key {
		case "n":
			return Shortcut{Action: ActionNewWindow}, true
		case "a":
			return Shortcut{Action: ActionSearchTabs}, true
		case "+":
			// Shift is needed for '+' on most layouts.
			return Shortcut{Action: ActionZoomIn}, true
		}
		return Shortcut{}, false
	}

	switch e.Key {
	case "t":
		return Shortcut{Action: ActionNewTab}, true
	case "w":
		return Shortcut{Action: ActionCloseTab}, true
	case "f":
		return Shortcut{Action: ActionFind}, true
	case "+", "=":
		return Shortcut{Action: ActionZoomIn}, true
	case "-":
		return Shortcut{Action: ActionZoomOut}, true
	case "0":
		return Shortcut{Action: ActionZoomReset}, true
	}
	if len(e.Key) == 1 && e.Key[0] >= '1' && e.Key[0] <= '9' {
		return Shortcut{Action: ActionSwitchToIndex, Index: int(e.Key[0] - '1')}, true
	}
	return Shortcut{}, false
}

// ShellSurfaces are the shell-level dialogs shortcuts can open.
type ShellSurfaces interface {
	ShowTabSearch(ctx context.Context)
	ShowFindBar(ctx context.Context)
}

// ShortcutDispatcher executes shortcuts against the registry, zoom and host.
type ShortcutDispatcher struct {
	tabs    *TabRegistry
	zoom    ZoomController
	host    port.WindowHost
	surface ShellSurfaces
	mac     bool
}

// NewShortcutDispatcher creates a dispatcher. surface may be nil.
func NewShortcutDispatcher(tabs *TabRegistry, zoom ZoomController, host port.WindowHost, surface ShellSurfaces, mac bool) *ShortcutDispatcher {
	return &ShortcutDispatcher{tabs: tabs, zoom: zoom, host: host, surface: surface, mac: mac}
}

// HandleInput implements InputSink. It returns true when the event was a shortcut.
func (d *ShortcutDispatcher) HandleInput(ctx context.Context, ev port.InputEvent) bool {
	sc, ok := ResolveShortcut(ev, d.mac)
	if !ok {
		return false
	}
	d.Execute(ctx, sc)
	return true
}

// Execute runs sc.
func (d *ShortcutDispatcher) Execute(ctx context.Context, sc Shortcut) {
	defer logging.Recover(ctx, "shortcut "+sc.Action.String())
	log := logging.FromContext(ctx)
	log.Debug().Str("action", sc.Action.String()).Int("index", sc.Index).Msg("shortcut")

	active := d.tabs.ActiveTabID()
	switch sc.Action {
	case ActionNewTab:
		url, _ := d.tabs.CurrentURL(active)
		if _, err := d.tabs.CreateTab(ctx, url); err != nil {
			log.Debug().Err(err).Msg("new tab refused")
		}
	case ActionCloseTab:
		if d.tabs.Count() > 1 {
			_ = d.tabs.CloseTab(ctx, active)
		}
	case ActionSearchTabs:
		if d.surface != nil {
			d.surface.ShowTabSearch(ctx)
		}
	case ActionFind:
		if d.surface != nil {
			d.surface.ShowFindBar(ctx)
		}
	case ActionNewWindow:
		url, _ := d.tabs.CurrentURL(active)
		if _, err := d.host.CreateWindow(ctx, url, nil); err != nil {
			log.Warn().Err(err).Msg("failed to open new window")
		}
	case ActionSwitchToIndex:
		_ = d.tabs.SwitchToIndex(ctx, sc.Index)
	case ActionZoomIn:
		d.zoom.ZoomIn(ctx)
	case ActionZoomOut:
		d.zoom.ZoomOut(ctx)
	case ActionZoomReset:
		d.zoom.Reset(ctx)
	case ActionNone:
	}
}
