package webkit

import (
	"context"
	"fmt"
	"sync"

	webkit "github.com/diamondburned/gotk4-webkitgtk/pkg/webkit/v6"
	"github.com/diamondburned/gotk4/pkg/gdk/v4"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"
	"github.com/diamondburned/gotk4/pkg/pango"

	"github.com/bnema/tabshell/internal/application/port"
	"github.com/bnema/tabshell/internal/domain/entity"
	"github.com/bnema/tabshell/internal/infrastructure/webkit/input"
	"github.com/bnema/tabshell/internal/logging"
)

const (
	findMaxMatches  = 1000
	tabSearchWidth  = 420
	tabSearchHeight = 360
)

const shellCSS = `
.tab-strip { padding: 2px 4px; }
.tab { padding: 2px 8px; border-radius: 6px 6px 0 0; }
.tab-active { background: alpha(@accent_bg_color, 0.25); }
.tab-dragging { opacity: 0.6; }
.tab-tear-off { opacity: 0.3; }
.toast { padding: 8px 16px; border-radius: 8px; background: rgba(0, 0, 0, 0.75); color: white; }
.toast-error { background: rgba(160, 20, 20, 0.85); }
.toast-warning { background: rgba(160, 110, 0, 0.85); }
`

var loadShellCSS sync.Once

// ShellTabs is the registry surface a window's dialogs use.
type ShellTabs interface {
	TabActions
	ActivateTab(ctx context.Context, id entity.TabID) error
	SearchTabs(query string) []entity.TabSummary
	ActiveContext() port.RenderingContext
	Contexts() []port.RenderingContext
}

// InputHandler receives key events that reach the window itself.
type InputHandler interface {
	HandleInput(ctx context.Context, ev port.InputEvent) bool
}

// WindowOptions sizes a shell window.
type WindowOptions struct {
	Width  int
	Height int
}

// ShellWindow is one top-level shell window: a tab strip over the views of
// its tabs. It implements the shell surfaces opened by shortcuts.
type ShellWindow struct {
	ctx context.Context
	id  port.WindowID

	win     *gtk.ApplicationWindow
	strip   *TabStrip
	content *gtk.Box
	toast   *Toast

	findBar   *gtk.SearchBar
	findEntry *gtk.SearchEntry

	search      *gtk.Popover
	searchEntry *gtk.SearchEntry
	searchList  *gtk.ListBox
	searchHits  []entity.TabID

	chromeCSS *gtk.CSSProvider

	tabs    ShellTabs
	input   InputHandler
	onClose []func(id port.WindowID)
}

// NewShellWindow builds a window for app. Call Bind before presenting it.
func NewShellWindow(ctx context.Context, app *gtk.Application, id port.WindowID, opts WindowOptions) *ShellWindow {
	loadShellCSS.Do(func() {
		provider := gtk.NewCSSProvider()
		provider.LoadFromString(shellCSS)
		gtk.StyleContextAddProviderForDisplay(gdk.DisplayGetDefault(), provider, uint(gtk.STYLE_PROVIDER_PRIORITY_APPLICATION))
	})

	w := &ShellWindow{
		ctx:       logging.WithWindow(ctx, string(id)),
		id:        id,
		win:       gtk.NewApplicationWindow(app),
		content:   gtk.NewBox(gtk.OrientationVertical, 0),
		toast:     NewToast(),
		chromeCSS: gtk.NewCSSProvider(),
	}
	w.win.SetDefaultSize(opts.Width, opts.Height)
	w.win.AddCSSClass(string(id))
	gtk.StyleContextAddProviderForDisplay(gdk.DisplayGetDefault(), w.chromeCSS, uint(gtk.STYLE_PROVIDER_PRIORITY_APPLICATION))

	w.strip = NewTabStrip(w.ctx, &w.win.Window)
	w.content.SetHExpand(true)
	w.content.SetVExpand(true)

	overlay := gtk.NewOverlay()
	overlay.SetChild(w.content)
	overlay.AddOverlay(w.toast.Widget())

	w.buildFindBar()
	w.buildTabSearch()

	root := gtk.NewBox(gtk.OrientationVertical, 0)
	root.Append(w.strip.Widget())
	root.Append(w.findBar)
	root.Append(overlay)
	w.win.SetChild(root)

	keys := gtk.NewEventControllerKey()
	keys.ConnectKeyPressed(func(keyval, _ uint, state gdk.ModifierType) bool {
		if w.input == nil {
			return false
		}
		defer logging.Recover(w.ctx, "window key")
		return w.input.HandleInput(w.ctx, input.KeyEvent(gdk.KeyvalName(keyval), modifiers(state)))
	})
	w.win.AddController(keys)

	w.win.ConnectCloseRequest(func() bool {
		w.teardown()
		return false
	})
	return w
}

// Bind wires the window to its registry, drag controller and shortcuts.
func (w *ShellWindow) Bind(tabs ShellTabs, drag DragInput, input InputHandler) {
	w.tabs = tabs
	w.input = input
	w.strip.Bind(tabs, drag)
}

// OnClose registers fn, called once the window is closing.
func (w *ShellWindow) OnClose(fn func(id port.WindowID)) {
	w.onClose = append(w.onClose, fn)
}

// ID returns the window identifier.
func (w *ShellWindow) ID() port.WindowID {
	return w.id
}

// Strip returns the tab strip.
func (w *ShellWindow) Strip() *TabStrip {
	return w.strip
}

// Notifier returns the window's toast.
func (w *ShellWindow) Notifier() *Toast {
	return w.toast
}

// Attach places view in the content area. It is the window's AttachFunc.
func (w *ShellWindow) Attach(_ entity.TabID, view gtk.Widgetter) func() {
	w.content.Append(view)
	return func() {
		w.content.Remove(view)
	}
}

// Present shows the window.
func (w *ShellWindow) Present() {
	w.win.Present()
}

// Close closes the window as if the user did.
func (w *ShellWindow) Close() {
	w.win.Close()
}

// SetTitle sets the window title.
func (w *ShellWindow) SetTitle(title string) {
	w.win.SetTitle(title)
}

// SetChromeZoom scales the tab strip and dialogs by factor.
func (w *ShellWindow) SetChromeZoom(factor float64) {
	css := fmt.Sprintf(".%s .tab-strip, .%s .toast { font-size: %d%%; }",
		w.id, w.id, entity.ZoomPercentage(factor))
	w.chromeCSS.LoadFromString(css)
}

func (w *ShellWindow) teardown() {
	if w.tabs != nil {
		for _, rc := range w.tabs.Contexts() {
			rc.Destroy()
		}
	}
	gtk.StyleContextRemoveProviderForDisplay(gdk.DisplayGetDefault(), w.chromeCSS)
	logging.FromContext(w.ctx).Info().Msg("window closed")
	for _, fn := range w.onClose {
		fn(w.id)
	}
}

func (w *ShellWindow) activeView() *webkit.WebView {
	if w.tabs == nil {
		return nil
	}
	rc, ok := w.tabs.ActiveContext().(*RenderingContext)
	if !ok || rc == nil {
		return nil
	}
	return rc.View()
}

func (w *ShellWindow) buildFindBar() {
	w.findEntry = gtk.NewSearchEntry()
	w.findEntry.SetHExpand(true)

	w.findBar = gtk.NewSearchBar()
	w.findBar.SetChild(w.findEntry)
	w.findBar.ConnectEntry(w.findEntry)
	w.findBar.SetShowCloseButton(true)

	options := uint32(webkit.FindOptionsCaseInsensitive | webkit.FindOptionsWrapAround)
	w.findEntry.ConnectSearchChanged(func() {
		view := w.activeView()
		if view == nil {
			return
		}
		text := w.findEntry.Text()
		if text == "" {
			view.FindController().SearchFinish()
			return
		}
		view.FindController().Search(text, options, findMaxMatches)
	})
	w.findEntry.ConnectActivate(func() {
		if view := w.activeView(); view != nil {
			view.FindController().SearchNext()
		}
	})
	w.findEntry.ConnectStopSearch(func() {
		w.findBar.SetSearchMode(false)
		if view := w.activeView(); view != nil {
			view.FindController().SearchFinish()
		}
	})
}

// ShowFindBar opens the in-page find bar.
func (w *ShellWindow) ShowFindBar(context.Context) {
	RunOnMainThread(func() {
		w.findBar.SetSearchMode(true)
		w.findEntry.GrabFocus()
	})
}

func (w *ShellWindow) buildTabSearch() {
	w.searchEntry = gtk.NewSearchEntry()
	w.searchList = gtk.NewListBox()
	w.searchList.SetSelectionMode(gtk.SelectionBrowse)

	scroller := gtk.NewScrolledWindow()
	scroller.SetChild(w.searchList)
	scroller.SetVExpand(true)

	box := gtk.NewBox(gtk.OrientationVertical, 4)
	box.SetSizeRequest(tabSearchWidth, tabSearchHeight)
	box.Append(w.searchEntry)
	box.Append(scroller)

	w.search = gtk.NewPopover()
	w.search.AddCSSClass("tab-search")
	w.search.SetChild(box)
	w.search.SetParent(w.strip.Widget())

	w.searchEntry.ConnectSearchChanged(func() {
		w.refreshTabSearch(w.searchEntry.Text())
	})
	w.searchEntry.ConnectActivate(func() {
		w.pickTabSearch(0)
	})
	w.searchEntry.ConnectStopSearch(func() {
		w.search.Popdown()
	})
	w.searchList.ConnectRowActivated(func(row *gtk.ListBoxRow) {
		w.pickTabSearch(row.Index())
	})
}

func (w *ShellWindow) refreshTabSearch(query string) {
	w.searchList.RemoveAll()
	w.searchHits = w.searchHits[:0]
	if w.tabs == nil {
		return
	}
	for _, t := range w.tabs.SearchTabs(query) {
		label := gtk.NewLabel(t.Title)
		label.SetXAlign(0)
		label.SetEllipsize(pango.EllipsizeEnd)
		label.SetTooltipText(t.URL)
		w.searchList.Append(label)
		w.searchHits = append(w.searchHits, t.ID)
	}
}

func (w *ShellWindow) pickTabSearch(i int) {
	if i < 0 || i >= len(w.searchHits) {
		return
	}
	id := w.searchHits[i]
	w.search.Popdown()
	if err := w.tabs.ActivateTab(w.ctx, id); err != nil {
		logging.FromContext(w.ctx).Debug().Err(err).Str("tab_id", string(id)).Msg("tab search pick failed")
	}
}

// ShowTabSearch opens the tab search dialog.
func (w *ShellWindow) ShowTabSearch(context.Context) {
	RunOnMainThread(func() {
		w.searchEntry.SetText("")
		w.refreshTabSearch("")
		w.search.Popup()
		w.searchEntry.GrabFocus()
	})
}
