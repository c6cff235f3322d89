package webkit

import (
	"context"
	"slices"

	"github.com/diamondburned/gotk4/pkg/gdk/v4"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"
	"github.com/diamondburned/gotk4/pkg/pango"

	"github.com/bnema/tabshell/internal/application/port"
	"github.com/bnema/tabshell/internal/application/usecase"
	"github.com/bnema/tabshell/internal/domain/entity"
	"github.com/bnema/tabshell/internal/logging"
)

const tabTitleMaxChars = 24

// TabActions are the registry operations offered by the strip.
type TabActions interface {
	CreateTab(ctx context.Context, url string) (entity.TabID, error)
	CloseTab(ctx context.Context, id entity.TabID) error
	DuplicateTab(ctx context.Context, id entity.TabID) (entity.TabID, error)
	RefreshTab(ctx context.Context, id entity.TabID) error
	OpenTabInNewWindow(ctx context.Context, id entity.TabID) (port.WindowID, error)
	CloseToLeft(ctx context.Context, id entity.TabID) int
	CloseToRight(ctx context.Context, id entity.TabID) int
	CloseOthers(ctx context.Context, id entity.TabID) int
}

// DragInput is the drag state machine driven by the strip's pointer gesture.
type DragInput interface {
	PointerDown(ctx context.Context, id entity.TabID, p entity.Point, modifier bool)
	PointerMove(ctx context.Context, p entity.Point, modifier bool)
	PointerUp(ctx context.Context, p entity.Point, modifier bool) usecase.DragOutcome
	Cancel()
}

type tabWidget struct {
	root  *gtk.Box
	label *gtk.Label
}

// TabStrip renders the tab list. It implements port.TabStripView and
// port.TabsObserver. Every method runs on the GTK main thread.
type TabStrip struct {
	ctx    context.Context
	window *gtk.Window
	box    *gtk.Box
	tabs   *gtk.Box

	actions TabActions
	drag    DragInput

	widgets map[entity.TabID]*tabWidget
	order   []entity.TabID

	dragOrigin entity.Point
	dragging   bool
}

// NewTabStrip builds the strip for window.
func NewTabStrip(ctx context.Context, window *gtk.Window) *TabStrip {
	s := &TabStrip{
		ctx:     logging.WithComponent(ctx, "tab-strip"),
		window:  window,
		box:     gtk.NewBox(gtk.OrientationHorizontal, 0),
		tabs:    gtk.NewBox(gtk.OrientationHorizontal, 0),
		widgets: make(map[entity.TabID]*tabWidget),
	}
	s.box.AddCSSClass("tab-strip")
	s.box.SetHExpand(true)
	s.box.SetVExpand(false)
	s.tabs.SetHExpand(true)

	add := gtk.NewButtonWithLabel("+")
	add.AddCSSClass("tab-new")
	add.SetHasFrame(false)
	add.ConnectClicked(func() {
		if s.actions == nil {
			return
		}
		if _, err := s.actions.CreateTab(s.ctx, ""); err != nil {
			logging.FromContext(s.ctx).Debug().Err(err).Msg("new tab refused")
		}
	})

	s.box.Append(s.tabs)
	s.box.Append(add)
	s.installDragGesture()
	return s
}

// Bind connects the strip to the registry and drag controller.
func (s *TabStrip) Bind(actions TabActions, drag DragInput) {
	s.actions = actions
	s.drag = drag
}

// Widget returns the strip's root widget.
func (s *TabStrip) Widget() gtk.Widgetter {
	return s.box
}

// OnTabsChanged implements port.TabsObserver.
func (s *TabStrip) OnTabsChanged(_ context.Context, tabs []entity.TabSummary) {
	seen := make(map[entity.TabID]bool, len(tabs))
	order := make([]entity.TabID, 0, len(tabs))
	for _, t := range tabs {
		seen[t.ID] = true
		order = append(order, t.ID)

		w, ok := s.widgets[t.ID]
		if !ok {
			w = s.newTabWidget(t.ID)
			s.widgets[t.ID] = w
			s.tabs.Append(w.root)
		}
		w.label.SetLabel(t.Title)
		w.root.SetTooltipText(t.URL)
		if t.Active {
			w.root.AddCSSClass("tab-active")
		} else {
			w.root.RemoveCSSClass("tab-active")
		}
	}
	for id, w := range s.widgets {
		if !seen[id] {
			s.tabs.Remove(w.root)
			delete(s.widgets, id)
		}
	}
	s.order = order
	s.RenderPreviewOrder(order)
}

func (s *TabStrip) newTabWidget(id entity.TabID) *tabWidget {
	root := gtk.NewBox(gtk.OrientationHorizontal, 4)
	root.AddCSSClass("tab")

	label := gtk.NewLabel("")
	label.AddCSSClass("tab-title")
	label.SetEllipsize(pango.EllipsizeEnd)
	label.SetMaxWidthChars(tabTitleMaxChars)
	label.SetHExpand(true)

	closeBtn := gtk.NewButtonWithLabel("×")
	closeBtn.AddCSSClass("tab-close")
	closeBtn.SetHasFrame(false)
	closeBtn.ConnectClicked(func() {
		if s.actions == nil {
			return
		}
		if err := s.actions.CloseTab(s.ctx, id); err != nil {
			logging.FromContext(s.ctx).Debug().Err(err).Str("tab_id", string(id)).Msg("close refused")
		}
	})

	menu := gtk.NewGestureClick()
	menu.SetButton(gdk.BUTTON_SECONDARY)
	menu.ConnectPressed(func(_ int, _, _ float64) {
		s.showContextMenu(id, root)
	})
	root.AddController(menu)

	root.Append(label)
	root.Append(closeBtn)
	return &tabWidget{root: root, label: label}
}

type menuItem struct {
	label string
	run   func(ctx context.Context, id entity.TabID) error
}

func (s *TabStrip) menuItems() []menuItem {
	a := s.actions
	return []menuItem{
		{"Reload", a.RefreshTab},
		{"Duplicate", func(ctx context.Context, id entity.TabID) error {
			_, err := a.DuplicateTab(ctx, id)
			return err
		}},
		{"Open in New Window", func(ctx context.Context, id entity.TabID) error {
			_, err := a.OpenTabInNewWindow(ctx, id)
			return err
		}},
		{"Close Tabs to the Left", func(ctx context.Context, id entity.TabID) error {
			a.CloseToLeft(ctx, id)
			return nil
		}},
		{"Close Tabs to the Right", func(ctx context.Context, id entity.TabID) error {
			a.CloseToRight(ctx, id)
			return nil
		}},
		{"Close Other Tabs", func(ctx context.Context, id entity.TabID) error {
			a.CloseOthers(ctx, id)
			return nil
		}},
		{"Close", a.CloseTab},
	}
}

func (s *TabStrip) showContextMenu(id entity.TabID, anchor *gtk.Box) {
	if s.actions == nil {
		return
	}
	list := gtk.NewBox(gtk.OrientationVertical, 0)
	pop := gtk.NewPopover()
	pop.AddCSSClass("tab-menu")
	pop.SetChild(list)
	pop.SetParent(anchor)
	pop.ConnectClosed(func() {
		RunOnMainThread(pop.Unparent)
	})

	for _, item := range s.menuItems() {
		btn := gtk.NewButtonWithLabel(item.label)
		btn.SetHasFrame(false)
		btn.ConnectClicked(func() {
			pop.Popdown()
			if err := item.run(s.ctx, id); err != nil {
				logging.FromContext(s.ctx).Debug().Err(err).Str("action", item.label).Msg("tab menu action failed")
			}
		})
		list.Append(btn)
	}
	pop.Popup()
}

func (s *TabStrip) installDragGesture() {
	g := gtk.NewGestureDrag()
	g.SetButton(gdk.BUTTON_PRIMARY)
	g.SetPropagationPhase(gtk.PhaseCapture)

	modifier := func() bool {
		return g.CurrentEventState()&(gdk.ControlMask|gdk.MetaMask|gdk.SuperMask) != 0
	}

	g.ConnectDragBegin(func(x, y float64) {
		s.dragging = false
		if s.drag == nil {
			return
		}
		p := s.toWindow(x, y)
		id, ok := s.slotAt(p.X)
		if !ok {
			return
		}
		s.dragOrigin = entity.Point{X: x, Y: y}
		s.dragging = true
		s.drag.PointerDown(s.ctx, id, p, modifier())
	})
	g.ConnectDragUpdate(func(dx, dy float64) {
		if !s.dragging {
			return
		}
		s.drag.PointerMove(s.ctx, s.toWindow(s.dragOrigin.X+dx, s.dragOrigin.Y+dy), modifier())
	})
	g.ConnectDragEnd(func(dx, dy float64) {
		if !s.dragging {
			return
		}
		s.dragging = false
		outcome := s.drag.PointerUp(s.ctx, s.toWindow(s.dragOrigin.X+dx, s.dragOrigin.Y+dy), modifier())
		logging.FromContext(s.ctx).Debug().Str("outcome", outcome.String()).Msg("tab drag finished")
	})
	g.ConnectCancel(func(gdk.EventSequence) {
		if s.dragging && s.drag != nil {
			s.dragging = false
			s.drag.Cancel()
		}
	})
	s.box.AddController(g)
}

func (s *TabStrip) toWindow(x, y float64) entity.Point {
	wx, wy, ok := s.box.TranslateCoordinates(s.window, x, y)
	if !ok {
		return entity.Point{X: x, Y: y}
	}
	return entity.Point{X: wx, Y: wy}
}

func (s *TabStrip) slotAt(x float64) (entity.TabID, bool) {
	for _, slot := range s.Slots() {
		if x >= slot.Left && x < slot.Right {
			return slot.ID, true
		}
	}
	return "", false
}

// Slots implements port.TabStripView.
func (s *TabStrip) Slots() []port.TabSlot {
	out := make([]port.TabSlot, 0, len(s.order))
	for _, id := range s.order {
		w, ok := s.widgets[id]
		if !ok {
			continue
		}
		left, _, ok := w.root.TranslateCoordinates(s.window, 0, 0)
		if !ok {
			continue
		}
		out = append(out, port.TabSlot{ID: id, Left: left, Right: left + float64(w.root.Width())})
	}
	slices.SortFunc(out, func(a, b port.TabSlot) int {
		switch {
		case a.Left < b.Left:
			return -1
		case a.Left > b.Left:
			return 1
		default:
			return 0
		}
	})
	return out
}

// WindowBounds implements port.TabStripView.
func (s *TabStrip) WindowBounds() entity.Rect {
	return entity.Rect{W: float64(s.window.Width()), H: float64(s.window.Height())}
}

// RenderPreviewOrder implements port.TabStripView.
func (s *TabStrip) RenderPreviewOrder(order []entity.TabID) {
	var prev gtk.Widgetter
	for _, id := range order {
		w, ok := s.widgets[id]
		if !ok {
			continue
		}
		s.tabs.ReorderChildAfter(w.root, prev)
		prev = w.root
	}
}

// ShowDragPreview implements port.TabStripView.
func (s *TabStrip) ShowDragPreview(id entity.TabID, _ entity.Point, outside bool) {
	w, ok := s.widgets[id]
	if !ok {
		return
	}
	w.root.AddCSSClass("tab-dragging")
	if outside {
		w.root.AddCSSClass("tab-tear-off")
	} else {
		w.root.RemoveCSSClass("tab-tear-off")
	}
}

// HideDragPreview implements port.TabStripView.
func (s *TabStrip) HideDragPreview() {
	for _, w := range s.widgets {
		w.root.RemoveCSSClass("tab-dragging")
		w.root.RemoveCSSClass("tab-tear-off")
	}
}

var (
	_ port.TabStripView = (*TabStrip)(nil)
	_ port.TabsObserver = (*TabStrip)(nil)
)
