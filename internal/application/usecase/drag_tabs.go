package usecase

import (
	"context"
	"slices"
	"sync"

	"github.com/bnema/tabshell/internal/application/port"
	"github.com/bnema/tabshell/internal/domain/entity"
	"github.com/bnema/tabshell/internal/logging"
)

// DragConfig tunes tab dragging.
type DragConfig struct {
	// Threshold is the pointer travel, in px, that turns a press into a drag.
	Threshold float64
	// TearOffMargin is how far past the window edge a release detaches the tab.
	TearOffMargin float64
}

// DefaultDragConfig returns the default drag settings.
func DefaultDragConfig() DragConfig {
	return DragConfig{Threshold: 3, TearOffMargin: 100}
}

// DragPhase is the drag state machine's state.
type DragPhase int

const (
	DragIdle DragPhase = iota
	DragArmed
	DragDragging
)

func (p DragPhase) String() string {
	switch p {
	case DragArmed:
		return "armed"
	case DragDragging:
		return "dragging"
	default:
		return "idle"
	}
}

// DragOutcome is what a release did.
type DragOutcome int

const (
	DragNone DragOutcome = iota
	DragClicked
	DragReordered
	DragTornOff
	DragTearOffFailed
)

func (o DragOutcome) String() string {
	switch o {
	case DragClicked:
		return "clicked"
	case DragReordered:
		return "reordered"
	case DragTornOff:
		return "torn_off"
	case DragTearOffFailed:
		return "tear_off_failed"
	default:
		return "none"
	}
}

// SnapshotSource captures the storage handed to a torn-off window.
type SnapshotSource func(ctx context.Context, id entity.TabID) *port.StorageSnapshot

// DragController runs the reorder/tear-off state machine for the tab strip.
// The registry order is only touched on release.
type DragController struct {
	tabs     *TabRegistry
	host     port.WindowHost
	view     port.TabStripView
	snapshot SnapshotSource

	mu      sync.Mutex
	cfg     DragConfig
	phase   DragPhase
	session *entity.DragSession
	preview []entity.TabID
}

// NewDragController creates a drag controller. snapshot may be nil.
func NewDragController(tabs *TabRegistry, host port.WindowHost, view port.TabStripView, snapshot SnapshotSource, cfg DragConfig) *DragController {
	return &DragController{
		tabs:     tabs,
		host:     host,
		view:     view,
		snapshot: snapshot,
		cfg:      normalizeDragConfig(cfg),
	}
}

func normalizeDragConfig(cfg DragConfig) DragConfig {
	defaults := DefaultDragConfig()
	if cfg.Threshold <= 0 {
		cfg.Threshold = defaults.Threshold
	}
	if cfg.TearOffMargin < 0 {
		cfg.TearOffMargin = defaults.TearOffMargin
	}
	return cfg
}

// UpdateConfig swaps the thresholds.
func (d *DragController) UpdateConfig(cfg DragConfig) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.cfg = normalizeDragConfig(cfg)
}

// Phase returns the current phase.
func (d *DragController) Phase() DragPhase {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.phase
}

// Outside reports whether the pointer is past the tear-off margin.
func (d *DragController) Outside() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.session != nil && d.session.Outside
}

// PointerDown arms a drag on id.
func (d *DragController) PointerDown(_ context.Context, id entity.TabID, p entity.Point, modifier bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.phase = DragArmed
	d.session = entity.NewDragSession(id, p, modifier)
	d.preview = nil
}

// PointerMove advances the drag and updates the preview.
func (d *DragController) PointerMove(ctx context.Context, p entity.Point, modifier bool) {
	d.mu.Lock()
	s := d.session
	if s == nil || d.phase == DragIdle {
		d.mu.Unlock()
		return
	}
	s.Update(p, modifier)
	if d.phase == DragArmed {
		if s.Displacement() <= d.cfg.Threshold {
			d.mu.Unlock()
			return
		}
		d.phase = DragDragging
		d.preview = d.tabs.IDs()
		logging.FromContext(ctx).Debug().Str("tab_id", string(s.TabID)).Msg("tab drag started")
	}
	margin := d.cfg.TearOffMargin
	d.mu.Unlock()

	outside := !d.view.WindowBounds().Grow(margin).Contains(p)

	d.mu.Lock()
	if d.session != s {
		d.mu.Unlock()
		return
	}
	s.Outside = outside
	s.PreviewVisible = true
	var order []entity.TabID
	if !outside {
		if next := d.previewFor(s.TabID, p); next != nil && !slices.Equal(next, d.preview) {
			d.preview = next
			order = slices.Clone(next)
		}
	}
	d.mu.Unlock()

	d.view.ShowDragPreview(s.TabID, p, outside)
	if order != nil {
		d.view.RenderPreviewOrder(order)
	}
}

// previewFor returns the preview order with dragged moved onto the slot under p.
func (d *DragController) previewFor(dragged entity.TabID, p entity.Point) []entity.TabID {
	for _, slot := range d.view.Slots() {
		if slot.ID == dragged || p.X < slot.Left || p.X >= slot.Right {
			continue
		}
		target := slices.Index(d.preview, slot.ID)
		from := slices.Index(d.preview, dragged)
		if target < 0 || from < 0 {
			return nil
		}
		next := slices.Delete(slices.Clone(d.preview), from, from+1)
		return slices.Insert(next, target, dragged)
	}
	return nil
}

// PointerUp ends the session and applies its outcome.
func (d *DragController) PointerUp(ctx context.Context, p entity.Point, modifier bool) DragOutcome {
	d.mu.Lock()
	s, phase, preview := d.session, d.phase, d.preview
	margin := d.cfg.TearOffMargin
	d.session, d.phase, d.preview = nil, DragIdle, nil
	d.mu.Unlock()

	if s == nil {
		return DragNone
	}
	defer logging.Recover(ctx, "tab drag release")

	switch phase {
	case DragArmed:
		if err := d.tabs.ActivateTab(ctx, s.TabID); err != nil {
			return DragNone
		}
		return DragClicked
	case DragDragging:
		d.view.HideDragPreview()
		s.Update(p, modifier)
		s.Outside = !d.view.WindowBounds().Grow(margin).Contains(p)
		if s.WantsTearOff() {
			return d.tearOff(ctx, s.TabID)
		}
		return d.applyOrder(ctx, preview)
	default:
		return DragNone
	}
}

// Cancel drops the session without applying anything.
func (d *DragController) Cancel() {
	d.mu.Lock()
	wasDragging := d.phase == DragDragging
	d.session, d.phase, d.preview = nil, DragIdle, nil
	d.mu.Unlock()
	if wasDragging {
		d.view.HideDragPreview()
		d.view.RenderPreviewOrder(d.tabs.IDs())
	}
}

// tearOff opens id in a new window and removes it only once that succeeded.
func (d *DragController) tearOff(ctx context.Context, id entity.TabID) DragOutcome {
	log := logging.FromContext(ctx)

	url, ok := d.tabs.CurrentURL(id)
	if !ok {
		return DragNone
	}
	var snapshot *port.StorageSnapshot
	if d.snapshot != nil {
		snapshot = d.snapshot(ctx, id)
	}

	win, err := d.host.CreateWindow(ctx, url, snapshot)
	if err != nil {
		log.Warn().Err(err).Str("tab_id", string(id)).Str("url", url).Msg("tear-off failed, keeping tab")
		d.view.RenderPreviewOrder(d.tabs.IDs())
		return DragTearOffFailed
	}
	log.Info().Str("tab_id", string(id)).Str("window", string(win)).Msg("tab torn off")

	if d.tabs.Count() > 1 {
		if err := d.tabs.CloseTab(ctx, id); err != nil {
			log.Debug().Err(err).Msg("torn-off tab not closed")
		}
	}
	d.view.RenderPreviewOrder(d.tabs.IDs())
	return DragTornOff
}

// applyOrder commits desired with one ReorderTab per displaced position, or
// nothing at all if desired is not a permutation of the current order.
func (d *DragController) applyOrder(ctx context.Context, desired []entity.TabID) DragOutcome {
	cur := d.tabs.IDs()
	if !isPermutation(cur, desired) {
		d.view.RenderPreviewOrder(cur)
		return DragNone
	}

	moved := false
	for i := range desired {
		if cur[i] == desired[i] {
			continue
		}
		d.tabs.ReorderTab(ctx, desired[i], cur[i])
		cur = d.tabs.IDs()
		moved = true
	}
	d.view.RenderPreviewOrder(cur)
	if !moved {
		return DragNone
	}
	return DragReordered
}

func isPermutation(a, b []entity.TabID) bool {
	if len(a) != len(b) {
		return false
	}
	seen := make(map[entity.TabID]int, len(a))
	for _, id := range a {
		seen[id]++
	}
	for _, id := range b {
		seen[id]--
		if seen[id] < 0 {
			return false
		}
	}
	return true
}
