package port

import (
	"context"

	"github.com/bnema/tabshell/internal/domain/entity"
)

// TabSlot is the horizontal extent of a rendered tab.
type TabSlot struct {
	ID    entity.TabID
	Left  float64
	Right float64
}

// TabStripView is the rendered tab strip as seen by the drag controller.
type TabStripView interface {
	// Slots returns the rendered tabs in on-screen order.
	Slots() []TabSlot
	// WindowBounds returns the shell window rectangle in pointer coordinates.
	WindowBounds() entity.Rect
	// RenderPreviewOrder shows order without committing it.
	RenderPreviewOrder(order []entity.TabID)
	ShowDragPreview(id entity.TabID, at entity.Point, outside bool)
	HideDragPreview()
}

// TabsObserver is told whenever the registry's visible state changes.
type TabsObserver interface {
	OnTabsChanged(ctx context.Context, tabs []entity.TabSummary)
}
