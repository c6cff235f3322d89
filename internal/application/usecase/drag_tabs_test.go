package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/bnema/tabshell/internal/application/port"
	"github.com/bnema/tabshell/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const slotWidth = 100

// fakeStrip renders tabs as fixed-width slots in a 800x600 window.
type fakeStrip struct {
	order     []entity.TabID
	renders   int
	ghosts    []bool
	hidden    int
	lastGhost entity.TabID
}

func (s *fakeStrip) Slots() []port.TabSlot {
	slots := make([]port.TabSlot, len(s.order))
	for i, id := range s.order {
		slots[i] = port.TabSlot{ID: id, Left: float64(i * slotWidth), Right: float64((i + 1) * slotWidth)}
	}
	return slots
}

func (s *fakeStrip) WindowBounds() entity.Rect {
	return entity.Rect{X: 0, Y: 0, W: 800, H: 600}
}

func (s *fakeStrip) RenderPreviewOrder(order []entity.TabID) {
	s.order = append([]entity.TabID(nil), order...)
	s.renders++
}

func (s *fakeStrip) ShowDragPreview(id entity.TabID, _ entity.Point, outside bool) {
	s.lastGhost = id
	s.ghosts = append(s.ghosts, outside)
}

func (s *fakeStrip) HideDragPreview() { s.hidden++ }

func newDragFixture(t *testing.T, tabs int) (*DragController, *registryFixture, *fakeStrip, []entity.TabID) {
	t.Helper()
	f := newRegistryFixture(t, TabRegistryConfig{})
	f.allowWindowTitles()
	ids := f.create(t, tabs)
	strip := &fakeStrip{order: f.registry.IDs()}
	d := NewDragController(f.registry, f.host, strip, nil, DefaultDragConfig())
	return d, f, strip, ids
}

func pt(x, y float64) entity.Point { return entity.Point{X: x, Y: y} }

func TestDragController_ClickActivates(t *testing.T) {
	d, f, strip, ids := newDragFixture(t, 3)
	ctx := context.Background()

	d.PointerDown(ctx, ids[0], pt(50, 10), false)
	assert.Equal(t, DragArmed, d.Phase())
	d.PointerMove(ctx, pt(52, 11), false)
	assert.Equal(t, DragArmed, d.Phase())

	assert.Equal(t, DragClicked, d.PointerUp(ctx, pt(52, 11), false))
	assert.Equal(t, ids[0], f.registry.ActiveTabID())
	assert.Equal(t, DragIdle, d.Phase())
	assert.Zero(t, strip.renders)
	assert.Empty(t, strip.ghosts)
}

func TestDragController_Reorder(t *testing.T) {
	d, f, strip, ids := newDragFixture(t, 3)
	ctx := context.Background()
	a, b, c := ids[0], ids[1], ids[2]

	d.PointerDown(ctx, a, pt(50, 10), false)
	d.PointerMove(ctx, pt(150, 10), false)
	assert.Equal(t, DragDragging, d.Phase())
	assert.Equal(t, []entity.TabID{b, a, c}, strip.order)
	// Preview only: the registry is untouched until release.
	assert.Equal(t, ids, f.registry.IDs())

	d.PointerMove(ctx, pt(250, 10), false)
	assert.Equal(t, []entity.TabID{b, c, a}, strip.order)

	assert.Equal(t, DragReordered, d.PointerUp(ctx, pt(250, 10), false))
	assert.Equal(t, []entity.TabID{b, c, a}, f.registry.IDs())
	assert.Equal(t, 1, strip.hidden)
	assert.Equal(t, DragIdle, d.Phase())
}

func TestDragController_ReorderBackwards(t *testing.T) {
	d, f, _, ids := newDragFixture(t, 4)
	ctx := context.Background()

	d.PointerDown(ctx, ids[3], pt(350, 10), false)
	d.PointerMove(ctx, pt(50, 10), false)
	assert.Equal(t, DragReordered, d.PointerUp(ctx, pt(50, 10), false))
	assert.Equal(t, []entity.TabID{ids[3], ids[0], ids[1], ids[2]}, f.registry.IDs())
}

func TestDragController_ReleaseWithinMarginIsNotTearOff(t *testing.T) {
	d, f, strip, ids := newDragFixture(t, 2)
	ctx := context.Background()

	d.PointerDown(ctx, ids[0], pt(50, 10), false)
	d.PointerMove(ctx, pt(850, 10), false)
	assert.False(t, d.Outside())

	assert.Equal(t, DragNone, d.PointerUp(ctx, pt(850, 10), false))
	assert.Equal(t, ids, f.registry.IDs())
	assert.Equal(t, ids, strip.order)
	f.host.AssertNotCalled(t, "CreateWindow", mock.Anything, mock.Anything, mock.Anything)
}

func TestDragController_TearOff(t *testing.T) {
	d, f, strip, ids := newDragFixture(t, 2)
	ctx := context.Background()

	f.host.EXPECT().CreateWindow(mock.Anything, "https://app.internal/", (*port.StorageSnapshot)(nil)).
		RunAndReturn(func(context.Context, string, *port.StorageSnapshot) (port.WindowID, error) {
			// The tab must still exist while the window is being created.
			assert.Contains(t, f.registry.IDs(), ids[0])
			return "window-2", nil
		}).Once()

	d.PointerDown(ctx, ids[0], pt(50, 10), false)
	d.PointerMove(ctx, pt(500, 10), false)
	assert.False(t, d.Outside())
	d.PointerMove(ctx, pt(1000, 10), false)
	assert.True(t, d.Outside())
	// Crossing the margin never touches the registry order.
	assert.Equal(t, ids, f.registry.IDs())
	assert.Equal(t, true, strip.ghosts[len(strip.ghosts)-1])

	assert.Equal(t, DragTornOff, d.PointerUp(ctx, pt(1000, 10), false))
	assert.Equal(t, []entity.TabID{ids[1]}, f.registry.IDs())
	assert.Equal(t, []entity.TabID{ids[1]}, strip.order)
}

func TestDragController_TearOffFailureKeepsTab(t *testing.T) {
	d, f, strip, ids := newDragFixture(t, 3)
	ctx := context.Background()
	f.host.EXPECT().CreateWindow(mock.Anything, mock.Anything, mock.Anything).
		Return(port.WindowID(""), errors.New("compositor refused")).Once()

	d.PointerDown(ctx, ids[1], pt(150, 10), false)
	d.PointerMove(ctx, pt(50, 10), false)
	require.Equal(t, []entity.TabID{ids[1], ids[0], ids[2]}, strip.order)
	d.PointerMove(ctx, pt(150, 900), false)

	assert.Equal(t, DragTearOffFailed, d.PointerUp(ctx, pt(150, 900), false))
	assert.Equal(t, ids, f.registry.IDs())
	assert.Equal(t, ids, strip.order)
}

func TestDragController_TearOffLastTabKeepsIt(t *testing.T) {
	d, f, _, ids := newDragFixture(t, 1)
	ctx := context.Background()
	f.host.EXPECT().CreateWindow(mock.Anything, mock.Anything, mock.Anything).Return("window-2", nil).Once()

	d.PointerDown(ctx, ids[0], pt(50, 10), false)
	d.PointerMove(ctx, pt(-300, 10), false)
	assert.Equal(t, DragTornOff, d.PointerUp(ctx, pt(-300, 10), false))
	assert.Equal(t, ids, f.registry.IDs())
}

func TestDragController_ModifierHeldThroughout(t *testing.T) {
	tests := []struct {
		name      string
		modifiers []bool
		wantTear  bool
	}{
		{name: "held", modifiers: []bool{true, true, true}, wantTear: true},
		{name: "released midway", modifiers: []bool{true, false, true}, wantTear: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, f, _, ids := newDragFixture(t, 2)
			ctx := context.Background()
			if tt.wantTear {
				f.host.EXPECT().CreateWindow(mock.Anything, mock.Anything, mock.Anything).Return("window-2", nil).Once()
			}

			d.PointerDown(ctx, ids[0], pt(50, 10), tt.modifiers[0])
			d.PointerMove(ctx, pt(60, 40), tt.modifiers[1])
			got := d.PointerUp(ctx, pt(60, 40), tt.modifiers[2])

			if tt.wantTear {
				assert.Equal(t, DragTornOff, got)
				assert.Equal(t, 1, f.registry.Count())
			} else {
				assert.Equal(t, DragNone, got)
				assert.Equal(t, 2, f.registry.Count())
			}
		})
	}
}

func TestDragController_Cancel(t *testing.T) {
	d, f, strip, ids := newDragFixture(t, 3)
	ctx := context.Background()

	d.PointerDown(ctx, ids[0], pt(50, 10), false)
	d.PointerMove(ctx, pt(250, 10), false)
	d.Cancel()

	assert.Equal(t, DragIdle, d.Phase())
	assert.Equal(t, ids, strip.order)
	assert.Equal(t, ids, f.registry.IDs())
	assert.Equal(t, DragNone, d.PointerUp(ctx, pt(250, 10), false))
}

func TestIsPermutation(t *testing.T) {
	assert.True(t, isPermutation([]entity.TabID{"a", "b"}, []entity.TabID{"b", "a"}))
	assert.False(t, isPermutation([]entity.TabID{"a", "b"}, []entity.TabID{"a", "a"}))
	assert.False(t, isPermutation([]entity.TabID{"a", "b"}, []entity.TabID{"a"}))
}
