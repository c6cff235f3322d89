package entity

// DragSession tracks one pointer drag of a tab. It lives from pointer-down
// until pointer-up and is discarded regardless of outcome.
type DragSession struct {
	TabID          TabID
	Origin         Point
	Current        Point
	Outside        bool
	ModifierHeld   bool // true only while the modifier stayed down for every event
	PreviewVisible bool
}

// NewDragSession starts a session at origin.
func NewDragSession(id TabID, origin Point, modifier bool) *DragSession {
	return &DragSession{
		TabID:        id,
		Origin:       origin,
		Current:      origin,
		ModifierHeld: modifier,
	}
}

// Displacement returns the distance travelled from the origin.
func (s *DragSession) Displacement() float64 {
	return s.Origin.Distance(s.Current)
}

// Update records a new pointer sample.
func (s *DragSession) Update(p Point, modifier bool) {
	s.Current = p
	s.ModifierHeld = s.ModifierHeld && modifier
}

// WantsTearOff reports whether release should detach the tab.
func (s *DragSession) WantsTearOff() bool {
	return s.Outside || s.ModifierHeld
}
