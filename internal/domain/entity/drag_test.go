package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDragSession_ModifierMustBeHeldThroughout(t *testing.T) {
	s := NewDragSession("tab-1", Point{X: 10, Y: 10}, true)
	s.Update(Point{X: 20, Y: 10}, true)
	assert.True(t, s.WantsTearOff())

	s.Update(Point{X: 30, Y: 10}, false)
	s.Update(Point{X: 40, Y: 10}, true)
	assert.False(t, s.WantsTearOff())
	assert.Equal(t, 30.0, s.Displacement())
}

func TestRect_GrowContains(t *testing.T) {
	r := Rect{X: 0, Y: 0, W: 800, H: 600}
	grown := r.Grow(100)

	assert.True(t, grown.Contains(Point{X: -100, Y: 300}))
	assert.False(t, grown.Contains(Point{X: -101, Y: 300}))
	assert.True(t, r.Contains(Point{X: 800, Y: 600}))
}
