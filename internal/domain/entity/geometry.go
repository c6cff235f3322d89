package entity

import "math"

// Point is a pointer position in window coordinates.
type Point struct {
	X, Y float64
}

// Sub returns p - o.
func (p Point) Sub(o Point) Point {
	return Point{X: p.X - o.X, Y: p.Y - o.Y}
}

// Distance returns the euclidean distance between p and o.
func (p Point) Distance(o Point) float64 {
	return math.Hypot(p.X-o.X, p.Y-o.Y)
}

// Rect is an axis-aligned rectangle.
type Rect struct {
	X, Y float64
	W, H float64
}

// Grow returns r expanded by margin on every side.
func (r Rect) Grow(margin float64) Rect {
	return Rect{X: r.X - margin, Y: r.Y - margin, W: r.W + 2*margin, H: r.H + 2*margin}
}

// Contains reports whether p lies inside r, edges included.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X <= r.X+r.W && p.Y >= r.Y && p.Y <= r.Y+r.H
}
