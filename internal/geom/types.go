// Package geom holds the canonical-space primitives shared by the editor and
// the terminal renderer.
package geom

import (
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Point is a location in canonical space: both axes span [-1, 1] and y grows
// upward.
type Point = vec.Vec2

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point { return Point{X: x, Y: y} }

// Segment is one independent line segment.
type Segment struct {
	A, B Point
}

// Rect is an axis-aligned rectangle spanning lower-left (LLx, LLy) to
// upper-right (URx, URy). Bounds are inclusive.
type Rect rect.Rect

// RectFromCorners normalizes two opposite corners into a Rect.
func RectFromCorners(a, b Point) Rect {
	return Rect{
		LLx: min(a.X, b.X),
		LLy: min(a.Y, b.Y),
		URx: max(a.X, b.X),
		URy: max(a.Y, b.Y),
	}
}

// Contains reports whether p lies inside r or on its border.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.LLx && p.X <= r.URx && p.Y >= r.LLy && p.Y <= r.URy
}

// ContainsAll reports whether every point lies inside r. An empty slice is
// contained trivially.
func (r Rect) ContainsAll(pts []Point) bool {
	for _, p := range pts {
		if !r.Contains(p) {
			return false
		}
	}
	return true
}
