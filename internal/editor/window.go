package editor

import (
	"errors"

	"vecdraw/internal/geom"
)

var (
	// ErrWindowIncomplete is returned when a transform window has not been
	// picked with both corners.
	ErrWindowIncomplete = errors.New("transform window not fully picked")
	// ErrNoAnchor is returned when completing a pick that was never begun.
	ErrNoAnchor = errors.New("transform window has no first corner")
)

// Window is the two-corner rectangular selection that gates which entities
// a transformation touches. It is empty, anchored (first corner picked) or
// complete (outline of four corners).
type Window struct {
	anchor   geom.Point
	anchored bool
	corners  []geom.Point
}

// BeginPick discards any previous window and seeds a new one at p.
func (w *Window) BeginPick(p geom.Point) {
	w.anchor = p
	w.anchored = true
	w.corners = nil
}

// CompletePick finishes the window with the opposite corner p and returns
// its bounds.
func (w *Window) CompletePick(p geom.Point) (geom.Rect, error) {
	if !w.anchored {
		return geom.Rect{}, ErrNoAnchor
	}
	w.corners = outline(w.anchor, p)
	w.anchored = false
	return geom.RectFromCorners(w.corners[0], w.corners[2]), nil
}

// Cancel clears the window.
func (w *Window) Cancel() {
	*w = Window{}
}

// Anchored reports whether the first corner is picked and the second is
// still pending.
func (w *Window) Anchored() bool { return w.anchored }

// Complete reports whether both corners are picked.
func (w *Window) Complete() bool { return len(w.corners) == 4 }

// Rect returns the window bounds, read from two opposite outline corners.
func (w *Window) Rect() (geom.Rect, error) {
	if !w.Complete() {
		return geom.Rect{}, ErrWindowIncomplete
	}
	return geom.RectFromCorners(w.corners[0], w.corners[2]), nil
}

// Outline returns the four corners of a complete window as a closed loop,
// or nil.
func (w *Window) Outline() []geom.Point {
	if !w.Complete() {
		return nil
	}
	out := make([]geom.Point, 4)
	copy(out, w.corners)
	return out
}

// PreviewOutline returns the loop the window would have if p were picked
// as the second corner. It is nil unless the window is anchored.
func (w *Window) PreviewOutline(p geom.Point) []geom.Point {
	if !w.anchored {
		return nil
	}
	return outline(w.anchor, p)
}

// outline walks P0 -> (P1.x, P0.y) -> P1 -> (P0.x, P1.y).
func outline(p0, p1 geom.Point) []geom.Point {
	return []geom.Point{
		p0,
		{X: p1.X, Y: p0.Y},
		p1,
		{X: p0.X, Y: p1.Y},
	}
}
