package editor

import (
	"fmt"

	"vecdraw/internal/geom"
)

// Preview is speculative geometry for the cursor position. It is computed
// on demand and never stored.
type Preview struct {
	// Lines holds a tentative segment as a point pair.
	Lines []geom.Point
	// Edges holds the edge the open ring would gain.
	Edges []geom.Point
	// Outline holds a tentative transform window loop.
	Outline []geom.Point
}

// Empty reports whether there is nothing to draw.
func (p Preview) Empty() bool {
	return len(p.Lines) == 0 && len(p.Edges) == 0 && len(p.Outline) == 0
}

// InsertPoint commits a click at device position (px, py). A pending
// transformation takes priority over the draw mode.
func (s *Session) InsertPoint(px, py float64) error {
	p := s.Normalize(px, py)
	if s.kind != TransformNone {
		if s.window.Anchored() {
			_, err := s.completeWindow(p)
			return err
		}
		s.beginWindow(p)
		return nil
	}

	switch s.mode {
	case DrawLine:
		if !s.hasLineAnchor {
			s.lineAnchor, s.hasLineAnchor = p, true
			return nil
		}
		s.store.AddSegment(s.lineAnchor, p)
		s.hasLineAnchor = false
		Logger().Debug("segment", "a", s.lineAnchor, "b", p)
	case DrawPolygon:
		if s.store.ExtendRing(p) {
			Logger().Debug("ring closed", "rings", len(s.store.ClosedRings()))
		}
	case DrawFloodFill:
		n := s.store.Fill(p)
		Logger().Debug("flood fill", "at", p, "regions", n)
	}
	return nil
}

// Preview returns the geometry a click at (px, py) would add, leaving the
// session untouched.
func (s *Session) Preview(px, py float64) Preview {
	p := s.Normalize(px, py)
	if s.kind != TransformNone {
		return Preview{Outline: s.window.PreviewOutline(p)}
	}
	switch s.mode {
	case DrawLine:
		if s.hasLineAnchor {
			return Preview{Lines: []geom.Point{s.lineAnchor, p}}
		}
	case DrawPolygon:
		return Preview{Edges: s.store.RingPreview(p)}
	}
	return Preview{}
}

// BeginTransformWindowPick seeds a new transform window at device position
// (px, py).
func (s *Session) BeginTransformWindowPick(px, py float64) {
	s.beginWindow(s.Normalize(px, py))
}

// CompleteTransformWindowPick picks the second window corner. Reflections
// are applied at once; parameterized transformations start awaiting input.
func (s *Session) CompleteTransformWindowPick(px, py float64) (geom.Rect, error) {
	return s.completeWindow(s.Normalize(px, py))
}

func (s *Session) beginWindow(p geom.Point) {
	s.window.BeginPick(p)
	s.awaiting = false
}

func (s *Session) completeWindow(p geom.Point) (geom.Rect, error) {
	rect, err := s.window.CompletePick(p)
	if err != nil {
		return geom.Rect{}, fmt.Errorf("complete window: %w", err)
	}
	switch {
	case s.kind == TransformNone:
	case s.kind.NeedsParameters():
		s.awaiting = true
	default:
		if err := s.ApplyTransformation(0, 0); err != nil {
			return rect, err
		}
	}
	return rect, nil
}
