package editor

import (
	"math"

	"vecdraw/internal/geom"
)

// Ring is one polygon's edge chain. Vertices are stored as an edge list:
// every vertex after the first two is preceded by a copy of the previous
// one, so consecutive pairs are drawable line segments.
type Ring struct {
	verts  []geom.Point
	closed bool
}

// Vertices returns the ring's stored vertices. The slice is owned by the
// ring; callers must not modify it.
func (r *Ring) Vertices() []geom.Point { return r.verts }

// Closed reports whether the ring has been closed and frozen.
func (r *Ring) Closed() bool { return r.closed }

// Len returns the number of stored vertices.
func (r *Ring) Len() int { return len(r.verts) }

func (r *Ring) first() geom.Point { return r.verts[0] }
func (r *Ring) last() geom.Point  { return r.verts[len(r.verts)-1] }

// Region is a filled copy of a closed ring.
type Region struct {
	verts []geom.Point
}

// Vertices returns the region's vertices in ring order.
func (r *Region) Vertices() []geom.Point { return r.verts }

// Store owns the drawing: independent line segments, polygon rings and
// filled regions. The last ring is always the open one (possibly empty).
type Store struct {
	tolerance float64
	segments  []geom.Segment
	rings     []*Ring
	regions   []*Region
}

// NewStore returns an empty store that closes rings within tolerance.
func NewStore(tolerance float64) *Store {
	return &Store{
		tolerance: tolerance,
		rings:     []*Ring{{}},
	}
}

// Clear drops every segment, ring and region.
func (s *Store) Clear() {
	s.segments = nil
	s.rings = []*Ring{{}}
	s.regions = nil
}

// AddSegment appends a complete segment.
func (s *Store) AddSegment(a, b geom.Point) {
	s.segments = append(s.segments, geom.Segment{A: a, B: b})
}

// Segments returns the committed segments.
func (s *Store) Segments() []geom.Segment { return s.segments }

// LineVertices flattens the segments into pairs of points.
func (s *Store) LineVertices() []geom.Point {
	out := make([]geom.Point, 0, 2*len(s.segments))
	for _, seg := range s.segments {
		out = append(out, seg.A, seg.B)
	}
	return out
}

// Rings returns every ring, closed ones first and the open ring last.
func (s *Store) Rings() []*Ring { return s.rings }

// ClosedRings returns the frozen rings.
func (s *Store) ClosedRings() []*Ring { return s.rings[:len(s.rings)-1] }

// OpenRing returns the ring currently being drawn.
func (s *Store) OpenRing() *Ring { return s.rings[len(s.rings)-1] }

// RingOffsets returns the boundary index list: the offset of each ring's
// first vertex in PolygonVertices. It starts as {0} and gains one entry
// per closed ring.
func (s *Store) RingOffsets() []int {
	offsets := make([]int, 1, len(s.rings))
	off := 0
	for _, r := range s.ClosedRings() {
		off += r.Len()
		offsets = append(offsets, off)
	}
	return offsets
}

// PolygonVertices flattens every ring, including the open one, into a
// single edge list.
func (s *Store) PolygonVertices() []geom.Point {
	var out []geom.Point
	for _, r := range s.rings {
		out = append(out, r.verts...)
	}
	return out
}

// Regions returns the filled regions.
func (s *Store) Regions() []*Region { return s.regions }

func (s *Store) nearFirst(r *Ring, p geom.Point) bool {
	f := r.first()
	return math.Abs(p.X-f.X) < s.tolerance && math.Abs(p.Y-f.Y) < s.tolerance
}

// ExtendRing commits p to the open ring and reports whether it closed the
// ring. A ring needs two stored vertices before it can close.
func (s *Store) ExtendRing(p geom.Point) (closed bool) {
	r := s.OpenRing()
	switch {
	case r.Len() < 2:
		r.verts = append(r.verts, p)
	case s.nearFirst(r, p):
		r.verts = append(r.verts, r.last(), r.first())
		r.closed = true
		s.rings = append(s.rings, &Ring{})
		return true
	default:
		r.verts = append(r.verts, r.last(), p)
	}
	return false
}

// RingPreview returns the edge that committing p would add to the open
// ring, without touching the store. It is empty when no ring is started.
func (s *Store) RingPreview(p geom.Point) []geom.Point {
	r := s.OpenRing()
	switch {
	case r.Len() == 0:
		return nil
	case r.Len() == 1:
		return []geom.Point{r.first(), p}
	case s.nearFirst(r, p):
		return []geom.Point{r.last(), r.first()}
	}
	return []geom.Point{r.last(), p}
}

// DiscardOpenRing drops the vertices of the ring being drawn.
func (s *Store) DiscardOpenRing() {
	s.rings[len(s.rings)-1] = &Ring{}
}

// Fill materializes a region for every closed ring containing q and
// returns how many were added.
func (s *Store) Fill(q geom.Point) int {
	n := 0
	for _, r := range s.ClosedRings() {
		if !geom.RingContains(r.verts, q) {
			continue
		}
		verts := make([]geom.Point, len(r.verts))
		copy(verts, r.verts)
		s.regions = append(s.regions, &Region{verts: verts})
		n++
	}
	return n
}

// Transform applies fn to every entity lying entirely inside rect and
// returns how many entities changed. Entities with any vertex outside are
// left untouched; nothing is clipped.
func (s *Store) Transform(rect geom.Rect, fn func(geom.Point) geom.Point) int {
	n := 0
	for i, seg := range s.segments {
		if rect.Contains(seg.A) && rect.Contains(seg.B) {
			s.segments[i] = geom.Segment{A: fn(seg.A), B: fn(seg.B)}
			n++
		}
	}
	for _, r := range s.ClosedRings() {
		if mapAll(rect, r.verts, fn) {
			n++
		}
	}
	for _, r := range s.regions {
		if mapAll(rect, r.verts, fn) {
			n++
		}
	}
	return n
}

func mapAll(rect geom.Rect, pts []geom.Point, fn func(geom.Point) geom.Point) bool {
	if !rect.ContainsAll(pts) {
		return false
	}
	for i, p := range pts {
		pts[i] = fn(p)
	}
	return true
}
