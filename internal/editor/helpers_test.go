package editor

import (
	"testing"

	"github.com/stretchr/testify/require"

	"vecdraw/internal/geom"
)

func newTestSession(t *testing.T) *Session {
	t.Helper()
	return NewSession(Config{CloseTolerance: 0.05, Width: 1000, Height: 1000})
}

// click commits a canonical point through the device-space API.
func click(t *testing.T, s *Session, p geom.Point) {
	t.Helper()
	w, h := s.Viewport()
	px, py := geom.Denormalize(p, w, h)
	require.NoError(t, s.InsertPoint(px, py))
}

func hover(s *Session, p geom.Point) Preview {
	w, h := s.Viewport()
	px, py := geom.Denormalize(p, w, h)
	return s.Preview(px, py)
}

// pickFullWindow picks the whole canvas as transform window.
func pickFullWindow(t *testing.T, s *Session) {
	t.Helper()
	click(t, s, geom.Pt(-1, 1))
	click(t, s, geom.Pt(1, -1))
}

type snapshot struct {
	lines   []geom.Point
	polys   []geom.Point
	offsets []int
	regions [][]geom.Point
	outline []geom.Point
	anchor  geom.Point
	hasAnc  bool
}

func snap(s *Session) snapshot {
	a, ok := s.LineAnchor()
	return snapshot{
		lines:   append([]geom.Point(nil), s.LineVertices()...),
		polys:   append([]geom.Point(nil), s.PolygonVertices()...),
		offsets: s.Store().RingOffsets(),
		regions: s.Regions(),
		outline: s.WindowOutline(),
		anchor:  a,
		hasAnc:  ok,
	}
}

func square(half float64) []geom.Point {
	return []geom.Point{
		geom.Pt(-half, -half), geom.Pt(half, -half), geom.Pt(half, half), geom.Pt(-half, half),
	}
}

// drawRing clicks the corners of pts and closes the ring on its first vertex.
func drawRing(t *testing.T, s *Session, pts []geom.Point) {
	t.Helper()
	for _, p := range pts {
		click(t, s, p)
	}
	click(t, s, pts[0])
}
