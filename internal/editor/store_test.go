package editor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vecdraw/internal/geom"
)

func TestExtendRingBuildsEdgeList(t *testing.T) {
	st := NewStore(0.05)
	sq := square(0.5)
	for _, p := range sq {
		assert.False(t, st.ExtendRing(p))
	}
	assert.Equal(t, []geom.Point{sq[0], sq[1], sq[1], sq[2], sq[2], sq[3]}, st.OpenRing().Vertices())
	assert.Equal(t, []int{0}, st.RingOffsets())

	require.True(t, st.ExtendRing(geom.Pt(-0.49, -0.47)))
	closed := st.ClosedRings()
	require.Len(t, closed, 1)
	assert.True(t, closed[0].Closed())
	assert.Equal(t, []geom.Point{sq[0], sq[1], sq[1], sq[2], sq[2], sq[3], sq[3], sq[0]}, closed[0].Vertices())
	assert.Equal(t, []int{0, 8}, st.RingOffsets())
	assert.Zero(t, st.OpenRing().Len())
	assert.False(t, st.OpenRing().Closed())
}

func TestExtendRingToleranceIsPerAxis(t *testing.T) {
	st := NewStore(0.05)
	for _, p := range square(0.5) {
		st.ExtendRing(p)
	}
	// within tolerance on x only
	assert.False(t, st.ExtendRing(geom.Pt(-0.5, -0.4)))
	assert.Empty(t, st.ClosedRings())
	// within tolerance on y only
	assert.False(t, st.ExtendRing(geom.Pt(-0.25, -0.5)))
	assert.Empty(t, st.ClosedRings())
}

func TestSecondVertexNeverCloses(t *testing.T) {
	st := NewStore(0.05)
	st.ExtendRing(geom.Pt(0, 0))
	assert.False(t, st.ExtendRing(geom.Pt(0.01, 0.01)))
	assert.Equal(t, 2, st.OpenRing().Len())
	assert.Empty(t, st.ClosedRings())
}

func TestTwoVertexRingCloses(t *testing.T) {
	st := NewStore(0.05)
	st.ExtendRing(geom.Pt(0, 0))
	st.ExtendRing(geom.Pt(0.5, 0))
	require.True(t, st.ExtendRing(geom.Pt(0.01, 0)))
	assert.Equal(t, []geom.Point{geom.Pt(0, 0), geom.Pt(0.5, 0), geom.Pt(0.5, 0), geom.Pt(0, 0)},
		st.ClosedRings()[0].Vertices())
}

func TestRingPreview(t *testing.T) {
	st := NewStore(0.05)
	assert.Nil(t, st.RingPreview(geom.Pt(0.3, 0.3)))

	st.ExtendRing(geom.Pt(0, 0))
	assert.Equal(t, []geom.Point{geom.Pt(0, 0), geom.Pt(0.3, 0.3)}, st.RingPreview(geom.Pt(0.3, 0.3)))

	st.ExtendRing(geom.Pt(0.5, 0))
	st.ExtendRing(geom.Pt(0.5, 0.5))
	before := append([]geom.Point(nil), st.OpenRing().Vertices()...)
	assert.Equal(t, []geom.Point{geom.Pt(0.5, 0.5), geom.Pt(0.25, 0.75)}, st.RingPreview(geom.Pt(0.25, 0.75)))
	// near the first vertex the preview snaps to it
	assert.Equal(t, []geom.Point{geom.Pt(0.5, 0.5), geom.Pt(0, 0)}, st.RingPreview(geom.Pt(0.02, -0.02)))
	assert.Equal(t, before, st.OpenRing().Vertices())
	assert.Equal(t, []int{0}, st.RingOffsets())
}

func TestPolygonVerticesIncludesOpenRing(t *testing.T) {
	st := NewStore(0.05)
	for _, p := range square(0.5) {
		st.ExtendRing(p)
	}
	st.ExtendRing(geom.Pt(-0.5, -0.5))
	st.ExtendRing(geom.Pt(0.75, 0.75))
	st.ExtendRing(geom.Pt(0.875, 0.75))
	got := st.PolygonVertices()
	assert.Len(t, got, 10)
	assert.Equal(t, []geom.Point{geom.Pt(0.75, 0.75), geom.Pt(0.875, 0.75)}, got[8:])

	st.DiscardOpenRing()
	assert.Len(t, st.PolygonVertices(), 8)
	assert.Len(t, st.ClosedRings(), 1)
}

func TestFill(t *testing.T) {
	st := NewStore(0.05)
	for _, sq := range [][]geom.Point{square(0.75), square(0.25)} {
		for _, p := range sq {
			st.ExtendRing(p)
		}
		require.True(t, st.ExtendRing(sq[0]))
	}

	assert.Equal(t, 2, st.Fill(geom.Pt(0, 0)), "point inside both rings")
	assert.Equal(t, 1, st.Fill(geom.Pt(0.5, 0.5)), "point inside outer ring only")
	assert.Equal(t, 0, st.Fill(geom.Pt(0.9, 0.9)))
	require.Len(t, st.Regions(), 3)

	// regions are copies, independent of their ring
	ring := st.ClosedRings()[0].Vertices()
	region := st.Regions()[0].Vertices()
	assert.Equal(t, ring, region)
	region[0] = geom.Pt(9, 9)
	assert.Equal(t, geom.Pt(-0.75, -0.75), ring[0])
}

func TestFillIgnoresOpenRing(t *testing.T) {
	st := NewStore(0.05)
	for _, p := range square(0.5) {
		st.ExtendRing(p)
	}
	assert.Zero(t, st.Fill(geom.Pt(0, 0)))
	assert.Empty(t, st.Regions())
}

func TestTransformAllOrNothing(t *testing.T) {
	st := NewStore(0.05)
	st.AddSegment(geom.Pt(0, 0), geom.Pt(0.25, 0.25))
	st.AddSegment(geom.Pt(0, 0), geom.Pt(0.75, 0.25))
	rect := geom.Rect{LLx: -0.5, LLy: -0.5, URx: 0.5, URy: 0.5}
	neg := func(p geom.Point) geom.Point { return geom.Pt(-p.X, -p.Y) }

	assert.Equal(t, 1, st.Transform(rect, neg))
	assert.Equal(t, geom.Segment{A: geom.Pt(0, 0), B: geom.Pt(-0.25, -0.25)}, st.Segments()[0])
	assert.Equal(t, geom.Segment{A: geom.Pt(0, 0), B: geom.Pt(0.75, 0.25)}, st.Segments()[1])
}

func TestTransformRingsAndRegionsIndependently(t *testing.T) {
	st := NewStore(0.05)
	sq := square(0.25)
	for _, p := range sq {
		st.ExtendRing(p)
	}
	st.ExtendRing(sq[0])
	st.Fill(geom.Pt(0, 0))

	shift := func(p geom.Point) geom.Point { return geom.Pt(p.X+0.5, p.Y) }
	rect := geom.Rect{LLx: -0.5, LLy: -0.5, URx: 0.5, URy: 0.5}
	assert.Equal(t, 2, st.Transform(rect, shift))

	// both moved to x in [0.25, 0.75], outside the window now
	assert.Equal(t, 0, st.Transform(rect, shift))
	assert.Equal(t, geom.Pt(0.25, -0.25), st.ClosedRings()[0].Vertices()[0])
	assert.Equal(t, geom.Pt(0.25, -0.25), st.Regions()[0].Vertices()[0])
}

func TestStoreClear(t *testing.T) {
	st := NewStore(0.05)
	st.AddSegment(geom.Pt(0, 0), geom.Pt(1, 1))
	for _, p := range square(0.5) {
		st.ExtendRing(p)
	}
	st.ExtendRing(geom.Pt(-0.5, -0.5))
	st.Fill(geom.Pt(0, 0))

	st.Clear()
	assert.Empty(t, st.Segments())
	assert.Empty(t, st.PolygonVertices())
	assert.Empty(t, st.Regions())
	assert.Equal(t, []int{0}, st.RingOffsets())
}
