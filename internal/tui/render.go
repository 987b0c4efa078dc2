package tui

import (
	"math"
	"sort"
	"strings"

	"vecdraw/internal/geom"
)

// renderCanvas draws the session's vertex buffers on a w x h cell canvas.
func (m Model) renderCanvas(w, h int) string {
	br := newBrailleBuf(w, h)
	s := m.session

	for _, region := range s.Regions() {
		m.fillRing(br, region)
	}
	m.drawPairs(br, s.PolygonVertices(), layerPolygon)
	m.drawPairs(br, s.LineVertices(), layerLine)
	m.drawLoop(br, s.WindowOutline(), layerWindow)

	m.drawPairs(br, m.preview.Lines, layerPreview)
	m.drawPairs(br, m.preview.Edges, layerPreview)
	m.drawLoop(br, m.preview.Outline, layerPreview)
	if p, ok := s.LineAnchor(); ok {
		x, y := toDot(br, p)
		br.setPixel(x, y, layerLine)
	}
	if m.hovering {
		x, y := toDot(br, m.cursor)
		br.setPixel(x, y, layerCursor)
	}
	return strings.Join(br.toLines(), "\n")
}

// toDot maps a canonical point to a dot on the canvas.
func toDot(br *brailleBuf, p geom.Point) (int, int) {
	x, y := geom.Denormalize(p, float64(br.dotWidth()), float64(br.dotHeight()))
	return int(math.Floor(x)), int(math.Floor(y))
}

// drawPairs draws each consecutive pair of points as a segment.
func (m Model) drawPairs(br *brailleBuf, pts []geom.Point, l layer) {
	for i := 0; i+1 < len(pts); i += 2 {
		x0, y0 := toDot(br, pts[i])
		x1, y1 := toDot(br, pts[i+1])
		br.drawLine(x0, y0, x1, y1, l)
	}
}

// drawLoop draws a closed polyline.
func (m Model) drawLoop(br *brailleBuf, pts []geom.Point, l layer) {
	for i := range pts {
		x0, y0 := toDot(br, pts[i])
		x1, y1 := toDot(br, pts[(i+1)%len(pts)])
		br.drawLine(x0, y0, x1, y1, l)
	}
}

// fillRing fills a ring with the even-odd rule, one dot row at a time.
// Horizontal edges are skipped.
func (m Model) fillRing(br *brailleBuf, ring []geom.Point) {
	if len(ring) < 3 {
		return
	}
	dots := make([][2]int, len(ring))
	for i, p := range ring {
		x, y := toDot(br, p)
		dots[i] = [2]int{x, y}
	}
	hMic := br.dotHeight()
	for yMic := 0; yMic < hMic; yMic++ {
		var xs []int
		for i := range dots {
			a := dots[i]
			b := dots[(i+1)%len(dots)]
			if a[1] == b[1] {
				continue
			}
			y0, y1 := a[1], b[1]
			x0, x1 := a[0], b[0]
			if (yMic >= y0 && yMic < y1) || (yMic >= y1 && yMic < y0) {
				t := float64(yMic-y0) / float64(y1-y0)
				xs = append(xs, int(float64(x0)+t*float64(x1-x0)))
			}
		}
		sort.Ints(xs)
		for i := 0; i+1 < len(xs); i += 2 {
			xstart := clamp(xs[i], 0, br.dotWidth()-1)
			xend := clamp(xs[i+1], 0, br.dotWidth()-1)
			for xMic := xstart; xMic <= xend; xMic++ {
				br.setPixel(xMic, yMic, layerFill)
			}
		}
	}
}
