package geom

// Normalize maps a device pixel position to canonical space. Device y grows
// downward, so it is flipped. width and height must be the current viewport
// size; callers never cache the result across resizes.
func Normalize(px, py, width, height float64) Point {
	x := 2*px/width - 1
	y := -(2*py/height - 1)
	return Point{X: x, Y: y}
}

// Denormalize is the inverse of Normalize.
func Denormalize(p Point, width, height float64) (px, py float64) {
	px = (p.X + 1) * width / 2
	py = (1 - p.Y) * height / 2
	return px, py
}

// Flatten3 lays points out as x,y,z triples with z fixed at zero, the vertex
// layout a GPU renderer expects.
func Flatten3(pts []Point) []float32 {
	out := make([]float32, 0, len(pts)*3)
	for _, p := range pts {
		out = append(out, float32(p.X), float32(p.Y), 0)
	}
	return out
}
