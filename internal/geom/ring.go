package geom

// RingContains runs the even-odd ray-casting test of q against the closed
// ring whose vertices are given in order (the last vertex connects back to
// the first). Only x and y are read.
//
// Horizontal edges never produce a crossing. A point that lies on an edge
// is reported as inside, so fills are deterministic along borders.
func RingContains(ring []Point, q Point) bool {
	if len(ring) < 3 {
		return false
	}
	inside := false
	for k, j := 0, len(ring)-1; k < len(ring); j, k = k, k+1 {
		a, b := ring[j], ring[k]
		if onSegment(a, b, q) {
			return true
		}
		if a.Y == b.Y {
			continue
		}
		if (b.Y > q.Y) != (a.Y > q.Y) &&
			q.X < (a.X-b.X)*(q.Y-b.Y)/(a.Y-b.Y)+b.X {
			inside = !inside
		}
	}
	return inside
}

const collinearEps = 1e-12

// onSegment reports whether q lies on the closed segment a-b.
func onSegment(a, b, q Point) bool {
	cross := (b.X-a.X)*(q.Y-a.Y) - (b.Y-a.Y)*(q.X-a.X)
	if cross > collinearEps || cross < -collinearEps {
		return false
	}
	return q.X >= min(a.X, b.X) && q.X <= max(a.X, b.X) &&
		q.Y >= min(a.Y, b.Y) && q.Y <= max(a.Y, b.Y)
}
