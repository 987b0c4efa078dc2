package editor

// Config holds the session's tunables.
type Config struct {
	// CloseTolerance is how close, on each axis independently, a polygon
	// click must land to the ring's first vertex to close the ring.
	CloseTolerance float64
	// Width and Height are the initial viewport size in device pixels.
	Width  float64
	Height float64
}

// DefaultConfig returns a 640x640 viewport with a 0.05 closing tolerance.
func DefaultConfig() Config {
	return Config{
		CloseTolerance: 0.05,
		Width:          640,
		Height:         640,
	}
}
