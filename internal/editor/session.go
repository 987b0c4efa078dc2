// Package editor implements the drawing session: the entity store, the
// preview/commit insertion protocol, the transform window and the windowed
// transformation engine.
//
// A Session is driven by one event loop and is not safe for concurrent use.
// Renderers read its vertex buffers between events.
package editor

import (
	"errors"
	"slices"

	"vecdraw/internal/geom"
)

var (
	// ErrNoTransformation is returned when applying while no
	// transformation is selected.
	ErrNoTransformation = errors.New("no transformation selected")
	// ErrNotAwaitingInput is returned when parameters are submitted
	// without a picked window waiting for them.
	ErrNotAwaitingInput = errors.New("not awaiting transformation parameters")
)

// Session is one editing context.
type Session struct {
	cfg    Config
	width  float64
	height float64

	mode DrawMode
	kind Transformation

	store  *Store
	window Window

	// first endpoint of a line segment still waiting for its second click
	lineAnchor    geom.Point
	hasLineAnchor bool

	awaiting bool
}

// NewSession returns a session in line mode with no transformation.
func NewSession(cfg Config) *Session {
	if cfg.CloseTolerance <= 0 {
		cfg.CloseTolerance = DefaultConfig().CloseTolerance
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		d := DefaultConfig()
		cfg.Width, cfg.Height = d.Width, d.Height
	}
	return &Session{
		cfg:    cfg,
		width:  cfg.Width,
		height: cfg.Height,
		mode:   DrawLine,
		store:  NewStore(cfg.CloseTolerance),
	}
}

// Resize records the current viewport size in device pixels. Non-positive
// sizes are ignored.
func (s *Session) Resize(width, height float64) {
	if width <= 0 || height <= 0 {
		return
	}
	s.width, s.height = width, height
}

// Viewport returns the current viewport size.
func (s *Session) Viewport() (width, height float64) { return s.width, s.height }

// Normalize maps a device position into canonical space using the current
// viewport.
func (s *Session) Normalize(px, py float64) geom.Point {
	return geom.Normalize(px, py, s.width, s.height)
}

func (s *Session) DrawMode() DrawMode { return s.mode }

func (s *Session) Transformation() Transformation { return s.kind }

// AwaitingInput reports whether a parameterized transformation has its
// window and waits for SubmitParameters or ApplyTransformation.
func (s *Session) AwaitingInput() bool { return s.awaiting }

// SetDrawMode switches the draw mode. Unfinished geometry (a lone line
// endpoint, the open ring) is discarded.
func (s *Session) SetDrawMode(mode DrawMode) {
	s.discardPending()
	s.mode = mode
	Logger().Debug("draw mode", "mode", mode)
}

// SetTransformation selects the pending transformation and clears any
// previous window.
func (s *Session) SetTransformation(kind Transformation) {
	s.discardPending()
	s.window.Cancel()
	s.awaiting = false
	s.kind = kind
	Logger().Debug("transformation", "kind", kind)
}

// CancelTransformWindow clears the window and drops the pending
// transformation.
func (s *Session) CancelTransformWindow() {
	s.window.Cancel()
	s.awaiting = false
	s.kind = TransformNone
}

// ClearAll erases the drawing and resets both modes to none.
func (s *Session) ClearAll() {
	s.store.Clear()
	s.window.Cancel()
	s.hasLineAnchor = false
	s.awaiting = false
	s.kind = TransformNone
	s.mode = DrawNone
	Logger().Debug("cleared")
}

func (s *Session) discardPending() {
	s.hasLineAnchor = false
	s.store.DiscardOpenRing()
}

// Store exposes the entity store.
func (s *Session) Store() *Store { return s.store }

// Window exposes the transform window.
func (s *Session) Window() *Window { return &s.window }

// LineAnchor returns the first endpoint of an unfinished segment.
func (s *Session) LineAnchor() (geom.Point, bool) { return s.lineAnchor, s.hasLineAnchor }

// LineVertices returns committed segments as point pairs.
func (s *Session) LineVertices() []geom.Point { return s.store.LineVertices() }

// PolygonVertices returns every ring's edges, flattened.
func (s *Session) PolygonVertices() []geom.Point { return s.store.PolygonVertices() }

// Regions returns a copy of the vertices of each filled region.
func (s *Session) Regions() [][]geom.Point {
	out := make([][]geom.Point, 0, len(s.store.regions))
	for _, r := range s.store.regions {
		out = append(out, slices.Clone(r.verts))
	}
	return out
}

// WindowOutline returns the complete transform window as a 4-point loop,
// or nil.
func (s *Session) WindowOutline() []geom.Point { return s.window.Outline() }
