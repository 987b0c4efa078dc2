package editor

// DrawMode selects what a pointer click adds to the drawing.
type DrawMode int

const (
	DrawNone      DrawMode = iota // clicks add nothing
	DrawLine                      // two clicks make a segment
	DrawPolygon                   // clicks extend the open ring
	DrawFloodFill                 // a click fills every closed ring around it
)

// String returns the mode name shown in the status line.
func (m DrawMode) String() string {
	switch m {
	case DrawNone:
		return "none"
	case DrawLine:
		return "line"
	case DrawPolygon:
		return "polygon"
	case DrawFloodFill:
		return "flood fill"
	}
	return "unknown"
}

// Transformation is the pending windowed transformation. Any value other
// than TransformNone turns pointer clicks into transform window picks.
type Transformation int

const (
	TransformNone    Transformation = iota // clicks go to the draw mode
	Translation                            // shift by (param x/width, param y/height)
	Scaling                                // multiply by (param x, param y)
	Rotation                               // turn param x degrees counter-clockwise
	ReflectionX                            // mirror across the x axis
	ReflectionY                            // mirror across the y axis
	ReflectionOrigin                       // mirror through the origin
	ShearX                                 // x += y·(param/width)
	ShearY                                 // y += x·(param/height)
)

// String returns the lower-case name of the transformation.
func (t Transformation) String() string {
	switch t {
	case TransformNone:
		return "none"
	case Translation:
		return "translation"
	case Scaling:
		return "scaling"
	case Rotation:
		return "rotation"
	case ReflectionX:
		return "reflection x"
	case ReflectionY:
		return "reflection y"
	case ReflectionOrigin:
		return "reflection origin"
	case ShearX:
		return "shear x"
	case ShearY:
		return "shear y"
	}
	return "unknown"
}

// NeedsParameters reports whether the transformation waits for numeric
// input once its window is picked. Reflections apply straight away.
func (t Transformation) NeedsParameters() bool {
	switch t {
	case Translation, Scaling, Rotation, ShearX, ShearY:
		return true
	}
	return false
}
