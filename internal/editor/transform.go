package editor

import (
	"fmt"

	"seehuhn.de/go/geom/matrix"

	"vecdraw/internal/geom"
)

// pointFunc maps one vertex to its transformed position.
type pointFunc func(geom.Point) geom.Point

// ApplyTransformation applies the selected transformation with parameters
// (x, y) to every entity fully inside the transform window.
//
// Parameters are normalized per kind: translation divides x by the
// viewport width and y by its height; shear X divides x by the width and
// shear Y divides x by the height, both ignoring y; rotation turns by x
// degrees and ignores y; scaling uses x and y as they are.
func (s *Session) ApplyTransformation(x, y float64) error {
	if s.kind == TransformNone {
		Logger().Warn("apply rejected", "err", ErrNoTransformation)
		return ErrNoTransformation
	}
	rect, err := s.window.Rect()
	if err != nil {
		Logger().Warn("apply rejected", "kind", s.kind, "err", err)
		return fmt.Errorf("apply %s: %w", s.kind, err)
	}
	n := s.store.Transform(rect, affineFunc(s.kindMatrix(x, y)))
	s.awaiting = false
	Logger().Info("transformed", "kind", s.kind, "x", x, "y", y, "entities", n)
	return nil
}

// SubmitParameters parses typed parameters (see ParseParameters) and
// applies the transformation waiting for them.
func (s *Session) SubmitParameters(text string) error {
	if !s.awaiting {
		return ErrNotAwaitingInput
	}
	x, y := ParseParameters(text)
	return s.ApplyTransformation(x, y)
}

// kindMatrix returns the affine map for the selected kind with its
// parameters already normalized.
func (s *Session) kindMatrix(x, y float64) matrix.Matrix {
	switch s.kind {
	case Translation:
		return matrix.Matrix{1, 0, 0, 1, x / s.width, y / s.height}
	case Scaling:
		return matrix.Scale(x, y)
	case Rotation:
		return matrix.RotateDeg(x)
	case ReflectionX:
		return matrix.Scale(1, -1)
	case ReflectionY:
		return matrix.Scale(-1, 1)
	case ReflectionOrigin:
		return matrix.Scale(-1, -1)
	case ShearX:
		return matrix.Matrix{1, 0, x / s.width, 1, 0, 0}
	case ShearY:
		return matrix.Matrix{1, x / s.height, 0, 1, 0, 0}
	}
	return matrix.Identity
}

// affineFunc applies m to each point as a row vector, p' = [x y 1]·m, so
// positive rotation angles turn counter-clockwise.
func affineFunc(m matrix.Matrix) pointFunc {
	return func(p geom.Point) geom.Point {
		return geom.Point{
			X: m[0]*p.X + m[2]*p.Y + m[4],
			Y: m[1]*p.X + m[3]*p.Y + m[5],
		}
	}
}
