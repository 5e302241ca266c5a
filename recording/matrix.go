package recording

import (
	"math"

	"github.com/treeviewer/highlight"
)

// Matrix represents a 2D affine transformation matrix.
// It uses a 2x3 matrix in row-major order:
//
//	| A  B  C |
//	| D  E  F |
//
// This represents the transformation:
//
//	x' = A*x + B*y + C
//	y' = D*x + E*y + F
//
// Playback uses it as the view transform from world to device space.
type Matrix struct {
	A, B, C float64
	D, E, F float64
}

// Identity returns the identity transformation matrix.
func Identity() Matrix {
	return Matrix{
		A: 1, B: 0, C: 0,
		D: 0, E: 1, F: 0,
	}
}

// Translate creates a translation matrix.
func Translate(x, y float64) Matrix {
	return Matrix{
		A: 1, B: 0, C: x,
		D: 0, E: 1, F: y,
	}
}

// Scale creates a scaling matrix.
func Scale(sx, sy float64) Matrix {
	return Matrix{
		A: sx, B: 0, C: 0,
		D: 0, E: sy, F: 0,
	}
}

// Multiply multiplies two matrices (m * other).
// This applies the transformation of `other` before `m`.
func (m Matrix) Multiply(other Matrix) Matrix {
	return Matrix{
		A: m.A*other.A + m.B*other.D,
		B: m.A*other.B + m.B*other.E,
		C: m.A*other.C + m.B*other.F + m.C,
		D: m.D*other.A + m.E*other.D,
		E: m.D*other.B + m.E*other.E,
		F: m.D*other.C + m.E*other.F + m.F,
	}
}

// TransformPoint applies the transformation to a point.
func (m Matrix) TransformPoint(p highlight.Point) highlight.Point {
	return highlight.Pt(m.A*p.X+m.B*p.Y+m.C, m.D*p.X+m.E*p.Y+m.F)
}

// Invert returns the inverse matrix.
// Returns the identity matrix if the matrix is not invertible.
func (m Matrix) Invert() Matrix {
	det := m.Determinant()
	if math.Abs(det) < 1e-10 {
		return Identity()
	}
	invDet := 1.0 / det
	return Matrix{
		A: m.E * invDet,
		B: -m.B * invDet,
		C: (m.B*m.F - m.C*m.E) * invDet,
		D: -m.D * invDet,
		E: m.A * invDet,
		F: (m.C*m.D - m.A*m.F) * invDet,
	}
}

// ScaleFactor returns the maximum scale factor of the transformation.
// Stroke widths are multiplied by it in device space.
func (m Matrix) ScaleFactor() float64 {
	sx := math.Sqrt(m.A*m.A + m.D*m.D)
	sy := math.Sqrt(m.B*m.B + m.E*m.E)
	return math.Max(sx, sy)
}

// Determinant returns the determinant of the 2x2 part of the matrix.
func (m Matrix) Determinant() float64 {
	return m.A*m.E - m.B*m.D
}

// Fit returns the uniform scale-and-translate transform that centers box
// inside a width x height canvas with padding on every side. An empty box
// yields the identity; a single point is centered at scale 1.
func Fit(box highlight.BoundingBox, width, height int, padding float64) Matrix {
	if box.Empty() {
		return Identity()
	}
	availW := float64(width) - 2*padding
	availH := float64(height) - 2*padding
	c := box.Center()

	s := 1.0
	if box.Width() > 0 || box.Height() > 0 {
		s = math.Inf(1)
		if box.Width() > 0 {
			s = math.Min(s, availW/box.Width())
		}
		if box.Height() > 0 {
			s = math.Min(s, availH/box.Height())
		}
		if s <= 0 {
			s = 1
		}
	}
	return Translate(float64(width)/2, float64(height)/2).
		Multiply(Scale(s, s)).
		Multiply(Translate(-c.X, -c.Y))
}
