package d2

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Transform represents a 2D affine transformation stored as the top two
// rows of a 3x3 homogeneous matrix. The zero value is the identity.
type Transform struct {
	// Diagonal terms are stored with 1 subtracted so that
	// Transform{} is the identity, same as d3.Transform.
	d00, x01, x02 float64
	x10, d11, x12 float64
}

// NewTransform returns a Transform from the 6 top row-major elements
// of a 3x3 affine matrix.
func NewTransform(data []float64) Transform {
	if len(data) != 6 {
		panic("2D transform is initialized with 6 values")
	}
	return Transform{
		d00: data[0] - 1, x01: data[1], x02: data[2],
		x10: data[3], d11: data[4] - 1, x12: data[5],
	}
}

// TranslateTransform returns a translation by v.
func TranslateTransform(v r2.Vec) Transform {
	return Transform{x02: v.X, x12: v.Y}
}

// RotateTransform returns a counter-clockwise rotation by angle radians about the origin.
func RotateTransform(angle float64) Transform {
	s, c := math.Sincos(angle)
	return Transform{d00: c - 1, x01: -s, x10: s, d11: c - 1}
}

// ScaleTransform returns a scaling about the origin.
func ScaleTransform(factor r2.Vec) Transform {
	return Transform{d00: factor.X - 1, d11: factor.Y - 1}
}

// At returns the element at row i, column j of the 3x3 matrix.
func (t Transform) At(i, j int) float64 {
	switch i*3 + j {
	case 0:
		return t.d00 + 1
	case 1:
		return t.x01
	case 2:
		return t.x02
	case 3:
		return t.x10
	case 4:
		return t.d11 + 1
	case 5:
		return t.x12
	case 6, 7:
		return 0
	case 8:
		return 1
	}
	panic("index out of range")
}

// Mul multiplies the transforms. The result applies b first, then t.
func (t Transform) Mul(b Transform) Transform {
	if t == (Transform{}) {
		return b
	}
	if b == (Transform{}) {
		return t
	}
	a00, a11 := t.d00+1, t.d11+1
	b00, b11 := b.d00+1, b.d11+1
	return Transform{
		d00: a00*b00 + t.x01*b.x10 - 1,
		x01: a00*b.x01 + t.x01*b11,
		x02: a00*b.x02 + t.x01*b.x12 + t.x02,
		x10: t.x10*b00 + a11*b.x10,
		d11: t.x10*b.x01 + a11*b11 - 1,
		x12: t.x10*b.x02 + a11*b.x12 + t.x12,
	}
}

// ApplyPos transforms a position.
func (t Transform) ApplyPos(p r2.Vec) r2.Vec {
	if t == (Transform{}) {
		return p
	}
	return r2.Vec{
		X: (t.d00+1)*p.X + t.x01*p.Y + t.x02,
		Y: t.x10*p.X + (t.d11+1)*p.Y + t.x12,
	}
}

// Determinant returns the determinant of the 3x3 matrix.
func (t Transform) Determinant() float64 {
	return (t.d00+1)*(t.d11+1) - t.x01*t.x10
}

// Scale returns the uniform scale factor of a similarity transform,
// that is the square root of the absolute determinant.
func (t Transform) Scale() float64 {
	return math.Sqrt(math.Abs(t.Determinant()))
}

// Inverse returns the inverse transform. A singular transform
// results in non-finite elements.
func (t Transform) Inverse() Transform {
	if t == (Transform{}) {
		return t
	}
	d := 1 / t.Determinant()
	a00, a11 := t.d00+1, t.d11+1
	i00 := a11 * d
	i01 := -t.x01 * d
	i10 := -t.x10 * d
	i11 := a00 * d
	return Transform{
		d00: i00 - 1, x01: i01, x02: -(i00*t.x02 + i01*t.x12),
		x10: i10, d11: i11 - 1, x12: -(i10*t.x02 + i11*t.x12),
	}
}

// Equals tests the equality of the Transforms to within a tolerance.
func (t Transform) Equals(b Transform, tol float64) bool {
	return math.Abs(t.d00-b.d00) <= tol && math.Abs(t.x01-b.x01) <= tol &&
		math.Abs(t.x02-b.x02) <= tol && math.Abs(t.x10-b.x10) <= tol &&
		math.Abs(t.d11-b.d11) <= tol && math.Abs(t.x12-b.x12) <= tol
}
