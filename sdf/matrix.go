package sdf

import (
	"math"

	"github.com/soypat/wieringa/internal/d3"
	"gonum.org/v1/gonum/spatial/r3"
)

// M44 is a 3D homogeneous transformation matrix. The zero value is the identity.
// Products read right to left: a.Mul(b) applies b first.
type M44 d3.Transform

// Identity3d returns the identity transform.
func Identity3d() M44 {
	return M44{}
}

// Translate3D returns a translation by v.
func Translate3D(v r3.Vec) M44 {
	return M44(d3.Transform{}.Translate(v))
}

// Scale3d returns a scaling about the origin.
func Scale3d(v r3.Vec) M44 {
	return M44(d3.Transform{}.Scale(r3.Vec{}, v))
}

// Rotate3d returns an orthographic 3x3 rotation matrix (right hand rule).
func Rotate3d(axis r3.Vec, angle float64) M44 {
	return M44(d3.RotateTransform(angle, axis))
}

// RotateX returns a rotation about the X axis.
func RotateX(angle float64) M44 {
	return Rotate3d(r3.Vec{X: 1}, angle)
}

// RotateY returns a rotation about the Y axis.
func RotateY(angle float64) M44 {
	return Rotate3d(r3.Vec{Y: 1}, angle)
}

// RotateZ returns a rotation about the Z axis.
func RotateZ(angle float64) M44 {
	return Rotate3d(r3.Vec{Z: 1}, angle)
}

// Frame3d returns the transform that maps the X, Y and Z axes onto
// u, v and w and the origin onto o.
func Frame3d(o, u, v, w r3.Vec) M44 {
	return M44(d3.Columns(u, v, w, o))
}

// Mul multiplies two transforms. The result applies b first.
func (a M44) Mul(b M44) M44 {
	return M44(d3.Transform(a).Mul(d3.Transform(b)))
}

// MulPosition multiplies a r3.Vec position with a rotate/translate matrix.
func (a M44) MulPosition(b r3.Vec) r3.Vec {
	return d3.Transform(a).Transform(b)
}

// MulDirection transforms a direction, ignoring the translation.
func (a M44) MulDirection(b r3.Vec) r3.Vec {
	return d3.Transform(a).ApplyDir(b)
}

// MulBox rotates/translates a 3d bounding box and resizes for axis-alignment.
func (a M44) MulBox(box r3.Box) r3.Box {
	return r3.Box(d3.Transform(a).ApplyBox(d3.Box(box)))
}

// Inverse returns the inverse of a 4x4 matrix. Singular matrices
// return the zero matrix.
func (a M44) Inverse() M44 {
	return M44(d3.Transform(a).Inv())
}

// Determinant returns the determinant of a 4x4 matrix.
func (a M44) Determinant() float64 {
	return d3.Transform(a).Det()
}

// ScaleFactor returns the uniform scale of a similarity transform.
func (a M44) ScaleFactor() float64 {
	return math.Cbrt(math.Abs(a.Determinant()))
}

// Equals tests the equality of 4x4 matrices.
func (a M44) Equals(b M44, tol float64) bool {
	return d3.Transform(a).Equals(d3.Transform(b), tol)
}

// Values returns the 16 matrix elements in row major order.
func (a M44) Values() []float64 {
	return d3.Transform(a).SliceCopy()
}
