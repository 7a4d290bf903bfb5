package d3

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Transform is a 3D affine transformation: the top three rows of a 4x4
// homogeneous matrix whose last row is 0 0 0 1.
// The zero value of Transform is the identity transform.
type Transform struct {
	// Diagonal elements are stored with 1 subtracted, so that
	//  if T == (Transform{})
	// tests for the identity.
	d00, x01, x02, x03 float64
	x10, d11, x12, x13 float64
	x20, x21, d22, x23 float64
}

// zeroTransform is returned by Inv for singular transforms.
var zeroTransform = Transform{d00: -1, d11: -1, d22: -1}

// NewTransform returns a Transform from the 12 elements of the top three
// rows of a 4x4 matrix in row-major form. A nil argument returns the
// transform filled with zeros.
func NewTransform(a []float64) Transform {
	if a == nil {
		return zeroTransform
	}
	if len(a) != 12 {
		panic("Transform is initialized with 12 values")
	}
	return Transform{
		d00: a[0] - 1, x01: a[1], x02: a[2], x03: a[3],
		x10: a[4], d11: a[5] - 1, x12: a[6], x13: a[7],
		x20: a[8], x21: a[9], d22: a[10] - 1, x23: a[11],
	}
}

// Columns returns the transform that maps the X, Y and Z axes onto
// c0, c1 and c2 and the origin onto t.
func Columns(c0, c1, c2, t r3.Vec) Transform {
	return Transform{
		d00: c0.X - 1, x01: c1.X, x02: c2.X, x03: t.X,
		x10: c0.Y, d11: c1.Y - 1, x12: c2.Y, x13: t.Y,
		x20: c0.Z, x21: c1.Z, d22: c2.Z - 1, x23: t.Z,
	}
}

// RotateTransform returns a rotation of angle radians about axis
// following the right hand rule.
func RotateTransform(angle float64, axis r3.Vec) Transform {
	q := r3.NewRotation(angle, axis)
	return Columns(q.Rotate(r3.Vec{X: 1}), q.Rotate(r3.Vec{Y: 1}), q.Rotate(r3.Vec{Z: 1}), r3.Vec{})
}

func (t Transform) col(j int) r3.Vec {
	switch j {
	case 0:
		return r3.Vec{X: t.d00 + 1, Y: t.x10, Z: t.x20}
	case 1:
		return r3.Vec{X: t.x01, Y: t.d11 + 1, Z: t.x21}
	case 2:
		return r3.Vec{X: t.x02, Y: t.x12, Z: t.d22 + 1}
	}
	return r3.Vec{X: t.x03, Y: t.x13, Z: t.x23}
}

// Transform applies the Transform to a position.
func (t Transform) Transform(v r3.Vec) r3.Vec {
	if t == (Transform{}) {
		return v
	}
	return r3.Add(t.ApplyDir(v), t.col(3))
}

// ApplyDir transforms a direction vector, ignoring translation.
func (t Transform) ApplyDir(v r3.Vec) r3.Vec {
	return r3.Vec{
		X: (t.d00+1)*v.X + t.x01*v.Y + t.x02*v.Z,
		Y: t.x10*v.X + (t.d11+1)*v.Y + t.x12*v.Z,
		Z: t.x20*v.X + t.x21*v.Y + (t.d22+1)*v.Z,
	}
}

// Translate adds v to the positional part of the Transform.
func (t Transform) Translate(v r3.Vec) Transform {
	t.x03 += v.X
	t.x13 += v.Y
	t.x23 += v.Z
	return t
}

// Scale returns the transform followed by a scaling about origin.
func (t Transform) Scale(origin, factor r3.Vec) Transform {
	if origin == (r3.Vec{}) {
		return t.scale(factor)
	}
	t = t.Translate(r3.Scale(-1, origin))
	t = t.scale(factor)
	return t.Translate(origin)
}

func (t Transform) scale(f r3.Vec) Transform {
	t.d00 = (t.d00+1)*f.X - 1
	t.x01 *= f.X
	t.x02 *= f.X
	t.x03 *= f.X
	t.x10 *= f.Y
	t.d11 = (t.d11+1)*f.Y - 1
	t.x12 *= f.Y
	t.x13 *= f.Y
	t.x20 *= f.Z
	t.x21 *= f.Z
	t.d22 = (t.d22+1)*f.Z - 1
	t.x23 *= f.Z
	return t
}

// Mul multiplies the Transforms. The result applies b first, then t.
func (t Transform) Mul(b Transform) Transform {
	if t == (Transform{}) {
		return b
	}
	if b == (Transform{}) {
		return t
	}
	return Columns(
		t.ApplyDir(b.col(0)),
		t.ApplyDir(b.col(1)),
		t.ApplyDir(b.col(2)),
		t.Transform(b.col(3)),
	)
}

// Det returns the determinant of the Transform.
func (t Transform) Det() float64 {
	return r3.Dot(t.col(0), r3.Cross(t.col(1), t.col(2)))
}

// Inv returns the inverse of the transform such that
// t.Inv().Mul(t) is the identity Transform.
// If the matrix is singular then Inv returns the zero transform.
func (t Transform) Inv() Transform {
	if t == (Transform{}) {
		return t
	}
	det := t.Det()
	if math.Abs(det) < 1e-16 {
		return zeroTransform
	}
	c0, c1, c2 := t.col(0), t.col(1), t.col(2)
	// rows of the inverse linear part.
	r0 := r3.Scale(1/det, r3.Cross(c1, c2))
	r1 := r3.Scale(1/det, r3.Cross(c2, c0))
	r2 := r3.Scale(1/det, r3.Cross(c0, c1))
	o := t.col(3)
	return NewTransform([]float64{
		r0.X, r0.Y, r0.Z, -r3.Dot(r0, o),
		r1.X, r1.Y, r1.Z, -r3.Dot(r1, o),
		r2.X, r2.Y, r2.Z, -r3.Dot(r2, o),
	})
}

// Equals tests the equality of the Transforms to within a tolerance.
func (t Transform) Equals(b Transform, tol float64) bool {
	a, c := t.SliceCopy(), b.SliceCopy()
	for i := range a {
		if math.Abs(a[i]-c[i]) > tol {
			return false
		}
	}
	return true
}

// ApplyBox transforms the 8 corners of box and returns the axis aligned box that contains them.
func (t Transform) ApplyBox(box Box) Box {
	if t == (Transform{}) {
		return box
	}
	v := box.Vertices()
	for i := range v {
		v[i] = t.Transform(v[i])
	}
	return BoxOf(v)
}

// SliceCopy returns the 16 elements of the 4x4 homogeneous matrix in
// row major order.
func (t Transform) SliceCopy() []float64 {
	return []float64{
		t.d00 + 1, t.x01, t.x02, t.x03,
		t.x10, t.d11 + 1, t.x12, t.x13,
		t.x20, t.x21, t.d22 + 1, t.x23,
		0, 0, 0, 1,
	}
}
