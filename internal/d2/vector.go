package d2

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Elem returns a vector with both components set to v.
func Elem(v float64) r2.Vec { return r2.Vec{X: v, Y: v} }

// EqualWithin reports whether a and b differ by at most tol per component.
func EqualWithin(a, b r2.Vec, tol float64) bool {
	return math.Abs(a.X-b.X) <= tol && math.Abs(a.Y-b.Y) <= tol
}

// MinElem return a vector with the minimum components of two vectors.
func MinElem(a, b r2.Vec) r2.Vec {
	return r2.Vec{X: math.Min(a.X, b.X), Y: math.Min(a.Y, b.Y)}
}

// MaxElem return a vector with the maximum components of two vectors.
func MaxElem(a, b r2.Vec) r2.Vec {
	return r2.Vec{X: math.Max(a.X, b.X), Y: math.Max(a.Y, b.Y)}
}

// Set is a polygon or point list.
type Set []r2.Vec

// Min return the minimum components of a set of vectors.
func (a Set) Min() r2.Vec {
	vmin := a[0]
	for _, v := range a[1:] {
		vmin = MinElem(vmin, v)
	}
	return vmin
}

// Max return the maximum components of a set of vectors.
func (a Set) Max() r2.Vec {
	vmax := a[0]
	for _, v := range a[1:] {
		vmax = MaxElem(vmax, v)
	}
	return vmax
}

// Centroid returns the average of the points in the set.
func (a Set) Centroid() r2.Vec {
	var c r2.Vec
	for _, v := range a {
		c = r2.Add(c, v)
	}
	return r2.Scale(1/float64(len(a)), c)
}

// SignedArea returns the shoelace area of the closed polygon.
// Counter-clockwise polygons have positive area.
func (a Set) SignedArea() float64 {
	var sum float64
	for i := range a {
		p, q := a[i], a[(i+1)%len(a)]
		sum += p.X*q.Y - q.X*p.Y
	}
	return sum / 2
}
