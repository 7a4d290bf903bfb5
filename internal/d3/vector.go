package d3

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// R3 helpers shared by the kernel, the scene tree and the renderers.

// Elem returns a vector with all components set to v.
func Elem(v float64) r3.Vec {
	return r3.Vec{X: v, Y: v, Z: v}
}

// EqualWithin returns true if all components of a and b are within tol.
func EqualWithin(a, b r3.Vec, tol float64) bool {
	return math.Abs(a.X-b.X) <= tol &&
		math.Abs(a.Y-b.Y) <= tol &&
		math.Abs(a.Z-b.Z) <= tol
}

// MinElem return a vector with the minimum components of two vectors.
func MinElem(a, b r3.Vec) r3.Vec {
	return r3.Vec{X: math.Min(a.X, b.X), Y: math.Min(a.Y, b.Y), Z: math.Min(a.Z, b.Z)}
}

// MaxElem return a vector with the maximum components of two vectors.
func MaxElem(a, b r3.Vec) r3.Vec {
	return r3.Vec{X: math.Max(a.X, b.X), Y: math.Max(a.Y, b.Y), Z: math.Max(a.Z, b.Z)}
}

// Max returns the largest component of a.
func Max(a r3.Vec) float64 {
	return math.Max(a.Z, math.Max(a.X, a.Y))
}

// FromR2 lifts a planar vector to height z.
func FromR2(v r2.Vec, z float64) r3.Vec {
	return r3.Vec{X: v.X, Y: v.Y, Z: z}
}

// ToR2 drops the Z component.
func ToR2(v r3.Vec) r2.Vec {
	return r2.Vec{X: v.X, Y: v.Y}
}

// Set is a list of points.
type Set []r3.Vec

// Min return the minimum components of a set of vectors.
func (a Set) Min() r3.Vec {
	vmin := a[0]
	for _, v := range a[1:] {
		vmin = MinElem(vmin, v)
	}
	return vmin
}

// Max return the maximum components of a set of vectors.
func (a Set) Max() r3.Vec {
	vmax := a[0]
	for _, v := range a[1:] {
		vmax = MaxElem(vmax, v)
	}
	return vmax
}

// Centroid returns the vertex average of the set.
func (a Set) Centroid() r3.Vec {
	var c r3.Vec
	for _, v := range a {
		c = r3.Add(c, v)
	}
	return r3.Scale(1/float64(len(a)), c)
}

// Normal returns the unit normal of a planar polygon using Newell's method.
// The normal points to the side from which the vertices are seen counter-clockwise.
func (a Set) Normal() r3.Vec {
	var n r3.Vec
	for i := range a {
		c := a[i]
		nx := a[(i+1)%len(a)]
		n.X += (c.Y - nx.Y) * (c.Z + nx.Z)
		n.Y += (c.Z - nx.Z) * (c.X + nx.X)
		n.Z += (c.X - nx.X) * (c.Y + nx.Y)
	}
	return r3.Unit(n)
}
