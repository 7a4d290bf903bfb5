package d2

import (
	"gonum.org/v1/gonum/spatial/r2"
)

// Box is a 2d bounding box.
type Box r2.Box

// BoxOf returns the smallest box containing the set.
func BoxOf(s Set) Box {
	return Box{Min: s.Min(), Max: s.Max()}
}

// Equals reports whether both corners of the boxes lie within tol.
func (a Box) Equals(b Box, tol float64) bool {
	return EqualWithin(a.Min, b.Min, tol) && EqualWithin(a.Max, b.Max, tol)
}

// Size returns the width and height of the box.
func (a Box) Size() r2.Vec { return r2.Sub(a.Max, a.Min) }

// Center returns the midpoint of the box.
func (a Box) Center() r2.Vec { return r2.Scale(0.5, r2.Add(a.Min, a.Max)) }
