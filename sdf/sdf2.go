package sdf

import (
	"gonum.org/v1/gonum/spatial/r2"
)

// SDF2 is the interface to a 2d signed distance function object.
type SDF2 interface {
	// Evaluate returns the distance from p to the outline of the shape,
	// negative when p lies inside it.
	Evaluate(p r2.Vec) float64
	// Bounds returns a box containing the whole shape.
	Bounds() r2.Box
}
