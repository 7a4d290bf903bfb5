package must2

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Rhomb returns a rhombus centered at the origin with
// diagonal dx along X and diagonal dy along Y.
func Rhomb(dx, dy float64) *Poly {
	if dx <= 0 || dy <= 0 {
		panic("rhomb diagonals must be positive")
	}
	hx, hy := dx/2, dy/2
	return Polygon([]r2.Vec{
		{X: -hx},
		{Y: -hy},
		{X: hx},
		{Y: hy},
	})
}

// RhombAngle returns a rhombus with side length edge and the given
// corner angle (radians) at the origin. The diagonal leaving that
// corner lies along +X.
func RhombAngle(edge, angle float64) *Poly {
	if edge <= 0 {
		panic("rhomb edge must be positive")
	}
	if angle <= 0 || angle >= math.Pi {
		panic("rhomb angle out of range (0, pi)")
	}
	s, c := math.Sincos(angle / 2)
	return Polygon([]r2.Vec{
		{},
		{X: edge * c, Y: -edge * s},
		{X: 2 * edge * c},
		{X: edge * c, Y: edge * s},
	})
}
