package form2

import (
	"github.com/soypat/wieringa/form2/must2"
	"gonum.org/v1/gonum/spatial/r2"
)

// Polygon returns an SDF2 made from a closed set of line segments.
// Degenerate vertex lists return an error.
func Polygon(vertex []r2.Vec) (s *must2.Poly, err error) {
	defer recoverShape(&err)
	return must2.Polygon(vertex), err
}

// Rhomb returns a rhombus centered at the origin with diagonals dx and dy.
func Rhomb(dx, dy float64) (s *must2.Poly, err error) {
	defer recoverShape(&err)
	return must2.Rhomb(dx, dy), err
}

// RhombAngle returns a rhombus with a corner of the given angle at the origin.
func RhombAngle(edge, angle float64) (s *must2.Poly, err error) {
	defer recoverShape(&err)
	return must2.RhombAngle(edge, angle), err
}
