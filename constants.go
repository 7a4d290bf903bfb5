package wieringa

import (
	"math"

	"github.com/soypat/wieringa/sdf"
)

// Constants holds the tile dimensions and fold angles of the roof.
// Lengths are in units of the Penrose rhomb edge.
type Constants struct {
	Phi float64
	// TileShort and TileLong are the diagonals of the 3D ceiling tile.
	TileShort, TileLong float64
	TileArea            float64
	// ProjectedArea is the area of a thick rhomb of the flower projection,
	// a fifth of the star pentagon pair: 2·PentagonArea(TileShort)/5.
	ProjectedArea float64
	// ThinArea is the area of a unit edge thin rhomb.
	ThinArea float64
	// Alpha folds the ceiling tile onto a thick rhomb, Beta onto a thin rhomb (radians).
	Alpha, Beta float64
}

// Derived is computed once at package initialization.
var Derived = Derive()

// Derive computes the tile constants from the golden ratio.
func Derive() Constants {
	var c Constants
	c.Phi = (1 + math.Sqrt(5)) / 2
	c.TileShort = 2 * math.Cos(sdf.DtoR(54))
	c.TileLong = c.TileShort * c.Phi
	c.TileArea = c.TileShort * c.TileLong / 2
	c.ProjectedArea = 2 * PentagonArea(c.TileShort) / 5
	c.ThinArea = 2 * TriangleArea(1, 1, sdf.DtoR(36))
	// Orthographic projection scales area by the cosine of the fold angle
	// when the fold axis stays parallel to the projection plane.
	c.Alpha = math.Acos(c.ProjectedArea / c.TileArea)
	c.Beta = math.Acos(c.ThinArea / c.TileArea)
	return c
}

// TileEdge returns the side length of the ceiling tile.
func (c Constants) TileEdge() float64 {
	return math.Hypot(c.TileShort/2, c.TileLong/2)
}

// AlphaDeg returns Alpha in degrees.
func (c Constants) AlphaDeg() float64 { return sdf.RtoD(c.Alpha) }

// BetaDeg returns Beta in degrees.
func (c Constants) BetaDeg() float64 { return sdf.RtoD(c.Beta) }

// PentagonArea returns the area of a regular pentagon with the given side.
func PentagonArea(side float64) float64 {
	return side * side * math.Sqrt(5*(5+2*math.Sqrt(5))) / 4
}

// TriangleArea returns the area of a triangle from two sides and the
// angle between them (radians).
func TriangleArea(a, b, angle float64) float64 {
	return a * b * math.Sin(angle) / 2
}

// Alternative is the result of scaling the ceiling tile so its edge matches
// the Penrose edge and comparing areas directly, without the fold projection.
// It is kept as a reference; nothing builds geometry from it.
type Alternative struct {
	EdgeScale  float64
	ScaledArea float64
	// CosAlpha is ProjectedArea/ScaledArea. It exceeds 1, so no fold angle exists.
	CosAlpha float64
	Valid    bool
}

// AlternativeDerivation computes the direct edge length and area ratio derivation.
func AlternativeDerivation() Alternative {
	c := Derived
	var a Alternative
	a.EdgeScale = 1 / c.TileEdge()
	a.ScaledArea = c.TileArea * a.EdgeScale * a.EdgeScale
	a.CosAlpha = c.ProjectedArea / a.ScaledArea
	a.Valid = a.CosAlpha > 0 && a.CosAlpha < 1
	return a
}
