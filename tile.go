package wieringa

import (
	"math"

	"github.com/soypat/wieringa/form2"
	"github.com/soypat/wieringa/internal/d3"
	"github.com/soypat/wieringa/scene"
	"github.com/soypat/wieringa/sdf"
	"gonum.org/v1/gonum/spatial/r3"
)

// Tile returns the ceiling tile: a rhomb with the long diagonal on X and the
// short diagonal on Y, centered at the origin, extruded TileHeight along +Z and
// moved to offset. With SpaceTiles set the tile shrinks about its center.
func (c Config) Tile(offset r3.Vec) (*scene.Node, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	poly, err := form2.Rhomb(Derived.TileLong, Derived.TileShort)
	if err != nil {
		return nil, err
	}
	prism, err := scene.Prism(poly, c.TileHeight)
	if err != nil {
		return nil, err
	}
	m := sdf.Translate3D(offset)
	if c.SpaceTiles {
		m = m.Mul(sdf.Scale3d(d3.Elem(c.Spacing)))
	}
	return scene.Transform(m, prism), nil
}

// TileLX returns the ceiling tile with its long diagonal on +X starting at the origin.
func (c Config) TileLX() (*scene.Node, error) {
	return c.Tile(r3.Vec{X: Derived.TileLong / 2})
}

// TileSX returns the ceiling tile with its short diagonal on +X starting at the origin.
func (c Config) TileSX() (*scene.Node, error) {
	t, err := c.Tile(r3.Vec{})
	if err != nil {
		return nil, err
	}
	m := sdf.Translate3D(r3.Vec{X: Derived.TileShort / 2}).Mul(sdf.RotateZ(sdf.DtoR(90)))
	return scene.Transform(m, t), nil
}

// Thin returns the flat unit edge thin Penrose rhomb (36° at the origin, diagonal on +X).
func (c Config) Thin() (*scene.Node, error) {
	return c.flat(36)
}

// Thick returns the flat unit edge thick Penrose rhomb (72° at the origin, diagonal on +X).
func (c Config) Thick() (*scene.Node, error) {
	return c.flat(72)
}

func (c Config) flat(angleDeg float64) (*scene.Node, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	poly, err := form2.RhombAngle(1, sdf.DtoR(angleDeg))
	if err != nil {
		return nil, err
	}
	prism, err := scene.Prism(poly, c.TileHeight)
	if err != nil {
		return nil, err
	}
	return scene.Colored(scene.Red, prism), nil
}

// Flower returns the ten tile star around the origin. Five green tiles with the
// long diagonal radial are folded up by Alpha, spaced 72° apart; their projection
// is a ring of thick rhombs. Five blue tiles with the short diagonal radial are
// folded by Beta and placed between them, offset by 36°, so that their inner
// corner meets the side corners of the green ring; their projection is a ring
// of thin rhombs.
func (c Config) Flower() (*scene.Node, error) {
	lx, err := c.TileLX()
	if err != nil {
		return nil, err
	}
	sx, err := c.TileSX()
	if err != nil {
		return nil, err
	}
	k := Derived
	// Negative rotation about Y lifts +X.
	foldLX := sdf.RotateY(-k.Alpha)
	foldSX := sdf.RotateY(-k.Beta)
	// The green ring side corners lie on the unit circle at ±36°, half a long
	// diagonal up the fold.
	ring := r3.Vec{X: 1, Z: k.TileLong / 2 * math.Sin(k.Alpha)}
	moveSX := sdf.Translate3D(ring)

	long := make([]*scene.Node, 5)
	short := make([]*scene.Node, 5)
	for i := range long {
		turn := sdf.RotateZ(sdf.DtoR(72 * float64(i)))
		long[i] = scene.Transform(turn.Mul(foldLX), lx)
		turn = sdf.RotateZ(sdf.DtoR(36 + 72*float64(i)))
		short[i] = scene.Transform(turn.Mul(moveSX).Mul(foldSX), sx)
	}
	return scene.Group(
		scene.Colored(scene.Green, long...),
		scene.Colored(scene.Blue, short...),
	), nil
}
