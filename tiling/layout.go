package tiling

import (
	"fmt"

	"github.com/soypat/wieringa"
	"github.com/soypat/wieringa/internal/d3"
	"github.com/soypat/wieringa/scene"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// DefaultZUnit lifts a rhomb so that its 3D diagonals match the ceiling
// tile: half an edge per height step.
const DefaultZUnit = 0.5

var _ wieringa.Layout = Layout{}

// Layout generates roof layers from a substitution tiling.
type Layout struct {
	// Steps is the number of substitutions applied to the seed rhomb.
	Steps int `yaml:"steps"`
	// ZUnit is the height step in edge lengths.
	ZUnit float64 `yaml:"z_unit"`
	// Thickness of each tile in edge lengths.
	Thickness float64 `yaml:"thickness"`
}

// DefaultLayout returns a 4 step layout of congruent ceiling tiles.
func DefaultLayout() Layout {
	return Layout{Steps: 4, ZUnit: DefaultZUnit, Thickness: 0.02}
}

// Validate checks the layout parameters.
func (l Layout) Validate() error {
	if l.Steps < 0 {
		return fmt.Errorf("tiling: negative substitution steps %d", l.Steps)
	}
	return checkLift(l.ZUnit, l.Thickness)
}

// Layer generates the tiling and lifts it into a layer whose tiles have
// edge length scale. Every call generates the tiling again; use
// Tiling.Lifted to reuse one.
func (l Layout) Layer(scale float64) (*scene.Node, error) {
	if err := l.Validate(); err != nil {
		return nil, err
	}
	tl, err := Generate(l.Steps)
	if err != nil {
		return nil, err
	}
	return tl.Roof(scale, l.ZUnit, l.Thickness)
}

// Lifted returns a roof layout over the already generated tiling.
func (tl *Tiling) Lifted(zunit, thickness float64) wieringa.Layout {
	return wieringa.LayoutFunc(func(scale float64) (*scene.Node, error) {
		return tl.Roof(scale, zunit, thickness)
	})
}

func checkLift(zunit, thickness float64) error {
	if !(zunit > 0) || !(thickness > 0) {
		return fmt.Errorf("tiling: layout z unit and thickness must be positive, got %g and %g", zunit, thickness)
	}
	return nil
}

// Face returns tile i lifted to its vertex heights in tiling units. Height
// index h maps to z = h·zunit·Edge.
func (tl *Tiling) Face(i int, zunit float64) d3.Set {
	t := tl.Tiles[i]
	face := make(d3.Set, 4)
	for j, v := range t.Vertices {
		face[j] = d3.FromR2(tl.Points[v], float64(tl.Heights[v])*zunit*tl.Edge)
	}
	return face
}

// Roof lifts every tile into a slab of thickness·scale, centered on the
// origin in XY and scaled so that the tile edge measures scale. Thick
// rhombs are green, thin rhombs blue.
func (tl *Tiling) Roof(scale, zunit, thickness float64) (*scene.Node, error) {
	if len(tl.Tiles) == 0 {
		return nil, ErrNoTiles
	}
	if !(scale > 0) {
		return nil, fmt.Errorf("tiling: roof scale must be positive, got %g", scale)
	}
	if err := checkLift(zunit, thickness); err != nil {
		return nil, err
	}
	k := scale / tl.Edge
	c := tl.Bounds().Center()
	var thick, thin []*scene.Node
	for i, t := range tl.Tiles {
		face := tl.Face(i, zunit)
		for j := range face {
			face[j] = r3.Vec{X: k * (face[j].X - c.X), Y: k * (face[j].Y - c.Y), Z: k * face[j].Z}
		}
		slab, err := scene.Slab(face, thickness*scale)
		if err != nil {
			return nil, fmt.Errorf("tiling: tile %d: %w", i, err)
		}
		if t.Thick {
			thick = append(thick, slab)
		} else {
			thin = append(thin, slab)
		}
	}
	return scene.Group(
		scene.Colored(scene.Green, thick...),
		scene.Colored(scene.Blue, thin...),
	), nil
}

// centered returns the tiling points moved so that the bounds center is
// at the origin.
func (tl *Tiling) centered() []r2.Vec {
	c := tl.Bounds().Center()
	out := make([]r2.Vec, len(tl.Points))
	for i, p := range tl.Points {
		out[i] = r2.Sub(p, c)
	}
	return out
}
