package wieringa

import (
	"fmt"

	"github.com/soypat/wieringa/scene"
	"github.com/soypat/wieringa/sdf"
	"gonum.org/v1/gonum/spatial/r3"
)

// Layout generates a layer of placed tiles at a given tiling resolution.
type Layout interface {
	Layer(resolution float64) (*scene.Node, error)
}

// LayoutFunc adapts a function to the Layout interface.
type LayoutFunc func(resolution float64) (*scene.Node, error)

// Layer calls f(resolution).
func (f LayoutFunc) Layer(resolution float64) (*scene.Node, error) { return f(resolution) }

// Roof stacks two layers generated by layout: the first at z=0 and the second
// LayerOffset above it. Each layer is scaled by XYScale horizontally and by
// ZScale vertically.
func Roof(layout Layout, p RoofParams) (*scene.Node, error) {
	if layout == nil {
		return nil, fmt.Errorf("nil roof layout")
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	scale := sdf.Scale3d(r3.Vec{X: p.XYScale, Y: p.XYScale, Z: p.ZScale})
	layers := make([]*scene.Node, 2)
	for i := range layers {
		layer, err := layout.Layer(p.Resolution)
		if err != nil {
			return nil, fmt.Errorf("roof layer %d: %w", i, err)
		}
		if layer == nil {
			return nil, fmt.Errorf("roof layer %d: layout returned no tiles", i)
		}
		lift := sdf.Translate3D(r3.Vec{Z: float64(i) * p.LayerOffset})
		layers[i] = scene.Transform(lift.Mul(scale), layer)
	}
	return scene.Group(layers...), nil
}
