// Package matter compensates printed models for material behaviour.
package matter

import (
	"errors"

	"github.com/soypat/wieringa/internal/d3"
	"github.com/soypat/wieringa/scene"
	"github.com/soypat/wieringa/sdf"
)

var (
	// PLA (polylactic acid) is the most widely used plastic filament material in 3D printing.
	PLA = ViscousMaterial{shrink: 0.2e-2, pullShrink: .45} // 0.2% shrinkage
)

type ViscousMaterial struct {
	// shrink is the thermal contraction shrinkage of a material once the material
	// cools to room temperature after the heated bed is turned off.
	shrink float64
	// pullShrink takes into account viscoelastic shrinkage.
	pullShrink float64
}

// NewViscousMaterial returns a material that contracts by shrink (a fraction
// of the printed size) and pulls holes in by pullShrink millimeters.
func NewViscousMaterial(shrink, pullShrink float64) (ViscousMaterial, error) {
	if shrink < 0 || shrink >= 1 {
		return ViscousMaterial{}, errors.New("material shrink must be in [0, 1)")
	}
	if pullShrink < 0 {
		return ViscousMaterial{}, errors.New("material pull shrink must not be negative")
	}
	return ViscousMaterial{shrink: shrink, pullShrink: pullShrink}, nil
}

// ScaleFactor is the uniform enlargement that cancels thermal shrinkage.
func (m ViscousMaterial) ScaleFactor() float64 {
	return 1 / (1 - m.shrink)
}

// Scale enlarges a model about the origin so it measures as designed after cooling.
func (m ViscousMaterial) Scale(n *scene.Node) *scene.Node {
	if n == nil || m.shrink == 0 {
		return n
	}
	return scene.Transform(sdf.Scale3d(d3.Elem(m.ScaleFactor())), n)
}

// InternalDimScale returns the size to model an internal dimension, such as
// a hole, so that it prints at real size.
func (m ViscousMaterial) InternalDimScale(real float64) float64 {
	if real <= 0 {
		panic("InternalDimScale only works for non-zero dimensions")
	}
	return real*(m.shrink+1) + m.pullShrink
}
