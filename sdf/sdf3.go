package sdf

import (
	"math"
	"strconv"

	"github.com/soypat/wieringa/internal/d3"
	"gonum.org/v1/gonum/spatial/r3"
)

// SDF3 is the interface to a 3d signed distance function object.
type SDF3 interface {
	// Evaluate returns the distance from p to the surface of the solid,
	// negative when p lies inside it.
	Evaluate(p r3.Vec) float64
	// Bounds returns a box containing the whole solid.
	Bounds() r3.Box
}

// Extrude3D sweeps an SDF2 along Z. The solid spans z = [-height/2, height/2].
func Extrude3D(profile SDF2, height float64) SDF3 {
	if profile == nil {
		panic("nil SDF2 argument")
	}
	if !(height > 0) {
		panic("extrude height must be positive")
	}
	bb := profile.Bounds()
	h := height / 2
	return &extrude3{
		profile: profile,
		half:    h,
		bb: r3.Box{
			Min: d3.FromR2(bb.Min, -h),
			Max: d3.FromR2(bb.Max, h),
		},
	}
}

type extrude3 struct {
	profile SDF2
	half    float64
	bb      r3.Box
}

func (s *extrude3) Evaluate(p r3.Vec) float64 {
	return math.Max(s.profile.Evaluate(d3.ToR2(p)), math.Abs(p.Z)-s.half)
}

func (s *extrude3) Bounds() r3.Box { return s.bb }

// Transform3D places an SDF3 with a transformation matrix. Distances are
// exact for rigid motions and uniform scalings; other transforms only
// preserve the sign.
func Transform3D(s SDF3, m M44) SDF3 {
	if s == nil {
		panic("nil SDF3 argument")
	}
	if m == (M44{}) {
		return s
	}
	return &transform3{
		s:   s,
		inv: m.Inverse(),
		k:   m.ScaleFactor(),
		bb:  m.MulBox(s.Bounds()),
	}
}

type transform3 struct {
	s   SDF3
	inv M44
	// k rescales distances measured in the untransformed frame.
	k  float64
	bb r3.Box
}

func (t *transform3) Evaluate(p r3.Vec) float64 {
	return t.k * t.s.Evaluate(t.inv.MulPosition(p))
}

func (t *transform3) Bounds() r3.Box { return t.bb }

// Union3D returns the union of SDF3 objects. It panics on a nil argument.
// No arguments yield an empty solid.
func Union3D(parts ...SDF3) SDF3 {
	if len(parts) == 0 {
		return empty3{}
	}
	var bb d3.Box
	for i, s := range parts {
		if s == nil {
			panic("nil sdf argument (" + strconv.Itoa(i) + ") to Union3D")
		}
		if i == 0 {
			bb = d3.Box(s.Bounds())
			continue
		}
		bb = bb.Extend(d3.Box(s.Bounds()))
	}
	return &union3{parts: parts, bb: r3.Box(bb)}
}

type union3 struct {
	parts []SDF3
	bb    r3.Box
}

func (u *union3) Evaluate(p r3.Vec) float64 {
	d := math.Inf(1)
	for _, s := range u.parts {
		d = math.Min(d, s.Evaluate(p))
	}
	return d
}

func (u *union3) Bounds() r3.Box { return u.bb }

// empty3 contains nothing.
type empty3 struct{}

func (empty3) Evaluate(r3.Vec) float64 { return math.MaxFloat64 }

func (empty3) Bounds() r3.Box { return r3.Box{} }
