package scene

import (
	"math"

	"github.com/soypat/wieringa/internal/d2"
	"github.com/soypat/wieringa/internal/d3"
	"github.com/soypat/wieringa/sdf"
	"gonum.org/v1/gonum/spatial/r3"
)

// Instance is a prism placed in world space, the flat command
// form of a scene tree consumed by exporters and renderers.
type Instance struct {
	Transform sdf.M44
	Color     Color
	Outline   d2.Set
	Height    float64
}

// Flatten resolves transforms and colors of every prism in the tree
// in depth first order.
func Flatten(n *Node) []Instance {
	var out []Instance
	flatten(n, sdf.Identity3d(), Inherit, &out)
	return out
}

func flatten(n *Node, m sdf.M44, c Color, out *[]Instance) {
	switch n.kind {
	case KindPrism:
		*out = append(*out, Instance{Transform: m, Color: c, Outline: n.outline, Height: n.height})
		return
	case KindTransform:
		m = m.Mul(n.matrix)
	case KindColor:
		if n.color != Inherit {
			c = n.color
		}
	}
	for _, child := range n.children {
		flatten(child, m, c, out)
	}
}

// Face returns the world coordinates of the prism outline lifted to local height z.
func (in Instance) Face(z float64) d3.Set {
	face := make(d3.Set, len(in.Outline))
	for i, v := range in.Outline {
		face[i] = in.Transform.MulPosition(d3.FromR2(v, z))
	}
	return face
}

// BaseFace returns the world coordinates of the bottom cap.
func (in Instance) BaseFace() d3.Set { return in.Face(0) }

// TopFace returns the world coordinates of the top cap.
func (in Instance) TopFace() d3.Set { return in.Face(in.Height) }

// Center returns the world position of the base outline centroid.
func (in Instance) Center() r3.Vec {
	return in.Transform.MulPosition(d3.FromR2(in.Outline.Centroid(), 0))
}

// Normal returns the world direction of the extrusion axis.
func (in Instance) Normal() r3.Vec {
	return r3.Unit(in.Transform.MulDirection(r3.Vec{Z: 1}))
}

// ProjectedArea returns the area of the base face projected onto the XY plane.
func (in Instance) ProjectedArea() float64 {
	face := in.BaseFace()
	flat := make(d2.Set, len(face))
	for i, p := range face {
		flat[i] = d3.ToR2(p)
	}
	return math.Abs(flat.SignedArea())
}

// Area returns the true area of the base face.
func (in Instance) Area() float64 {
	k := in.Transform.ScaleFactor()
	return math.Abs(in.Outline.SignedArea()) * k * k
}

// Bounds returns the bounding box of all prisms in the tree.
// An empty tree returns the zero box.
func Bounds(n *Node) r3.Box {
	var bb d3.Box
	for i, in := range Flatten(n) {
		b := d3.BoxOf(append(in.BaseFace(), in.TopFace()...))
		if i == 0 {
			bb = b
			continue
		}
		bb = bb.Extend(b)
	}
	return r3.Box(bb)
}

// SDF returns a signed distance function view of the tree.
func SDF(n *Node) sdf.SDF3 {
	switch n.kind {
	case KindPrism:
		return sdf.Transform3D(sdf.Extrude3D(n.shape, n.height), sdf.Translate3D(r3.Vec{Z: n.height / 2}))
	case KindTransform:
		return sdf.Transform3D(groupSDF(n.children), n.matrix)
	}
	return groupSDF(n.children)
}

func groupSDF(children []*Node) sdf.SDF3 {
	if len(children) == 1 {
		return SDF(children[0])
	}
	s := make([]sdf.SDF3, len(children))
	for i, c := range children {
		s[i] = SDF(c)
	}
	return sdf.Union3D(s...)
}
