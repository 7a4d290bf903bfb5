// Package scene implements an immutable scene tree of extruded polygons
// composed by transforms and colors. Leaves are prisms; every other node
// wraps a list of children.
package scene

import (
	"errors"
	"fmt"
	"math"

	"github.com/soypat/wieringa/form2"
	"github.com/soypat/wieringa/internal/d2"
	"github.com/soypat/wieringa/internal/d3"
	"github.com/soypat/wieringa/sdf"
	"gonum.org/v1/gonum/spatial/r3"
)

// ErrNotPlanar is returned by Slab when the face vertices do not lie on one plane.
var ErrNotPlanar = errors.New("scene: face is not planar")

// Kind tags the node variant.
type Kind uint8

const (
	KindPrism Kind = iota
	KindTransform
	KindColor
	KindGroup
)

func (k Kind) String() string {
	switch k {
	case KindPrism:
		return "prism"
	case KindTransform:
		return "transform"
	case KindColor:
		return "color"
	case KindGroup:
		return "group"
	}
	return fmt.Sprintf("Kind(%d)", k)
}

// Polygon is a closed planar outline with a signed distance function.
type Polygon interface {
	sdf.SDF2
	Vertices() d2.Set
}

// Node is a scene tree node. Nodes are never modified after construction
// so subtrees may be shared freely.
type Node struct {
	kind     Kind
	outline  d2.Set
	shape    sdf.SDF2
	height   float64
	matrix   sdf.M44
	color    Color
	children []*Node
}

// Prism returns a leaf that extrudes the polygon from z=0 to z=height.
func Prism(poly Polygon, height float64) (*Node, error) {
	if poly == nil {
		return nil, errors.New("scene: nil prism polygon")
	}
	if height <= 0 || math.IsNaN(height) || math.IsInf(height, 0) {
		return nil, fmt.Errorf("scene: invalid prism height %g", height)
	}
	v := poly.Vertices()
	if len(v) < 3 {
		return nil, fmt.Errorf("scene: prism polygon needs 3 vertices, got %d", len(v))
	}
	return &Node{kind: KindPrism, outline: v, shape: poly, height: height}, nil
}

// Transform returns a node that applies m to all children.
func Transform(m sdf.M44, children ...*Node) *Node {
	return &Node{kind: KindTransform, matrix: m, children: compact(children)}
}

// Colored returns a node that paints children with c. Colors set deeper in
// the tree take precedence.
func Colored(c Color, children ...*Node) *Node {
	return &Node{kind: KindColor, color: c, children: compact(children)}
}

// Group returns a node holding children with no further effect.
func Group(children ...*Node) *Node {
	return &Node{kind: KindGroup, children: compact(children)}
}

func compact(children []*Node) []*Node {
	out := make([]*Node, 0, len(children))
	for _, c := range children {
		if c != nil {
			out = append(out, c)
		}
	}
	return out
}

// Kind returns the node variant.
func (n *Node) Kind() Kind { return n.kind }

// Children returns a copy of the node's children.
func (n *Node) Children() []*Node { return append([]*Node(nil), n.children...) }

// Matrix returns the transform of a KindTransform node.
func (n *Node) Matrix() sdf.M44 { return n.matrix }

// Color returns the color of a KindColor node.
func (n *Node) Color() Color { return n.color }

// Outline returns a copy of a prism's polygon vertices.
func (n *Node) Outline() d2.Set { return append(d2.Set(nil), n.outline...) }

// Height returns a prism's extrusion height.
func (n *Node) Height() float64 { return n.height }

// Slab returns a prism whose base is the planar 3D polygon face and which
// extends thickness along the face normal. The normal points to the side
// from which face is seen counter-clockwise.
func Slab(face d3.Set, thickness float64) (*Node, error) {
	if len(face) < 3 {
		return nil, fmt.Errorf("scene: slab face needs 3 vertices, got %d", len(face))
	}
	o := face[0]
	w := face.Normal()
	if math.IsNaN(w.X) || r3.Norm(w) < 0.5 {
		return nil, errors.New("scene: degenerate slab face")
	}
	u := r3.Sub(face[1], o)
	u = r3.Sub(u, r3.Scale(r3.Dot(u, w), w))
	u = r3.Unit(u)
	v := r3.Cross(w, u)
	scale := r3.Norm(r3.Sub(face[1], o))
	local := make(d2.Set, len(face))
	for i, p := range face {
		d := r3.Sub(p, o)
		if math.Abs(r3.Dot(d, w)) > 1e-6*math.Max(1, scale) {
			return nil, ErrNotPlanar
		}
		local[i].X = r3.Dot(d, u)
		local[i].Y = r3.Dot(d, v)
	}
	poly, err := form2.Polygon(local)
	if err != nil {
		return nil, err
	}
	prism, err := Prism(poly, thickness)
	if err != nil {
		return nil, err
	}
	return Transform(sdf.Frame3d(o, u, v, w), prism), nil
}
