package must2

import (
	"math"

	"github.com/soypat/wieringa/internal/d2"
	"github.com/soypat/wieringa/sdf"
	"gonum.org/v1/gonum/spatial/r2"
)

const tolerance = 1e-9

// Poly is an SDF2 bounded by a closed loop of line segments.
type Poly struct {
	edges []segment
	bb    r2.Box
}

// segment runs from a along the unit vector dir for length.
type segment struct {
	a, dir r2.Vec
	length float64
}

var _ sdf.SDF2 = (*Poly)(nil)

// Polygon returns an SDF2 made from a closed set of line segments.
// It panics on fewer than 3 distinct vertices, repeated consecutive
// vertices or a polygon with no area.
func Polygon(vertex []r2.Vec) *Poly {
	v := d2.Set(vertex)
	if len(v) >= 2 && d2.EqualWithin(v[0], v[len(v)-1], tolerance) {
		// drop the explicit closing vertex.
		v = v[:len(v)-1]
	}
	if len(v) < 3 {
		panic("number of vertices < 3")
	}
	if math.Abs(v.SignedArea()) < tolerance {
		panic("degenerate polygon with zero area")
	}
	s := &Poly{
		edges: make([]segment, len(v)),
		bb:    r2.Box(d2.BoxOf(v)),
	}
	for i, a := range v {
		e := r2.Sub(v[(i+1)%len(v)], a)
		l := r2.Norm(e)
		if l < tolerance {
			panic("polygon has repeated vertices")
		}
		s.edges[i] = segment{a: a, dir: r2.Scale(1/l, e), length: l}
	}
	return s
}

// Vertices returns a copy of the polygon vertices.
func (s *Poly) Vertices() d2.Set {
	v := make(d2.Set, len(s.edges))
	for i, e := range s.edges {
		v[i] = e.a
	}
	return v
}

// Area returns the unsigned area of the polygon.
func (s *Poly) Area() float64 {
	return math.Abs(s.Vertices().SignedArea())
}

// Evaluate returns the distance to the nearest edge, negative when the
// winding number around p is nonzero.
func (s *Poly) Evaluate(p r2.Vec) float64 {
	dd := math.Inf(1)
	winding := 0
	for _, e := range s.edges {
		ap := r2.Sub(p, e.a)
		along := r2.Dot(ap, e.dir)
		// positive when p is right of the edge.
		side := ap.X*e.dir.Y - ap.Y*e.dir.X
		switch {
		case along < 0:
			dd = math.Min(dd, r2.Norm2(ap))
		case along > e.length:
			dd = math.Min(dd, r2.Norm2(r2.Sub(ap, r2.Scale(e.length, e.dir))))
		default:
			dd = math.Min(dd, side*side)
		}
		by := e.a.Y + e.length*e.dir.Y
		if e.a.Y <= p.Y {
			if by > p.Y && side < 0 {
				winding++
			}
		} else if by <= p.Y && side > 0 {
			winding--
		}
	}
	if winding != 0 {
		return -math.Sqrt(dd)
	}
	return math.Sqrt(dd)
}

// Bounds returns the bounding box of a 2d polygon.
func (s *Poly) Bounds() r2.Box {
	return s.bb
}
