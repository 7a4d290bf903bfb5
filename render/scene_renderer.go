package render

import (
	"io"

	"github.com/soypat/wieringa/internal/d2"
	"github.com/soypat/wieringa/scene"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

type sceneRenderer struct {
	instances []scene.Instance
	next      int
	buf       triangle3Buffer
	started   bool
}

var _ Renderer = (*sceneRenderer)(nil)

// NewSceneRenderer returns a Renderer that outputs the exact surface of every
// prism in the tree: both caps and one quad per side. Triangles are generated
// one prism at a time as they are read.
func NewSceneRenderer(n *scene.Node) Renderer {
	return &sceneRenderer{instances: scene.Flatten(n)}
}

// ReadTriangles reads triangles rendered from the scene into dst.
func (r *sceneRenderer) ReadTriangles(dst []Triangle3) (n int, err error) {
	if !r.started {
		r.started = true
		if len(r.instances) == 0 {
			return 0, ErrEmptyModel
		}
	}
	for n < len(dst) {
		if r.buf.Len() == 0 {
			if r.next >= len(r.instances) {
				if n == 0 {
					return 0, io.EOF
				}
				return n, nil
			}
			r.buf.Write(prismTriangles(r.instances[r.next]))
			r.next++
		}
		n += r.buf.Read(dst[n:])
	}
	return n, nil
}

// prismTriangles triangulates an instance. The outline is made counter-clockwise
// so that normals point outward before the instance transform; mirroring
// transforms flip the winding back.
func prismTriangles(in scene.Instance) []Triangle3 {
	outline := in.Outline
	if outline.SignedArea() < 0 {
		outline = reversed(outline)
	}
	caps := triangulate(outline)
	nv := len(outline)
	out := make([]Triangle3, 0, 2*len(caps)+2*nv)
	base := in.Transform.MulPosition
	lift := func(v r2.Vec, z float64) r3.Vec { return base(r3.Vec{X: v.X, Y: v.Y, Z: z}) }
	for _, c := range caps {
		a, b, d := outline[c[0]], outline[c[1]], outline[c[2]]
		out = append(out,
			Triangle3{V: [3]r3.Vec{lift(a, 0), lift(d, 0), lift(b, 0)}, Color: in.Color},
			Triangle3{V: [3]r3.Vec{lift(a, in.Height), lift(b, in.Height), lift(d, in.Height)}, Color: in.Color},
		)
	}
	for i := range outline {
		a, b := outline[i], outline[(i+1)%nv]
		a0, b0 := lift(a, 0), lift(b, 0)
		a1, b1 := lift(a, in.Height), lift(b, in.Height)
		out = append(out,
			Triangle3{V: [3]r3.Vec{a0, b0, b1}, Color: in.Color},
			Triangle3{V: [3]r3.Vec{a0, b1, a1}, Color: in.Color},
		)
	}
	if in.Transform.Determinant() < 0 {
		for i := range out {
			out[i].V[1], out[i].V[2] = out[i].V[2], out[i].V[1]
		}
	}
	return out
}

func reversed(s d2.Set) d2.Set {
	out := make(d2.Set, len(s))
	for i := range s {
		out[len(s)-1-i] = s[i]
	}
	return out
}

// triangulate returns index triples of a counter-clockwise simple polygon
// using ear clipping.
func triangulate(poly d2.Set) [][3]int {
	idx := make([]int, len(poly))
	for i := range idx {
		idx[i] = i
	}
	var tris [][3]int
	for guard := 0; len(idx) > 3 && guard < len(poly)*len(poly); guard++ {
		clipped := false
		for i := range idx {
			ia, ib, ic := idx[(i+len(idx)-1)%len(idx)], idx[i], idx[(i+1)%len(idx)]
			if !isEar(poly, idx, ia, ib, ic) {
				continue
			}
			tris = append(tris, [3]int{ia, ib, ic})
			idx = append(idx[:i], idx[i+1:]...)
			clipped = true
			break
		}
		if !clipped {
			break
		}
	}
	if len(idx) >= 3 {
		// Remaining convex fan (or the last triangle).
		for i := 1; i+1 < len(idx); i++ {
			tris = append(tris, [3]int{idx[0], idx[i], idx[i+1]})
		}
	}
	return tris
}

func isEar(poly d2.Set, idx []int, ia, ib, ic int) bool {
	a, b, c := poly[ia], poly[ib], poly[ic]
	if cross2(r2.Sub(b, a), r2.Sub(c, b)) <= 0 {
		return false // reflex or collinear corner
	}
	for _, j := range idx {
		if j == ia || j == ib || j == ic {
			continue
		}
		if inTriangle(poly[j], a, b, c) {
			return false
		}
	}
	return true
}

func cross2(a, b r2.Vec) float64 { return a.X*b.Y - a.Y*b.X }

func inTriangle(p, a, b, c r2.Vec) bool {
	return cross2(r2.Sub(b, a), r2.Sub(p, a)) >= 0 &&
		cross2(r2.Sub(c, b), r2.Sub(p, b)) >= 0 &&
		cross2(r2.Sub(a, c), r2.Sub(p, c)) >= 0
}
