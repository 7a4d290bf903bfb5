package render

import (
	"math"

	"github.com/soypat/wieringa/internal/d3"
	"github.com/soypat/wieringa/sdf"
	"gonum.org/v1/gonum/spatial/kdtree"
	"gonum.org/v1/gonum/spatial/r3"
)

var (
	_ sdf.SDF3         = meshSDF{}
	_ kdtree.Interface = kdTriangles{}
)

// NewMeshSDF returns an approximate signed distance function of a closed
// triangle mesh. The nearest triangle is looked up by centroid in a k-d tree
// and the sign is taken from its outward normal, which is accurate near the
// surface of meshes made of large flat faces such as rendered prisms.
func NewMeshSDF(model []Triangle3) (sdf.SDF3, error) {
	if len(model) == 0 {
		return nil, ErrEmptyModel
	}
	tris := make(kdTriangles, len(model))
	var bb d3.Box
	for i := range model {
		tris[i] = kdTriangle(model[i])
		tb := d3.BoxOf(model[i].V[:])
		if i == 0 {
			bb = tb
		} else {
			bb = bb.Extend(tb)
		}
	}
	return meshSDF{tree: kdtree.New(tris, false), bb: r3.Box(bb)}, nil
}

type meshSDF struct {
	tree *kdtree.Tree
	bb   r3.Box
}

// Evaluate returns the distance to the nearest triangle, negative behind it.
func (s meshSDF) Evaluate(v r3.Vec) float64 {
	got, _ := s.tree.Nearest(kdTriangle{V: [3]r3.Vec{v, v, v}})
	tri := Triangle3(got.(kdTriangle))
	closest := closestOnTriangle(v, tri.V[0], tri.V[1], tri.V[2])
	d := r3.Norm(r3.Sub(v, closest))
	if r3.Dot(r3.Sub(v, closest), tri.Normal()) < 0 {
		return -d
	}
	return d
}

func (s meshSDF) Bounds() r3.Box { return s.bb }

// closestOnTriangle returns the point of triangle abc nearest to p.
// See Ericson, Real-Time Collision Detection, 5.1.5.
func closestOnTriangle(p, a, b, c r3.Vec) r3.Vec {
	ab, ac, ap := r3.Sub(b, a), r3.Sub(c, a), r3.Sub(p, a)
	d1, d2 := r3.Dot(ab, ap), r3.Dot(ac, ap)
	if d1 <= 0 && d2 <= 0 {
		return a
	}
	bp := r3.Sub(p, b)
	d3v, d4 := r3.Dot(ab, bp), r3.Dot(ac, bp)
	if d3v >= 0 && d4 <= d3v {
		return b
	}
	vc := d1*d4 - d3v*d2
	if vc <= 0 && d1 >= 0 && d3v <= 0 {
		return r3.Add(a, r3.Scale(d1/(d1-d3v), ab))
	}
	cp := r3.Sub(p, c)
	d5, d6 := r3.Dot(ab, cp), r3.Dot(ac, cp)
	if d6 >= 0 && d5 <= d6 {
		return c
	}
	vb := d5*d2 - d1*d6
	if vb <= 0 && d2 >= 0 && d6 <= 0 {
		return r3.Add(a, r3.Scale(d2/(d2-d6), ac))
	}
	va := d3v*d6 - d5*d4
	if va <= 0 && (d4-d3v) >= 0 && (d5-d6) >= 0 {
		w := (d4 - d3v) / ((d4 - d3v) + (d5 - d6))
		return r3.Add(b, r3.Scale(w, r3.Sub(c, b)))
	}
	denom := 1 / (va + vb + vc)
	v := vb * denom
	w := vc * denom
	return r3.Add(a, r3.Add(r3.Scale(v, ab), r3.Scale(w, ac)))
}

type kdTriangles []kdTriangle

type kdTriangle Triangle3

func (k kdTriangles) Index(i int) kdtree.Comparable { return k[i] }

// Len returns the length of the list.
func (k kdTriangles) Len() int { return len(k) }

// Pivot partitions the list based on the dimension specified.
func (k kdTriangles) Pivot(d kdtree.Dim) int {
	p := kdPlane{dim: int(d), triangles: k}
	return kdtree.Partition(p, kdtree.MedianOfMedians(p))
}

// Slice returns a slice of the list using zero-based half
// open indexing equivalent to built-in slice indexing.
func (k kdTriangles) Slice(start, end int) kdtree.Interface { return k[start:end] }

// Compare returns the signed distance of a from the plane passing through
// b and perpendicular to the dimension d.
//
// Given c = a.Compare(b, d):
//  c = a_d - b_d
func (a kdTriangle) Compare(b kdtree.Comparable, d kdtree.Dim) float64 {
	return kdComp(a, b.(kdTriangle), int(d))
}

// Dims returns the number of dimensions described in the Comparable.
func (a kdTriangle) Dims() int { return 3 }

// Distance returns the squared Euclidean distance between triangle centroids.
func (a kdTriangle) Distance(b kdtree.Comparable) float64 {
	return r3.Norm2(r3.Sub(kdCentroid(a), kdCentroid(b.(kdTriangle))))
}

// c = a.dim - b.dim
func kdComp(a, b kdTriangle, dim int) float64 {
	ac, bc := kdCentroid(a), kdCentroid(b)
	switch dim {
	case 0:
		return ac.X - bc.X
	case 1:
		return ac.Y - bc.Y
	case 2:
		return ac.Z - bc.Z
	}
	return math.NaN()
}

func kdCentroid(a kdTriangle) r3.Vec {
	return d3.Set(a.V[:]).Centroid()
}

type kdPlane struct {
	dim       int
	triangles kdTriangles
}

func (p kdPlane) Less(i, j int) bool {
	return kdComp(p.triangles[i], p.triangles[j], p.dim) < 0
}
func (p kdPlane) Swap(i, j int) {
	p.triangles[i], p.triangles[j] = p.triangles[j], p.triangles[i]
}
func (p kdPlane) Len() int {
	return len(p.triangles)
}
func (p kdPlane) Slice(start, end int) kdtree.SortSlicer {
	p.triangles = p.triangles[start:end]
	return p
}
