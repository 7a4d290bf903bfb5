// Package render converts scene trees into triangle meshes and writes
// them as STL or OpenSCAD files.
package render

import (
	"errors"

	"github.com/soypat/wieringa/scene"
	"gonum.org/v1/gonum/spatial/r3"
)

// ErrEmptyModel is returned when there are no triangles to output.
var ErrEmptyModel = errors.New("render: empty model")

// Renderer streams triangles. ReadTriangles fills t and returns the number
// of triangles written. io.EOF is returned once all triangles have been read.
type Renderer interface {
	ReadTriangles(t []Triangle3) (int, error)
}

// Triangle3 is a 3D triangle tagged with the color of the solid it belongs to.
// Vertices are ordered counter-clockwise when seen from outside the solid.
type Triangle3 struct {
	V     [3]r3.Vec
	Color scene.Color
}

// Normal returns the normal vector to the plane defined by the 3D triangle.
func (t *Triangle3) Normal() r3.Vec {
	e1 := r3.Sub(t.V[1], t.V[0])
	e2 := r3.Sub(t.V[2], t.V[0])
	return r3.Unit(r3.Cross(e1, e2))
}

// Degenerate returns true if the triangle has (nearly) zero area.
func (t *Triangle3) Degenerate(tol float64) bool {
	e1 := r3.Sub(t.V[1], t.V[0])
	e2 := r3.Sub(t.V[2], t.V[0])
	return r3.Norm(r3.Cross(e1, e2)) <= tol
}

// Area returns the triangle area.
func (t *Triangle3) Area() float64 {
	e1 := r3.Sub(t.V[1], t.V[0])
	e2 := r3.Sub(t.V[2], t.V[0])
	return r3.Norm(r3.Cross(e1, e2)) / 2
}
