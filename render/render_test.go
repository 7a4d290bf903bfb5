package render_test

import (
	"math"
	"testing"

	"github.com/soypat/wieringa/form2"
	"github.com/soypat/wieringa/render"
	"github.com/soypat/wieringa/scene"
	"github.com/soypat/wieringa/sdf"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

func squarePrism(t testing.TB, side, height float64) *scene.Node {
	h := side / 2
	poly, err := form2.Polygon([]r2.Vec{{X: -h, Y: -h}, {X: h, Y: -h}, {X: h, Y: h}, {X: -h, Y: h}})
	if err != nil {
		t.Fatal(err)
	}
	n, err := scene.Prism(poly, height)
	if err != nil {
		t.Fatal(err)
	}
	return n
}

func TestSceneRendererPrism(t *testing.T) {
	tree := scene.Colored(scene.Green, squarePrism(t, 2, 0.5))
	model, err := render.RenderAll(render.NewSceneRenderer(tree))
	if err != nil {
		t.Fatal(err)
	}
	// 2 triangles per cap, 2 per side.
	if len(model) != 12 {
		t.Fatalf("got %d triangles, want 12", len(model))
	}
	if vol := render.Volume(model); math.Abs(vol-2) > 1e-12 {
		t.Errorf("mesh volume got %g, want 2", vol)
	}
	for i, tri := range model {
		if tri.Color != scene.Green {
			t.Errorf("triangle %d color %v", i, tri.Color)
		}
		if tri.Degenerate(1e-12) {
			t.Errorf("triangle %d degenerate", i)
		}
	}
}

func TestSceneRendererOrientation(t *testing.T) {
	prism := squarePrism(t, 1, 1)
	for _, test := range []struct {
		name string
		m    sdf.M44
	}{
		{name: "identity", m: sdf.Identity3d()},
		{name: "rotated", m: sdf.RotateY(sdf.DtoR(-31.7)).Mul(sdf.RotateZ(1))},
		{name: "mirrored", m: sdf.Scale3d(r3.Vec{X: -1, Y: 1, Z: 1})},
		{name: "scaled", m: sdf.Scale3d(r3.Vec{X: 2, Y: 2, Z: 2})},
	} {
		model, err := render.RenderAll(render.NewSceneRenderer(scene.Transform(test.m, prism)))
		if err != nil {
			t.Fatal(err)
		}
		want := math.Abs(test.m.Determinant())
		if vol := render.Volume(model); math.Abs(vol-want) > 1e-9 {
			t.Errorf("%s: volume got %g, want %g (inverted normals?)", test.name, vol, want)
		}
	}
}

func TestSceneRendererConcave(t *testing.T) {
	// L shaped outline, area 3.
	poly, err := form2.Polygon([]r2.Vec{{}, {X: 2}, {X: 2, Y: 1}, {X: 1, Y: 1}, {X: 1, Y: 2}, {Y: 2}})
	if err != nil {
		t.Fatal(err)
	}
	n, err := scene.Prism(poly, 1)
	if err != nil {
		t.Fatal(err)
	}
	model, err := render.RenderAll(render.NewSceneRenderer(n))
	if err != nil {
		t.Fatal(err)
	}
	if vol := render.Volume(model); math.Abs(vol-3) > 1e-12 {
		t.Errorf("concave prism volume got %g, want 3", vol)
	}
}

func TestSceneRendererEmpty(t *testing.T) {
	_, err := render.RenderAll(render.NewSceneRenderer(scene.Group()))
	if err != render.ErrEmptyModel {
		t.Errorf("got %v, want ErrEmptyModel", err)
	}
}

func TestSceneRendererSmallBuffer(t *testing.T) {
	tree := scene.Group(squarePrism(t, 1, 1), squarePrism(t, 1, 2), squarePrism(t, 1, 3))
	r := render.NewSceneRenderer(tree)
	var total int
	buf := make([]render.Triangle3, 5)
	for {
		n, err := r.ReadTriangles(buf)
		total += n
		if err != nil {
			break
		}
	}
	if total != 36 {
		t.Errorf("read %d triangles, want 36", total)
	}
}

func TestMeshSDF(t *testing.T) {
	model, err := render.RenderAll(render.NewSceneRenderer(squarePrism(t, 2, 2)))
	if err != nil {
		t.Fatal(err)
	}
	s, err := render.NewMeshSDF(model)
	if err != nil {
		t.Fatal(err)
	}
	for _, test := range []struct {
		p    r3.Vec
		want float64
	}{
		{p: r3.Vec{Z: 2.5}, want: 0.5},
		{p: r3.Vec{Z: 1.5}, want: -0.5},
		{p: r3.Vec{Z: -0.25}, want: 0.25},
		{p: r3.Vec{X: 1.5, Z: 1}, want: 0.5},
	} {
		if got := s.Evaluate(test.p); math.Abs(got-test.want) > 1e-9 {
			t.Errorf("distance at %v got %g, want %g", test.p, got, test.want)
		}
	}
	bb := s.Bounds()
	if bb.Min.Z != 0 || bb.Max.Z != 2 || bb.Max.X != 1 {
		t.Errorf("bounds got %v", bb)
	}
	if _, err := render.NewMeshSDF(nil); err != render.ErrEmptyModel {
		t.Errorf("got %v, want ErrEmptyModel", err)
	}
}
