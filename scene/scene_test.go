package scene_test

import (
	"errors"
	"math"
	"testing"

	"github.com/soypat/wieringa/form2"
	"github.com/soypat/wieringa/internal/d3"
	"github.com/soypat/wieringa/scene"
	"github.com/soypat/wieringa/sdf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"
)

func unitSquare(t *testing.T, height float64) *scene.Node {
	t.Helper()
	poly, err := form2.Rhomb(math.Sqrt2, math.Sqrt2)
	require.NoError(t, err)
	n, err := scene.Prism(poly, height)
	require.NoError(t, err)
	return n
}

func TestPrismValidation(t *testing.T) {
	poly, err := form2.Rhomb(1, 1)
	require.NoError(t, err)
	_, err = scene.Prism(poly, 0)
	assert.Error(t, err)
	_, err = scene.Prism(poly, math.NaN())
	assert.Error(t, err)
	_, err = scene.Prism(nil, 1)
	assert.Error(t, err)
}

func TestFlattenTransformsAndColors(t *testing.T) {
	sq := unitSquare(t, 0.1)
	tree := scene.Group(
		scene.Colored(scene.Green,
			scene.Transform(sdf.Translate3D(r3.Vec{X: 10}), sq),
			scene.Colored(scene.Blue, sq),
		),
		sq,
		nil,
	)
	inst := scene.Flatten(tree)
	require.Len(t, inst, 3)

	assert.Equal(t, scene.Green, inst[0].Color)
	assert.Equal(t, scene.Blue, inst[1].Color, "inner color takes precedence")
	assert.Equal(t, scene.Inherit, inst[2].Color)
	assert.Equal(t, "green", scene.Green.String())

	c := inst[0].Center()
	assert.InDelta(t, 10, c.X, 1e-12)
	assert.InDelta(t, 0, c.Y, 1e-12)
	for _, in := range inst {
		assert.InDelta(t, 1, in.ProjectedArea(), 1e-12)
		assert.InDelta(t, 1, in.Area(), 1e-12)
	}
}

func TestProjectedAreaCosine(t *testing.T) {
	sq := unitSquare(t, 0.1)
	angle := sdf.DtoR(60)
	in := scene.Flatten(scene.Transform(sdf.RotateY(angle), sq))
	require.Len(t, in, 1)
	assert.InDelta(t, math.Cos(angle), in[0].ProjectedArea(), 1e-12)
	assert.InDelta(t, 1, in[0].Area(), 1e-12)
	assert.InDelta(t, math.Cos(angle), in[0].Normal().Z, 1e-12)
}

func TestSlab(t *testing.T) {
	face := d3.Set{
		{X: 0, Y: 0, Z: 0},
		{X: 1, Y: 0, Z: 1},
		{X: 1, Y: 1, Z: 1},
		{X: 0, Y: 1, Z: 0},
	}
	n, err := scene.Slab(face, 0.05)
	require.NoError(t, err)
	in := scene.Flatten(n)
	require.Len(t, in, 1)
	base := in[0].BaseFace()
	for i := range face {
		assert.True(t, d3.EqualWithin(face[i], base[i], 1e-9), "vertex %d: got %v want %v", i, base[i], face[i])
	}
	assert.InDelta(t, math.Sqrt2, in[0].Area(), 1e-9)
	assert.InDelta(t, 1, in[0].ProjectedArea(), 1e-9)
	// The top cap is offset along the face normal.
	top := in[0].TopFace()
	d := r3.Sub(top[0], base[0])
	assert.InDelta(t, 0.05, r3.Norm(d), 1e-9)
	assert.Greater(t, d.Z, 0.0)

	face[2].Z = 2
	_, err = scene.Slab(face, 0.05)
	assert.True(t, errors.Is(err, scene.ErrNotPlanar))
}

func TestBoundsAndSDF(t *testing.T) {
	sq := unitSquare(t, 1)
	tree := scene.Group(sq, scene.Transform(sdf.Translate3D(r3.Vec{Z: 5}), sq))
	bb := d3.Box(scene.Bounds(tree))
	want := d3.Box{Min: r3.Vec{X: -math.Sqrt2 / 2, Y: -math.Sqrt2 / 2}, Max: r3.Vec{X: math.Sqrt2 / 2, Y: math.Sqrt2 / 2, Z: 6}}
	assert.True(t, bb.Equals(want, 1e-9), "bounds %v", bb)

	s := scene.SDF(tree)
	assert.Less(t, s.Evaluate(r3.Vec{Z: 0.5}), 0.0)
	assert.Less(t, s.Evaluate(r3.Vec{Z: 5.5}), 0.0)
	assert.Greater(t, s.Evaluate(r3.Vec{Z: 3}), 0.0)
	sbb := d3.Box(s.Bounds())
	assert.Less(t, sbb.Min.Z, 1e-9)
	assert.GreaterOrEqual(t, sbb.Max.Z, 5.9)
}
