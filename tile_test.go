package wieringa

import (
	"math"
	"testing"

	"github.com/soypat/wieringa/internal/d3"
	"github.com/soypat/wieringa/scene"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// flatten returns a function that fails the test on error and flattens the tree.
func flatten(t *testing.T) func(*scene.Node, error) []scene.Instance {
	return func(n *scene.Node, err error) []scene.Instance {
		t.Helper()
		require.NoError(t, err)
		return scene.Flatten(n)
	}
}

func projectedEdges(in scene.Instance) []float64 {
	face := in.BaseFace()
	edges := make([]float64, len(face))
	for i := range face {
		a, b := d3.ToR2(face[i]), d3.ToR2(face[(i+1)%len(face)])
		edges[i] = r2.Norm(r2.Sub(b, a))
	}
	return edges
}

func TestTile(t *testing.T) {
	c := DefaultConfig()
	offset := r3.Vec{X: 1, Y: -2, Z: 3}
	in := flatten(t)(c.Tile(offset))
	require.Len(t, in, 1)
	assert.True(t, d3.EqualWithin(offset, in[0].Center(), tol))
	assert.InDelta(t, Derived.TileArea, in[0].Area(), tol)
	assert.Equal(t, c.TileHeight, in[0].Height)

	// Diagonals lie on the axes.
	n, err := c.Tile(r3.Vec{})
	require.NoError(t, err)
	b := d3.Box(scene.Bounds(n))
	assert.InDelta(t, Derived.TileLong, b.Size().X, tol)
	assert.InDelta(t, Derived.TileShort, b.Size().Y, tol)
	assert.InDelta(t, c.TileHeight, b.Size().Z, tol)

	c.SpaceTiles = true
	in = flatten(t)(c.Tile(offset))
	assert.True(t, d3.EqualWithin(offset, in[0].Center(), tol), "spacing keeps the tile center")
	assert.InDelta(t, Derived.TileArea*c.Spacing*c.Spacing, in[0].Area(), tol)

	_, err = Config{Spacing: 1}.Tile(r3.Vec{})
	assert.Error(t, err)
}

func TestTileLXSX(t *testing.T) {
	c := DefaultConfig()
	lx := flatten(t)(c.TileLX())
	require.Len(t, lx, 1)
	b := d3.BoxOf(lx[0].BaseFace())
	assert.InDelta(t, 0, b.Min.X, tol)
	assert.InDelta(t, Derived.TileLong, b.Max.X, tol)
	assert.InDelta(t, Derived.TileShort, b.Size().Y, tol)

	sx := flatten(t)(c.TileSX())
	require.Len(t, sx, 1)
	b = d3.BoxOf(sx[0].BaseFace())
	assert.InDelta(t, 0, b.Min.X, tol)
	assert.InDelta(t, Derived.TileShort, b.Max.X, tol)
	assert.InDelta(t, Derived.TileLong, b.Size().Y, tol)
	assert.InDelta(t, 0, b.Center().Y, tol)
}

func TestFlatRhombs(t *testing.T) {
	c := DefaultConfig()
	for _, test := range []struct {
		name  string
		build func() (*scene.Node, error)
		area  float64
		diag  float64
	}{
		{name: "thin", build: c.Thin, area: math.Sin(36 * math.Pi / 180), diag: 2 * math.Cos(18*math.Pi/180)},
		{name: "thick", build: c.Thick, area: math.Sin(72 * math.Pi / 180), diag: 2 * math.Cos(36*math.Pi/180)},
	} {
		in := flatten(t)(test.build())
		require.Len(t, in, 1, test.name)
		assert.Equal(t, scene.Red, in[0].Color, test.name)
		assert.InDelta(t, test.area, in[0].ProjectedArea(), tol, test.name)
		for _, e := range projectedEdges(in[0]) {
			assert.InDelta(t, 1, e, tol, test.name)
		}
		b := d3.BoxOf(in[0].BaseFace())
		assert.InDelta(t, test.diag, b.Max.X, tol, test.name)
		assert.InDelta(t, 0, b.Min.X, tol, test.name)
	}
	assert.InDelta(t, Derived.ThinArea, math.Sin(36*math.Pi/180), tol)
}

func TestFlowerInstances(t *testing.T) {
	in := flatten(t)(DefaultConfig().Flower())
	require.Len(t, in, 10)

	var green, blue []scene.Instance
	for _, inst := range in {
		switch inst.Color {
		case scene.Green:
			green = append(green, inst)
		case scene.Blue:
			blue = append(blue, inst)
		default:
			t.Fatalf("unexpected color %v", inst.Color)
		}
	}
	require.Len(t, green, 5)
	require.Len(t, blue, 5)

	angle := func(p r3.Vec) float64 {
		a := math.Atan2(p.Y, p.X) * 180 / math.Pi
		if a < -tol {
			a += 360
		}
		return a
	}
	for i := range green {
		assert.InDelta(t, 72*float64(i), angle(green[i].Center()), 1e-6, "green %d angle", i)
		assert.InDelta(t, 36+72*float64(i), angle(blue[i].Center()), 1e-6, "blue %d angle", i)

		assert.InDelta(t, Derived.ProjectedArea, green[i].ProjectedArea(), tol)
		assert.InDelta(t, Derived.ThinArea, blue[i].ProjectedArea(), tol)
		assert.InDelta(t, Derived.TileArea, green[i].Area(), tol)
		assert.InDelta(t, Derived.TileArea, blue[i].Area(), tol)
		// The projections are unit edge Penrose rhombs.
		for _, e := range append(projectedEdges(green[i]), projectedEdges(blue[i])...) {
			assert.InDelta(t, 1, e, tol)
		}
		// Fold angles show up as the tilt of the tile normals.
		assert.InDelta(t, math.Cos(Derived.Alpha), green[i].Normal().Z, tol)
		assert.InDelta(t, math.Cos(Derived.Beta), blue[i].Normal().Z, tol)
	}
}

func TestFlowerTilesMeet(t *testing.T) {
	in := flatten(t)(DefaultConfig().Flower())
	var greenVerts d3.Set
	for _, inst := range in[:5] {
		greenVerts = append(greenVerts, inst.BaseFace()...)
	}
	for i, inst := range in[5:] {
		shared := 0
		for _, v := range inst.BaseFace() {
			for _, g := range greenVerts {
				if d3.EqualWithin(v, g, 1e-9) {
					shared++
					break
				}
			}
		}
		// Inner corner meets two green sides, the side corners meet green tips.
		assert.Equal(t, 3, shared, "blue tile %d", i)
	}
	// The green ring side corners sit on the unit circle.
	for _, v := range greenVerts {
		r := math.Hypot(v.X, v.Y)
		if r > tol && math.Abs(v.Z-0.5) < tol {
			assert.InDelta(t, 1, r, tol)
		}
	}
}

func TestFlowerSpacing(t *testing.T) {
	c := DefaultConfig()
	c.SpaceTiles = true
	in := flatten(t)(c.Flower())
	require.Len(t, in, 10)
	for _, inst := range in {
		assert.Less(t, inst.Area(), Derived.TileArea)
	}
}
