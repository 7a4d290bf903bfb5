package matter_test

import (
	"testing"

	"github.com/soypat/wieringa"
	"github.com/soypat/wieringa/helpers/matter"
	"github.com/soypat/wieringa/scene"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"
)

func TestPLAScale(t *testing.T) {
	tile, err := wieringa.DefaultConfig().Tile(r3.Vec{})
	require.NoError(t, err)
	scaled := matter.PLA.Scale(tile)

	b0, b1 := scene.Bounds(tile), scene.Bounds(scaled)
	s0, s1 := r3.Sub(b0.Max, b0.Min), r3.Sub(b1.Max, b1.Min)
	k := matter.PLA.ScaleFactor()
	assert.InDelta(t, 1/(1-0.2e-2), k, 1e-12)
	assert.InDelta(t, s0.X*k, s1.X, 1e-9)
	assert.InDelta(t, s0.Y*k, s1.Y, 1e-9)
	assert.InDelta(t, s0.Z*k, s1.Z, 1e-9)
}

func TestNoShrink(t *testing.T) {
	m, err := matter.NewViscousMaterial(0, 0)
	require.NoError(t, err)
	tile, err := wieringa.DefaultConfig().Tile(r3.Vec{})
	require.NoError(t, err)
	assert.Same(t, tile, m.Scale(tile))
	assert.Nil(t, matter.PLA.Scale(nil))

	_, err = matter.NewViscousMaterial(1, 0)
	assert.Error(t, err)
	_, err = matter.NewViscousMaterial(0.1, -1)
	assert.Error(t, err)
}

func TestInternalDimScale(t *testing.T) {
	assert.InDelta(t, 10*1.002+0.45, matter.PLA.InternalDimScale(10), 1e-12)
	assert.Panics(t, func() { matter.PLA.InternalDimScale(0) })
}
