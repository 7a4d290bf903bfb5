package preview_test

import (
	"errors"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/soypat/wieringa"
	"github.com/soypat/wieringa/preview"
	"github.com/soypat/wieringa/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func flowerModel(t *testing.T) []render.Triangle3 {
	t.Helper()
	flower, err := wieringa.DefaultConfig().Flower()
	require.NoError(t, err)
	model, err := render.RenderAll(render.NewSceneRenderer(flower))
	require.NoError(t, err)
	return model
}

func TestRender(t *testing.T) {
	view := preview.DefaultView()
	view.Width, view.Height = 160, 90
	img, err := preview.Render(flowerModel(t), view)
	require.NoError(t, err)
	b := img.Bounds()
	assert.Equal(t, 160, b.Dx())
	assert.Equal(t, 90, b.Dy())

	// the flower sits at the center of the frame.
	bg := color.RGBAModel.Convert(img.At(0, 0))
	mid := color.RGBAModel.Convert(img.At(b.Min.X+b.Dx()/2, b.Min.Y+b.Dy()/2))
	assert.NotEqual(t, bg, mid)
}

func TestRenderPNG(t *testing.T) {
	view := preview.DefaultView()
	view.Width, view.Height, view.Supersample = 64, 64, 1
	filename := filepath.Join(t.TempDir(), "flower.png")
	require.NoError(t, preview.RenderPNG(flowerModel(t), view, filename))
	info, err := os.Stat(filename)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestRenderErrors(t *testing.T) {
	_, err := preview.Render(nil, preview.DefaultView())
	assert.True(t, errors.Is(err, render.ErrEmptyModel))

	model := flowerModel(t)
	bad := preview.DefaultView()
	bad.Width = 0
	_, err = preview.Render(model, bad)
	assert.Error(t, err)

	bad = preview.DefaultView()
	bad.Far = bad.Near
	_, err = preview.Render(model, bad)
	assert.Error(t, err)

	bad = preview.DefaultView()
	bad.Eye = bad.LookAt
	_, err = preview.Render(model, bad)
	assert.Error(t, err)
}
