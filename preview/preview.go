// Package preview rasterizes triangle meshes to PNG images.
package preview

import (
	"fmt"
	"image"
	"math"

	"github.com/fogleman/fauxgl"
	"github.com/nfnt/resize"
	"github.com/soypat/wieringa/internal/d3"
	"github.com/soypat/wieringa/render"
	"github.com/soypat/wieringa/scene"
	"gonum.org/v1/gonum/spatial/r3"
)

const background = "#FFF8E3"

// View configures the camera. The model is fitted into a bi-unit cube
// centered at the origin before rendering.
type View struct {
	Eye    r3.Vec
	LookAt r3.Vec
	Up     r3.Vec
	Near   float64
	Far    float64
	// Fovy is the vertical field of view in degrees.
	Fovy float64
	// Width and Height of the output image in pixels.
	Width, Height int
	// Supersample renders at this multiple of the output size and
	// downsamples for antialiasing.
	Supersample int
}

// DefaultView is an isometric view from above.
func DefaultView() View {
	return View{
		Up:          r3.Vec{Z: 1},
		Eye:         d3.Elem(2.4),
		Near:        1,
		Far:         10,
		Fovy:        30,
		Width:       768,
		Height:      432,
		Supersample: 2,
	}
}

func (v View) validate() error {
	if v.Width <= 0 || v.Height <= 0 {
		return fmt.Errorf("preview: invalid image size %dx%d", v.Width, v.Height)
	}
	if v.Supersample < 1 {
		return fmt.Errorf("preview: supersample must be at least 1, got %d", v.Supersample)
	}
	if !(v.Near > 0 && v.Far > v.Near) {
		return fmt.Errorf("preview: invalid clip planes near=%g far=%g", v.Near, v.Far)
	}
	if !(v.Fovy > 0 && v.Fovy < 180) {
		return fmt.Errorf("preview: invalid field of view %g", v.Fovy)
	}
	if r3.Norm(r3.Sub(v.Eye, v.LookAt)) == 0 {
		return fmt.Errorf("preview: eye and look-at points coincide")
	}
	return nil
}

// Render draws the model with a phong shader, one object color per scene color.
func Render(model []render.Triangle3, view View) (image.Image, error) {
	if len(model) == 0 {
		return nil, render.ErrEmptyModel
	}
	if err := view.validate(); err != nil {
		return nil, err
	}
	fit := biUnit(model)
	meshes := make(map[scene.Color][]*fauxgl.Triangle)
	var order []scene.Color
	for i := range model {
		t := &model[i]
		if t.Degenerate(0) {
			continue
		}
		if _, ok := meshes[t.Color]; !ok {
			order = append(order, t.Color)
		}
		meshes[t.Color] = append(meshes[t.Color], fauxgl.NewTriangleForPoints(
			fit(t.V[0]), fit(t.V[1]), fit(t.V[2]),
		))
	}

	var (
		w, h   = view.Width * view.Supersample, view.Height * view.Supersample
		eye    = fauxgl.V(view.Eye.X, view.Eye.Y, view.Eye.Z)
		center = fauxgl.V(view.LookAt.X, view.LookAt.Y, view.LookAt.Z)
		up     = fauxgl.V(view.Up.X, view.Up.Y, view.Up.Z)
		light  = fauxgl.V(-0.75, 1, 0.25).Normalize()
	)
	context := fauxgl.NewContext(w, h)
	context.ClearColorBufferWith(fauxgl.HexColor(background))
	aspect := float64(view.Width) / float64(view.Height)
	matrix := fauxgl.LookAt(eye, center, up).Perspective(view.Fovy, aspect, view.Near, view.Far)
	shader := fauxgl.NewPhongShader(matrix, light, eye)
	context.Shader = shader
	for _, c := range order {
		shader.ObjectColor = fauxgl.HexColor(c.Hex())
		context.DrawMesh(fauxgl.NewTriangleMesh(meshes[c]))
	}
	img := context.Image()
	if view.Supersample > 1 {
		img = resize.Resize(uint(view.Width), uint(view.Height), img, resize.Bilinear)
	}
	return img, nil
}

// RenderPNG renders the model and saves it to a PNG file.
func RenderPNG(model []render.Triangle3, view View, filename string) error {
	img, err := Render(model, view)
	if err != nil {
		return err
	}
	return fauxgl.SavePNG(filename, img)
}

// biUnit returns a function mapping the model bounds into [-1, 1]³ while
// keeping proportions.
func biUnit(model []render.Triangle3) func(r3.Vec) fauxgl.Vector {
	box := d3.NewBox(model[0].V[0], r3.Vec{})
	for _, t := range model {
		for _, v := range t.V {
			box = box.Include(v)
		}
	}
	size := box.Size()
	k := 2 / math.Max(size.X, math.Max(size.Y, size.Z))
	c := box.Center()
	return func(v r3.Vec) fauxgl.Vector {
		v = r3.Scale(k, r3.Sub(v, c))
		return fauxgl.V(v.X, v.Y, v.Z)
	}
}
