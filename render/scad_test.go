package render_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/soypat/wieringa/render"
	"github.com/soypat/wieringa/scene"
	"github.com/soypat/wieringa/sdf"
	"gonum.org/v1/gonum/spatial/r3"
)

func TestWriteSCAD(t *testing.T) {
	prism := squarePrism(t, 2, 0.02)
	tree := scene.Group(
		scene.Colored(scene.Green, scene.Transform(sdf.Translate3D(r3.Vec{X: 1.5}), prism)),
		scene.Colored(scene.Blue, prism),
	)
	var b bytes.Buffer
	if err := render.WriteSCAD(&b, tree); err != nil {
		t.Fatal(err)
	}
	got := b.String()
	for _, want := range []string{
		"union() {",
		`color("green") {`,
		`color("blue") {`,
		"multmatrix([[1, 0, 0, 1.5], [0, 1, 0, 0], [0, 0, 1, 0], [0, 0, 0, 1]]) {",
		"linear_extrude(height=0.02) polygon(points=[[-1, -1], [1, -1], [1, 1], [-1, 1]]);",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
	if open, closed := strings.Count(got, "{"), strings.Count(got, "}"); open != closed {
		t.Errorf("unbalanced braces: %d open, %d closed", open, closed)
	}
	if err := render.WriteSCAD(&b, scene.Group()); err != render.ErrEmptyModel {
		t.Errorf("empty scene: got %v", err)
	}
}
