package render

import (
	"bytes"
	"fmt"

	"github.com/soypat/wieringa/scene"
)

// VolumeCheck is the volume of one model measured three ways.
type VolumeCheck struct {
	// Mesh is the exact volume of the rendered triangles.
	Mesh float64
	// Sampled estimates the volume by octree sampling of the scene SDF.
	Sampled float64
	// STL estimates the volume by octree sampling of a mesh SDF built from
	// the model written to binary STL and read back.
	STL float64
}

// CheckVolume renders n and measures its volume from the triangles, from the
// scene SDF and from an STL round trip. cells sets the sampling resolution
// along the longest side of the model. The sampled estimates run over the
// bounding box grown by 1%, so they err on the large side for boxy models.
func CheckVolume(n *scene.Node, cells int) (VolumeCheck, error) {
	var vc VolumeCheck
	model, err := RenderAll(NewSceneRenderer(n))
	if err != nil {
		return vc, err
	}
	vc.Mesh = Volume(model)
	vc.Sampled, err = SampleVolume(scene.SDF(n), cells)
	if err != nil {
		return vc, fmt.Errorf("sampling scene: %w", err)
	}
	var buf bytes.Buffer
	if err := WriteSTL(&buf, model); err != nil {
		return vc, err
	}
	back, err := ReadSTL(&buf)
	if err != nil {
		return vc, fmt.Errorf("reading back STL: %w", err)
	}
	mesh, err := NewMeshSDF(back)
	if err != nil {
		return vc, err
	}
	vc.STL, err = SampleVolume(mesh, cells)
	if err != nil {
		return vc, fmt.Errorf("sampling STL mesh: %w", err)
	}
	return vc, nil
}
