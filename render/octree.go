package render

import (
	"errors"
	"math"

	"github.com/soypat/wieringa/internal/d3"
	"github.com/soypat/wieringa/sdf"
	"gonum.org/v1/gonum/spatial/r3"
)

// SampleVolume estimates the volume enclosed by s with octree space sampling.
// The bounding box is divided into cubes with cells cubes along its longest
// side. Cubes far enough from the surface are accepted or rejected whole;
// the rest are subdivided and the smallest are sampled at their center.
func SampleVolume(s sdf.SDF3, cells int) (float64, error) {
	if s == nil {
		return 0, errors.New("render: nil SDF")
	}
	if cells < 2 {
		return 0, errors.New("render: need at least 2 sampling cells")
	}
	bb := d3.Box(s.Bounds())
	longAxis := d3.Max(bb.Size())
	if !(longAxis > 0) {
		return 0, ErrEmptyModel
	}
	// Scale the bounding box about the center so the boundaries
	// aren't on the object surface.
	bb = bb.ScaleAboutCenter(1.01)
	longAxis *= 1.01
	resolution := longAxis / float64(cells)
	levels := uint(math.Ceil(math.Log2(float64(cells)))) + 1
	smp := newOctreeSampler(s, bb.Min, resolution, levels)

	cellVolume := resolution * resolution * resolution
	var volume float64
	todo := []cube{{n: levels - 1}}
	for len(todo) > 0 {
		c := todo[len(todo)-1]
		todo = todo[:len(todo)-1]
		side := 1 << c.n
		d := smp.center(c)
		if c.n == 0 {
			if d < 0 {
				volume += cellVolume
			}
			continue
		}
		if math.Abs(d) >= smp.hdiag[c.n] {
			if d < 0 {
				volume += cellVolume * float64(side*side*side)
			}
			continue
		}
		n := c.n - 1
		h := 1 << n
		for _, o := range [8][3]int{
			{0, 0, 0}, {h, 0, 0}, {h, h, 0}, {0, h, 0},
			{0, 0, h}, {h, 0, h}, {h, h, h}, {0, h, h},
		} {
			todo = append(todo, cube{i: [3]int{c.i[0] + o[0], c.i[1] + o[1], c.i[2] + o[2]}, n: n})
		}
	}
	return volume, nil
}

// Volume returns the signed volume enclosed by a closed, outward facing
// triangle mesh using the divergence theorem.
func Volume(model []Triangle3) float64 {
	var vol float64
	for _, t := range model {
		vol += r3.Dot(t.V[0], r3.Cross(t.V[1], t.V[2])) / 6
	}
	return vol
}

type cube struct {
	// origin of cube in smallest cell units.
	i [3]int
	// level of cube, side = 1 << n
	n uint
}

// octreeSampler evaluates the SDF3 at the centers of octree cubes.
type octreeSampler struct {
	origin     r3.Vec    // origin of the overall bounding cube
	resolution float64   // size of smallest octree cube
	hdiag      []float64 // lookup table of cube half diagonals
	s          sdf.SDF3
}

func newOctreeSampler(s sdf.SDF3, origin r3.Vec, resolution float64, n uint) *octreeSampler {
	if n >= 64 {
		panic("size of n must be less than size of word for hdiag generation")
	}
	smp := octreeSampler{
		origin:     origin,
		resolution: resolution,
		hdiag:      make([]float64, n),
		s:          s,
	}
	// build a lut for cube half diagonal lengths
	for i := range smp.hdiag {
		si := 1 << uint(i)
		s := float64(si) * smp.resolution
		smp.hdiag[i] = 0.5 * math.Sqrt(3.0*s*s)
	}
	return &smp
}

// center evaluates the SDF3 at the center of c.
func (smp *octreeSampler) center(c cube) float64 {
	half := 0.5 * float64(int(1)<<c.n)
	v := r3.Vec{
		X: smp.origin.X + smp.resolution*(float64(c.i[0])+half),
		Y: smp.origin.Y + smp.resolution*(float64(c.i[1])+half),
		Z: smp.origin.Z + smp.resolution*(float64(c.i[2])+half),
	}
	return smp.s.Evaluate(v)
}
