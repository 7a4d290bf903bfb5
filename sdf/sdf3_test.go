package sdf

import (
	"math"
	"testing"

	"github.com/soypat/wieringa/internal/d3"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// square is a minimal SDF2 to avoid importing form2 (import cycle).
type square float64

func (s square) Evaluate(p r2.Vec) float64 {
	h := float64(s) / 2
	return math.Max(math.Abs(p.X)-h, math.Abs(p.Y)-h)
}

func (s square) Bounds() r2.Box {
	h := float64(s) / 2
	return r2.Box{Min: r2.Vec{X: -h, Y: -h}, Max: r2.Vec{X: h, Y: h}}
}

func TestExtrude3D(t *testing.T) {
	s := Extrude3D(square(2), 0.5)
	bb := d3.Box(s.Bounds())
	want := d3.Box{Min: r3.Vec{X: -1, Y: -1, Z: -0.25}, Max: r3.Vec{X: 1, Y: 1, Z: 0.25}}
	if !bb.Equals(want, 1e-12) {
		t.Errorf("bounds got %v, want %v", bb, want)
	}
	if d := s.Evaluate(r3.Vec{}); d >= 0 {
		t.Errorf("origin should be inside, got %g", d)
	}
	if d := s.Evaluate(r3.Vec{Z: 1}); math.Abs(d-0.75) > 1e-12 {
		t.Errorf("distance above cap got %g, want 0.75", d)
	}
}

func TestTransform3D(t *testing.T) {
	box := Extrude3D(square(1), 1)
	m := Translate3D(r3.Vec{X: 10}).Mul(RotateZ(DtoR(45)))
	s := Transform3D(box, m)
	if d := s.Evaluate(r3.Vec{X: 10}); d >= 0 {
		t.Errorf("moved center should be inside, got %g", d)
	}
	if d := s.Evaluate(r3.Vec{}); d <= 0 {
		t.Errorf("origin should be outside, got %g", d)
	}
	bb := d3.Box(s.Bounds())
	half := math.Sqrt2 / 2
	want := d3.Box{Min: r3.Vec{X: 10 - half, Y: -half, Z: -.5}, Max: r3.Vec{X: 10 + half, Y: half, Z: .5}}
	if !bb.Equals(want, 1e-9) {
		t.Errorf("bounds got %v, want %v", bb, want)
	}
	if Transform3D(box, Identity3d()) != box {
		t.Error("identity transform should return the same object")
	}
}

func TestUnion3D(t *testing.T) {
	a := Transform3D(Extrude3D(square(1), 1), Scale3d(d3.Elem(3)))
	b := Transform3D(Extrude3D(square(1), 1), Translate3D(r3.Vec{X: 5}))
	u := Union3D(a, b)
	if d := u.Evaluate(r3.Vec{X: 5}); d >= 0 {
		t.Errorf("union should contain second object, got %g", d)
	}
	if d := u.Evaluate(r3.Vec{X: 2.5}); math.Abs(d-1) > 1e-12 {
		t.Errorf("distance to scaled member got %g, want 1", d)
	}
	bb := d3.Box(u.Bounds())
	if bb.Max.X != 5.5 || bb.Min.X != -1.5 {
		t.Errorf("union bounds got %v", bb)
	}
	if d := Union3D().Evaluate(r3.Vec{}); d != math.MaxFloat64 {
		t.Errorf("empty union distance got %g", d)
	}
}

func TestM44(t *testing.T) {
	m := RotateY(DtoR(-30))
	if !m.Mul(m.Inverse()).Equals(Identity3d(), 1e-12) {
		t.Error("rotation times inverse not identity")
	}
	// negative angle about Y lifts +X.
	if p := m.MulPosition(r3.Vec{X: 1}); p.Z <= 0 {
		t.Errorf("expected +X to rise, got %v", p)
	}
	s := Scale3d(d3.Elem(2)).Mul(Translate3D(r3.Vec{Z: 1}))
	if f := s.ScaleFactor(); math.Abs(f-2) > 1e-12 {
		t.Errorf("scale factor got %g", f)
	}
	if d := s.MulDirection(r3.Vec{X: 1}); !d3.EqualWithin(d, r3.Vec{X: 2}, 1e-12) {
		t.Errorf("direction got %v", d)
	}
	f := Frame3d(r3.Vec{Z: 1}, r3.Vec{Y: 1}, r3.Vec{X: -1}, r3.Vec{Z: 1})
	if p := f.MulPosition(r3.Vec{X: 1, Y: 1}); !d3.EqualWithin(p, r3.Vec{X: -1, Y: 1, Z: 1}, 1e-12) {
		t.Errorf("frame mapping got %v", p)
	}
	if v := f.Values(); len(v) != 16 || v[15] != 1 {
		t.Errorf("values got %v", v)
	}
}

func TestAngleConversion(t *testing.T) {
	for _, deg := range []float64{0, 18, 36, 72, 90, 180} {
		if got := RtoD(DtoR(deg)); math.Abs(got-deg) > 1e-12 {
			t.Errorf("round trip %g got %g", deg, got)
		}
	}
	if got := DtoR(180); got != math.Pi {
		t.Errorf("180 degrees got %g radians", got)
	}
}

func TestTransform3DScaledDistance(t *testing.T) {
	s := Transform3D(Extrude3D(square(1), 1), Scale3d(d3.Elem(4)))
	if d := s.Evaluate(r3.Vec{X: 3}); math.Abs(d-1) > 1e-12 {
		t.Errorf("scaled distance got %g, want 1", d)
	}
}
