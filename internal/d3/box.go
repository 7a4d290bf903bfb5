package d3

import (
	"gonum.org/v1/gonum/spatial/r3"
)

// Box is a 3d bounding box.
type Box r3.Box

// NewBox returns the box of the given size centered at center.
func NewBox(center, size r3.Vec) Box {
	half := r3.Scale(0.5, size)
	return Box{Min: r3.Sub(center, half), Max: r3.Add(center, half)}
}

// BoxOf returns the smallest box containing all points of the set.
func BoxOf(s Set) Box {
	return Box{Min: s.Min(), Max: s.Max()}
}

// Equals reports whether both corners of the boxes lie within tol.
func (a Box) Equals(b Box, tol float64) bool {
	return EqualWithin(a.Min, b.Min, tol) && EqualWithin(a.Max, b.Max, tol)
}

// Extend returns the smallest box enclosing a and b.
func (a Box) Extend(b Box) Box {
	return Box{Min: MinElem(a.Min, b.Min), Max: MaxElem(a.Max, b.Max)}
}

// Include returns a grown to contain v.
func (a Box) Include(v r3.Vec) Box {
	return a.Extend(Box{Min: v, Max: v})
}

func (a Box) Size() r3.Vec   { return r3.Sub(a.Max, a.Min) }
func (a Box) Center() r3.Vec { return r3.Scale(0.5, r3.Add(a.Min, a.Max)) }

// Vertices returns the 8 corners of the box.
func (a Box) Vertices() Set {
	v := make(Set, 0, 8)
	for _, x := range [2]float64{a.Min.X, a.Max.X} {
		for _, y := range [2]float64{a.Min.Y, a.Max.Y} {
			for _, z := range [2]float64{a.Min.Z, a.Max.Z} {
				v = append(v, r3.Vec{X: x, Y: y, Z: z})
			}
		}
	}
	return v
}

// ScaleAboutCenter returns the box scaled by k about its center.
func (a Box) ScaleAboutCenter(k float64) Box {
	return NewBox(a.Center(), r3.Scale(k, a.Size()))
}
