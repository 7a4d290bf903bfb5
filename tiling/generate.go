// Package tiling generates Penrose rhomb tilings by substitution and lifts
// them into Wieringa roof layers.
package tiling

import (
	"errors"
	"math"

	"github.com/soypat/wieringa/internal/d2"
	"gonum.org/v1/gonum/spatial/r2"
)

// ErrNoTiles is returned when a layer is requested from a tiling without tiles.
var ErrNoTiles = errors.New("tiling: no tiles")

var (
	cos54, sin54 = math.Cos(54 * math.Pi / 180), math.Sin(54 * math.Pi / 180)
	cos72, sin72 = math.Cos(72 * math.Pi / 180), math.Sin(72 * math.Pi / 180)
	// each substitution shrinks the edge by 1/φ.
	subscale = 1 / (2 * sin54)
)

// Unit edge rhombs in their local frames, counter-clockwise.
var (
	// bottom, right, top, left. Acute corners at bottom and top.
	thickLocal = [4]r2.Vec{{X: 0, Y: 0}, {X: cos54, Y: sin54}, {X: 0, Y: 2 * sin54}, {X: -cos54, Y: sin54}}
	// right, top, left, bottom. Obtuse corners at right and left.
	thinLocal = [4]r2.Vec{{X: 0, Y: 0}, {X: -cos72, Y: sin72}, {X: -2 * cos72, Y: 0}, {X: -cos72, Y: -sin72}}
)

// Tile is a placed thick or thin rhomb.
type Tile struct {
	Thick     bool
	Transform d2.Transform
	// Vertices indexes Tiling.Points in the order of the local frame.
	Vertices [4]int
}

// Corners returns the tile's vertices in tiling coordinates.
func (t Tile) Corners() (c [4]r2.Vec) {
	local := &thinLocal
	if t.Thick {
		local = &thickLocal
	}
	for i := range c {
		c[i] = t.Transform.ApplyPos(local[i])
	}
	return c
}

// Center returns the midpoint of the tile's first and third corners.
func (t Tile) Center() r2.Vec {
	c := t.Corners()
	return r2.Scale(0.5, r2.Add(c[0], c[2]))
}

// Subdivide returns the children of one substitution step. Thick rhombs
// produce 3 thick and 2 thin halves, thin rhombs 2 thick and 2 thin halves.
// Children on a shared edge are produced by both neighbours.
func (t Tile) Subdivide() []Tile {
	mk := func(thick bool, x, y, deg float64) Tile {
		m := d2.TranslateTransform(r2.Vec{X: x, Y: y}).
			Mul(d2.RotateTransform(deg * math.Pi / 180)).
			Mul(d2.ScaleTransform(r2.Vec{X: subscale, Y: subscale}))
		return Tile{Thick: thick, Transform: t.Transform.Mul(m)}
	}
	if t.Thick {
		midy := 2*sin54 - 1/(2*sin54)
		return []Tile{
			mk(true, 0, midy, 180),
			mk(true, 0, 2*sin54, 144),
			mk(true, 0, 2*sin54, 216),
			mk(false, -cos54, sin54, 126),
			mk(false, cos54, sin54, 54),
		}
	}
	return []Tile{
		mk(true, 0, 0, 18),
		mk(true, 0, 0, 162),
		mk(false, -2*cos72, 0, 252),
		mk(false, -2*cos72, 0, 108),
	}
}

// Tiling is a patch of rhombs sharing vertices.
type Tiling struct {
	Tiles  []Tile
	Points []r2.Vec
	// Heights holds the roof height index of every point, starting at 1.
	Heights []int
	// Edge is the common edge length of all tiles.
	Edge float64
}

// Generate substitutes a unit edge thick rhomb steps times, removes
// duplicate tiles, shares coincident vertices and computes vertex heights.
func Generate(steps int) (*Tiling, error) {
	return GenerateFrom(Tile{Thick: true}, steps)
}

// GenerateFrom is like Generate starting from an arbitrary seed tile.
func GenerateFrom(seed Tile, steps int) (*Tiling, error) {
	if steps < 0 {
		return nil, errors.New("tiling: negative substitution steps")
	}
	edge := seed.Transform.Scale()
	if edge == 0 || math.IsNaN(edge) || math.IsInf(edge, 0) {
		return nil, errors.New("tiling: singular seed transform")
	}
	if seed.Transform.Determinant() < 0 {
		return nil, errors.New("tiling: seed transform mirrors the tile")
	}
	tiles := []Tile{seed}
	for i := 0; i < steps; i++ {
		next := make([]Tile, 0, 5*len(tiles))
		for _, t := range tiles {
			next = append(next, t.Subdivide()...)
		}
		tiles = next
		edge *= subscale
	}
	eps := 1e-4 * edge
	centers := newPointIndex(eps)
	unique := tiles[:0]
	for _, t := range tiles {
		if _, added := centers.add(t.Center()); added {
			unique = append(unique, t)
		}
	}
	tiles = unique

	points := newPointIndex(eps)
	for i := range tiles {
		for j, c := range tiles[i].Corners() {
			tiles[i].Vertices[j], _ = points.add(c)
		}
	}
	tl := &Tiling{Tiles: tiles, Points: points.points, Edge: edge}
	h, err := tl.computeHeights()
	if err != nil {
		return nil, err
	}
	tl.Heights = h
	if err := tl.CheckHeights(); err != nil {
		return nil, err
	}
	return tl, nil
}

// Bounds returns the bounding box of the tiling's points.
func (tl *Tiling) Bounds() d2.Box {
	return d2.BoxOf(d2.Set(tl.Points))
}

// Count returns the number of thick and thin tiles.
func (tl *Tiling) Count() (thick, thin int) {
	for _, t := range tl.Tiles {
		if t.Thick {
			thick++
		} else {
			thin++
		}
	}
	return thick, thin
}

// pointIndex deduplicates points closer than eps using a grid of cells
// of size eps, probing neighbouring cells for points near a cell border.
type pointIndex struct {
	eps    float64
	cells  map[[2]int64][]int
	points []r2.Vec
}

func newPointIndex(eps float64) *pointIndex {
	return &pointIndex{eps: eps, cells: make(map[[2]int64][]int)}
}

func (pi *pointIndex) cell(p r2.Vec) [2]int64 {
	return [2]int64{int64(math.Floor(p.X / pi.eps)), int64(math.Floor(p.Y / pi.eps))}
}

// add returns the index of a point within eps of p, adding p if there is none.
func (pi *pointIndex) add(p r2.Vec) (idx int, added bool) {
	c := pi.cell(p)
	for dx := int64(-1); dx <= 1; dx++ {
		for dy := int64(-1); dy <= 1; dy++ {
			for _, i := range pi.cells[[2]int64{c[0] + dx, c[1] + dy}] {
				if d2.EqualWithin(pi.points[i], p, pi.eps) {
					return i, false
				}
			}
		}
	}
	idx = len(pi.points)
	pi.points = append(pi.points, p)
	pi.cells[c] = append(pi.cells[c], idx)
	return idx, true
}
