package tiling

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// MaxHeightSpan is the largest difference between two vertex heights
// of a Penrose rhomb tiling.
const MaxHeightSpan = 3

// computeHeights assigns every point its index in the five dimensional
// lattice the tiling is projected from. Edges point along one of ten
// directions 36° apart; walking an edge in an even direction relative to
// the first tile edge raises the index by one, odd directions lower it.
func (tl *Tiling) computeHeights() ([]int, error) {
	if len(tl.Tiles) == 0 {
		return nil, nil
	}
	type step struct {
		to, delta int
	}
	adj := make([][]step, len(tl.Points))
	t0 := tl.Tiles[0].Vertices
	ref := r2.Sub(tl.Points[t0[1]], tl.Points[t0[0]])
	ref0 := math.Atan2(ref.Y, ref.X)
	for _, t := range tl.Tiles {
		for i := 0; i < 4; i++ {
			a, b := t.Vertices[i], t.Vertices[(i+1)%4]
			d, err := tl.edgeDelta(a, b, ref0)
			if err != nil {
				return nil, err
			}
			adj[a] = append(adj[a], step{to: b, delta: d})
			adj[b] = append(adj[b], step{to: a, delta: -d})
		}
	}

	const unset = math.MinInt32
	h := make([]int, len(tl.Points))
	for i := range h {
		h[i] = unset
	}
	var queue []int
	for start := range h {
		if h[start] != unset {
			continue
		}
		h[start] = 0
		queue = append(queue[:0], start)
		for len(queue) > 0 {
			p := queue[0]
			queue = queue[1:]
			for _, s := range adj[p] {
				want := h[p] + s.delta
				switch h[s.to] {
				case unset:
					h[s.to] = want
					queue = append(queue, s.to)
				case want:
				default:
					return nil, fmt.Errorf("tiling: inconsistent heights at point %d", s.to)
				}
			}
		}
	}
	lo, hi := h[0], h[0]
	for _, v := range h {
		lo, hi = minInt(lo, v), maxInt(hi, v)
	}
	if hi-lo > MaxHeightSpan {
		return nil, fmt.Errorf("tiling: height span %d exceeds %d", hi-lo, MaxHeightSpan)
	}
	for i := range h {
		h[i] += 1 - lo
	}
	return h, nil
}

// edgeDelta classifies the edge a→b against the reference direction.
func (tl *Tiling) edgeDelta(a, b int, ref0 float64) (int, error) {
	e := r2.Sub(tl.Points[b], tl.Points[a])
	steps := (math.Atan2(e.Y, e.X) - ref0) / (math.Pi / 5)
	k := math.Round(steps)
	if math.Abs(steps-k) > 1e-3 {
		return 0, fmt.Errorf("tiling: edge %d-%d is not aligned to a rhomb direction", a, b)
	}
	if int(k)%2 == 0 {
		return 1, nil
	}
	return -1, nil
}

// CheckHeights verifies the roof constraints of every tile: two opposite
// corners share a height and the other two sit one above and one below it.
// Thick rhombs rise along the long diagonal, thin rhombs along the short one.
func (tl *Tiling) CheckHeights() error {
	if len(tl.Heights) != len(tl.Points) {
		return errors.New("tiling: heights not computed")
	}
	if len(tl.Points) == 0 {
		return nil
	}
	lo, hi := tl.Heights[0], tl.Heights[0]
	for _, v := range tl.Heights {
		lo, hi = minInt(lo, v), maxInt(hi, v)
	}
	if lo < 1 || hi-lo > MaxHeightSpan {
		return fmt.Errorf("tiling: heights out of range [%d, %d]", lo, hi)
	}
	for i, t := range tl.Tiles {
		v := t.Vertices
		h := [4]int{tl.Heights[v[0]], tl.Heights[v[1]], tl.Heights[v[2]], tl.Heights[v[3]]}
		// thick: bottom, right, top, left. thin: right, top, left, bottom.
		if h[1] != h[3] {
			return fmt.Errorf("tiling: tile %d side corners at heights %d and %d", i, h[1], h[3])
		}
		d0, d2 := h[0]-h[1], h[2]-h[1]
		if absInt(d0) != 1 || d0 != -d2 {
			return fmt.Errorf("tiling: tile %d tips at heights %d and %d around %d", i, h[0], h[2], h[1])
		}
	}
	return nil
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func absInt(a int) int {
	if a < 0 {
		return -a
	}
	return a
}
