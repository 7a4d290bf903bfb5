package tiling

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"

	svg "github.com/ajstarks/svgo"
	"github.com/jbeda/geom"
)

const (
	thickRGB = 0x62ae19
	thinRGB  = 0x80afe1
)

// shade darkens lower tiles.
var shade = [4]float64{0.1, 0.4, 0.7, 1.0}

// WriteSVG draws the flat tiling into a square-pixel SVG width pixels wide.
// Tiles are filled by type with a gradient along the diagonal from corner 0
// to corner 2, darkened by the height at each end.
func (tl *Tiling) WriteSVG(w io.Writer, width int) error {
	if len(tl.Tiles) == 0 {
		return ErrNoTiles
	}
	if width <= 0 {
		return errors.New("tiling: svg width must be positive")
	}
	bounds := geom.Rect{Min: geom.Coord{X: math.Inf(1), Y: math.Inf(1)}, Max: geom.Coord{X: math.Inf(-1), Y: math.Inf(-1)}}
	for _, p := range tl.Points {
		bounds.ExpandToContainCoord(geom.Coord{X: p.X, Y: p.Y})
	}
	margin := tl.Edge / 4
	bounds.Min.X -= margin
	bounds.Min.Y -= margin
	bounds.Max.X += margin
	bounds.Max.Y += margin
	k := float64(width) / bounds.Width()
	height := int(math.Ceil(k * bounds.Height()))
	// SVG y axis points down.
	px := func(x, y float64) (int, int) {
		return int(math.Round(k * (x - bounds.Min.X))), int(math.Round(k * (bounds.Max.Y - y)))
	}

	quads := make([]struct{ xs, ys [4]int }, len(tl.Tiles))
	for i, t := range tl.Tiles {
		for j, c := range t.Corners() {
			quads[i].xs[j], quads[i].ys[j] = px(c.X, c.Y)
		}
	}

	canvas := svg.New(w)
	canvas.Start(width, height)
	canvas.Title(fmt.Sprintf("Penrose rhomb tiling, %d tiles", len(tl.Tiles)))
	// Each rhomb shades from its first corner to the opposite one.
	canvas.Def()
	for i, t := range tl.Tiles {
		x1, y1 := boxPercent(quads[i].xs, quads[i].ys, 0)
		x2, y2 := boxPercent(quads[i].xs, quads[i].ys, 2)
		canvas.LinearGradient(gradientID(i), x1, y1, x2, y2, []svg.Offcolor{
			{Offset: 0, Color: tl.tileColor(t, 0), Opacity: 1},
			{Offset: 100, Color: tl.tileColor(t, 2), Opacity: 1},
		})
	}
	canvas.DefEnd()
	canvas.Gstyle(fmt.Sprintf("stroke:black;stroke-width:%d;stroke-linejoin:round", maxInt(1, int(k*tl.Edge/40))))
	for i, q := range quads {
		canvas.Polygon(q.xs[:], q.ys[:], "fill:url(#"+gradientID(i)+")")
	}
	canvas.Gend()
	canvas.End()
	return nil
}

func gradientID(tile int) string { return "t" + strconv.Itoa(tile) }

// boxPercent locates corner c of a polygon relative to the polygon's
// bounding box, in percent, as gradient coordinates expect.
func boxPercent(xs, ys [4]int, c int) (x, y uint8) {
	pct := func(v [4]int, i int) uint8 {
		lo, hi := v[0], v[0]
		for _, e := range v[1:] {
			lo, hi = minInt(lo, e), maxInt(hi, e)
		}
		if hi == lo {
			return 0
		}
		return uint8(100 * (v[i] - lo) / (hi - lo))
	}
	return pct(xs, c), pct(ys, c)
}

// tileColor is the fill of tile t at corner c, darkened by the corner height.
func (tl *Tiling) tileColor(t Tile, c int) string {
	rgb := thinRGB
	if t.Thick {
		rgb = thickRGB
	}
	f := 1.0
	if len(tl.Heights) == len(tl.Points) {
		h := tl.Heights[t.Vertices[c]]
		if h >= 1 && h <= len(shade) {
			f = shade[h-1]
		}
	}
	r := float64(rgb>>16&0xff) * f
	g := float64(rgb>>8&0xff) * f
	b := float64(rgb&0xff) * f
	return fmt.Sprintf("#%02x%02x%02x", int(r), int(g), int(b))
}
