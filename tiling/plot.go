package tiling

import (
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// Plot returns a plot of the flat tiling centered on the origin with thick
// and thin rhombs drawn as two polygon sets.
func (tl *Tiling) Plot() (*plot.Plot, error) {
	if len(tl.Tiles) == 0 {
		return nil, ErrNoTiles
	}
	pts := tl.centered()
	var thick, thin []plotter.XYer
	for _, t := range tl.Tiles {
		xys := make(plotter.XYs, 4)
		for i, v := range t.Vertices {
			xys[i].X, xys[i].Y = pts[v].X, pts[v].Y
		}
		if t.Thick {
			thick = append(thick, xys)
		} else {
			thin = append(thin, xys)
		}
	}
	p := plot.New()
	p.Title.Text = "Penrose rhomb tiling"
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"
	for _, set := range []struct {
		rings []plotter.XYer
		rgb   int
		name  string
	}{
		{thick, thickRGB, "thick"},
		{thin, thinRGB, "thin"},
	} {
		if len(set.rings) == 0 {
			continue
		}
		poly, err := plotter.NewPolygon(set.rings...)
		if err != nil {
			return nil, err
		}
		poly.Color = color.RGBA{R: uint8(set.rgb >> 16), G: uint8(set.rgb >> 8), B: uint8(set.rgb), A: 255}
		poly.LineStyle.Width = vg.Points(0.5)
		p.Add(poly)
		p.Legend.Add(set.name, poly)
	}
	// keep rhombs undistorted.
	r := p.X.Max - p.X.Min
	if h := p.Y.Max - p.Y.Min; h > r {
		r = h
	}
	cx, cy := (p.X.Max+p.X.Min)/2, (p.Y.Max+p.Y.Min)/2
	p.X.Min, p.X.Max = cx-r/2, cx+r/2
	p.Y.Min, p.Y.Max = cy-r/2, cy+r/2
	return p, nil
}

// SavePlot writes the tiling plot to a square image of the given side. The
// format follows the file extension.
func (tl *Tiling) SavePlot(filename string, side vg.Length) error {
	p, err := tl.Plot()
	if err != nil {
		return err
	}
	return p.Save(side, side, filename)
}
