// Package plt renders the transect figures: the depth profile about
// the shelf break and the Sv-distance alignment, raw and resampled.
package plt

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

func xys(x, y []float64, flipY bool) plotter.XYs {
	o := make(plotter.XYs, len(x))
	for i := range x {
		o[i].X = x[i]
		o[i].Y = y[i]
		if flipY {
			o[i].Y = -y[i] // depth positive down; plot as negative elevation
		}
	}
	return o
}

// Profile draws the seafloor depth profile against signed distance
// from the shelf break (negative onshore), raw intervals as a line and
// resampled stations as points, break marked at zero.
func Profile(fp string, xb, depth, sx, sz []float64) error {
	p := plot.New()
	p.Title.Text = "seafloor profile"
	p.X.Label.Text = "distance from shelf break [km]"
	p.Y.Label.Text = "depth [m] (plotted negative down)"

	l, err := plotter.NewLine(xys(xb, depth, true))
	if err != nil {
		return fmt.Errorf("plt.Profile: %v", err)
	}
	p.Add(l)
	p.Legend.Add("intervals", l)

	s, err := plotter.NewScatter(xys(sx, sz, true))
	if err != nil {
		return fmt.Errorf("plt.Profile: %v", err)
	}
	s.GlyphStyle.Radius = vg.Points(2)
	p.Add(s)
	p.Legend.Add("stations", s)

	p.Add(breakMarker(depth))
	if err := p.Save(8*vg.Inch, 4*vg.Inch, fp); err != nil {
		return fmt.Errorf("plt.Profile: %v", err)
	}
	return nil
}

// SvDistance draws mean volume backscattering strength against signed
// distance from the shelf break, raw and resampled.
func SvDistance(fp string, xb, sv, sx, ssv []float64) error {
	p := plot.New()
	p.Title.Text = "backscatter along transect"
	p.X.Label.Text = "distance from shelf break [km]"
	p.Y.Label.Text = "Sv mean [dB re 1/m]"

	l, err := plotter.NewLine(xys(xb, sv, false))
	if err != nil {
		return fmt.Errorf("plt.SvDistance: %v", err)
	}
	p.Add(l)
	p.Legend.Add("intervals", l)

	s, err := plotter.NewScatter(xys(sx, ssv, false))
	if err != nil {
		return fmt.Errorf("plt.SvDistance: %v", err)
	}
	s.GlyphStyle.Radius = vg.Points(2)
	p.Add(s)
	p.Legend.Add("stations", s)

	if err := p.Save(8*vg.Inch, 4*vg.Inch, fp); err != nil {
		return fmt.Errorf("plt.SvDistance: %v", err)
	}
	return nil
}

// vertical line at x=0 spanning the (negated) depth range
func breakMarker(depth []float64) *plotter.Line {
	zmin, zmax := depth[0], depth[0]
	for _, z := range depth {
		if z < zmin {
			zmin = z
		}
		if z > zmax {
			zmax = z
		}
	}
	l, _ := plotter.NewLine(plotter.XYs{{X: 0., Y: -zmax}, {X: 0., Y: -zmin}})
	l.LineStyle.Width = vg.Points(.5)
	l.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}
	return l
}
