package render

import (
	"bytes"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgsvg"

	"github.com/fluxcad/tokamak"
)

// ProfileCurve is one closed cross-section outline to plot.
type ProfileCurve struct {
	Name   string
	Points tokamak.Profile
	// Color is RGBA in [0,1]. A zero value plots black.
	Color [4]float64
}

// ProfileSVG plots the poloidal cross-sections as closed outlines in an SVG
// at path. Curved connections are drawn between their control points only;
// the plot is a build sanity check, not export geometry.
func ProfileSVG(path, title string, curves []ProfileCurve) error {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "R (cm)"
	p.Y.Label.Text = "Z (cm)"
	p.Add(plotter.NewGrid())

	for _, curve := range curves {
		if len(curve.Points) == 0 {
			continue
		}
		xys := make(plotter.XYs, 0, len(curve.Points)+1)
		for _, pt := range curve.Points {
			xys = append(xys, plotter.XY{X: pt.X, Y: pt.Z})
		}
		// Close the outline back onto its first point.
		xys = append(xys, plotter.XY{X: curve.Points[0].X, Y: curve.Points[0].Z})

		line, err := plotter.NewLine(xys)
		if err != nil {
			return err
		}
		line.Color = rgba(curve.Color)
		p.Add(line)
		if curve.Name != "" {
			p.Legend.Add(curve.Name, line)
		}
	}

	c := vgsvg.New(6*vg.Inch, 8*vg.Inch)
	p.Draw(draw.New(c))
	var buf bytes.Buffer
	if _, err := c.WriteTo(&buf); err != nil {
		return err
	}
	return writeFileAtomic(path, buf.Bytes())
}

func rgba(c [4]float64) color.Color {
	if c == ([4]float64{}) {
		return color.Black
	}
	return color.NRGBA{
		R: uint8(c[0] * 255),
		G: uint8(c[1] * 255),
		B: uint8(c[2] * 255),
		A: uint8(c[3] * 255),
	}
}
