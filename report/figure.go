// Package report turns results files into figures, summaries and
// spreadsheets.
package report

import (
	"fmt"
	"image/color"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// Curve is one model's quality curve.
type Curve struct {
	Model  string
	Points XYs
}

// FigureOptions controls CurveFigure.
type FigureOptions struct {
	Width, Height vg.Length
	// Normalize rescales each curve's SSIM to [0, 1] before plotting.
	Normalize bool
	// RegressionOrder is the polynomial order fitted through all points;
	// negative disables the fit.
	RegressionOrder int
}

func DefaultFigureOptions() FigureOptions {
	return FigureOptions{
		Width:           6 * vg.Inch,
		Height:          5 * vg.Inch,
		Normalize:       true,
		RegressionOrder: 2,
	}
}

// CurveFigure plots every curve against the reduction ratio with a
// regression through the pooled points.
func CurveFigure(curves []Curve, opts FigureOptions) (*plot.Plot, error) {
	p := plot.New()
	p.X.Label.Text = "overall reduction ratio (%)"
	p.Y.Label.Text = "perceived visual quality (SSIM)"
	p.X.Tick.Marker = percentTicks{}
	p.Legend.Top = false
	p.Legend.Left = true
	p.Add(plotter.NewGrid())

	var pooled XYs
	for i, c := range curves {
		pts := c.Points
		if opts.Normalize {
			pts = pts.NormalizeY()
		}
		pooled = append(pooled, pts...)
		if pts.Len() == 0 {
			continue
		}
		l, err := plotter.NewLine(pts)
		if err != nil {
			return nil, fmt.Errorf("report: %s: %v", c.Model, err)
		}
		l.Color = plotutil.Color(i)
		l.Dashes = plotutil.Dashes(i)
		l.Width = vg.Points(1.5)
		p.Add(l)
		p.Legend.Add(c.Model, l)
	}

	if opts.RegressionOrder >= 0 && pooled.Len() > opts.RegressionOrder {
		poly, err := FitPolynomial(pooled, opts.RegressionOrder)
		if err != nil {
			return nil, err
		}
		f := plotter.NewFunction(poly.At)
		f.Color = color.RGBA{R: 220, A: 255}
		f.Width = vg.Points(2)
		p.Add(f)
		p.Legend.Add("regression", f)
	}
	return p, nil
}

// SaveCurveFigure renders the figure to path. The format follows the file
// extension (png, svg, pdf, eps, jpg, tif).
func SaveCurveFigure(path string, curves []Curve, opts FigureOptions) error {
	p, err := CurveFigure(curves, opts)
	if err != nil {
		return err
	}
	return p.Save(opts.Width, opts.Height, path)
}

// percentTicks labels ratios in [0, 1] as percentages.
type percentTicks struct{}

func (percentTicks) Ticks(min, max float64) []plot.Tick {
	ticks := plot.DefaultTicks{}.Ticks(min, max)
	for i, t := range ticks {
		if t.Label == "" {
			continue
		}
		ticks[i].Label = strconv.FormatFloat(t.Value*100, 'f', -1, 64)
	}
	return ticks
}
