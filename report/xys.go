package report

import (
	"sort"

	"github.com/netisu/meshssim/curve"
)

// XYs implements the gonum.org/v1/plot/plotter.XYer interface.
type XYs []XY

// XY is an x and y value.
type XY struct{ X, Y float64 }

// Len returns the number of X,Y pairs.
func (xys XYs) Len() int {
	return len(xys)
}

// XY return the x and y values at index i, where i < Len()
func (xys XYs) XY(i int) (float64, float64) {
	return xys[i].X, xys[i].Y
}

// FromComparisons maps reduction ratio to X and SSIM to Y, sorted by X.
func FromComparisons(rows []curve.Comparison) XYs {
	out := make(XYs, len(rows))
	for i, r := range rows {
		out[i] = XY{r.Ratio, r.Score}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].X < out[j].X })
	return out
}

// NormalizeY rescales Y to [0, 1] by its own minimum and maximum. A curve
// with a single Y value maps to all ones.
func (xys XYs) NormalizeY() XYs {
	out := make(XYs, len(xys))
	copy(out, xys)
	if len(out) == 0 {
		return out
	}
	lo, hi := out[0].Y, out[0].Y
	for _, p := range out {
		if p.Y < lo {
			lo = p.Y
		}
		if p.Y > hi {
			hi = p.Y
		}
	}
	for i := range out {
		if hi == lo {
			out[i].Y = 1
			continue
		}
		out[i].Y = (out[i].Y - lo) / (hi - lo)
	}
	return out
}

// Xs and Ys split the pairs into columns.
func (xys XYs) Xs() []float64 {
	out := make([]float64, len(xys))
	for i, p := range xys {
		out[i] = p.X
	}
	return out
}

func (xys XYs) Ys() []float64 {
	out := make([]float64, len(xys))
	for i, p := range xys {
		out[i] = p.Y
	}
	return out
}
