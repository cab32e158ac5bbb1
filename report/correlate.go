package report

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Stats summarises one quality curve.
type Stats struct {
	Model            string
	N                int
	// Pearson is the correlation between reduction ratio and SSIM.
	Pearson          float64
	// Kendall is the rank correlation (tau-a) between the same columns.
	Kendall          float64
	MeanSSIM, StdDev float64
	MinSSIM, MaxSSIM float64
}

// Summarize computes Stats with gonum/stat. Curves with fewer than two
// points report NaN for the correlation and deviation.
func Summarize(model string, xys XYs) Stats {
	xs, ys := xys.Xs(), xys.Ys()
	s := Stats{Model: model, N: len(ys)}
	if len(ys) == 0 {
		return s
	}
	s.MeanSSIM, s.StdDev = stat.MeanStdDev(ys, nil)
	s.Pearson = stat.Correlation(xs, ys, nil)
	s.Kendall = stat.Kendall(xs, ys, nil)
	s.MinSSIM, s.MaxSSIM = floats.Min(ys), floats.Max(ys)
	return s
}
