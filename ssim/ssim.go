// Package ssim computes the structural similarity index between two RGB
// rasters.
//
// The metric follows the usual mean-SSIM definition: a 7x7 uniform window,
// K1 = 0.01, K2 = 0.03, sample (N-1) covariance, averaged over every
// position where the window fits inside the image and then over the three
// colour channels.
package ssim

import (
	"fmt"

	"github.com/netisu/meshssim"
	"gonum.org/v1/gonum/floats"
)

// Options tunes Compare. The zero value is not valid; start from Defaults.
type Options struct {
	// WindowSize is the odd side length of the square averaging window.
	WindowSize int
	K1, K2     float64
	// DataRange is the dynamic range of pixel values. Zero means use the
	// spread between the smallest and largest value over both images.
	DataRange float64
}

func Defaults() Options {
	return Options{WindowSize: 7, K1: 0.01, K2: 0.03}
}

// Compare returns the mean SSIM of a and b over the RGB channels using the
// default options.
func Compare(a, b *meshssim.Raster) (float64, error) {
	return CompareWith(a, b, Defaults())
}

// CompareWith is Compare with explicit options. The result is symmetric in
// a and b.
func CompareWith(a, b *meshssim.Raster, opts Options) (float64, error) {
	if a.Width != b.Width || a.Height != b.Height {
		return 0, &meshssim.RenderMismatchError{
			Width1: a.Width, Height1: a.Height,
			Width2: b.Width, Height2: b.Height,
		}
	}
	win := opts.WindowSize
	if win < 2 || win%2 == 0 {
		return 0, fmt.Errorf("ssim: window size must be odd and at least 3, got %d", win)
	}
	if a.Width < win || a.Height < win {
		return 0, fmt.Errorf("ssim: %dx%d image is smaller than the %dx%d window", a.Width, a.Height, win, win)
	}

	dataRange := opts.DataRange
	if dataRange == 0 {
		dataRange = jointRange(a.Pix, b.Pix)
	}
	if dataRange == 0 {
		// Both images hold the same single value everywhere.
		return 1, nil
	}

	var total float64
	for c := 0; c < 3; c++ {
		total += channel(a.Channel(c), b.Channel(c), a.Width, a.Height, win, opts.K1*dataRange, opts.K2*dataRange)
	}
	return total / 3, nil
}

func jointRange(a, b []float64) float64 {
	hi := floats.Max(a)
	if m := floats.Max(b); m > hi {
		hi = m
	}
	lo := floats.Min(a)
	if m := floats.Min(b); m < lo {
		lo = m
	}
	return hi - lo
}

// channel returns the mean SSIM of one channel pair. c1 and c2 are K1*L and
// K2*L before squaring.
func channel(x, y []float64, w, h, win int, c1, c2 float64) float64 {
	c1 *= c1
	c2 *= c2

	xy := make([]float64, len(x))
	xx := make([]float64, len(x))
	yy := make([]float64, len(x))
	for i := range x {
		xy[i] = x[i] * y[i]
		xx[i] = x[i] * x[i]
		yy[i] = y[i] * y[i]
	}
	sx := newSummedArea(x, w, h)
	sy := newSummedArea(y, w, h)
	sxx := newSummedArea(xx, w, h)
	syy := newSummedArea(yy, w, h)
	sxy := newSummedArea(xy, w, h)

	np := float64(win * win)
	covNorm := np / (np - 1)
	pad := win / 2

	scores := make([]float64, 0, (w-2*pad)*(h-2*pad))
	for cy := pad; cy < h-pad; cy++ {
		y0, y1 := cy-pad, cy+pad+1
		for cx := pad; cx < w-pad; cx++ {
			x0, x1 := cx-pad, cx+pad+1
			ux := sx.sum(x0, y0, x1, y1) / np
			uy := sy.sum(x0, y0, x1, y1) / np
			uxx := sxx.sum(x0, y0, x1, y1) / np
			uyy := syy.sum(x0, y0, x1, y1) / np
			uxy := sxy.sum(x0, y0, x1, y1) / np

			vx := covNorm * (uxx - ux*ux)
			vy := covNorm * (uyy - uy*uy)
			vxy := covNorm * (uxy - ux*uy)

			a1 := 2*ux*uy + c1
			a2 := 2*vxy + c2
			b1 := ux*ux + uy*uy + c1
			b2 := vx + vy + c2
			scores = append(scores, (a1*a2)/(b1*b2))
		}
	}
	return floats.Sum(scores) / float64(len(scores))
}

// summedArea is an integral image with a zero first row and column.
type summedArea struct {
	stride int
	data   []float64
}

func newSummedArea(v []float64, w, h int) *summedArea {
	s := &summedArea{stride: w + 1, data: make([]float64, (w+1)*(h+1))}
	for y := 0; y < h; y++ {
		var row float64
		for x := 0; x < w; x++ {
			row += v[y*w+x]
			s.data[(y+1)*s.stride+x+1] = s.data[y*s.stride+x+1] + row
		}
	}
	return s
}

// sum adds the values in [x0, x1) x [y0, y1).
func (s *summedArea) sum(x0, y0, x1, y1 int) float64 {
	return s.data[y1*s.stride+x1] - s.data[y0*s.stride+x1] - s.data[y1*s.stride+x0] + s.data[y0*s.stride+x0]
}
