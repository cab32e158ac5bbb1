package report

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Polynomial holds coefficients from the constant term up.
type Polynomial []float64

func (p Polynomial) At(x float64) float64 {
	var y float64
	for i := len(p) - 1; i >= 0; i-- {
		y = y*x + p[i]
	}
	return y
}

// FitPolynomial is the least squares fit of the given order to the points.
func FitPolynomial(xys XYs, order int) (Polynomial, error) {
	n := xys.Len()
	if order < 0 {
		return nil, fmt.Errorf("report: negative polynomial order %d", order)
	}
	if n <= order {
		return nil, fmt.Errorf("report: %d points cannot fit an order %d polynomial", n, order)
	}
	a := mat.NewDense(n, order+1, nil)
	b := mat.NewVecDense(n, nil)
	for i := 0; i < n; i++ {
		x, y := xys.XY(i)
		v := 1.0
		for j := 0; j <= order; j++ {
			a.Set(i, j, v)
			v *= x
		}
		b.SetVec(i, y)
	}
	var coef mat.VecDense
	if err := coef.SolveVec(a, b); err != nil {
		return nil, fmt.Errorf("report: polynomial fit: %v", err)
	}
	p := make(Polynomial, order+1)
	for i := range p {
		p[i] = coef.AtVec(i)
	}
	return p, nil
}

// FitQuadratic is FitPolynomial of order 2.
func FitQuadratic(xys XYs) (Polynomial, error) {
	return FitPolynomial(xys, 2)
}
