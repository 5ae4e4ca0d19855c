package interp

import (
	"fmt"
	"sort"

	"github.com/cwbudde/algo-specsens/internal/linsolve"
)

const quadDegree = 2

// QuadraticSpline is an interpolating quadratic B-spline.
//
// Knots are placed at the midpoints between samples, skipping the first and
// last midpoint, with the end knots repeated degree+1 times:
//
//	x0 x0 x0 (x1+x2)/2 ... (x[n-3]+x[n-2])/2 x[n-1] x[n-1] x[n-1]
//
// The coefficients solve the collocation system s(xs[i]) = ys[i], so the
// spline passes through every sample and is continuously differentiable.
type QuadraticSpline struct {
	knots  []float64
	coeffs []float64
}

// NewQuadraticSpline fits a quadratic spline through (xs[i], ys[i]).
// At least three points are required.
func NewQuadraticSpline(xs, ys []float64) (*QuadraticSpline, error) {
	if err := validateTable(xs, ys, MethodQuadratic.MinPoints()); err != nil {
		return nil, err
	}

	n := len(xs)
	sp := &QuadraticSpline{knots: quadraticKnots(xs)}

	a := make([][]float64, n)
	var basis [quadDegree + 1]float64
	for i, x := range xs {
		a[i] = make([]float64, n)
		l := sp.span(x, n)
		sp.basis(l, x, &basis)
		for r, v := range basis {
			a[i][l-quadDegree+r] = v
		}
	}

	coeffs, err := linsolve.Solve(a, ys)
	if err != nil {
		return nil, fmt.Errorf("interp: quadratic collocation: %w", err)
	}
	sp.coeffs = coeffs
	return sp, nil
}

func quadraticKnots(xs []float64) []float64 {
	n := len(xs)
	t := make([]float64, 0, n+quadDegree+1)
	for i := 0; i <= quadDegree; i++ {
		t = append(t, xs[0])
	}
	for i := 1; i < n-2; i++ {
		t = append(t, (xs[i]+xs[i+1])/2)
	}
	for i := 0; i <= quadDegree; i++ {
		t = append(t, xs[n-1])
	}
	return t
}

// span returns l such that knots[l] <= x < knots[l+1], with the last
// non-empty span used for x at the right end.
func (sp *QuadraticSpline) span(x float64, n int) int {
	if x >= sp.knots[n] {
		return n - 1
	}
	i := sort.Search(n-quadDegree, func(i int) bool {
		return sp.knots[quadDegree+1+i] > x
	})
	return quadDegree + i
}

// basis evaluates the non-zero basis functions N[l-2..l] at x (Cox-de Boor).
func (sp *QuadraticSpline) basis(l int, x float64, out *[quadDegree + 1]float64) {
	var left, right [quadDegree + 1]float64
	t := sp.knots

	out[0] = 1
	for j := 1; j <= quadDegree; j++ {
		left[j] = x - t[l+1-j]
		right[j] = t[l+j] - x
		saved := 0.0
		for r := 0; r < j; r++ {
			temp := out[r] / (right[r+1] + left[j-r])
			out[r] = saved + right[r+1]*temp
			saved = left[j-r] * temp
		}
		out[j] = saved
	}
}

// Eval returns the spline value at x, clamping x to the sample domain.
func (sp *QuadraticSpline) Eval(x float64) float64 {
	lo, hi := sp.Domain()
	if x < lo {
		x = lo
	} else if x > hi {
		x = hi
	}

	n := len(sp.coeffs)
	l := sp.span(x, n)
	var basis [quadDegree + 1]float64
	sp.basis(l, x, &basis)

	sum := 0.0
	for r, v := range basis {
		sum += v * sp.coeffs[l-quadDegree+r]
	}
	return sum
}

// EvalInto evaluates the spline at every xs[i] into dst and returns dst.
// dst is allocated when it is shorter than xs.
func (sp *QuadraticSpline) EvalInto(dst, xs []float64) []float64 {
	if len(dst) < len(xs) {
		dst = make([]float64, len(xs))
	}
	dst = dst[:len(xs)]
	for i, x := range xs {
		dst[i] = sp.Eval(x)
	}
	return dst
}

// Domain returns the first and last sample abscissa.
func (sp *QuadraticSpline) Domain() (lo, hi float64) {
	return sp.knots[0], sp.knots[len(sp.knots)-1]
}

// Knots returns a copy of the knot vector.
func (sp *QuadraticSpline) Knots() []float64 {
	return clone(sp.knots)
}
