package interp

import "sort"

// Linear is a piecewise linear interpolant.
type Linear struct {
	xs, ys []float64
}

// NewLinear fits a piecewise linear interpolant. At least two points are
// required.
func NewLinear(xs, ys []float64) (*Linear, error) {
	if err := validateTable(xs, ys, MethodLinear.MinPoints()); err != nil {
		return nil, err
	}
	return &Linear{xs: clone(xs), ys: clone(ys)}, nil
}

// Eval returns the interpolated value at x.
func (l *Linear) Eval(x float64) float64 {
	n := len(l.xs)
	if x <= l.xs[0] {
		return l.ys[0]
	}
	if x >= l.xs[n-1] {
		return l.ys[n-1]
	}

	i := sort.SearchFloat64s(l.xs, x)
	if l.xs[i] == x {
		return l.ys[i]
	}
	frac := (x - l.xs[i-1]) / (l.xs[i] - l.xs[i-1])
	return l.ys[i-1] + frac*(l.ys[i]-l.ys[i-1])
}

// Domain returns the first and last abscissa.
func (l *Linear) Domain() (lo, hi float64) {
	return l.xs[0], l.xs[len(l.xs)-1]
}
