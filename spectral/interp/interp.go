package interp

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

var (
	// ErrLengthMismatch indicates xs and ys differ in length.
	ErrLengthMismatch = errors.New("interp: xs and ys must have the same length")
	// ErrTooFewPoints indicates the table is too short for the method.
	ErrTooFewPoints = errors.New("interp: too few points")
	// ErrNotIncreasing indicates xs is not strictly increasing.
	ErrNotIncreasing = errors.New("interp: xs must be strictly increasing")
	// ErrNonFinite indicates a NaN or infinite entry in the table.
	ErrNonFinite = errors.New("interp: non-finite value")
	// ErrUnknownMethod indicates an unrecognised method name.
	ErrUnknownMethod = errors.New("interp: unknown method")
)

// Method selects an interpolation algorithm.
type Method int

const (
	// MethodQuadratic is a C1 quadratic spline through all samples.
	MethodQuadratic Method = iota
	// MethodLinear joins neighbouring samples with straight segments.
	MethodLinear
)

// String returns the lower-case name used in configuration files.
func (m Method) String() string {
	switch m {
	case MethodQuadratic:
		return "quadratic"
	case MethodLinear:
		return "linear"
	default:
		return fmt.Sprintf("Method(%d)", int(m))
	}
}

// ParseMethod parses a method name as produced by [Method.String].
// The empty string selects [MethodQuadratic].
func ParseMethod(s string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "quadratic":
		return MethodQuadratic, nil
	case "linear":
		return MethodLinear, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownMethod, s)
	}
}

// MinPoints returns the smallest table length m can fit.
func (m Method) MinPoints() int {
	if m == MethodQuadratic {
		return 3
	}
	return 2
}

// Interpolant evaluates a fitted curve.
type Interpolant interface {
	// Eval returns the curve value at x. x outside Domain is clamped.
	Eval(x float64) float64
	// Domain returns the first and last sample abscissa.
	Domain() (lo, hi float64)
}

// New fits an interpolant of the given method through (xs[i], ys[i]).
// The tables are copied.
func New(m Method, xs, ys []float64) (Interpolant, error) {
	switch m {
	case MethodQuadratic:
		return NewQuadraticSpline(xs, ys)
	case MethodLinear:
		return NewLinear(xs, ys)
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownMethod, m)
	}
}

func validateTable(xs, ys []float64, minPoints int) error {
	if len(xs) != len(ys) {
		return fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(xs), len(ys))
	}
	if len(xs) < minPoints {
		return fmt.Errorf("%w: got %d, need %d", ErrTooFewPoints, len(xs), minPoints)
	}
	for i := range xs {
		if !isFinite(xs[i]) || !isFinite(ys[i]) {
			return fmt.Errorf("%w at index %d", ErrNonFinite, i)
		}
		if i > 0 && xs[i] <= xs[i-1] {
			return fmt.Errorf("%w: xs[%d]=%g <= xs[%d]=%g", ErrNotIncreasing, i, xs[i], i-1, xs[i-1])
		}
	}
	return nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func clone(s []float64) []float64 {
	out := make([]float64, len(s))
	copy(out, s)
	return out
}
