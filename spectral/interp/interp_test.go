package interp

import (
	"errors"
	"math"
	"testing"
)

var (
	irregularXs = []float64{380, 395, 420, 450, 500, 540, 610, 660, 700, 780}
	irregularYs = []float64{0.01, 0.05, 0.2, 0.45, 0.9, 1.0, 0.6, 0.3, 0.08, 0.0}
)

func TestQuadraticPassesThroughSamples(t *testing.T) {
	sp, err := NewQuadraticSpline(irregularXs, irregularYs)
	if err != nil {
		t.Fatalf("NewQuadraticSpline() error = %v", err)
	}
	for i, x := range irregularXs {
		if got := sp.Eval(x); math.Abs(got-irregularYs[i]) > 1e-12 {
			t.Fatalf("Eval(%v) = %v, want %v", x, got, irregularYs[i])
		}
	}
}

func TestQuadraticReproducesQuadraticPolynomial(t *testing.T) {
	poly := func(x float64) float64 { return 0.5*x*x - 3*x + 2 }
	xs := []float64{0, 0.7, 2, 2.5, 4, 7}
	ys := make([]float64, len(xs))
	for i, x := range xs {
		ys[i] = poly(x)
	}

	sp, err := NewQuadraticSpline(xs, ys)
	if err != nil {
		t.Fatalf("NewQuadraticSpline() error = %v", err)
	}
	for x := 0.0; x <= 7; x += 0.125 {
		if got, want := sp.Eval(x), poly(x); math.Abs(got-want) > 1e-9 {
			t.Fatalf("Eval(%v) = %v, want %v", x, got, want)
		}
	}
}

func TestQuadraticContinuousSlopeAtKnots(t *testing.T) {
	sp, err := NewQuadraticSpline(irregularXs, irregularYs)
	if err != nil {
		t.Fatalf("NewQuadraticSpline() error = %v", err)
	}

	knots := sp.Knots()
	const h = 1e-6
	for _, k := range knots[quadDegree+1 : len(knots)-quadDegree-1] {
		left := (sp.Eval(k) - sp.Eval(k-h)) / h
		right := (sp.Eval(k+h) - sp.Eval(k)) / h
		if math.Abs(left-right) > 1e-6 {
			t.Fatalf("slope jump at knot %v: left %v right %v", k, left, right)
		}
	}
}

func TestQuadraticKnotLayout(t *testing.T) {
	got := quadraticKnots([]float64{400, 500, 600, 700})
	want := []float64{400, 400, 400, 550, 700, 700, 700}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("knots[%d] = %v, want %v", i, got[i], want[i])
		}
	}

	if got := quadraticKnots([]float64{1, 2, 3}); len(got) != 6 {
		t.Fatalf("three-point knot count = %d, want 6", len(got))
	}
}

func TestQuadraticEvalClampsToDomain(t *testing.T) {
	sp, err := NewQuadraticSpline(irregularXs, irregularYs)
	if err != nil {
		t.Fatalf("NewQuadraticSpline() error = %v", err)
	}
	lo, hi := sp.Domain()
	if lo != 380 || hi != 780 {
		t.Fatalf("Domain() = (%v, %v), want (380, 780)", lo, hi)
	}
	if got := sp.Eval(100); got != sp.Eval(lo) {
		t.Fatalf("Eval below domain = %v, want %v", got, sp.Eval(lo))
	}
	if got := sp.Eval(900); got != sp.Eval(hi) {
		t.Fatalf("Eval above domain = %v, want %v", got, sp.Eval(hi))
	}
}

func TestQuadraticEvalInto(t *testing.T) {
	sp, err := NewQuadraticSpline(irregularXs, irregularYs)
	if err != nil {
		t.Fatalf("NewQuadraticSpline() error = %v", err)
	}
	out := sp.EvalInto(nil, irregularXs)
	for i := range out {
		if math.Abs(out[i]-irregularYs[i]) > 1e-12 {
			t.Fatalf("out[%d] = %v, want %v", i, out[i], irregularYs[i])
		}
	}
}

func TestLinear(t *testing.T) {
	l, err := NewLinear([]float64{0, 10, 20}, []float64{0, 1, 3})
	if err != nil {
		t.Fatalf("NewLinear() error = %v", err)
	}

	tests := []struct {
		x, want float64
	}{
		{x: -5, want: 0},
		{x: 0, want: 0},
		{x: 2.5, want: 0.25},
		{x: 10, want: 1},
		{x: 15, want: 2},
		{x: 20, want: 3},
		{x: 25, want: 3},
	}
	for _, tt := range tests {
		if got := l.Eval(tt.x); math.Abs(got-tt.want) > 1e-12 {
			t.Fatalf("Eval(%v) = %v, want %v", tt.x, got, tt.want)
		}
	}
}

func TestNewErrors(t *testing.T) {
	tests := []struct {
		name   string
		method Method
		xs, ys []float64
		want   error
	}{
		{name: "length", method: MethodQuadratic, xs: []float64{1, 2, 3}, ys: []float64{1, 2}, want: ErrLengthMismatch},
		{name: "quadratic too short", method: MethodQuadratic, xs: []float64{1, 2}, ys: []float64{1, 2}, want: ErrTooFewPoints},
		{name: "linear too short", method: MethodLinear, xs: []float64{1}, ys: []float64{1}, want: ErrTooFewPoints},
		{name: "decreasing", method: MethodQuadratic, xs: []float64{1, 3, 2}, ys: []float64{1, 2, 3}, want: ErrNotIncreasing},
		{name: "duplicate", method: MethodLinear, xs: []float64{1, 1}, ys: []float64{1, 2}, want: ErrNotIncreasing},
		{name: "nan", method: MethodLinear, xs: []float64{1, 2}, ys: []float64{math.NaN(), 2}, want: ErrNonFinite},
		{name: "method", method: Method(42), xs: []float64{1, 2, 3}, ys: []float64{1, 2, 3}, want: ErrUnknownMethod},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.method, tt.xs, tt.ys)
			if !errors.Is(err, tt.want) {
				t.Fatalf("New() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestParseMethod(t *testing.T) {
	tests := []struct {
		in   string
		want Method
		err  bool
	}{
		{in: "", want: MethodQuadratic},
		{in: "quadratic", want: MethodQuadratic},
		{in: " Linear ", want: MethodLinear},
		{in: "cubic", err: true},
	}
	for _, tt := range tests {
		got, err := ParseMethod(tt.in)
		if tt.err {
			if !errors.Is(err, ErrUnknownMethod) {
				t.Fatalf("ParseMethod(%q) error = %v, want ErrUnknownMethod", tt.in, err)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Fatalf("ParseMethod(%q) = %v, %v; want %v", tt.in, got, err, tt.want)
		}
		if got.String() != tt.want.String() {
			t.Fatalf("String() = %q", got.String())
		}
	}
}
