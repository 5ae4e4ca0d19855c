package spectral

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-specsens/internal/testutil"
)

func mustSampleSet(t testing.TB, w, r, g, b []float64) *SampleSet {
	t.Helper()
	s, err := NewSampleSet(w, r, g, b)
	if err != nil {
		t.Fatalf("NewSampleSet() error = %v", err)
	}
	return s
}

func TestNormalizeBound(t *testing.T) {
	w, r, g, b := testutil.Camera()
	n, err := Normalize(mustSampleSet(t, w, r, g, b))
	if err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}

	largest := math.Inf(-1)
	for _, c := range Channels {
		for _, v := range n.Channel(c) {
			largest = math.Max(largest, v)
		}
	}
	testutil.RequireNearlyEqual(t, "max", largest, 1, 1e-12)
	if n.PeakChannel() != Green {
		t.Fatalf("PeakChannel() = %v, want green", n.PeakChannel())
	}
}

func TestNormalizeSingleGlobalScale(t *testing.T) {
	s := mustSampleSet(t, testutil.ScenarioWavelengths, testutil.ScenarioRed, testutil.ScenarioGreen, testutil.ScenarioBlue)
	n, err := Normalize(s)
	if err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}

	testutil.RequireNearlyEqual(t, "scale", n.Scale(), 1.25, 1e-12)
	for _, c := range Channels {
		raw := s.Channel(c)
		got := n.Channel(c)
		for i := range raw {
			testutil.RequireNearlyEqual(t, c.String(), got[i], raw[i]*1.25, 1e-12)
		}
	}
	// Red alone reaches 1.0; the others stay below.
	testutil.RequireNearlyEqual(t, "red peak", n.Channel(Red)[2], 1, 1e-12)
	if g := n.Channel(Green)[1]; g >= 1 {
		t.Fatalf("green peak = %v, want < 1", g)
	}
	if n.PeakChannel() != Red {
		t.Fatalf("PeakChannel() = %v, want red", n.PeakChannel())
	}
}

func TestNormalizePeakTieGoesToLowestChannel(t *testing.T) {
	w := []float64{400, 500, 600, 700}
	s := mustSampleSet(t, w, []float64{0, 2, 1, 0}, []float64{0, 1, 2, 0}, []float64{2, 0, 0, 0})
	n, err := Normalize(s)
	if err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}
	if n.PeakChannel() != Red {
		t.Fatalf("PeakChannel() = %v, want red", n.PeakChannel())
	}
}

func TestNormalizeDegenerate(t *testing.T) {
	w := []float64{400, 500, 600, 700}
	tests := []struct {
		name    string
		r, g, b []float64
	}{
		{name: "zero", r: []float64{0, 0, 0, 0}, g: []float64{0, 0, 0, 0}, b: []float64{0, 0, 0, 0}},
		{name: "negative", r: []float64{-1, -2, -3, -4}, g: []float64{-1, 0, -1, -1}, b: []float64{-5, -5, -5, -5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Normalize(mustSampleSet(t, w, tt.r, tt.g, tt.b))
			var de *DegenerateInputError
			if !errors.As(err, &de) {
				t.Fatalf("Normalize() error = %v, want DegenerateInputError", err)
			}
		})
	}
}

func TestNormalizeNil(t *testing.T) {
	if _, err := Normalize(nil); !errors.Is(err, ErrNilInput) {
		t.Fatalf("Normalize(nil) error = %v", err)
	}
}

func TestNormalizeDoesNotMutateInput(t *testing.T) {
	s := mustSampleSet(t, testutil.ScenarioWavelengths, testutil.ScenarioRed, testutil.ScenarioGreen, testutil.ScenarioBlue)
	if _, err := Normalize(s); err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, s.Channel(Red), testutil.ScenarioRed, 0)
}
