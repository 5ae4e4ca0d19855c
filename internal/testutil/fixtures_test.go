package testutil

import (
	"math"
	"testing"
)

func TestWavelengthsInclusive(t *testing.T) {
	w := Wavelengths(380, 780, 5)
	if len(w) != 81 {
		t.Fatalf("len = %d, want 81", len(w))
	}
	if w[0] != 380 || w[80] != 780 {
		t.Fatalf("range = [%v, %v], want [380, 780]", w[0], w[80])
	}
}

func TestGaussianPeak(t *testing.T) {
	w := []float64{500, 550, 600}
	g := Gaussian(w, 550, 20, 2)
	if g[1] != 2 {
		t.Fatalf("peak = %v, want 2", g[1])
	}
	if math.Abs(g[0]-g[2]) > 1e-15 {
		t.Fatalf("asymmetric: %v vs %v", g[0], g[2])
	}
}

func TestCameraAligned(t *testing.T) {
	w, r, g, b := Camera()
	if len(r) != len(w) || len(g) != len(w) || len(b) != len(w) {
		t.Fatalf("lengths %d/%d/%d/%d", len(w), len(r), len(g), len(b))
	}
	RequireFinite(t, r)
	RequireFinite(t, g)
	RequireFinite(t, b)
}
