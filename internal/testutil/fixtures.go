// Package testutil holds tolerances and deterministic measurement fixtures
// shared by package tests.
package testutil

import "math"

// Wavelengths returns start, start+step, ... up to and including end.
func Wavelengths(start, end, step float64) []float64 {
	n := int(math.Floor((end-start)/step+1e-9)) + 1
	out := make([]float64, n)
	for i := range out {
		out[i] = start + float64(i)*step
	}
	return out
}

// Gaussian samples peak*exp(-(w-center)^2 / (2 sigma^2)) at each wavelength.
func Gaussian(wavelengths []float64, center, sigma, peak float64) []float64 {
	out := make([]float64, len(wavelengths))
	for i, w := range wavelengths {
		d := (w - center) / sigma
		out[i] = peak * math.Exp(-0.5*d*d)
	}
	return out
}

// Camera returns a camera-like RGB sensitivity measurement sampled every
// 10 nm from 400 to 720 nm, in raw (unnormalised) units.
func Camera() (wavelengths, red, green, blue []float64) {
	wavelengths = Wavelengths(400, 720, 10)
	red = Gaussian(wavelengths, 600, 35, 0.82)
	green = Gaussian(wavelengths, 530, 40, 1.64)
	blue = Gaussian(wavelengths, 460, 30, 1.10)
	return wavelengths, red, green, blue
}

// ScenarioRed etc. are the four-sample measurement used in the documented
// worked example: samples at 400, 500, 600 and 700 nm, red peaking at 0.8.
var (
	ScenarioWavelengths = []float64{400, 500, 600, 700}
	ScenarioRed         = []float64{0.2, 0.5, 0.8, 0.4}
	ScenarioGreen       = []float64{0.1, 0.6, 0.5, 0.2}
	ScenarioBlue        = []float64{0.4, 0.3, 0.1, 0.05}
)
