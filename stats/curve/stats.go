package curve

import (
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"
)

// DefaultRippleCutoff is the fraction of the Nyquist bin above which
// energy counts as ripple.
const DefaultRippleCutoff = 0.25

// Stats holds statistics of one response curve.
type Stats struct {
	Length         int
	Peak           float64
	PeakWavelength float64 // nm
	Min            float64
	Area           float64 // trapezoidal integral, response * nm
	Centroid       float64 // nm
	Spread         float64 // nm, standard deviation around the centroid
	FWHM           float64 // nm
	Ripple         float64 // 0..1
}

// Calculate computes all statistics. Mismatched or empty inputs yield a
// zero Stats.
func Calculate(wavelengths, values []float64) Stats {
	n := len(values)
	if n == 0 || len(wavelengths) != n {
		return Stats{}
	}

	st := Stats{Length: n}
	st.Peak, st.PeakWavelength = Peak(wavelengths, values)
	st.Min = values[0]
	for _, v := range values[1:] {
		st.Min = math.Min(st.Min, v)
	}
	st.Area = Area(wavelengths, values)

	sum := 0.0
	for _, v := range values {
		sum += v
	}
	st.Centroid = centroid(wavelengths, values, sum)
	st.Spread = spread(wavelengths, values, st.Centroid, sum)
	st.FWHM = FWHM(wavelengths, values)

	ripple, err := Ripple(values, DefaultRippleCutoff)
	if err == nil {
		st.Ripple = ripple
	}
	return st
}

// Peak returns the largest value and the wavelength where it occurs. The
// first occurrence wins.
func Peak(wavelengths, values []float64) (peak, wavelength float64) {
	if len(values) == 0 {
		return 0, 0
	}
	idx := 0
	for i, v := range values {
		if v > values[idx] {
			idx = i
		}
	}
	return values[idx], wavelengths[idx]
}

// Area integrates the curve over wavelength with the trapezoidal rule.
func Area(wavelengths, values []float64) float64 {
	area := 0.0
	for i := 1; i < len(values); i++ {
		area += 0.5 * (values[i] + values[i-1]) * (wavelengths[i] - wavelengths[i-1])
	}
	return area
}

// Centroid returns the response-weighted mean wavelength.
//
//	centroid = sum(w_i * v_i) / sum(v_i)
func Centroid(wavelengths, values []float64) float64 {
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return centroid(wavelengths, values, sum)
}

func centroid(wavelengths, values []float64, sum float64) float64 {
	if len(values) < 2 || sum == 0 {
		return 0
	}
	weighted := 0.0
	for i, v := range values {
		weighted += wavelengths[i] * v
	}
	return weighted / sum
}

func spread(wavelengths, values []float64, cent, sum float64) float64 {
	if len(values) < 2 || sum == 0 {
		return 0
	}
	sq := 0.0
	for i, v := range values {
		d := wavelengths[i] - cent
		sq += d * d * v
	}
	if sq < 0 {
		return 0
	}
	return math.Sqrt(sq / sum)
}

// FWHM returns the width of the curve at half its peak, locating both
// crossings by linear interpolation between samples. A side that never drops
// below half the peak extends to the table edge.
func FWHM(wavelengths, values []float64) float64 {
	n := len(values)
	if n < 2 {
		return 0
	}

	peakIdx := 0
	for i, v := range values {
		if v > values[peakIdx] {
			peakIdx = i
		}
	}
	peak := values[peakIdx]
	if peak <= 0 {
		return 0
	}
	half := peak / 2

	lower := wavelengths[0]
	for i := peakIdx; i >= 1; i-- {
		if values[i-1] <= half && values[i] > half {
			lower = crossing(wavelengths[i-1], wavelengths[i], values[i-1], values[i], half)
			break
		}
	}

	upper := wavelengths[n-1]
	for i := peakIdx; i < n-1; i++ {
		if values[i+1] <= half && values[i] > half {
			upper = crossing(wavelengths[i], wavelengths[i+1], values[i], values[i+1], half)
			break
		}
	}

	if w := upper - lower; w > 0 {
		return w
	}
	return 0
}

// crossing linearly interpolates the wavelength where the curve meets level.
func crossing(wLow, wHigh, vLow, vHigh, level float64) float64 {
	denom := vHigh - vLow
	if denom == 0 {
		return (wLow + wHigh) / 2
	}
	t := (level - vLow) / denom
	return wLow + t*(wHigh-wLow)
}

// Ripple returns the fraction of the curve's spectral energy (DC excluded)
// that lies above cutoff*Nyquist. The curve is detrended between its end
// points and zero-padded to a power of two before the FFT, so a smooth
// response scores near 0 and a sample-to-sample oscillation near 1.
// cutoff outside (0, 1) selects DefaultRippleCutoff.
func Ripple(values []float64, cutoff float64) (float64, error) {
	n := len(values)
	if n < 3 {
		return 0, nil
	}
	if cutoff <= 0 || cutoff >= 1 {
		cutoff = DefaultRippleCutoff
	}

	size := nextPowerOf2(n)
	in := make([]complex128, size)
	first, last := values[0], values[n-1]
	for i, v := range values {
		trend := first + (last-first)*float64(i)/float64(n-1)
		in[i] = complex(v-trend, 0)
	}

	plan, err := algofft.NewPlan64(size)
	if err != nil {
		return 0, err
	}
	out := make([]complex128, size)
	if err := plan.Forward(out, in); err != nil {
		return 0, err
	}

	bins := size/2 + 1
	re := make([]float64, bins)
	im := make([]float64, bins)
	for i := 0; i < bins; i++ {
		re[i] = real(out[i])
		im[i] = imag(out[i])
	}
	power := make([]float64, bins)
	vecmath.Power(power, re, im)

	start := int(math.Ceil(cutoff * float64(bins-1)))
	total, high := 0.0, 0.0
	for i := 1; i < bins; i++ {
		total += power[i]
		if i >= start {
			high += power[i]
		}
	}
	if total == 0 {
		return 0, nil
	}
	return high / total, nil
}

func nextPowerOf2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}
