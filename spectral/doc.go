// Package spectral resamples sparse per-channel spectral sensitivity
// measurements onto the fixed 380-780 nm catalog grid.
//
// The processing chain is:
//
//	SampleSet  -> Normalize -> NormalizedSet -> Resample -> ResampledCurve
//
// [NewSampleSet] validates a raw measurement (aligned lengths, finite values,
// strictly increasing wavelengths, at least [MinSamples] points).
// [Normalize] divides all three channels by their common peak so the
// strongest channel reaches 1.0 while channel proportions are kept.
// [Resample] fits one interpolant per channel and evaluates it on [StandardGrid];
// grid points outside the measured range get half the nearest endpoint value.
//
// All stages are pure and deterministic.
package spectral
