// Package curve computes summary statistics of a sampled spectral response
// curve: peak, area, centroid, spread, full width at half maximum and a
// ripple figure that flags oscillating fits.
//
// Wavelength tables must be increasing and index-aligned with the values.
package curve
