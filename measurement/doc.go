// Package measurement reads spectral sensitivity measurements.
//
// The input is CSV: a header row, then one row per sample with
// wavelength (nm), red, green and blue response. Extra columns are ignored.
package measurement
