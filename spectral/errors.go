package spectral

import (
	"errors"
	"fmt"
)

var (
	// ErrLengthMismatch indicates channel tables that are not index-aligned
	// with the wavelength table.
	ErrLengthMismatch = errors.New("spectral: channel length does not match wavelengths")
	// ErrNonFinite indicates a NaN or infinite sample.
	ErrNonFinite = errors.New("spectral: non-finite sample")
	// ErrNilInput indicates a nil sample set.
	ErrNilInput = errors.New("spectral: nil input")
)

// DegenerateInputError reports a measurement whose channel maxima are all
// zero or negative, so no normalisation scale exists.
type DegenerateInputError struct {
	Max float64
}

func (e *DegenerateInputError) Error() string {
	return fmt.Sprintf("spectral: degenerate input: largest channel maximum is %g", e.Max)
}

// InsufficientSamplesError reports a channel with too few samples to fit.
type InsufficientSamplesError struct {
	Channel Channel
	Got     int
	Min     int
}

func (e *InsufficientSamplesError) Error() string {
	return fmt.Sprintf("spectral: insufficient samples in %s channel: got %d, need at least %d",
		e.Channel, e.Got, e.Min)
}

// NonMonotonicWavelengthError reports the first wavelength that does not
// exceed its predecessor.
type NonMonotonicWavelengthError struct {
	Index int
	Prev  float64
	Value float64
}

func (e *NonMonotonicWavelengthError) Error() string {
	return fmt.Sprintf("spectral: wavelengths not strictly increasing at index %d: %g follows %g",
		e.Index, e.Value, e.Prev)
}
