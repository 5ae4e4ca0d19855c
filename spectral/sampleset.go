package spectral

import (
	"fmt"
	"math"
)

// Channel identifies one of the three response channels.
type Channel int

const (
	Red Channel = iota
	Green
	Blue
)

// NumChannels is the number of response channels.
const NumChannels = 3

// Channels lists all channels in index order.
var Channels = [NumChannels]Channel{Red, Green, Blue}

func (c Channel) String() string {
	switch c {
	case Red:
		return "red"
	case Green:
		return "green"
	case Blue:
		return "blue"
	default:
		return fmt.Sprintf("Channel(%d)", int(c))
	}
}

// RGB holds one response value per channel.
type RGB [NumChannels]float64

// MinSamples is the smallest measurement the resampler accepts.
const MinSamples = 4

// SampleSet is an immutable raw measurement: strictly increasing wavelengths
// in nanometres and three index-aligned channel tables.
type SampleSet struct {
	wavelengths []float64
	channels    [NumChannels][]float64
}

// NewSampleSet validates and copies a measurement.
//
// Ordering is checked before length so a short, unordered table reports
// *NonMonotonicWavelengthError.
func NewSampleSet(wavelengths, red, green, blue []float64) (*SampleSet, error) {
	s := &SampleSet{
		wavelengths: clone(wavelengths),
		channels:    [NumChannels][]float64{clone(red), clone(green), clone(blue)},
	}
	if err := s.validate(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *SampleSet) validate() error {
	n := len(s.wavelengths)
	for _, c := range Channels {
		if len(s.channels[c]) != n {
			return fmt.Errorf("%w: %s has %d values, wavelengths %d",
				ErrLengthMismatch, c, len(s.channels[c]), n)
		}
	}

	for i, w := range s.wavelengths {
		if !isFinite(w) {
			return fmt.Errorf("%w: wavelength[%d] = %g", ErrNonFinite, i, w)
		}
		for _, c := range Channels {
			if v := s.channels[c][i]; !isFinite(v) {
				return fmt.Errorf("%w: %s[%d] = %g", ErrNonFinite, c, i, v)
			}
		}
	}

	if err := checkIncreasing(s.wavelengths); err != nil {
		return err
	}
	for _, c := range Channels {
		if len(s.channels[c]) < MinSamples {
			return &InsufficientSamplesError{Channel: c, Got: len(s.channels[c]), Min: MinSamples}
		}
	}
	return nil
}

func checkIncreasing(ws []float64) error {
	for i := 1; i < len(ws); i++ {
		if !(ws[i] > ws[i-1]) {
			return &NonMonotonicWavelengthError{Index: i, Prev: ws[i-1], Value: ws[i]}
		}
	}
	return nil
}

// Len returns the number of samples.
func (s *SampleSet) Len() int { return len(s.wavelengths) }

// Wavelengths returns a copy of the wavelength table.
func (s *SampleSet) Wavelengths() []float64 { return clone(s.wavelengths) }

// Channel returns a copy of one channel table.
func (s *SampleSet) Channel(c Channel) []float64 { return clone(s.channels[c]) }

// At returns the wavelength and channel values of sample i.
func (s *SampleSet) At(i int) (float64, RGB) {
	return s.wavelengths[i], RGB{s.channels[Red][i], s.channels[Green][i], s.channels[Blue][i]}
}

// Range returns the first and last measured wavelength.
func (s *SampleSet) Range() (lo, hi float64) {
	return s.wavelengths[0], s.wavelengths[len(s.wavelengths)-1]
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func clone(s []float64) []float64 {
	out := make([]float64, len(s))
	copy(out, s)
	return out
}
