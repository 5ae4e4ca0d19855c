package spectral

import "github.com/cwbudde/algo-vecmath"

// NormalizedSet is a SampleSet rescaled by a single global factor so that
// the strongest channel peaks at 1.0.
type NormalizedSet struct {
	SampleSet
	scale float64
	peak  Channel
}

// Scale returns the factor applied to every channel.
func (n *NormalizedSet) Scale() float64 { return n.scale }

// PeakChannel returns the channel that reaches 1.0. Ties go to the lowest
// channel index.
func (n *NormalizedSet) PeakChannel() Channel { return n.peak }

// Normalize divides every channel by the largest per-channel maximum.
//
// One scale is used for all channels, so a channel that peaks below the
// others stays below 1.0. It returns *DegenerateInputError when no channel
// has a positive maximum.
func Normalize(s *SampleSet) (*NormalizedSet, error) {
	if s == nil || s.Len() == 0 {
		return nil, ErrNilInput
	}

	peak := Red
	largest := maxOf(s.channels[Red])
	for _, c := range Channels[1:] {
		if m := maxOf(s.channels[c]); m > largest {
			largest = m
			peak = c
		}
	}
	if largest <= 0 {
		return nil, &DegenerateInputError{Max: largest}
	}

	scale := 1 / largest
	out := &NormalizedSet{
		SampleSet: SampleSet{wavelengths: clone(s.wavelengths)},
		scale:     scale,
		peak:      peak,
	}
	for _, c := range Channels {
		dst := make([]float64, len(s.channels[c]))
		vecmath.ScaleBlock(dst, s.channels[c], scale)
		out.channels[c] = dst
	}
	return out, nil
}

func maxOf(x []float64) float64 {
	m := x[0]
	for _, v := range x[1:] {
		if v > m {
			m = v
		}
	}
	return m
}
