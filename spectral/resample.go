package spectral

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/cwbudde/algo-specsens/spectral/interp"
)

// EdgeFill is the fraction of the nearest measured endpoint used for grid
// points outside the measured range.
const EdgeFill = 0.5

type config struct {
	method   interp.Method
	parallel bool
}

// Option configures Resample.
type Option func(*config)

// WithMethod selects the interpolation method. The default is
// interp.MethodQuadratic.
func WithMethod(m interp.Method) Option {
	return func(cfg *config) {
		cfg.method = m
	}
}

// WithParallel fits the three channels concurrently. Results are identical
// to sequential fitting.
func WithParallel(enabled bool) Option {
	return func(cfg *config) {
		cfg.parallel = enabled
	}
}

func defaultConfig() config {
	return config{method: interp.MethodQuadratic}
}

// Resample fits one interpolant per channel through the normalised samples
// and evaluates it on StandardGrid.
//
// Grid points below the first measured wavelength get EdgeFill times the
// first sample; points above the last get EdgeFill times the last sample.
// The fitted curve is never continued past the measured range.
func Resample(n *NormalizedSet, opts ...Option) (*ResampledCurve, error) {
	if n == nil {
		return nil, ErrNilInput
	}
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	if err := checkIncreasing(n.wavelengths); err != nil {
		return nil, err
	}
	for _, c := range Channels {
		if got := len(n.channels[c]); got < MinSamples {
			return nil, &InsufficientSamplesError{Channel: c, Got: got, Min: MinSamples}
		}
	}

	out := &ResampledCurve{Grid: StandardGrid()}

	if !cfg.parallel {
		for _, c := range Channels {
			if err := resampleChannel(out, n, c, cfg.method); err != nil {
				return nil, err
			}
		}
		return out, nil
	}

	var g errgroup.Group
	g.SetLimit(NumChannels)
	for _, c := range Channels {
		g.Go(func() error {
			return resampleChannel(out, n, c, cfg.method)
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// resampleChannel writes column c of out. Channels touch disjoint slots.
func resampleChannel(out *ResampledCurve, n *NormalizedSet, c Channel, m interp.Method) error {
	xs := n.wavelengths
	ys := n.channels[c]

	fit, err := interp.New(m, xs, ys)
	if err != nil {
		return fmt.Errorf("spectral: fit %s channel: %w", c, err)
	}

	lo, hi := fit.Domain()
	below := EdgeFill * ys[0]
	above := EdgeFill * ys[len(ys)-1]
	for i, w := range out.Grid {
		switch {
		case w < lo:
			out.Values[i][c] = below
		case w > hi:
			out.Values[i][c] = above
		default:
			out.Values[i][c] = fit.Eval(w)
		}
	}
	return nil
}
