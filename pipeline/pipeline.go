// Package pipeline wires measurement input, curve resampling, record
// building and output into a single conversion run.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/hako/durafmt"

	"github.com/cwbudde/algo-specsens/catalog"
	"github.com/cwbudde/algo-specsens/internal/config"
	"github.com/cwbudde/algo-specsens/measurement"
	"github.com/cwbudde/algo-specsens/plot"
	"github.com/cwbudde/algo-specsens/sink"
	"github.com/cwbudde/algo-specsens/spectral"
	"github.com/cwbudde/algo-specsens/spectral/interp"
	"github.com/cwbudde/algo-specsens/stats/curve"
)

// ErrNilInput indicates a nil sample set or template passed to Convert.
var ErrNilInput = errors.New("pipeline: nil input")

// Result summarises a completed run.
type Result struct {
	Record     *catalog.Record
	Normalized *spectral.NormalizedSet
	Curve      *spectral.ResampledCurve
	Stats      [spectral.NumChannels]curve.Stats
	OutputPath string
	Bytes      int64
	PlotPath   string
	Elapsed    time.Duration
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithLogger sets the logger. A nil logger discards output.
func WithLogger(l *slog.Logger) Option {
	return func(p *Pipeline) {
		p.log = l
	}
}

// WithBuilderOptions appends catalog builder options, applied after the
// ones derived from the configuration.
func WithBuilderOptions(opts ...catalog.Option) Option {
	return func(p *Pipeline) {
		p.builderOpts = append(p.builderOpts, opts...)
	}
}

// WithShow replaces the viewer used for plot.show.
func WithShow(show func(path string) error) Option {
	return func(p *Pipeline) {
		if show != nil {
			p.show = show
		}
	}
}

// Pipeline runs one conversion described by a validated config.
type Pipeline struct {
	cfg         config.Config
	method      interp.Method
	log         *slog.Logger
	builderOpts []catalog.Option
	show        func(path string) error
}

// New validates cfg and returns a Pipeline.
func New(cfg config.Config, opts ...Option) (*Pipeline, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	method, err := interp.ParseMethod(cfg.Method)
	if err != nil {
		return nil, err
	}
	p := &Pipeline{cfg: cfg, method: method, show: plot.Show}
	for _, opt := range opts {
		if opt != nil {
			opt(p)
		}
	}
	if p.log == nil {
		p.log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return p, nil
}

// Config returns the pipeline configuration.
func (p *Pipeline) Config() config.Config { return p.cfg }

// Convert normalizes set, resamples it onto the standard grid and builds a
// record for model from tpl. It performs no I/O.
func Convert(set *spectral.SampleSet, tpl *catalog.Template, model string, b *catalog.Builder, opts ...spectral.Option) (*catalog.Record, *spectral.NormalizedSet, *spectral.ResampledCurve, error) {
	if set == nil || tpl == nil {
		return nil, nil, nil, ErrNilInput
	}
	if b == nil {
		b = catalog.NewBuilder()
	}
	norm, err := spectral.Normalize(set)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("normalize: %w", err)
	}
	c, err := spectral.Resample(norm, opts...)
	if err != nil {
		return nil, norm, nil, fmt.Errorf("resample: %w", err)
	}
	rec, err := b.Build(tpl, model, c)
	if err != nil {
		return nil, norm, c, fmt.Errorf("build: %w", err)
	}
	return rec, norm, c, nil
}

// Run executes the conversion. The first failing stage aborts the run.
func (p *Pipeline) Run(ctx context.Context) (*Result, error) {
	start := time.Now()
	cfg := p.cfg

	var readOpts []measurement.Option
	if cfg.SortInput {
		readOpts = append(readOpts, measurement.WithSort())
	}
	set, err := measurement.ReadFile(cfg.MeasurementSource, readOpts...)
	if err != nil {
		return nil, fmt.Errorf("read measurements: %w", err)
	}
	lo, hi := set.Range()
	p.log.Debug("measurements loaded",
		"source", cfg.MeasurementSource,
		"samples", set.Len(),
		"from_nm", lo,
		"to_nm", hi)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	tpl, err := catalog.LoadTemplate(cfg.TemplateSource)
	if err != nil {
		return nil, fmt.Errorf("load template: %w", err)
	}
	p.log.Debug("template loaded", "source", cfg.TemplateSource, "keys", len(tpl.Keys()))
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	builder := catalog.NewBuilder(append([]catalog.Option{
		catalog.WithDevice(cfg.Device),
		catalog.WithManufacturer(cfg.Manufacturer),
		catalog.WithVersion(cfg.Version),
	}, p.builderOpts...)...)

	rec, norm, c, err := Convert(set, tpl, cfg.ModelName, builder,
		spectral.WithMethod(p.method),
		spectral.WithParallel(cfg.Parallel))
	if err != nil {
		return nil, err
	}
	p.log.Debug("curve resampled",
		"method", p.method.String(),
		"scale", norm.Scale(),
		"peak_channel", norm.PeakChannel().String(),
		"points", c.Len())

	name, err := catalog.FileName(builder.Manufacturer(), cfg.ModelName)
	if err != nil {
		return nil, fmt.Errorf("file name: %w", err)
	}
	out, err := sink.New(&sink.Options{Dir: cfg.OutputDestination})
	if err != nil {
		return nil, fmt.Errorf("write record: %w", err)
	}
	written, err := out.WriteJSON(ctx, name, rec)
	if err != nil {
		return nil, fmt.Errorf("write record: %w", err)
	}

	res := &Result{
		Record:     rec,
		Normalized: norm,
		Curve:      c,
		OutputPath: written.Path,
		Bytes:      written.Bytes,
	}
	wl := c.Wavelengths()
	for _, ch := range spectral.Channels {
		res.Stats[ch] = curve.Calculate(wl, c.Channel(ch))
	}

	if cfg.Plot.Path != "" {
		if err := p.plot(res); err != nil {
			return nil, err
		}
	}

	res.Elapsed = time.Since(start)
	p.log.Info("record written",
		"model", rec.Header.Model,
		"catalog_number", rec.Header.CatalogNumber,
		"path", res.OutputPath,
		"size", humanize.Bytes(uint64(res.Bytes)),
		"elapsed", durafmt.Parse(res.Elapsed).LimitFirstN(2).String())
	for _, ch := range spectral.Channels {
		st := res.Stats[ch]
		p.log.Debug("channel stats",
			"channel", ch.String(),
			"peak", st.Peak,
			"peak_nm", st.PeakWavelength,
			"fwhm_nm", st.FWHM,
			"centroid_nm", st.Centroid,
			"ripple", st.Ripple)
	}
	return res, nil
}

func (p *Pipeline) plot(res *Result) error {
	cfg := p.cfg.Plot
	path := cfg.Path
	title := fmt.Sprintf("%s %s", p.cfg.Manufacturer, p.cfg.ModelName)
	if err := plot.SavePNG(path, res.Curve, plot.WithSize(cfg.Width, cfg.Height), plot.WithTitle(title)); err != nil {
		return fmt.Errorf("plot: %w", err)
	}
	res.PlotPath = path
	p.log.Debug("plot saved", "path", filepath.Clean(path))
	if cfg.Show {
		if err := p.show(path); err != nil {
			// The record is already written; a missing viewer is not fatal.
			p.log.Warn("plot viewer failed", "path", path, "err", err)
		}
	}
	return nil
}
