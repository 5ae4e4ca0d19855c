// Command specsens converts a measured camera spectral sensitivity into a
// catalog record sampled on the 380-780 nm, 5 nm grid.
//
// Usage:
//
//	specsens [flags]
//
// Settings come from built-in defaults, then an optional JSON file (-config),
// then flags.
//
// Examples:
//
//	specsens -model "eos m" -measurements data/Canon-EOS-M.csv \
//	    -template canon_eos_5d_mark_ii_380_780_5.json -out records
//	specsens -config eos-m.json -plot eos-m.png -show
//	specsens -config eos-m.json -stats
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"text/tabwriter"

	"github.com/dustin/go-humanize"

	"github.com/cwbudde/algo-specsens/internal/config"
	"github.com/cwbudde/algo-specsens/pipeline"
	"github.com/cwbudde/algo-specsens/spectral"
)

const (
	exitOK = iota
	exitFailure
	exitUsage
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("specsens", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var over config.Config
	configPath := fs.String("config", "", "JSON configuration file")
	fs.StringVar(&over.ModelName, "model", "", "camera model name, e.g. \"eos m\"")
	fs.StringVar(&over.MeasurementSource, "measurements", "", "measurement CSV (wavelength,red,green,blue)")
	fs.StringVar(&over.TemplateSource, "template", "", "template catalog record (JSON)")
	fs.StringVar(&over.OutputDestination, "out", "", "output directory")
	fs.StringVar(&over.Manufacturer, "manufacturer", "", "manufacturer used in catalog number and file name (default canon)")
	fs.StringVar(&over.Device, "device", "", "device type used in catalog number (default camera)")
	fs.StringVar(&over.Version, "version", "", "catalog version (default 0.1.0)")
	fs.StringVar(&over.Method, "method", "", "interpolation: quadratic or linear (default quadratic)")
	fs.BoolVar(&over.SortInput, "sort", false, "sort measurement rows by wavelength")
	fs.BoolVar(&over.Parallel, "parallel", false, "fit channels concurrently")
	fs.StringVar(&over.Plot.Path, "plot", "", "write a PNG plot of the resampled curves")
	fs.BoolVar(&over.Plot.Show, "show", false, "open the plot in the system viewer")
	fs.IntVar(&over.Plot.Width, "plot-width", 0, "plot width in pixels (default 800)")
	fs.IntVar(&over.Plot.Height, "plot-height", 0, "plot height in pixels (default 500)")
	fs.StringVar(&over.Logging.Level, "log-level", "", "log level: debug, info, warn, error (default info)")
	stats := fs.Bool("stats", false, "print per-channel curve statistics")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: specsens [flags]\n\n")
		fmt.Fprintf(stderr, "Resamples a camera spectral sensitivity measurement onto the 380-780 nm grid\n")
		fmt.Fprintf(stderr, "and writes it as a catalog record based on a template.\n\n")
		fmt.Fprintf(stderr, "Flags:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nExamples:\n")
		fmt.Fprintf(stderr, "  specsens -model \"eos m\" -measurements eos-m.csv -template 5d.json -out records\n")
		fmt.Fprintf(stderr, "  specsens -config eos-m.json -plot eos-m.png -show\n")
		fmt.Fprintf(stderr, "  specsens -config eos-m.json -stats\n")
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}
	if fs.NArg() > 0 {
		fmt.Fprintf(stderr, "error: unexpected arguments: %v\n", fs.Args())
		fs.Usage()
		return exitUsage
	}

	cfg := config.Defaults()
	if *configPath != "" {
		fileCfg, err := config.LoadJSON(*configPath, nil)
		if err != nil {
			fmt.Fprintf(stderr, "error: %v\n", err)
			return exitUsage
		}
		cfg = config.Merge(cfg, fileCfg)
	}
	cfg = config.Merge(cfg, over)

	level, err := config.ParseLevel(cfg.Logging.Level)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return exitUsage
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	p, err := pipeline.New(cfg, pipeline.WithLogger(logger))
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return exitUsage
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	res, err := p.Run(ctx)
	if err != nil {
		logger.Error("conversion failed", "err", err)
		return exitFailure
	}

	fmt.Fprintf(stdout, "%s (%s)\n", res.OutputPath, humanize.Bytes(uint64(res.Bytes)))
	if *stats {
		if err := printStats(stdout, res); err != nil {
			fmt.Fprintf(stderr, "error: failed to write statistics: %v\n", err)
			return exitFailure
		}
	}
	return exitOK
}

func printStats(w io.Writer, res *pipeline.Result) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Channel\tPeak\tPeak [nm]\tFWHM [nm]\tCentroid [nm]\tSpread [nm]\tArea [nm]\tRipple\n")
	fmt.Fprintf(tw, "-------\t----\t---------\t---------\t-------------\t-----------\t---------\t------\n")
	for _, ch := range spectral.Channels {
		s := res.Stats[ch]
		fmt.Fprintf(tw, "%s\t%.4f\t%.0f\t%.1f\t%.1f\t%.1f\t%.2f\t%.4f\n",
			ch, s.Peak, s.PeakWavelength, s.FWHM, s.Centroid, s.Spread, s.Area, s.Ripple)
	}
	return tw.Flush()
}
