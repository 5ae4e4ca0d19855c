package measurement

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/cwbudde/algo-specsens/spectral"
)

const minFields = 1 + spectral.NumChannels

// ErrEmpty indicates a source without sample rows.
var ErrEmpty = errors.New("measurement: no samples")

// ParseError reports a malformed row. Line is 1-based.
type ParseError struct {
	Line   int
	Column int
	Err    error
}

func (e *ParseError) Error() string {
	if e.Column > 0 {
		return fmt.Sprintf("measurement: line %d, column %d: %v", e.Line, e.Column, e.Err)
	}
	return fmt.Sprintf("measurement: line %d: %v", e.Line, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

type config struct {
	comma  rune
	header bool
	sort   bool
}

// Option configures Read.
type Option func(*config)

// WithComma sets the field delimiter. The default is ','.
func WithComma(r rune) Option {
	return func(cfg *config) {
		if r != 0 {
			cfg.comma = r
		}
	}
}

// WithHeader controls whether the first row is skipped. The default is true.
func WithHeader(skip bool) Option {
	return func(cfg *config) {
		cfg.header = skip
	}
}

// WithSort orders rows by wavelength before validation. Duplicate
// wavelengths are still rejected.
func WithSort() Option {
	return func(cfg *config) {
		cfg.sort = true
	}
}

type row struct {
	w   float64
	rgb spectral.RGB
}

// Read parses a measurement and returns a validated sample set.
func Read(r io.Reader, opts ...Option) (*spectral.SampleSet, error) {
	cfg := config{comma: ',', header: true}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	cr := csv.NewReader(r)
	cr.Comma = cfg.comma
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.ReuseRecord = true

	var rows []row
	first := true
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("measurement: %w", err)
		}
		line, _ := cr.FieldPos(0)
		if first && cfg.header {
			first = false
			continue
		}
		first = false

		if len(rec) < minFields {
			return nil, &ParseError{Line: line, Err: fmt.Errorf("got %d fields, want %d", len(rec), minFields)}
		}
		var vals [minFields]float64
		for i := range vals {
			v, err := strconv.ParseFloat(strings.TrimSpace(rec[i]), 64)
			if err != nil {
				return nil, &ParseError{Line: line, Column: i + 1, Err: err}
			}
			vals[i] = v
		}
		rows = append(rows, row{w: vals[0], rgb: spectral.RGB{vals[1], vals[2], vals[3]}})
	}

	if len(rows) == 0 {
		return nil, ErrEmpty
	}
	if cfg.sort {
		sort.SliceStable(rows, func(i, j int) bool { return rows[i].w < rows[j].w })
	}

	w := make([]float64, len(rows))
	var ch [spectral.NumChannels][]float64
	for c := range ch {
		ch[c] = make([]float64, len(rows))
	}
	for i, r := range rows {
		w[i] = r.w
		for c := range ch {
			ch[c][i] = r.rgb[c]
		}
	}
	return spectral.NewSampleSet(w, ch[spectral.Red], ch[spectral.Green], ch[spectral.Blue])
}

// ReadFile reads a measurement from path.
func ReadFile(path string, opts ...Option) (*spectral.SampleSet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Read(f, opts...)
}
