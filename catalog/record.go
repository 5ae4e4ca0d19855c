package catalog

import (
	"bytes"
	"encoding/json"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/cwbudde/algo-specsens/spectral"
)

// TimestampLayout formats document_creation_date.
const TimestampLayout = "2006-01-02 15:04:05.000000"

// Header holds the four header fields a build sets.
type Header struct {
	Model            string
	CatalogNumber    string
	UniqueIdentifier string
	CreationDate     string
}

// Record is a complete catalog document.
type Record struct {
	Header Header
	doc    map[string]any
}

// MarshalJSON encodes the full document without HTML escaping.
func (r *Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(r.doc); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// Document returns a deep copy of the record document.
func (r *Record) Document() map[string]any {
	return cloneValue(r.doc).(map[string]any)
}

// Response returns the [r, g, b] entry stored for wavelength nm.
func (r *Record) Response(nm int) (spectral.RGB, bool) {
	main, err := mainTable(r.doc)
	if err != nil {
		return spectral.RGB{}, false
	}
	vals, ok := main[strconv.Itoa(nm)].([]any)
	if !ok || len(vals) != spectral.NumChannels {
		return spectral.RGB{}, false
	}
	var out spectral.RGB
	for i, v := range vals {
		switch x := v.(type) {
		case float64:
			out[i] = x
		case json.Number:
			f, err := x.Float64()
			if err != nil {
				return spectral.RGB{}, false
			}
			out[i] = f
		default:
			return spectral.RGB{}, false
		}
	}
	return out, true
}

type config struct {
	clock        func() time.Time
	newID        func() string
	device       string
	manufacturer string
	version      string
}

// Option configures a Builder.
type Option func(*config)

// WithClock sets the time source for document_creation_date.
func WithClock(now func() time.Time) Option {
	return func(cfg *config) {
		if now != nil {
			cfg.clock = now
		}
	}
}

// WithIdentifier sets the unique_identifier generator.
func WithIdentifier(newID func() string) Option {
	return func(cfg *config) {
		if newID != nil {
			cfg.newID = newID
		}
	}
}

// WithDevice sets the device prefix of the catalog number.
func WithDevice(device string) Option {
	return func(cfg *config) {
		if device != "" {
			cfg.device = device
		}
	}
}

// WithManufacturer sets the manufacturer used in the catalog number.
func WithManufacturer(manufacturer string) Option {
	return func(cfg *config) {
		if manufacturer != "" {
			cfg.manufacturer = manufacturer
		}
	}
}

// WithVersion sets the catalog number version suffix.
func WithVersion(version string) Option {
	return func(cfg *config) {
		if version != "" {
			cfg.version = version
		}
	}
}

func defaultConfig() config {
	return config{
		clock:        time.Now,
		newID:        func() string { return uuid.NewString() },
		device:       DefaultDevice,
		manufacturer: DefaultManufacturer,
		version:      DefaultVersion,
	}
}

// Builder builds catalog records from templates.
type Builder struct {
	cfg config
}

// NewBuilder returns a Builder with the given options applied over the
// defaults (camera, canon, 0.1.0, wall clock, random UUIDs).
func NewBuilder(opts ...Option) *Builder {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return &Builder{cfg: cfg}
}

// Manufacturer returns the configured manufacturer.
func (b *Builder) Manufacturer() string { return b.cfg.manufacturer }

// Build copies tpl, sets the header fields for model and writes every grid
// point of curve into spectral_data.data.main, replacing existing entries.
func (b *Builder) Build(tpl *Template, model string, curve *spectral.ResampledCurve) (*Record, error) {
	if tpl == nil || tpl.doc == nil {
		return nil, &TemplateSchemaError{Reason: "missing template"}
	}
	if curve == nil {
		return nil, ErrNilCurve
	}
	catalogNumber, err := CatalogNumber(b.cfg.device, b.cfg.manufacturer, model, b.cfg.version)
	if err != nil {
		return nil, err
	}

	doc := cloneValue(tpl.doc).(map[string]any)
	header, err := object(doc, "header", "header")
	if err != nil {
		return nil, err
	}
	main, err := mainTable(doc)
	if err != nil {
		return nil, err
	}

	h := Header{
		Model:            model,
		CatalogNumber:    catalogNumber,
		UniqueIdentifier: b.cfg.newID(),
		CreationDate:     b.cfg.clock().Format(TimestampLayout),
	}
	header[FieldModel] = h.Model
	header[FieldCatalogNumber] = h.CatalogNumber
	header[FieldUniqueIdentifier] = h.UniqueIdentifier
	header[FieldCreationDate] = h.CreationDate

	for i := 0; i < curve.Len(); i++ {
		v := curve.At(i)
		main[strconv.Itoa(curve.Key(i))] = []any{v[spectral.Red], v[spectral.Green], v[spectral.Blue]}
	}

	return &Record{Header: h, doc: doc}, nil
}
