// Package config defines the converter configuration and its JSON loading.
package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/cwbudde/algo-specsens/catalog"
	"github.com/cwbudde/algo-specsens/spectral/interp"
)

// Config is the full set of converter options.
type Config struct {
	ModelName         string `json:"model_name"`
	MeasurementSource string `json:"measurement_source"`
	TemplateSource    string `json:"template_source"`
	OutputDestination string `json:"output_destination"`

	Manufacturer string `json:"manufacturer,omitempty"`
	Device       string `json:"device,omitempty"`
	Version      string `json:"version,omitempty"`
	Method       string `json:"method,omitempty"`
	SortInput    bool   `json:"sort_input,omitempty"`
	Parallel     bool   `json:"parallel,omitempty"`

	Plot    Plot    `json:"plot,omitempty"`
	Logging Logging `json:"logging,omitempty"`
}

// Plot configures the optional curve rendering.
type Plot struct {
	Path   string `json:"path,omitempty"`
	Show   bool   `json:"show,omitempty"`
	Width  int    `json:"width,omitempty"`
	Height int    `json:"height,omitempty"`
}

// Logging configures the logger.
type Logging struct {
	Level string `json:"level,omitempty"`
}

// Defaults returns the baseline configuration. Model and paths have no
// defaults.
func Defaults() Config {
	return Config{
		Manufacturer: catalog.DefaultManufacturer,
		Device:       catalog.DefaultDevice,
		Version:      catalog.DefaultVersion,
		Method:       interp.MethodQuadratic.String(),
		Plot:         Plot{Width: 800, Height: 500},
		Logging:      Logging{Level: "info"},
	}
}

// LoadJSON parses a Config from raw bytes or, when raw is empty, from the
// file at path. Unknown fields are rejected.
func LoadJSON(path string, raw []byte) (Config, error) {
	var cfg Config
	var r io.Reader
	switch {
	case len(raw) > 0:
		r = bytes.NewReader(raw)
	case path != "":
		f, err := os.Open(path)
		if err != nil {
			return cfg, err
		}
		defer f.Close()
		r = f
	default:
		return cfg, errors.New("config: no source provided")
	}
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

// Merge overlays the non-zero fields of over onto base. Booleans can only
// be switched on by over.
func Merge(base, over Config) Config {
	out := base
	setString(&out.ModelName, over.ModelName)
	setString(&out.MeasurementSource, over.MeasurementSource)
	setString(&out.TemplateSource, over.TemplateSource)
	setString(&out.OutputDestination, over.OutputDestination)
	setString(&out.Manufacturer, over.Manufacturer)
	setString(&out.Device, over.Device)
	setString(&out.Version, over.Version)
	setString(&out.Method, over.Method)
	out.SortInput = out.SortInput || over.SortInput
	out.Parallel = out.Parallel || over.Parallel

	setString(&out.Plot.Path, over.Plot.Path)
	out.Plot.Show = out.Plot.Show || over.Plot.Show
	if over.Plot.Width > 0 {
		out.Plot.Width = over.Plot.Width
	}
	if over.Plot.Height > 0 {
		out.Plot.Height = over.Plot.Height
	}
	setString(&out.Logging.Level, over.Logging.Level)
	return out
}

func setString(dst *string, v string) {
	if s := strings.TrimSpace(v); s != "" {
		*dst = s
	}
}

// Validate checks that the required fields are present and the enumerated
// ones are recognised.
func (c Config) Validate() error {
	var missing []string
	if strings.TrimSpace(c.ModelName) == "" {
		missing = append(missing, "model_name")
	}
	if strings.TrimSpace(c.MeasurementSource) == "" {
		missing = append(missing, "measurement_source")
	}
	if strings.TrimSpace(c.TemplateSource) == "" {
		missing = append(missing, "template_source")
	}
	if strings.TrimSpace(c.OutputDestination) == "" {
		missing = append(missing, "output_destination")
	}
	if len(missing) > 0 {
		return fmt.Errorf("config: missing %s", strings.Join(missing, ", "))
	}
	if catalog.Slug(c.ModelName) == "" {
		return fmt.Errorf("config: model_name %q has no letters or digits", c.ModelName)
	}
	if _, err := interp.ParseMethod(c.Method); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if _, err := ParseLevel(c.Logging.Level); err != nil {
		return err
	}
	if c.Plot.Show && c.Plot.Path == "" {
		return errors.New("config: plot.show requires plot.path")
	}
	return nil
}
