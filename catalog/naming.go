package catalog

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/cwbudde/algo-specsens/spectral"
)

// Defaults for the catalog naming scheme.
const (
	DefaultDevice       = "camera"
	DefaultManufacturer = "canon"
	DefaultVersion      = "0.1.0"
)

// Slug lower-cases s, strips diacritics and joins runs of letters and
// digits with underscores: "EOS 5D Mark II" becomes "eos_5d_mark_ii".
func Slug(s string) string {
	fold := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(fold, s)
	if err != nil {
		folded = s
	}
	folded = cases.Lower(language.Und).String(folded)

	var b strings.Builder
	sep := false
	for _, r := range folded {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			sep = true
			continue
		}
		if sep && b.Len() > 0 {
			b.WriteByte('_')
		}
		sep = false
		b.WriteRune(r)
	}
	return b.String()
}

// CatalogNumber returns <device>_<manufacturer>_<slug(model)>_<version>.
func CatalogNumber(device, manufacturer, model, version string) (string, error) {
	slug := Slug(model)
	if slug == "" {
		return "", fmt.Errorf("%w: %q", ErrEmptyModel, model)
	}
	return fmt.Sprintf("%s_%s_%s_%s", Slug(device), Slug(manufacturer), slug, version), nil
}

// FileName returns the record file name for a model on the catalog grid:
// <manufacturer>_<slug(model)>_380_780_5.json.
func FileName(manufacturer, model string) (string, error) {
	slug := Slug(model)
	if slug == "" {
		return "", fmt.Errorf("%w: %q", ErrEmptyModel, model)
	}
	return fmt.Sprintf("%s_%s_%d_%d_%d.json", Slug(manufacturer), slug,
		spectral.GridStart, spectral.GridEnd, spectral.GridStep), nil
}
