package catalog

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
)

// Header field names.
const (
	FieldModel            = "model"
	FieldCatalogNumber    = "catalog_number"
	FieldUniqueIdentifier = "unique_identifier"
	FieldCreationDate     = "document_creation_date"
)

var headerFields = []string{FieldModel, FieldCatalogNumber, FieldUniqueIdentifier, FieldCreationDate}

// Template is a validated template document. It is never modified; Build
// works on a deep copy.
type Template struct {
	doc map[string]any
}

// LoadTemplate reads and validates a template file.
func LoadTemplate(path string) (*Template, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadTemplate(f)
}

// ReadTemplate decodes and validates a template document. Numbers are kept
// in their original textual form.
func ReadTemplate(r io.Reader) (*Template, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	var root any
	if err := dec.Decode(&root); err != nil {
		return nil, &TemplateSchemaError{Reason: "invalid JSON: " + err.Error()}
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, &TemplateSchemaError{Reason: "trailing data after document"}
	}

	doc, ok := root.(map[string]any)
	if !ok {
		return nil, &TemplateSchemaError{Reason: "document is not an object"}
	}
	t := &Template{doc: doc}
	if err := t.validate(); err != nil {
		return nil, err
	}
	return t, nil
}

// ParseTemplate is ReadTemplate over a byte slice.
func ParseTemplate(data []byte) (*Template, error) {
	return ReadTemplate(bytes.NewReader(data))
}

func (t *Template) validate() error {
	header, err := object(t.doc, "header", "header")
	if err != nil {
		return err
	}
	for _, f := range headerFields {
		if _, ok := header[f]; !ok {
			return &TemplateSchemaError{Path: "header." + f, Reason: "missing"}
		}
	}
	_, err = mainTable(t.doc)
	return err
}

// Header returns a copy of the template header.
func (t *Template) Header() map[string]any {
	h, _ := t.doc["header"].(map[string]any)
	return cloneValue(h).(map[string]any)
}

// Keys returns the wavelength keys present in spectral_data.data.main,
// numeric keys in ascending order followed by any others.
func (t *Template) Keys() []string {
	main, _ := mainTable(t.doc)
	keys := make([]string, 0, len(main))
	for k := range main {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		a, errA := strconv.Atoi(keys[i])
		b, errB := strconv.Atoi(keys[j])
		switch {
		case errA == nil && errB == nil:
			return a < b
		case errA == nil:
			return true
		case errB == nil:
			return false
		default:
			return keys[i] < keys[j]
		}
	})
	return keys
}

func mainTable(doc map[string]any) (map[string]any, error) {
	sd, err := object(doc, "spectral_data", "spectral_data")
	if err != nil {
		return nil, err
	}
	data, err := object(sd, "data", "spectral_data.data")
	if err != nil {
		return nil, err
	}
	return object(data, "main", "spectral_data.data.main")
}

func object(parent map[string]any, key, path string) (map[string]any, error) {
	v, ok := parent[key]
	if !ok {
		return nil, &TemplateSchemaError{Path: path, Reason: "missing"}
	}
	m, ok := v.(map[string]any)
	if !ok {
		return nil, &TemplateSchemaError{Path: path, Reason: fmt.Sprintf("expected object, got %T", v)}
	}
	return m, nil
}

func cloneValue(v any) any {
	switch x := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(x))
		for k, e := range x {
			out[k] = cloneValue(e)
		}
		return out
	case []any:
		out := make([]any, len(x))
		for i, e := range x {
			out[i] = cloneValue(e)
		}
		return out
	default:
		return v
	}
}
