package catalog

import (
	"errors"
	"strings"
	"testing"
)

func TestLoadTemplate(t *testing.T) {
	tpl, err := LoadTemplate("testdata/template.json")
	if err != nil {
		t.Fatalf("LoadTemplate() error = %v", err)
	}
	if got := tpl.Header()["manufacturer"]; got != "Canon" {
		t.Fatalf("header manufacturer = %v", got)
	}
	keys := tpl.Keys()
	want := []string{"380", "385", "780", "790"}
	if strings.Join(keys, ",") != strings.Join(want, ",") {
		t.Fatalf("Keys() = %v, want %v", keys, want)
	}
}

func TestTemplateHeaderIsCopy(t *testing.T) {
	tpl, err := LoadTemplate("testdata/template.json")
	if err != nil {
		t.Fatalf("LoadTemplate() error = %v", err)
	}
	h := tpl.Header()
	h[FieldModel] = "changed"
	if tpl.Header()[FieldModel] != "EOS 5D Mark II" {
		t.Fatal("Header() exposed internal state")
	}
}

func TestReadTemplateSchemaErrors(t *testing.T) {
	header := `"header":{"model":"","catalog_number":"","unique_identifier":"","document_creation_date":""}`
	tests := []struct {
		name string
		doc  string
		path string
	}{
		{name: "invalid json", doc: `{"header":`, path: ""},
		{name: "not object", doc: `[1, 2]`, path: ""},
		{name: "trailing", doc: `{` + header + `,"spectral_data":{"data":{"main":{}}}} {}`, path: ""},
		{name: "no header", doc: `{"spectral_data":{"data":{"main":{}}}}`, path: "header"},
		{name: "header not object", doc: `{"header":"x","spectral_data":{"data":{"main":{}}}}`, path: "header"},
		{name: "missing field", doc: `{"header":{"model":""},"spectral_data":{"data":{"main":{}}}}`, path: "header.catalog_number"},
		{name: "no spectral data", doc: `{` + header + `}`, path: "spectral_data"},
		{name: "no data", doc: `{` + header + `,"spectral_data":{}}`, path: "spectral_data.data"},
		{name: "main not object", doc: `{` + header + `,"spectral_data":{"data":{"main":[]}}}`, path: "spectral_data.data.main"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseTemplate([]byte(tt.doc))
			var se *TemplateSchemaError
			if !errors.As(err, &se) {
				t.Fatalf("ParseTemplate() error = %v, want TemplateSchemaError", err)
			}
			if se.Path != tt.path {
				t.Fatalf("Path = %q, want %q (%v)", se.Path, tt.path, se)
			}
		})
	}
}

func TestLoadTemplateMissingFile(t *testing.T) {
	if _, err := LoadTemplate("testdata/does-not-exist.json"); err == nil {
		t.Fatal("expected error for missing file")
	}
}
