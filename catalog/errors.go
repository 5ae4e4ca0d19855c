package catalog

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyModel indicates a model name with no usable characters.
	ErrEmptyModel = errors.New("catalog: empty model name")
	// ErrNilCurve indicates a missing resampled curve.
	ErrNilCurve = errors.New("catalog: nil curve")
)

// TemplateSchemaError reports a missing or malformed template element.
type TemplateSchemaError struct {
	Path   string
	Reason string
}

func (e *TemplateSchemaError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("catalog: template schema: %s", e.Reason)
	}
	return fmt.Sprintf("catalog: template schema: %s: %s", e.Path, e.Reason)
}
