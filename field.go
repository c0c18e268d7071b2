package lanthanum

import (
	"fmt"

	js "github.com/mypebble/lanthanum/jsonschema"
)

// Field is the capability surface every field declaration exposes. A
// declaration doubles as a template: Clone produces an independent instance
// whose loaded state never aliases the template or any sibling instance.
type Field interface {
	fmt.Stringer

	// Schema projects the declaration's static configuration into a JSON
	// Schema document. It never depends on loaded data, except that a
	// configured default is echoed into the document.
	Schema() *js.Schema

	// LoadData normalizes a JSON-compatible value (string, number, bool,
	// nil, []any, map[string]any) into the field. Composite fields dispatch
	// into their children; a second call fully overwrites prior state.
	LoadData(v any) error

	// Data reads back the loaded, normalized value.
	Data() any

	// Clone returns a deep copy of the field, including children.
	Clone() Field

	// Bool reports whether the loaded data is truthy (see Truthy).
	Bool() bool

	Label() string
	IsRequired() bool
}

// Validator is the external collaborator that checks loaded data against a
// derived schema. Implementations report failures as Issues.
type Validator interface {
	Validate(data any, schema *js.Schema) error
}

// Validate hands the field's loaded data and derived schema to v.
func Validate(f Field, v Validator) error {
	return v.Validate(f.Data(), f.Schema())
}
