package fields

import (
	lanthanum "github.com/mypebble/lanthanum"
	js "github.com/mypebble/lanthanum/jsonschema"
)

// TypedField couples a wrapped field with an immutable schemaType tag. Its
// schema exposes the tag as a constant property next to the wrapped field's
// schema, which is what makes oneOf dispatch validatable.
type TypedField struct {
	schemaType string
	title      string
	field      lanthanum.Field
	data       any
}

// Typed wraps a clone of the given field under the schemaType tag. A wrapped
// field without a label takes the titleized tag as its display title.
func Typed(field lanthanum.Field, schemaType string) *TypedField {
	title := field.Label()
	if title == "" {
		title = titleize(schemaType)
	}
	return &TypedField{
		schemaType: schemaType,
		title:      title,
		field:      field.Clone(),
	}
}

// SchemaType returns the immutable tag. Data loading never changes it.
func (f *TypedField) SchemaType() string { return f.schemaType }

// Wrapped returns the wrapped field instance.
func (f *TypedField) Wrapped() lanthanum.Field { return f.field }

func (f *TypedField) Schema() *js.Schema {
	wrapped := f.field.Schema()
	if wrapped.Title == "" {
		wrapped.Title = f.title
	}
	return &js.Schema{
		Type:  "object",
		Title: f.title,
		Properties: map[string]*js.Schema{
			"schemaType": {
				Title: "Schema Type",
				Const: f.schemaType,
				Type:  "string",
				// renderers are poor at const-only properties, so also pin a
				// static template
				Default:  f.schemaType,
				Template: f.schemaType,
			},
			"data": wrapped,
		},
		DefaultProperties: []string{"data", "schemaType"},
		Required:          []string{"data", "schemaType"},
	}
}

// LoadData requires a mapping with a "data" key; the wrapper is authoritative
// for its own tag and overwrites whatever schemaType the input carried.
func (f *TypedField) LoadData(v any) error {
	m, ok := v.(map[string]any)
	if !ok {
		return lanthanum.Issues{{
			Path:    "/",
			Code:    lanthanum.CodeInvalidType,
			Message: "typed field payload must be an object",
		}}
	}
	raw, ok := m["data"]
	if !ok {
		return lanthanum.Issues{{
			Path:    "/data",
			Code:    lanthanum.CodeMissingData,
			Message: "typed field payload has no \"data\" key",
			Hint:    "callers must supply {schemaType, data}",
		}}
	}
	m["schemaType"] = f.schemaType
	f.data = m
	return f.field.LoadData(raw)
}

func (f *TypedField) Data() any { return f.data }

func (f *TypedField) Clone() lanthanum.Field {
	return &TypedField{
		schemaType: f.schemaType,
		title:      f.title,
		field:      f.field.Clone(),
		data:       lanthanum.CloneValue(f.data),
	}
}

func (f *TypedField) Bool() bool { return lanthanum.Truthy(f.data) }

// String forwards to the wrapped field's projection.
func (f *TypedField) String() string { return f.field.String() }

func (f *TypedField) Label() string { return f.title }

func (f *TypedField) IsRequired() bool { return f.field.IsRequired() }
