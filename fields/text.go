package fields

import (
	lanthanum "github.com/mypebble/lanthanum"
	js "github.com/mypebble/lanthanum/jsonschema"
)

// TextField is a multi-line string field rendered as a textarea.
type TextField struct {
	base
}

// Text declares a new multi-line string field.
func Text() *TextField {
	return &TextField{base: base{dataType: "string", dataFormat: "textarea"}}
}

func (f *TextField) WithLabel(label string) *TextField {
	f.label = label
	return f
}

func (f *TextField) WithDefault(v any) *TextField {
	f.def = v
	return f
}

func (f *TextField) Required() *TextField {
	f.required = true
	return f
}

func (f *TextField) Schema() *js.Schema {
	s := f.baseSchema()
	if f.required {
		s.MinLength = intPtr(1)
	}
	return s
}

// LoadData coerces absent values to the empty string.
func (f *TextField) LoadData(v any) error {
	if v == nil {
		f.data = ""
		return nil
	}
	f.data = v
	return nil
}

func (f *TextField) Clone() lanthanum.Field {
	return &TextField{base: f.base.clone()}
}
