package fields

import (
	lanthanum "github.com/mypebble/lanthanum"
)

// BooleanField is a checkbox-rendered boolean field.
type BooleanField struct {
	base
}

// Boolean declares a new boolean field.
func Boolean() *BooleanField {
	return &BooleanField{base: base{dataType: "boolean", dataFormat: "checkbox"}}
}

func (f *BooleanField) WithLabel(label string) *BooleanField {
	f.label = label
	return f
}

func (f *BooleanField) WithDefault(v any) *BooleanField {
	f.def = v
	return f
}

func (f *BooleanField) Required() *BooleanField {
	f.required = true
	return f
}

// LoadData accepts the literal strings "true"/"True" and "false"/"False" as
// booleans; form submissions encode checkbox state as strings. Any other
// value (including actual booleans) passes through unchanged. This is not a
// general string-to-bool parser: "yes", "1" and friends are untouched.
func (f *BooleanField) LoadData(v any) error {
	switch v {
	case "true", "True":
		f.data = true
	case "false", "False":
		f.data = false
	default:
		f.data = v
	}
	return nil
}

func (f *BooleanField) Clone() lanthanum.Field {
	return &BooleanField{base: f.base.clone()}
}
