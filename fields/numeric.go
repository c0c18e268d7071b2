package fields

import (
	lanthanum "github.com/mypebble/lanthanum"
)

// IntegerField is a whole-number field. Data passes through loading
// unchanged.
type IntegerField struct {
	base
}

// Integer declares a new whole-number field.
func Integer() *IntegerField {
	return &IntegerField{base: base{dataType: "integer", dataFormat: "number"}}
}

func (f *IntegerField) WithLabel(label string) *IntegerField {
	f.label = label
	return f
}

func (f *IntegerField) WithDefault(v any) *IntegerField {
	f.def = v
	return f
}

func (f *IntegerField) Required() *IntegerField {
	f.required = true
	return f
}

func (f *IntegerField) Clone() lanthanum.Field {
	return &IntegerField{base: f.base.clone()}
}

// DecimalField is an arbitrary-number field. Data passes through loading
// unchanged.
type DecimalField struct {
	base
}

// Decimal declares a new number field.
func Decimal() *DecimalField {
	return &DecimalField{base: base{dataType: "number", dataFormat: "number"}}
}

func (f *DecimalField) WithLabel(label string) *DecimalField {
	f.label = label
	return f
}

func (f *DecimalField) WithDefault(v any) *DecimalField {
	f.def = v
	return f
}

func (f *DecimalField) Required() *DecimalField {
	f.required = true
	return f
}

func (f *DecimalField) Clone() lanthanum.Field {
	return &DecimalField{base: f.base.clone()}
}
