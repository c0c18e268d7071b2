package fields

import (
	lanthanum "github.com/mypebble/lanthanum"
	js "github.com/mypebble/lanthanum/jsonschema"
)

// base carries the metadata every field declaration shares: the fixed
// type/format pair, label, default, required flag and the loaded data slot.
type base struct {
	dataType   string
	dataFormat string
	label      string
	def        any
	required   bool
	data       any
}

// baseSchema emits the shared schema keys; keys absent from the
// configuration stay absent from the document.
func (b *base) baseSchema() *js.Schema {
	s := &js.Schema{Type: b.dataType, Format: b.dataFormat}
	if b.label != "" {
		s.Title = b.label
	}
	if b.def != nil {
		s.Default = lanthanum.CloneValue(b.def)
	}
	return s
}

// clone copies the shared state, deep-copying default and loaded data.
func (b *base) clone() base {
	c := *b
	c.def = lanthanum.CloneValue(b.def)
	c.data = lanthanum.CloneValue(b.data)
	return c
}

func (b *base) Schema() *js.Schema { return b.baseSchema() }

// LoadData stores the raw value verbatim. Variants override this with their
// normalization rules.
func (b *base) LoadData(v any) error {
	b.data = v
	return nil
}

func (b *base) Data() any        { return b.data }
func (b *base) Bool() bool       { return lanthanum.Truthy(b.data) }
func (b *base) String() string   { return lanthanum.Stringify(b.data) }
func (b *base) Label() string    { return b.label }
func (b *base) IsRequired() bool { return b.required }

func intPtr(v int) *int    { return &v }
func boolPtr(v bool) *bool { return &v }

func clonedIntPtr(p *int) *int {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func clonedBoolPtr(p *bool) *bool {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
