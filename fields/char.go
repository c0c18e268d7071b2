package fields

import (
	lanthanum "github.com/mypebble/lanthanum"
	js "github.com/mypebble/lanthanum/jsonschema"
)

// Choice is a single (value, label) pair offered by a CharField.
type Choice struct {
	Value any
	Label string
}

// CharField is a single-line string field, optionally constrained to a fixed
// choice set and length bounds.
type CharField struct {
	base
	choices   []Choice
	minLength *int
	maxLength *int
}

// Char declares a new single-line string field.
func Char() *CharField {
	return &CharField{base: base{dataType: "string", dataFormat: "text"}}
}

func (f *CharField) WithLabel(label string) *CharField {
	f.label = label
	return f
}

func (f *CharField) WithDefault(v any) *CharField {
	f.def = v
	return f
}

func (f *CharField) Required() *CharField {
	f.required = true
	return f
}

// WithChoices restricts the field to the given choice set and exposes it to
// renderers via enum/enumSource.
func (f *CharField) WithChoices(choices ...Choice) *CharField {
	f.choices = choices
	return f
}

func (f *CharField) WithMinLength(n int) *CharField {
	f.minLength = intPtr(n)
	return f
}

func (f *CharField) WithMaxLength(n int) *CharField {
	f.maxLength = intPtr(n)
	return f
}

func (f *CharField) Schema() *js.Schema {
	s := f.baseSchema()
	if len(f.choices) > 0 {
		entries := make([]js.EnumSourceEntry, 0, len(f.choices))
		values := make([]any, 0, len(f.choices))
		for _, c := range f.choices {
			entries = append(entries, js.EnumSourceEntry{Value: c.Value, Title: c.Label})
			values = append(values, c.Value)
		}
		s.EnumSource = []js.EnumSource{{
			Source: entries,
			Title:  "{{item.title}}",
			Value:  "{{item.value}}",
		}}
		s.Enum = values
	}
	// required implies a non-empty value unless an explicit bound is set
	if f.required && f.minLength == nil {
		s.MinLength = intPtr(1)
	}
	if f.minLength != nil {
		s.MinLength = clonedIntPtr(f.minLength)
	}
	if f.maxLength != nil {
		s.MaxLength = clonedIntPtr(f.maxLength)
	}
	return s
}

// LoadData coerces absent values to the empty string; a CharField never
// holds nil data.
func (f *CharField) LoadData(v any) error {
	if v == nil {
		f.data = ""
		return nil
	}
	f.data = v
	return nil
}

func (f *CharField) Clone() lanthanum.Field {
	c := &CharField{
		base:      f.base.clone(),
		minLength: clonedIntPtr(f.minLength),
		maxLength: clonedIntPtr(f.maxLength),
	}
	if f.choices != nil {
		c.choices = make([]Choice, len(f.choices))
		copy(c.choices, f.choices)
	}
	return c
}
