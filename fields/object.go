package fields

import (
	"github.com/rs/zerolog"

	lanthanum "github.com/mypebble/lanthanum"
	js "github.com/mypebble/lanthanum/jsonschema"
)

// ObjectField aggregates named sub-fields into a nested object schema.
// Children are registered explicitly and in order; registration stores a
// clone, so a child declaration can be reused across parents without
// aliasing.
type ObjectField struct {
	base
	names []string
	subs  map[string]lanthanum.Field
	log   zerolog.Logger
}

// Object declares a new composite object field.
func Object() *ObjectField {
	return &ObjectField{
		base: base{dataType: "object"},
		subs: map[string]lanthanum.Field{},
		log:  zerolog.Nop(),
	}
}

func (f *ObjectField) WithLabel(label string) *ObjectField {
	f.label = label
	return f
}

func (f *ObjectField) WithDefault(v any) *ObjectField {
	f.def = v
	return f
}

func (f *ObjectField) Required() *ObjectField {
	f.required = true
	return f
}

// WithLogger sets the logger used to report malformed composite input.
func (f *ObjectField) WithLogger(log zerolog.Logger) *ObjectField {
	f.log = log
	return f
}

// Field registers a named sub-field. Re-registering a name replaces the
// child but keeps its original position.
func (f *ObjectField) Field(name string, d lanthanum.Field) *ObjectField {
	if _, ok := f.subs[name]; !ok {
		f.names = append(f.names, name)
	}
	f.subs[name] = d.Clone()
	return f
}

// Sub returns the named sub-field instance, or nil when undeclared.
func (f *ObjectField) Sub(name string) lanthanum.Field {
	return f.subs[name]
}

// Names returns the sub-field names in declaration order.
func (f *ObjectField) Names() []string {
	out := make([]string, len(f.names))
	copy(out, f.names)
	return out
}

func (f *ObjectField) Schema() *js.Schema {
	s := f.baseSchema()
	s.Properties = make(map[string]*js.Schema, len(f.names))
	var required []string
	for _, name := range f.names {
		sub := f.subs[name]
		ss := sub.Schema()
		// property titles always derive from the declared name
		ss.Title = titleize(name)
		s.Properties[name] = ss
		if sub.IsRequired() {
			required = append(required, name)
		}
	}
	s.Required = required
	return s
}

// LoadData dispatches a mapping into the sub-fields, rebuilding data as a
// mirror of their results. nil clears the field without touching children;
// any other non-mapping input is logged and stored verbatim.
func (f *ObjectField) LoadData(v any) error {
	if v == nil {
		f.data = nil
		return nil
	}
	m, ok := v.(map[string]any)
	if !ok {
		f.log.Warn().Interface("data", v).Msg("object field data was not a map")
		f.data = v
		return nil
	}
	out := make(map[string]any, len(f.names))
	for _, name := range f.names {
		sub := f.subs[name]
		if err := sub.LoadData(m[name]); err != nil {
			return err
		}
		out[name] = sub.Data()
	}
	f.data = out
	return nil
}

func (f *ObjectField) Clone() lanthanum.Field {
	c := &ObjectField{
		base: f.base.clone(),
		subs: make(map[string]lanthanum.Field, len(f.subs)),
		log:  f.log,
	}
	c.names = make([]string, len(f.names))
	copy(c.names, f.names)
	for name, sub := range f.subs {
		c.subs[name] = sub.Clone()
	}
	return c
}
