package fields

import (
	lanthanum "github.com/mypebble/lanthanum"
	js "github.com/mypebble/lanthanum/jsonschema"
)

// UnknownVariantFunc is notified when a loaded element carries a tag that
// matches no declared variant. The element is dropped either way.
type UnknownVariantFunc func(index int, schemaType string)

// OneOfArrayField is an ordered list of tagged variants. Each registered
// variant is wrapped as a TypedField whose tag is the declared name; loading
// dispatches elements to the matching variant and silently drops the rest.
type OneOfArrayField struct {
	base
	variantNames []string
	variants     map[string]*TypedField
	uniqueItems  *bool
	minItems     *int
	maxItems     *int
	itemLabel    string
	onUnknown    UnknownVariantFunc
	items        []*TypedField
}

// OneOfArray declares a new tagged-union list field.
func OneOfArray() *OneOfArrayField {
	return &OneOfArrayField{
		base:      base{dataType: "array", dataFormat: "tabs"},
		variants:  map[string]*TypedField{},
		itemLabel: "Item",
	}
}

func (f *OneOfArrayField) WithLabel(label string) *OneOfArrayField {
	f.label = label
	return f
}

func (f *OneOfArrayField) WithDefault(v any) *OneOfArrayField {
	f.def = v
	return f
}

func (f *OneOfArrayField) Required() *OneOfArrayField {
	f.required = true
	return f
}

// Variant registers a named variant. The declared name becomes the
// schemaType tag recognized while loading.
func (f *OneOfArrayField) Variant(name string, d lanthanum.Field) *OneOfArrayField {
	if _, ok := f.variants[name]; !ok {
		f.variantNames = append(f.variantNames, name)
	}
	f.variants[name] = Typed(d, name)
	return f
}

func (f *OneOfArrayField) WithUniqueItems(v bool) *OneOfArrayField {
	f.uniqueItems = boolPtr(v)
	return f
}

func (f *OneOfArrayField) WithMinItems(n int) *OneOfArrayField {
	f.minItems = intPtr(n)
	return f
}

func (f *OneOfArrayField) WithMaxItems(n int) *OneOfArrayField {
	f.maxItems = intPtr(n)
	return f
}

func (f *OneOfArrayField) WithItemLabel(label string) *OneOfArrayField {
	f.itemLabel = label
	return f
}

// OnUnknownVariant installs a callback for dropped elements. The default is
// to drop silently.
func (f *OneOfArrayField) OnUnknownVariant(fn UnknownVariantFunc) *OneOfArrayField {
	f.onUnknown = fn
	return f
}

// Len reports the number of loaded items.
func (f *OneOfArrayField) Len() int { return len(f.items) }

// At returns the loaded item at index i.
func (f *OneOfArrayField) At(i int) *TypedField { return f.items[i] }

// Items returns the loaded items in input order, minus dropped elements.
func (f *OneOfArrayField) Items() []*TypedField {
	out := make([]*TypedField, len(f.items))
	copy(out, f.items)
	return out
}

func (f *OneOfArrayField) Schema() *js.Schema {
	s := f.baseSchema()
	items := &js.Schema{
		Title:          f.itemLabel,
		HeaderTemplate: f.itemLabel + " {{i1}}.",
	}
	items.OneOf = make([]*js.Schema, 0, len(f.variantNames))
	for _, name := range f.variantNames {
		items.OneOf = append(items.OneOf, f.variants[name].Schema())
	}
	s.Items = items
	if f.uniqueItems != nil {
		s.UniqueItems = clonedBoolPtr(f.uniqueItems)
	}
	if f.minItems != nil {
		s.MinItems = clonedIntPtr(f.minItems)
	}
	if f.maxItems != nil {
		s.MaxItems = clonedIntPtr(f.maxItems)
	}
	return s
}

// LoadData fully replaces the loaded items: the verbatim input list is kept
// as data, then each element is dispatched to the variant matching its
// schemaType. Elements with an unrecognized tag are dropped; input order is
// preserved for the rest.
func (f *OneOfArrayField) LoadData(v any) error {
	f.items = nil
	if v == nil {
		f.data = nil
		return nil
	}
	f.data = v
	list, ok := v.([]any)
	if !ok {
		return lanthanum.Issues{{
			Path:    "/",
			Code:    lanthanum.CodeInvalidType,
			Message: "one-of array data must be a list",
		}}
	}
	for i, el := range list {
		m, _ := el.(map[string]any)
		tag, _ := m["schemaType"].(string)
		tmpl, ok := f.variants[tag]
		if !ok {
			if f.onUnknown != nil {
				f.onUnknown(i, tag)
			}
			continue
		}
		item := tmpl.Clone().(*TypedField)
		if err := item.LoadData(el); err != nil {
			return err
		}
		f.items = append(f.items, item)
	}
	return nil
}

func (f *OneOfArrayField) Clone() lanthanum.Field {
	c := &OneOfArrayField{
		base:        f.base.clone(),
		variants:    make(map[string]*TypedField, len(f.variants)),
		uniqueItems: clonedBoolPtr(f.uniqueItems),
		minItems:    clonedIntPtr(f.minItems),
		maxItems:    clonedIntPtr(f.maxItems),
		itemLabel:   f.itemLabel,
		onUnknown:   f.onUnknown,
	}
	c.variantNames = make([]string, len(f.variantNames))
	copy(c.variantNames, f.variantNames)
	for name, v := range f.variants {
		c.variants[name] = v.Clone().(*TypedField)
	}
	if f.items != nil {
		c.items = make([]*TypedField, len(f.items))
		for i, it := range f.items {
			c.items[i] = it.Clone().(*TypedField)
		}
	}
	return c
}
