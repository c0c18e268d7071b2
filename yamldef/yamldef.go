// Package yamldef builds field declaration trees from YAML documents, so a
// deployment can treat the shape of its structured data as configuration.
package yamldef

import (
	"fmt"

	"gopkg.in/yaml.v3"

	lanthanum "github.com/mypebble/lanthanum"
	"github.com/mypebble/lanthanum/fields"
)

// Definition is the YAML shape of a single field declaration.
type Definition struct {
	Type     string `yaml:"type"`
	Label    string `yaml:"label"`
	Default  any    `yaml:"default"`
	Required bool   `yaml:"required"`

	// char
	Choices   []ChoiceDefinition `yaml:"choices"`
	MinLength *int               `yaml:"min_length"`
	MaxLength *int               `yaml:"max_length"`

	// filepath
	MediaType string `yaml:"media_type"`
	MediaURL  string `yaml:"media_url"`

	// object
	Fields []NamedDefinition `yaml:"fields"`

	// one_of_array
	Variants    []NamedDefinition `yaml:"variants"`
	ItemLabel   string            `yaml:"item_label"`
	UniqueItems *bool             `yaml:"unique_items"`
	MinItems    *int              `yaml:"min_items"`
	MaxItems    *int              `yaml:"max_items"`
}

// NamedDefinition is a definition registered under a name (an object
// sub-field or a union variant).
type NamedDefinition struct {
	Name       string `yaml:"name"`
	Definition `yaml:",inline"`
}

// ChoiceDefinition is a (value, label) choice pair.
type ChoiceDefinition struct {
	Value any    `yaml:"value"`
	Label string `yaml:"label"`
}

// Option adjusts how definitions are built.
type Option func(*builder)

// WithMediaURL supplies the media base URL for filepath fields that do not
// set media_url themselves. Typically fed from config.Settings.
func WithMediaURL(u string) Option {
	return func(b *builder) { b.mediaURL = u }
}

type builder struct {
	mediaURL string
}

// Parse decodes a YAML document into a field declaration.
func Parse(data []byte, opts ...Option) (lanthanum.Field, error) {
	var def Definition
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("yamldef: decode: %w", err)
	}
	return Build(def, opts...)
}

// Build turns a decoded Definition into a field declaration.
func Build(def Definition, opts ...Option) (lanthanum.Field, error) {
	b := &builder{}
	for _, opt := range opts {
		opt(b)
	}
	return b.build(def, "")
}

func (b *builder) build(def Definition, path string) (lanthanum.Field, error) {
	switch def.Type {
	case "char":
		f := fields.Char()
		if def.Label != "" {
			f.WithLabel(def.Label)
		}
		if def.Default != nil {
			f.WithDefault(normalizeValue(def.Default))
		}
		if def.Required {
			f.Required()
		}
		if len(def.Choices) > 0 {
			choices := make([]fields.Choice, 0, len(def.Choices))
			for _, c := range def.Choices {
				choices = append(choices, fields.Choice{Value: normalizeValue(c.Value), Label: c.Label})
			}
			f.WithChoices(choices...)
		}
		if def.MinLength != nil {
			f.WithMinLength(*def.MinLength)
		}
		if def.MaxLength != nil {
			f.WithMaxLength(*def.MaxLength)
		}
		return f, nil

	case "text":
		f := fields.Text()
		if def.Label != "" {
			f.WithLabel(def.Label)
		}
		if def.Default != nil {
			f.WithDefault(normalizeValue(def.Default))
		}
		if def.Required {
			f.Required()
		}
		return f, nil

	case "boolean":
		f := fields.Boolean()
		if def.Label != "" {
			f.WithLabel(def.Label)
		}
		if def.Default != nil {
			f.WithDefault(normalizeValue(def.Default))
		}
		if def.Required {
			f.Required()
		}
		return f, nil

	case "integer":
		f := fields.Integer()
		if def.Label != "" {
			f.WithLabel(def.Label)
		}
		if def.Default != nil {
			f.WithDefault(normalizeValue(def.Default))
		}
		if def.Required {
			f.Required()
		}
		return f, nil

	case "decimal":
		f := fields.Decimal()
		if def.Label != "" {
			f.WithLabel(def.Label)
		}
		if def.Default != nil {
			f.WithDefault(normalizeValue(def.Default))
		}
		if def.Required {
			f.Required()
		}
		return f, nil

	case "filepath":
		f := fields.FilePath()
		if def.Label != "" {
			f.WithLabel(def.Label)
		}
		if def.Default != nil {
			f.WithDefault(normalizeValue(def.Default))
		}
		if def.Required {
			f.Required()
		}
		if def.MediaType != "" {
			f.WithMediaType(def.MediaType)
		}
		switch {
		case def.MediaURL != "":
			f.WithMediaURL(def.MediaURL)
		case b.mediaURL != "":
			f.WithMediaURL(b.mediaURL)
		}
		return f, nil

	case "object":
		f := fields.Object()
		if def.Label != "" {
			f.WithLabel(def.Label)
		}
		if def.Default != nil {
			f.WithDefault(normalizeValue(def.Default))
		}
		if def.Required {
			f.Required()
		}
		for _, sub := range def.Fields {
			if sub.Name == "" {
				return nil, fmt.Errorf("yamldef: object field at %q has an unnamed sub-field", path)
			}
			child, err := b.build(sub.Definition, joinPath(path, sub.Name))
			if err != nil {
				return nil, err
			}
			f.Field(sub.Name, child)
		}
		return f, nil

	case "one_of_array":
		f := fields.OneOfArray()
		if def.Label != "" {
			f.WithLabel(def.Label)
		}
		if def.Required {
			f.Required()
		}
		if def.ItemLabel != "" {
			f.WithItemLabel(def.ItemLabel)
		}
		if def.UniqueItems != nil {
			f.WithUniqueItems(*def.UniqueItems)
		}
		if def.MinItems != nil {
			f.WithMinItems(*def.MinItems)
		}
		if def.MaxItems != nil {
			f.WithMaxItems(*def.MaxItems)
		}
		for _, v := range def.Variants {
			if v.Name == "" {
				return nil, fmt.Errorf("yamldef: one_of_array at %q has an unnamed variant", path)
			}
			variant, err := b.build(v.Definition, joinPath(path, v.Name))
			if err != nil {
				return nil, err
			}
			f.Variant(v.Name, variant)
		}
		return f, nil

	default:
		return nil, fmt.Errorf("yamldef: unknown field type %q at %q", def.Type, path)
	}
}

func joinPath(path, name string) string {
	if path == "" {
		return name
	}
	return path + "." + name
}

// normalizeValue converts YAML-decoded values (which may contain
// map[any]any) into JSON-like map[string]any recursively.
func normalizeValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			out[k] = normalizeValue(vv)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			ks, ok := k.(string)
			if !ok {
				continue
			}
			out[ks] = normalizeValue(vv)
		}
		return out
	case []any:
		arr := make([]any, len(t))
		for i := range t {
			arr[i] = normalizeValue(t[i])
		}
		return arr
	default:
		return v
	}
}
