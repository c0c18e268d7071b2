package jsonschema

// Schema is the JSON Schema representation derived from a field declaration.
// Keys are emitted only when configured; renderer-oriented extensions
// (enumSource, template, headerTemplate, defaultProperties, links) follow the
// JSON Editor vocabulary.
type Schema struct {
	// Core
	Type     string `json:"type,omitempty"`
	Format   string `json:"format,omitempty"`
	Title    string `json:"title,omitempty"`
	Default  any    `json:"default,omitempty"`
	Const    any    `json:"const,omitempty"`
	Template string `json:"template,omitempty"`

	// String
	MinLength  *int         `json:"minLength,omitempty"`
	MaxLength  *int         `json:"maxLength,omitempty"`
	Enum       []any        `json:"enum,omitempty"`
	EnumSource []EnumSource `json:"enumSource,omitempty"`
	Links      []Link       `json:"links,omitempty"`

	// Object
	Properties        map[string]*Schema `json:"properties,omitempty"`
	Required          []string           `json:"required,omitempty"`
	DefaultProperties []string           `json:"defaultProperties,omitempty"`

	// Array
	Items          *Schema   `json:"items,omitempty"`
	HeaderTemplate string    `json:"headerTemplate,omitempty"`
	OneOf          []*Schema `json:"oneOf,omitempty"`
	UniqueItems    *bool     `json:"uniqueItems,omitempty"`
	MinItems       *int      `json:"minItems,omitempty"`
	MaxItems       *int      `json:"maxItems,omitempty"`
}

// EnumSource describes one renderer choice source with templated title and
// value expansions.
type EnumSource struct {
	Source []EnumSourceEntry `json:"source"`
	Title  string            `json:"title"`
	Value  string            `json:"value"`
}

// EnumSourceEntry is a single (value, title) choice pair.
type EnumSourceEntry struct {
	Value any    `json:"value"`
	Title string `json:"title"`
}

// Link is a hyper-schema style media link attached to file path fields.
type Link struct {
	Href      string `json:"href"`
	MediaType string `json:"mediaType,omitempty"`
}
