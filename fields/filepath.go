package fields

import (
	lanthanum "github.com/mypebble/lanthanum"
	js "github.com/mypebble/lanthanum/jsonschema"
)

// FilePathField is a string field whose schema carries a media link so
// renderers can preview the referenced file. The media base URL comes from
// the process configuration (config.Settings) and is passed in explicitly.
type FilePathField struct {
	base
	mediaType string
	mediaURL  string
}

// FilePath declares a new file path field.
func FilePath() *FilePathField {
	return &FilePathField{base: base{dataType: "string", dataFormat: "text"}}
}

func (f *FilePathField) WithLabel(label string) *FilePathField {
	f.label = label
	return f
}

func (f *FilePathField) WithDefault(v any) *FilePathField {
	f.def = v
	return f
}

func (f *FilePathField) Required() *FilePathField {
	f.required = true
	return f
}

// WithMediaType attaches a MIME type to the media link.
func (f *FilePathField) WithMediaType(mt string) *FilePathField {
	f.mediaType = mt
	return f
}

// WithMediaURL sets the base URL prefixed to the field's value in the media
// link.
func (f *FilePathField) WithMediaURL(u string) *FilePathField {
	f.mediaURL = u
	return f
}

func (f *FilePathField) Schema() *js.Schema {
	s := f.baseSchema()
	if f.required {
		s.MinLength = intPtr(1)
	}
	// {{self}} is expanded by the renderer to the field's own value
	link := js.Link{Href: f.mediaURL + "{{self}}"}
	if f.mediaType != "" {
		link.MediaType = f.mediaType
	}
	s.Links = []js.Link{link}
	return s
}

// LoadData coerces absent values to the empty string.
func (f *FilePathField) LoadData(v any) error {
	if v == nil {
		f.data = ""
		return nil
	}
	f.data = v
	return nil
}

func (f *FilePathField) Clone() lanthanum.Field {
	return &FilePathField{
		base:      f.base.clone(),
		mediaType: f.mediaType,
		mediaURL:  f.mediaURL,
	}
}
