package fields_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/mypebble/lanthanum/fields"
	js "github.com/mypebble/lanthanum/jsonschema"
)

func intp(v int) *int { return &v }

func TestChar_SchemaBasic(t *testing.T) {
	got := fields.Char().Schema()
	want := &js.Schema{Type: "string", Format: "text"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("schema mismatch (-want +got):\n%s", diff)
	}
}

func TestChar_SchemaWithMetadata(t *testing.T) {
	got := fields.Char().
		WithLabel("Test Field").
		WithDefault("Thing").
		Required().
		Schema()
	want := &js.Schema{
		Type:      "string",
		Format:    "text",
		Title:     "Test Field",
		Default:   "Thing",
		MinLength: intp(1),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("schema mismatch (-want +got):\n%s", diff)
	}
}

func TestChar_SchemaWithChoices(t *testing.T) {
	got := fields.Char().
		WithDefault("a").
		Required().
		WithChoices(
			fields.Choice{Value: "a", Label: "A"},
			fields.Choice{Value: "b", Label: "B"},
		).
		Schema()
	want := &js.Schema{
		Type:    "string",
		Format:  "text",
		Default: "a",
		EnumSource: []js.EnumSource{{
			Source: []js.EnumSourceEntry{
				{Value: "a", Title: "A"},
				{Value: "b", Title: "B"},
			},
			Title: "{{item.title}}",
			Value: "{{item.value}}",
		}},
		Enum:      []any{"a", "b"},
		MinLength: intp(1),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("schema mismatch (-want +got):\n%s", diff)
	}
}

func TestChar_ExplicitLengthBounds(t *testing.T) {
	// explicit bounds always appear verbatim, independently of required
	got := fields.Char().Required().WithMinLength(3).WithMaxLength(10).Schema()
	if got.MinLength == nil || *got.MinLength != 3 {
		t.Fatalf("expected minLength 3, got %v", got.MinLength)
	}
	if got.MaxLength == nil || *got.MaxLength != 10 {
		t.Fatalf("expected maxLength 10, got %v", got.MaxLength)
	}

	got = fields.Char().WithMinLength(2).Schema()
	if got.MinLength == nil || *got.MinLength != 2 {
		t.Fatalf("expected minLength 2 without required, got %v", got.MinLength)
	}
}

func TestChar_LoadData(t *testing.T) {
	f := fields.Char()
	if err := f.LoadData("item-1"); err != nil {
		t.Fatalf("load: %v", err)
	}
	if f.Data() != "item-1" {
		t.Fatalf("unexpected data: %v", f.Data())
	}

	// second load fully overwrites
	if err := f.LoadData("item-2"); err != nil {
		t.Fatalf("load: %v", err)
	}
	if f.Data() != "item-2" {
		t.Fatalf("unexpected data: %v", f.Data())
	}

	// absent values coerce to the empty string, never nil
	if err := f.LoadData(nil); err != nil {
		t.Fatalf("load: %v", err)
	}
	if f.Data() != "" {
		t.Fatalf("expected empty string, got %v", f.Data())
	}
}

func TestChar_TruthinessAndString(t *testing.T) {
	f := fields.Char()
	if f.Bool() {
		t.Fatalf("unloaded field should be falsy")
	}
	if f.String() != "" {
		t.Fatalf("unloaded field should project to empty string, got %q", f.String())
	}
	_ = f.LoadData("Rex")
	if !f.Bool() {
		t.Fatalf("loaded field should be truthy")
	}
	if f.String() != "Rex" {
		t.Fatalf("unexpected projection: %q", f.String())
	}
}

func TestText_SchemaRequired(t *testing.T) {
	got := fields.Text().Required().Schema()
	want := &js.Schema{Type: "string", Format: "textarea", MinLength: intp(1)}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("schema mismatch (-want +got):\n%s", diff)
	}

	got = fields.Text().Schema()
	if got.MinLength != nil {
		t.Fatalf("optional text field should not set minLength")
	}
}

func TestText_LoadDataNil(t *testing.T) {
	f := fields.Text()
	_ = f.LoadData(nil)
	if f.Data() != "" {
		t.Fatalf("expected empty string, got %v", f.Data())
	}
}

func TestBoolean_Schema(t *testing.T) {
	got := fields.Boolean().Schema()
	want := &js.Schema{Type: "boolean", Format: "checkbox"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("schema mismatch (-want +got):\n%s", diff)
	}

	got = fields.Boolean().WithLabel("Simple Bool Field").WithDefault(true).Required().Schema()
	want = &js.Schema{
		Type:    "boolean",
		Format:  "checkbox",
		Title:   "Simple Bool Field",
		Default: true,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("schema mismatch (-want +got):\n%s", diff)
	}
}

func TestBoolean_LoadDataStringCoercion(t *testing.T) {
	cases := []struct {
		in   any
		want any
	}{
		{"true", true},
		{"True", true},
		{"false", false},
		{"False", false},
		// anything else passes through unchanged
		{true, true},
		{false, false},
		{"yes", "yes"},
		{"1", "1"},
		{1, 1},
		{nil, nil},
	}
	for _, tc := range cases {
		f := fields.Boolean()
		if err := f.LoadData(tc.in); err != nil {
			t.Fatalf("load %v: %v", tc.in, err)
		}
		if f.Data() != tc.want {
			t.Fatalf("load %v: expected %v, got %v", tc.in, tc.want, f.Data())
		}
	}
}

func TestInteger_SchemaAndLoad(t *testing.T) {
	got := fields.Integer().Schema()
	want := &js.Schema{Type: "integer", Format: "number"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("schema mismatch (-want +got):\n%s", diff)
	}

	f := fields.Integer()
	_ = f.LoadData(42)
	if f.Data() != 42 {
		t.Fatalf("integer data should pass through, got %v", f.Data())
	}
	_ = f.LoadData(nil)
	if f.Data() != nil {
		t.Fatalf("integer data should pass nil through, got %v", f.Data())
	}
}

func TestDecimal_SchemaAndLoad(t *testing.T) {
	got := fields.Decimal().Schema()
	want := &js.Schema{Type: "number", Format: "number"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("schema mismatch (-want +got):\n%s", diff)
	}

	f := fields.Decimal()
	_ = f.LoadData(1.5)
	if f.Data() != 1.5 {
		t.Fatalf("decimal data should pass through, got %v", f.Data())
	}
}

func TestClone_Independence(t *testing.T) {
	decl := fields.Char().WithDefault("x")
	a := decl.Clone()
	b := decl.Clone()
	_ = a.LoadData("first")
	_ = b.LoadData("second")
	if a.Data() != "first" || b.Data() != "second" {
		t.Fatalf("clones share loaded state: a=%v b=%v", a.Data(), b.Data())
	}
	if decl.Data() != nil {
		t.Fatalf("declaration gained loaded state: %v", decl.Data())
	}
}
