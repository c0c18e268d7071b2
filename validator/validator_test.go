package validator_test

import (
	"testing"

	lanthanum "github.com/mypebble/lanthanum"
	"github.com/mypebble/lanthanum/fields"
	"github.com/mypebble/lanthanum/validator"
)

func TestValidate_CharField(t *testing.T) {
	f := fields.Char()
	if err := f.LoadData("A test"); err != nil {
		t.Fatalf("load: %v", err)
	}
	if err := lanthanum.Validate(f, validator.New()); err != nil {
		t.Fatalf("expected valid data, got %v", err)
	}
}

func TestValidate_CharFieldBadData(t *testing.T) {
	f := fields.Char()
	if err := f.LoadData(map[string]any{"a": "b"}); err != nil {
		t.Fatalf("load: %v", err)
	}
	err := lanthanum.Validate(f, validator.New())
	if err == nil {
		t.Fatalf("expected validation failure for non-string data")
	}
	iss, ok := lanthanum.AsIssues(err)
	if !ok || len(iss) == 0 || iss[0].Code != lanthanum.CodeValidation {
		t.Fatalf("expected validation issues, got %v", err)
	}
}

func TestValidate_CharFieldEnum(t *testing.T) {
	decl := fields.Char().
		WithLabel("Choices Field").
		WithDefault("item-1").
		Required().
		WithChoices(
			fields.Choice{Value: "item-1", Label: "Item 1"},
			fields.Choice{Value: "item-2", Label: "Item 2"},
		)

	ok := decl.Clone()
	_ = ok.LoadData("item-2")
	if err := lanthanum.Validate(ok, validator.New()); err != nil {
		t.Fatalf("expected valid choice, got %v", err)
	}

	bad := decl.Clone()
	_ = bad.LoadData("Invalid option")
	if err := lanthanum.Validate(bad, validator.New()); err == nil {
		t.Fatalf("expected enum violation")
	}
}

func TestValidate_ObjectFieldRequired(t *testing.T) {
	decl := fields.Object().
		Field("name", fields.Char().Required()).
		Field("breed", fields.Char())

	inst := decl.Clone()
	_ = inst.LoadData(map[string]any{"name": "Rex"})
	if err := lanthanum.Validate(inst, validator.New()); err != nil {
		t.Fatalf("expected valid object, got %v", err)
	}

	// loading nil clears the data entirely; a nil document fails the
	// object type assertion
	empty := decl.Clone()
	_ = empty.LoadData(nil)
	if err := lanthanum.Validate(empty, validator.New()); err == nil {
		t.Fatalf("expected failure for nil object data")
	}
}

func TestValidate_BooleanField(t *testing.T) {
	f := fields.Boolean()
	_ = f.LoadData("Non-boolean")
	err := lanthanum.Validate(f, validator.New())
	if err == nil {
		t.Fatalf("expected failure for non-boolean data")
	}
	iss, ok := lanthanum.AsIssues(err)
	if !ok || len(iss) == 0 {
		t.Fatalf("expected issues, got %v", err)
	}
	if iss[0].Path != "/" {
		t.Fatalf("expected root path, got %q", iss[0].Path)
	}
}
