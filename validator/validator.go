// Package validator implements the external validation collaborator: it
// compiles a derived schema document and checks loaded data against it,
// reporting failures as lanthanum.Issues.
package validator

import (
	"errors"

	j "github.com/goccy/go-json"
	jschema "github.com/santhosh-tekuri/jsonschema/v5"

	lanthanum "github.com/mypebble/lanthanum"
	js "github.com/mypebble/lanthanum/jsonschema"
)

// SchemaValidator validates (data, schema) pairs with a JSON Schema
// compiler. The renderer-oriented extension keywords (enumSource, template,
// headerTemplate, defaultProperties, links) are ignored by the compiler, as
// unknown keywords should be.
type SchemaValidator struct{}

// New returns a SchemaValidator.
func New() *SchemaValidator { return &SchemaValidator{} }

// Validate checks data against the schema document. Data is round-tripped
// through JSON first so Go-native values (ints, typed maps) validate the
// same way a decoded JSON document would.
func (sv *SchemaValidator) Validate(data any, schema *js.Schema) error {
	raw, err := j.Marshal(schema)
	if err != nil {
		return lanthanum.Issues{{
			Path:    "/",
			Code:    lanthanum.CodeParseError,
			Message: "schema document is not serializable",
			Cause:   err,
		}}
	}
	compiled, err := jschema.CompileString("field.json", string(raw))
	if err != nil {
		return lanthanum.Issues{{
			Path:    "/",
			Code:    lanthanum.CodeParseError,
			Message: "schema document did not compile",
			Cause:   err,
		}}
	}

	doc, err := normalize(data)
	if err != nil {
		return lanthanum.Issues{{
			Path:    "/",
			Code:    lanthanum.CodeParseError,
			Message: "data is not JSON-compatible",
			Cause:   err,
		}}
	}

	if err := compiled.Validate(doc); err != nil {
		var verr *jschema.ValidationError
		if errors.As(err, &verr) {
			return toIssues(verr)
		}
		return err
	}
	return nil
}

// normalize round-trips a value through JSON to the decoded representation
// the compiler expects.
func normalize(data any) (any, error) {
	if data == nil {
		return nil, nil
	}
	b, err := j.Marshal(data)
	if err != nil {
		return nil, err
	}
	var doc any
	if err := j.Unmarshal(b, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// toIssues flattens the validator's error tree into one Issue per leaf
// cause, keeping the instance path and offending keyword.
func toIssues(verr *jschema.ValidationError) lanthanum.Issues {
	var iss lanthanum.Issues
	var walk func(e *jschema.ValidationError)
	walk = func(e *jschema.ValidationError) {
		if len(e.Causes) == 0 {
			path := e.InstanceLocation
			if path == "" {
				path = "/"
			}
			iss = append(iss, lanthanum.Issue{
				Path:    path,
				Code:    lanthanum.CodeValidation,
				Message: e.Message,
				Hint:    e.KeywordLocation,
			})
			return
		}
		for _, c := range e.Causes {
			walk(c)
		}
	}
	walk(verr)
	return iss
}
