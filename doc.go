package lanthanum

// Package lanthanum provides:
//
// - A declarative field contract (Field) covering schema emission, data
//   loading, truthiness and string projection
// - A stable error model via Issues (JSON Pointer, code, message)
// - A Validator collaborator interface for handing (data, schema) pairs to an
//   external JSON Schema validator
// - Deep copy and truthiness helpers shared by composite field types
//
// Design policy:
// - Keep only public contracts in the root package; put the concrete field
//   types under fields/, the JSON Schema document under jsonschema/, the
//   validator under validator/, and the CLI under cmd/lanthanum.
// - Declarations are immutable templates once published; per-use instances
//   are produced with Clone so sibling instances never share child state.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	dog := fields.Object().
//		Field("name", fields.Char().Required()).
//		Field("breed", fields.Char())
//
//	inst := dog.Clone()
//	err := inst.LoadData(raw)
//	doc := inst.Schema()
//	err = lanthanum.Validate(inst, validator.New())
