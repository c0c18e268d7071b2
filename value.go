package lanthanum

import (
	"encoding/json"
	"fmt"
)

// Truthy reports whether a JSON-compatible value is truthy: nil, false, zero
// numbers, empty strings and empty collections are falsy, everything else is
// truthy.
func Truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case string:
		return t != ""
	case int:
		return t != 0
	case int64:
		return t != 0
	case float64:
		return t != 0
	case json.Number:
		f, err := t.Float64()
		if err != nil {
			return t.String() != ""
		}
		return f != 0
	case []any:
		return len(t) > 0
	case map[string]any:
		return len(t) > 0
	default:
		return true
	}
}

// Stringify renders a loaded value for display. Absent data renders as the
// empty string.
func Stringify(v any) string {
	if v == nil {
		return ""
	}
	return fmt.Sprint(v)
}

// CloneValue deep-copies a JSON-compatible value. Maps and slices are copied
// recursively; scalars are returned as-is.
func CloneValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			out[k] = CloneValue(vv)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i := range t {
			out[i] = CloneValue(t[i])
		}
		return out
	default:
		return v
	}
}
