package lanthanum_test

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"

	lanthanum "github.com/mypebble/lanthanum"
)

func TestTruthy(t *testing.T) {
	falsy := []any{nil, false, 0, int64(0), 0.0, "", []any{}, map[string]any{}, json.Number("0")}
	for _, v := range falsy {
		if lanthanum.Truthy(v) {
			t.Fatalf("expected %#v to be falsy", v)
		}
	}
	truthy := []any{true, 1, -1, 0.5, "x", []any{nil}, map[string]any{"k": nil}, json.Number("2")}
	for _, v := range truthy {
		if !lanthanum.Truthy(v) {
			t.Fatalf("expected %#v to be truthy", v)
		}
	}
}

func TestStringify(t *testing.T) {
	if got := lanthanum.Stringify(nil); got != "" {
		t.Fatalf("absent data must render as empty string, got %q", got)
	}
	if got := lanthanum.Stringify("Rex"); got != "Rex" {
		t.Fatalf("unexpected projection: %q", got)
	}
	if got := lanthanum.Stringify(42); got != "42" {
		t.Fatalf("unexpected projection: %q", got)
	}
}

func TestCloneValue(t *testing.T) {
	src := map[string]any{
		"name": "Rex",
		"tags": []any{"good", "dog"},
		"meta": map[string]any{"age": 3},
	}
	dst := lanthanum.CloneValue(src).(map[string]any)
	if diff := cmp.Diff(src, dst); diff != "" {
		t.Fatalf("clone mismatch (-want +got):\n%s", diff)
	}
	dst["name"] = "Snoopy"
	dst["tags"].([]any)[0] = "bad"
	dst["meta"].(map[string]any)["age"] = 9
	if src["name"] != "Rex" || src["tags"].([]any)[0] != "good" || src["meta"].(map[string]any)["age"] != 3 {
		t.Fatalf("clone aliases source: %#v", src)
	}
}
