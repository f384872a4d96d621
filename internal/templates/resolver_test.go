package templates

import (
	"strings"
	"testing"
)

func TestResolveKnownIDs(t *testing.T) {
	for _, id := range IDs() {
		got, text, err := Resolve(id)
		if err != nil {
			t.Fatalf("resolve %q: %v", id, err)
		}
		if got != id {
			t.Fatalf("resolve %q: got id %q", id, got)
		}
		if !strings.Contains(text, "<!DOCTYPE html>") {
			t.Fatalf("resolve %q: not a standalone HTML document", id)
		}
	}
}

func TestResolveUnknownFallsBackToUSA(t *testing.T) {
	for _, code := range []string{"", "nonexistent", "FRANCE", " Germany "} {
		id, _, err := Resolve(code)
		if err != nil {
			t.Fatalf("resolve %q: %v", code, err)
		}
		want := DefaultID
		if strings.TrimSpace(strings.ToLower(code)) == "germany" {
			want = "germany"
		}
		if id != want {
			t.Fatalf("resolve %q: got %q, want %q", code, id, want)
		}
	}
}

// Every template must carry the full token set, each token exactly once, so
// substitution stays deterministic.
func TestTemplatesCarryEachTokenOnce(t *testing.T) {
	tokens := []string{
		"{{name}}", "{{email}}", "{{phone}}", "{{address}}", "{{summary}}",
		"{{experience}}", "{{education}}", "{{skills}}", "{{countryName}}",
		"{{photoSection}}", "{{personalDetails}}",
	}
	for _, id := range IDs() {
		_, text, err := Resolve(id)
		if err != nil {
			t.Fatalf("resolve %q: %v", id, err)
		}
		for _, token := range tokens {
			if n := strings.Count(text, token); n != 1 {
				t.Errorf("template %q: token %s appears %d times, want 1", id, token, n)
			}
		}
	}
}
