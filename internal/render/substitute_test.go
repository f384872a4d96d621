package render

import (
	"strings"
	"testing"
)

func TestSubstituteReplacesRecognizedTokens(t *testing.T) {
	got := substitute("<h1>{{name}}</h1><p>{{email}}</p>", map[string]string{
		"name":  "Jane Doe",
		"email": "jane@x.com",
	})
	want := "<h1>Jane Doe</h1><p>jane@x.com</p>"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestSubstituteMissingValueBecomesEmpty(t *testing.T) {
	got := substitute("a{{address}}b", map[string]string{})
	if got != "ab" {
		t.Fatalf("recognized token without value must vanish, got %q", got)
	}
}

func TestSubstituteLeavesUnknownTokens(t *testing.T) {
	in := "keep {{mystery}} and {{name}}"
	got := substitute(in, map[string]string{"name": "X"})
	if got != "keep {{mystery}} and X" {
		t.Fatalf("got %q", got)
	}
}

func TestSubstituteValueNotRescanned(t *testing.T) {
	got := substitute("{{name}}", map[string]string{
		"name":  "{{email}}",
		"email": "leak@x.com",
	})
	if got != "{{email}}" {
		t.Fatalf("inserted value was rescanned: %q", got)
	}
}

func TestSubstituteUnterminatedDelimiter(t *testing.T) {
	in := "tail {{name"
	if got := substitute(in, map[string]string{"name": "X"}); got != in {
		t.Fatalf("got %q, want input unchanged", got)
	}
}

func TestSubstituteRecognizedTokenAfterStrayOpen(t *testing.T) {
	got := substitute("{{x{{name}}", map[string]string{"name": "Jane"})
	if !strings.Contains(got, "Jane") {
		t.Fatalf("token after stray delimiter not substituted: %q", got)
	}
}
