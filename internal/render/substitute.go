package render

import "strings"

const (
	tokenOpen  = "{{"
	tokenClose = "}}"
)

// recognizedTokens is the closed set of placeholders templates may use.
// Substitution replaces exactly these; anything else between delimiters is
// left untouched.
var recognizedTokens = map[string]struct{}{
	"name":            {},
	"email":           {},
	"phone":           {},
	"address":         {},
	"summary":         {},
	"experience":      {},
	"education":       {},
	"skills":          {},
	"countryName":     {},
	"photoSection":    {},
	"personalDetails": {},
}

// substitute replaces recognized tokens with their values in a single left to
// right pass. Inserted values are never rescanned, so a value containing
// token syntax cannot trigger a second substitution. Recognized tokens absent
// from the value map become empty strings.
func substitute(template string, values map[string]string) string {
	var b strings.Builder
	b.Grow(len(template))

	rest := template
	for {
		open := strings.Index(rest, tokenOpen)
		if open < 0 {
			b.WriteString(rest)
			return b.String()
		}
		end := strings.Index(rest[open:], tokenClose)
		if end < 0 {
			b.WriteString(rest)
			return b.String()
		}
		end += open

		token := rest[open+len(tokenOpen) : end]
		b.WriteString(rest[:open])
		if _, ok := recognizedTokens[token]; ok {
			b.WriteString(values[token])
			rest = rest[end+len(tokenClose):]
			continue
		}
		// Unknown token: emit the delimiter literally and rescan after it,
		// in case a recognized token opens inside.
		b.WriteString(tokenOpen)
		rest = rest[open+len(tokenOpen):]
	}
}
