// Package templates maps country codes onto the embedded HTML layouts used
// for resume rendering.
package templates

import (
	"embed"
	"errors"
	"fmt"
	"strings"
)

//go:embed assets/*.html
var assets embed.FS

// ErrNotFound indicates the embedded resource for a valid template identifier
// is missing. That is a packaging defect, not a user error.
var ErrNotFound = errors.New("template resource not found")

// DefaultID is the template every unknown country code resolves to.
const DefaultID = "usa"

var knownIDs = map[string]struct{}{
	"usa":       {},
	"uk":        {},
	"canada":    {},
	"germany":   {},
	"australia": {},
}

// Resolve maps a country code to a template identifier and returns the raw
// template text. Unknown or empty codes resolve to the usa template.
func Resolve(countryCode string) (id string, text string, err error) {
	id = strings.ToLower(strings.TrimSpace(countryCode))
	if _, ok := knownIDs[id]; !ok {
		id = DefaultID
	}
	raw, err := assets.ReadFile(fmt.Sprintf("assets/%s.html", id))
	if err != nil {
		return id, "", fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return id, string(raw), nil
}

// IDs returns the supported template identifiers.
func IDs() []string {
	return []string{"usa", "uk", "canada", "germany", "australia"}
}
