package countries

import (
	"fmt"
	"os"
	"strings"

	"github.com/goccy/go-yaml"
)

// DefaultCode is the rule every unknown or empty country code resolves to.
const DefaultCode = "usa"

const defaultMarginInches = 0.5

// Table maps country codes to formatting rules. It is populated once at
// startup and read-only afterwards, so lookups are safe for any number of
// concurrent readers.
type Table struct {
	rules map[string]Rule
	order []string
}

// Lookup returns the rule for the given country code. Unknown or empty codes
// resolve to the USA rule; Lookup never fails.
func (t *Table) Lookup(code string) Rule {
	normalized := strings.ToLower(strings.TrimSpace(code))
	if rule, ok := t.rules[normalized]; ok {
		return rule
	}
	return t.rules[DefaultCode]
}

// All returns the configured rules in their declaration order.
func (t *Table) All() []Rule {
	out := make([]Rule, 0, len(t.order))
	for _, code := range t.order {
		out = append(out, t.rules[code])
	}
	return out
}

// Defaults returns the built-in rule table for the five supported countries.
// Used when no rules file is deployed.
func Defaults() *Table {
	even := Margins{Top: defaultMarginInches, Right: defaultMarginInches, Bottom: defaultMarginInches, Left: defaultMarginInches}
	rules := []Rule{
		{
			Code: "usa", Name: "United States", PageSize: PageLetter, Margins: even,
			Guideline: "1 page maximum, achievement-focused, reverse chronological, no photo",
		},
		{
			Code: "uk", Name: "United Kingdom", PageSize: PageA4, Margins: even,
			Guideline: "2 pages standard, personal statement at the top, full career history",
		},
		{
			Code: "canada", Name: "Canada", PageSize: PageLetter, Margins: even,
			IncludeNationality: true,
			Guideline:          "1-2 pages, transferable skills, volunteer work valued, citizenship optional",
		},
		{
			Code: "germany", Name: "Germany", PageSize: PageA4, Margins: even,
			IncludePhoto: true, IncludeDateOfBirth: true, IncludeNationality: true, IncludeMaritalStatus: true,
			Guideline: "Lebenslauf: photo expected, strict chronology, include personal details",
		},
		{
			Code: "australia", Name: "Australia", PageSize: PageA4, Margins: even,
			Guideline: "2-4 pages comprehensive, Australian referees, address selection criteria",
		},
	}
	table, err := build(rules)
	if err != nil {
		// The built-in table is validated by tests; a failure here is a bug.
		panic(err)
	}
	return table
}

type rulesFile struct {
	Countries []Rule `yaml:"countries"`
}

// Load reads the rule table from a YAML file. A missing path (or empty path)
// falls back to the built-in defaults; a malformed file is a startup error,
// never a silent per-field default.
func Load(path string) (*Table, error) {
	if path == "" {
		return Defaults(), nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Defaults(), nil
		}
		return nil, fmt.Errorf("read country rules: %w", err)
	}
	return Parse(raw)
}

// Parse builds a validated table from raw YAML.
func Parse(raw []byte) (*Table, error) {
	if err := validateSchema(raw); err != nil {
		return nil, err
	}
	var file rulesFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("parse country rules: %w", err)
	}
	return build(file.Countries)
}

func build(rules []Rule) (*Table, error) {
	if len(rules) == 0 {
		return nil, fmt.Errorf("country rules: no countries defined")
	}
	table := &Table{rules: make(map[string]Rule, len(rules))}
	for _, rule := range rules {
		code := strings.ToLower(strings.TrimSpace(rule.Code))
		if code == "" {
			return nil, fmt.Errorf("country rules: entry with empty code")
		}
		if _, dup := table.rules[code]; dup {
			return nil, fmt.Errorf("country rules: duplicate code %q", code)
		}
		if !rule.PageSize.Valid() {
			return nil, fmt.Errorf("country rules: %s: unknown page size %q", code, rule.PageSize)
		}
		rule.Code = code
		table.rules[code] = rule
		table.order = append(table.order, code)
	}
	if _, ok := table.rules[DefaultCode]; !ok {
		return nil, fmt.Errorf("country rules: default country %q missing", DefaultCode)
	}
	return table, nil
}
