package render

import (
	"fmt"
	"html"
	"strings"

	"resume-builder/internal/countries"
)

// Fallback values shown when an optional field is absent. The product always
// renders a plausible-looking example instead of a blank section.
const (
	defaultPhone      = "(555) 123-4567"
	defaultSummary    = "Experienced professional with a proven track record of delivering results."
	defaultExperience = "Professional Experience - Details available upon request"
	defaultEducation  = "Educational background - Details available upon request"
	defaultSkills     = "Communication, Teamwork, Problem Solving"

	// emptyBlock is emitted when a multiline field contains no usable lines,
	// so templates never show a silently blank section.
	emptyBlock = `<p class="empty">No data provided</p>`

	placeholderPhotoURL = "https://via.placeholder.com/110x140?text=Photo"
)

// MultilineItems splits free text on newlines, drops blank lines and escapes
// each remaining line. Order is the order the user typed.
func MultilineItems(text string) []string {
	var items []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		items = append(items, html.EscapeString(line))
	}
	return items
}

// MultilineBlock renders free text as a sequence of item fragments. Empty
// input yields the defined no-data fragment, never an empty string.
func MultilineBlock(text string) string {
	items := MultilineItems(text)
	if len(items) == 0 {
		return emptyBlock
	}
	var b strings.Builder
	for _, item := range items {
		fmt.Fprintf(&b, `<div class="item">%s</div>`, item)
	}
	return b.String()
}

// PersonalDetails emits labeled lines for date of birth, nationality and
// marital status, in that order. A line appears only when the country rule
// demands the field and the request supplies a non-empty value.
func PersonalDetails(req Request, rule countries.Rule) string {
	type field struct {
		want  bool
		label string
		value string
	}
	fields := []field{
		{rule.IncludeDateOfBirth, "Date of Birth", req.DateOfBirth},
		{rule.IncludeNationality, "Nationality", req.Nationality},
		{rule.IncludeMaritalStatus, "Marital Status", req.MaritalStatus},
	}

	var b strings.Builder
	for _, f := range fields {
		value := strings.TrimSpace(f.value)
		if !f.want || value == "" {
			continue
		}
		fmt.Fprintf(&b, `<div class="detail"><span class="label">%s</span> %s</div>`, f.label, html.EscapeString(value))
	}
	return b.String()
}

// PhotoSection emits an image fragment when the country rule requires a
// photo. The rule takes precedence over user intent: no fragment is produced
// for photo-free formats even if a photo URL was supplied.
func PhotoSection(req Request, rule countries.Rule) string {
	if !rule.IncludePhoto {
		return ""
	}
	url := strings.TrimSpace(req.PhotoURL)
	if url == "" {
		url = placeholderPhotoURL
	}
	return fmt.Sprintf(`<div class="photo"><img src="%s" alt="Profile photo"></div>`, html.EscapeString(url))
}

func escapeOr(value, fallback string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		value = fallback
	}
	return html.EscapeString(value)
}
