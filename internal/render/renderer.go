// Package render holds the resume rendering core: country-rule driven field
// formatting, placeholder substitution and optional PDF output.
package render

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"resume-builder/internal/countries"
	"resume-builder/internal/templates"
)

// Request carries one resume submission. Field names match the JSON body of
// POST /api/generate.
type Request struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
	Summary       string `json:"summary"`
	Experience    string `json:"experience"`
	Education     string `json:"education"`
	Skills        string `json:"skills"`
	Country       string `json:"country"`
	Template      string `json:"template,omitempty"`
	PhotoURL      string `json:"photo,omitempty"`
	DateOfBirth   string `json:"dateOfBirth,omitempty"`
	Nationality   string `json:"nationality,omitempty"`
	MaritalStatus string `json:"maritalStatus,omitempty"`
}

// Result is a rendered resume. It lives only for the duration of a request.
type Result struct {
	HTML       string
	Country    string
	TemplateID string
	ResumeID   string
	PDF        []byte
}

// PDFEngine rasterizes substituted HTML into a fixed-page-size document.
type PDFEngine interface {
	Render(ctx context.Context, html string, rule countries.Rule) ([]byte, error)
}

// Renderer orchestrates rule lookup, template resolution, field formatting
// and substitution. Safe for concurrent use: all state is read-only.
type Renderer struct {
	Rules  *countries.Table
	Engine PDFEngine
}

// NewRenderer constructs a Renderer. engine may be nil when PDF output is not
// deployed; PDF requests then fail with ErrRenderEngine.
func NewRenderer(rules *countries.Table, engine PDFEngine) *Renderer {
	return &Renderer{Rules: rules, Engine: engine}
}

// Render produces the substituted HTML for the request, plus PDF bytes when
// wantPDF is set. Rendering either fully succeeds or fails with a typed
// error; no partial results are returned.
func (r *Renderer) Render(ctx context.Context, req Request, wantPDF bool) (*Result, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	rule := r.Rules.Lookup(req.Country)
	templateID, templateText, err := templates.Resolve(req.Country)
	if err != nil {
		return nil, err
	}

	html := substitute(templateText, map[string]string{
		"name":            escapeOr(req.Name, ""),
		"email":           escapeOr(req.Email, ""),
		"phone":           escapeOr(req.Phone, defaultPhone),
		"address":         escapeOr(req.Address, ""),
		"summary":         escapeOr(req.Summary, defaultSummary),
		"experience":      multilineOr(req.Experience, defaultExperience),
		"education":       multilineOr(req.Education, defaultEducation),
		"skills":          escapeOr(req.Skills, defaultSkills),
		"countryName":     escapeOr(rule.Name, ""),
		"photoSection":    PhotoSection(req, rule),
		"personalDetails": PersonalDetails(req, rule),
	})

	result := &Result{
		HTML:       html,
		Country:    rule.Code,
		TemplateID: templateID,
		ResumeID:   "res-" + uuid.NewString(),
	}

	if wantPDF {
		if r.Engine == nil {
			return nil, fmt.Errorf("%w: no engine configured", ErrRenderEngine)
		}
		pdf, err := r.Engine.Render(ctx, html, rule)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrRenderEngine, err)
		}
		result.PDF = pdf
	}

	return result, nil
}

func validate(req Request) error {
	if strings.TrimSpace(req.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrValidation)
	}
	if strings.TrimSpace(req.Email) == "" {
		return fmt.Errorf("%w: email is required", ErrValidation)
	}
	return nil
}

func multilineOr(text, fallback string) string {
	if strings.TrimSpace(text) == "" {
		text = fallback
	}
	return MultilineBlock(text)
}
