package resumes

import (
	"resume-builder/internal/countries"
	"resume-builder/internal/render"
)

// generateRequest is the POST /api/generate body: a resume submission plus
// the optional pdf switch.
type generateRequest struct {
	render.Request
	PDF bool `json:"pdf,omitempty"`
}

// generateResponse mirrors the success envelope the form expects.
type generateResponse struct {
	Success     bool   `json:"success"`
	Message     string `json:"message"`
	HTML        string `json:"html"`
	Country     string `json:"country"`
	Template    string `json:"template"`
	ResumeID    string `json:"resumeId"`
	GeneratedAt string `json:"generatedAt"`
}

// countryResponse is one entry of GET /api/countries.
type countryResponse struct {
	Code         string `json:"code"`
	Name         string `json:"name"`
	PageSize     string `json:"pageSize"`
	IncludePhoto bool   `json:"includePhoto"`
	Guideline    string `json:"guideline,omitempty"`
}

func toCountryResponse(rule countries.Rule) countryResponse {
	return countryResponse{
		Code:         rule.Code,
		Name:         rule.Name,
		PageSize:     string(rule.PageSize),
		IncludePhoto: rule.IncludePhoto,
		Guideline:    rule.Guideline,
	}
}
