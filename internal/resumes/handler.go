// Package resumes is the HTTP boundary for resume generation. Handlers stay
// thin: they validate presence, call the renderer and map typed errors onto
// HTTP statuses.
package resumes

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"resume-builder/internal/countries"
	"resume-builder/internal/render"
	"resume-builder/internal/services/health"
	"resume-builder/internal/shared/metrics"
	"resume-builder/internal/shared/server/respond"
	"resume-builder/internal/templates"
)

// Handler wires HTTP handlers to the rendering core.
type Handler struct {
	Renderer *render.Renderer
	Rules    *countries.Table
	Health   *health.Service
}

// NewHandler constructs a Handler.
func NewHandler(renderer *render.Renderer, rules *countries.Table) *Handler {
	return &Handler{
		Renderer: renderer,
		Rules:    rules,
		Health:   health.NewService(),
	}
}

// RegisterRoutes attaches resume routes to the router. The bare aliases keep
// older form revisions working; they predate the /api prefix. limit guards
// the generate endpoints only.
func (h *Handler) RegisterRoutes(r *gin.Engine, limit gin.HandlerFunc) {
	r.POST("/api/generate", limit, h.generate)
	r.POST("/generate", limit, h.generate)
	r.GET("/api/countries", h.countries)
	r.GET("/templates", h.countries)
	r.GET("/api/health", h.health)
	r.GET("/health", h.health)
}

func (h *Handler) generate(c *gin.Context) {
	var req generateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, render.ErrorCodeValidation, "invalid request body")
		return
	}

	wantPDF := req.PDF || strings.EqualFold(c.Query("format"), "pdf")

	metrics.IncRenderStarted()
	start := time.Now()
	result, err := h.Renderer.Render(c.Request.Context(), req.Request, wantPDF)
	elapsed := time.Since(start)
	if err != nil {
		metrics.IncRenderFailed()
		switch {
		case errors.Is(err, render.ErrValidation):
			respond.Error(c, http.StatusBadRequest, render.ErrorCodeValidation, userMessage(err))
		case errors.Is(err, templates.ErrNotFound):
			// Deployment defect, not user input: logged loudly, reported blandly.
			respond.Error(c, http.StatusInternalServerError, render.ErrorCodeTemplateNotFound, "resume template unavailable")
		case errors.Is(err, render.ErrRenderEngine):
			respond.Error(c, http.StatusBadGateway, render.ErrorCodeRenderEngine, "PDF rendering failed, try again or request HTML output")
		default:
			respond.Error(c, http.StatusInternalServerError, render.ErrorCodeInternal, "resume generation failed")
		}
		return
	}
	metrics.IncRenderCompleted()
	metrics.ObserveRenderDurationMs(float64(elapsed.Microseconds()) / 1000.0)

	c.Set("country", result.Country)
	c.Set("resumeId", result.ResumeID)

	if wantPDF {
		metrics.IncPDFRendered()
		metrics.ObservePDFDurationMs(float64(elapsed.Microseconds()) / 1000.0)
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", pdfFileName(req.Name)))
		c.Data(http.StatusOK, "application/pdf", result.PDF)
		return
	}

	respond.OK(c, generateResponse{
		Success:     true,
		Message:     fmt.Sprintf("Resume for %s generated successfully!", strings.TrimSpace(req.Name)),
		HTML:        result.HTML,
		Country:     result.Country,
		Template:    result.TemplateID,
		ResumeID:    result.ResumeID,
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
	})
}

func (h *Handler) countries(c *gin.Context) {
	rules := h.Rules.All()
	out := make([]countryResponse, 0, len(rules))
	for _, rule := range rules {
		out = append(out, toCountryResponse(rule))
	}
	respond.OK(c, gin.H{"success": true, "countries": out})
}

func (h *Handler) health(c *gin.Context) {
	respond.OK(c, h.Health.Status())
}

// userMessage strips the sentinel prefix so responses read like form hints,
// not Go error chains.
func userMessage(err error) string {
	msg := err.Error()
	if idx := strings.LastIndex(msg, ": "); idx >= 0 {
		msg = msg[idx+2:]
	}
	return msg
}

func pdfFileName(name string) string {
	base := strings.TrimSpace(strings.ToLower(name))
	base = strings.ReplaceAll(base, " ", "-")
	if base == "" {
		base = "resume"
	}
	return base + "-resume.pdf"
}
