// Package bootstrap builds the application object graph. Tests go through
// Build as well so they exercise the same wiring as production.
package bootstrap

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"resume-builder/internal/countries"
	"resume-builder/internal/pdf"
	"resume-builder/internal/render"
	"resume-builder/internal/resumes"
	"resume-builder/internal/shared/config"
	"resume-builder/internal/shared/server"
)

// App holds shared dependencies.
type App struct {
	Config   config.Config
	Router   *gin.Engine
	Rules    *countries.Table
	Renderer *render.Renderer
	Handler  *resumes.Handler
}

// Build prepares dependencies and the router. A malformed country-rules file
// is a startup error; a missing one falls back to the built-in table.
func Build(cfg config.Config) (*App, error) {
	rules, err := countries.Load(cfg.CountryRulesPath)
	if err != nil {
		return nil, fmt.Errorf("bootstrap: %w", err)
	}

	var engine render.PDFEngine
	if cfg.PDFEnabled {
		engine = pdf.NewEngine(pdf.Options{
			ChromePath:    cfg.ChromePath,
			Timeout:       cfg.PDFTimeout,
			MaxConcurrent: cfg.PDFMaxConcurrent,
		})
	}

	renderer := render.NewRenderer(rules, engine)
	handler := resumes.NewHandler(renderer, rules)

	return &App{
		Config:   cfg,
		Router:   server.NewRouter(cfg, handler),
		Rules:    rules,
		Renderer: renderer,
		Handler:  handler,
	}, nil
}
