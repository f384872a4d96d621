package server

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"resume-builder/internal/resumes"
	"resume-builder/internal/shared/config"
	"resume-builder/internal/shared/metrics"
	"resume-builder/internal/shared/server/middleware"
	"resume-builder/web"
)

// NewRouter constructs the gin engine with middleware and routes registered.
func NewRouter(cfg config.Config, h *resumes.Handler) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(cfg.CORSAllowOrigin),
	)

	// Rendering is the only expensive operation; probes and listings stay
	// unthrottled.
	limit := middleware.RateLimit(middleware.RateLimitRule{
		Rate:  cfg.RateLimitPerSec,
		Burst: cfg.RateLimitBurst,
	}, nil)

	h.RegisterRoutes(r, limit)
	r.GET("/metrics", metrics.Handler())
	web.RegisterRoutes(r)

	return r
}

// Addr returns a normalized listen address for the given port.
func Addr(port string) string {
	if port == "" {
		return ":3000"
	}
	if port[0] == ':' {
		return port
	}
	return fmt.Sprintf(":%s", port)
}
