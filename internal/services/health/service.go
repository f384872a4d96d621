package health

import "time"

// ServiceName appears in the health payload so probes can tell deployments
// apart.
const ServiceName = "resume-builder"

// Service encapsulates health-related checks.
type Service struct {
	now func() time.Time
}

// NewService constructs a new health service.
func NewService() *Service {
	return &Service{now: time.Now}
}

// Status returns the liveness payload.
func (s *Service) Status() map[string]any {
	return map[string]any{
		"status":    "ok",
		"service":   ServiceName,
		"timestamp": s.now().UTC().Format(time.RFC3339),
		"endpoints": []string{
			"GET /api/health",
			"GET /api/countries",
			"POST /api/generate",
		},
	}
}
