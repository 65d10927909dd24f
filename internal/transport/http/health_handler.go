package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"fundpulse/internal/config"
)

// HealthHandler handles health-related HTTP requests.
type HealthHandler struct {
	paths     *config.Paths
	version   string
	startedAt time.Time
	logger    *slog.Logger
}

// NewHealthHandler creates a new health handler.
func NewHealthHandler(paths *config.Paths, version string, logger *slog.Logger) *HealthHandler {
	return &HealthHandler{
		paths:     paths,
		version:   version,
		startedAt: time.Now(),
		logger:    logger.With(slog.String("handler", "health")),
	}
}

// Routes returns the health routes.
func (h *HealthHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(render.SetContentType(render.ContentTypeJSON))
	r.Get("/", h.HealthCheck)
	r.Get("/ready", h.ReadinessCheck)
	r.Get("/live", h.LivenessCheck)
	return r
}

// HealthCheck handles GET /api/health.
func (h *HealthHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, map[string]interface{}{
		"status":  "healthy",
		"version": h.version,
		"uptime":  time.Since(h.startedAt).String(),
	})
}

// ReadinessCheck handles GET /api/health/ready. The service is ready when
// both data files are present.
func (h *HealthHandler) ReadinessCheck(w http.ResponseWriter, r *http.Request) {
	checks := map[string]bool{
		"invoices_file":     config.FileExists(h.paths.InvoicesFile),
		"credit_notes_file": config.FileExists(h.paths.CreditNotesFile),
	}

	ready := true
	for _, ok := range checks {
		if !ok {
			ready = false
			break
		}
	}

	status := "ready"
	if !ready {
		status = "not ready"
		w.WriteHeader(http.StatusServiceUnavailable)
	}
	render.JSON(w, r, map[string]interface{}{
		"status": status,
		"checks": checks,
	})
}

// LivenessCheck handles GET /api/health/live.
func (h *HealthHandler) LivenessCheck(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, map[string]interface{}{"status": "alive"})
}

// Version handles GET /api/version.
func (h *HealthHandler) Version(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, map[string]interface{}{
		"version": h.version,
	})
}
