package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	apierrors "fundpulse/internal/errors"
	"fundpulse/internal/quality"
)

// QualityHandler serves the data quality report.
type QualityHandler struct {
	provider DatasetProvider
	logger   *slog.Logger
}

// NewQualityHandler creates a new quality handler.
func NewQualityHandler(provider DatasetProvider, logger *slog.Logger) *QualityHandler {
	return &QualityHandler{
		provider: provider,
		logger:   logger.With(slog.String("handler", "quality")),
	}
}

// Routes returns the quality routes.
func (h *QualityHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(render.SetContentType(render.ContentTypeJSON))
	r.Get("/", h.GetReport)
	return r
}

// GetReport handles GET /api/quality. The report is computed fresh from the
// current dataset on every call.
func (h *QualityHandler) GetReport(w http.ResponseWriter, r *http.Request) {
	dataset, err := h.provider.Load(r.Context())
	if err != nil {
		h.logger.ErrorContext(r.Context(), "Failed to load dataset",
			slog.String("error", err.Error()))
		apierrors.WriteError(w, r, err)
		return
	}

	render.JSON(w, r, quality.BuildReport(dataset))
}
