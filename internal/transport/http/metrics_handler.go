package http

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"fundpulse/internal/dataprocessing"
	apierrors "fundpulse/internal/errors"
	"fundpulse/internal/metrics"
)

// DatasetProvider supplies the current dataset to handlers.
type DatasetProvider interface {
	Load(ctx context.Context) (*dataprocessing.Dataset, error)
	Invalidate()
}

// MetricsHandler serves the dashboard metrics snapshot.
type MetricsHandler struct {
	provider   DatasetProvider
	calculator *metrics.Calculator
	validate   *validator.Validate
	logger     *slog.Logger
}

// NewMetricsHandler creates a new metrics handler.
func NewMetricsHandler(provider DatasetProvider, calculator *metrics.Calculator, logger *slog.Logger) *MetricsHandler {
	return &MetricsHandler{
		provider:   provider,
		calculator: calculator,
		validate:   validator.New(),
		logger:     logger.With(slog.String("handler", "metrics")),
	}
}

// Routes returns the metrics routes.
func (h *MetricsHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(render.SetContentType(render.ContentTypeJSON))
	r.Get("/", h.GetSnapshot)
	return r
}

// snapshotQuery holds the validated filter parameters.
type snapshotQuery struct {
	From     string   `validate:"omitempty,datetime=2006-01-02"`
	To       string   `validate:"omitempty,datetime=2006-01-02"`
	Statuses []string `validate:"omitempty,dive,min=1,max=64"`
}

// GetSnapshot handles GET /api/metrics. Optional query parameters narrow the
// invoice set before aggregation: from/to (inclusive, YYYY-MM-DD) and status
// (repeatable or comma-separated).
func (h *MetricsHandler) GetSnapshot(w http.ResponseWriter, r *http.Request) {
	query := parseSnapshotQuery(r)
	if err := h.validate.Struct(query); err != nil {
		apierrors.WriteError(w, r, apierrors.ErrValidation("query", "invalid filter parameters"))
		return
	}

	filter, err := query.toFilter()
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	dataset, err := h.provider.Load(r.Context())
	if err != nil {
		h.logger.ErrorContext(r.Context(), "Failed to load dataset",
			slog.String("error", err.Error()))
		apierrors.WriteError(w, r, err)
		return
	}

	snapshot := h.calculator.Calculate(filter.Apply(dataset.Invoices), dataset.CreditNotes)
	render.JSON(w, r, snapshot)
}

func parseSnapshotQuery(r *http.Request) *snapshotQuery {
	q := r.URL.Query()

	query := &snapshotQuery{
		From: q.Get("from"),
		To:   q.Get("to"),
	}
	for _, raw := range q["status"] {
		for _, s := range strings.Split(raw, ",") {
			if s = strings.TrimSpace(s); s != "" {
				query.Statuses = append(query.Statuses, s)
			}
		}
	}
	return query
}

// toFilter converts the query to a metrics filter. The "to" bound extends to
// the end of its day so a date-only bound includes that day's invoices.
func (q *snapshotQuery) toFilter() (metrics.Filter, error) {
	var filter metrics.Filter
	filter.Statuses = q.Statuses

	if q.From != "" {
		from, err := time.Parse("2006-01-02", q.From)
		if err != nil {
			return filter, apierrors.ErrValidation("from", "must be a YYYY-MM-DD date")
		}
		filter.From = from
	}
	if q.To != "" {
		to, err := time.Parse("2006-01-02", q.To)
		if err != nil {
			return filter, apierrors.ErrValidation("to", "must be a YYYY-MM-DD date")
		}
		filter.To = to.Add(24*time.Hour - time.Nanosecond)
	}
	if !filter.From.IsZero() && !filter.To.IsZero() && filter.To.Before(filter.From) {
		return filter, apierrors.ErrValidation("to", "must not be before from")
	}
	return filter, nil
}
