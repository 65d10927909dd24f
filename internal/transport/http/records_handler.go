package http

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	apierrors "fundpulse/internal/errors"
)

const (
	defaultPageSize = 50
	maxPageSize     = 500
)

// RecordsHandler serves the raw invoice and credit note records backing the
// dashboard tables.
type RecordsHandler struct {
	provider DatasetProvider
	logger   *slog.Logger
}

// NewRecordsHandler creates a new records handler.
func NewRecordsHandler(provider DatasetProvider, logger *slog.Logger) *RecordsHandler {
	return &RecordsHandler{
		provider: provider,
		logger:   logger.With(slog.String("handler", "records")),
	}
}

// Routes returns the record routes.
func (h *RecordsHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(render.SetContentType(render.ContentTypeJSON))
	r.Get("/invoices", h.GetInvoices)
	r.Get("/credit-notes", h.GetCreditNotes)
	r.Post("/reload", h.Reload)
	return r
}

// pageParams reads limit/offset query parameters with bounds applied.
func pageParams(r *http.Request) (limit, offset int, err error) {
	limit = defaultPageSize
	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil || limit < 1 || limit > maxPageSize {
			return 0, 0, apierrors.ErrValidation("limit", "must be an integer between 1 and 500")
		}
	}
	if raw := r.URL.Query().Get("offset"); raw != "" {
		offset, err = strconv.Atoi(raw)
		if err != nil || offset < 0 {
			return 0, 0, apierrors.ErrValidation("offset", "must be a non-negative integer")
		}
	}
	return limit, offset, nil
}

// GetInvoices handles GET /api/records/invoices.
func (h *RecordsHandler) GetInvoices(w http.ResponseWriter, r *http.Request) {
	limit, offset, err := pageParams(r)
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

	total := len(dataset.Invoices)
	start, end := pageBounds(total, limit, offset)
	render.JSON(w, r, map[string]interface{}{
		"total":    total,
		"limit":    limit,
		"offset":   offset,
		"invoices": dataset.Invoices[start:end],
	})
}

// GetCreditNotes handles GET /api/records/credit-notes.
func (h *RecordsHandler) GetCreditNotes(w http.ResponseWriter, r *http.Request) {
	limit, offset, err := pageParams(r)
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

	total := len(dataset.CreditNotes)
	start, end := pageBounds(total, limit, offset)
	render.JSON(w, r, map[string]interface{}{
		"total":        total,
		"limit":        limit,
		"offset":       offset,
		"credit_notes": dataset.CreditNotes[start:end],
	})
}

// Reload handles POST /api/records/reload. It drops the cached dataset so
// the next read picks up replaced files even when their timestamps are
// unchanged.
func (h *RecordsHandler) Reload(w http.ResponseWriter, r *http.Request) {
	h.provider.Invalidate()
	h.logger.InfoContext(r.Context(), "Dataset reload requested")
	render.JSON(w, r, map[string]interface{}{"reloaded": true})
}

func pageBounds(total, limit, offset int) (start, end int) {
	start = offset
	if start > total {
		start = total
	}
	end = start + limit
	if end > total {
		end = total
	}
	return start, end
}
