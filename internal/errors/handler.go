package errors

import (
	stderrors "errors"
	"net/http"

	"github.com/go-chi/render"
)

// WriteError writes an error response, translating application errors to the
// matching HTTP status. Unknown errors collapse to a generic 500 so internal
// detail never leaks to the client.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	if err == nil {
		return
	}

	var apiErr *APIError
	if stderrors.As(err, &apiErr) {
		render.Render(w, r, apiErr)
		return
	}

	var appErr *AppError
	if stderrors.As(err, &appErr) {
		render.Render(w, r, appErrorToAPIError(appErr))
		return
	}

	render.Render(w, r, ErrInternalServer)
}

// appErrorToAPIError maps typed application errors onto API responses
func appErrorToAPIError(err *AppError) *APIError {
	switch err.Type {
	case ErrTypeValidation:
		return NewWithDetails(http.StatusBadRequest, "VALIDATION_FAILED", err.Message, err.Context)
	case ErrTypeNotFound:
		return NewWithDetails(http.StatusNotFound, "NOT_FOUND", err.Message, err.Context)
	case ErrTypeParsing:
		return NewWithDetails(http.StatusUnprocessableEntity, "PARSING_FAILED", err.Message, err.Context)
	case ErrTypeConfig:
		return NewWithDetails(http.StatusInternalServerError, "CONFIG_ERROR", err.Message, err.Context)
	default:
		return DatasetLoadError(err)
	}
}
