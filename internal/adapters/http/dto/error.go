package dto

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/todolist-service/internal/domain"
)

// Transport-level failures raised before a service is called.
var (
	ErrInvalidBody  = domain.Validation("Request.InvalidBody", "The request body is not valid JSON.")
	ErrInvalidQuery = domain.Validation("Request.InvalidQuery", "Query parameters 'pageSize' and 'pageNumber' must be integers.")
)

// ErrorResponse is the JSON body of every failed request.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// NewErrorResponse converts a domain error to its response body.
func NewErrorResponse(err domain.Error) ErrorResponse {
	return ErrorResponse{Code: err.Code, Message: err.Message}
}

// WriteErrorResponse writes err as JSON with the status its category maps
// to.
func WriteErrorResponse(w http.ResponseWriter, r *http.Request, err domain.Error) {
	WriteErrorStatus(w, r, StatusFor(err), err)
}

// WriteErrorStatus writes err as JSON with an explicit status. It serves
// failures decided by the transport itself (routing, timeouts, rate
// limiting, panics) rather than by a service.
func WriteErrorStatus(w http.ResponseWriter, r *http.Request, status int, err domain.Error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if encErr := json.NewEncoder(w).Encode(NewErrorResponse(err)); encErr != nil {
		slog.ErrorContext(r.Context(), "failed to encode error response",
			slog.Any("error", encErr),
		)
	}
}

// StatusFor maps domain sentinel errors to HTTP status codes. Conflicts and
// business rule violations are client errors reported as 400.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrConflict),
		errors.Is(err, domain.ErrBusiness):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
