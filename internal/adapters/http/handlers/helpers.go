package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/jsamuelsen11/todolist-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/todolist-service/internal/domain"
)

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", slog.Any("error", err))
	}
}

// writeResult writes the success value of res through render, or its
// failure as an error response.
func writeResult[T, R any](w http.ResponseWriter, r *http.Request, res domain.Result[T], render func(*T) R) {
	if res.IsFailure() {
		dto.WriteErrorResponse(w, r, res.Error())
		return
	}
	v := res.Value()
	writeJSON(w, http.StatusOK, render(&v))
}

// maxJSONBodyBytes is the maximum allowed size for a JSON request body (1 MB).
const maxJSONBodyBytes = 1 << 20

// decodeJSONBody decodes the request body as JSON into dst. The body is
// limited to maxJSONBodyBytes to prevent resource exhaustion. On failure,
// it writes a 400 error response and returns false.
func decodeJSONBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		dto.WriteErrorResponse(w, r, dto.ErrInvalidBody)
		return false
	}
	return true
}

// queryInt reads an integer query parameter, returning def when it is
// absent. ok is false when the value is present but not an integer.
func queryInt(r *http.Request, name string, def int) (v int, ok bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return v, true
}
