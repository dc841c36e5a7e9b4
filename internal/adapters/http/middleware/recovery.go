package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/jsamuelsen11/todolist-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/todolist-service/internal/domain"
)

// errPanic is the body sent when a panic is recovered. The panic value and
// stack trace are logged but never exposed in the HTTP response.
var errPanic = domain.Internal("Request.Panic")

// Recovery returns middleware that recovers from panics in handlers. The panic
// is logged with the full stack trace and the client receives a 500 with the
// standard error body. If the response headers have already been written,
// only the log entry is emitted.
//
// http.ErrAbortHandler is re-raised so net/http can abort the connection
// silently, as it expects.
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rw := newResponseWriter(w)

			defer func() {
				v := recover()
				if v == nil {
					return
				}
				if v == http.ErrAbortHandler {
					panic(v)
				}

				logger.ErrorContext(r.Context(), "panic recovered",
					slog.String("panic", fmt.Sprint(v)),
					slog.String("stack", string(debug.Stack())),
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
				)

				if !rw.headerWritten {
					dto.WriteErrorResponse(rw, r, errPanic)
				}
			}()

			next.ServeHTTP(rw, r)
		})
	}
}
