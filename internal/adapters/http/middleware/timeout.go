package middleware

import (
	"context"
	"fmt"
	"maps"
	"net/http"
	"runtime/debug"
	"sync"
	"time"

	"github.com/jsamuelsen11/todolist-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/todolist-service/internal/domain"
)

var errRequestTimeout = domain.Error{
	Code:    "Request.Timeout",
	Message: "The request did not complete within the allowed time.",
}

// Timeout returns middleware that enforces a request deadline. If the handler
// does not complete within the given duration, a 504 Gateway Timeout response
// carrying the standard error body is written. The context passed to the
// handler carries the deadline so that store calls can respect it.
//
// The handler runs in a separate goroutine and writes into a buffer. The
// buffer's mutex ensures that exactly one of the handler or the timeout path
// reaches the real writer. A panic in the handler goroutine is re-raised on
// the serving goroutine so Recovery sees it.
//
// Timeout does not return until the handler goroutine has finished, even
// after answering 504. Outer middleware therefore never reads request state
// (such as the chi route context) while the handler may still be writing it.
// Handlers must honor context cancellation.
func Timeout(timeout time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), timeout)
			defer cancel()

			tw := &timeoutWriter{w: w}
			done := make(chan struct{})
			panicked := make(chan any, 1)

			go func() {
				defer func() {
					if p := recover(); p != nil {
						panicked <- handlerPanic(p)
						return
					}
					close(done)
				}()
				next.ServeHTTP(tw, r.WithContext(ctx))
			}()

			finished := false
			select {
			case p := <-panicked:
				panic(p)
			case <-done:
				finished = true
			case <-ctx.Done():
			}

			tw.mu.Lock()
			if finished && ctx.Err() == nil {
				tw.flush()
				tw.mu.Unlock()
				return
			}
			// Anything the handler buffered is discarded.
			tw.timedOut = true
			dto.WriteErrorStatus(w, r, http.StatusGatewayTimeout, errRequestTimeout)
			tw.mu.Unlock()

			if finished {
				return
			}
			_ = http.NewResponseController(w).Flush()

			select {
			case p := <-panicked:
				panic(p)
			case <-done:
			}
		})
	}
}

// handlerPanic keeps the handler goroutine's stack with the panic value, as
// net/http.TimeoutHandler does. http.ErrAbortHandler passes through as is.
func handlerPanic(p any) any {
	if p == http.ErrAbortHandler {
		return p
	}
	return fmt.Sprintf("%v\n\n%s", p, debug.Stack())
}

// timeoutWriter buffers the response so that the timeout path can safely
// write a 504 if the handler hasn't finished. All writes are guarded by a
// mutex shared between the handler goroutine and the timeout select.
type timeoutWriter struct {
	w           http.ResponseWriter
	mu          sync.Mutex
	header      http.Header
	buf         []byte
	statusCode  int
	wroteHeader bool
	timedOut    bool
}

func (tw *timeoutWriter) Header() http.Header {
	tw.mu.Lock()
	defer tw.mu.Unlock()

	if tw.header == nil {
		tw.header = make(http.Header)
	}
	return tw.header
}

func (tw *timeoutWriter) Write(b []byte) (int, error) {
	tw.mu.Lock()
	defer tw.mu.Unlock()

	if tw.timedOut {
		return 0, http.ErrHandlerTimeout
	}
	if !tw.wroteHeader {
		tw.statusCode = http.StatusOK
		tw.wroteHeader = true
	}
	tw.buf = append(tw.buf, b...)
	return len(b), nil
}

func (tw *timeoutWriter) WriteHeader(code int) {
	tw.mu.Lock()
	defer tw.mu.Unlock()

	if tw.wroteHeader {
		return
	}
	tw.statusCode = code
	tw.wroteHeader = true
}

// flush copies the buffered response to the underlying writer. Must be
// called with tw.mu held.
func (tw *timeoutWriter) flush() {
	if tw.header != nil {
		maps.Copy(tw.w.Header(), tw.header)
	}
	if tw.wroteHeader {
		tw.w.WriteHeader(tw.statusCode)
	}
	if len(tw.buf) > 0 {
		_, _ = tw.w.Write(tw.buf)
	}
}
