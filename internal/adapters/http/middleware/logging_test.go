package middleware_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/todolist-service/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/todolist-service/internal/platform/logging"
)

func TestLogging_LogsStartAndCompletion(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := testLogger(&buf)

	handler := middleware.Logging(logger)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusCreated)
	}))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/items", http.NoBody)
	handler.ServeHTTP(rec, req)

	output := buf.String()
	if !strings.Contains(output, "request started") {
		t.Error("log output missing 'request started'")
	}
	if !strings.Contains(output, "request completed") {
		t.Error("log output missing 'request completed'")
	}
	if !strings.Contains(output, "POST") {
		t.Error("log output missing method")
	}
	if !strings.Contains(output, "/items") {
		t.Error("log output missing path")
	}
}

func TestLogging_EnrichesLoggerWithIDs(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := testLogger(&buf)

	// Chain: RequestID → CorrelationID → Logging → handler
	handler := middleware.RequestID()(
		middleware.CorrelationID()(
			middleware.Logging(logger)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusOK)
			})),
		),
	)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/test", http.NoBody)
	req.Header.Set("X-Request-ID", "req-log-test")
	req.Header.Set("X-Correlation-ID", "corr-log-test")
	handler.ServeHTTP(rec, req)

	output := buf.String()
	if !strings.Contains(output, "req-log-test") {
		t.Error("log output missing request_id")
	}
	if !strings.Contains(output, "corr-log-test") {
		t.Error("log output missing correlation_id")
	}
}

func TestLogging_StoresEnrichedLoggerInContext(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := testLogger(&buf)

	var contextLoggerFound bool
	handler := middleware.RequestID()(
		middleware.Logging(logger)(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
			ctxLogger := logging.FromContext(r.Context())
			// The context logger should be the enriched one, not slog.Default().
			contextLoggerFound = ctxLogger != nil
			ctxLogger.Info("handler log")
		})),
	)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/test", http.NoBody)
	req.Header.Set("X-Request-ID", "ctx-logger-test")
	handler.ServeHTTP(rec, req)

	if !contextLoggerFound {
		t.Error("logging.FromContext returned nil, want enriched logger")
	}

	output := buf.String()
	if !strings.Contains(output, "handler log") {
		t.Error("handler log not captured, enriched logger may not be stored in context")
	}
	if !strings.Contains(output, "ctx-logger-test") {
		t.Error("handler log missing request_id from enriched logger")
	}
}

func TestLogging_IncludesDuration(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := testLogger(&buf)

	handler := middleware.Logging(logger)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/test", http.NoBody)
	handler.ServeHTTP(rec, req)

	output := buf.String()
	if !strings.Contains(output, "duration") {
		t.Error("log output missing duration")
	}
}

func TestLogging_IncludesStatusCode(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := testLogger(&buf)

	handler := middleware.Logging(logger)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/missing", http.NoBody)
	handler.ServeHTTP(rec, req)

	output := buf.String()
	if !strings.Contains(output, "status=404") {
		t.Errorf("log output missing status=404, got: %s", output)
	}
}

func TestLogging_CompletionLevelFollowsStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		status int
		want   string
	}{
		{"success", http.StatusOK, "level=INFO msg=\"request completed\""},
		{"client error", http.StatusBadRequest, "level=WARN msg=\"request completed\""},
		{"server error", http.StatusInternalServerError, "level=ERROR msg=\"request completed\""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			handler := middleware.Logging(testLogger(&buf))(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
			}))

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/todos", http.NoBody))

			if !strings.Contains(buf.String(), tt.want) {
				t.Errorf("log output = %s, want it to contain %s", buf.String(), tt.want)
			}
		})
	}
}

func TestLogging_IncludesRouteAndBytes(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	r := chi.NewRouter()
	r.Use(middleware.Logging(testLogger(&buf)))
	r.Get("/api/todos/{id}", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("hello"))
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/todos/abc", http.NoBody))

	output := buf.String()
	if !strings.Contains(output, "route=/api/todos/{id}") {
		t.Errorf("log output missing route pattern, got: %s", output)
	}
	if !strings.Contains(output, "bytes=5") {
		t.Errorf("log output missing bytes=5, got: %s", output)
	}
}

func TestLogging_RouteAfterTimeout(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	r := chi.NewRouter()
	r.Use(middleware.Logging(testLogger(&buf)))
	r.Use(middleware.Timeout(20 * time.Millisecond))
	r.Get("/api/todos/{id}", func(_ http.ResponseWriter, req *http.Request) {
		<-req.Context().Done()
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/todos/abc", http.NoBody))

	output := buf.String()
	if !strings.Contains(output, "status=504") {
		t.Errorf("log output missing status=504, got: %s", output)
	}
	if !strings.Contains(output, "route=/api/todos/{id}") {
		t.Errorf("log output missing route pattern, got: %s", output)
	}
}

func TestLogging_DebugHeadersRedacted(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	handler := middleware.Logging(testLogger(&buf))(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodPost, "/api/accounts", http.NoBody)
	req.Header.Set("Authorization", "Bearer abc.def.ghi")
	req.Header.Set("Content-Type", "application/json")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	output := buf.String()
	if !strings.Contains(output, "request headers") {
		t.Fatalf("debug header entry missing, got: %s", output)
	}
	if strings.Contains(output, "abc.def.ghi") {
		t.Error("log output contains the Authorization value, want it redacted")
	}
	if !strings.Contains(output, "Content-Type=application/json") {
		t.Errorf("log output missing Content-Type, got: %s", output)
	}
}
