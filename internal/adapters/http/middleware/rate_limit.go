package middleware

import (
	"log/slog"
	"math"
	"net/http"
	"strconv"

	"golang.org/x/time/rate"

	"github.com/jsamuelsen11/todolist-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/todolist-service/internal/domain"
	"github.com/jsamuelsen11/todolist-service/internal/platform/config"
	"github.com/jsamuelsen11/todolist-service/internal/platform/logging"
)

var errRateLimited = domain.Error{
	Code:    "Request.RateLimited",
	Message: "Too many requests. Retry after the interval in the Retry-After header.",
}

// RateLimit returns middleware that admits requests through a single token
// bucket shared by every client. Rejected requests receive 429 with a
// Retry-After header and the standard error body.
//
// A non-positive RequestsPerSecond disables limiting and the returned
// middleware passes requests straight through.
func RateLimit(cfg config.RateLimitConfig) func(http.Handler) http.Handler {
	if cfg.RequestsPerSecond <= 0 {
		return func(next http.Handler) http.Handler { return next }
	}

	limiter := rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), cfg.BurstSize)
	retryAfter := retryAfterSeconds(cfg.RequestsPerSecond)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				logging.FromContext(r.Context()).WarnContext(r.Context(), "request rate limited",
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
				)
				w.Header().Set("Retry-After", retryAfter)
				dto.WriteErrorStatus(w, r, http.StatusTooManyRequests, errRateLimited)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// retryAfterSeconds is the whole number of seconds until one token refills,
// never less than one.
func retryAfterSeconds(rps float64) string {
	secs := int(math.Ceil(1 / rps))
	return strconv.Itoa(max(secs, 1))
}
