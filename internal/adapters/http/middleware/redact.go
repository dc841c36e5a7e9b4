package middleware

import (
	"log/slog"
	"maps"
	"net/http"
	"slices"
	"strings"

	"github.com/jsamuelsen11/todolist-service/internal/platform/logging"
)

const (
	redacted = "[REDACTED]"

	// maxHeaderValueLen caps logged header values; longer values are cut and
	// marked with a trailing "...".
	maxHeaderValueLen = 256
)

// RedactHeaders converts an http.Header map into a slice of slog.Attr values
// suitable for structured logging, sorted by header name. Headers listed in
// logging.SensitiveHeaders are replaced with "[REDACTED]"; all others are
// included with multiple values joined by a comma and truncated to
// maxHeaderValueLen bytes.
func RedactHeaders(headers http.Header) []slog.Attr {
	attrs := make([]slog.Attr, 0, len(headers))
	for _, key := range slices.Sorted(maps.Keys(headers)) {
		if logging.SensitiveHeaders[strings.ToLower(key)] {
			attrs = append(attrs, slog.String(key, redacted))
			continue
		}
		attrs = append(attrs, slog.String(key, truncate(strings.Join(headers[key], ","))))
	}
	return attrs
}

func truncate(v string) string {
	if len(v) <= maxHeaderValueLen {
		return v
	}
	return v[:maxHeaderValueLen] + "..."
}
