package vtex

import (
	"errors"
	"fmt"
	"log/slog"
)

const maxErrorBody = 4096

// UpstreamError reports a failed upstream call: either a non-2xx response
// (StatusCode and Body set) or a transport/decode failure (Err set).
type UpstreamError struct {
	Method     string
	URL        string
	StatusCode int
	Body       string
	Err        error
}

func (e *UpstreamError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("vtex %s %s: %v", e.Method, e.URL, e.Err)
	}
	if e.Body == "" {
		return fmt.Sprintf("vtex %s %s: status %d", e.Method, e.URL, e.StatusCode)
	}
	return fmt.Sprintf("vtex %s %s: status %d: %s", e.Method, e.URL, e.StatusCode, e.Body)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// LogValue exposes the full upstream detail to structured logs.
func (e *UpstreamError) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.String("method", e.Method),
		slog.String("url", e.URL),
	}
	if e.StatusCode != 0 {
		attrs = append(attrs, slog.Int("status", e.StatusCode))
	}
	if e.Body != "" {
		attrs = append(attrs, slog.String("response", e.Body))
	}
	if e.Err != nil {
		attrs = append(attrs, slog.String("cause", e.Err.Error()))
	}
	return slog.GroupValue(attrs...)
}

// StatusCode returns the upstream status carried by err, or 0.
func StatusCode(err error) int {
	var upErr *UpstreamError
	if errors.As(err, &upErr) {
		return upErr.StatusCode
	}
	return 0
}

func truncate(value string, limit int) string {
	if len(value) <= limit {
		return value
	}
	return value[:limit] + "..."
}
