package logging

import (
	"log/slog"
	"net/http"
	"time"
)

// Transport is an http.RoundTripper that logs every outbound API call.
type Transport struct {
	// Base performs the actual round trip; nil means
	// http.DefaultTransport.
	Base http.RoundTripper
}

// RoundTrip logs the method, path, status, and duration of the request.
// Successful calls log at debug, rejections at warn, transport failures
// at error.
func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	base := t.Base
	if base == nil {
		base = http.DefaultTransport
	}

	start := time.Now()
	resp, err := base.RoundTrip(req)
	duration := time.Since(start)

	if err != nil {
		slog.Error("request",
			"method", req.Method,
			"path", req.URL.Path,
			"duration", duration.String(),
			"error", err,
		)
		return nil, err
	}

	level := slog.LevelDebug
	if resp.StatusCode >= 400 {
		level = slog.LevelWarn
	}
	slog.Log(req.Context(), level, "request",
		"method", req.Method,
		"path", req.URL.Path,
		"status", resp.StatusCode,
		"duration", duration.String(),
	)

	return resp, nil
}
