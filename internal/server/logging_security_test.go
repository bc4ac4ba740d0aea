package server

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// captureLogs routes the default logger into a buffer at debug level
func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { slog.SetDefault(prev) })
	return &buf
}

func TestLoggingMiddleware_RedactsCredentials(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		value   string
		secret  string
		visible string
	}{
		{name: "api key", header: HeaderAPIKey, value: "growpod-admin-key", secret: "growpod-admin-key"},
		{name: "authorization", header: HeaderAuthorization, value: "Bearer bot-session", secret: "bot-session"},
		{name: "lowercase api key", header: "x-api-key", value: "lower-key", secret: "lower-key"},
		{name: "bot user agent kept", header: "User-Agent", value: "GrowPodBot/1.0", visible: "GrowPodBot/1.0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := captureLogs(t)
			h := loggingMiddleware(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusOK)
			}))

			req := httptest.NewRequest(http.MethodPost, "/api/v1/accounts/ALICE/actions", nil)
			req.Header.Set(tt.header, tt.value)
			h.ServeHTTP(httptest.NewRecorder(), req)

			out := buf.String()
			require.Contains(t, out, LogMsgRequestHeaders)
			if tt.secret != "" {
				assert.NotContains(t, out, tt.secret)
				assert.Contains(t, out, RedactedValue)
			}
			if tt.visible != "" {
				assert.Contains(t, out, tt.visible)
			}
		})
	}
}

func TestLoggingMiddleware_SkipsHealthRoutes(t *testing.T) {
	buf := captureLogs(t)
	h := loggingMiddleware(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	for _, path := range []string{"/healthz", "/readyz", "/metrics"} {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, rec.Header().Get(HeaderRequestID), path)
	}
	assert.Empty(t, buf.String())
}
