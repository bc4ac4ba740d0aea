package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/KudbeeZero/GrowPodEmpirev1.0/internal/database"
	"github.com/KudbeeZero/GrowPodEmpirev1.0/internal/domain"
	"github.com/KudbeeZero/GrowPodEmpirev1.0/mocks"
)

func TestNewRouter(t *testing.T) {
	const key = "k3y"
	opts := Options{APIKey: key, RateLimitRPS: 100, RateLimitBurst: 100}

	svc := mocks.NewMockGrowPodService(t)
	events := mocks.NewMockEventLogService(t)
	svc.On("GetGlobal", mock.Anything).Return(&domain.GlobalConfig{Owner: "OWNER", Version: 3}, nil).Once()

	router := NewRouter(opts, database.NewNopPool(), svc, events)

	t.Run("authenticated api call", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/global", nil)
		req.Header.Set(HeaderAPIKey, key)
		req.Header.Set(HeaderRequestID, "req-42")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "req-42", rec.Header().Get(HeaderRequestID))
		assert.Equal(t, HeaderValueNoSniff, rec.Header().Get(HeaderContentType))

		var g domain.GlobalConfig
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &g))
		assert.Equal(t, uint64(3), g.Version)
	})

	t.Run("missing key", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/global", nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("readiness is public", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("unknown route", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/nope", nil)
		req.Header.Set(HeaderAPIKey, key)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
