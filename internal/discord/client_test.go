package discord

import (
	"context"
	"encoding/json"
	"net/http"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KudbeeZero/GrowPodEmpirev1.0/internal/domain"
)

func TestAPIClient_GetAccount_EscapesAddress(t *testing.T) {
	tc := setupTestContext(t)

	tc.Mux.HandleFunc("GET /api/v1/accounts/{address}", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-api-key", r.Header.Get("X-API-Key"))
		writeJSON(w, http.StatusOK, domain.AccountState{
			Address:  r.PathValue("address"),
			Pods:     []domain.PodState{{Stage: domain.StageGrowing2}},
			Progress: domain.AccountProgress{PodSlotCount: 1},
		})
	})

	a, err := tc.APIClient.GetAccount(context.Background(), "AB/CD")
	require.NoError(t, err)
	assert.Equal(t, "AB/CD", a.Address)
	require.Len(t, a.Pods, 1)
	assert.Equal(t, domain.StageGrowing2, a.Pods[0].Stage)
}

func TestAPIClient_Invoke(t *testing.T) {
	tc := setupTestContext(t)

	tc.Mux.HandleFunc("POST /api/v1/accounts/{address}/actions", func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Action   string   `json:"action"`
			UintArgs []uint64 `json:"uint_args"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "water_3", body.Action)
		assert.Equal(t, []uint64{600}, body.UintArgs)

		writeJSON(w, http.StatusOK, InvokeResponse{
			Action: "water",
			Pod:    2,
			Events: []domain.ActionEvent{{Type: domain.EventTypePodWatered}},
		})
	})

	res, err := tc.APIClient.Invoke(context.Background(), "ADDR", "water_3", 600)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Pod)
	require.Len(t, res.Events, 1)
	assert.Equal(t, domain.EventTypePodWatered, res.Events[0].Type)
}

func TestAPIClient_DecodesAPIError(t *testing.T) {
	tests := []struct {
		name         string
		status       int
		body         string
		wantMessage  string
		wantRejected bool
	}{
		{"rejection", http.StatusUnprocessableEntity, `{"error":"invalid stage for action","rejected":true}`, "invalid stage for action", true},
		{"plain error", http.StatusNotFound, `{"error":"account not opted in"}`, "account not opted in", false},
		{"non json body", http.StatusInternalServerError, `boom`, "unexpected status 500", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tc := setupTestContext(t)
			tc.Mux.HandleFunc("GET /api/v1/global", func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			_, err := tc.APIClient.GetGlobal(context.Background())
			var apiErr *APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tt.status, apiErr.Status)
			assert.Equal(t, tt.wantMessage, apiErr.Message)
			assert.Equal(t, tt.wantRejected, apiErr.Rejected)
		})
	}
}

func TestAPIClient_RetriesUnavailable(t *testing.T) {
	tc := setupTestContext(t)

	var calls atomic.Int32
	tc.Mux.HandleFunc("GET /api/v1/global", func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		writeJSON(w, http.StatusOK, domain.GlobalConfig{Version: 7})
	})

	g, err := tc.APIClient.GetGlobal(context.Background())
	require.NoError(t, err)
	assert.Equal(t, uint64(7), g.Version)
	assert.Equal(t, int32(3), calls.Load())
}

func TestAPIClient_DoesNotRetryRejections(t *testing.T) {
	tc := setupTestContext(t)

	var calls atomic.Int32
	tc.Mux.HandleFunc("POST /api/v1/accounts/{address}/actions", func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
	})

	_, err := tc.APIClient.Invoke(context.Background(), "ADDR", "harvest")
	require.Error(t, err)
	assert.Equal(t, int32(1), calls.Load())
}

func TestAPIClient_GivesUpAfterMaxRetries(t *testing.T) {
	tc := setupTestContext(t)

	var calls atomic.Int32
	tc.Mux.HandleFunc("GET /api/v1/global", func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := tc.APIClient.GetGlobal(context.Background())
	assert.ErrorContains(t, err, "max retries exceeded")
	assert.Equal(t, int32(defaultMaxRetries+1), calls.Load())
}

func TestAPIClient_Healthy(t *testing.T) {
	tc := setupTestContext(t)
	assert.False(t, tc.APIClient.Healthy(context.Background()))

	tc.Mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	assert.True(t, tc.APIClient.Healthy(context.Background()))
}
