package handler_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/KudbeeZero/GrowPodEmpirev1.0/internal/domain"
	"github.com/KudbeeZero/GrowPodEmpirev1.0/internal/handler"
	"github.com/KudbeeZero/GrowPodEmpirev1.0/internal/repository"
	"github.com/KudbeeZero/GrowPodEmpirev1.0/mocks"
)

func TestHandleGetEvents(t *testing.T) {
	since := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	tests := []struct {
		name           string
		query          string
		setupMock      func(*mocks.MockEventLogService)
		expectedStatus int
		expectedCount  int
	}{
		{
			name:  "filters are passed through",
			query: "?account=ALICE&type=growpod.pod.harvested&since=2026-01-02T03:04:05Z&limit=5",
			setupMock: func(m *mocks.MockEventLogService) {
				m.On("GetEvents", mock.Anything, repository.EventLogFilter{
					Account:   "ALICE",
					EventType: domain.EventTypePodHarvested,
					Since:     &since,
					Limit:     5,
				}).Return([]repository.EventLogEntry{{ID: "1", EventType: domain.EventTypePodHarvested, Account: "ALICE"}}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedCount:  1,
		},
		{
			name:  "limit is capped",
			query: "?limit=100000",
			setupMock: func(m *mocks.MockEventLogService) {
				m.On("GetEvents", mock.Anything, mock.MatchedBy(func(f repository.EventLogFilter) bool {
					return f.Limit == 500
				})).Return(nil, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "bad since",
			query:          "?since=yesterday",
			setupMock:      func(m *mocks.MockEventLogService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:  "store error",
			query: "",
			setupMock: func(m *mocks.MockEventLogService) {
				m.On("GetEvents", mock.Anything, mock.Anything).Return(nil, errors.New("db down"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := mocks.NewMockEventLogService(t)
			tt.setupMock(svc)

			req := httptest.NewRequest(http.MethodGet, "/events"+tt.query, nil)
			w := httptest.NewRecorder()
			handler.HandleGetEvents(svc).ServeHTTP(w, req)

			require.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedStatus != http.StatusOK {
				return
			}
			var resp handler.EventsResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.NotNil(t, resp.Events)
			assert.Len(t, resp.Events, tt.expectedCount)
		})
	}
}
