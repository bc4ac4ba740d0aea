package eventlog_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/KudbeeZero/GrowPodEmpirev1.0/internal/database/memory"
	"github.com/KudbeeZero/GrowPodEmpirev1.0/internal/domain"
	"github.com/KudbeeZero/GrowPodEmpirev1.0/internal/event"
	"github.com/KudbeeZero/GrowPodEmpirev1.0/internal/eventlog"
	"github.com/KudbeeZero/GrowPodEmpirev1.0/internal/repository"
	"github.com/KudbeeZero/GrowPodEmpirev1.0/mocks"
)

func TestService_Subscribe(t *testing.T) {
	mockRepo := mocks.NewMockEventLogRepository(t)
	mockBus := mocks.NewMockEventBus(t)
	svc := eventlog.NewService(mockRepo)

	for _, et := range domain.EventTypes() {
		mockBus.On("Subscribe", event.Type(et), mock.AnythingOfType("event.Handler")).Return().Once()
	}

	svc.Subscribe(mockBus)
}

func TestService_HandleEvent(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		evt     event.Event
		setup   func(m *mocks.MockEventLogRepository)
		wantErr bool
	}{
		{
			name: "typed payload is flattened",
			evt: event.NewActionEvent(domain.ActionEvent{
				Type:    domain.EventTypePodWatered,
				Payload: domain.PodEventPayload{Account: "ALICE", Pod: 1, Timestamp: 1000},
			}, event.Metadata{event.MetaRequestID: "req-1"}),
			setup: func(m *mocks.MockEventLogRepository) {
				m.On("LogEvent", mock.Anything, mock.MatchedBy(func(e repository.EventLogEntry) bool {
					return e.EventType == domain.EventTypePodWatered &&
						e.Account == "ALICE" &&
						e.Payload["pod"] == float64(1) &&
						e.Metadata[event.MetaRequestID] == "req-1" &&
						e.CreatedAt.Equal(now)
				})).Return(nil).Once()
			},
		},
		{
			name: "payload without account",
			evt: event.Event{
				Type:    domain.EventTypeAssetsBootstrapped,
				Payload: domain.AssetsPayload{Owner: "OWNER", BudAssetID: 1},
			},
			setup: func(m *mocks.MockEventLogRepository) {
				m.On("LogEvent", mock.Anything, mock.MatchedBy(func(e repository.EventLogEntry) bool {
					return e.Account == "" && e.Payload["owner"] == "OWNER"
				})).Return(nil).Once()
			},
		},
		{
			name:  "scalar payload is skipped",
			evt:   event.Event{Type: domain.EventTypePodFed, Payload: 42},
			setup: func(m *mocks.MockEventLogRepository) {},
		},
		{
			name: "repository error",
			evt: event.Event{
				Type:    domain.EventTypePodCleaned,
				Payload: map[string]interface{}{"account": "BOB"},
			},
			setup: func(m *mocks.MockEventLogRepository) {
				m.On("LogEvent", mock.Anything, mock.Anything).Return(errors.New("db down")).Once()
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := mocks.NewMockEventLogRepository(t)
			tt.setup(mockRepo)

			svc := eventlog.NewService(mockRepo)
			hooks := eventlog.NewTestHooks(svc)
			hooks.SetNow(now)

			err := hooks.HandleEvent(context.Background(), tt.evt)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestService_EndToEnd(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewEventLog()
	bus := event.NewMemoryBus()

	svc := eventlog.NewService(repo)
	svc.Subscribe(bus)

	for _, acct := range []string{"ALICE", "BOB", "ALICE"} {
		err := bus.Publish(ctx, event.NewActionEvent(domain.ActionEvent{
			Type:    domain.EventTypeSeedPlanted,
			Payload: domain.PodEventPayload{Account: acct},
		}, nil))
		require.NoError(t, err)
	}

	got, err := svc.GetEvents(ctx, repository.EventLogFilter{Account: "ALICE"})
	require.NoError(t, err)
	assert.Len(t, got, 2)

	all, err := svc.GetEvents(ctx, repository.EventLogFilter{EventType: domain.EventTypeSeedPlanted, Limit: 10})
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestService_CleanupOldEvents(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	mockRepo := mocks.NewMockEventLogRepository(t)
	svc := eventlog.NewService(mockRepo)
	eventlog.NewTestHooks(svc).SetNow(now)

	mockRepo.On("CleanupOldEvents", mock.Anything, now.Add(-48*time.Hour)).Return(int64(7), nil).Once()

	n, err := svc.CleanupOldEvents(context.Background(), 48*time.Hour)
	require.NoError(t, err)
	assert.Equal(t, int64(7), n)
}
