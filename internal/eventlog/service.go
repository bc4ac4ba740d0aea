// Package eventlog persists every growth event published on the bus so
// accounts can page through their history.
package eventlog

import (
	"context"
	"time"

	"github.com/KudbeeZero/GrowPodEmpirev1.0/internal/event"
	"github.com/KudbeeZero/GrowPodEmpirev1.0/internal/logger"
	"github.com/KudbeeZero/GrowPodEmpirev1.0/internal/repository"
)

// Service handles event logging business logic
type Service interface {
	// Subscribe registers the event logger for every growth event type
	Subscribe(bus event.Bus)

	// GetEvents returns logged events, newest first
	GetEvents(ctx context.Context, filter repository.EventLogFilter) ([]repository.EventLogEntry, error)

	// CleanupOldEvents removes events older than the retention period
	CleanupOldEvents(ctx context.Context, retention time.Duration) (int64, error)
}

type service struct {
	repo repository.EventLog
	now  func() time.Time
}

// NewService creates a new event logging service
func NewService(repo repository.EventLog) Service {
	return &service{repo: repo, now: time.Now}
}

func (s *service) Subscribe(bus event.Bus) {
	event.SubscribeAll(bus, s.handleEvent)
}

// handleEvent stores one event. Typed payloads are flattened to JSON objects.
func (s *service) handleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	payload, err := event.DecodePayload[map[string]interface{}](evt.Payload)
	if err != nil || payload == nil {
		log.Debug(LogMsgEventPayloadNotObject, LogFieldType, evt.Type)
		return nil
	}

	account, _ := payload[PayloadKeyAccount].(string)
	entry := repository.EventLogEntry{
		EventType: string(evt.Type),
		Account:   account,
		Payload:   payload,
		Metadata:  evt.Metadata,
		CreatedAt: s.now(),
	}

	if err := s.repo.LogEvent(ctx, entry); err != nil {
		log.Error(LogMsgFailedToLogEvent, LogFieldError, err, LogFieldType, evt.Type)
		return err
	}

	log.Debug(LogMsgEventLogged, LogFieldType, evt.Type, LogFieldAccount, account)
	return nil
}

func (s *service) GetEvents(ctx context.Context, filter repository.EventLogFilter) ([]repository.EventLogEntry, error) {
	return s.repo.GetEvents(ctx, filter)
}

func (s *service) CleanupOldEvents(ctx context.Context, retention time.Duration) (int64, error) {
	return s.repo.CleanupOldEvents(ctx, s.now().Add(-retention))
}
