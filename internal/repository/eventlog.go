package repository

import (
	"context"
	"time"
)

// EventLog defines the interface for event logging storage
type EventLog interface {
	// LogEvent stores an event
	LogEvent(ctx context.Context, entry EventLogEntry) error

	// GetEvents retrieves events based on filter criteria, newest first
	GetEvents(ctx context.Context, filter EventLogFilter) ([]EventLogEntry, error)

	// CleanupOldEvents removes events created before the cutoff
	CleanupOldEvents(ctx context.Context, before time.Time) (int64, error)
}

// EventLogEntry represents a logged event
type EventLogEntry struct {
	ID        string                 `json:"id"`
	EventType string                 `json:"event_type"`
	Account   string                 `json:"account,omitempty"`
	Payload   map[string]interface{} `json:"payload"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	CreatedAt time.Time              `json:"created_at"`
}

// EventLogFilter filters events for queries
type EventLogFilter struct {
	Account   string
	EventType string
	Since     *time.Time
	Limit     int
}
