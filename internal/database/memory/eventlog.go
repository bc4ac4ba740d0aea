package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/KudbeeZero/GrowPodEmpirev1.0/internal/repository"
)

// EventLog implements repository.EventLog in memory
type EventLog struct {
	mu     sync.RWMutex
	events []repository.EventLogEntry
}

// NewEventLog creates an empty in-memory event log
func NewEventLog() *EventLog {
	return &EventLog{}
}

func (l *EventLog) LogEvent(ctx context.Context, entry repository.EventLogEntry) error {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}
	l.mu.Lock()
	l.events = append(l.events, entry)
	l.mu.Unlock()
	return nil
}

func (l *EventLog) GetEvents(ctx context.Context, filter repository.EventLogFilter) ([]repository.EventLogEntry, error) {
	l.mu.RLock()
	var out []repository.EventLogEntry
	for _, e := range l.events {
		if filter.Account != "" && e.Account != filter.Account {
			continue
		}
		if filter.EventType != "" && e.EventType != filter.EventType {
			continue
		}
		if filter.Since != nil && e.CreatedAt.Before(*filter.Since) {
			continue
		}
		out = append(out, e)
	}
	l.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	if filter.Limit > 0 && len(out) > filter.Limit {
		out = out[:filter.Limit]
	}
	return out, nil
}

func (l *EventLog) CleanupOldEvents(ctx context.Context, before time.Time) (int64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	kept := l.events[:0]
	var removed int64
	for _, e := range l.events {
		if e.CreatedAt.Before(before) {
			removed++
			continue
		}
		kept = append(kept, e)
	}
	l.events = kept
	return removed, nil
}
