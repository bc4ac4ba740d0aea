package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/KudbeeZero/GrowPodEmpirev1.0/internal/repository"
)

type eventLogRepository struct {
	db *pgxpool.Pool
}

// NewEventLogRepository creates a new PostgreSQL event log repository
func NewEventLogRepository(db *pgxpool.Pool) repository.EventLog {
	return &eventLogRepository{db: db}
}

// LogEvent stores an event in the database
func (r *eventLogRepository) LogEvent(ctx context.Context, entry repository.EventLogEntry) error {
	id := uuid.New()
	if entry.ID != "" {
		parsed, err := uuid.Parse(entry.ID)
		if err != nil {
			return fmt.Errorf("invalid event id: %w", err)
		}
		id = parsed
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}

	payloadJSON, err := json.Marshal(entry.Payload)
	if err != nil {
		return err
	}

	var metadataJSON []byte
	if entry.Metadata != nil {
		metadataJSON, err = json.Marshal(entry.Metadata)
		if err != nil {
			return err
		}
	}

	var account *string
	if entry.Account != "" {
		account = &entry.Account
	}

	_, err = r.db.Exec(ctx, `
		INSERT INTO events (id, event_type, account, payload, metadata, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		id, entry.EventType, account, payloadJSON, metadataJSON, entry.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to log event: %w", err)
	}
	return nil
}

// GetEvents retrieves events based on filter criteria
func (r *eventLogRepository) GetEvents(ctx context.Context, filter repository.EventLogFilter) ([]repository.EventLogEntry, error) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(`
		SELECT id, event_type, account, payload, metadata, created_at
		FROM events
		WHERE 1=1`)

	args := []interface{}{}
	argNum := 1

	if filter.Account != "" {
		fmt.Fprintf(&queryBuilder, " AND account = $%d", argNum)
		args = append(args, filter.Account)
		argNum++
	}

	if filter.EventType != "" {
		fmt.Fprintf(&queryBuilder, " AND event_type = $%d", argNum)
		args = append(args, filter.EventType)
		argNum++
	}

	if filter.Since != nil {
		fmt.Fprintf(&queryBuilder, " AND created_at >= $%d", argNum)
		args = append(args, *filter.Since)
		argNum++
	}

	queryBuilder.WriteString(" ORDER BY created_at DESC")

	if filter.Limit > 0 {
		fmt.Fprintf(&queryBuilder, " LIMIT $%d", argNum)
		args = append(args, filter.Limit)
	}

	rows, err := r.db.Query(ctx, queryBuilder.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanEvents(rows)
}

// CleanupOldEvents removes events created before the cutoff
func (r *eventLogRepository) CleanupOldEvents(ctx context.Context, before time.Time) (int64, error) {
	result, err := r.db.Exec(ctx, `DELETE FROM events WHERE created_at < $1`, before)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

// scanEvents scans rows into EventLogEntry structs
func scanEvents(rows pgx.Rows) ([]repository.EventLogEntry, error) {
	var events []repository.EventLogEntry

	for rows.Next() {
		var (
			evt                       repository.EventLogEntry
			id                        uuid.UUID
			account                   *string
			payloadJSON, metadataJSON []byte
		)

		if err := rows.Scan(&id, &evt.EventType, &account, &payloadJSON, &metadataJSON, &evt.CreatedAt); err != nil {
			return nil, err
		}
		evt.ID = id.String()
		if account != nil {
			evt.Account = *account
		}

		if err := json.Unmarshal(payloadJSON, &evt.Payload); err != nil {
			return nil, err
		}
		if len(metadataJSON) > 0 {
			if err := json.Unmarshal(metadataJSON, &evt.Metadata); err != nil {
				return nil, err
			}
		}

		events = append(events, evt)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return events, nil
}
