package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/KudbeeZero/GrowPodEmpirev1.0/internal/repository"
)

type eventLogRepository struct {
	db *sql.DB
}

// NewEventLogRepository creates a SQLite event log repository
func NewEventLogRepository(db *sql.DB) repository.EventLog {
	return &eventLogRepository{db: db}
}

func (r *eventLogRepository) LogEvent(ctx context.Context, entry repository.EventLogEntry) error {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}

	payloadJSON, err := json.Marshal(entry.Payload)
	if err != nil {
		return err
	}
	var metadata sql.NullString
	if entry.Metadata != nil {
		b, err := json.Marshal(entry.Metadata)
		if err != nil {
			return err
		}
		metadata = sql.NullString{String: string(b), Valid: true}
	}
	account := sql.NullString{String: entry.Account, Valid: entry.Account != ""}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO events (id, event_type, account, payload, metadata, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		entry.ID, entry.EventType, account, string(payloadJSON), metadata, entry.CreatedAt.UnixMilli())
	if err != nil {
		return fmt.Errorf("failed to log event: %w", err)
	}
	return nil
}

func (r *eventLogRepository) GetEvents(ctx context.Context, filter repository.EventLogFilter) ([]repository.EventLogEntry, error) {
	var qb strings.Builder
	qb.WriteString(`SELECT id, event_type, account, payload, metadata, created_at FROM events WHERE 1=1`)
	var args []any

	if filter.Account != "" {
		qb.WriteString(" AND account = ?")
		args = append(args, filter.Account)
	}
	if filter.EventType != "" {
		qb.WriteString(" AND event_type = ?")
		args = append(args, filter.EventType)
	}
	if filter.Since != nil {
		qb.WriteString(" AND created_at >= ?")
		args = append(args, filter.Since.UnixMilli())
	}
	qb.WriteString(" ORDER BY created_at DESC")
	if filter.Limit > 0 {
		qb.WriteString(" LIMIT ?")
		args = append(args, filter.Limit)
	}

	rows, err := r.db.QueryContext(ctx, qb.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []repository.EventLogEntry
	for rows.Next() {
		var (
			evt               repository.EventLogEntry
			account, metadata sql.NullString
			payload           string
			createdMS         int64
		)
		if err := rows.Scan(&evt.ID, &evt.EventType, &account, &payload, &metadata, &createdMS); err != nil {
			return nil, err
		}
		evt.Account = account.String
		evt.CreatedAt = time.UnixMilli(createdMS).UTC()
		if err := json.Unmarshal([]byte(payload), &evt.Payload); err != nil {
			return nil, err
		}
		if metadata.Valid {
			if err := json.Unmarshal([]byte(metadata.String), &evt.Metadata); err != nil {
				return nil, err
			}
		}
		events = append(events, evt)
	}
	return events, rows.Err()
}

func (r *eventLogRepository) CleanupOldEvents(ctx context.Context, before time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM events WHERE created_at < ?`, before.UnixMilli())
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
