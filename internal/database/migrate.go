package database

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/pressly/goose/v3"

	"github.com/KudbeeZero/GrowPodEmpirev1.0/migrations"
)

// Migrator applies the embedded goose migrations of one dialect.
type Migrator struct {
	provider *goose.Provider
}

// MigrationStatus describes one migration file
type MigrationStatus struct {
	Version int64
	Path    string
	Applied bool
}

// NewMigrator creates a migrator for db
func NewMigrator(db *sql.DB, dialect string) (*Migrator, error) {
	var (
		d    goose.Dialect
		fsys fs.FS
		err  error
	)
	switch dialect {
	case DialectPostgres:
		d = goose.DialectPostgres
		fsys, err = fs.Sub(migrations.Postgres, DialectPostgres)
	case DialectSQLite:
		d = goose.DialectSQLite3
		fsys, err = fs.Sub(migrations.SQLite, DialectSQLite)
	default:
		return nil, fmt.Errorf("%s: %q", ErrMsgUnsupportedDialect, dialect)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToCreateMigrator, err)
	}

	p, err := goose.NewProvider(d, db, fsys)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToCreateMigrator, err)
	}
	return &Migrator{provider: p}, nil
}

// Up applies all pending migrations and returns how many ran
func (m *Migrator) Up(ctx context.Context) (int, error) {
	results, err := m.provider.Up(ctx)
	if err != nil {
		return len(results), fmt.Errorf("failed to apply migrations: %w", err)
	}
	slog.Default().Info(LogMsgMigrationsApplied, "count", len(results))
	return len(results), nil
}

// Down rolls back the most recent migration
func (m *Migrator) Down(ctx context.Context) error {
	if _, err := m.provider.Down(ctx); err != nil {
		return fmt.Errorf("failed to roll back migration: %w", err)
	}
	return nil
}

// Status lists every known migration in version order
func (m *Migrator) Status(ctx context.Context) ([]MigrationStatus, error) {
	statuses, err := m.provider.Status(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read migration status: %w", err)
	}
	out := make([]MigrationStatus, 0, len(statuses))
	for _, s := range statuses {
		out = append(out, MigrationStatus{
			Version: s.Source.Version,
			Path:    s.Source.Path,
			Applied: s.State == goose.StateApplied,
		})
	}
	return out, nil
}
