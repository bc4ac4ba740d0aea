package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/KudbeeZero/GrowPodEmpirev1.0/internal/config"
	"github.com/KudbeeZero/GrowPodEmpirev1.0/internal/database"
	"github.com/KudbeeZero/GrowPodEmpirev1.0/internal/database/memory"
	"github.com/KudbeeZero/GrowPodEmpirev1.0/internal/database/postgres"
	"github.com/KudbeeZero/GrowPodEmpirev1.0/internal/database/sqlite"
	"github.com/KudbeeZero/GrowPodEmpirev1.0/internal/repository"
)

// Store bundles the repositories for the configured driver together with the
// pool used for readiness checks.
type Store struct {
	GrowPod  repository.GrowPod
	EventLog repository.EventLog
	Pool     database.Pool

	// SQL is nil for the memory driver
	SQL *sql.DB
}

// Close releases the underlying connections.
func (s *Store) Close() {
	s.Pool.Close()
}

// OpenStore connects to the configured store and, for SQL drivers, applies
// pending migrations.
func OpenStore(ctx context.Context, cfg *config.Config) (*Store, error) {
	var store *Store

	switch cfg.StoreDriver {
	case config.StoreDriverPostgres:
		pool, err := database.NewPool(ctx, cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxConnIdleTime, cfg.DBMaxConnLifetime)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedOpenStore, err)
		}
		store = &Store{
			GrowPod:  postgres.NewGrowPodRepository(pool),
			EventLog: postgres.NewEventLogRepository(pool),
			Pool:     pool,
			SQL:      database.SQLDB(pool),
		}
		if err := migrate(ctx, store.SQL, database.DialectPostgres); err != nil {
			pool.Close()
			return nil, err
		}

	case config.StoreDriverSQLite:
		db, err := database.OpenSQLite(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedOpenStore, err)
		}
		store = &Store{
			GrowPod:  sqlite.NewGrowPodRepository(db),
			EventLog: sqlite.NewEventLogRepository(db),
			Pool:     database.NewSQLPool(db),
			SQL:      db,
		}
		if err := migrate(ctx, db, database.DialectSQLite); err != nil {
			_ = db.Close()
			return nil, err
		}

	case config.StoreDriverMemory:
		store = &Store{
			GrowPod:  memory.NewStore(),
			EventLog: memory.NewEventLog(),
			Pool:     database.NewNopPool(),
		}

	default:
		return nil, fmt.Errorf("%s: %q", ErrMsgUnknownStoreDriver, cfg.StoreDriver)
	}

	slog.Info(LogMsgStoreOpened, "driver", cfg.StoreDriver)
	return store, nil
}

func migrate(ctx context.Context, db *sql.DB, dialect string) error {
	m, err := database.NewMigrator(db, dialect)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedMigrate, err)
	}
	applied, err := m.Up(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedMigrate, err)
	}
	slog.Info(database.LogMsgMigrationsApplied, "dialect", dialect, "applied", applied)
	return nil
}
