package main

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"

	"github.com/KudbeeZero/GrowPodEmpirev1.0/internal/config"
	"github.com/KudbeeZero/GrowPodEmpirev1.0/internal/database"
)

type MigrateCommand struct{}

func (c *MigrateCommand) Name() string {
	return "migrate"
}

func (c *MigrateCommand) Description() string {
	return "Manage database migrations (up, down, status)"
}

func (c *MigrateCommand) Run(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("subcommand required: up, down, status")
	}
	subcmd := args[0]

	cfg, err := config.LoadStore()
	if err != nil {
		return err
	}

	ctx := context.Background()
	db, dialect, closeFn, err := openSQL(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeFn()

	m, err := database.NewMigrator(db, dialect)
	if err != nil {
		return err
	}

	switch subcmd {
	case "up":
		PrintHeader(fmt.Sprintf("Applying %s migrations", dialect))
		n, err := m.Up(ctx)
		if err != nil {
			return err
		}
		PrintSuccess("Applied %d migration(s)", n)
	case "down":
		if !hasFlag(args[1:], "--yes") && !confirm("Roll back the most recent migration?") {
			PrintWarning("Aborted")
			return nil
		}
		if err := m.Down(ctx); err != nil {
			return err
		}
		PrintSuccess("Rolled back one migration")
	case "status":
		statuses, err := m.Status(ctx)
		if err != nil {
			return err
		}
		PrintHeader(fmt.Sprintf("Migration status (%s)", dialect))
		for _, st := range statuses {
			state := "pending"
			if st.Applied {
				state = "applied"
			}
			fmt.Printf("  %05d  %-8s %s\n", st.Version, state, filepath.Base(st.Path))
		}
	default:
		return fmt.Errorf("unknown subcommand: %s", subcmd)
	}
	return nil
}

// openSQL connects to the SQL store named by cfg without running migrations.
func openSQL(ctx context.Context, cfg *config.Config) (*sql.DB, string, func(), error) {
	switch cfg.StoreDriver {
	case config.StoreDriverPostgres:
		pool, err := database.NewPool(ctx, cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxConnIdleTime, cfg.DBMaxConnLifetime)
		if err != nil {
			return nil, "", nil, err
		}
		db := database.SQLDB(pool)
		return db, database.DialectPostgres, func() {
			_ = db.Close()
			pool.Close()
		}, nil
	case config.StoreDriverSQLite:
		db, err := database.OpenSQLite(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, "", nil, err
		}
		return db, database.DialectSQLite, func() { _ = db.Close() }, nil
	default:
		return nil, "", nil, fmt.Errorf("store driver %q has no migrations", cfg.StoreDriver)
	}
}

func hasFlag(args []string, flag string) bool {
	for _, a := range args {
		if a == flag {
			return true
		}
	}
	return false
}
