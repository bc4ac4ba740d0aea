package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/KudbeeZero/GrowPodEmpirev1.0/internal/domain"
)

// querier is satisfied by both *pgxpool.Pool and pgx.Tx
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == PgErrorCodeUniqueViolation
}

func getGlobalConfig(ctx context.Context, q querier, forUpdate bool) (*domain.GlobalConfig, error) {
	query := `SELECT ` + globalConfigColumns + ` FROM global_config WHERE id = 1`
	if forUpdate {
		query += ` FOR UPDATE`
	}

	var g domain.GlobalConfig
	err := q.QueryRow(ctx, query).Scan(
		&g.Owner, &g.Version, &g.Period, &g.CleanupCost, &g.BreedCost,
		&g.BudAssetID, &g.TerpAssetID, &g.SlotAssetID, &g.SeedCounter, &g.BiomassCounter,
		&g.TotalBiomass, &g.CureVaultBal, &g.TerpRegistry,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrGlobalConfigNotFound
		}
		return nil, fmt.Errorf("failed to get global config: %w", err)
	}
	return &g, nil
}

func getAccount(ctx context.Context, q querier, address string, forUpdate bool) (*domain.AccountState, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE address = $1`
	if forUpdate {
		query += ` FOR UPDATE`
	}
	return scanAccount(q.QueryRow(ctx, query, address))
}

func scanAccount(row pgx.Row) (*domain.AccountState, error) {
	var (
		a        domain.AccountState
		podsJSON []byte
	)
	if err := row.Scan(&a.Address, &a.Progress.HarvestCount, &a.Progress.PodSlotCount, &podsJSON); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotInitialized
		}
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	if err := json.Unmarshal(podsJSON, &a.Pods); err != nil {
		return nil, fmt.Errorf("failed to unmarshal pods for %s: %w", a.Address, err)
	}
	return &a, nil
}
