// Package sqlite stores GrowPod state in a single SQLite file for local
// development and the devtool.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/KudbeeZero/GrowPodEmpirev1.0/internal/domain"
	"github.com/KudbeeZero/GrowPodEmpirev1.0/internal/repository"
)

const globalConfigColumns = `owner, version, period, cleanup_cost, breed_cost,
	bud_asset, terp_asset, slot_asset, seed_counter, biomass_counter,
	total_biomass, cure_vault_bal, terp_registry`

const accountColumns = `address, harvest_count, pod_slots, pods`

// querier is satisfied by both *sql.DB and *sql.Tx
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type scanner interface {
	Scan(dest ...any) error
}

func isUniqueViolation(err error) bool {
	var se *sqlite.Error
	if !errors.As(err, &se) {
		return false
	}
	code := se.Code()
	return code == sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY || code == sqlite3.SQLITE_CONSTRAINT_UNIQUE
}

// GrowPodRepository implements repository.GrowPod on SQLite
type GrowPodRepository struct {
	db *sql.DB
}

// NewGrowPodRepository creates a new GrowPodRepository. The database must be
// opened with database.OpenSQLite so transactions take the write lock early.
func NewGrowPodRepository(db *sql.DB) *GrowPodRepository {
	return &GrowPodRepository{db: db}
}

func (r *GrowPodRepository) GetGlobalConfig(ctx context.Context) (*domain.GlobalConfig, error) {
	return getGlobalConfig(ctx, r.db)
}

func (r *GrowPodRepository) GetAccount(ctx context.Context, address string) (*domain.AccountState, error) {
	return getAccount(ctx, r.db, address)
}

func (r *GrowPodRepository) ListAccounts(ctx context.Context, after string, limit int) ([]domain.AccountState, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+accountColumns+` FROM accounts WHERE address > ? ORDER BY address LIMIT ?`, after, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	defer rows.Close()

	var accounts []domain.AccountState
	for rows.Next() {
		a, err := scanAccount(rows)
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	return accounts, nil
}

func (r *GrowPodRepository) CountAccounts(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM accounts`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count accounts: %w", err)
	}
	return n, nil
}

func (r *GrowPodRepository) BeginTx(ctx context.Context) (repository.GrowPodTx, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin growpod transaction: %w", err)
	}
	return &growPodTx{tx: tx}, nil
}

// growPodTx implements repository.GrowPodTx. SQLite locks the whole
// database for the transaction, so the ForUpdate reads need no row locks.
type growPodTx struct {
	tx *sql.Tx
}

func (t *growPodTx) Commit(ctx context.Context) error {
	return t.tx.Commit()
}

func (t *growPodTx) Rollback(ctx context.Context) error {
	err := t.tx.Rollback()
	if errors.Is(err, sql.ErrTxDone) {
		return fmt.Errorf("%w: %w", repository.ErrTxClosed, err)
	}
	return err
}

func (t *growPodTx) GetGlobalConfigForUpdate(ctx context.Context) (*domain.GlobalConfig, error) {
	return getGlobalConfig(ctx, t.tx)
}

func (t *growPodTx) CreateGlobalConfig(ctx context.Context, g *domain.GlobalConfig) error {
	_, err := t.tx.ExecContext(ctx, `
		INSERT INTO global_config (id, `+globalConfigColumns+`)
		VALUES (1, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		g.Owner, g.Version, g.Period, g.CleanupCost, g.BreedCost,
		g.BudAssetID, g.TerpAssetID, g.SlotAssetID, g.SeedCounter, g.BiomassCounter,
		g.TotalBiomass, g.CureVaultBal, g.TerpRegistry,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrGlobalConfigExists
		}
		return fmt.Errorf("failed to create global config: %w", err)
	}
	return nil
}

func (t *growPodTx) UpdateGlobalConfig(ctx context.Context, g *domain.GlobalConfig) error {
	res, err := t.tx.ExecContext(ctx, `
		UPDATE global_config SET
			owner = ?, version = ?, period = ?, cleanup_cost = ?, breed_cost = ?,
			bud_asset = ?, terp_asset = ?, slot_asset = ?, seed_counter = ?,
			biomass_counter = ?, total_biomass = ?, cure_vault_bal = ?,
			terp_registry = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = 1 AND version = ?`,
		g.Owner, g.Version, g.Period, g.CleanupCost, g.BreedCost,
		g.BudAssetID, g.TerpAssetID, g.SlotAssetID, g.SeedCounter,
		g.BiomassCounter, g.TotalBiomass, g.CureVaultBal, g.TerpRegistry,
		g.Version-1,
	)
	if err != nil {
		return fmt.Errorf("failed to update global config: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update global config: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: expected stored version %d", domain.ErrVersionConflict, g.Version-1)
	}
	return nil
}

func (t *growPodTx) GetAccountForUpdate(ctx context.Context, address string) (*domain.AccountState, error) {
	return getAccount(ctx, t.tx, address)
}

func (t *growPodTx) CreateAccount(ctx context.Context, a *domain.AccountState) error {
	podsJSON, err := json.Marshal(a.Pods)
	if err != nil {
		return fmt.Errorf("failed to marshal pods: %w", err)
	}
	_, err = t.tx.ExecContext(ctx,
		`INSERT INTO accounts (`+accountColumns+`) VALUES (?, ?, ?, ?)`,
		a.Address, a.Progress.HarvestCount, a.Progress.PodSlotCount, string(podsJSON))
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrAlreadyInitialized
		}
		return fmt.Errorf("failed to create account: %w", err)
	}
	return nil
}

func (t *growPodTx) UpdateAccount(ctx context.Context, a *domain.AccountState) error {
	podsJSON, err := json.Marshal(a.Pods)
	if err != nil {
		return fmt.Errorf("failed to marshal pods: %w", err)
	}
	res, err := t.tx.ExecContext(ctx, `
		UPDATE accounts
		SET harvest_count = ?, pod_slots = ?, pods = ?, updated_at = CURRENT_TIMESTAMP
		WHERE address = ?`,
		a.Progress.HarvestCount, a.Progress.PodSlotCount, string(podsJSON), a.Address)
	if err != nil {
		return fmt.Errorf("failed to update account: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update account: %w", err)
	}
	if n == 0 {
		return domain.ErrNotInitialized
	}
	return nil
}

func getGlobalConfig(ctx context.Context, q querier) (*domain.GlobalConfig, error) {
	var g domain.GlobalConfig
	err := q.QueryRowContext(ctx, `SELECT `+globalConfigColumns+` FROM global_config WHERE id = 1`).Scan(
		&g.Owner, &g.Version, &g.Period, &g.CleanupCost, &g.BreedCost,
		&g.BudAssetID, &g.TerpAssetID, &g.SlotAssetID, &g.SeedCounter, &g.BiomassCounter,
		&g.TotalBiomass, &g.CureVaultBal, &g.TerpRegistry,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrGlobalConfigNotFound
		}
		return nil, fmt.Errorf("failed to get global config: %w", err)
	}
	return &g, nil
}

func getAccount(ctx context.Context, q querier, address string) (*domain.AccountState, error) {
	return scanAccount(q.QueryRowContext(ctx, `SELECT `+accountColumns+` FROM accounts WHERE address = ?`, address))
}

func scanAccount(row scanner) (*domain.AccountState, error) {
	var (
		a        domain.AccountState
		podsJSON string
	)
	if err := row.Scan(&a.Address, &a.Progress.HarvestCount, &a.Progress.PodSlotCount, &podsJSON); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotInitialized
		}
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	if err := json.Unmarshal([]byte(podsJSON), &a.Pods); err != nil {
		return nil, fmt.Errorf("failed to unmarshal pods for %s: %w", a.Address, err)
	}
	return &a, nil
}
