package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/KudbeeZero/GrowPodEmpirev1.0/internal/domain"
	"github.com/KudbeeZero/GrowPodEmpirev1.0/internal/repository"
)

// GrowPodRepository implements repository.GrowPod
type GrowPodRepository struct {
	db *pgxpool.Pool
}

// NewGrowPodRepository creates a new GrowPodRepository
func NewGrowPodRepository(db *pgxpool.Pool) *GrowPodRepository {
	return &GrowPodRepository{db: db}
}

// GetGlobalConfig returns the deployed global record
func (r *GrowPodRepository) GetGlobalConfig(ctx context.Context) (*domain.GlobalConfig, error) {
	return getGlobalConfig(ctx, r.db, false)
}

// GetAccount returns the committed state of one account
func (r *GrowPodRepository) GetAccount(ctx context.Context, address string) (*domain.AccountState, error) {
	return getAccount(ctx, r.db, address, false)
}

// ListAccounts pages through accounts ordered by address
func (r *GrowPodRepository) ListAccounts(ctx context.Context, after string, limit int) ([]domain.AccountState, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+accountColumns+`
		FROM accounts
		WHERE address > $1
		ORDER BY address
		LIMIT $2`, after, limit)
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

// CountAccounts returns the number of opted-in accounts
func (r *GrowPodRepository) CountAccounts(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM accounts`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count accounts: %w", err)
	}
	return n, nil
}

// BeginTx starts a transaction and returns a GrowPodTx
func (r *GrowPodRepository) BeginTx(ctx context.Context) (repository.GrowPodTx, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin growpod transaction: %w", err)
	}
	return &growPodTx{tx: tx}, nil
}

// growPodTx implements repository.GrowPodTx
type growPodTx struct {
	tx pgx.Tx
}

func (t *growPodTx) Commit(ctx context.Context) error {
	return t.tx.Commit(ctx)
}

func (t *growPodTx) Rollback(ctx context.Context) error {
	err := t.tx.Rollback(ctx)
	if errors.Is(err, pgx.ErrTxClosed) {
		return fmt.Errorf("%w: %w", repository.ErrTxClosed, err)
	}
	return err
}

func (t *growPodTx) GetGlobalConfigForUpdate(ctx context.Context) (*domain.GlobalConfig, error) {
	return getGlobalConfig(ctx, t.tx, true)
}

func (t *growPodTx) CreateGlobalConfig(ctx context.Context, g *domain.GlobalConfig) error {
	_, err := t.tx.Exec(ctx, `
		INSERT INTO global_config (id, `+globalConfigColumns+`)
		VALUES (1, $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
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
	tag, err := t.tx.Exec(ctx, `
		UPDATE global_config SET
			owner = $1, version = $2, period = $3, cleanup_cost = $4, breed_cost = $5,
			bud_asset = $6, terp_asset = $7, slot_asset = $8, seed_counter = $9,
			biomass_counter = $10, total_biomass = $11, cure_vault_bal = $12,
			terp_registry = $13, updated_at = NOW()
		WHERE id = 1 AND version = $2 - 1`,
		g.Owner, g.Version, g.Period, g.CleanupCost, g.BreedCost,
		g.BudAssetID, g.TerpAssetID, g.SlotAssetID, g.SeedCounter,
		g.BiomassCounter, g.TotalBiomass, g.CureVaultBal, g.TerpRegistry,
	)
	if err != nil {
		return fmt.Errorf("failed to update global config: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: expected stored version %d", domain.ErrVersionConflict, g.Version-1)
	}
	return nil
}

func (t *growPodTx) GetAccountForUpdate(ctx context.Context, address string) (*domain.AccountState, error) {
	return getAccount(ctx, t.tx, address, true)
}

func (t *growPodTx) CreateAccount(ctx context.Context, a *domain.AccountState) error {
	podsJSON, err := json.Marshal(a.Pods)
	if err != nil {
		return fmt.Errorf("failed to marshal pods: %w", err)
	}
	_, err = t.tx.Exec(ctx, `
		INSERT INTO accounts (`+accountColumns+`)
		VALUES ($1, $2, $3, $4)`,
		a.Address, a.Progress.HarvestCount, a.Progress.PodSlotCount, podsJSON)
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
	tag, err := t.tx.Exec(ctx, `
		UPDATE accounts
		SET harvest_count = $2, pod_slots = $3, pods = $4, updated_at = NOW()
		WHERE address = $1`,
		a.Address, a.Progress.HarvestCount, a.Progress.PodSlotCount, podsJSON)
	if err != nil {
		return fmt.Errorf("failed to update account: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotInitialized
	}
	return nil
}
