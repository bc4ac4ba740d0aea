package postgres

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KudbeeZero/GrowPodEmpirev1.0/internal/domain"
	"github.com/KudbeeZero/GrowPodEmpirev1.0/internal/repository"
)

func newAccount(address string) *domain.AccountState {
	return &domain.AccountState{
		Address:  address,
		Pods:     make([]domain.PodState, 2),
		Progress: domain.AccountProgress{PodSlotCount: 2},
	}
}

func deployGlobal(t *testing.T, repo *GrowPodRepository) *domain.GlobalConfig {
	t.Helper()
	ctx := context.Background()

	g := &domain.GlobalConfig{Owner: "OWNER", Version: 1, Period: 864000, CleanupCost: 500_000_000, BreedCost: 1_000_000_000}
	tx, err := repo.BeginTx(ctx)
	require.NoError(t, err)
	defer repository.SafeRollback(ctx, tx)

	require.NoError(t, tx.CreateGlobalConfig(ctx, g))
	require.NoError(t, tx.Commit(ctx))
	return g
}

func TestGrowPodRepository_GlobalConfig(t *testing.T) {
	pool := requireDB(t)
	repo := NewGrowPodRepository(pool)
	ctx := context.Background()

	_, err := repo.GetGlobalConfig(ctx)
	assert.ErrorIs(t, err, domain.ErrGlobalConfigNotFound)

	g := deployGlobal(t, repo)

	got, err := repo.GetGlobalConfig(ctx)
	require.NoError(t, err)
	assert.Equal(t, g, got)

	t.Run("second deploy rejected", func(t *testing.T) {
		tx, err := repo.BeginTx(ctx)
		require.NoError(t, err)
		defer repository.SafeRollback(ctx, tx)

		err = tx.CreateGlobalConfig(ctx, &domain.GlobalConfig{Owner: "OTHER", Version: 1})
		assert.ErrorIs(t, err, domain.ErrGlobalConfigExists)
	})

	t.Run("update requires next version", func(t *testing.T) {
		tx, err := repo.BeginTx(ctx)
		require.NoError(t, err)
		defer repository.SafeRollback(ctx, tx)

		current, err := tx.GetGlobalConfigForUpdate(ctx)
		require.NoError(t, err)

		stale := *current
		stale.Version = current.Version + 2
		assert.ErrorIs(t, tx.UpdateGlobalConfig(ctx, &stale), domain.ErrVersionConflict)

		next := *current
		next.Version++
		next.BudAssetID = 1001
		next.TotalBiomass = 2_000_000
		require.NoError(t, tx.UpdateGlobalConfig(ctx, &next))
		require.NoError(t, tx.Commit(ctx))

		got, err := repo.GetGlobalConfig(ctx)
		require.NoError(t, err)
		assert.Equal(t, uint64(2), got.Version)
		assert.Equal(t, uint64(1001), got.BudAssetID)
		assert.Equal(t, uint64(2_000_000), got.TotalBiomass)
	})
}

func TestGrowPodRepository_Accounts(t *testing.T) {
	pool := requireDB(t)
	repo := NewGrowPodRepository(pool)
	ctx := context.Background()

	_, err := repo.GetAccount(ctx, "ALICE")
	assert.ErrorIs(t, err, domain.ErrNotInitialized)

	tx, err := repo.BeginTx(ctx)
	require.NoError(t, err)
	for _, addr := range []string{"CAROL", "ALICE", "BOB"} {
		require.NoError(t, tx.CreateAccount(ctx, newAccount(addr)))
	}
	assert.ErrorIs(t, tx.CreateAccount(ctx, newAccount("ALICE")), domain.ErrAlreadyInitialized)
	// the failed insert aborted the transaction
	require.Error(t, tx.Commit(ctx))

	tx, err = repo.BeginTx(ctx)
	require.NoError(t, err)
	for _, addr := range []string{"CAROL", "ALICE", "BOB"} {
		require.NoError(t, tx.CreateAccount(ctx, newAccount(addr)))
	}
	require.NoError(t, tx.Commit(ctx))

	n, err := repo.CountAccounts(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)

	page, err := repo.ListAccounts(ctx, "", 2)
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, "ALICE", page[0].Address)
	assert.Equal(t, "BOB", page[1].Address)

	page, err = repo.ListAccounts(ctx, "BOB", 2)
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, "CAROL", page[0].Address)

	t.Run("pods round trip through update", func(t *testing.T) {
		tx, err := repo.BeginTx(ctx)
		require.NoError(t, err)
		defer repository.SafeRollback(ctx, tx)

		a, err := tx.GetAccountForUpdate(ctx, "ALICE")
		require.NoError(t, err)
		a.Pods[1] = domain.PodState{
			Stage:          domain.StageGrowing3,
			WaterCount:     6,
			LastWatered:    1_700_000_000,
			PlantedAssetID: 2001,
			DNA:            []byte{0xde, 0xad},
			TerpProfile:    []byte{0xbe, 0xef},
		}
		a.Progress.HarvestCount = 4
		require.NoError(t, tx.UpdateAccount(ctx, a))
		require.NoError(t, tx.Commit(ctx))

		got, err := repo.GetAccount(ctx, "ALICE")
		require.NoError(t, err)
		assert.Equal(t, a, got)
	})

	t.Run("update of unknown account", func(t *testing.T) {
		tx, err := repo.BeginTx(ctx)
		require.NoError(t, err)
		defer repository.SafeRollback(ctx, tx)

		assert.ErrorIs(t, tx.UpdateAccount(ctx, newAccount("MALLORY")), domain.ErrNotInitialized)
	})
}

func TestGrowPodRepository_RollbackAfterCommit(t *testing.T) {
	pool := requireDB(t)
	repo := NewGrowPodRepository(pool)
	ctx := context.Background()

	tx, err := repo.BeginTx(ctx)
	require.NoError(t, err)
	require.NoError(t, tx.Commit(ctx))

	assert.ErrorIs(t, tx.Rollback(ctx), repository.ErrTxClosed)
}

// TestGrowPodRepository_ForUpdateSerializes increments the harvest counter
// from many goroutines; row locks must keep every increment.
func TestGrowPodRepository_ForUpdateSerializes(t *testing.T) {
	pool := requireDB(t)
	repo := NewGrowPodRepository(pool)
	ctx := context.Background()

	tx, err := repo.BeginTx(ctx)
	require.NoError(t, err)
	require.NoError(t, tx.CreateAccount(ctx, newAccount("ALICE")))
	require.NoError(t, tx.Commit(ctx))

	const workers = 8
	var wg sync.WaitGroup
	errs := make(chan error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tx, err := repo.BeginTx(ctx)
			if err != nil {
				errs <- err
				return
			}
			defer repository.SafeRollback(ctx, tx)

			a, err := tx.GetAccountForUpdate(ctx, "ALICE")
			if err != nil {
				errs <- err
				return
			}
			a.Progress.HarvestCount++
			if err := tx.UpdateAccount(ctx, a); err != nil {
				errs <- err
				return
			}
			errs <- tx.Commit(ctx)
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	a, err := repo.GetAccount(ctx, "ALICE")
	require.NoError(t, err)
	assert.Equal(t, uint64(workers), a.Progress.HarvestCount)
}
