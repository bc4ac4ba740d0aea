package memory

import (
	"context"
	"testing"
	"time"

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

func TestStore_CommitPublishes(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	tx, err := s.BeginTx(ctx)
	require.NoError(t, err)
	require.NoError(t, tx.CreateGlobalConfig(ctx, &domain.GlobalConfig{Owner: "OWNER", Version: 1}))
	require.NoError(t, tx.CreateAccount(ctx, newAccount("ALICE")))

	// uncommitted writes are invisible to readers
	_, err = s.GetGlobalConfig(ctx)
	assert.ErrorIs(t, err, domain.ErrGlobalConfigNotFound)
	_, err = s.GetAccount(ctx, "ALICE")
	assert.ErrorIs(t, err, domain.ErrNotInitialized)

	// but visible inside the transaction
	a, err := tx.GetAccountForUpdate(ctx, "ALICE")
	require.NoError(t, err)
	assert.Equal(t, "ALICE", a.Address)

	require.NoError(t, tx.Commit(ctx))
	assert.ErrorIs(t, tx.Rollback(ctx), repository.ErrTxClosed)

	g, err := s.GetGlobalConfig(ctx)
	require.NoError(t, err)
	assert.Equal(t, "OWNER", g.Owner)

	got, err := s.GetAccount(ctx, "ALICE")
	require.NoError(t, err)
	assert.Equal(t, newAccount("ALICE"), got)
}

func TestStore_RollbackDiscards(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	tx, err := s.BeginTx(ctx)
	require.NoError(t, err)
	require.NoError(t, tx.CreateAccount(ctx, newAccount("ALICE")))
	require.NoError(t, tx.Rollback(ctx))

	_, err = s.GetAccount(ctx, "ALICE")
	assert.ErrorIs(t, err, domain.ErrNotInitialized)
}

func TestStore_Conflicts(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	tx, err := s.BeginTx(ctx)
	require.NoError(t, err)
	defer repository.SafeRollback(ctx, tx)

	require.NoError(t, tx.CreateGlobalConfig(ctx, &domain.GlobalConfig{Owner: "OWNER", Version: 1}))
	assert.ErrorIs(t, tx.CreateGlobalConfig(ctx, &domain.GlobalConfig{Owner: "X", Version: 1}), domain.ErrGlobalConfigExists)
	assert.ErrorIs(t, tx.UpdateGlobalConfig(ctx, &domain.GlobalConfig{Version: 3}), domain.ErrVersionConflict)
	assert.NoError(t, tx.UpdateGlobalConfig(ctx, &domain.GlobalConfig{Owner: "OWNER", Version: 2}))

	require.NoError(t, tx.CreateAccount(ctx, newAccount("ALICE")))
	assert.ErrorIs(t, tx.CreateAccount(ctx, newAccount("ALICE")), domain.ErrAlreadyInitialized)
	assert.ErrorIs(t, tx.UpdateAccount(ctx, newAccount("BOB")), domain.ErrNotInitialized)
}

func TestStore_ReturnsCopies(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	tx, err := s.BeginTx(ctx)
	require.NoError(t, err)
	require.NoError(t, tx.CreateAccount(ctx, newAccount("ALICE")))
	require.NoError(t, tx.Commit(ctx))

	a, err := s.GetAccount(ctx, "ALICE")
	require.NoError(t, err)
	a.Pods[0].WaterCount = 99

	again, err := s.GetAccount(ctx, "ALICE")
	require.NoError(t, err)
	assert.Zero(t, again.Pods[0].WaterCount)
}

func TestStore_BeginTxWaitsForWriter(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	tx, err := s.BeginTx(ctx)
	require.NoError(t, err)

	short, cancel := context.WithTimeout(ctx, 20*time.Millisecond)
	defer cancel()
	_, err = s.BeginTx(short)
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	require.NoError(t, tx.Rollback(ctx))
	tx2, err := s.BeginTx(ctx)
	require.NoError(t, err)
	require.NoError(t, tx2.Rollback(ctx))
}

func TestStore_ListAccounts(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	tx, err := s.BeginTx(ctx)
	require.NoError(t, err)
	for _, addr := range []string{"D", "B", "A", "C"} {
		require.NoError(t, tx.CreateAccount(ctx, newAccount(addr)))
	}
	require.NoError(t, tx.Commit(ctx))

	page, err := s.ListAccounts(ctx, "A", 2)
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, "B", page[0].Address)
	assert.Equal(t, "C", page[1].Address)

	n, err := s.CountAccounts(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(4), n)
}

func TestEventLog(t *testing.T) {
	l := NewEventLog()
	ctx := context.Background()
	now := time.Now()

	require.NoError(t, l.LogEvent(ctx, repository.EventLogEntry{EventType: "a", Account: "ALICE", CreatedAt: now.Add(-2 * time.Hour)}))
	require.NoError(t, l.LogEvent(ctx, repository.EventLogEntry{EventType: "b", Account: "ALICE", CreatedAt: now}))
	require.NoError(t, l.LogEvent(ctx, repository.EventLogEntry{EventType: "a", Account: "BOB", CreatedAt: now.Add(-time.Hour)}))

	got, err := l.GetEvents(ctx, repository.EventLogFilter{Account: "ALICE"})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "b", got[0].EventType)
	assert.NotEmpty(t, got[0].ID)

	got, err = l.GetEvents(ctx, repository.EventLogFilter{EventType: "a", Limit: 1})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "BOB", got[0].Account)

	n, err := l.CleanupOldEvents(ctx, now.Add(-90*time.Minute))
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	got, err = l.GetEvents(ctx, repository.EventLogFilter{})
	require.NoError(t, err)
	assert.Len(t, got, 2)
}
