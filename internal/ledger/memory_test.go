package ledger

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KudbeeZero/GrowPodEmpirev1.0/internal/domain"
)

const (
	app   = "APP"
	alice = "ALICE"
)

func createBud(t *testing.T, l *MemoryLedger) uint64 {
	t.Helper()
	r, err := l.Submit(context.Background(), domain.LedgerOp{
		Type:   domain.OpCreateAsset,
		Sender: app,
		Asset:  &domain.AssetSpec{Total: 1_000_000, Decimals: 6, UnitName: domain.UnitBUD, Name: "GrowPod BUD"},
	})
	require.NoError(t, err)
	require.Len(t, r, 1)
	return r[0].CreatedAssetID
}

func transfer(from, to string, asset, amount uint64) domain.LedgerOp {
	return domain.LedgerOp{Type: domain.OpTransfer, Sender: from, Receiver: to, AssetID: asset, Amount: amount}
}

func TestMemoryLedger_CreateAndTransfer(t *testing.T) {
	ctx := context.Background()
	l := NewMemoryLedger(0)

	bud := createBud(t, l)
	assert.Equal(t, uint64(DefaultFirstAssetID), bud)
	assert.Equal(t, uint64(1_000_000), l.Balance(app, bud))

	info, err := l.AssetInfo(ctx, bud)
	require.NoError(t, err)
	assert.Equal(t, app, info.Creator)
	assert.Equal(t, domain.UnitBUD, info.UnitName)

	_, err = l.Submit(ctx, transfer(app, alice, bud, 400))
	require.NoError(t, err)
	assert.Equal(t, uint64(999_600), l.Balance(app, bud))
	assert.Equal(t, uint64(400), l.Balance(alice, bud))
}

func TestMemoryLedger_CreateWithReceiver(t *testing.T) {
	l := NewMemoryLedger(50)
	r, err := l.Submit(context.Background(), domain.LedgerOp{
		Type:     domain.OpCreateAsset,
		Sender:   app,
		Receiver: alice,
		Asset:    &domain.AssetSpec{Total: 1, UnitName: domain.UnitSeed},
	})
	require.NoError(t, err)
	assert.Equal(t, uint64(50), r[0].CreatedAssetID)
	assert.Equal(t, uint64(1), l.Balance(alice, 50))
	assert.Zero(t, l.Balance(app, 50))
}

func TestMemoryLedger_GroupIsAtomic(t *testing.T) {
	ctx := context.Background()
	l := NewMemoryLedger(0)
	bud := createBud(t, l)

	_, err := l.Submit(ctx,
		transfer(app, alice, bud, 10),
		transfer(alice, app, bud, 11),
	)
	assert.ErrorIs(t, err, domain.ErrLedgerRejected)
	assert.ErrorIs(t, err, domain.ErrInsufficientBalance)
	assert.Zero(t, l.Balance(alice, bud))
	assert.Equal(t, uint64(1_000_000), l.Balance(app, bud))

	_, err = l.Submit(ctx, transfer(app, alice, 9999, 1))
	assert.ErrorIs(t, err, domain.ErrAssetNotFound)
}

func TestMemoryLedger_LaterOpsSeeEarlierWrites(t *testing.T) {
	ctx := context.Background()
	l := NewMemoryLedger(0)
	bud := createBud(t, l)

	_, err := l.Submit(ctx,
		transfer(app, alice, bud, 10),
		transfer(alice, app, bud, 10),
	)
	require.NoError(t, err)
	assert.Equal(t, uint64(1_000_000), l.Balance(app, bud))
}

func TestMemoryLedger_PrepareAbort(t *testing.T) {
	ctx := context.Background()
	l := NewMemoryLedger(0)
	bud := createBud(t, l)

	b, err := l.Prepare(ctx, NewBundle(transfer(app, alice, bud, 5)), []domain.LedgerOp{
		{Type: domain.OpCreateAsset, Sender: app, Receiver: alice, Asset: &domain.AssetSpec{Total: 1}},
	})
	require.NoError(t, err)

	effects := EffectReceipts(b, NewBundle(transfer(app, alice, bud, 5)))
	require.Len(t, effects, 1)
	assert.NotZero(t, effects[0].CreatedAssetID)
	assert.Zero(t, l.Balance(alice, bud), "prepared writes stay invisible")

	require.NoError(t, b.Abort(ctx))
	assert.Zero(t, l.Balance(alice, bud))

	_, err = l.AssetInfo(ctx, effects[0].CreatedAssetID)
	assert.ErrorIs(t, err, domain.ErrAssetNotFound)
}

func TestMemoryLedger_CommitTwice(t *testing.T) {
	ctx := context.Background()
	l := NewMemoryLedger(0)
	bud := createBud(t, l)

	b, err := l.Prepare(ctx, NewBundle(transfer(app, alice, bud, 5)), nil)
	require.NoError(t, err)
	require.NoError(t, b.Commit(ctx))
	assert.ErrorIs(t, b.Commit(ctx), ErrBatchClosed)
	assert.NoError(t, b.Abort(ctx))
	assert.Equal(t, uint64(5), l.Balance(alice, bud))
}

func TestMemoryLedger_PrepareWaitsForOpenBatch(t *testing.T) {
	ctx := context.Background()
	l := NewMemoryLedger(0)
	bud := createBud(t, l)

	open, err := l.Prepare(ctx, NewBundle(transfer(app, alice, bud, 1)), nil)
	require.NoError(t, err)

	short, cancel := context.WithTimeout(ctx, 20*time.Millisecond)
	defer cancel()
	_, err = l.Prepare(short, NewBundle(), nil)
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	require.NoError(t, open.Commit(ctx))

	next, err := l.Prepare(ctx, NewBundle(), nil)
	require.NoError(t, err)
	require.NoError(t, next.Abort(ctx))
}
