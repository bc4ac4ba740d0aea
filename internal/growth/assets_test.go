package growth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KudbeeZero/GrowPodEmpirev1.0/internal/domain"
)

func ownerRequest(tag string, args ...uint64) Request {
	r := withArgs(newRequest(tag), args...)
	r.Caller = testOwner
	return r
}

func TestApply_Bootstrap(t *testing.T) {
	e := newTestEngine()
	g := e.NewGlobalConfig(testOwner)

	tr, err := e.Apply(Snapshot{Global: &g}, ownerRequest(domain.ActionBootstrap), testEnv(t0))
	require.NoError(t, err)
	require.Len(t, tr.Effects, 3)

	want := []struct {
		bind     string
		unit     string
		total    uint64
		decimals uint32
		url      string
	}{
		{domain.KeyBudAsset, domain.UnitBUD, 10_000_000_000_000_000, 6, "https://growpod.empire/bud"},
		{domain.KeyTerpAsset, domain.UnitTERP, 100_000_000_000_000, 6, "https://growpod.empire/terp"},
		{domain.KeySlotAsset, domain.UnitSLOT, 1_000_000, 0, "https://growpod.empire/slot"},
	}
	for i, w := range want {
		op := tr.Effects[i]
		assert.Equal(t, domain.OpCreateAsset, op.Type)
		assert.Equal(t, w.bind, op.Bind)
		assert.Equal(t, testApp, op.Sender)
		assert.Empty(t, op.Receiver)
		assert.Equal(t, w.unit, op.Asset.UnitName)
		assert.Equal(t, w.total, op.Asset.Total)
		assert.Equal(t, w.decimals, op.Asset.Decimals)
		assert.Equal(t, w.url, op.Asset.URL)
		assert.Equal(t, testApp, op.Asset.Manager)
	}

	require.NoError(t, tr.BindCreated([]domain.Receipt{
		{CreatedAssetID: 11}, {CreatedAssetID: 12}, {CreatedAssetID: 13},
	}))
	assert.Equal(t, uint64(11), tr.Global.BudAssetID)
	assert.Equal(t, uint64(12), tr.Global.TerpAssetID)
	assert.Equal(t, uint64(13), tr.Global.SlotAssetID)
	assert.Equal(t, uint64(2), tr.Global.Version)

	payload := tr.Events[0].Payload.(domain.AssetsPayload)
	assert.Equal(t, uint64(11), payload.BudAssetID)
	assert.Equal(t, uint64(2), payload.Version)

	// second bootstrap is rejected without effects
	again, err := e.Apply(Snapshot{Global: &tr.Global}, ownerRequest(domain.ActionBootstrap), testEnv(t0+1))
	assert.ErrorIs(t, err, domain.ErrAlreadyBootstrapped)
	assert.Nil(t, again)
}

func TestApply_BootstrapRequiresOwner(t *testing.T) {
	e := newTestEngine()
	g := e.NewGlobalConfig(testOwner)

	_, err := e.Apply(Snapshot{Global: &g}, newRequest(domain.ActionBootstrap), testEnv(t0))
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestTransition_BindCreatedReceiptMismatch(t *testing.T) {
	tr := &Transition{Effects: make([]domain.LedgerOp, 2)}
	assert.ErrorIs(t, tr.BindCreated(nil), domain.ErrInvariantViolation)
}

func TestApply_SetAssetIDs(t *testing.T) {
	e := newTestEngine()
	g := e.NewGlobalConfig(testOwner)

	tests := []struct {
		name    string
		global  domain.GlobalConfig
		req     Request
		want    [3]uint64
		wantErr error
	}{
		{
			name:   "bud and terp",
			global: g,
			req:    ownerRequest(domain.ActionSetAssetIDs, 1, 2),
			want:   [3]uint64{1, 2, 0},
		},
		{
			name:   "legacy tag with slot",
			global: g,
			req:    ownerRequest(domain.ActionSetAsaIDs, 1, 2, 3),
			want:   [3]uint64{1, 2, 3},
		},
		{
			name:   "slot kept when omitted",
			global: *bootstrapped(e),
			req:    ownerRequest(domain.ActionSetAssetIDs, 7, 8),
			want:   [3]uint64{7, 8, slotID},
		},
		{
			name:    "reset to zero",
			global:  *bootstrapped(e),
			req:     ownerRequest(domain.ActionSetAssetIDs, 0, terpID),
			wantErr: domain.ErrInvalidArgument,
		},
		{
			name:    "missing terp",
			global:  g,
			req:     ownerRequest(domain.ActionSetAssetIDs, 1),
			wantErr: domain.ErrInvalidArgument,
		},
		{
			name:    "not owner",
			global:  g,
			req:     withArgs(newRequest(domain.ActionSetAssetIDs), 1, 2),
			wantErr: domain.ErrUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			global := tt.global
			tr, err := e.Apply(Snapshot{Global: &global}, tt.req, testEnv(t0))
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, [3]uint64{tr.Global.BudAssetID, tr.Global.TerpAssetID, tr.Global.SlotAssetID})
			assert.Equal(t, global.Version+1, tr.Global.Version)
			assert.Equal(t, []string{domain.EventTypeAssetIDsUpdated}, eventTypes(tr))
		})
	}
}
