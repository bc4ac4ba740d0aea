package growth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KudbeeZero/GrowPodEmpirev1.0/internal/domain"
	"github.com/KudbeeZero/GrowPodEmpirev1.0/internal/rules"
)

func TestApply_ClaimSlotToken(t *testing.T) {
	e := newTestEngine()
	a := optedIn(t, e)
	a.Progress.HarvestCount = 7
	snap := Snapshot{Global: bootstrapped(e), Account: a}

	next, tr := step(t, e, snap, newRequest(domain.ActionClaimSlotToken, xfer(budID, rules.DefaultSlotTokenCost)), testEnv(t0))
	assert.Equal(t, uint64(2), next.Account.Progress.HarvestCount)
	require.Len(t, tr.Effects, 1)
	assert.Equal(t, domain.LedgerOp{
		Type: domain.OpTransfer, Sender: testApp, Receiver: testUser, AssetID: slotID, Amount: 1,
	}, tr.Effects[0])
	assert.Equal(t, []string{domain.EventTypeSlotTokenClaimed}, eventTypes(tr))
}

func TestApply_ClaimSlotTokenRejections(t *testing.T) {
	e := newTestEngine()

	few := optedIn(t, e)
	few.Progress.HarvestCount = 4
	enough := optedIn(t, e)
	enough.Progress.HarvestCount = 5

	noSlot := bootstrapped(e)
	noSlot.SlotAssetID = 0

	foreignPayment := xfer(budID, rules.DefaultSlotTokenCost)
	foreignPayment.Sender = "BOB"

	tests := []struct {
		name    string
		global  *domain.GlobalConfig
		account *domain.AccountState
		req     Request
		wantErr error
	}{
		{"not bootstrapped", noSlot, enough, newRequest(domain.ActionClaimSlotToken, xfer(budID, rules.DefaultSlotTokenCost)), domain.ErrAssetNotBootstrapped},
		{"too few harvests", bootstrapped(e), few, newRequest(domain.ActionClaimSlotToken, xfer(budID, rules.DefaultSlotTokenCost)), domain.ErrInsufficientHarvests},
		{"no payment", bootstrapped(e), enough, newRequest(domain.ActionClaimSlotToken), domain.ErrMissingBundledPayment},
		{"payment too small", bootstrapped(e), enough, newRequest(domain.ActionClaimSlotToken, xfer(budID, rules.DefaultSlotTokenCost-1)), domain.ErrInsufficientAmount},
		{"payment from someone else", bootstrapped(e), enough, newRequest(domain.ActionClaimSlotToken, foreignPayment), domain.ErrMissingBundledPayment},
		{"not opted in", bootstrapped(e), nil, newRequest(domain.ActionClaimSlotToken, xfer(budID, rules.DefaultSlotTokenCost)), domain.ErrNotInitialized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := e.Apply(Snapshot{Global: tt.global, Account: tt.account}, tt.req, testEnv(t0))
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestApply_UnlockSlot(t *testing.T) {
	e := newTestEngine()
	snap := Snapshot{Global: bootstrapped(e), Account: optedIn(t, e)}

	for slots := uint64(3); slots <= rules.DefaultMaxPodSlots; slots++ {
		var tr *Transition
		snap, tr = step(t, e, snap, newRequest(domain.ActionUnlockSlot, xfer(slotID, 1)), testEnv(t0))
		assert.Equal(t, slots, snap.Account.Progress.PodSlotCount)
		assert.Len(t, snap.Account.Pods, int(slots))
		assert.Empty(t, tr.Effects)
	}

	_, err := e.Apply(snap, newRequest(domain.ActionUnlockSlot, xfer(slotID, 1)), testEnv(t0))
	assert.ErrorIs(t, err, domain.ErrMaxSlotsReached)

	// the fifth pod is addressable once unlocked
	next, _ := step(t, e, snap, newRequest("plant_seed_5", xfer(seedID, 1)), testEnv(t0))
	assert.Equal(t, domain.StageGrowing1, next.Account.Pods[4].Stage)
}

func TestApply_UnlockSlotRejections(t *testing.T) {
	e := newTestEngine()
	g := bootstrapped(e)

	_, err := e.Apply(Snapshot{Global: g, Account: optedIn(t, e)}, newRequest(domain.ActionUnlockSlot, xfer(budID, 1)), testEnv(t0))
	assert.ErrorIs(t, err, domain.ErrMissingBundledPayment)

	_, err = e.Apply(Snapshot{Global: g, Account: optedIn(t, e)}, newRequest(domain.ActionUnlockSlot, xfer(slotID, 2)), testEnv(t0))
	assert.ErrorIs(t, err, domain.ErrMissingBundledPayment)

	noSlot := bootstrapped(e)
	noSlot.SlotAssetID = 0
	_, err = e.Apply(Snapshot{Global: noSlot, Account: optedIn(t, e)}, newRequest(domain.ActionUnlockSlot, xfer(slotID, 1)), testEnv(t0))
	assert.ErrorIs(t, err, domain.ErrAssetNotBootstrapped)
}
