package growth

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/KudbeeZero/GrowPodEmpirev1.0/internal/domain"
	"github.com/KudbeeZero/GrowPodEmpirev1.0/internal/ledger"
	"github.com/KudbeeZero/GrowPodEmpirev1.0/internal/rules"
)

const (
	testOwner = "OWNER"
	testApp   = "APP"
	testUser  = "ALICE"

	budID  uint64 = 1001
	terpID uint64 = 1002
	slotID uint64 = 1003
	seedID uint64 = 2001

	t0 uint64 = 1_700_000_000
)

func newTestEngine(mutate ...func(*rules.Ruleset)) *Engine {
	r := rules.Default()
	for _, m := range mutate {
		m(&r)
	}
	return NewEngine(r)
}

func bootstrapped(e *Engine) *domain.GlobalConfig {
	g := e.NewGlobalConfig(testOwner)
	g.BudAssetID = budID
	g.TerpAssetID = terpID
	g.SlotAssetID = slotID
	return &g
}

func optedIn(t *testing.T, e *Engine) *domain.AccountState {
	t.Helper()
	a, err := e.OptIn(nil, testUser)
	require.NoError(t, err)
	return a
}

func testEnv(now uint64) Env {
	return Env{Now: now, Round: 42, AppAddress: testApp}
}

func xfer(asset, amount uint64) domain.LedgerOp {
	return domain.LedgerOp{Type: domain.OpTransfer, Sender: testUser, Receiver: testApp, AssetID: asset, Amount: amount}
}

func newRequest(tag string, ops ...domain.LedgerOp) Request {
	return Request{Caller: testUser, Tag: tag, Bundle: ledger.NewBundle(ops...)}
}

func withArgs(r Request, args ...uint64) Request {
	r.Args = domain.EncodeArgs(args...)
	return r
}

// step applies req and returns the follow-up snapshot
func step(t *testing.T, e *Engine, snap Snapshot, req Request, env Env) (Snapshot, *Transition) {
	t.Helper()
	tr, err := e.Apply(snap, req, env)
	require.NoError(t, err)
	g := tr.Global
	return Snapshot{Global: &g, Account: tr.Account}, tr
}

// profile returns a terpene profile whose rarity digest is (or is not) rewarded
func profile(t *testing.T, rare bool) []byte {
	t.Helper()
	for i := uint64(0); i < 100_000; i++ {
		p := domain.Itob(i)
		if (rules.ProfileHash(p)[0] < rules.DefaultRarityThreshold) == rare {
			return p
		}
	}
	t.Fatal("no matching profile")
	return nil
}

func eventTypes(tr *Transition) []string {
	types := make([]string, len(tr.Events))
	for i, ev := range tr.Events {
		types[i] = ev.Type
	}
	return types
}
