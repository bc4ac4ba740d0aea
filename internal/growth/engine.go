// Package growth implements the GrowPod state machine. Apply is a pure
// function of its inputs: it never performs I/O and never mutates the
// snapshot it is given.
package growth

import (
	"fmt"

	"github.com/KudbeeZero/GrowPodEmpirev1.0/internal/domain"
	"github.com/KudbeeZero/GrowPodEmpirev1.0/internal/ledger"
	"github.com/KudbeeZero/GrowPodEmpirev1.0/internal/rules"
)

// Snapshot is the persisted state an action runs against. Account is nil
// when the caller has not opted in.
type Snapshot struct {
	Global  *domain.GlobalConfig
	Account *domain.AccountState
}

// Request is one action invocation.
type Request struct {
	Caller string
	Tag    string
	Args   [][]byte
	Bundle ledger.Bundle

	// Assets holds ledger metadata for assets referenced by the bundle
	Assets map[uint64]domain.AssetInfo
}

// Env carries the inputs fixed by the environment when the action is accepted.
type Env struct {
	Now        uint64
	Round      uint64
	AppAddress string
}

// Transition is the complete outcome of an accepted action.
type Transition struct {
	Action  Action
	Global  domain.GlobalConfig
	Account *domain.AccountState

	GlobalChanged  bool
	AccountChanged bool

	Effects []domain.LedgerOp
	Events  []domain.ActionEvent
}

// Engine applies actions under a ruleset.
type Engine struct {
	formulas *rules.Engine
	rules    rules.Ruleset
}

// NewEngine creates a growth engine
func NewEngine(r rules.Ruleset) *Engine {
	return &Engine{formulas: rules.NewEngine(r), rules: r}
}

// Rules returns the ruleset in force
func (e *Engine) Rules() rules.Ruleset {
	return e.rules
}

// NewGlobalConfig returns the record created when the application is deployed
func (e *Engine) NewGlobalConfig(owner string) domain.GlobalConfig {
	return domain.GlobalConfig{
		Owner:       owner,
		Version:     1,
		Period:      e.rules.Period,
		CleanupCost: e.rules.CleanupBurn,
		BreedCost:   e.rules.BreedCost,
	}
}

// OptIn initializes local state for address with the initial pod slots
func (e *Engine) OptIn(existing *domain.AccountState, address string) (*domain.AccountState, error) {
	if existing != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrAlreadyInitialized, address)
	}
	return &domain.AccountState{
		Address: address,
		Pods:    make([]domain.PodState, e.rules.InitialPodSlots),
		Progress: domain.AccountProgress{
			PodSlotCount: e.rules.InitialPodSlots,
		},
	}, nil
}

// Apply validates req against snap and returns the resulting transition.
// On error the returned transition is nil and no effect must be executed.
func (e *Engine) Apply(snap Snapshot, req Request, env Env) (*Transition, error) {
	if snap.Global == nil {
		return nil, domain.ErrGlobalConfigNotFound
	}

	action, err := ParseAction(req.Tag)
	if err != nil {
		return nil, err
	}
	if err := req.Bundle.Validate(); err != nil {
		return nil, err
	}

	t := &Transition{
		Action:  action,
		Global:  *snap.Global,
		Account: snap.Account.Clone(),
	}

	if action.needsInit() {
		if t.Account == nil {
			return nil, fmt.Errorf("%w: %s", domain.ErrNotInitialized, req.Caller)
		}
		if action.podScoped() && action.Pod >= len(t.Account.Pods) {
			return nil, fmt.Errorf("%w: pod %d of %d", domain.ErrPodLocked, action.Pod+1, len(t.Account.Pods))
		}
	}

	c := &call{engine: e, t: t, req: req, env: env}

	switch action.Name {
	case domain.ActionBootstrap:
		err = c.bootstrap()
	case domain.ActionSetAssetIDs:
		err = c.setAssetIDs()
	case domain.ActionMintSeed:
		err = c.mintSeed()
	case domain.ActionPlantSeed:
		err = c.plant()
	case domain.ActionWater:
		err = c.water()
	case domain.ActionNutrients:
		err = c.nutrients()
	case domain.ActionHarvest:
		err = c.harvest()
	case domain.ActionProcess:
		err = c.process()
	case domain.ActionCleanup:
		err = c.cleanup()
	case domain.ActionBreed:
		err = c.breed()
	case domain.ActionClaimSlotToken:
		err = c.claimSlotToken()
	case domain.ActionUnlockSlot:
		err = c.unlockSlot()
	default:
		err = fmt.Errorf("%w: %s", domain.ErrUnknownAction, req.Tag)
	}
	if err != nil {
		return nil, err
	}

	if t.GlobalChanged {
		if t.Global.Version, err = addChecked(t.Global.Version, 1, "version"); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// BindCreated records the ids of assets created by the transition's effects.
// receipts are the effect receipts in effect order.
func (t *Transition) BindCreated(receipts []domain.Receipt) error {
	if len(receipts) != len(t.Effects) {
		return fmt.Errorf("%w: %d receipts for %d effects", domain.ErrInvariantViolation, len(receipts), len(t.Effects))
	}

	bound := false
	for i, op := range t.Effects {
		if op.Type != domain.OpCreateAsset || op.Bind == "" {
			continue
		}
		id := receipts[i].CreatedAssetID
		switch op.Bind {
		case domain.KeyBudAsset:
			t.Global.BudAssetID = id
		case domain.KeyTerpAsset:
			t.Global.TerpAssetID = id
		case domain.KeySlotAsset:
			t.Global.SlotAssetID = id
		default:
			return fmt.Errorf("%w: unknown bind key %q", domain.ErrInvariantViolation, op.Bind)
		}
		bound = true
	}

	if bound {
		for i, ev := range t.Events {
			if p, ok := ev.Payload.(domain.AssetsPayload); ok {
				p.BudAssetID = t.Global.BudAssetID
				p.TerpAssetID = t.Global.TerpAssetID
				p.SlotAssetID = t.Global.SlotAssetID
				t.Events[i].Payload = p
			}
		}
	}
	return nil
}

// call carries one Apply invocation through the action handlers
type call struct {
	engine *Engine
	t      *Transition
	req    Request
	env    Env
}

func (c *call) rules() rules.Ruleset {
	return c.engine.rules
}

func (c *call) pod() *domain.PodState {
	p, _ := c.t.Account.Pod(c.t.Action.Pod)
	return p
}

func (c *call) emit(eventType string, payload interface{}) {
	c.t.Events = append(c.t.Events, domain.ActionEvent{Type: eventType, Payload: payload})
}

func (c *call) effect(op domain.LedgerOp) {
	c.t.Effects = append(c.t.Effects, op)
}

// pay transfers amount of asset from the application to the caller
func (c *call) pay(asset, amount uint64) {
	c.effect(domain.LedgerOp{
		Type:     domain.OpTransfer,
		Sender:   c.env.AppAddress,
		Receiver: c.req.Caller,
		AssetID:  asset,
		Amount:   amount,
	})
}

func (c *call) podPayload(prev domain.Stage) domain.PodEventPayload {
	return domain.PodEventPayload{
		Account:   c.req.Caller,
		Pod:       c.t.Action.Pod,
		Stage:     c.pod().Stage,
		PrevStage: prev,
		Timestamp: c.env.Now,
	}
}

func (c *call) requireOwner() error {
	if c.req.Caller != c.t.Global.Owner {
		return fmt.Errorf("%w: %s is not the owner", domain.ErrUnauthorized, c.req.Caller)
	}
	return nil
}

func (c *call) requireBud() error {
	if c.t.Global.BudAssetID == 0 {
		return fmt.Errorf("%w: BUD", domain.ErrAssetNotBootstrapped)
	}
	return nil
}

func (c *call) requireStage(ok bool) error {
	if !ok {
		return fmt.Errorf("%w: %s on %s pod %d", domain.ErrInvalidStage, c.t.Action.Name, c.pod().Stage, c.t.Action.Pod+1)
	}
	return nil
}

// arg decodes the optional integer argument i
func (c *call) arg(i int) (uint64, bool, error) {
	if i >= len(c.req.Args) {
		return 0, false, nil
	}
	v, err := domain.Btoi(c.req.Args[i])
	if err != nil {
		return 0, false, err
	}
	return v, true, nil
}

func addChecked(a, b uint64, what string) (uint64, error) {
	if a+b < a {
		return 0, fmt.Errorf("%w: %s overflow", domain.ErrInvariantViolation, what)
	}
	return a + b, nil
}
