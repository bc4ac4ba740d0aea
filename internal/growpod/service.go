// Package growpod runs growth actions against persisted state. Each accepted
// action commits its state changes and its ledger effects together; a
// rejected action leaves both untouched.
package growpod

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/KudbeeZero/GrowPodEmpirev1.0/internal/clock"
	"github.com/KudbeeZero/GrowPodEmpirev1.0/internal/concurrency"
	"github.com/KudbeeZero/GrowPodEmpirev1.0/internal/domain"
	"github.com/KudbeeZero/GrowPodEmpirev1.0/internal/event"
	"github.com/KudbeeZero/GrowPodEmpirev1.0/internal/growth"
	"github.com/KudbeeZero/GrowPodEmpirev1.0/internal/ledger"
	"github.com/KudbeeZero/GrowPodEmpirev1.0/internal/logger"
	"github.com/KudbeeZero/GrowPodEmpirev1.0/internal/metrics"
	"github.com/KudbeeZero/GrowPodEmpirev1.0/internal/repository"
)

// Service defines the growpod application interface
type Service interface {
	// Deploy creates the global record. A second deploy fails with
	// domain.ErrGlobalConfigExists.
	Deploy(ctx context.Context, owner string) (*domain.GlobalConfig, error)
	// OptIn creates the local state of address
	OptIn(ctx context.Context, address string) (*domain.AccountState, error)
	// Invoke runs one action tag for caller with the group it was submitted in
	Invoke(ctx context.Context, caller, tag string, args [][]byte, bundle ledger.Bundle) (*InvokeResult, error)

	GetGlobal(ctx context.Context) (*domain.GlobalConfig, error)
	GetAccount(ctx context.Context, address string) (*domain.AccountState, error)
	GetLayout(ctx context.Context, address string) (*StateLayout, error)
	ListAccounts(ctx context.Context, after string, limit int) ([]domain.AccountState, error)
	CountAccounts(ctx context.Context) (int64, error)
}

// InvokeResult is the committed outcome of an accepted action
type InvokeResult struct {
	Action    string               `json:"action"`
	Pod       int                  `json:"pod"`
	Global    domain.GlobalConfig  `json:"global"`
	Account   *domain.AccountState `json:"account,omitempty"`
	Effects   []domain.Receipt     `json:"effects"`
	Events    []domain.ActionEvent `json:"events"`
	Round     uint64               `json:"round"`
	Timestamp uint64               `json:"timestamp"`
}

// StateLayout is the verbatim key/value view of the global and local state
type StateLayout struct {
	Global domain.Layout `json:"global"`
	Local  domain.Layout `json:"local"`
}

// Config holds service settings
type Config struct {
	// AppAddress is the ledger address of the application itself
	AppAddress string `validate:"required"`
	CacheSize  int
	CacheTTL   time.Duration
}

type service struct {
	repo      repository.GrowPod
	ledger    ledger.Adapter
	engine    *growth.Engine
	clock     clock.Clock
	publisher event.Publisher
	locks     *concurrency.LockManager
	cache     *accountCache
	appAddr   string
}

// NewService creates a new growpod service
func NewService(
	repo repository.GrowPod,
	adapter ledger.Adapter,
	engine *growth.Engine,
	clk clock.Clock,
	publisher event.Publisher,
	cfg Config,
) Service {
	return &service{
		repo:      repo,
		ledger:    adapter,
		engine:    engine,
		clock:     clk,
		publisher: publisher,
		locks:     concurrency.NewLockManager(),
		cache:     newAccountCache(cfg.CacheSize, cfg.CacheTTL),
		appAddr:   cfg.AppAddress,
	}
}

func (s *service) Deploy(ctx context.Context, owner string) (*domain.GlobalConfig, error) {
	log := logger.FromContext(ctx)

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer repository.SafeRollback(ctx, tx)

	g := s.engine.NewGlobalConfig(owner)
	if err := tx.CreateGlobalConfig(ctx, &g); err != nil {
		return nil, fmt.Errorf("failed to create global config: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit deploy: %w", err)
	}

	metrics.RecordGlobal(&g)
	log.Info(LogMsgDeployed, LogFieldOwner, owner, LogFieldVersion, g.Version)
	return &g, nil
}

func (s *service) OptIn(ctx context.Context, address string) (*domain.AccountState, error) {
	log := logger.FromContext(ctx)

	unlock, err := s.locks.Lock(ctx, address)
	if err != nil {
		return nil, err
	}
	defer unlock()

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer repository.SafeRollback(ctx, tx)

	g, err := tx.GetGlobalConfigForUpdate(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get global config: %w", err)
	}

	existing, err := s.lockedAccount(ctx, tx, address)
	if err != nil {
		return nil, err
	}
	account, err := s.engine.OptIn(existing, address)
	if err != nil {
		metrics.ActionsTotal.WithLabelValues(domain.ActionOptIn, metrics.OutcomeRejected).Inc()
		return nil, err
	}

	if err := tx.CreateAccount(ctx, account); err != nil {
		return nil, fmt.Errorf("failed to create account: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit opt-in: %w", err)
	}

	s.cache.Set(account)
	metrics.ActionsTotal.WithLabelValues(domain.ActionOptIn, metrics.OutcomeAccepted).Inc()
	metrics.Accounts.Inc()

	now, round := s.clock.Now(), s.clock.Round()
	s.publish(ctx, domain.ActionOptIn, round, g.Version, []domain.ActionEvent{{
		Type: domain.EventTypeAccountOptedIn,
		Payload: domain.SlotPayload{
			Account:      address,
			PodSlotCount: account.Progress.PodSlotCount,
			Timestamp:    now,
		},
	}})

	log.Info(LogMsgOptedIn, LogFieldAccount, address)
	return account.Clone(), nil
}

func (s *service) Invoke(ctx context.Context, caller, tag string, args [][]byte, bundle ledger.Bundle) (*InvokeResult, error) {
	start := time.Now()
	label := actionLabel(tag)

	res, err := s.invoke(ctx, caller, tag, args, bundle)

	metrics.ActionDuration.WithLabelValues(label).Observe(time.Since(start).Seconds())
	s.logOutcome(ctx, caller, tag, label, res, err)
	return res, err
}

func (s *service) invoke(ctx context.Context, caller, tag string, args [][]byte, bundle ledger.Bundle) (*InvokeResult, error) {
	unlock, err := s.locks.Lock(ctx, caller)
	if err != nil {
		return nil, err
	}
	defer unlock()

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer repository.SafeRollback(ctx, tx)

	g, err := tx.GetGlobalConfigForUpdate(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get global config: %w", err)
	}
	account, err := s.lockedAccount(ctx, tx, caller)
	if err != nil {
		return nil, err
	}

	assets, err := s.bundleAssets(ctx, bundle)
	if err != nil {
		return nil, err
	}

	env := growth.Env{Now: s.clock.Now(), Round: s.clock.Round(), AppAddress: s.appAddr}
	tr, err := s.engine.Apply(
		growth.Snapshot{Global: g, Account: account},
		growth.Request{Caller: caller, Tag: tag, Args: args, Bundle: bundle, Assets: assets},
		env,
	)
	if err != nil {
		return nil, err
	}

	batch, err := s.ledger.Prepare(ctx, bundle, tr.Effects)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare ledger batch: %w", err)
	}
	committed := false
	defer func() {
		if !committed {
			if abortErr := batch.Abort(ctx); abortErr != nil {
				logger.FromContext(ctx).Error(LogMsgLedgerAbortFailed, LogFieldError, abortErr)
			}
		}
	}()

	receipts := ledger.EffectReceipts(batch, bundle)
	if err := tr.BindCreated(receipts); err != nil {
		return nil, err
	}

	if tr.GlobalChanged {
		if err := tx.UpdateGlobalConfig(ctx, &tr.Global); err != nil {
			return nil, fmt.Errorf("failed to update global config: %w", err)
		}
	}
	if tr.AccountChanged {
		if err := tx.UpdateAccount(ctx, tr.Account); err != nil {
			return nil, fmt.Errorf("failed to update account: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit action: %w", err)
	}
	committed = true

	if err := batch.Commit(ctx); err != nil {
		// the store already moved; only reconciliation can repair this
		s.cache.Invalidate(caller)
		return nil, fmt.Errorf("%w: %s: %w", domain.ErrInvariantViolation, LogMsgLedgerCommitFailed, err)
	}

	if tr.AccountChanged {
		s.cache.Set(tr.Account)
	}
	if tr.GlobalChanged {
		metrics.RecordGlobal(&tr.Global)
	}
	s.publish(ctx, tr.Action.Tag(), env.Round, tr.Global.Version, tr.Events)

	return &InvokeResult{
		Action:    tr.Action.Name,
		Pod:       tr.Action.Pod,
		Global:    tr.Global,
		Account:   tr.Account.Clone(),
		Effects:   receipts,
		Events:    tr.Events,
		Round:     env.Round,
		Timestamp: env.Now,
	}, nil
}

// lockedAccount reads address for update. Unknown addresses yield nil.
func (s *service) lockedAccount(ctx context.Context, tx repository.GrowPodTx, address string) (*domain.AccountState, error) {
	a, err := tx.GetAccountForUpdate(ctx, address)
	if errors.Is(err, domain.ErrNotInitialized) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	return a, nil
}

// bundleAssets fetches ledger metadata for every asset transferred in the
// bundle. Assets the ledger does not know are left out.
func (s *service) bundleAssets(ctx context.Context, bundle ledger.Bundle) (map[uint64]domain.AssetInfo, error) {
	assets := make(map[uint64]domain.AssetInfo)
	for _, op := range bundle.Ops {
		if !op.IsTransfer() || op.AssetID == 0 {
			continue
		}
		if _, seen := assets[op.AssetID]; seen {
			continue
		}
		info, err := s.ledger.AssetInfo(ctx, op.AssetID)
		if errors.Is(err, domain.ErrAssetNotFound) {
			logger.FromContext(ctx).Debug(LogMsgAssetLookupSkipped, LogFieldAssetID, op.AssetID)
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to get asset %d: %w", op.AssetID, err)
		}
		assets[op.AssetID] = *info
	}
	return assets, nil
}

func (s *service) publish(ctx context.Context, action string, round, version uint64, events []domain.ActionEvent) {
	if s.publisher == nil || len(events) == 0 {
		return
	}
	meta := event.Metadata{
		event.MetaAction:  action,
		event.MetaRound:   round,
		event.MetaVersion: version,
	}
	if id := logger.GetRequestID(ctx); id != "" {
		meta[event.MetaRequestID] = id
	}
	for _, ev := range events {
		s.publisher.PublishWithRetry(ctx, event.NewActionEvent(ev, meta))
	}
}

func (s *service) logOutcome(ctx context.Context, caller, tag, label string, res *InvokeResult, err error) {
	log := logger.FromContext(ctx)

	switch {
	case err == nil:
		metrics.ActionsTotal.WithLabelValues(label, metrics.OutcomeAccepted).Inc()
		log.Info(LogMsgActionAccepted,
			LogFieldAccount, caller,
			LogFieldAction, tag,
			LogFieldVersion, res.Global.Version,
			LogFieldRound, res.Round,
			LogFieldEffects, len(res.Effects),
			LogFieldEvents, len(res.Events))
	case domain.IsRejection(err):
		metrics.ActionsTotal.WithLabelValues(label, metrics.OutcomeRejected).Inc()
		log.Info(LogMsgActionRejected, LogFieldAccount, caller, LogFieldAction, tag, LogFieldError, err)
	case errors.Is(err, domain.ErrInvariantViolation):
		metrics.ActionsTotal.WithLabelValues(label, metrics.OutcomeFailed).Inc()
		log.Error(LogMsgInvariantViolation, LogFieldAccount, caller, LogFieldAction, tag, LogFieldError, err)
	default:
		metrics.ActionsTotal.WithLabelValues(label, metrics.OutcomeFailed).Inc()
		log.Error(LogMsgActionFailed, LogFieldAccount, caller, LogFieldAction, tag, LogFieldError, err)
	}
}

// actionLabel bounds the metric label set to known action names
func actionLabel(tag string) string {
	a, err := growth.ParseAction(tag)
	if err != nil {
		return actionLabelUnknown
	}
	return a.Name
}

func (s *service) GetGlobal(ctx context.Context) (*domain.GlobalConfig, error) {
	return s.repo.GetGlobalConfig(ctx)
}

func (s *service) GetAccount(ctx context.Context, address string) (*domain.AccountState, error) {
	if a, ok := s.cache.Get(address); ok {
		return a, nil
	}
	ticket := s.cache.Ticket()
	a, err := s.repo.GetAccount(ctx, address)
	if err != nil {
		return nil, err
	}
	s.cache.Fill(a, ticket)
	return a, nil
}

func (s *service) GetLayout(ctx context.Context, address string) (*StateLayout, error) {
	g, err := s.GetGlobal(ctx)
	if err != nil {
		return nil, err
	}
	a, err := s.GetAccount(ctx, address)
	if err != nil {
		return nil, err
	}
	return &StateLayout{Global: g.StateLayout(), Local: a.StateLayout()}, nil
}

func (s *service) ListAccounts(ctx context.Context, after string, limit int) ([]domain.AccountState, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	if limit > MaxListLimit {
		limit = MaxListLimit
	}
	return s.repo.ListAccounts(ctx, after, limit)
}

func (s *service) CountAccounts(ctx context.Context) (int64, error) {
	return s.repo.CountAccounts(ctx)
}

// Uint64Args encodes integer arguments the way the engine reads them
func Uint64Args(args []uint64) [][]byte {
	out := make([][]byte, len(args))
	for i, v := range args {
		out[i] = domain.Itob(v)
	}
	return out
}
