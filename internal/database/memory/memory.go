// Package memory keeps GrowPod state in process memory. It backs tests and
// the dev server; nothing survives a restart.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/KudbeeZero/GrowPodEmpirev1.0/internal/domain"
	"github.com/KudbeeZero/GrowPodEmpirev1.0/internal/repository"
)

// Store implements repository.GrowPod. One transaction runs at a time;
// readers see the last committed state.
type Store struct {
	mu       sync.RWMutex
	global   *domain.GlobalConfig
	accounts map[string]*domain.AccountState

	writer chan struct{}
}

// NewStore creates an empty store
func NewStore() *Store {
	return &Store{
		accounts: make(map[string]*domain.AccountState),
		writer:   make(chan struct{}, 1),
	}
}

func (s *Store) GetGlobalConfig(ctx context.Context) (*domain.GlobalConfig, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.global == nil {
		return nil, domain.ErrGlobalConfigNotFound
	}
	g := *s.global
	return &g, nil
}

func (s *Store) GetAccount(ctx context.Context, address string) (*domain.AccountState, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.accounts[address]
	if !ok {
		return nil, domain.ErrNotInitialized
	}
	return a.Clone(), nil
}

func (s *Store) ListAccounts(ctx context.Context, after string, limit int) ([]domain.AccountState, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	addrs := make([]string, 0, len(s.accounts))
	for addr := range s.accounts {
		if addr > after {
			addrs = append(addrs, addr)
		}
	}
	sort.Strings(addrs)
	if limit > 0 && len(addrs) > limit {
		addrs = addrs[:limit]
	}

	out := make([]domain.AccountState, 0, len(addrs))
	for _, addr := range addrs {
		out = append(out, *s.accounts[addr].Clone())
	}
	return out, nil
}

func (s *Store) CountAccounts(ctx context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(len(s.accounts)), nil
}

// BeginTx waits for any running transaction to finish
func (s *Store) BeginTx(ctx context.Context) (repository.GrowPodTx, error) {
	select {
	case s.writer <- struct{}{}:
	case <-ctx.Done():
		return nil, fmt.Errorf("failed to begin growpod transaction: %w", ctx.Err())
	}
	return &tx{
		store:    s,
		accounts: make(map[string]*domain.AccountState),
	}, nil
}

// tx buffers writes until Commit
type tx struct {
	store    *Store
	global   *domain.GlobalConfig
	accounts map[string]*domain.AccountState
	closed   bool
}

func (t *tx) finish() {
	t.closed = true
	<-t.store.writer
}

func (t *tx) Commit(ctx context.Context) error {
	if t.closed {
		return repository.ErrTxClosed
	}
	t.store.mu.Lock()
	if t.global != nil {
		t.store.global = t.global
	}
	for addr, a := range t.accounts {
		t.store.accounts[addr] = a
	}
	t.store.mu.Unlock()
	t.finish()
	return nil
}

func (t *tx) Rollback(ctx context.Context) error {
	if t.closed {
		return repository.ErrTxClosed
	}
	t.finish()
	return nil
}

func (t *tx) currentGlobal() *domain.GlobalConfig {
	if t.global != nil {
		return t.global
	}
	t.store.mu.RLock()
	defer t.store.mu.RUnlock()
	return t.store.global
}

func (t *tx) GetGlobalConfigForUpdate(ctx context.Context) (*domain.GlobalConfig, error) {
	g := t.currentGlobal()
	if g == nil {
		return nil, domain.ErrGlobalConfigNotFound
	}
	c := *g
	return &c, nil
}

func (t *tx) CreateGlobalConfig(ctx context.Context, g *domain.GlobalConfig) error {
	if t.currentGlobal() != nil {
		return domain.ErrGlobalConfigExists
	}
	c := *g
	t.global = &c
	return nil
}

func (t *tx) UpdateGlobalConfig(ctx context.Context, g *domain.GlobalConfig) error {
	cur := t.currentGlobal()
	if cur == nil {
		return domain.ErrGlobalConfigNotFound
	}
	if g.Version != cur.Version+1 {
		return fmt.Errorf("%w: expected stored version %d", domain.ErrVersionConflict, g.Version-1)
	}
	c := *g
	t.global = &c
	return nil
}

func (t *tx) lookup(address string) (*domain.AccountState, bool) {
	if a, ok := t.accounts[address]; ok {
		return a, true
	}
	t.store.mu.RLock()
	defer t.store.mu.RUnlock()
	a, ok := t.store.accounts[address]
	return a, ok
}

func (t *tx) GetAccountForUpdate(ctx context.Context, address string) (*domain.AccountState, error) {
	a, ok := t.lookup(address)
	if !ok {
		return nil, domain.ErrNotInitialized
	}
	return a.Clone(), nil
}

func (t *tx) CreateAccount(ctx context.Context, a *domain.AccountState) error {
	if _, ok := t.lookup(a.Address); ok {
		return domain.ErrAlreadyInitialized
	}
	t.accounts[a.Address] = a.Clone()
	return nil
}

func (t *tx) UpdateAccount(ctx context.Context, a *domain.AccountState) error {
	if _, ok := t.lookup(a.Address); !ok {
		return domain.ErrNotInitialized
	}
	t.accounts[a.Address] = a.Clone()
	return nil
}
