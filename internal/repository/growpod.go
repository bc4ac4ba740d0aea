package repository

import (
	"context"

	"github.com/KudbeeZero/GrowPodEmpirev1.0/internal/domain"
)

// GrowPod defines the account state store. Reads outside a transaction see
// the last committed state.
type GrowPod interface {
	// GetGlobalConfig returns domain.ErrGlobalConfigNotFound before deploy
	GetGlobalConfig(ctx context.Context) (*domain.GlobalConfig, error)
	// GetAccount returns domain.ErrNotInitialized for unknown addresses
	GetAccount(ctx context.Context, address string) (*domain.AccountState, error)
	// ListAccounts pages through accounts ordered by address, starting after the given one
	ListAccounts(ctx context.Context, after string, limit int) ([]domain.AccountState, error)
	CountAccounts(ctx context.Context) (int64, error)

	BeginTx(ctx context.Context) (GrowPodTx, error)
}

// GrowPodTx is a store transaction. The ForUpdate reads lock the row they
// return until the transaction ends.
type GrowPodTx interface {
	Tx

	GetGlobalConfigForUpdate(ctx context.Context) (*domain.GlobalConfig, error)
	// CreateGlobalConfig returns domain.ErrGlobalConfigExists on a second deploy
	CreateGlobalConfig(ctx context.Context, g *domain.GlobalConfig) error
	// UpdateGlobalConfig requires g.Version to be exactly one past the stored
	// version, otherwise it returns domain.ErrVersionConflict.
	UpdateGlobalConfig(ctx context.Context, g *domain.GlobalConfig) error

	GetAccountForUpdate(ctx context.Context, address string) (*domain.AccountState, error)
	// CreateAccount returns domain.ErrAlreadyInitialized for a known address
	CreateAccount(ctx context.Context, a *domain.AccountState) error
	UpdateAccount(ctx context.Context, a *domain.AccountState) error
}
