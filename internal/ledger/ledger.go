// Package ledger defines the boundary to the service that holds balances and
// asset classes, plus an in-memory implementation for development and tests.
package ledger

import (
	"context"

	"github.com/KudbeeZero/GrowPodEmpirev1.0/internal/domain"
)

// Adapter applies grouped submissions atomically.
//
// Prepare validates the bundled ops followed by the effects as one group and
// reserves the result. Nothing is visible to readers until Commit; Abort
// discards the reservation. Exactly one of them must be called.
type Adapter interface {
	Prepare(ctx context.Context, bundle Bundle, effects []domain.LedgerOp) (Batch, error)
	AssetInfo(ctx context.Context, id uint64) (*domain.AssetInfo, error)
}

// Batch is a prepared group awaiting commit or abort.
type Batch interface {
	// Receipts returns one receipt per op, bundle ops first
	Receipts() []domain.Receipt
	Commit(ctx context.Context) error
	Abort(ctx context.Context) error
}

// EffectReceipts returns the receipts of the effects part of a batch
func EffectReceipts(b Batch, bundle Bundle) []domain.Receipt {
	r := b.Receipts()
	if len(bundle.Ops) > len(r) {
		return nil
	}
	return r[len(bundle.Ops):]
}
