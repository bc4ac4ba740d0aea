package growth

import (
	"fmt"

	"github.com/KudbeeZero/GrowPodEmpirev1.0/internal/domain"
)

// transferCheck describes the bundled transfer an action expects at a
// position before the call. Zero fields are not checked.
type transferCheck struct {
	offset int
	what   string

	asset    uint64
	sender   string
	amount   uint64 // exact amount, for unique tokens
	minimum  uint64 // threshold, for fungible payments
	anyAsset bool   // any non-zero asset
}

// evidence returns the bundled transfer at the check's offset, validated
// against it. Structural mismatches are MissingBundledPayment; a fungible
// amount below the minimum is InsufficientAmount.
func (c *call) evidence(chk transferCheck) (domain.LedgerOp, error) {
	op, ok := c.req.Bundle.At(chk.offset)
	if !ok {
		return op, fmt.Errorf("%w: %s expected %d before the call", domain.ErrMissingBundledPayment, chk.what, chk.offset)
	}

	switch {
	case !op.IsTransfer():
		return op, malformed(chk, "not a transfer")
	case op.Receiver != c.env.AppAddress:
		return op, malformed(chk, "receiver is not the application")
	case chk.anyAsset && op.AssetID == 0:
		return op, malformed(chk, "no asset")
	case !chk.anyAsset && op.AssetID != chk.asset:
		return op, malformed(chk, fmt.Sprintf("asset %d, want %d", op.AssetID, chk.asset))
	case chk.sender != "" && op.Sender != chk.sender:
		return op, malformed(chk, "sender is not the caller")
	case chk.amount != 0 && op.Amount != chk.amount:
		return op, malformed(chk, fmt.Sprintf("amount %d, want %d", op.Amount, chk.amount))
	}

	if op.Amount < chk.minimum {
		return op, fmt.Errorf("%w: %s of %d, need %d", domain.ErrInsufficientAmount, chk.what, op.Amount, chk.minimum)
	}
	return op, nil
}

func malformed(chk transferCheck, reason string) error {
	return fmt.Errorf("%w: %s: %s", domain.ErrMissingBundledPayment, chk.what, reason)
}
