package ledger

import (
	"fmt"

	"github.com/KudbeeZero/GrowPodEmpirev1.0/internal/domain"
)

// Bundle is the ordered group an action call was submitted with. The call
// itself sits at group position Index; Ops holds the other members in order.
type Bundle struct {
	Ops   []domain.LedgerOp `json:"ops"`
	Index int               `json:"index"`
}

// NewBundle places the call after all given ops
func NewBundle(ops ...domain.LedgerOp) Bundle {
	return Bundle{Ops: ops, Index: len(ops)}
}

// Validate checks that Index is a position inside the group
func (b Bundle) Validate() error {
	if b.Index < 0 || b.Index > len(b.Ops) {
		return fmt.Errorf("%w: call index %d outside group of %d", domain.ErrInvalidArgument, b.Index, b.Size())
	}
	return nil
}

// Size returns the number of group members including the call
func (b Bundle) Size() int {
	return len(b.Ops) + 1
}

// At returns the op k positions before the call
func (b Bundle) At(k int) (domain.LedgerOp, bool) {
	p := b.Index - k
	if k <= 0 || p < 0 || p >= len(b.Ops) {
		return domain.LedgerOp{}, false
	}
	return b.Ops[p], true
}
