package ledger

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/KudbeeZero/GrowPodEmpirev1.0/internal/domain"
)

// ErrBatchClosed is returned when committing a batch twice
var ErrBatchClosed = errors.New("batch already closed")

// DefaultFirstAssetID is the id given to the first asset a MemoryLedger creates
const DefaultFirstAssetID = 1000

type holding struct {
	address string
	asset   uint64
}

// MemoryLedger is an in-process Adapter. Prepared batches are exclusive: a
// second Prepare waits until the open batch is committed or aborted.
type MemoryLedger struct {
	sem chan struct{}

	mu       sync.RWMutex
	balances map[holding]uint64
	assets   map[uint64]domain.AssetInfo
	nextID   uint64
}

// NewMemoryLedger creates an empty ledger
func NewMemoryLedger(firstAssetID uint64) *MemoryLedger {
	if firstAssetID == 0 {
		firstAssetID = DefaultFirstAssetID
	}
	return &MemoryLedger{
		sem:      make(chan struct{}, 1),
		balances: make(map[holding]uint64),
		assets:   make(map[uint64]domain.AssetInfo),
		nextID:   firstAssetID,
	}
}

// Balance returns the amount of asset held by address
func (l *MemoryLedger) Balance(address string, asset uint64) uint64 {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.balances[holding{address, asset}]
}

// AssetInfo returns the parameters of an existing asset
func (l *MemoryLedger) AssetInfo(_ context.Context, id uint64) (*domain.AssetInfo, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	info, ok := l.assets[id]
	if !ok {
		return nil, fmt.Errorf("%w: %d", domain.ErrAssetNotFound, id)
	}
	return &info, nil
}

// Submit prepares and commits ops as a standalone group
func (l *MemoryLedger) Submit(ctx context.Context, ops ...domain.LedgerOp) ([]domain.Receipt, error) {
	b, err := l.Prepare(ctx, NewBundle(ops...), nil)
	if err != nil {
		return nil, err
	}
	if err := b.Commit(ctx); err != nil {
		return nil, err
	}
	return b.Receipts(), nil
}

// Prepare validates the group against a delta over the committed state
func (l *MemoryLedger) Prepare(ctx context.Context, bundle Bundle, effects []domain.LedgerOp) (Batch, error) {
	select {
	case l.sem <- struct{}{}:
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	l.mu.RLock()
	d := &delta{
		ledger:   l,
		balances: make(map[holding]uint64),
		assets:   make(map[uint64]domain.AssetInfo),
		nextID:   l.nextID,
	}
	ops := make([]domain.LedgerOp, 0, len(bundle.Ops)+len(effects))
	ops = append(ops, bundle.Ops...)
	ops = append(ops, effects...)

	var err error
	for i, op := range ops {
		var r domain.Receipt
		if r, err = d.apply(op); err != nil {
			err = fmt.Errorf("%w: op %d: %w", domain.ErrLedgerRejected, i, err)
			break
		}
		d.receipts = append(d.receipts, r)
	}
	l.mu.RUnlock()

	if err != nil {
		<-l.sem
		return nil, err
	}
	return d, nil
}

// delta is a prepared batch: pending writes layered over the ledger.
// Reads fall through to the committed state, which cannot change while the
// batch holds the semaphore.
type delta struct {
	ledger   *MemoryLedger
	balances map[holding]uint64
	assets   map[uint64]domain.AssetInfo
	nextID   uint64
	receipts []domain.Receipt
	done     bool
}

func (d *delta) balance(h holding) uint64 {
	if v, ok := d.balances[h]; ok {
		return v
	}
	return d.ledger.balances[h]
}

func (d *delta) assetExists(id uint64) bool {
	if _, ok := d.assets[id]; ok {
		return true
	}
	_, ok := d.ledger.assets[id]
	return ok
}

func (d *delta) apply(op domain.LedgerOp) (domain.Receipt, error) {
	switch op.Type {
	case domain.OpTransfer:
		if !d.assetExists(op.AssetID) {
			return domain.Receipt{}, fmt.Errorf("%w: %d", domain.ErrAssetNotFound, op.AssetID)
		}
		from := holding{op.Sender, op.AssetID}
		to := holding{op.Receiver, op.AssetID}
		have := d.balance(from)
		if have < op.Amount {
			return domain.Receipt{}, fmt.Errorf("%w: %s holds %d of %d, needs %d",
				domain.ErrInsufficientBalance, op.Sender, have, op.AssetID, op.Amount)
		}
		d.balances[from] = have - op.Amount
		d.balances[to] = d.balance(to) + op.Amount
		return domain.Receipt{Op: op}, nil

	case domain.OpCreateAsset:
		if op.Asset == nil {
			return domain.Receipt{}, fmt.Errorf("%w: create_asset without asset parameters", domain.ErrInvalidArgument)
		}
		id := d.nextID
		d.nextID++
		d.assets[id] = domain.AssetInfo{
			ID:       id,
			Creator:  op.Sender,
			Total:    op.Asset.Total,
			Decimals: op.Asset.Decimals,
			UnitName: op.Asset.UnitName,
			Name:     op.Asset.Name,
			URL:      op.Asset.URL,
			Note:     op.Asset.Note,
		}
		holder := op.Receiver
		if holder == "" {
			holder = op.Sender
		}
		d.balances[holding{holder, id}] = op.Asset.Total
		return domain.Receipt{Op: op, CreatedAssetID: id}, nil
	}
	return domain.Receipt{}, fmt.Errorf("%w: op type %q", domain.ErrInvalidArgument, op.Type)
}

func (d *delta) Receipts() []domain.Receipt {
	return d.receipts
}

func (d *delta) Commit(_ context.Context) error {
	if d.done {
		return ErrBatchClosed
	}
	d.done = true

	l := d.ledger
	l.mu.Lock()
	for h, v := range d.balances {
		l.balances[h] = v
	}
	for id, info := range d.assets {
		l.assets[id] = info
	}
	l.nextID = d.nextID
	l.mu.Unlock()

	<-l.sem
	return nil
}

func (d *delta) Abort(_ context.Context) error {
	if d.done {
		return nil
	}
	d.done = true
	<-d.ledger.sem
	return nil
}
