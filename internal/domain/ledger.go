package domain

// OpType identifies the kind of a ledger operation.
type OpType string

const (
	// OpTransfer moves Amount units of AssetID from Sender to Receiver
	OpTransfer OpType = "transfer"
	// OpCreateAsset creates a new asset class described by Asset
	OpCreateAsset OpType = "create_asset"
)

// AssetSpec describes an asset class to be created by the ledger.
type AssetSpec struct {
	Total    uint64 `json:"total"`
	Decimals uint32 `json:"decimals"`
	UnitName string `json:"unit_name"`
	Name     string `json:"name"`
	URL      string `json:"url,omitempty"`
	Note     []byte `json:"note,omitempty"`
	Manager  string `json:"manager,omitempty"`
	Reserve  string `json:"reserve,omitempty"`
	Frozen   bool   `json:"default_frozen,omitempty"`
}

// LedgerOp is one operation of a grouped submission. Bundled evidence and
// engine effects share this shape.
//
// For OpCreateAsset, Receiver (when set) gets the whole created supply and
// Bind names the global state key that records the created id.
type LedgerOp struct {
	Type     OpType     `json:"type"`
	Sender   string     `json:"sender"`
	Receiver string     `json:"receiver,omitempty"`
	AssetID  uint64     `json:"asset_id,omitempty"`
	Amount   uint64     `json:"amount,omitempty"`
	Asset    *AssetSpec `json:"asset,omitempty"`
	Bind     string     `json:"bind,omitempty"`
}

// IsTransfer reports whether the op is an asset transfer
func (op LedgerOp) IsTransfer() bool {
	return op.Type == OpTransfer
}

// AssetInfo is the ledger's view of an existing asset class.
type AssetInfo struct {
	ID       uint64 `json:"id"`
	Creator  string `json:"creator"`
	Total    uint64 `json:"total"`
	Decimals uint32 `json:"decimals"`
	UnitName string `json:"unit_name"`
	Name     string `json:"name"`
	URL      string `json:"url,omitempty"`
	Note     []byte `json:"note,omitempty"`
}

// Receipt reports the outcome of one submitted op. CreatedAssetID is set
// for OpCreateAsset.
type Receipt struct {
	Op             LedgerOp `json:"op"`
	CreatedAssetID uint64   `json:"created_asset_id,omitempty"`
}
