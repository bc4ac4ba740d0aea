package growpod

import "time"

// Account cache defaults
const (
	DefaultCacheSize = 4096
	DefaultCacheTTL  = 5 * time.Minute

	// CacheSchemaVersion is bumped when the cached account shape changes
	CacheSchemaVersion = "1.0"
)

// Paging limits for ListAccounts
const (
	DefaultListLimit = 50
	MaxListLimit     = 500
)

// actionLabelUnknown labels metrics for tags that do not parse
const actionLabelUnknown = "unknown"

// Log messages
const (
	LogMsgDeployed           = "Application deployed"
	LogMsgOptedIn            = "Account opted in"
	LogMsgActionAccepted     = "Action accepted"
	LogMsgActionRejected     = "Action rejected"
	LogMsgActionFailed       = "Action failed"
	LogMsgInvariantViolation = "Growth engine invariant violated"
	LogMsgLedgerAbortFailed  = "Failed to abort ledger batch"
	LogMsgLedgerCommitFailed = "Ledger commit failed after store commit"
	LogMsgAssetLookupSkipped = "Bundled asset unknown to ledger"
)

// Log field keys
const (
	LogFieldAccount = "account"
	LogFieldAction  = "action"
	LogFieldOwner   = "owner"
	LogFieldVersion = "version"
	LogFieldRound   = "round"
	LogFieldEffects = "effects"
	LogFieldEvents  = "events"
	LogFieldAssetID = "assetID"
	LogFieldError   = "error"
)
