package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Account errors
	ErrMsgNotInitialized     = "account not initialized"
	ErrMsgAlreadyInitialized = "account already initialized"

	// Growth errors
	ErrMsgInvalidStage      = "invalid stage for action"
	ErrMsgCooldownActive    = "cooldown active"
	ErrMsgCooldownTooShort  = "cooldown below minimum"
	ErrMsgPodLocked         = "pod slot not unlocked"
	ErrMsgMaxSlotsReached   = "maximum pod slots reached"
	ErrMsgNotEnoughHarvests = "not enough harvests"

	// Bundle errors
	ErrMsgMissingBundledPayment = "missing bundled payment"
	ErrMsgInsufficientAmount    = "insufficient amount"
	ErrMsgWeightMismatch        = "declared weight does not match biomass metadata"

	// Global config errors
	ErrMsgAssetNotBootstrapped = "asset not bootstrapped"
	ErrMsgAlreadyBootstrapped  = "assets already bootstrapped"
	ErrMsgUnauthorized         = "unauthorized"
	ErrMsgGlobalConfigNotFound = "global config not found"
	ErrMsgGlobalConfigExists   = "global config already exists"
	ErrMsgVersionConflict      = "state version conflict"
	ErrMsgActionDisabled       = "action disabled by ruleset"
	ErrMsgUnknownAction        = "unknown action"
	ErrMsgInvalidArgument      = "invalid argument"
	ErrMsgInvariantViolation   = "engine invariant violated"
	ErrMsgLedgerRejected       = "ledger rejected batch"
	ErrMsgAssetNotFound        = "asset not found"
	ErrMsgInsufficientBalance  = "insufficient ledger balance"

	// Database/System errors
	ErrMsgTxClosed = "tx is closed"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	ErrNotInitialized     = errors.New(ErrMsgNotInitialized)
	ErrAlreadyInitialized = errors.New(ErrMsgAlreadyInitialized)

	ErrInvalidStage         = errors.New(ErrMsgInvalidStage)
	ErrCooldownActive       = errors.New(ErrMsgCooldownActive)
	ErrCooldownTooShort     = errors.New(ErrMsgCooldownTooShort)
	ErrPodLocked            = errors.New(ErrMsgPodLocked)
	ErrMaxSlotsReached      = errors.New(ErrMsgMaxSlotsReached)
	ErrInsufficientHarvests = errors.New(ErrMsgNotEnoughHarvests)

	ErrMissingBundledPayment = errors.New(ErrMsgMissingBundledPayment)
	ErrInsufficientAmount    = errors.New(ErrMsgInsufficientAmount)
	ErrWeightMismatch        = errors.New(ErrMsgWeightMismatch)

	ErrAssetNotBootstrapped = errors.New(ErrMsgAssetNotBootstrapped)
	ErrAlreadyBootstrapped  = errors.New(ErrMsgAlreadyBootstrapped)
	ErrUnauthorized         = errors.New(ErrMsgUnauthorized)
	ErrGlobalConfigNotFound = errors.New(ErrMsgGlobalConfigNotFound)
	ErrGlobalConfigExists   = errors.New(ErrMsgGlobalConfigExists)
	ErrVersionConflict      = errors.New(ErrMsgVersionConflict)
	ErrActionDisabled       = errors.New(ErrMsgActionDisabled)
	ErrUnknownAction        = errors.New(ErrMsgUnknownAction)
	ErrInvalidArgument      = errors.New(ErrMsgInvalidArgument)

	// ErrInvariantViolation marks a defect in the engine itself, never a
	// rejected action. Callers must not retry.
	ErrInvariantViolation = errors.New(ErrMsgInvariantViolation)

	ErrLedgerRejected      = errors.New(ErrMsgLedgerRejected)
	ErrAssetNotFound       = errors.New(ErrMsgAssetNotFound)
	ErrInsufficientBalance = errors.New(ErrMsgInsufficientBalance)
)

// IsRejection reports whether err is an ordinary precondition failure that
// left all state untouched and may be resubmitted later.
func IsRejection(err error) bool {
	if err == nil || errors.Is(err, ErrInvariantViolation) {
		return false
	}
	for _, target := range rejections {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

var rejections = []error{
	ErrNotInitialized,
	ErrAlreadyInitialized,
	ErrInvalidStage,
	ErrCooldownActive,
	ErrCooldownTooShort,
	ErrPodLocked,
	ErrMaxSlotsReached,
	ErrInsufficientHarvests,
	ErrMissingBundledPayment,
	ErrInsufficientAmount,
	ErrWeightMismatch,
	ErrAssetNotBootstrapped,
	ErrAlreadyBootstrapped,
	ErrUnauthorized,
	ErrActionDisabled,
	ErrUnknownAction,
	ErrInvalidArgument,
	ErrLedgerRejected,
}
