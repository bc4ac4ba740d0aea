package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	// Query and path parameter error messages
	ErrMsgInvalidLimit   = "Invalid limit parameter"
	ErrMsgInvalidSince   = "Invalid since parameter, expected RFC 3339"
	ErrMsgInvalidAddress = "Invalid account address"
)

// Operation names used in service error logs
const (
	opDeploy        = "Deploy"
	opGetGlobal     = "Get global"
	opOptIn         = "Opt in"
	opGetAccount    = "Get account"
	opGetLayout     = "Get layout"
	opListAccounts  = "List accounts"
	opCountAccounts = "Count accounts"
	opInvoke        = "Invoke "
	opGetEvents     = "Get events"
)
