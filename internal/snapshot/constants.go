package snapshot

// FormatVersion is written to every snapshot header
const FormatVersion = 1

const (
	exportPageSize = 500
	bufferSize     = 256 * 1024
)

// Log messages
const (
	LogMsgExported = "Snapshot exported"
	LogMsgImported = "Snapshot imported"
)

// Error messages
const (
	ErrMsgReadHeader      = "failed to read snapshot header"
	ErrMsgUnsupported     = "unsupported snapshot version"
	ErrMsgReadGlobal      = "failed to read snapshot global record"
	ErrMsgReadAccount     = "failed to read snapshot account"
	ErrMsgCountMismatch   = "snapshot account count mismatch"
	ErrMsgStoreNotEmpty   = "store already holds a global record"
	ErrMsgOpenCompression = "failed to open zstd stream"
)
