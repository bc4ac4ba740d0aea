package eventlog

import "time"

// JSON payload field keys
const (
	PayloadKeyAccount = "account"
)

// DefaultRetention is how long logged events are kept
const DefaultRetention = 30 * 24 * time.Hour

// Log messages - service events
const (
	LogMsgEventPayloadNotObject = "Event payload is not an object, skipping log"
	LogMsgFailedToLogEvent      = "Failed to log event to database"
	LogMsgEventLogged           = "Event logged to database"
)

// Log messages - cleanup job
const (
	LogMsgCleanupJobStarting  = "Starting event log cleanup job"
	LogMsgCleanupJobFailed    = "Event log cleanup failed"
	LogMsgCleanupJobCompleted = "Event log cleanup completed"
)

// Log field keys - structured logging fields
const (
	LogFieldType         = "type"
	LogFieldAccount      = "account"
	LogFieldError        = "error"
	LogFieldRetention    = "retention"
	LogFieldDuration     = "duration"
	LogFieldDeletedCount = "deletedCount"
)
