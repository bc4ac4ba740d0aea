package worker

import "time"

// DefaultJobTimeout bounds a single job run
const DefaultJobTimeout = 5 * time.Minute

// Log messages
const (
	LogMsgWorkerJobFailed   = "Worker job failed"
	LogMsgWorkerJobDone     = "Worker job completed"
	LogMsgWorkerQueueFull   = "Worker queue full, job skipped"
	LogMsgWorkerPoolStopped = "Worker pool stopped"
)

// Log field keys
const (
	LogFieldJob      = "job"
	LogFieldError    = "error"
	LogFieldDuration = "duration"
)
