package worker

// ============================================================================
// Log Messages - Worker Pool
// ============================================================================

// LogMsgWorkerJobFailed is logged when a worker fails to process a job
const LogMsgWorkerJobFailed = "Worker job failed"

// ============================================================================
// Log Messages - Vendor Event Job
// ============================================================================

// Log messages for vendor event delivery
const (
	LogMsgVendorEventSent    = "Vendor event sent"
	LogMsgVendorEventFailed  = "Failed to send vendor event"
	LogMsgVendorEventDropped = "Vendor event dropped, queue full"
)

// ============================================================================
// Pool Configuration
// ============================================================================

// Default pool sizing for vendor event delivery
const (
	DefaultWorkers   = 4
	DefaultQueueSize = 256
)
