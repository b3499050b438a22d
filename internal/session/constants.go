package session

import "time"

// Session lifecycle defaults
const (
	// DefaultSessionTTL is how long an idle session lives
	DefaultSessionTTL = 30 * time.Minute

	// DefaultMaxSessions caps concurrently polled users
	DefaultMaxSessions = 1024
)

// Log messages for session lifecycle
const (
	LogMsgSessionCreated          = "Session created"
	LogMsgSessionEvicted          = "Session evicted"
	LogMsgFastPollingBoost        = "Fast polling boost applied"
	LogMsgBadgeEventPublishFailed = "Failed to publish badge unlocked event"
	LogMsgSessionStats            = "Session stats"
)
