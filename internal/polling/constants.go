package polling

import "time"

// Polling cadence constants. A purchase switches the poller to the fast
// interval for the boost duration so freshly earned badges show up while
// the shopper is still looking at the order confirmation.
const (
	// FastInterval is the poll interval while a purchase boost is active
	FastInterval = 5 * time.Second

	// SlowInterval is the steady-state poll interval
	SlowInterval = 5 * time.Minute

	// BoostDuration is how long fast polling lasts after a purchase
	BoostDuration = 60 * time.Second
)

// Log messages
const (
	LogMsgFastPollingTriggered = "Purchase detected - switching to fast polling"
	LogMsgBadgeFetchFailed     = "Badge fetch failed"
	LogMsgPollerStarted        = "Badge poller started"
	LogMsgPollerStopped        = "Badge poller stopped"
)
