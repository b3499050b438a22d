// Package session owns the per-user badge machinery: each active
// shopper gets a polling controller, a badge poller, and a notification
// queue, bundled into a session that expires with inactivity.
package session

import (
	"context"
	"time"

	"github.com/osse101/BadgerShop_Go/internal/notify"
	"github.com/osse101/BadgerShop_Go/internal/polling"
)

// Session is the badge state for one user
type Session struct {
	UserID     string
	Controller *polling.Controller
	Poller     *polling.Poller
	Queue      *notify.Queue

	createdAt time.Time
}

// Stop halts the session's poller. The poller may be mid-fetch, so
// stopping happens off the caller's goroutine.
func (s *Session) Stop() {
	go s.Poller.Stop()
}

// Snapshot returns the poller's current badge view
func (s *Session) Snapshot() polling.Snapshot {
	return s.Poller.Snapshot()
}

// Refresh forces an immediate badge fetch
func (s *Session) Refresh(ctx context.Context) {
	s.Poller.Refresh(ctx)
}

// Age returns how long the session has existed
func (s *Session) Age() time.Duration {
	return time.Since(s.createdAt)
}
