package worker

import (
	"log/slog"

	"github.com/osse101/BadgerShop_Go/internal/badger"
)

// Dispatcher hands vendor events to the pool. It is the only way the
// storefront talks to the vendor's event endpoint.
type Dispatcher struct {
	pool   *Pool
	client badger.Client
}

// NewDispatcher creates a dispatcher backed by the given pool and client
func NewDispatcher(pool *Pool, client badger.Client) *Dispatcher {
	return &Dispatcher{pool: pool, client: client}
}

// Dispatch enqueues a vendor event for background delivery
func (d *Dispatcher) Dispatch(userID, event string, metadata map[string]string) {
	job := NewVendorEventJob(d.client, userID, event, metadata)
	if !d.pool.Enqueue(job) {
		slog.Warn(LogMsgVendorEventDropped, "user_id", userID, "event", event)
	}
}
