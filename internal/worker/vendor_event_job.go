package worker

import (
	"context"
	"log/slog"
	"time"

	"github.com/osse101/BadgerShop_Go/internal/badger"
	"github.com/osse101/BadgerShop_Go/internal/metrics"
)

// vendorEventTimeout bounds a single delivery attempt so a slow vendor
// cannot wedge a worker
const vendorEventTimeout = 15 * time.Second

// VendorEventJob delivers one gamification event to the Badger service
type VendorEventJob struct {
	client   badger.Client
	userID   string
	event    string
	metadata map[string]string
}

// NewVendorEventJob creates a job that sends the given event for userID
func NewVendorEventJob(client badger.Client, userID, event string, metadata map[string]string) *VendorEventJob {
	return &VendorEventJob{
		client:   client,
		userID:   userID,
		event:    event,
		metadata: metadata,
	}
}

// Process sends the event. Failures are counted and logged but not
// retried; badge progress catches up on the next event.
func (j *VendorEventJob) Process(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, vendorEventTimeout)
	defer cancel()

	if err := j.client.SendEvent(ctx, j.userID, j.event, j.metadata); err != nil {
		metrics.VendorEventErrors.WithLabelValues(j.event).Inc()
		slog.Warn(LogMsgVendorEventFailed,
			"user_id", j.userID,
			"event", j.event,
			"error", err)
		return err
	}

	metrics.VendorEventsSent.WithLabelValues(j.event).Inc()
	slog.Debug(LogMsgVendorEventSent, "user_id", j.userID, "event", j.event)
	return nil
}
