// Package notify serializes the display of newly unlocked badges.
// When several badges complete at once the shopper sees one modal at a
// time; dismissal advances to the next.
package notify

import (
	"sync"
	"time"

	"github.com/osse101/BadgerShop_Go/internal/domain"
	"github.com/osse101/BadgerShop_Go/internal/metrics"
)

// Queue holds badge completions awaiting display. A watermark timestamp
// separates "already seen" completions from new ones: only badges whose
// completion time is strictly after the watermark are enqueued. The
// watermark starts at construction time, so completions that predate the
// session are never shown.
type Queue struct {
	mu        sync.Mutex
	watermark time.Time
	queue     []domain.Badge
	now       func() time.Time
}

// NewQueue creates a queue with the watermark set to now
func NewQueue() *Queue {
	return NewQueueWithClock(time.Now)
}

// NewQueueWithClock creates a queue with an injected clock for tests
func NewQueueWithClock(now func() time.Time) *Queue {
	return &Queue{
		watermark: now(),
		now:       now,
	}
}

// Observe inspects a badge snapshot from the poller and enqueues badges
// that completed since the watermark, preserving the order the poller
// returned them in. The watermark advances to now - not to the max
// completion timestamp - and only when the delta is non-empty; advancing
// to now also catches completions that landed between the old watermark
// and the moment of detection, sidestepping clock skew in the vendor's
// completion timestamps.
//
// The enqueued delta is returned so callers can push it to subscribers.
func (q *Queue) Observe(badges []domain.Badge) []domain.Badge {
	q.mu.Lock()
	defer q.mu.Unlock()

	var delta []domain.Badge
	for _, badge := range badges {
		if badge.CompletedAfter(q.watermark) {
			delta = append(delta, badge)
		}
	}

	if len(delta) == 0 {
		return nil
	}

	q.queue = append(q.queue, delta...)
	q.watermark = q.now()
	metrics.BadgesEnqueued.Add(float64(len(delta)))

	return delta
}

// Current returns the badge at the head of the queue, the one being
// displayed, or false when the queue is empty.
func (q *Queue) Current() (domain.Badge, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.queue) == 0 {
		return domain.Badge{}, false
	}
	return q.queue[0], true
}

// Dismiss removes exactly the head of the queue. No-op when empty.
func (q *Queue) Dismiss() {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.queue) == 0 {
		return
	}
	q.queue = q.queue[1:]
}

// Len returns the number of queued badges, including the displayed head
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.queue)
}
