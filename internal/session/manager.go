package session

import (
	"context"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/BadgerShop_Go/internal/domain"
	"github.com/osse101/BadgerShop_Go/internal/event"
	"github.com/osse101/BadgerShop_Go/internal/logger"
	"github.com/osse101/BadgerShop_Go/internal/metrics"
	"github.com/osse101/BadgerShop_Go/internal/notify"
	"github.com/osse101/BadgerShop_Go/internal/polling"
)

// Manager tracks one session per active user in an expiring LRU.
// Sessions are created on first touch and evicted after TTL of
// inactivity or when capacity is exceeded; eviction stops the poller.
type Manager struct {
	fetcher polling.BadgeFetcher
	bus     event.Bus

	// mu serializes session creation so two concurrent requests for the
	// same new user cannot start two pollers
	mu  sync.Mutex
	lru *expirable.LRU[string, *Session]

	// baseCtx parents every poller; cancelling it stops them all
	baseCtx context.Context
	cancel  context.CancelFunc
}

// NewManager creates a session manager. Badge fetches go through
// fetcher; newly unlocked badges are published on bus. A purchase
// recorded on the bus switches that user's session to fast polling.
func NewManager(fetcher polling.BadgeFetcher, bus event.Bus, ttl time.Duration, maxSessions int) *Manager {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	if maxSessions <= 0 {
		maxSessions = DefaultMaxSessions
	}

	ctx, cancel := context.WithCancel(context.Background())
	m := &Manager{
		fetcher: fetcher,
		bus:     bus,
		baseCtx: ctx,
		cancel:  cancel,
	}

	m.lru = expirable.NewLRU[string, *Session](maxSessions, m.onEvict, ttl)

	bus.Subscribe(event.OrderCompleted, m.handleOrderCompleted)

	return m
}

// Touch returns the session for userID, creating and starting it if
// absent. Touching an existing session resets its expiry.
func (m *Manager) Touch(ctx context.Context, userID string) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()

	if sess, ok := m.lru.Get(userID); ok {
		// Re-add to reset the TTL
		m.lru.Add(userID, sess)
		return sess
	}

	sess := m.create(ctx, userID)
	m.lru.Add(userID, sess)
	metrics.ActiveSessions.Inc()

	return sess
}

// Peek returns the session for userID without creating or refreshing it
func (m *Manager) Peek(userID string) (*Session, bool) {
	return m.lru.Peek(userID)
}

// Len returns the number of live sessions
func (m *Manager) Len() int {
	return m.lru.Len()
}

// TriggerFastPolling switches the user's session to the fast poll
// cadence. No-op when the user has no session.
func (m *Manager) TriggerFastPolling(userID string) bool {
	sess, ok := m.lru.Peek(userID)
	if !ok {
		return false
	}

	sess.Controller.TriggerFastPolling()
	metrics.FastPollingTriggers.Inc()
	return true
}

// Stop evicts every session and stops their pollers
func (m *Manager) Stop() {
	m.cancel()
	m.lru.Purge()
}

// create builds and starts a session. Caller holds m.mu.
func (m *Manager) create(ctx context.Context, userID string) *Session {
	controller := polling.NewController()
	queue := notify.NewQueue()
	poller := polling.NewPoller(userID, m.fetcher, controller)

	sess := &Session{
		UserID:     userID,
		Controller: controller,
		Poller:     poller,
		Queue:      queue,
		createdAt:  time.Now(),
	}

	poller.OnUpdate(func(badges []domain.Badge) {
		m.observe(userID, queue, badges)
	})
	poller.Start(m.baseCtx)

	logger.FromContext(ctx).Info(LogMsgSessionCreated, "user_id", userID, "sessions", m.lru.Len()+1)
	return sess
}

// observe feeds a badge snapshot into the queue and announces any newly
// completed badges on the bus
func (m *Manager) observe(userID string, queue *notify.Queue, badges []domain.Badge) {
	delta := queue.Observe(badges)
	if len(delta) == 0 {
		return
	}

	for _, badge := range delta {
		unlockedAt := time.Now()
		if badge.CompletedAt != nil {
			unlockedAt = *badge.CompletedAt
		}

		evt := event.NewBadgeUnlockedEvent(userID, badge.ID, badge.Name, badge.Description, unlockedAt)
		if err := m.bus.Publish(m.baseCtx, evt); err != nil {
			logger.FromContext(m.baseCtx).Warn(LogMsgBadgeEventPublishFailed,
				"user_id", userID,
				"badge_id", badge.ID,
				"error", err)
		}
	}
}

// handleOrderCompleted boosts the purchasing user's poll cadence
func (m *Manager) handleOrderCompleted(ctx context.Context, evt event.Event) error {
	payload, ok := evt.Payload.(event.OrderCompletedPayloadV1)
	if !ok {
		return nil
	}

	if m.TriggerFastPolling(payload.UserID) {
		logger.FromContext(ctx).Debug(LogMsgFastPollingBoost,
			"user_id", payload.UserID,
			"order_id", payload.OrderID)
	}
	return nil
}

// onEvict runs when a session ages out or is displaced. It is invoked
// under the LRU's lock, so it must not call back into m.lru.
func (m *Manager) onEvict(userID string, sess *Session) {
	sess.Stop()
	metrics.ActiveSessions.Dec()

	logger.FromContext(m.baseCtx).Info(LogMsgSessionEvicted, "user_id", userID, "session_age", sess.Age())
}
