package session

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/BadgerShop_Go/internal/badger"
	"github.com/osse101/BadgerShop_Go/internal/domain"
	"github.com/osse101/BadgerShop_Go/internal/event"
)

func completedBadge(id string, at time.Time) domain.Badge {
	return domain.Badge{
		ID:          id,
		Name:        "Badge " + id,
		Description: "earned",
		Status:      domain.BadgeStatusComplete,
		CompletedAt: &at,
	}
}

func TestManager_TouchCreatesOnce(t *testing.T) {
	fake := badger.NewFakeClient()
	m := NewManager(fake, event.NewMemoryBus(), time.Minute, 8)
	defer m.Stop()

	first := m.Touch(context.Background(), "user_a")
	second := m.Touch(context.Background(), "user_a")

	assert.Same(t, first, second)
	assert.Equal(t, 1, m.Len())
}

func TestSession_AgeGrowsFromCreation(t *testing.T) {
	sess := &Session{createdAt: time.Now().Add(-time.Minute)}

	assert.GreaterOrEqual(t, sess.Age(), time.Minute)
	assert.Less(t, sess.Age(), 2*time.Minute)
}

func TestManager_SessionsAreIsolated(t *testing.T) {
	fake := badger.NewFakeClient()
	m := NewManager(fake, event.NewMemoryBus(), time.Minute, 8)
	defer m.Stop()

	a := m.Touch(context.Background(), "user_a")
	b := m.Touch(context.Background(), "user_b")

	a.Controller.TriggerFastPolling()

	assert.True(t, a.Controller.IsFastPolling())
	assert.False(t, b.Controller.IsFastPolling())
}

func TestManager_OrderCompletedBoostsPolling(t *testing.T) {
	fake := badger.NewFakeClient()
	bus := event.NewMemoryBus()
	m := NewManager(fake, bus, time.Minute, 8)
	defer m.Stop()

	sess := m.Touch(context.Background(), "user_a")
	require.False(t, sess.Controller.IsFastPolling())

	err := bus.Publish(context.Background(), event.NewOrderCompletedEvent("ORD-123456", "user_a", 42.0, 1))
	require.NoError(t, err)

	assert.True(t, sess.Controller.IsFastPolling())
}

func TestManager_OrderCompletedUnknownUser(t *testing.T) {
	fake := badger.NewFakeClient()
	bus := event.NewMemoryBus()
	m := NewManager(fake, bus, time.Minute, 8)
	defer m.Stop()

	// No session for this user; must not create one
	err := bus.Publish(context.Background(), event.NewOrderCompletedEvent("ORD-123456", "user_ghost", 42.0, 1))
	require.NoError(t, err)
	assert.Equal(t, 0, m.Len())
}

func TestManager_NewCompletionReachesQueueAndBus(t *testing.T) {
	fake := badger.NewFakeClient()
	bus := event.NewMemoryBus()
	m := NewManager(fake, bus, time.Minute, 8)
	defer m.Stop()

	var mu sync.Mutex
	var unlocked []event.BadgeUnlockedPayloadV1
	bus.Subscribe(event.BadgeUnlocked, func(_ context.Context, e event.Event) error {
		payload, ok := e.Payload.(event.BadgeUnlockedPayloadV1)
		if ok {
			mu.Lock()
			unlocked = append(unlocked, payload)
			mu.Unlock()
		}
		return nil
	})

	sess := m.Touch(context.Background(), "user_a")

	// A badge completes after the session started. Refresh retries in
	// case the startup fetch is still in flight.
	fake.SetBadges("user_a", []domain.Badge{completedBadge("b1", time.Now().Add(time.Second))})
	require.Eventually(t, func() bool {
		sess.Refresh(context.Background())
		_, ok := sess.Queue.Current()
		return ok
	}, time.Second, 10*time.Millisecond)

	current, ok := sess.Queue.Current()
	require.True(t, ok)
	assert.Equal(t, "b1", current.ID)

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(unlocked) == 1
	}, time.Second, 10*time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, "user_a", unlocked[0].UserID)
	assert.Equal(t, "b1", unlocked[0].BadgeID)
}

func TestManager_PreexistingCompletionsNotQueued(t *testing.T) {
	fake := badger.NewFakeClient()
	// Completed long before the session starts
	fake.SetBadges("user_a", []domain.Badge{completedBadge("old", time.Now().Add(-time.Hour))})

	m := NewManager(fake, event.NewMemoryBus(), time.Minute, 8)
	defer m.Stop()

	sess := m.Touch(context.Background(), "user_a")

	// Wait for at least one completed fetch
	require.Eventually(t, func() bool { return fake.FetchCalls() > 0 },
		time.Second, 10*time.Millisecond)

	_, ok := sess.Queue.Current()
	assert.False(t, ok)
}

func TestManager_CapacityEviction(t *testing.T) {
	fake := badger.NewFakeClient()
	m := NewManager(fake, event.NewMemoryBus(), time.Minute, 1)
	defer m.Stop()

	m.Touch(context.Background(), "user_a")
	m.Touch(context.Background(), "user_b")

	assert.Equal(t, 1, m.Len())
	_, ok := m.Peek("user_a")
	assert.False(t, ok)
	_, ok = m.Peek("user_b")
	assert.True(t, ok)
}

func TestManager_TriggerFastPollingWithoutSession(t *testing.T) {
	fake := badger.NewFakeClient()
	m := NewManager(fake, event.NewMemoryBus(), time.Minute, 8)
	defer m.Stop()

	assert.False(t, m.TriggerFastPolling("user_missing"))
}
