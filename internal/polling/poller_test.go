package polling

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/BadgerShop_Go/internal/badger"
	"github.com/osse101/BadgerShop_Go/internal/domain"
)

func someBadges() []domain.Badge {
	completed := time.Date(2024, 6, 1, 11, 0, 0, 0, time.UTC)
	return []domain.Badge{
		{ID: "b1", Name: "First Purchase", Status: domain.BadgeStatusComplete, CompletedAt: &completed},
		{ID: "b2", Name: "Big Spender", Status: domain.BadgeStatusIncomplete, Progress: 0.4},
	}
}

func TestPoller_ImmediateFetchOnStart(t *testing.T) {
	fake := badger.NewFakeClient()
	fake.SetBadges("user_a", someBadges())

	p := NewPoller("user_a", fake, NewController())
	p.Start(context.Background())
	defer p.Stop()

	require.Eventually(t, func() bool { return fake.FetchCalls() >= 1 },
		time.Second, 10*time.Millisecond)

	require.Eventually(t, func() bool { return len(p.Snapshot().Badges) == 2 },
		time.Second, 10*time.Millisecond)
}

func TestPoller_LoadingOnlyUntilFirstFetch(t *testing.T) {
	fake := badger.NewFakeClient()
	p := NewPoller("user_a", fake, NewController())

	assert.True(t, p.Snapshot().Loading)

	p.Start(context.Background())
	defer p.Stop()

	require.Eventually(t, func() bool { return !p.Snapshot().Loading },
		time.Second, 10*time.Millisecond)

	// A later failing fetch must not flip loading back on
	fake.SetError(errors.New("vendor down"))
	p.Refresh(context.Background())
	assert.False(t, p.Snapshot().Loading)
}

func TestPoller_KeepsStaleBadgesOnError(t *testing.T) {
	fake := badger.NewFakeClient()
	fake.SetBadges("user_a", someBadges())

	p := NewPoller("user_a", fake, NewController())
	p.Start(context.Background())
	defer p.Stop()

	require.Eventually(t, func() bool { return len(p.Snapshot().Badges) == 2 },
		time.Second, 10*time.Millisecond)

	fake.SetError(errors.New("vendor down"))
	p.Refresh(context.Background())

	require.Eventually(t, func() bool { return p.Snapshot().Error != "" },
		time.Second, 10*time.Millisecond)

	snap := p.Snapshot()
	assert.Len(t, snap.Badges, 2, "stale badges must survive a failed fetch")

	// Recovery clears the error
	fake.SetError(nil)
	p.Refresh(context.Background())

	require.Eventually(t, func() bool { return p.Snapshot().Error == "" },
		time.Second, 10*time.Millisecond)
}

func TestPoller_RecurringFetchAtFastCadence(t *testing.T) {
	fake := badger.NewFakeClient()

	clock := newFakeClock()
	controller := NewControllerWithClock(clock.Now)
	controller.TriggerFastPolling()

	p := NewPoller("user_a", fake, controller)
	p.now = clock.Now
	p.recheck = 10 * time.Millisecond

	p.Start(context.Background())
	defer p.Stop()

	require.Eventually(t, func() bool { return fake.FetchCalls() >= 1 },
		time.Second, 10*time.Millisecond)

	// Inside the interval nothing new happens
	clock.Advance(FastInterval - time.Second)
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, 1, fake.FetchCalls())

	// Crossing the interval triggers the next fetch
	clock.Advance(2 * time.Second)
	require.Eventually(t, func() bool { return fake.FetchCalls() >= 2 },
		time.Second, 10*time.Millisecond)
}

func TestPoller_SlowCadenceWithoutBoost(t *testing.T) {
	fake := badger.NewFakeClient()

	clock := newFakeClock()
	controller := NewControllerWithClock(clock.Now)

	p := NewPoller("user_a", fake, controller)
	p.now = clock.Now
	p.recheck = 10 * time.Millisecond

	p.Start(context.Background())
	defer p.Stop()

	require.Eventually(t, func() bool { return fake.FetchCalls() >= 1 },
		time.Second, 10*time.Millisecond)

	// Fast interval elapses, but without a boost the slow interval rules
	clock.Advance(FastInterval + time.Second)
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, 1, fake.FetchCalls())

	clock.Advance(SlowInterval)
	require.Eventually(t, func() bool { return fake.FetchCalls() >= 2 },
		time.Second, 10*time.Millisecond)
}

// blockingFetcher parks fetches until released
type blockingFetcher struct {
	started chan struct{}
	release chan struct{}
	mu      sync.Mutex
	calls   int
}

func newBlockingFetcher() *blockingFetcher {
	return &blockingFetcher{
		started: make(chan struct{}, 10),
		release: make(chan struct{}),
	}
}

func (f *blockingFetcher) GetUserBadges(context.Context, string, string) ([]domain.Badge, error) {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()

	f.started <- struct{}{}
	<-f.release
	return nil, nil
}

func (f *blockingFetcher) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func TestPoller_SingleFlight(t *testing.T) {
	fetcher := newBlockingFetcher()
	p := NewPoller("user_a", fetcher, NewController())

	go p.fetch(context.Background())
	<-fetcher.started

	// Concurrent refreshes while the first fetch is parked are dropped
	p.Refresh(context.Background())
	p.Refresh(context.Background())
	assert.Equal(t, 1, fetcher.Calls())

	close(fetcher.release)
}

func TestPoller_StopHaltsPolling(t *testing.T) {
	fake := badger.NewFakeClient()

	p := NewPoller("user_a", fake, NewController())
	p.recheck = 10 * time.Millisecond

	p.Start(context.Background())

	require.Eventually(t, func() bool { return fake.FetchCalls() >= 1 },
		time.Second, 10*time.Millisecond)

	p.Stop()
	calls := fake.FetchCalls()

	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, calls, fake.FetchCalls())

	// Stop twice is safe
	p.Stop()
}

func TestPoller_ContextCancelHaltsPolling(t *testing.T) {
	fake := badger.NewFakeClient()

	ctx, cancel := context.WithCancel(context.Background())

	p := NewPoller("user_a", fake, NewController())
	p.recheck = 10 * time.Millisecond
	p.Start(ctx)

	require.Eventually(t, func() bool { return fake.FetchCalls() >= 1 },
		time.Second, 10*time.Millisecond)

	cancel()
	time.Sleep(50 * time.Millisecond)

	calls := fake.FetchCalls()
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, calls, fake.FetchCalls())
}

func TestPoller_ObserverSeesEachSuccessfulFetch(t *testing.T) {
	fake := badger.NewFakeClient()
	fake.SetBadges("user_a", someBadges())

	p := NewPoller("user_a", fake, NewController())

	var mu sync.Mutex
	var seen [][]domain.Badge
	p.OnUpdate(func(badges []domain.Badge) {
		mu.Lock()
		seen = append(seen, badges)
		mu.Unlock()
	})

	p.Start(context.Background())
	defer p.Stop()

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(seen) == 1
	}, time.Second, 10*time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	assert.Len(t, seen[0], 2)
}
