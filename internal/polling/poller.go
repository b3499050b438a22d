package polling

import (
	"context"
	"sync"
	"time"

	"github.com/osse101/BadgerShop_Go/internal/domain"
	"github.com/osse101/BadgerShop_Go/internal/logger"
	"github.com/osse101/BadgerShop_Go/internal/metrics"
)

// BadgeFetcher is the slice of the Badger client the poller needs
type BadgeFetcher interface {
	GetUserBadges(ctx context.Context, userID, status string) ([]domain.Badge, error)
}

// StatusAll requests badges in every completion state
const StatusAll = "all"

// Snapshot is the poller's externally visible state
type Snapshot struct {
	Badges  []domain.Badge
	Loading bool
	Error   string
}

// Observer is notified with the full badge list after each successful fetch
type Observer func(badges []domain.Badge)

// Poller repeatedly fetches the badge list for one user. The interval is
// chosen by the Controller on every wakeup: the loop ticks at the fast
// interval and fetches only when the interval selected for the current
// boost state has elapsed, so a purchase shortens the cadence within one
// fast tick instead of waiting out a slow timer.
//
// Fetches are single-flight: a tick that fires while a fetch is still
// outstanding is skipped. Errors never clear previously fetched badges -
// stale-but-present beats empty.
type Poller struct {
	userID     string
	fetcher    BadgeFetcher
	controller *Controller
	now        func() time.Time

	// recheck is the loop wakeup period; only shortened in tests
	recheck time.Duration

	mu          sync.Mutex
	badges      []domain.Badge
	errMsg      string
	initialLoad bool
	inFlight    bool
	lastFetch   time.Time
	observers   []Observer

	quit chan struct{}
	wg   sync.WaitGroup
	once sync.Once
}

// NewPoller creates a poller for one user. Start must be called before
// any badges are fetched.
func NewPoller(userID string, fetcher BadgeFetcher, controller *Controller) *Poller {
	return &Poller{
		userID:      userID,
		fetcher:     fetcher,
		controller:  controller,
		now:         time.Now,
		recheck:     FastInterval,
		initialLoad: true,
		quit:        make(chan struct{}),
	}
}

// OnUpdate registers an observer. Observers must be registered before
// Start; they are invoked from the poll goroutine after each successful
// fetch, in registration order.
func (p *Poller) OnUpdate(fn Observer) {
	p.mu.Lock()
	p.observers = append(p.observers, fn)
	p.mu.Unlock()
}

// Start performs an immediate fetch and begins the poll loop. The loop
// stops when ctx is cancelled or Stop is called.
func (p *Poller) Start(ctx context.Context) {
	p.wg.Add(1)
	go p.run(ctx)
}

// Stop halts the poll loop and waits for it to exit. Safe to call more
// than once.
func (p *Poller) Stop() {
	p.once.Do(func() {
		close(p.quit)
	})
	p.wg.Wait()
}

// Snapshot returns the latest known badge list plus loading/error state
func (p *Poller) Snapshot() Snapshot {
	p.mu.Lock()
	defer p.mu.Unlock()

	badges := make([]domain.Badge, len(p.badges))
	copy(badges, p.badges)

	return Snapshot{
		Badges:  badges,
		Loading: p.initialLoad,
		Error:   p.errMsg,
	}
}

// Refresh forces a fetch outside the regular cadence. It is a no-op when
// a fetch is already in flight.
func (p *Poller) Refresh(ctx context.Context) {
	p.fetch(ctx)
}

func (p *Poller) run(ctx context.Context) {
	defer p.wg.Done()

	logger.FromContext(ctx).Debug(LogMsgPollerStarted, "user_id", p.userID)
	defer logger.FromContext(ctx).Debug(LogMsgPollerStopped, "user_id", p.userID)

	p.fetch(ctx)

	ticker := time.NewTicker(p.recheck)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-p.quit:
			return
		case <-ticker.C:
			if p.due() {
				p.fetch(ctx)
			}
		}
	}
}

// due reports whether the interval for the current boost state has elapsed
// since the last fetch attempt
func (p *Poller) due() bool {
	p.mu.Lock()
	last := p.lastFetch
	p.mu.Unlock()

	return p.now().Sub(last) >= p.controller.Interval()
}

// fetch performs one badge fetch and updates poller state. Skipped when a
// previous fetch is still outstanding.
func (p *Poller) fetch(ctx context.Context) {
	p.mu.Lock()
	if p.inFlight {
		p.mu.Unlock()
		return
	}
	p.inFlight = true
	p.lastFetch = p.now()
	p.mu.Unlock()

	metrics.BadgeFetches.Inc()
	badges, err := p.fetcher.GetUserBadges(ctx, p.userID, StatusAll)

	p.mu.Lock()
	p.inFlight = false
	p.initialLoad = false
	if err != nil {
		// Keep the previous badge list; the next scheduled poll is the retry
		p.errMsg = err.Error()
		p.mu.Unlock()

		metrics.BadgeFetchErrors.Inc()
		logger.FromContext(ctx).Warn(LogMsgBadgeFetchFailed, "user_id", p.userID, "error", err)
		return
	}

	p.errMsg = ""
	p.badges = badges
	observers := make([]Observer, len(p.observers))
	copy(observers, p.observers)
	p.mu.Unlock()

	for _, fn := range observers {
		fn(badges)
	}
}
