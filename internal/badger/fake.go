package badger

import (
	"context"
	"sync"

	"github.com/osse101/BadgerShop_Go/internal/domain"
)

// FakeClient is an in-memory Client for tests and offline development.
// Responses are configured per user; errors can be injected per call.
type FakeClient struct {
	mu sync.Mutex

	Users  map[string]*domain.BadgerUser
	Badges map[string][]domain.Badge

	// Err, when set, is returned by every call
	Err error

	// SentEvents records SendEvent calls in order
	SentEvents []SentEvent

	// Awarded records AwardBadge calls as userID:badgeID pairs
	Awarded []string

	// FetchCount counts GetUserBadges calls
	FetchCount int
}

// SentEvent is one recorded SendEvent call
type SentEvent struct {
	UserID   string
	Event    string
	Metadata map[string]string
}

// NewFakeClient creates an empty fake
func NewFakeClient() *FakeClient {
	return &FakeClient{
		Users:  make(map[string]*domain.BadgerUser),
		Badges: make(map[string][]domain.Badge),
	}
}

// SetBadges replaces the badge list returned for a user
func (f *FakeClient) SetBadges(userID string, badges []domain.Badge) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Badges[userID] = badges
}

// SetError makes every subsequent call fail with err (nil clears)
func (f *FakeClient) SetError(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Err = err
}

func (f *FakeClient) GetUser(_ context.Context, userID string) (*domain.BadgerUser, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.Err != nil {
		return nil, f.Err
	}
	if userID == "" {
		return nil, domain.ErrIdentityMissing
	}
	if user, ok := f.Users[userID]; ok {
		return user, nil
	}
	return &domain.BadgerUser{ID: userID}, nil
}

func (f *FakeClient) GetUserBadges(_ context.Context, userID, _ string) ([]domain.Badge, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.FetchCount++
	if f.Err != nil {
		return nil, f.Err
	}
	if userID == "" {
		return nil, domain.ErrIdentityMissing
	}

	badges := make([]domain.Badge, len(f.Badges[userID]))
	copy(badges, f.Badges[userID])
	return badges, nil
}

func (f *FakeClient) SendEvent(_ context.Context, userID, event string, metadata map[string]string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.Err != nil {
		return f.Err
	}
	if userID == "" {
		return domain.ErrIdentityMissing
	}

	f.SentEvents = append(f.SentEvents, SentEvent{UserID: userID, Event: event, Metadata: metadata})
	return nil
}

func (f *FakeClient) AwardBadge(_ context.Context, userID, badgeID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.Err != nil {
		return f.Err
	}
	if userID == "" {
		return domain.ErrIdentityMissing
	}

	f.Awarded = append(f.Awarded, userID+":"+badgeID)
	return nil
}

// FetchCalls returns how many times GetUserBadges has been called
func (f *FakeClient) FetchCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.FetchCount
}

// Events returns a copy of the recorded SendEvent calls
func (f *FakeClient) Events() []SentEvent {
	f.mu.Lock()
	defer f.mu.Unlock()

	events := make([]SentEvent, len(f.SentEvents))
	copy(events, f.SentEvents)
	return events
}
