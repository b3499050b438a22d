package event

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// Type represents the type of an event
type Type string

// Metadata defines the type for event metadata
type Metadata map[string]interface{}

// Event represents a generic event in the system
type Event struct {
	Version  string      `json:"version"` // Event schema version (e.g., "1.0")
	Type     Type        `json:"type"`
	Payload  interface{} `json:"payload"`
	Metadata Metadata    `json:"metadata"`
}

// GetMetadataValue extracts a value from the event metadata safely
func (e Event) GetMetadataValue(key string) interface{} {
	if e.Metadata == nil {
		return nil
	}
	return e.Metadata[key]
}

// Common event types
const (
	// OrderCompleted fires after a checkout is recorded
	OrderCompleted Type = "order.completed"

	// VisitRecorded fires when a page-load visit event is accepted
	VisitRecorded Type = "visit.recorded"

	// BadgeUnlocked fires when the notification queue detects a newly
	// completed badge
	BadgeUnlocked Type = "badge.unlocked"
)

// Typed event payloads for type safety

// OrderCompletedPayloadV1 is the typed payload for order completion events
type OrderCompletedPayloadV1 struct {
	OrderID   string  `json:"order_id"`
	UserID    string  `json:"user_id"`
	Total     float64 `json:"total"`
	ItemCount int     `json:"item_count"`
	Timestamp int64   `json:"timestamp"`
}

// VisitRecordedPayloadV1 is the typed payload for visit events
type VisitRecordedPayloadV1 struct {
	UserID    string `json:"user_id"`
	Timestamp int64  `json:"timestamp"`
}

// BadgeUnlockedPayloadV1 is the typed payload for badge unlock events
type BadgeUnlockedPayloadV1 struct {
	UserID      string `json:"user_id"`
	BadgeID     string `json:"badge_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	UnlockedAt  int64  `json:"unlocked_at"`
}

// Type-safe event constructors

// NewOrderCompletedEvent creates a new order completed event
func NewOrderCompletedEvent(orderID, userID string, total float64, itemCount int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    OrderCompleted,
		Payload: OrderCompletedPayloadV1{
			OrderID:   orderID,
			UserID:    userID,
			Total:     total,
			ItemCount: itemCount,
			Timestamp: time.Now().Unix(),
		},
		Metadata: nil,
	}
}

// NewVisitRecordedEvent creates a new visit recorded event
func NewVisitRecordedEvent(userID string) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    VisitRecorded,
		Payload: VisitRecordedPayloadV1{
			UserID:    userID,
			Timestamp: time.Now().Unix(),
		},
		Metadata: nil,
	}
}

// NewBadgeUnlockedEvent creates a new badge unlocked event
func NewBadgeUnlockedEvent(userID, badgeID, name, description string, unlockedAt time.Time) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    BadgeUnlocked,
		Payload: BadgeUnlockedPayloadV1{
			UserID:      userID,
			BadgeID:     badgeID,
			Name:        name,
			Description: description,
			UnlockedAt:  unlockedAt.Unix(),
		},
		Metadata: nil,
	}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish publishes an event to all subscribers
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers, ok := b.handlers[event.Type]
	b.mu.RUnlock()

	if !ok {
		return nil
	}

	// Handlers execute synchronously on the publishing goroutine; anything
	// slow belongs on the worker pool, not in a handler.
	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}

	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
