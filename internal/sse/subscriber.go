package sse

import (
	"context"
	"log/slog"

	"github.com/osse101/BadgerShop_Go/internal/event"
)

// Subscriber bridges the internal event bus to the SSE hub
type Subscriber struct {
	hub *Hub
	bus event.Bus
}

// NewSubscriber creates a new SSE subscriber
func NewSubscriber(hub *Hub, bus event.Bus) *Subscriber {
	return &Subscriber{
		hub: hub,
		bus: bus,
	}
}

// Subscribe registers handlers for all relevant event types
func (s *Subscriber) Subscribe() {
	s.bus.Subscribe(event.BadgeUnlocked, s.handleBadgeUnlocked)
}

// handleBadgeUnlocked forwards badge unlock events to the unlocking
// user's connected tabs
func (s *Subscriber) handleBadgeUnlocked(_ context.Context, evt event.Event) error {
	payload, ok := evt.Payload.(event.BadgeUnlockedPayloadV1)
	if !ok {
		slog.Warn("Invalid badge unlocked event payload type")
		return nil
	}

	s.hub.Send(payload.UserID, EventTypeBadgeUnlocked, payload)

	slog.Debug(LogMsgEventDelivered,
		"event_type", EventTypeBadgeUnlocked,
		"user_id", payload.UserID,
		"badge_id", payload.BadgeID)

	return nil
}
