package event

import (
	"context"
	"errors"
	"testing"
)

func TestMemoryBus_PublishSubscribe(t *testing.T) {
	bus := NewMemoryBus()
	eventType := Type("test_event")
	handled := false

	bus.Subscribe(eventType, func(ctx context.Context, event Event) error {
		if event.Type != eventType {
			t.Errorf("Expected event type %s, got %s", eventType, event.Type)
		}
		if event.Payload.(string) != "payload" {
			t.Errorf("Expected payload 'payload', got %v", event.Payload)
		}
		handled = true
		return nil
	})

	err := bus.Publish(context.Background(), Event{
		Version: "1.0",
		Type:    eventType,
		Payload: "payload",
	})

	if err != nil {
		t.Errorf("Publish returned error: %v", err)
	}

	if !handled {
		t.Error("Handler was not called")
	}
}

func TestMemoryBus_PublishMultipleHandlers(t *testing.T) {
	bus := NewMemoryBus()
	eventType := Type("test_event")
	count := 0

	handler := func(ctx context.Context, event Event) error {
		count++
		return nil
	}

	bus.Subscribe(eventType, handler)
	bus.Subscribe(eventType, handler)

	if err := bus.Publish(context.Background(), Event{Type: eventType}); err != nil {
		t.Errorf("Publish returned error: %v", err)
	}

	if count != 2 {
		t.Errorf("Expected 2 handler invocations, got %d", count)
	}
}

func TestMemoryBus_PublishNoSubscribers(t *testing.T) {
	bus := NewMemoryBus()

	if err := bus.Publish(context.Background(), Event{Type: "nobody_cares"}); err != nil {
		t.Errorf("Publish without subscribers should not error, got %v", err)
	}
}

func TestMemoryBus_HandlerErrorsAggregated(t *testing.T) {
	bus := NewMemoryBus()
	eventType := Type("failing_event")

	bus.Subscribe(eventType, func(ctx context.Context, event Event) error {
		return errors.New("boom")
	})
	bus.Subscribe(eventType, func(ctx context.Context, event Event) error {
		return nil
	})

	err := bus.Publish(context.Background(), Event{Type: eventType})
	if err == nil {
		t.Error("Expected aggregated error from failing handler")
	}
}

func TestNewOrderCompletedEvent(t *testing.T) {
	evt := NewOrderCompletedEvent("ORD-123456", "user_abc", 42.5, 3)

	if evt.Type != OrderCompleted {
		t.Errorf("Expected type %s, got %s", OrderCompleted, evt.Type)
	}
	if evt.Version != EventSchemaVersion {
		t.Errorf("Expected version %s, got %s", EventSchemaVersion, evt.Version)
	}

	payload, ok := evt.Payload.(OrderCompletedPayloadV1)
	if !ok {
		t.Fatalf("Expected OrderCompletedPayloadV1, got %T", evt.Payload)
	}
	if payload.OrderID != "ORD-123456" || payload.UserID != "user_abc" {
		t.Errorf("Unexpected payload: %+v", payload)
	}
	if payload.ItemCount != 3 {
		t.Errorf("Expected item count 3, got %d", payload.ItemCount)
	}
}
