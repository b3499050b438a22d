package sse

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func waitForEvent(t *testing.T, ch chan Event) Event {
	t.Helper()

	select {
	case e := <-ch:
		return e
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for event")
		return Event{}
	}
}

func TestHub_DeliversToMatchingUser(t *testing.T) {
	hub := NewHub()
	hub.Start()
	defer hub.Stop()

	alice := hub.Register("user_alice")
	bob := hub.Register("user_bob")

	// Registration goes through a channel; wait for the hub to pick it up
	require.Eventually(t, func() bool { return hub.ClientCount() == 2 },
		time.Second, 5*time.Millisecond)

	hub.Send("user_alice", EventTypeBadgeUnlocked, map[string]string{"badge_id": "b1"})

	got := waitForEvent(t, alice.EventChannel)
	assert.Equal(t, EventTypeBadgeUnlocked, got.Type)

	select {
	case e := <-bob.EventChannel:
		t.Fatalf("bob received event addressed to alice: %+v", e)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestHub_MultipleTabsSameUser(t *testing.T) {
	hub := NewHub()
	hub.Start()
	defer hub.Stop()

	tab1 := hub.Register("user_alice")
	tab2 := hub.Register("user_alice")

	require.Eventually(t, func() bool { return hub.ClientCount() == 2 },
		time.Second, 5*time.Millisecond)

	hub.Send("user_alice", EventTypeBadgeUnlocked, nil)

	waitForEvent(t, tab1.EventChannel)
	waitForEvent(t, tab2.EventChannel)
}

func TestHub_Unregister(t *testing.T) {
	hub := NewHub()
	hub.Start()
	defer hub.Stop()

	client := hub.Register("user_alice")
	require.Eventually(t, func() bool { return hub.ClientCount() == 1 },
		time.Second, 5*time.Millisecond)

	hub.Unregister(client.ID)
	require.Eventually(t, func() bool { return hub.ClientCount() == 0 },
		time.Second, 5*time.Millisecond)

	// Channel is closed on unregister
	_, ok := <-client.EventChannel
	assert.False(t, ok)
}

func TestFormatSSEMessage(t *testing.T) {
	event := Event{
		ID:        "evt-1",
		Type:      EventTypeBadgeUnlocked,
		Timestamp: 1700000000,
		Payload:   map[string]string{"badge_id": "b1"},
	}

	msg, err := FormatSSEMessage(event)
	require.NoError(t, err)

	assert.Contains(t, string(msg), "id: evt-1\n")
	assert.Contains(t, string(msg), "event: badge.unlocked\n")
	assert.Contains(t, string(msg), "data: {")
	assert.Contains(t, string(msg), "\n\n")
}
