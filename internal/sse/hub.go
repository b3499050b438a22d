// Package sse pushes badge notifications to connected storefront tabs
// over Server-Sent Events. Delivery is per-user: a tab only receives
// events addressed to the identity in its cookie.
package sse

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Event represents an event sent over SSE
type Event struct {
	ID        string      `json:"id"`
	Type      string      `json:"type"`
	Timestamp int64       `json:"timestamp"`
	Payload   interface{} `json:"payload"`

	// userID addresses the event; empty means every client
	userID string
}

// Client represents a connected SSE client
type Client struct {
	ID           string
	UserID       string
	EventChannel chan Event
}

// Hub manages SSE client connections and event delivery
type Hub struct {
	clients    map[string]*Client
	broadcast  chan Event
	register   chan *Client
	unregister chan string
	mu         sync.RWMutex
	shutdown   chan struct{}
	wg         sync.WaitGroup
}

// NewHub creates a new SSE Hub
func NewHub() *Hub {
	return &Hub{
		clients:    make(map[string]*Client),
		broadcast:  make(chan Event, BroadcastBufferSize),
		register:   make(chan *Client, ClientChannelBuffer),
		unregister: make(chan string, ClientChannelBuffer),
		shutdown:   make(chan struct{}),
	}
}

// Start starts the hub's delivery loop
func (h *Hub) Start() {
	h.wg.Add(1)
	go h.run()
}

// Stop gracefully shuts down the hub
func (h *Hub) Stop() {
	close(h.shutdown)
	h.wg.Wait()

	h.mu.Lock()
	for _, client := range h.clients {
		close(client.EventChannel)
	}
	h.clients = make(map[string]*Client)
	h.mu.Unlock()
}

// run is the main delivery loop
func (h *Hub) run() {
	defer h.wg.Done()

	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client.ID] = client
			h.mu.Unlock()

		case clientID := <-h.unregister:
			h.mu.Lock()
			if client, ok := h.clients[clientID]; ok {
				close(client.EventChannel)
				delete(h.clients, clientID)
			}
			h.mu.Unlock()

		case event := <-h.broadcast:
			h.mu.RLock()
			for _, client := range h.clients {
				if event.userID != "" && client.UserID != event.userID {
					continue
				}

				// Non-blocking send; a full client buffer drops the event
				select {
				case client.EventChannel <- event:
				default:
				}
			}
			h.mu.RUnlock()

		case <-h.shutdown:
			return
		}
	}
}

// Register adds a client for the given user to the hub
func (h *Hub) Register(userID string) *Client {
	client := &Client{
		ID:           uuid.New().String(),
		UserID:       userID,
		EventChannel: make(chan Event, ClientEventBuffer),
	}

	h.register <- client
	return client
}

// Unregister removes a client from the hub
func (h *Hub) Unregister(clientID string) {
	select {
	case h.unregister <- clientID:
	case <-h.shutdown:
	}
}

// Send delivers an event to every connection belonging to userID
func (h *Hub) Send(userID, eventType string, payload interface{}) {
	event := Event{
		ID:        uuid.New().String(),
		Type:      eventType,
		Timestamp: time.Now().Unix(),
		Payload:   payload,
		userID:    userID,
	}

	select {
	case h.broadcast <- event:
	default:
		// Buffer full, drop event
	}
}

// ClientCount returns the number of connected clients
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// FormatSSEMessage formats an SSE event for transmission
func FormatSSEMessage(event Event) ([]byte, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, err
	}

	// SSE format: "id: <id>\nevent: <type>\ndata: <json>\n\n"
	msg := "id: " + event.ID + "\n"
	msg += "event: " + event.Type + "\n"
	msg += "data: " + string(data) + "\n\n"

	return []byte(msg), nil
}
