package sse

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/osse101/BadgerShop_Go/internal/store"
)

// Handler returns an HTTP handler that streams badge notifications for
// the identity in the request cookie
func Handler(hub *Hub) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, err := store.UserData(r)
		if err != nil {
			http.Error(w, "user data not found in cookie", http.StatusUnauthorized)
			return
		}

		w.Header().Set("Content-Type", "text/event-stream")
		w.Header().Set("Cache-Control", "no-cache")
		w.Header().Set("Connection", "keep-alive")

		flusher, ok := w.(http.Flusher)
		if !ok {
			http.Error(w, "SSE not supported", http.StatusInternalServerError)
			return
		}

		client := hub.Register(user.UserID)
		slog.Info(LogMsgClientConnected,
			"client_id", client.ID,
			"user_id", user.UserID,
			"total_clients", hub.ClientCount())

		defer func() {
			hub.Unregister(client.ID)
			slog.Info(LogMsgClientDisconnected,
				"client_id", client.ID,
				"user_id", user.UserID,
				"total_clients", hub.ClientCount())
		}()

		// Initial handshake so the client knows the stream is live
		connectEvent := Event{
			ID:        client.ID,
			Type:      EventTypeConnected,
			Timestamp: time.Now().Unix(),
			Payload: map[string]interface{}{
				"client_id": client.ID,
			},
		}
		if msg, err := FormatSSEMessage(connectEvent); err == nil {
			if _, err := w.Write(msg); err != nil {
				return
			}
			flusher.Flush()
		}

		ticker := time.NewTicker(KeepaliveInterval)
		defer ticker.Stop()

		ctx := r.Context()
		for {
			select {
			case <-ctx.Done():
				return

			case event, ok := <-client.EventChannel:
				if !ok {
					// Hub is shutting down
					return
				}

				msg, err := FormatSSEMessage(event)
				if err != nil {
					slog.Error(LogMsgWriteError, "error", err)
					continue
				}

				if _, err := w.Write(msg); err != nil {
					slog.Warn(LogMsgWriteError, "error", err)
					return
				}
				flusher.Flush()

			case <-ticker.C:
				keepalive := Event{
					Type:      EventTypeKeepalive,
					Timestamp: time.Now().Unix(),
				}
				msg, _ := FormatSSEMessage(keepalive)
				if _, err := w.Write(msg); err != nil {
					return
				}
				flusher.Flush()
			}
		}
	}
}
