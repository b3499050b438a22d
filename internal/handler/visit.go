package handler

import (
	"net/http"

	"github.com/osse101/BadgerShop_Go/internal/domain"
	"github.com/osse101/BadgerShop_Go/internal/event"
	"github.com/osse101/BadgerShop_Go/internal/logger"
	"github.com/osse101/BadgerShop_Go/internal/store"
)

// VisitResponse acknowledges a recorded visit
type VisitResponse struct {
	Success bool `json:"success"`
}

// HandleVisit records a page-load visit for the cookie identity. The
// vendor event goes out in the background; the page never waits on it.
// @Summary Record visit
// @Description Sends a visit event for the identity in the cookie
// @Tags demo
// @Produce json
// @Success 200 {object} VisitResponse
// @Failure 401 {object} ErrorResponse
// @Router /demo/visit [post]
func (h *Handler) HandleVisit(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	user, err := store.UserData(r)
	if err != nil {
		status, msg := mapServiceErrorToUserMessage(err)
		respondError(w, status, msg)
		return
	}

	// A visit also keeps the badge session alive
	h.sessions.Touch(r.Context(), user.UserID)

	h.dispatcher.Dispatch(user.UserID, domain.VendorEventVisit, nil)

	if err := h.bus.Publish(r.Context(), event.NewVisitRecordedEvent(user.UserID)); err != nil {
		log.Warn("Failed to publish visit event", "user_id", user.UserID, "error", err)
	}

	log.Debug(LogMsgVisitRecorded, "user_id", user.UserID)
	respondJSON(w, http.StatusOK, VisitResponse{Success: true})
}
