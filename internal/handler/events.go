package handler

import (
	"net/http"

	"github.com/osse101/BadgerShop_Go/internal/logger"
)

// SendEventRequest is a raw vendor event submission
type SendEventRequest struct {
	UserID   string            `json:"userId" validate:"required"`
	Event    string            `json:"event" validate:"required"`
	Metadata map[string]string `json:"metadata"`
}

// GrantBadgeRequest awards a badge directly
type GrantBadgeRequest struct {
	UserID  string `json:"userId" validate:"required"`
	BadgeID string `json:"badgeId" validate:"required"`
}

// HandleSendEvent proxies an arbitrary gamification event to the vendor.
// Unlike the storefront's own events this waits for delivery, so callers
// get a real success or failure.
// @Summary Send vendor event
// @Description Forwards a gamification event to the Badger service
// @Tags events
// @Accept json
// @Produce json
// @Param request body SendEventRequest true "Event to send"
// @Success 201 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Router /event [post]
func (h *Handler) HandleSendEvent(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var req SendEventRequest
	if err := decodeJSON(r, &req); err != nil {
		log.Warn(LogMsgInvalidRequestBody, "error", err)
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequestError)
		return
	}
	if req.UserID == "" || req.Event == "" {
		respondError(w, http.StatusBadRequest, "userId and event are required")
		return
	}

	if err := h.badger.SendEvent(r.Context(), req.UserID, req.Event, req.Metadata); err != nil {
		log.Error(LogMsgEventProxyFailed, "user_id", req.UserID, "event", req.Event, "error", err)
		status, msg := mapServiceErrorToUserMessage(err)
		if status < http.StatusInternalServerError {
			respondError(w, status, msg)
			return
		}
		respondError(w, http.StatusInternalServerError, ErrMsgEventDeliveryFailedErr)
		return
	}

	respondJSON(w, http.StatusCreated, SuccessResponse{Message: "Event sent"})
}

// HandleGrantBadge awards a badge to a user, bypassing its conditions
// @Summary Grant badge
// @Description Awards the badge directly via the Badger service
// @Tags events
// @Accept json
// @Produce json
// @Param request body GrantBadgeRequest true "Badge to grant"
// @Success 201 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Router /badge/grant [post]
func (h *Handler) HandleGrantBadge(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var req GrantBadgeRequest
	if err := decodeJSON(r, &req); err != nil {
		log.Warn(LogMsgInvalidRequestBody, "error", err)
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequestError)
		return
	}
	if req.UserID == "" || req.BadgeID == "" {
		respondError(w, http.StatusBadRequest, "userId and badgeId are required")
		return
	}

	if err := h.badger.AwardBadge(r.Context(), req.UserID, req.BadgeID); err != nil {
		log.Error(LogMsgBadgeGrantFailed, "user_id", req.UserID, "badge_id", req.BadgeID, "error", err)
		status, msg := mapServiceErrorToUserMessage(err)
		if status < http.StatusInternalServerError {
			respondError(w, status, msg)
			return
		}
		respondError(w, http.StatusInternalServerError, ErrMsgBadgeGrantFailedError)
		return
	}

	// A granted badge should show up promptly
	h.sessions.TriggerFastPolling(req.UserID)

	respondJSON(w, http.StatusCreated, SuccessResponse{Message: "Badge granted"})
}
