package handler

import (
	"net/http"

	"github.com/osse101/BadgerShop_Go/internal/domain"
	"github.com/osse101/BadgerShop_Go/internal/logger"
	"github.com/osse101/BadgerShop_Go/internal/store"
)

// NotificationResponse is the badge currently on display, if any
type NotificationResponse struct {
	Badge   *domain.Badge `json:"badge"`
	Pending int           `json:"pending"`
}

// HandleCurrentNotification returns the badge notification at the head
// of the queue. Badge is null when there is nothing to show.
// @Summary Current notification
// @Description Returns the badge notification being displayed
// @Tags notifications
// @Produce json
// @Success 200 {object} NotificationResponse
// @Failure 401 {object} ErrorResponse
// @Router /notifications/current [get]
func (h *Handler) HandleCurrentNotification(w http.ResponseWriter, r *http.Request) {
	user, err := store.UserData(r)
	if err != nil {
		status, msg := mapServiceErrorToUserMessage(err)
		respondError(w, status, msg)
		return
	}

	sess := h.sessions.Touch(r.Context(), user.UserID)

	resp := NotificationResponse{Pending: sess.Queue.Len()}
	if badge, ok := sess.Queue.Current(); ok {
		resp.Badge = &badge
		logger.FromContext(r.Context()).Debug(LogMsgNotificationShown,
			"user_id", user.UserID,
			"badge_id", badge.ID,
			"pending", resp.Pending)
	}

	respondJSON(w, http.StatusOK, resp)
}

// HandleDismissNotification dismisses the displayed notification and
// returns the next one, if any. Dismissing an empty queue is a no-op.
// @Summary Dismiss notification
// @Description Removes the displayed notification and advances the queue
// @Tags notifications
// @Produce json
// @Success 200 {object} NotificationResponse
// @Failure 401 {object} ErrorResponse
// @Router /notifications/dismiss [post]
func (h *Handler) HandleDismissNotification(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	user, err := store.UserData(r)
	if err != nil {
		status, msg := mapServiceErrorToUserMessage(err)
		respondError(w, status, msg)
		return
	}

	sess := h.sessions.Touch(r.Context(), user.UserID)
	sess.Queue.Dismiss()

	log.Debug(LogMsgNotificationCleared, "user_id", user.UserID, "pending", sess.Queue.Len())

	resp := NotificationResponse{Pending: sess.Queue.Len()}
	if badge, ok := sess.Queue.Current(); ok {
		resp.Badge = &badge
	}

	respondJSON(w, http.StatusOK, resp)
}
