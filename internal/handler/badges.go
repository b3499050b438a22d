package handler

import (
	"net/http"
	"strings"

	"github.com/osse101/BadgerShop_Go/internal/domain"
	"github.com/osse101/BadgerShop_Go/internal/store"
)

// BadgesResponse is the poller's view of the user's badges plus the
// current polling state
type BadgesResponse struct {
	Badges               []domain.Badge `json:"badges"`
	Loading              bool           `json:"loading"`
	Error                string         `json:"error,omitempty"`
	IsFastPolling        bool           `json:"isFastPolling"`
	FastPollingRemaining int            `json:"fastPollingRemaining"`
}

// BadgesQuery is the optional filter on the badge list
type BadgesQuery struct {
	Status string `validate:"badgestatus"`
}

// HandleGetBadges returns the cached badge list for the cookie identity.
// The response comes from the session's poller, not a fresh vendor call;
// Loading is true only until the first fetch completes.
// @Summary Get badges
// @Description Returns the badge list the session poller last fetched
// @Tags badges
// @Produce json
// @Param status query string false "Filter by status (all, complete, incomplete, not_started)"
// @Success 200 {object} BadgesResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /badges [get]
func (h *Handler) HandleGetBadges(w http.ResponseWriter, r *http.Request) {
	user, err := store.UserData(r)
	if err != nil {
		status, msg := mapServiceErrorToUserMessage(err)
		respondError(w, status, msg)
		return
	}

	query := BadgesQuery{Status: r.URL.Query().Get("status")}
	if err := GetValidator().ValidateStruct(query); err != nil {
		respondJSON(w, http.StatusBadRequest, FormatValidationError(err))
		return
	}

	sess := h.sessions.Touch(r.Context(), user.UserID)
	snapshot := sess.Snapshot()

	respondJSON(w, http.StatusOK, BadgesResponse{
		Badges:               filterBadges(snapshot.Badges, query.Status),
		Loading:              snapshot.Loading,
		Error:                snapshot.Error,
		IsFastPolling:        sess.Controller.IsFastPolling(),
		FastPollingRemaining: sess.Controller.RemainingFastPollingTime(),
	})
}

// filterBadges narrows a snapshot to one status; "" and "all" pass
// everything through
func filterBadges(badges []domain.Badge, status string) []domain.Badge {
	if status == "" || strings.EqualFold(status, "all") {
		return badges
	}

	want := domain.BadgeStatus(strings.ToUpper(status))
	filtered := make([]domain.Badge, 0, len(badges))
	for _, b := range badges {
		if b.Status == want {
			filtered = append(filtered, b)
		}
	}
	return filtered
}
