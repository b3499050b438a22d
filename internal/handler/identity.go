package handler

import (
	"net/http"

	"github.com/osse101/BadgerShop_Go/internal/logger"
	"github.com/osse101/BadgerShop_Go/internal/store"
)

// HandleRegisterIdentity mints a fresh demo identity and persists it in
// the userData cookie. An existing identity is returned unchanged; the
// demo never regenerates over a live identity.
// @Summary Register demo identity
// @Description Generates a random demo identity if none exists
// @Tags identity
// @Produce json
// @Success 200 {object} domain.UserData
// @Success 201 {object} domain.UserData
// @Router /identity/register [post]
func (h *Handler) HandleRegisterIdentity(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	if user, err := store.UserData(r); err == nil {
		h.sessions.Touch(r.Context(), user.UserID)
		respondJSON(w, http.StatusOK, user)
		return
	}

	user := store.GenerateRandomUserData()
	if err := store.SetUserData(w, user); err != nil {
		respondError(w, http.StatusInternalServerError, ErrMsgGenericServerError)
		return
	}

	h.sessions.Touch(r.Context(), user.UserID)

	log.Info(LogMsgIdentityGenerated, "user_id", user.UserID)
	respondJSON(w, http.StatusCreated, user)
}

// HandleGetIdentity returns the identity stored in the cookie
// @Summary Get demo identity
// @Description Returns the identity from the userData cookie
// @Tags identity
// @Produce json
// @Success 200 {object} domain.UserData
// @Failure 401 {object} ErrorResponse
// @Router /identity [get]
func (h *Handler) HandleGetIdentity(w http.ResponseWriter, r *http.Request) {
	user, err := store.UserData(r)
	if err != nil {
		status, msg := mapServiceErrorToUserMessage(err)
		respondError(w, status, msg)
		return
	}

	respondJSON(w, http.StatusOK, user)
}

// HandleDeleteIdentity clears the identity cookie
// @Summary Delete demo identity
// @Description Expires the userData cookie; badge progress on the vendor side is untouched
// @Tags identity
// @Produce json
// @Success 200 {object} SuccessResponse
// @Router /identity [delete]
func (h *Handler) HandleDeleteIdentity(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	if user, err := store.UserData(r); err == nil {
		log.Info(LogMsgIdentityCleared, "user_id", user.UserID)
	}

	store.ClearUserData(w)
	respondJSON(w, http.StatusOK, SuccessResponse{Message: "Identity cleared"})
}
