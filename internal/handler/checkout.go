package handler

import (
	"net/http"

	"github.com/osse101/BadgerShop_Go/internal/logger"
	"github.com/osse101/BadgerShop_Go/internal/store"
)

// CheckoutRequest confirms the shopper's intent to "pay"
type CheckoutRequest struct {
	PromiseToPay bool `json:"promiseToPay" validate:"required"`
}

// CheckoutResponse is the completed order plus confirmation
type CheckoutResponse struct {
	Message string      `json:"message"`
	Order   interface{} `json:"order"`
}

// HandleCheckout turns the cart into an order. The order lands in the
// orderHistory cookie, the cart cookie is emptied, and purchase/order
// events head to the vendor in the background.
// @Summary Checkout
// @Description Converts the cart into a delivered order
// @Tags store
// @Accept json
// @Produce json
// @Param request body CheckoutRequest true "Checkout confirmation"
// @Success 201 {object} CheckoutResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /checkout [post]
func (h *Handler) HandleCheckout(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	user, err := store.UserData(r)
	if err != nil {
		status, msg := mapServiceErrorToUserMessage(err)
		respondError(w, status, msg)
		return
	}

	var req CheckoutRequest
	if err := decodeJSON(r, &req); err != nil {
		log.Warn(LogMsgInvalidRequestBody, "error", err)
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequestError)
		return
	}
	if err := GetValidator().ValidateStruct(req); err != nil {
		respondJSON(w, http.StatusBadRequest, FormatValidationError(err))
		return
	}

	// Touch the session first so the purchase boost has a poller to
	// speed up
	h.sessions.Touch(r.Context(), user.UserID)

	order, err := h.checkout.Checkout(r.Context(), user, store.Cart(r))
	if err != nil {
		log.Warn(LogMsgCheckoutFailed, "user_id", user.UserID, "error", err)
		status, msg := mapServiceErrorToUserMessage(err)
		respondError(w, status, msg)
		return
	}

	// Persist the order and empty the cart in the same response
	if err := store.AddOrder(w, r, order); err != nil {
		respondError(w, http.StatusInternalServerError, ErrMsgGenericServerError)
		return
	}
	if err := store.SetCart(w, nil); err != nil {
		respondError(w, http.StatusInternalServerError, ErrMsgGenericServerError)
		return
	}

	respondJSON(w, http.StatusCreated, CheckoutResponse{
		Message: "Order received successfully",
		Order:   order,
	})
}
