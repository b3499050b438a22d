package handler

import (
	"net/http"

	"github.com/osse101/BadgerShop_Go/internal/domain"
	"github.com/osse101/BadgerShop_Go/internal/store"
)

// HandleGetOrders returns the order history, newest first
// @Summary Get order history
// @Description Returns the order history from the request cookie
// @Tags store
// @Produce json
// @Success 200 {array} domain.Order
// @Router /orders [get]
func (h *Handler) HandleGetOrders(w http.ResponseWriter, r *http.Request) {
	orders := store.Orders(r)
	if orders == nil {
		orders = []domain.Order{}
	}
	respondJSON(w, http.StatusOK, orders)
}
