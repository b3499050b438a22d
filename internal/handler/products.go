package handler

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/BadgerShop_Go/internal/catalog"
	"github.com/osse101/BadgerShop_Go/internal/logger"
)

// HandleGetProducts returns the product catalog
// @Summary List products
// @Description Returns the full demo product catalog
// @Tags store
// @Produce json
// @Success 200 {array} domain.Product
// @Router /products [get]
func (h *Handler) HandleGetProducts(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, catalog.List())
}

// HandleGetProductByID returns a single product
// @Summary Get product
// @Description Returns one product by its catalog id
// @Tags store
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} domain.Product
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /products/{id} [get]
func (h *Handler) HandleGetProductByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		logger.FromContext(r.Context()).Warn(LogMsgInvalidRequestBody, "error", err)
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequestError)
		return
	}

	product, err := catalog.GetProductByID(id)
	if err != nil {
		status, msg := mapServiceErrorToUserMessage(err)
		respondError(w, status, msg)
		return
	}

	respondJSON(w, http.StatusOK, product)
}
