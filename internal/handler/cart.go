package handler

import (
	"encoding/json"
	"net/http"

	"github.com/osse101/BadgerShop_Go/internal/catalog"
	"github.com/osse101/BadgerShop_Go/internal/domain"
	"github.com/osse101/BadgerShop_Go/internal/logger"
	"github.com/osse101/BadgerShop_Go/internal/store"
)

// CartItem is one aggregated line of the cart
type CartItem struct {
	Product  domain.Product `json:"product"`
	Quantity int            `json:"quantity"`
}

// CartResponse is the cart with product details resolved
type CartResponse struct {
	Items    []CartItem `json:"items"`
	Count    int        `json:"count"`
	Subtotal float64    `json:"subtotal"`
}

// CartItemRequest identifies a product to add or remove
type CartItemRequest struct {
	ProductID int `json:"productId" validate:"required,gt=0"`
}

// buildCartResponse resolves the flat cookie cart into display lines.
// Unknown product ids are dropped rather than failing the whole cart.
func buildCartResponse(cart []int) CartResponse {
	quantities := make(map[int]int, len(cart))
	var ids []int
	for _, id := range cart {
		if quantities[id] == 0 {
			ids = append(ids, id)
		}
		quantities[id]++
	}

	resp := CartResponse{Items: []CartItem{}}
	for _, id := range ids {
		product, err := catalog.GetProductByID(id)
		if err != nil {
			continue
		}

		qty := quantities[id]
		resp.Items = append(resp.Items, CartItem{Product: product, Quantity: qty})
		resp.Count += qty
		resp.Subtotal += product.Price * float64(qty)
	}
	return resp
}

// HandleGetCart returns the current cart contents
// @Summary Get cart
// @Description Returns the cart from the request cookie with product details
// @Tags store
// @Produce json
// @Success 200 {object} CartResponse
// @Router /cart [get]
func (h *Handler) HandleGetCart(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, buildCartResponse(store.Cart(r)))
}

// HandleAddToCart adds one unit of a product to the cart
// @Summary Add to cart
// @Description Adds one unit of the product to the cart cookie
// @Tags store
// @Accept json
// @Produce json
// @Param request body CartItemRequest true "Product to add"
// @Success 200 {object} CartResponse
// @Failure 400 {object} ErrorResponse
// @Router /cart/add [post]
func (h *Handler) HandleAddToCart(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var req CartItemRequest
	if err := decodeJSON(r, &req); err != nil {
		log.Warn(LogMsgInvalidRequestBody, "error", err)
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequestError)
		return
	}
	if err := GetValidator().ValidateStruct(req); err != nil {
		respondJSON(w, http.StatusBadRequest, FormatValidationError(err))
		return
	}

	if _, err := catalog.GetProductByID(req.ProductID); err != nil {
		status, msg := mapServiceErrorToUserMessage(err)
		respondError(w, status, msg)
		return
	}

	cart := append(store.Cart(r), req.ProductID)
	if err := store.SetCart(w, cart); err != nil {
		respondError(w, http.StatusInternalServerError, ErrMsgGenericServerError)
		return
	}

	respondJSON(w, http.StatusOK, buildCartResponse(cart))
}

// HandleRemoveFromCart removes one unit of a product from the cart
// @Summary Remove from cart
// @Description Removes one unit of the product from the cart cookie
// @Tags store
// @Accept json
// @Produce json
// @Param request body CartItemRequest true "Product to remove"
// @Success 200 {object} CartResponse
// @Failure 400 {object} ErrorResponse
// @Router /cart/remove [post]
func (h *Handler) HandleRemoveFromCart(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var req CartItemRequest
	if err := decodeJSON(r, &req); err != nil {
		log.Warn(LogMsgInvalidRequestBody, "error", err)
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequestError)
		return
	}
	if err := GetValidator().ValidateStruct(req); err != nil {
		respondJSON(w, http.StatusBadRequest, FormatValidationError(err))
		return
	}

	cart := store.Cart(r)
	for i, id := range cart {
		if id == req.ProductID {
			cart = append(cart[:i], cart[i+1:]...)
			break
		}
	}

	if err := store.SetCart(w, cart); err != nil {
		respondError(w, http.StatusInternalServerError, ErrMsgGenericServerError)
		return
	}

	respondJSON(w, http.StatusOK, buildCartResponse(cart))
}

// HandleClearCart empties the cart
// @Summary Clear cart
// @Description Empties the cart cookie
// @Tags store
// @Produce json
// @Success 200 {object} CartResponse
// @Router /cart/clear [post]
func (h *Handler) HandleClearCart(w http.ResponseWriter, r *http.Request) {
	if err := store.SetCart(w, nil); err != nil {
		respondError(w, http.StatusInternalServerError, ErrMsgGenericServerError)
		return
	}
	respondJSON(w, http.StatusOK, buildCartResponse(nil))
}

// decodeJSON decodes a size-limited JSON request body
func decodeJSON(r *http.Request, out interface{}) error {
	return json.NewDecoder(http.MaxBytesReader(nil, r.Body, MaxRequestBodySize)).Decode(out)
}
