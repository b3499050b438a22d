package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/osse101/BadgerShop_Go/internal/domain"
)

// Standard response types for consistent API responses

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// DataResponse represents a response with data payload
type DataResponse struct {
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data"`
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	// Encode through a pooled buffer to reduce allocations
	buf := getBuffer()
	defer putBuffer(buf)

	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		// Headers already sent, nothing to do but log
		slog.Error("Failed to encode JSON response", "error", err)
		return
	}

	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// User-facing error messages for service errors
const (
	// Generic messages
	ErrMsgGenericServerError  = "Something went wrong"
	ErrMsgUnknownError        = "Unknown error"
	ErrMsgInvalidRequestError = "Invalid request. Please check your inputs."

	// Identity messages
	ErrMsgIdentityMissingError = "User data not found in cookie"
	ErrMsgIdentityCorruptError = "Invalid user data in cookie"
	ErrMsgUserNotFoundError    = "User not found"

	// Store messages
	ErrMsgProductNotFoundError = "Product not found"
	ErrMsgCartEmptyError       = "Your cart is empty"

	// Badge service messages
	ErrMsgBadgeFetchError        = "Failed to fetch badges"
	ErrMsgVendorUnavailableError = "Badge service is temporarily unavailable. Please try again later."
	ErrMsgEventDeliveryFailedErr = "Failed to send event"
	ErrMsgBadgeGrantFailedError  = "Failed to grant badge"
)

// mapServiceErrorToUserMessage maps domain errors to user-friendly HTTP
// responses: a status code and a message safe to show shoppers.
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrIdentityMissing):
		return http.StatusUnauthorized, ErrMsgIdentityMissingError
	case errors.Is(err, domain.ErrIdentityCorrupt):
		return http.StatusBadRequest, ErrMsgIdentityCorruptError
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, ErrMsgUserNotFoundError
	case errors.Is(err, domain.ErrProductNotFound):
		return http.StatusNotFound, ErrMsgProductNotFoundError
	case errors.Is(err, domain.ErrCartEmpty):
		return http.StatusBadRequest, ErrMsgCartEmptyError
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrMsgInvalidRequestError
	case errors.Is(err, domain.ErrVendorUnavailable):
		return http.StatusServiceUnavailable, ErrMsgVendorUnavailableError
	case errors.Is(err, domain.ErrBadgeFetch):
		return http.StatusBadGateway, ErrMsgBadgeFetchError
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}
