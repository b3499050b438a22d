package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Identity errors
	ErrMsgIdentityMissing = "user data not found in cookie"
	ErrMsgIdentityCorrupt = "invalid user data in cookie"
	ErrMsgUserNotFound    = "user not found"

	// Catalog errors
	ErrMsgProductNotFound = "product not found"

	// Cart/checkout errors
	ErrMsgCartEmpty = "cart is empty"

	// Badger service errors
	ErrMsgBadgeFetch        = "failed to fetch badges"
	ErrMsgVendorUnavailable = "badge service unavailable"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Identity errors
	ErrIdentityMissing = errors.New(ErrMsgIdentityMissing)
	ErrIdentityCorrupt = errors.New(ErrMsgIdentityCorrupt)
	ErrUserNotFound    = errors.New(ErrMsgUserNotFound)

	// Catalog errors
	ErrProductNotFound = errors.New(ErrMsgProductNotFound)

	// Cart/checkout errors
	ErrCartEmpty = errors.New(ErrMsgCartEmpty)

	// Badger service errors
	ErrBadgeFetch        = errors.New(ErrMsgBadgeFetch)
	ErrVendorUnavailable = errors.New(ErrMsgVendorUnavailable)

	// Validation errors
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
