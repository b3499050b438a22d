// Package store is the cookie-backed mock persistence layer. User
// identity, cart contents, and order history all live in the browser's
// cookie jar - clearing cookies is the demo's "drop database".
package store

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/osse101/BadgerShop_Go/internal/domain"
)

// Cookie names shared with the storefront frontend
const (
	CookieUserData     = "userData"
	CookieCart         = "cart"
	CookieOrderHistory = "orderHistory"
)

// CookieTTL is how long persisted cookies live
const CookieTTL = 365 * 24 * time.Hour

// UserData reads the demo identity from the request cookies.
// Returns ErrIdentityMissing when the cookie is absent and
// ErrIdentityCorrupt when it cannot be decoded.
func UserData(r *http.Request) (*domain.UserData, error) {
	cookie, err := r.Cookie(CookieUserData)
	if err != nil {
		return nil, domain.ErrIdentityMissing
	}

	var user domain.UserData
	if err := decodeCookie(cookie.Value, &user); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrIdentityCorrupt, err)
	}
	if user.UserID == "" {
		return nil, fmt.Errorf("%w: missing user id", domain.ErrIdentityCorrupt)
	}

	return &user, nil
}

// SetUserData persists the demo identity
func SetUserData(w http.ResponseWriter, user *domain.UserData) error {
	return setCookie(w, CookieUserData, user)
}

// ClearUserData expires the identity cookie
func ClearUserData(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieUserData,
		Value:    "",
		Path:     "/",
		Expires:  time.Now().Add(-24 * time.Hour),
		SameSite: http.SameSiteLaxMode,
	})
}

// Cart reads the cart cookie: a flat list of product ids, one entry per
// unit. A missing or corrupt cookie is treated as an empty cart.
func Cart(r *http.Request) []int {
	cookie, err := r.Cookie(CookieCart)
	if err != nil {
		return nil
	}

	var cart []int
	if err := decodeCookie(cookie.Value, &cart); err != nil {
		return nil
	}
	return cart
}

// SetCart persists the cart cookie
func SetCart(w http.ResponseWriter, cart []int) error {
	if cart == nil {
		cart = []int{}
	}
	return setCookie(w, CookieCart, cart)
}

// Orders reads the order history cookie, newest order first.
// A missing or corrupt cookie is an empty history.
func Orders(r *http.Request) []domain.Order {
	cookie, err := r.Cookie(CookieOrderHistory)
	if err != nil {
		return nil
	}

	var orders []domain.Order
	if err := decodeCookie(cookie.Value, &orders); err != nil {
		return nil
	}
	return orders
}

// AddOrder prepends an order to the history cookie
func AddOrder(w http.ResponseWriter, r *http.Request, order domain.Order) error {
	existing := Orders(r)
	updated := append([]domain.Order{order}, existing...)
	return setCookie(w, CookieOrderHistory, updated)
}

// setCookie JSON-encodes and URL-escapes a value into a long-lived cookie
func setCookie(w http.ResponseWriter, name string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %s cookie: %w", name, err)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    url.QueryEscape(string(data)),
		Path:     "/",
		Expires:  time.Now().Add(CookieTTL),
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// decodeCookie reverses setCookie's URL-escaped JSON encoding
func decodeCookie(value string, out interface{}) error {
	decoded, err := url.QueryUnescape(value)
	if err != nil {
		return err
	}
	return json.Unmarshal([]byte(decoded), out)
}
