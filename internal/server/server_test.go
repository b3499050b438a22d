package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/BadgerShop_Go/internal/badger"
	"github.com/osse101/BadgerShop_Go/internal/checkout"
	"github.com/osse101/BadgerShop_Go/internal/domain"
	"github.com/osse101/BadgerShop_Go/internal/event"
	"github.com/osse101/BadgerShop_Go/internal/handler"
	"github.com/osse101/BadgerShop_Go/internal/session"
	"github.com/osse101/BadgerShop_Go/internal/sse"
	"github.com/osse101/BadgerShop_Go/internal/worker"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	handler.InitValidator()

	fake := badger.NewFakeClient()
	bus := event.NewMemoryBus()
	pool := worker.NewPool(1, 8)
	dispatcher := worker.NewDispatcher(pool, fake)

	sessions := session.NewManager(fake, bus, time.Minute, 8)
	t.Cleanup(sessions.Stop)

	h := handler.New(fake, sessions, checkout.NewService(dispatcher, bus), dispatcher, bus)
	srv := NewServer(0, nil, h, sse.NewHub())

	return srv.httpServer.Handler
}

func TestRouter_ProductCatalog(t *testing.T) {
	router := newTestRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/products", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var products []domain.Product
	require.NoError(t, json.NewDecoder(w.Body).Decode(&products))
	assert.Len(t, products, 6)
}

func TestRouter_ProductByID(t *testing.T) {
	router := newTestRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/products/1", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var product domain.Product
	require.NoError(t, json.NewDecoder(w.Body).Decode(&product))
	assert.Equal(t, 1, product.ID)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/products/42", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRouter_Health(t *testing.T) {
	router := newTestRouter(t)

	for _, path := range []string{"/healthz", "/readyz", "/version"} {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, w.Code, path)
	}
}

func TestRouter_SecurityHeaders(t *testing.T) {
	router := newTestRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
}
