// Package handler implements the storefront HTTP API.
package handler

import (
	"github.com/osse101/BadgerShop_Go/internal/badger"
	"github.com/osse101/BadgerShop_Go/internal/checkout"
	"github.com/osse101/BadgerShop_Go/internal/event"
	"github.com/osse101/BadgerShop_Go/internal/session"
	"github.com/osse101/BadgerShop_Go/internal/worker"
)

// Handler bundles the dependencies shared by the API handlers
type Handler struct {
	badger     badger.Client
	sessions   *session.Manager
	checkout   *checkout.Service
	dispatcher *worker.Dispatcher
	bus        event.Bus
}

// New creates the API handler set
func New(client badger.Client, sessions *session.Manager, checkoutSvc *checkout.Service, dispatcher *worker.Dispatcher, bus event.Bus) *Handler {
	return &Handler{
		badger:     client,
		sessions:   sessions,
		checkout:   checkoutSvc,
		dispatcher: dispatcher,
		bus:        bus,
	}
}
