package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/osse101/BadgerShop_Go/internal/badger"
	"github.com/osse101/BadgerShop_Go/internal/checkout"
	"github.com/osse101/BadgerShop_Go/internal/config"
	"github.com/osse101/BadgerShop_Go/internal/event"
	"github.com/osse101/BadgerShop_Go/internal/handler"
	"github.com/osse101/BadgerShop_Go/internal/scheduler"
	"github.com/osse101/BadgerShop_Go/internal/server"
	"github.com/osse101/BadgerShop_Go/internal/session"
	"github.com/osse101/BadgerShop_Go/internal/sse"
	"github.com/osse101/BadgerShop_Go/internal/worker"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	initLogger(cfg)
	handler.InitValidator()

	// Vendor client
	badgerClient := badger.New(badger.Config{
		AppID:     cfg.BadgerAppID,
		AppSecret: cfg.BadgerAppSecret,
		BaseURL:   cfg.BadgerAPIURL,
	})

	// Event bus
	bus := event.NewMemoryBus()

	// Worker pool for vendor event delivery
	pool := worker.NewPool(worker.DefaultWorkers, worker.DefaultQueueSize)
	pool.Start()
	dispatcher := worker.NewDispatcher(pool, badgerClient)

	// Per-user badge sessions
	sessions := session.NewManager(badgerClient, bus, cfg.SessionTTL, session.DefaultMaxSessions)

	// SSE push
	hub := sse.NewHub()
	hub.Start()
	sse.NewSubscriber(hub, bus).Subscribe()

	// Checkout
	checkoutSvc := checkout.NewService(dispatcher, bus)

	// Periodic session stats
	sched := scheduler.New(pool)
	sched.Schedule(5*time.Minute, session.NewStatsJob(sessions))

	h := handler.New(badgerClient, sessions, checkoutSvc, dispatcher, bus)
	srv := server.NewServer(cfg.Port, nil, h, hub)

	// Serve until interrupted
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		slog.Error("Server exited", "error", err)
	case sig := <-stop:
		slog.Info("Shutdown signal received", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Stop(ctx); err != nil {
		slog.Error("Graceful shutdown failed", "error", err)
	}

	sched.Stop()
	sessions.Stop()
	hub.Stop()
	pool.Stop()

	slog.Info("Shutdown complete")
}
