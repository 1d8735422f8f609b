// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/danielhkuo/quickly-vote/cliparse"
	"github.com/danielhkuo/quickly-vote/clock"
	"github.com/danielhkuo/quickly-vote/middleware"
	"github.com/danielhkuo/quickly-vote/router"
	"github.com/danielhkuo/quickly-vote/store"
	"github.com/danielhkuo/quickly-vote/store/memory"
	"github.com/danielhkuo/quickly-vote/store/mongostore"
	"github.com/danielhkuo/quickly-vote/store/sqlstore"
)

type closer interface {
	Close(ctx context.Context) error
}

// openStore connects the backend named by cfg.DatabaseType
func openStore(ctx context.Context, cfg cliparse.Config) (store.Store, closer, error) {
	switch cfg.DatabaseType {
	case cliparse.StoreMongo:
		s, err := mongostore.Open(ctx, cfg.DatabaseURL, cfg.DatabaseName, cfg.StoreTimeout)
		return s, s, err
	case cliparse.StorePostgres:
		s, err := sqlstore.Open(ctx, sqlstore.DriverPostgres, cfg.DatabaseURL, cfg.StoreTimeout)
		return s, s, err
	case cliparse.StoreSQLite:
		s, err := sqlstore.Open(ctx, sqlstore.DriverSQLite, cfg.DatabaseURL, cfg.StoreTimeout)
		return s, s, err
	case cliparse.StoreMemory:
		s := memory.New()
		return s, s, nil
	}
	return nil, nil, fmt.Errorf("unknown store type %q", cfg.DatabaseType)
}

func main() {
	var err error

	if err := cliparse.LoadEnvFiles(); err != nil {
		slog.Error("Error loading .env", "error", err)
		os.Exit(1)
	}

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)

	// Connect to the store
	s, conn, err := openStore(context.Background(), cfg)
	if err != nil {
		slog.Error("store connection failed", "type", cfg.DatabaseType, "error", err)
		os.Exit(1)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), cfg.StoreTimeout)
		defer cancel()
		if err := conn.Close(ctx); err != nil {
			slog.Error("store close failed", "error", err)
		}
	}()
	slog.Info("Store ready", "type", cfg.DatabaseType)

	s, err = store.WithPollCache(s, cfg.PollCacheSize)
	if err != nil {
		slog.Error("poll cache setup failed", "error", err)
		os.Exit(1)
	}

	// Create router
	mux := router.NewRouter(s, clock.System{}, logger)

	// Create server
	server := http.Server{
		Handler: middleware.CORS(mux),
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		server.Shutdown(ctx)
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}
