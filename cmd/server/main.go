// Package main initializes and starts the sitekeeper admin server, setting up
// configuration, logging, the storage backend, the content store, the session
// gate and the HTTP routes.
package main

import (
	"context"
	"fmt"
	"time"

	nethttp "net/http"

	"github.com/modernscene/sitekeeper/internal/auth"
	"github.com/modernscene/sitekeeper/internal/config"
	"github.com/modernscene/sitekeeper/internal/kvstore"
	"github.com/modernscene/sitekeeper/internal/logger"
	"github.com/modernscene/sitekeeper/internal/server/handler/http"
	"github.com/modernscene/sitekeeper/internal/store"
	"go.uber.org/zap"
)

var (
	// version holds the build version set via ldflags.
	version string
	// buildDate holds the build timestamp set via ldflags.
	buildDate string
)

// snapshotBudget is the persisted-snapshot size past which the budget
// monitor starts warning. Matches the ballpark of a browser origin quota.
const snapshotBudget = 4 << 20

func main() {
	// Parse command-line and environment configuration.
	options := config.Parse()

	// Print build metadata (or "N/A" if unset).
	fmt.Printf("Build version: %s\n", orDefault(version, "N/A"))
	fmt.Printf("Build date: %s\n", orDefault(buildDate, "N/A"))

	// Initialize structured logging.
	log := logger.New()
	defer func() { _ = log.Log.Sync() }()
	if err := log.Init(options.LogLevel); err != nil {
		log.Log.Fatal("failed to init logger", zap.Error(err))
	}
	zapLogger := log.Log

	ctx := context.Background()

	// Select the storage backend: database server if configured, the local
	// JSON file otherwise.
	kv, err := openStore(ctx, options)
	if err != nil {
		zapLogger.Fatal("cannot init storage backend", zap.Error(err))
	}

	// Warn when inlined image data grows the snapshot past its budget.
	kvstore.StartBudgetMonitor(ctx, kv, time.Hour, snapshotBudget, zapLogger)

	// Initialize the content store and session gate from persisted state.
	contentStore := store.New(kv, zapLogger)
	contentStore.Hydrate(ctx)
	gate := auth.New(kv, zapLogger)
	gate.Hydrate(ctx)

	// Create HTTP handlers for the admin API.
	authHandler := &http.AuthHandler{Gate: gate}
	contentHandler := &http.ContentHandler{Content: contentStore}
	uploadHandler := &http.UploadHandler{Content: contentStore, Gate: gate, Log: zapLogger}
	quoteHandler := &http.QuoteHandler{Number: options.WhatsAppNumber}

	// Build the router with middleware and routes.
	router := http.NewRouter(authHandler, contentHandler, uploadHandler, quoteHandler, gate, zapLogger)

	server := &nethttp.Server{
		Addr:    options.Addr,
		Handler: router,
	}

	zapLogger.Info("starting admin server", zap.String("addr", options.Addr))
	if err := server.ListenAndServe(); err != nil {
		zapLogger.Fatal("failed to start admin server", zap.Error(err))
	}
}

// orDefault returns s, or fallback when s is empty. Equivalent to cmp.Or
// for strings, which is unavailable on the Go 1.21 toolchain this module
// is built with.
func orDefault(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// openStore picks the storage backend from configuration. Precedence:
// postgres, redis, sqlite, then the local JSON file.
func openStore(ctx context.Context, options *config.Options) (kvstore.Store, error) {
	switch {
	case options.DatabaseDSN != "":
		return kvstore.OpenPostgres(options.DatabaseDSN)
	case options.RedisURL != "":
		return kvstore.OpenRedis(ctx, options.RedisURL)
	case options.SQLitePath != "":
		return kvstore.OpenSQLite(options.SQLitePath)
	default:
		return kvstore.NewFileStore(options.StorePath)
	}
}
