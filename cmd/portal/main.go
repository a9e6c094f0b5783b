package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/example/roomportal/internal/api"
	"github.com/example/roomportal/internal/config"
	"github.com/example/roomportal/internal/logging"
	"github.com/example/roomportal/internal/prefs"
	prefssqlite "github.com/example/roomportal/internal/prefs/sqlite"
	"github.com/example/roomportal/internal/web"
)

func main() {
	// A .env file is a development convenience; in production the variables
	// come from the environment.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "failed to read .env file: %v\n", err)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger := logging.New(cfg.LogLevel)
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := prefssqlite.Open(cfg.SQLiteDSN)
	if err != nil {
		logger.Error("failed to open preference store", "error", err)
		os.Exit(1)
	}
	defer func() {
		if cerr := store.Close(); cerr != nil {
			logger.Error("failed to close preference store", "error", cerr)
		}
	}()
	if err := store.Migrate(context.Background()); err != nil {
		logger.Error("failed to apply migrations", "error", err)
		os.Exit(1)
	}

	client := api.New(cfg.APIBaseURL, cfg.APITimeout, logger)
	prefsService := prefs.NewService(store, logger)

	server, err := web.NewServer(client, prefsService, logger)
	if err != nil {
		logger.Error("failed to build portal server", "error", err)
		os.Exit(1)
	}

	httpServer := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:           server.Router(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("failed to shutdown server", "error", err)
		}
	}()

	logger.Info("portal listening", "addr", httpServer.Addr, "api", cfg.APIBaseURL)
	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("server encountered error", "error", err)
		os.Exit(1)
	}
}
