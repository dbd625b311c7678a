// Package main is the entry point for the FinBridge education-finance API.
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

	"gitlab.com/finbridge/finbridge/internal/advisor"
	"gitlab.com/finbridge/finbridge/internal/api"
	"gitlab.com/finbridge/finbridge/internal/config"
	"gitlab.com/finbridge/finbridge/internal/database"
	"gitlab.com/finbridge/finbridge/internal/logger"
	"gitlab.com/finbridge/finbridge/internal/repository"
	"gitlab.com/finbridge/finbridge/internal/store"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// ShutdownTimeout bounds how long in-flight requests may run after a
// termination signal.
const ShutdownTimeout = 10 * time.Second

func main() {
	if len(os.Args) > 1 && os.Args[1] == "version" {
		fmt.Printf("finbridge %s (commit: %s, built: %s)\n", version, commit, date)
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		logger.Log.Fatal().Err(err).Msg("Failed to load config")
	}

	logger.SetLevel(cfg.LogLevel)

	pool, err := database.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer pool.Close()

	if err := database.RunMigrations(ctx, pool); err != nil {
		logger.Log.Fatal().Err(err).Msg("Failed to run migrations")
	}

	logger.Log.Info().Msg("Database initialized successfully")

	appStore := store.New(store.Deps{
		Accounts:  repository.NewAccountRepository(pool),
		Students:  repository.NewStudentRepository(pool),
		Expenses:  repository.NewExpenseRepository(pool),
		Reminders: repository.NewReminderRepository(pool),
		Payments:  repository.NewPaymentRepository(pool),
	}, cfg.DemoLoginEnabled)

	if cfg.DemoLoginEnabled {
		if err := appStore.EnsureDemoAccount(ctx); err != nil {
			logger.Log.Fatal().Err(err).Msg("Failed to seed demo account")
		}
	}

	var advisory api.Advisory
	if cfg.GeminiAPIKey != "" {
		client, err := advisor.NewClient(ctx, cfg.GeminiAPIKey)
		if err != nil {
			logger.Log.Fatal().Err(err).Msg("Failed to create advisory client")
		}
		advisory = client
	} else {
		logger.Log.Warn().Msg("GEMINI_API_KEY not set, advisory routes disabled")
	}

	router := api.SetupRouter(api.RouterDeps{
		Store:   appStore,
		Advisor: advisory,
		Tokens:  api.NewAuthTokens(cfg.JWTSecret),
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan
		logger.Log.Info().Msg("Shutting down...")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), ShutdownTimeout)
		defer shutdownCancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Log.Error().Err(err).Msg("Graceful shutdown failed")
		}
		cancel()
	}()

	logger.Log.Info().Str("addr", cfg.Addr()).Msg("FinBridge API listening")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Log.Fatal().Err(err).Msg("Server failed")
	}
}
