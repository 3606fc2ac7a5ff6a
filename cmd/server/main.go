// BookingBoost - Hotel Revenue Analytics and Marketing Dashboard
// Copyright 2026 Stanley Cornelius (StanleyCornelius24)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/StanleyCornelius24/bookingboost-sub002

// Command server runs the BookingBoost dashboard API.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/StanleyCornelius24/bookingboost-sub002/internal/api"
	"github.com/StanleyCornelius24/bookingboost-sub002/internal/auth"
	"github.com/StanleyCornelius24/bookingboost-sub002/internal/authz"
	"github.com/StanleyCornelius24/bookingboost-sub002/internal/config"
	"github.com/StanleyCornelius24/bookingboost-sub002/internal/database"
	"github.com/StanleyCornelius24/bookingboost-sub002/internal/logging"
	"github.com/StanleyCornelius24/bookingboost-sub002/internal/oauth"
)

func main() {
	if err := run(); err != nil {
		logging.Fatal().Err(err).Msg("Server exited with error")
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
	})

	db, err := database.New(&cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logging.Error().Err(err).Msg("Failed to close database")
		}
	}()

	if cfg.Server.DevMode {
		if err := db.SeedDemoData(context.Background()); err != nil {
			return fmt.Errorf("failed to seed demo data: %w", err)
		}
	}

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.SessionTTL)
	codec := auth.NewImpersonationCodec(
		[]byte(cfg.Auth.CookieHashKey),
		int(cfg.Auth.ImpersonationTTL.Seconds()),
		cfg.SecureCookies(),
	)
	registry := oauth.NewRegistry(cfg)
	resolver := authz.NewResolver(db)

	handler := api.NewHandler(db, cfg, resolver, jwtManager, codec, registry)
	router := api.NewRouter(handler)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logging.Info().
			Str("addr", addr).
			Bool("dev_mode", cfg.Server.DevMode).
			Msg("Server listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case sig := <-stop:
		logging.Info().Str("signal", sig.String()).Msg("Shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}

	logging.Info().Msg("Server stopped")
	return nil
}
