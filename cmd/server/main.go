// @title        Ticket System API
// @version      1.0
// @description  Ticket tracking over per-workspace key-value storage.
// @BasePath     /
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/ticketapp/ticket-system/docs"
	"github.com/ticketapp/ticket-system/internal/api"
	"github.com/ticketapp/ticket-system/internal/core/service"
	"github.com/ticketapp/ticket-system/internal/infrastructure/config"
	"github.com/ticketapp/ticket-system/internal/infrastructure/db"
	"github.com/ticketapp/ticket-system/pkg/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load(ctx)
	if err != nil {
		return err
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.IsDevelopment(),
	})

	backend, err := db.Open(ctx, cfg, log)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}

	hasher, err := service.NewPasswordHasher(cfg.PasswordHasher)
	if err != nil {
		return err
	}
	if cfg.PasswordHasher == service.HasherPlain {
		log.Warn().Msg("passwords are stored in plaintext; set PASSWORD_HASHER=bcrypt outside demos")
	}

	workspaces := service.NewWorkspaceFactory(backend.Store, service.WorkspaceOptions{
		Hasher:     hasher,
		SessionTTL: cfg.SessionTTL,
	}, log)

	e := api.NewRouter(api.Deps{
		Workspaces: workspaces,
		Backend:    backend.Name,
		Pinger:     backend.Store,
		Log:        log,
	})

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.Port).Str("backend", backend.Name).Msg("server starting")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		log.Info().Msg("shutdown signal received")
	case err := <-errCh:
		log.Error().Err(err).Msg("server failed")
		_ = backend.Close(context.Background())
		return err
	}

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancelShutdown()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown failed")
	}
	if err := backend.Close(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("store close failed")
	}

	log.Info().Msg("server stopped")
	return nil
}
