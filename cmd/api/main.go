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

	"pet-care-scheduler/internal/app"
	"pet-care-scheduler/internal/platform/config"
	"pet-care-scheduler/internal/platform/logger"
	"pet-care-scheduler/internal/router"
)

// @title Pet Care Scheduler API
// @version 1.0
// @description API local de mascotas, agenda y catálogo de razas.
// @BasePath /
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}

	log := app.NewLogger(cfg, logger.Options{})
	if zl, ok := log.(*logger.ZapLogger); ok {
		defer func() { _ = zl.Zap().Sync() }()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Error("server error", map[string]any{"err": err})
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, log logger.Logger) error {
	store, closeStore, err := app.OpenUserStore(ctx, cfg.Store)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer func() {
		if err := closeStore(); err != nil {
			log.Warn("closing store", map[string]any{"err": err})
		}
	}()

	cat, err := app.NewCatalog(cfg, store, log)
	if err != nil {
		return fmt.Errorf("catalog: %w", err)
	}

	// primera carga en segundo plano; /breeds muestra Loading mientras tanto
	go cat.EnsureLoaded(ctx)

	srv := &http.Server{
		Addr: cfg.Server.Addr(),
		Handler: router.NewRouter(router.Options{
			Logger:         log,
			Catalog:        cat,
			MaxUploadBytes: cfg.App.MaxUploadBytes,
		}),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", map[string]any{"addr": srv.Addr, "store": cfg.Store.Driver})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down", nil)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	log.Info("server exited", nil)
	return nil
}
