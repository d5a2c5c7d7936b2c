package main

import (
	"ItemGate/internal/config"
	"ItemGate/internal/handlers"
	"ItemGate/internal/middleware"
	"ItemGate/internal/repo"
	"ItemGate/internal/service"
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
)

var (
	version   = "dev"
	buildDate = "unknown"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.NewConfig()

	if cfg.Version {
		fmt.Printf("ItemGate server\nVersion: %s\nBuild date: %s\n", version, buildDate)
		return
	}

	// создаём регистратор zap
	logger, err := newLogger(cfg.Debug)
	if err != nil {
		panic(err)
	}

	// делаем регистратор SugaredLogger
	sugar := logger.Sugar()
	middleware.SetLogger(sugar) // передаём логгер в middleware
	//сброс буфера логгера
	defer func() {
		_ = logger.Sync()
	}()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, cfg, sugar); err != nil {
		sugar.Errorw("Server failed", "error", err)
		_ = logger.Sync()
		os.Exit(1)
	}
}

func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

// run поднимает сервер и ждёт отмены ctx, после чего корректно его останавливает.
func run(ctx context.Context, cfg *config.Config, sugar *zap.SugaredLogger) error {
	store, closeStore, err := repo.OpenStore(cfg.StoreDriver)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer func() {
		if err := closeStore(); err != nil {
			sugar.Errorw("Failed to close store", "error", err)
		}
	}()

	creds, err := service.NewStaticCredentials(service.DefaultUsername, service.DefaultPassword)
	if err != nil {
		return err
	}
	itemService := service.NewItemService(store, sugar)
	authService := service.NewAuthService(creds)

	h := handlers.NewHandler(itemService, authService, sugar, cfg)

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           h.Router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	sugar.Infow("Starting server",
		"addr", srv.Addr,
		"store", cfg.StoreDriver,
		"version", version,
	)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	case <-ctx.Done():
		sugar.Infow("Shutting down server")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		_ = srv.Close()
		return fmt.Errorf("shutdown: %w", err)
	}
	sugar.Infow("Server stopped")
	return nil
}
