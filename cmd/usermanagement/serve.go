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

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/somshrestha/inflo-tech-test/internal/auditlogs"
	"github.com/somshrestha/inflo-tech-test/internal/config"
	"github.com/somshrestha/inflo-tech-test/internal/data"
	"github.com/somshrestha/inflo-tech-test/internal/health"
	"github.com/somshrestha/inflo-tech-test/internal/metrics"
	"github.com/somshrestha/inflo-tech-test/internal/server"
	"github.com/somshrestha/inflo-tech-test/internal/users"
	"github.com/somshrestha/inflo-tech-test/internal/validation"
	"github.com/somshrestha/inflo-tech-test/internal/viewmodels"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	logger := initLogger()
	defer func() { _ = logger.Sync() }()

	cfg := config.Get()
	logger.Info("Configuration loaded",
		zap.String("environment", cfg.Common.Environment),
		zap.String("driver", config.Database().Driver))

	ctx := cmd.Context()

	store, err := openStore(ctx, logger)
	if err != nil {
		return err
	}

	m := metrics.New()
	dc := data.NewDataContext(store, logger, data.NewAuditInterceptor())

	healthManager := health.NewManager(logger)
	healthManager.AddChecker(health.NewConfigChecker(cfg))
	healthManager.AddChecker(health.NewDatabaseChecker(store))
	if err := healthManager.StartupHealthCheck(ctx); err != nil {
		_ = store.Close()
		return fmt.Errorf("startup health check failed: %w", err)
	}

	paging := config.AuditLogs()
	router := server.NewRouter(server.Dependencies{
		Logger:    logger,
		Users:     users.NewUserService(dc, logger, m),
		AuditLogs: auditlogs.NewService(dc, auditlogs.PageOptions{DefaultPageSize: paging.DefaultPageSize, MaxPageSize: paging.MaxPageSize}, logger, m),
		Validator: validation.New(),
		Mapper:    viewmodels.NewMapper(),
		Health:    healthManager,
		Metrics:   m,

		CorsOrigins: config.Http().CorsAllowedOrigins,
		Development: cfg.IsDevelopment(),
	})

	addr := config.Http().Addr()
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	done := setupSignalHandler(srv, store, logger)

	logger.Info("Starting user management server", zap.String("address", addr))
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	<-done
	logger.Info("Server shutdown complete")
	return nil
}

func setupSignalHandler(srv *http.Server, store data.Store, logger *zap.Logger) chan struct{} {
	done := make(chan struct{}, 1)

	signalCh := make(chan os.Signal, 1)
	signal.Notify(signalCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-signalCh

		logger.Info("Shutting down server...")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			logger.Error("Error during server shutdown", zap.Error(err))
		}

		if err := store.Close(); err != nil {
			logger.Error("Error closing store", zap.Error(err))
		}

		done <- struct{}{}
	}()

	return done
}
