package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/evervow/evervow-backend/internal/adapter/httpapi"
	"github.com/evervow/evervow-backend/internal/adapter/repository/postgres"
	"github.com/evervow/evervow-backend/internal/config"
	"github.com/evervow/evervow-backend/internal/usecase/estimator"
	"github.com/evervow/evervow-backend/internal/usecase/swipe"
)

const shutdownTimeout = 10 * time.Second

func main() {
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	cfg := config.Load()

	// 1. Setup Database
	db, err := postgres.NewDB(cfg.DBConnString, postgres.Options{
		MaxOpenConns:    cfg.DBMaxOpenConns,
		MaxIdleConns:    cfg.DBMaxIdleConns,
		ConnMaxLifetime: cfg.DBConnMaxLifetime,
	})
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	ctx := context.Background()
	if err := postgres.EnsureSchema(ctx, db); err != nil {
		logger.Fatal("failed to ensure schema", zap.Error(err))
	}

	// 2. Initialize Repositories (Postgres)
	interactionRepo := postgres.NewInteractionRepository(db)
	projectRepo := postgres.NewProjectRepository(db)
	assetRepo := postgres.NewAssetRepository(db)
	slotRepo := postgres.NewSlotRepository(db)
	candidateRepo := postgres.NewCandidateRepository(db)

	// 3. Initialize Services (Use Cases)
	policy := estimator.Policy{
		DefaultGuestCount:    cfg.DefaultGuestCount,
		DefaultTaxRate:       cfg.DefaultTaxRate,
		DefaultServiceFeePct: cfg.DefaultServiceFeePct,
		DefaultEventHours:    cfg.DefaultEventHours,
	}
	swipeService := swipe.NewService(interactionRepo, projectRepo, assetRepo, slotRepo, candidateRepo, policy, logger)

	// 4. Start HTTP Server
	handler := httpapi.NewHandler(swipeService, slotRepo, candidateRepo, db, logger)
	server := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: handler.Router(),
	}

	go func() {
		logger.Info("HTTP server listening", zap.String("addr", cfg.HTTPAddr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("failed to serve HTTP", zap.Error(err))
		}
	}()

	// Graceful shutdown
	waitForShutdown(server, logger)
}

// waitForShutdown waits for SIGTERM or SIGINT and gracefully shuts down the server
func waitForShutdown(server *http.Server, logger *zap.Logger) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	sig := <-sigChan
	logger.Info("shutting down", zap.String("signal", sig.String()))

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("shutdown error", zap.Error(err))
	}
	logger.Info("HTTP server stopped")
}
