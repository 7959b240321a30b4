package main

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dmcguire80/Budget-Reduction-Tracking-sub001/internal/config"
	"github.com/dmcguire80/Budget-Reduction-Tracking-sub001/internal/database"
	"github.com/dmcguire80/Budget-Reduction-Tracking-sub001/internal/middleware"
	"github.com/dmcguire80/Budget-Reduction-Tracking-sub001/internal/repositories"
	"github.com/dmcguire80/Budget-Reduction-Tracking-sub001/internal/server"
	"github.com/dmcguire80/Budget-Reduction-Tracking-sub001/internal/services"

	"github.com/joho/godotenv"
)

const shutdownTimeout = 30 * time.Second

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file loaded", "error", err)
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := slog.New(middleware.NewTraceHandler(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.LogLevel,
	})))
	slog.SetDefault(logger)

	if err := run(cfg); err != nil {
		slog.Error("server stopped with error", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := database.Initialize(cfg)
	if err != nil {
		return err
	}
	if sqlDB, err := db.DB(); err == nil {
		defer sqlDB.Close()
	}

	txOpts := repositories.SnapshotTxOptions()
	if !cfg.Database.UseRepeatableRead() {
		txOpts = nil
	}

	opts, err := services.NewAnalyticsOptions(&cfg.Analytics)
	if err != nil {
		return err
	}

	accounts := repositories.NewAccountRepository(db)
	transactions := repositories.NewTransactionRepository(db)
	ledger := services.NewGuardedLedgerReader(
		repositories.NewLedgerRepository(db, txOpts),
		services.NewCircuitBreaker("ledger", services.NewLedgerBreakerConfig(&cfg.Database)),
	)
	analyticsService := services.NewDebtAnalyticsService(
		ledger,
		services.NewPrometheusMetrics(),
		opts,
	)

	e := server.New(ctx, cfg, server.Dependencies{
		DB:           db,
		Analytics:    analyticsService,
		Tokens:       services.NewTokenService(&cfg.JWT),
		Accounts:     accounts,
		Transactions: transactions,
		Generator:    services.NewLedgerHistoryGenerator(uint64(time.Now().UnixNano())),
	})

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, cfg.Server.Port),
		Handler:      e,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("starting debt analytics server",
			"addr", srv.Addr,
			"environment", cfg.Server.Environment,
			"projection_policy", cfg.Analytics.PortfolioProjectionPolicy)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		slog.Info("shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}

	slog.Info("server stopped gracefully")
	return nil
}
