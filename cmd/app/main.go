package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/mingleton/dawson-rp/internal/account"
	"github.com/mingleton/dawson-rp/internal/airdrop"
	"github.com/mingleton/dawson-rp/internal/catalog"
	"github.com/mingleton/dawson-rp/internal/config"
	"github.com/mingleton/dawson-rp/internal/database"
	"github.com/mingleton/dawson-rp/internal/database/postgres"
	"github.com/mingleton/dawson-rp/internal/inventory"
	"github.com/mingleton/dawson-rp/internal/ledger"
	"github.com/mingleton/dawson-rp/internal/server"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Configuration failed", "error", err)
		os.Exit(1)
	}

	initLogger(cfg)

	pool, err := database.NewPool(cfg.GetDBConnString(), database.DefaultMaxConnections, database.DefaultMaxIdleTime, database.DefaultMaxLifetime)
	if err != nil {
		slog.Error("Database connection failed", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	cat, err := catalog.Load(
		filepath.Join("configs", "items", "types.json"),
		filepath.Join("configs", "items", "rarities.json"),
	)
	if err != nil {
		slog.Error("Catalog load failed", "error", err)
		os.Exit(1)
	}

	accountRepo := postgres.NewAccountRepository(pool)
	itemRepo := postgres.NewItemRepository(pool)

	accountService := account.NewService(accountRepo, cfg.LeaderboardLimit, cfg.StoreTimeout)
	ledgerService := ledger.NewService(accountRepo, cfg.GambleMinimumStake, cfg.StoreTimeout)
	inventoryService := inventory.NewService(itemRepo, cat, cfg.StoreTimeout)
	airdropService := airdrop.NewService(ledgerService, airdrop.Config{
		MinPrize:   cfg.AirdropMinPrize,
		MaxPrize:   cfg.AirdropMaxPrize,
		DefaultTTL: cfg.AirdropTTL,
	})

	srv := server.NewServer(cfg.Port, cfg.APIKey, nil, pool, accountService, ledgerService, inventoryService, airdropService, cat)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	case sig := <-sigCh:
		slog.Info("Shutting down", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Stop(ctx); err != nil {
		slog.Error("Server forced shutdown", "error", err)
	}

	if err := airdropService.Shutdown(ctx); err != nil {
		slog.Error("Airdrop shutdown failed", "error", err)
	}
	slog.Info("Server stopped")
}
