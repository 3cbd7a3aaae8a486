package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/osse101/CaseForge_Go/internal/bootstrap"
	"github.com/osse101/CaseForge_Go/internal/catalog"
	"github.com/osse101/CaseForge_Go/internal/config"
	"github.com/osse101/CaseForge_Go/internal/cooldown"
	"github.com/osse101/CaseForge_Go/internal/handler"
	"github.com/osse101/CaseForge_Go/internal/ledger"
	"github.com/osse101/CaseForge_Go/internal/resolver"
	"github.com/osse101/CaseForge_Go/internal/reward"
	"github.com/osse101/CaseForge_Go/internal/server"
)

const shutdownTimeout = 15 * time.Second

// @title CaseForge API
// @version 1.0
// @description Case opening, upgrades, trade-up contracts and daily rewards over per-session ledgers.
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to set up logging: %v", err)
	}
	if logFile != nil {
		defer logFile.Close()
	}

	if err := run(cfg); err != nil {
		slog.Error("Fatal error", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cat, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		return err
	}

	sources, err := bootstrap.InitializeRandomSources(cfg)
	if err != nil {
		return err
	}

	store, err := bootstrap.InitializeStorage(ctx, cfg)
	if err != nil {
		return err
	}

	bus, hub := bootstrap.InitializeEventSystem()
	bootstrap.RegisterEventHandlers(bus, hub)

	svc := ledger.NewService(store, cat,
		reward.NewGenerator(sources.Rewards, cat),
		resolver.New(sources.Upgrades),
		bus,
		ledger.Options{
			StartingBalance: cfg.StartingBalance,
			CacheSize:       cfg.SessionCacheSize,
			CacheTTL:        cfg.SessionCacheTTL,
			Cooldowns:       cooldown.Config{DevMode: cfg.DevMode},
		})

	// A nil *fairness.Source must not become a non-nil interface
	var fairInfo handler.FairnessInfo
	var rotator handler.SeedRotator
	if sources.Fair != nil {
		fairInfo = sources.Fair
		rotator = sources
	}

	srv := server.NewServer(server.Options{
		Port:           cfg.Port,
		AdminAPIKey:    cfg.AdminAPIKey,
		TrustedProxies: cfg.TrustedProxies,
		Ledger:         svc,
		Catalog:        cat,
		Store:          store,
		Hub:            hub,
		RNGMode:        cfg.RNGMode,
		Fairness:       fairInfo,
		Rotator:        rotator,
	})

	serverErr := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case <-ctx.Done():
	case err := <-serverErr:
		if err != nil {
			slog.Error("Server failed", "error", err)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Server: srv,
		Hub:    hub,
		Store:  store,
	})
	return nil
}
