package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/osse101/ArcPlanner_Go/internal/bootstrap"
	"github.com/osse101/ArcPlanner_Go/internal/config"
	"github.com/osse101/ArcPlanner_Go/internal/crafting"
	"github.com/osse101/ArcPlanner_Go/internal/handler"
	"github.com/osse101/ArcPlanner_Go/internal/loadout"
	"github.com/osse101/ArcPlanner_Go/internal/server"
	"github.com/osse101/ArcPlanner_Go/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		slog.Error("Failed to set up logging", "error", err)
		os.Exit(1)
	}
	defer logFile.Close()

	warnings, err := config.ValidateEnvWithWarnings()
	if err != nil {
		slog.Error("Environment validation failed", "error", err)
		os.Exit(1)
	}
	for _, w := range warnings {
		slog.Warn(w)
	}
	if err := cfg.Validate(); err != nil {
		slog.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}

	handler.InitValidator()

	store, err := bootstrap.BuildCatalogStore(cfg, nil)
	if err != nil {
		slog.Error("Failed to build catalog", "error", err)
		os.Exit(1)
	}

	planner := crafting.NewService(store, cfg.MaxTreeDepth)
	loadouts := loadout.NewService(loadout.NewStore(cfg.LoadoutCacheSize, cfg.LoadoutTTL), store, planner)

	srv := server.NewServer(server.Options{
		Port:           cfg.Port,
		AdminAPIKey:    cfg.AdminAPIKey,
		TrustedProxies: cfg.TrustedProxies,
		ServiceName:    cfg.ServiceName,
		Version:        cfg.Version,
	}, server.Services{
		Catalog:  store,
		Planner:  planner,
		Loadouts: loadouts,
	})

	// The first load runs in the background; /readyz reports 503 until it lands
	refresher := worker.NewCatalogRefreshWorker(store, cfg.CatalogRefreshInterval)
	refresher.Trigger(context.Background())
	refresher.Start()

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	bootstrap.GracefulShutdown(ctx, bootstrap.ShutdownComponents{
		Server:    srv,
		Refresher: refresher,
	})
}
