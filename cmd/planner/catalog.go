package main

import (
	"context"
	"fmt"

	"github.com/osse101/ArcPlanner_Go/internal/bootstrap"
	"github.com/osse101/ArcPlanner_Go/internal/catalog"
	"github.com/osse101/ArcPlanner_Go/internal/config"
	"github.com/osse101/ArcPlanner_Go/internal/crafting"
)

// loadCatalog resolves the catalog the same way the service does, with the
// command line flags taking precedence over the environment
func loadCatalog(ctx context.Context) (*catalog.Store, *config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}

	switch {
	case offline:
		cfg.CatalogSource = config.CatalogSourceFallback
	case catalogPath != "":
		cfg.CatalogSource = config.CatalogSourceFile
		cfg.CatalogPath = catalogPath
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	store, err := bootstrap.BuildCatalogStore(cfg, nil)
	if err != nil {
		return nil, nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	if err := store.Refresh(ctx); err != nil {
		return nil, nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	return store, cfg, nil
}

func newPlanner(ctx context.Context) (crafting.Service, error) {
	store, cfg, err := loadCatalog(ctx)
	if err != nil {
		return nil, err
	}
	return crafting.NewService(store, cfg.MaxTreeDepth), nil
}
