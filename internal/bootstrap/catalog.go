package bootstrap

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/osse101/ArcPlanner_Go/internal/catalog"
	"github.com/osse101/ArcPlanner_Go/internal/config"
	"github.com/osse101/ArcPlanner_Go/internal/item"
	"github.com/osse101/ArcPlanner_Go/internal/logger"
)

// BuildCatalogSource selects the item source named by cfg.CatalogSource.
// File and remote sources fall back to the bundled items when they fail.
func BuildCatalogSource(cfg *config.Config, client *http.Client) (item.Source, error) {
	loader := item.NewLoader()
	fallback := item.NewFallbackSource()

	var source item.Source
	switch cfg.CatalogSource {
	case config.CatalogSourceFile:
		source = item.WithFallback(item.NewFileSource(cfg.CatalogPath, loader), fallback)
	case config.CatalogSourceRemote:
		if client == nil {
			client = &http.Client{Timeout: cfg.FetchTimeout}
		}
		remote := item.NewRemoteSource(item.RemoteConfig{
			Owner:      cfg.RepoOwner,
			Repo:       cfg.RepoName,
			Path:       cfg.RepoPath,
			Branch:     cfg.RepoBranch,
			APIBaseURL: cfg.GitHubAPIURL,
			RawBaseURL: cfg.GitHubRawURL,
			Token:      cfg.GitHubToken,
			BatchSize:  cfg.FetchBatchSize,
		}, client, loader)
		source = item.WithFallback(remote, fallback)
	case config.CatalogSourceFallback:
		source = fallback
	default:
		return nil, fmt.Errorf(ErrMsgUnknownCatalogSource, cfg.CatalogSource)
	}

	slog.Info(LogMsgCatalogSourceSelected, logger.AttrKeySource, cfg.CatalogSource)
	return source, nil
}

// BuildCatalogStore wires the configured source into a store with an index cache.
// The store starts empty; call Refresh to load it.
func BuildCatalogStore(cfg *config.Config, client *http.Client) (*catalog.Store, error) {
	source, err := BuildCatalogSource(cfg, client)
	if err != nil {
		return nil, err
	}
	return catalog.NewStore(source, catalog.NewIndexCache(cfg.IndexCacheSize, cfg.IndexCacheTTL)), nil
}
