package item

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/osse101/ArcPlanner_Go/internal/domain"
	"github.com/osse101/ArcPlanner_Go/internal/logger"
	"github.com/osse101/ArcPlanner_Go/internal/metrics"
)

// Source produces the full list of item records
type Source interface {
	Fetch(ctx context.Context) ([]domain.Item, error)
}

// FileSource reads item records from a JSON array file or from a directory
// holding one record per *.json file
type FileSource struct {
	path   string
	loader Loader
}

// NewFileSource creates a file source for path
func NewFileSource(path string, loader Loader) *FileSource {
	if loader == nil {
		loader = NewLoader()
	}
	return &FileSource{path: path, loader: loader}
}

// Fetch reads the catalog from disk
func (s *FileSource) Fetch(ctx context.Context) ([]domain.Item, error) {
	info, err := os.Stat(s.path)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadCatalogFailed, s.path, err)
	}

	var items []domain.Item
	if info.IsDir() {
		items, err = s.fetchDir(ctx)
	} else {
		items, err = s.fetchFile(ctx, s.path)
	}
	if err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info(LogMsgCatalogLoaded, logger.AttrKeySource, "file", "path", s.path, "items", len(items))
	return items, nil
}

func (s *FileSource) fetchFile(ctx context.Context, path string) ([]domain.Item, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadCatalogFailed, path, err)
	}
	return s.loader.Parse(ctx, data, path)
}

func (s *FileSource) fetchDir(ctx context.Context) ([]domain.Item, error) {
	entries, err := os.ReadDir(s.path)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadDirFailed, s.path, err)
	}

	items := []domain.Item{}
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ItemFileExt) {
			continue
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		path := filepath.Join(s.path, entry.Name())
		fileItems, err := s.fetchFile(ctx, path)
		if err != nil {
			metrics.CatalogFetchedFiles.WithLabelValues(metrics.ResultFailure).Inc()
			logger.FromContext(ctx).Warn(LogMsgRecordSkipped, logger.AttrKeyOrigin, path, "error", err)
			continue
		}
		metrics.CatalogFetchedFiles.WithLabelValues(metrics.ResultSuccess).Inc()
		items = append(items, fileItems...)
	}
	return items, nil
}

// FallbackChain serves the fallback dataset when the primary source fails or is empty
type FallbackChain struct {
	primary  Source
	fallback Source
}

// WithFallback wraps primary so that errors and empty results fall through to fallback
func WithFallback(primary, fallback Source) *FallbackChain {
	return &FallbackChain{primary: primary, fallback: fallback}
}

// Fetch tries the primary source first
func (c *FallbackChain) Fetch(ctx context.Context) ([]domain.Item, error) {
	log := logger.FromContext(ctx)

	items, err := c.primary.Fetch(ctx)
	switch {
	case err != nil:
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		log.Warn(LogMsgUsingFallback, "error", err)
	case len(items) == 0:
		log.Warn(LogMsgPrimaryEmpty)
	default:
		return items, nil
	}

	metrics.CatalogFallbacks.Inc()
	return c.fallback.Fetch(ctx)
}
