package catalog

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/osse101/ArcPlanner_Go/internal/domain"
	"github.com/osse101/ArcPlanner_Go/internal/logger"
	"github.com/osse101/ArcPlanner_Go/internal/metrics"
)

// Source produces the full list of item records
type Source interface {
	Fetch(ctx context.Context) ([]domain.Item, error)
}

// Snapshot is an immutable view of the catalog at one point in time.
// Callers must treat Items as read-only.
type Snapshot struct {
	Items    []domain.Item
	Index    *Index
	LoadedAt time.Time
}

// Store holds the currently loaded catalog and swaps it atomically on refresh
type Store struct {
	source Source
	cache  *IndexCache

	mu      sync.RWMutex
	current Snapshot
	loaded  bool
}

// NewStore creates a store that loads from source
func NewStore(source Source, cache *IndexCache) *Store {
	if cache == nil {
		cache = NewIndexCache(DefaultIndexCacheSize, DefaultIndexCacheTTL)
	}
	return &Store{
		source: source,
		cache:  cache,
	}
}

// NewStaticStore creates a store already loaded with items and no source to refresh from
func NewStaticStore(items []domain.Item) *Store {
	s := NewStore(nil, nil)
	s.set(items, NewIndex(items))
	return s
}

// Refresh reloads the catalog from the source. On failure the previous
// snapshot stays in place.
func (s *Store) Refresh(ctx context.Context) error {
	log := logger.FromContext(ctx)
	log.Info(LogMsgRefreshStarted)

	if s.source == nil {
		return fmt.Errorf("%w: no source configured", domain.ErrCatalogUnavailable)
	}

	items, err := s.source.Fetch(ctx)
	if err != nil {
		metrics.CatalogRefreshes.WithLabelValues(metrics.ResultFailure).Inc()
		log.Error(LogMsgRefreshFailed, "error", err)
		return fmt.Errorf(ErrMsgFetchCatalogFailed, err)
	}
	if len(items) == 0 {
		metrics.CatalogRefreshes.WithLabelValues(metrics.ResultFailure).Inc()
		log.Error(LogMsgRefreshFailed, "error", domain.ErrCatalogEmpty)
		return fmt.Errorf(ErrMsgFetchCatalogFailed, domain.ErrCatalogEmpty)
	}

	index, hit, err := s.cache.Get(items)
	if err != nil {
		metrics.CatalogRefreshes.WithLabelValues(metrics.ResultFailure).Inc()
		return fmt.Errorf(ErrMsgFingerprintFailed, err)
	}
	if hit {
		log.Debug(LogMsgIndexCacheHit, "fingerprint", index.Fingerprint())
	} else {
		log.Debug(LogMsgIndexBuilt, "fingerprint", index.Fingerprint(), "items", index.Len())
	}
	if dupes := len(items) - index.Len(); dupes > 0 {
		log.Warn(LogMsgDuplicateItemID, "duplicates", dupes)
	}

	s.set(items, index)
	metrics.CatalogRefreshes.WithLabelValues(metrics.ResultSuccess).Inc()
	log.Info(LogMsgRefreshCompleted, "items", len(items))
	return nil
}

func (s *Store) set(items []domain.Item, index *Index) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = Snapshot{Items: items, Index: index, LoadedAt: time.Now()}
	s.loaded = true
	metrics.CatalogItems.Set(float64(len(items)))
}

// Snapshot returns the current catalog view
func (s *Store) Snapshot() (Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.loaded {
		return Snapshot{}, domain.ErrCatalogUnavailable
	}
	return s.current, nil
}

// CheckHealth reports an error until a catalog has been loaded
func (s *Store) CheckHealth(ctx context.Context) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.loaded {
		return domain.ErrCatalogUnavailable
	}
	return nil
}
