package catalog

import (
	"github.com/osse101/ArcPlanner_Go/internal/domain"
)

// Lookup resolves item identifiers against a catalog
type Lookup interface {
	Get(id string) (*domain.Item, bool)
}

// Index is an immutable id → item mapping built once per loaded item list.
// It is safe for concurrent readers.
type Index struct {
	byID        map[string]*domain.Item
	fingerprint string
}

// NewIndex builds an index over items. Duplicate ids resolve to the last record.
// The index points into its own copy of the slice, so later mutation of items
// by the caller does not leak into lookups.
func NewIndex(items []domain.Item) *Index {
	owned := make([]domain.Item, len(items))
	copy(owned, items)

	byID := make(map[string]*domain.Item, len(owned))
	for i := range owned {
		byID[owned[i].ID] = &owned[i]
	}
	return &Index{byID: byID}
}

// Get returns the record for id. Unknown ids return (nil, false).
func (x *Index) Get(id string) (*domain.Item, bool) {
	if x == nil {
		return nil, false
	}
	item, ok := x.byID[id]
	return item, ok
}

// Len returns the number of distinct identifiers
func (x *Index) Len() int {
	if x == nil {
		return 0
	}
	return len(x.byID)
}

// Fingerprint returns the content hash the index was built from, if it came from an IndexCache
func (x *Index) Fingerprint() string {
	return x.fingerprint
}
