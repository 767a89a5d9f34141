package handler

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/osse101/ArcPlanner_Go/internal/crafting"
	"github.com/osse101/ArcPlanner_Go/internal/domain"
	"github.com/osse101/ArcPlanner_Go/internal/item"
	"github.com/osse101/ArcPlanner_Go/internal/logger"
)

// ItemListResponse is the browse result for the catalog
type ItemListResponse struct {
	Items []domain.Item `json:"items"`
	Count int           `json:"count"`
}

// ItemResponse wraps one catalog record with its browse category
type ItemResponse struct {
	Item     *domain.Item `json:"item"`
	Category string       `json:"category,omitempty"`
	Kind     string       `json:"kind"`
}

// CategoriesResponse lists the browse tabs for the loaded catalog
type CategoriesResponse struct {
	Categories []string `json:"categories"`
}

// ItemHandler serves catalog browsing endpoints
type ItemHandler struct {
	catalog crafting.Catalog
}

// NewItemHandler creates a new item handler
func NewItemHandler(catalog crafting.Catalog) *ItemHandler {
	return &ItemHandler{catalog: catalog}
}

// HandleList lists catalog items filtered by category, rarity and a name query
// GET /api/v1/items?category=&rarity=&q=
func (h *ItemHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	category := GetOptionalQueryParam(r, "category", "")
	rarity := GetOptionalQueryParam(r, "rarity", "")
	query := GetOptionalQueryParam(r, "q", "")
	if rarity != "" && !strings.EqualFold(domain.ParseRarity(rarity).String(), strings.TrimSpace(rarity)) {
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRarity)
		return
	}

	snap, err := h.catalog.Snapshot()
	if err != nil {
		respondServiceError(w, r, ErrMsgListItemsFailed, err)
		return
	}

	items := item.Filter(snap.Items, category, rarity, query)
	log.Debug("Items listed", "category", category, "rarity", rarity, "query", query, "count", len(items))

	respondJSON(w, http.StatusOK, ItemListResponse{Items: items, Count: len(items)})
}

// HandleGet returns a single catalog record
// GET /api/v1/items/{id}
func (h *ItemHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := GetPathParam(r, w, "id")
	if !ok {
		return
	}

	snap, err := h.catalog.Snapshot()
	if err != nil {
		respondServiceError(w, r, ErrMsgGetItemFailed, err)
		return
	}

	it, found := snap.Index.Get(id)
	if !found {
		respondServiceError(w, r, ErrMsgGetItemFailed, fmt.Errorf("%w: %s", domain.ErrItemNotFound, id))
		return
	}

	category, _ := item.Category(it)
	respondJSON(w, http.StatusOK, ItemResponse{
		Item:     it,
		Category: category,
		Kind:     string(it.Composition().Kind),
	})
}

// HandleCategories lists the browse tabs
// GET /api/v1/categories
func (h *ItemHandler) HandleCategories(w http.ResponseWriter, r *http.Request) {
	snap, err := h.catalog.Snapshot()
	if err != nil {
		respondServiceError(w, r, ErrMsgListItemsFailed, err)
		return
	}
	respondJSON(w, http.StatusOK, CategoriesResponse{Categories: item.Tabs(snap.Items)})
}
