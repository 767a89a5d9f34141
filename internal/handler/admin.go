package handler

import (
	"context"
	"net/http"

	"github.com/osse101/ArcPlanner_Go/internal/crafting"
	"github.com/osse101/ArcPlanner_Go/internal/logger"
)

// CatalogRefresher reloads the item catalog from its source
type CatalogRefresher interface {
	Refresh(ctx context.Context) error
}

// CatalogRefreshResponse reports the catalog state after a reload
type CatalogRefreshResponse struct {
	Message     string `json:"message"`
	Items       int    `json:"items"`
	Fingerprint string `json:"fingerprint"`
	LoadedAt    string `json:"loaded_at"`
}

// HandleRefreshCatalog reloads the item catalog (admin only)
// POST /api/v1/admin/catalog/refresh
func HandleRefreshCatalog(refresher CatalogRefresher, catalog crafting.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		log := logger.FromContext(ctx)

		log.Info("Refreshing item catalog")

		if err := refresher.Refresh(ctx); err != nil {
			respondServiceError(w, r, ErrMsgRefreshCatalogFailed, err)
			return
		}

		snap, err := catalog.Snapshot()
		if err != nil {
			respondServiceError(w, r, ErrMsgRefreshCatalogFailed, err)
			return
		}

		log.Info("Item catalog refreshed", "items", len(snap.Items), "fingerprint", snap.Index.Fingerprint())

		respondJSON(w, http.StatusOK, CatalogRefreshResponse{
			Message:     MsgCatalogRefreshed,
			Items:       len(snap.Items),
			Fingerprint: snap.Index.Fingerprint(),
			LoadedAt:    snap.LoadedAt.UTC().Format("2006-01-02T15:04:05Z"),
		})
	}
}
