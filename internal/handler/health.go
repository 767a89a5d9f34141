package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/osse101/ArcPlanner_Go/internal/domain"
	"github.com/osse101/ArcPlanner_Go/internal/logger"
)

type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// HealthChecker is implemented by the catalog store
type HealthChecker interface {
	CheckHealth(ctx context.Context) error
}

const (
	readinessTimeout = 2 * time.Second

	healthStatusOK          = "ok"
	healthStatusUnavailable = "unavailable"
	healthMsgNotLoaded      = "catalog not loaded"
	healthMsgEmpty          = "catalog is empty"
	healthMsgCheckFailed    = "readiness check failed"
)

// HandleHealthz answers 200 as long as the process serves HTTP
func HandleHealthz() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, HealthResponse{Status: healthStatusOK})
	}
}

// HandleReadyz answers 503 until the first catalog load has succeeded
func HandleReadyz(checker HealthChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), readinessTimeout)
		defer cancel()

		err := checker.CheckHealth(ctx)
		if err == nil {
			respondJSON(w, http.StatusOK, HealthResponse{Status: healthStatusOK})
			return
		}

		msg := healthMsgCheckFailed
		switch {
		case errors.Is(err, domain.ErrCatalogUnavailable):
			msg = healthMsgNotLoaded
		case errors.Is(err, domain.ErrCatalogEmpty):
			msg = healthMsgEmpty
		}
		logger.FromContext(r.Context()).Warn("Not ready", "reason", msg, "error", err)
		respondJSON(w, http.StatusServiceUnavailable, HealthResponse{Status: healthStatusUnavailable, Message: msg})
	}
}
