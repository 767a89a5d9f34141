package handler

import (
	"context"
	"net/http"

	"github.com/osse101/ArcPlanner_Go/internal/crafting"
	"github.com/osse101/ArcPlanner_Go/internal/logger"
)

// PlanRequest is the body of a planning request
type PlanRequest struct {
	Demands []crafting.Demand `json:"demands" validate:"max=256,dive"`
}

// CraftingHandler serves tree, predecessor and plan endpoints
type CraftingHandler struct {
	service crafting.Service
}

// NewCraftingHandler creates a new crafting handler
func NewCraftingHandler(service crafting.Service) *CraftingHandler {
	return &CraftingHandler{service: service}
}

// HandleTree returns the crafting tree of one item
// GET /api/v1/items/{id}/tree?quantity=N
func (h *CraftingHandler) HandleTree(w http.ResponseWriter, r *http.Request) {
	id, ok := GetPathParam(r, w, "id")
	if !ok {
		return
	}
	quantity, ok := GetQuantityParam(r, w)
	if !ok {
		return
	}

	tree, err := h.service.BuildTree(r.Context(), id, quantity)
	if err != nil {
		respondServiceError(w, r, ErrMsgBuildTreeFailed, err)
		return
	}

	respondJSON(w, http.StatusOK, tree)
}

// HandlePredecessor returns the tier below an item
// GET /api/v1/items/{id}/predecessor
func (h *CraftingHandler) HandlePredecessor(w http.ResponseWriter, r *http.Request) {
	id, ok := GetPathParam(r, w, "id")
	if !ok {
		return
	}

	info, err := h.service.Predecessor(r.Context(), id)
	if err != nil {
		respondServiceError(w, r, ErrMsgPredecessorFailed, err)
		return
	}

	respondJSON(w, http.StatusOK, info)
}

// HandlePlan computes trees, raw materials and sources for a list of demands
// POST /api/v1/plan
func (h *CraftingHandler) HandlePlan(w http.ResponseWriter, r *http.Request) {
	handleAction(w, r, "Plan", http.StatusOK, func(ctx context.Context, req PlanRequest) (*crafting.Plan, error) {
		LogRequestFields(logger.FromContext(ctx), "demands", len(req.Demands))
		return h.service.Plan(ctx, req.Demands)
	})
}
