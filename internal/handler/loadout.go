package handler

import (
	"context"
	"net/http"

	"github.com/osse101/ArcPlanner_Go/internal/domain"
	"github.com/osse101/ArcPlanner_Go/internal/loadout"
	"github.com/osse101/ArcPlanner_Go/internal/logger"
)

// EquipRequest names the catalog item to place in a slot
type EquipRequest struct {
	ItemID string `json:"item_id" validate:"required,max=128,itemid"`
}

// AdjustQuantityRequest changes the count of a backpack entry
type AdjustQuantityRequest struct {
	InstanceID string `json:"instance_id" validate:"required,uuid"`
	Delta      int    `json:"delta" validate:"ne=0,min=-1000,max=1000"`
}

// LoadoutHandler serves the loadout endpoints
type LoadoutHandler struct {
	service loadout.Service
}

// NewLoadoutHandler creates a new loadout handler
func NewLoadoutHandler(service loadout.Service) *LoadoutHandler {
	return &LoadoutHandler{service: service}
}

// HandleCreate starts an empty loadout
// POST /api/v1/loadouts
func (h *LoadoutHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	l, err := h.service.Create(r.Context())
	if err != nil {
		respondServiceError(w, r, ErrMsgCreateLoadoutFailed, err)
		return
	}
	respondJSON(w, http.StatusCreated, l)
}

// HandleGet returns a loadout
// GET /api/v1/loadouts/{id}
func (h *LoadoutHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := GetPathParam(r, w, "id")
	if !ok {
		return
	}
	l, err := h.service.Get(r.Context(), id)
	if err != nil {
		respondServiceError(w, r, ErrMsgGetLoadoutFailed, err)
		return
	}
	respondJSON(w, http.StatusOK, l)
}

// HandleDelete discards a loadout
// DELETE /api/v1/loadouts/{id}
func (h *LoadoutHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := GetPathParam(r, w, "id")
	if !ok {
		return
	}
	if err := h.service.Delete(r.Context(), id); err != nil {
		respondServiceError(w, r, ErrMsgDeleteLoadoutFailed, err)
		return
	}
	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgLoadoutDeleted})
}

// HandleEquip places an item in a slot
// PUT /api/v1/loadouts/{id}/slots/{slot}
func (h *LoadoutHandler) HandleEquip(w http.ResponseWriter, r *http.Request) {
	id, ok := GetPathParam(r, w, "id")
	if !ok {
		return
	}
	slot, ok := h.slotParam(w, r)
	if !ok {
		return
	}

	handleAction(w, r, "Equip item", http.StatusOK, func(ctx context.Context, req EquipRequest) (*loadout.Loadout, error) {
		LogRequestFields(logger.FromContext(ctx), logger.AttrKeyLoadoutID, id, "slot", slot, logger.AttrKeyItemID, req.ItemID)
		return h.service.Equip(ctx, id, slot, req.ItemID)
	})
}

// HandleUnequip removes an entry from a slot
// DELETE /api/v1/loadouts/{id}/slots/{slot}/{instanceID}
func (h *LoadoutHandler) HandleUnequip(w http.ResponseWriter, r *http.Request) {
	id, ok := GetPathParam(r, w, "id")
	if !ok {
		return
	}
	slot, ok := h.slotParam(w, r)
	if !ok {
		return
	}
	instanceID, ok := GetPathParam(r, w, "instanceID")
	if !ok {
		return
	}

	l, err := h.service.Remove(r.Context(), id, slot, instanceID)
	if err != nil {
		respondServiceError(w, r, ErrMsgUnequipFailed, err)
		return
	}
	respondJSON(w, http.StatusOK, l)
}

// HandleEquipMod places a modification on a weapon
// PUT /api/v1/loadouts/{id}/mods/{weapon}/{index}
func (h *LoadoutHandler) HandleEquipMod(w http.ResponseWriter, r *http.Request) {
	id, weapon, index, ok := h.modParams(w, r)
	if !ok {
		return
	}

	handleAction(w, r, "Equip mod", http.StatusOK, func(ctx context.Context, req EquipRequest) (*loadout.Loadout, error) {
		return h.service.EquipMod(ctx, id, weapon, index, req.ItemID)
	})
}

// HandleUnequipMod clears a modification slot
// DELETE /api/v1/loadouts/{id}/mods/{weapon}/{index}
func (h *LoadoutHandler) HandleUnequipMod(w http.ResponseWriter, r *http.Request) {
	id, weapon, index, ok := h.modParams(w, r)
	if !ok {
		return
	}

	l, err := h.service.RemoveMod(r.Context(), id, weapon, index)
	if err != nil {
		respondServiceError(w, r, ErrMsgUnequipFailed, err)
		return
	}
	respondJSON(w, http.StatusOK, l)
}

// HandleAdjustQuantity changes how many of a backpack item are carried
// POST /api/v1/loadouts/{id}/quantity
func (h *LoadoutHandler) HandleAdjustQuantity(w http.ResponseWriter, r *http.Request) {
	id, ok := GetPathParam(r, w, "id")
	if !ok {
		return
	}

	handleAction(w, r, "Adjust quantity", http.StatusOK, func(ctx context.Context, req AdjustQuantityRequest) (*loadout.Loadout, error) {
		return h.service.AdjustQuantity(ctx, id, req.InstanceID, req.Delta)
	})
}

// HandlePlan computes the crafting plan for everything equipped
// GET /api/v1/loadouts/{id}/plan
func (h *LoadoutHandler) HandlePlan(w http.ResponseWriter, r *http.Request) {
	id, ok := GetPathParam(r, w, "id")
	if !ok {
		return
	}
	plan, err := h.service.Plan(r.Context(), id)
	if err != nil {
		respondServiceError(w, r, ErrMsgLoadoutPlanFailed, err)
		return
	}
	respondJSON(w, http.StatusOK, plan)
}

func (h *LoadoutHandler) slotParam(w http.ResponseWriter, r *http.Request) (domain.SlotType, bool) {
	raw, ok := GetPathParam(r, w, "slot")
	if !ok {
		return "", false
	}
	slot, valid := domain.ParseSlotType(raw)
	if !valid {
		respondError(w, http.StatusBadRequest, ErrMsgInvalidSlotParam)
		return "", false
	}
	return slot, true
}

func (h *LoadoutHandler) modParams(w http.ResponseWriter, r *http.Request) (id string, weapon, index int, ok bool) {
	if id, ok = GetPathParam(r, w, "id"); !ok {
		return
	}
	if weapon, ok = GetIntPathParam(r, w, "weapon"); !ok {
		return
	}
	if weapon != loadout.WeaponPrimary && weapon != loadout.WeaponSecondary {
		respondError(w, http.StatusBadRequest, ErrMsgInvalidWeapon)
		return id, weapon, index, false
	}
	index, ok = GetIntPathParam(r, w, "index")
	return
}
