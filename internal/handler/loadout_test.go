package handler

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/ArcPlanner_Go/internal/crafting"
	"github.com/osse101/ArcPlanner_Go/internal/loadout"
)

func createLoadout(t *testing.T, env *testEnv) *loadout.Loadout {
	t.Helper()
	w := env.do(t, http.MethodPost, "/api/v1/loadouts", nil)
	require.Equal(t, http.StatusCreated, w.Code)

	var l loadout.Loadout
	decodeBody(t, w, &l)
	require.NotEmpty(t, l.ID)
	return &l
}

func equip(t *testing.T, env *testEnv, id, slot, itemID string) *loadout.Loadout {
	t.Helper()
	w := env.do(t, http.MethodPut, fmt.Sprintf("/api/v1/loadouts/%s/slots/%s", id, slot), EquipRequest{ItemID: itemID})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var l loadout.Loadout
	decodeBody(t, w, &l)
	return &l
}

func TestLoadoutHandler_Lifecycle(t *testing.T) {
	env := newTestEnv()
	l := createLoadout(t, env)
	base := "/api/v1/loadouts/" + l.ID

	l = equip(t, env, l.ID, "weapon1", "anvil_i")
	require.NotNil(t, l.Weapon1)
	assert.Equal(t, "anvil_i", l.Weapon1.ItemID)

	w := env.do(t, http.MethodPut, base+"/mods/1/0", EquipRequest{ItemID: "extended_mag_i"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	equip(t, env, l.ID, "backpack", "broken_radio")
	l = equip(t, env, l.ID, "backpack", "broken_radio")
	require.Len(t, l.Backpack, 1)
	assert.Equal(t, 2, l.Backpack[0].Quantity)

	t.Run("get returns current state", func(t *testing.T) {
		w := env.do(t, http.MethodGet, base, nil)
		require.Equal(t, http.StatusOK, w.Code)

		var got loadout.Loadout
		decodeBody(t, w, &got)
		require.NotNil(t, got.Weapon1Mods[0])
		assert.Equal(t, "extended_mag_i", got.Weapon1Mods[0].ItemID)
	})

	t.Run("adjust quantity clamps at one", func(t *testing.T) {
		w := env.do(t, http.MethodPost, base+"/quantity",
			AdjustQuantityRequest{InstanceID: l.Backpack[0].InstanceID, Delta: 3})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var got loadout.Loadout
		decodeBody(t, w, &got)
		assert.Equal(t, 5, got.Backpack[0].Quantity)

		w = env.do(t, http.MethodPost, base+"/quantity",
			AdjustQuantityRequest{InstanceID: l.Backpack[0].InstanceID, Delta: -10})
		require.Equal(t, http.StatusOK, w.Code)
		decodeBody(t, w, &got)
		assert.Equal(t, 1, got.Backpack[0].Quantity)
	})

	t.Run("plan covers every equipped slot", func(t *testing.T) {
		w := env.do(t, http.MethodGet, base+"/plan", nil)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var plan crafting.Plan
		decodeBody(t, w, &plan)
		require.Len(t, plan.Roots, 3)
		assert.Equal(t, "anvil_i", plan.Roots[0].ItemID)
		assert.Equal(t, "extended_mag_i", plan.Roots[1].ItemID)
		assert.Equal(t, "broken_radio", plan.Roots[2].ItemID)

		// anvil_i: 2 mech (4 metal, 2 rubber) + 4 metal; mag: 1 metal; radio is a raw leaf
		got := map[string]int{}
		for _, req := range plan.Requirements {
			got[req.ItemID] = req.Quantity
		}
		assert.Equal(t, map[string]int{"metal_parts": 9, "rubber_parts": 2, "broken_radio": 1}, got)
	})

	t.Run("remove entries", func(t *testing.T) {
		w := env.do(t, http.MethodDelete, base+"/mods/1/0", nil)
		require.Equal(t, http.StatusOK, w.Code)

		w = env.do(t, http.MethodDelete, base+"/slots/weapon1/"+l.Weapon1.InstanceID, nil)
		require.Equal(t, http.StatusOK, w.Code)

		var got loadout.Loadout
		decodeBody(t, w, &got)
		assert.Nil(t, got.Weapon1)
		assert.Nil(t, got.Weapon1Mods[0])
	})

	t.Run("delete", func(t *testing.T) {
		w := env.do(t, http.MethodDelete, base, nil)
		require.Equal(t, http.StatusOK, w.Code)

		w = env.do(t, http.MethodGet, base, nil)
		assertErrorBody(t, w, http.StatusNotFound, ErrMsgLoadoutNotFoundError)
	})
}

func TestLoadoutHandler_Errors(t *testing.T) {
	env := newTestEnv()
	l := createLoadout(t, env)
	base := "/api/v1/loadouts/" + l.ID

	tests := []struct {
		name       string
		method     string
		path       string
		body       interface{}
		wantStatus int
		wantError  string
	}{
		{"unknown loadout", http.MethodGet, "/api/v1/loadouts/missing", nil, http.StatusNotFound, ErrMsgLoadoutNotFoundError},
		{"unknown slot", http.MethodPut, base + "/slots/hat", EquipRequest{ItemID: "anvil_i"}, http.StatusBadRequest, ErrMsgInvalidSlotParam},
		{"slot mismatch", http.MethodPut, base + "/slots/shield", EquipRequest{ItemID: "anvil_i"}, http.StatusBadRequest, ErrMsgSlotMismatchError},
		{"mods need mod route", http.MethodPut, base + "/slots/modification", EquipRequest{ItemID: "extended_mag_i"}, http.StatusBadRequest, ErrMsgInvalidSlotError},
		{"unknown item", http.MethodPut, base + "/slots/backpack", EquipRequest{ItemID: "ghost"}, http.StatusNotFound, ErrMsgItemNotFoundError},
		{"bad weapon", http.MethodPut, base + "/mods/3/0", EquipRequest{ItemID: "extended_mag_i"}, http.StatusBadRequest, ErrMsgInvalidWeapon},
		{"non-numeric index", http.MethodPut, base + "/mods/1/x", EquipRequest{ItemID: "extended_mag_i"}, http.StatusBadRequest, fmt.Sprintf(ErrMsgInvalidIntParam, "index")},
		{"index out of range", http.MethodPut, base + "/mods/1/4", EquipRequest{ItemID: "extended_mag_i"}, http.StatusBadRequest, ErrMsgInvalidSlotError},
		{"weapon as mod", http.MethodPut, base + "/mods/2/0", EquipRequest{ItemID: "anvil_i"}, http.StatusBadRequest, ErrMsgSlotMismatchError},
		{"remove missing entry", http.MethodDelete, base + "/slots/shield/nope", nil, http.StatusNotFound, ErrMsgEntryNotFoundError},
		{"adjust missing entry", http.MethodPost, base + "/quantity",
			AdjustQuantityRequest{InstanceID: "1b4e28ba-2fa1-11d2-883f-0016d3cca427", Delta: 1}, http.StatusNotFound, ErrMsgEntryNotFoundError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := env.do(t, tt.method, tt.path, tt.body)
			assertErrorBody(t, w, tt.wantStatus, tt.wantError)
		})
	}

	t.Run("zero delta fails validation", func(t *testing.T) {
		w := env.do(t, http.MethodPost, base+"/quantity", `{"instance_id":"1b4e28ba-2fa1-11d2-883f-0016d3cca427","delta":0}`)
		require.Equal(t, http.StatusBadRequest, w.Code)

		var resp ValidationErrorResponse
		decodeBody(t, w, &resp)
		assert.Contains(t, resp.Fields, "delta")
	})

	t.Run("item id with whitespace fails validation", func(t *testing.T) {
		w := env.do(t, http.MethodPut, base+"/slots/backpack", `{"item_id":"metal parts"}`)
		require.Equal(t, http.StatusBadRequest, w.Code)

		var resp ValidationErrorResponse
		decodeBody(t, w, &resp)
		assert.Equal(t, "Invalid item id", resp.Fields["itemid"])
	})
}
