package handler

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/osse101/ArcPlanner_Go/internal/catalog"
	"github.com/osse101/ArcPlanner_Go/internal/crafting"
	"github.com/osse101/ArcPlanner_Go/internal/domain"
	"github.com/osse101/ArcPlanner_Go/internal/loadout"
)

func testItems() []domain.Item {
	c := func(id string, n int) domain.Component { return domain.Component{ItemID: id, Quantity: n} }
	return []domain.Item{
		{ID: "metal_parts", Name: domain.LocalizedString{"en": "Metal Parts"}, Type: "Basic Material"},
		{ID: "rubber_parts", Name: domain.LocalizedString{"en": "Rubber Parts"}, Type: "Basic Material"},
		{ID: "mechanical_components", Name: domain.LocalizedString{"en": "Mechanical Components"}, Type: "Refined Material",
			Rarity: domain.RarityUncommon, Recipe: domain.Components{c("metal_parts", 2), c("rubber_parts", 1)}},
		{ID: "anvil_i", Name: domain.LocalizedString{"en": "Anvil I"}, Type: "Hand Cannon", IsWeaponFlag: true,
			Rarity: domain.RarityRare, Value: 200, WeightKg: 1.5,
			Recipe: domain.Components{c("mechanical_components", 2), c("metal_parts", 4)}},
		{ID: "anvil_ii", Name: domain.LocalizedString{"en": "Anvil II"}, Type: "Hand Cannon", IsWeaponFlag: true,
			Rarity: domain.RarityRare, Value: 400, WeightKg: 1.6,
			UpgradeCost: domain.Components{c("metal_parts", 3)}},
		{ID: "extended_mag_i", Name: domain.LocalizedString{"en": "Extended Mag I"}, Type: "Modification",
			Recipe: domain.Components{c("metal_parts", 1)}},
		{ID: "light_shield", Name: domain.LocalizedString{"en": "Light Shield"}, Type: "Shield",
			Recipe: domain.Components{c("rubber_parts", 2)}},
		{ID: "broken_radio", Name: domain.LocalizedString{"en": "Broken Radio"}, Type: domain.CategoryRecyclable,
			RecyclesInto: domain.Components{c("metal_parts", 2)}},
	}
}

// testEnv holds real services over a static catalog, routed the same way as the server
type testEnv struct {
	store    *catalog.Store
	planner  crafting.Service
	loadouts loadout.Service
	router   chi.Router
}

func newTestEnv() *testEnv {
	store := catalog.NewStaticStore(testItems())
	planner := crafting.NewService(store, 0)
	loadouts := loadout.NewService(loadout.NewStore(16, time.Hour), store, planner)

	items := NewItemHandler(store)
	craft := NewCraftingHandler(planner)
	lh := NewLoadoutHandler(loadouts)

	r := chi.NewRouter()
	r.Get("/api/v1/categories", items.HandleCategories)
	r.Get("/api/v1/items", items.HandleList)
	r.Get("/api/v1/items/{id}", items.HandleGet)
	r.Get("/api/v1/items/{id}/tree", craft.HandleTree)
	r.Get("/api/v1/items/{id}/predecessor", craft.HandlePredecessor)
	r.Post("/api/v1/plan", craft.HandlePlan)
	r.Post("/api/v1/loadouts", lh.HandleCreate)
	r.Get("/api/v1/loadouts/{id}", lh.HandleGet)
	r.Delete("/api/v1/loadouts/{id}", lh.HandleDelete)
	r.Put("/api/v1/loadouts/{id}/slots/{slot}", lh.HandleEquip)
	r.Delete("/api/v1/loadouts/{id}/slots/{slot}/{instanceID}", lh.HandleUnequip)
	r.Put("/api/v1/loadouts/{id}/mods/{weapon}/{index}", lh.HandleEquipMod)
	r.Delete("/api/v1/loadouts/{id}/mods/{weapon}/{index}", lh.HandleUnequipMod)
	r.Post("/api/v1/loadouts/{id}/quantity", lh.HandleAdjustQuantity)
	r.Get("/api/v1/loadouts/{id}/plan", lh.HandlePlan)

	return &testEnv{store: store, planner: planner, loadouts: loadouts, router: r}
}

func (e *testEnv) do(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if s, ok := body.(string); ok {
			buf.WriteString(s)
		} else {
			require.NoError(t, json.NewEncoder(&buf).Encode(body))
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), v), w.Body.String())
}

func assertErrorBody(t *testing.T, w *httptest.ResponseRecorder, status int, message string) {
	t.Helper()
	require.Equal(t, status, w.Code, w.Body.String())
	var resp ErrorResponse
	decodeBody(t, w, &resp)
	require.Equal(t, message, resp.Error)
}
