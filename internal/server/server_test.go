package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/ArcPlanner_Go/internal/catalog"
	"github.com/osse101/ArcPlanner_Go/internal/crafting"
	"github.com/osse101/ArcPlanner_Go/internal/domain"
	"github.com/osse101/ArcPlanner_Go/internal/loadout"
)

type staticSource struct {
	items []domain.Item
}

func (s staticSource) Fetch(ctx context.Context) ([]domain.Item, error) {
	return s.items, nil
}

func testItems() []domain.Item {
	return []domain.Item{
		{ID: "metal_parts", Type: "Basic Material"},
		{ID: "anvil_i", Type: "Hand Cannon", IsWeaponFlag: true,
			Recipe: domain.Components{{ItemID: "metal_parts", Quantity: 4}}},
	}
}

func newTestRouter(t *testing.T, apiKey string, loaded bool) http.Handler {
	t.Helper()
	store := catalog.NewStore(staticSource{items: testItems()}, nil)
	if loaded {
		require.NoError(t, store.Refresh(context.Background()))
	}
	planner := crafting.NewService(store, 0)
	loadouts := loadout.NewService(loadout.NewStore(8, time.Hour), store, planner)

	return NewRouter(Options{
		AdminAPIKey: apiKey,
		ServiceName: "arc-planner",
		Version:     "1.2.3",
	}, Services{Catalog: store, Planner: planner, Loadouts: loadouts})
}

func serve(h http.Handler, method, path string, body string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestRouter_Routes(t *testing.T) {
	h := newTestRouter(t, "secret", true)

	tests := []struct {
		method string
		path   string
		body   string
		want   int
	}{
		{http.MethodGet, "/healthz", "", http.StatusOK},
		{http.MethodGet, "/readyz", "", http.StatusOK},
		{http.MethodGet, "/version", "", http.StatusOK},
		{http.MethodGet, "/metrics", "", http.StatusOK},
		{http.MethodGet, "/api/v1/categories", "", http.StatusOK},
		{http.MethodGet, "/api/v1/items", "", http.StatusOK},
		{http.MethodGet, "/api/v1/items/anvil_i", "", http.StatusOK},
		{http.MethodGet, "/api/v1/items/anvil_i/tree?quantity=3", "", http.StatusOK},
		{http.MethodGet, "/api/v1/items/anvil_i/predecessor", "", http.StatusOK},
		{http.MethodPost, "/api/v1/plan", `{"demands":[{"item_id":"anvil_i","quantity":1}]}`, http.StatusOK},
		{http.MethodPost, "/api/v1/loadouts", "", http.StatusCreated},
		{http.MethodGet, "/api/v1/loadouts/missing", "", http.StatusNotFound},
		{http.MethodGet, "/api/v1/nope", "", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rec := serve(h, tt.method, tt.path, tt.body, nil)
			assert.Equal(t, tt.want, rec.Code, rec.Body.String())
		})
	}
}

func TestRouter_VersionBody(t *testing.T) {
	h := newTestRouter(t, "", true)

	rec := serve(h, http.MethodGet, "/version", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "arc-planner", body["service"])
	assert.Equal(t, "1.2.3", body["version"])
}

func TestRouter_ReadyzBeforeLoad(t *testing.T) {
	h := newTestRouter(t, "", false)

	assert.Equal(t, http.StatusServiceUnavailable, serve(h, http.MethodGet, "/readyz", "", nil).Code)
	assert.Equal(t, http.StatusServiceUnavailable, serve(h, http.MethodGet, "/api/v1/items", "", nil).Code)
}

func TestRouter_AdminRefresh(t *testing.T) {
	tests := []struct {
		name   string
		apiKey string
		sent   string
		want   int
	}{
		{"valid key", "secret", "secret", http.StatusOK},
		{"wrong key", "secret", "guess", http.StatusUnauthorized},
		{"missing key", "secret", "", http.StatusUnauthorized},
		{"admin disabled", "", "", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestRouter(t, tt.apiKey, false)
			headers := map[string]string{}
			if tt.sent != "" {
				headers[HeaderAPIKey] = tt.sent
			}

			rec := serve(h, http.MethodPost, "/api/v1/admin/catalog/refresh", "", headers)
			assert.Equal(t, tt.want, rec.Code, rec.Body.String())
			if tt.want == http.StatusOK {
				assert.Contains(t, rec.Body.String(), `"items":2`)
				assert.Equal(t, http.StatusOK, serve(h, http.MethodGet, "/readyz", "", nil).Code)
			}
		})
	}
}

func TestRouter_RequestID(t *testing.T) {
	h := newTestRouter(t, "", true)

	rec := serve(h, http.MethodGet, "/api/v1/items", "", nil)
	assert.NotEmpty(t, rec.Header().Get(HeaderRequestID))

	rec = serve(h, http.MethodGet, "/api/v1/items", "", map[string]string{HeaderRequestID: "req-42"})
	assert.Equal(t, "req-42", rec.Header().Get(HeaderRequestID))

	rec = serve(h, http.MethodGet, "/healthz", "", nil)
	assert.Empty(t, rec.Header().Get(HeaderRequestID))
}

func TestRouter_BodyLimit(t *testing.T) {
	store := catalog.NewStaticStore(testItems())
	planner := crafting.NewService(store, 0)
	h := NewRouter(Options{MaxBodyBytes: 32}, Services{
		Catalog:  store,
		Planner:  planner,
		Loadouts: loadout.NewService(loadout.NewStore(8, time.Hour), store, planner),
	})

	body := `{"demands":[{"item_id":"anvil_i","quantity":1},{"item_id":"anvil_i","quantity":1}]}`
	rec := serve(h, http.MethodPost, "/api/v1/plan", body, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestExtractIP(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.0.0.1:5555"
	req.Header.Set(HeaderForwardedFor, "1.1.1.1, 2.2.2.2")

	assert.Equal(t, "10.0.0.1", clientIP(req, nil))
	assert.Equal(t, "2.2.2.2", clientIP(req, []string{"10.0.0.1"}))
}
