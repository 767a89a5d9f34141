package item

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/ArcPlanner_Go/internal/domain"
)

func TestItemLoader_Parse(t *testing.T) {
	loader := NewLoader()
	ctx := context.Background()

	t.Run("array of records", func(t *testing.T) {
		data := `[
			{"id": "metal_parts", "name": {"en": "Metal Parts"}, "type": "Basic Material", "rarity": "common"},
			{"id": "anvil_ii", "name": {"en": "Anvil II"}, "type": "Hand Cannon", "rarity": "RARE",
			 "weightKg": 5, "value": 7000, "isWeapon": true,
			 "upgradeCost": {"simple_gun_parts": 1, "mechanical_components": 3}}
		]`
		items, err := loader.Parse(ctx, []byte(data), "test.json")
		require.NoError(t, err)
		require.Len(t, items, 2)

		anvil := items[1]
		assert.Equal(t, "Anvil II", anvil.DisplayName())
		assert.Equal(t, domain.RarityRare, anvil.Rarity)
		assert.True(t, anvil.IsWeapon())
		assert.Equal(t, domain.Components{
			{ItemID: "simple_gun_parts", Quantity: 1},
			{ItemID: "mechanical_components", Quantity: 3},
		}, anvil.UpgradeCost)
	})

	t.Run("single record object", func(t *testing.T) {
		items, err := loader.Parse(ctx, []byte(`{"id": "desktop_fan", "type": "Recyclable", "recyclesInto": {"mechanical_components": 2}}`), "desktop_fan.json")
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.True(t, items[0].IsRecyclable())
	})

	t.Run("invalid records are skipped", func(t *testing.T) {
		data := `[
			{"id": "ok"},
			{"name": {"en": "no id"}},
			{"id": "bad_count", "recipe": {"metal_parts": 0}},
			{"id": "heavy", "weightKg": -2}
		]`
		items, err := loader.Parse(ctx, []byte(data), "mixed.json")
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, "ok", items[0].ID)
	})

	t.Run("malformed document", func(t *testing.T) {
		_, err := loader.Parse(ctx, []byte(`[{"id": `), "broken.json")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "broken.json")
	})

	t.Run("empty document", func(t *testing.T) {
		_, err := loader.Parse(ctx, []byte("  "), "empty.json")
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

func TestItemLoader_Validate(t *testing.T) {
	loader := NewLoader()

	tests := []struct {
		name    string
		item    domain.Item
		wantErr bool
	}{
		{"valid leaf", domain.Item{ID: "metal_parts"}, false},
		{"valid recipe", domain.Item{ID: "kit", Recipe: domain.Components{{ItemID: "a", Quantity: 2}}}, false},
		{"empty id", domain.Item{}, true},
		{"negative weight", domain.Item{ID: "x", WeightKg: -1}, true},
		{"negative value", domain.Item{ID: "x", Value: -1}, true},
		{"zero recipe count", domain.Item{ID: "x", Recipe: domain.Components{{ItemID: "a", Quantity: 0}}}, true},
		{"negative upgrade count", domain.Item{ID: "x", UpgradeCost: domain.Components{{ItemID: "a", Quantity: -1}}}, true},
		{"empty yield id", domain.Item{ID: "x", RecyclesInto: domain.Components{{ItemID: "", Quantity: 1}}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := loader.Validate(&tt.item)
			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrInvalidItem)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
