package item

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/ArcPlanner_Go/internal/domain"
)

func TestCategory(t *testing.T) {
	tests := []struct {
		name   string
		item   domain.Item
		want   string
		wantOK bool
	}{
		{"ammo by type", domain.Item{Type: "Light Ammo"}, domain.BrowseCategoryAmmunition, true},
		{"ammo by name", domain.Item{Type: "Consumable", Name: domain.LocalizedString{"en": "Heavy Ammo Box"}}, domain.BrowseCategoryAmmunition, true},
		{"armor is shield", domain.Item{Type: "Armor"}, domain.BrowseCategoryShield, true},
		{"helmet is shield", domain.Item{Type: "Helmet"}, domain.BrowseCategoryShield, true},
		{"gadget before weapon flag", domain.Item{Type: "Grenade", IsWeaponFlag: true}, domain.BrowseCategoryQuickUse, true},
		{"medkit", domain.Item{Type: "Consumable"}, domain.BrowseCategoryQuickUse, true},
		{"weapon keeps type", domain.Item{Type: "Hand Cannon"}, "Hand Cannon", true},
		{"flagged weapon without type", domain.Item{IsWeaponFlag: true}, domain.BrowseCategoryWeapon, true},
		{"assault rifle", domain.Item{Type: "Assault Rifle"}, "Assault Rifle", true},
		{"scope is modification", domain.Item{Type: "Scope"}, domain.BrowseCategoryModification, true},
		{"augment", domain.Item{Type: "Augment"}, domain.BrowseCategoryAugment, true},
		{"material has none", domain.Item{Type: "Basic Material"}, "", false},
		{"recyclable has none", domain.Item{Type: domain.CategoryRecyclable}, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Category(&tt.item)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTabs(t *testing.T) {
	items := []domain.Item{
		{ID: "a", Type: "Shotgun"},
		{ID: "b", Type: "Hand Cannon"},
		{ID: "c", Type: "Hand Cannon"},
		{ID: "d", Type: "Armor"},
		{ID: "e", Type: "Basic Material"},
	}

	tabs := Tabs(items)

	want := append([]string{domain.BrowseCategoryAll, "Hand Cannon", "Shotgun"}, domain.FixedBrowseCategories...)
	assert.Equal(t, want, tabs)
}

func TestFilter(t *testing.T) {
	items := FallbackItems()

	names := func(list []domain.Item) []string {
		out := []string{}
		for _, it := range list {
			out = append(out, it.ID)
		}
		return out
	}

	assert.Len(t, Filter(items, "", "", ""), len(items))
	assert.Equal(t, []string{"anvil_i", "anvil_ii", "medkit_standard", "heavy_armor_plate", "scanner_tool"},
		names(Filter(items, domain.BrowseCategoryAll, "", "")))
	assert.Equal(t, []string{"anvil_i", "anvil_ii"}, names(Filter(items, "Hand Cannon", "", "")))
	assert.Equal(t, []string{"anvil_ii", "heavy_armor_plate"}, names(Filter(items, "", "rare", "")))
	assert.Equal(t, []string{"anvil_ii"}, names(Filter(items, "", "", "ANVIL ii")))
	assert.Empty(t, Filter(items, domain.BrowseCategoryAugment, "", ""))
}
