package item

import (
	"context"

	"github.com/osse101/ArcPlanner_Go/internal/domain"
	"github.com/osse101/ArcPlanner_Go/internal/logger"
)

const fallbackUpdatedAt = "11/06/2025"

// FallbackSource serves a small built-in dataset, used when the real catalog
// cannot be reached
type FallbackSource struct{}

// NewFallbackSource creates the built-in source
func NewFallbackSource() *FallbackSource {
	return &FallbackSource{}
}

// Fetch returns a fresh copy of the built-in dataset
func (FallbackSource) Fetch(ctx context.Context) ([]domain.Item, error) {
	items := FallbackItems()
	logger.FromContext(ctx).Info(LogMsgCatalogLoaded, logger.AttrKeySource, "fallback", "items", len(items))
	return items, nil
}

func en(s string) domain.LocalizedString {
	return domain.LocalizedString{domain.LangEnglish: s}
}

// FallbackItems returns the built-in dataset. Every call allocates new records.
func FallbackItems() []domain.Item {
	return []domain.Item{
		{
			ID:            "anvil_i",
			Name:          en("Anvil I"),
			Description:   en("Single-action hand cannon with high damage."),
			Type:          "Hand Cannon",
			Rarity:        domain.RarityUncommon,
			WeightKg:      5,
			Value:         5000,
			ImageFilename: "https://cdn.arctracker.io/items/anvil.png",
			UpdatedAt:     fallbackUpdatedAt,
			IsWeaponFlag:  true,
			Effects:       map[string]domain.Effect{"Magazine Size": {"value": 6.0}},
			Recipe: domain.Components{
				{ItemID: "mechanical_components", Quantity: 5},
				{ItemID: "simple_gun_parts", Quantity: 6},
			},
			RecyclesInto: domain.Components{
				{ItemID: "mechanical_components", Quantity: 2},
				{ItemID: "simple_gun_parts", Quantity: 3},
			},
		},
		{
			ID:            "anvil_ii",
			Name:          en("Anvil II"),
			Description:   en("Upgraded single-action hand cannon."),
			Type:          "Hand Cannon",
			Rarity:        domain.RarityRare,
			WeightKg:      5,
			Value:         7000,
			ImageFilename: "https://cdn.arctracker.io/items/anvil.png",
			UpdatedAt:     fallbackUpdatedAt,
			IsWeaponFlag:  true,
			Effects:       map[string]domain.Effect{"Magazine Size": {"value": 6.0}},
			UpgradeCost: domain.Components{
				{ItemID: "mechanical_components", Quantity: 3},
				{ItemID: "simple_gun_parts", Quantity: 1},
			},
			RecyclesInto: domain.Components{
				{ItemID: "mechanical_components", Quantity: 4},
				{ItemID: "simple_gun_parts", Quantity: 4},
			},
		},
		{
			ID:            "medkit_standard",
			Name:          en("Standard Medkit"),
			Description:   en("Restores health over time."),
			Type:          "Consumable",
			Rarity:        domain.RarityCommon,
			WeightKg:      1.5,
			Value:         1200,
			ImageFilename: "https://picsum.photos/200/200",
			UpdatedAt:     fallbackUpdatedAt,
		},
		{
			ID:            "heavy_armor_plate",
			Name:          en("Heavy Armor Plate"),
			Description:   en("Increases defense significantly."),
			Type:          "Armor",
			Rarity:        domain.RarityRare,
			WeightKg:      8,
			Value:         8500,
			ImageFilename: "https://picsum.photos/201/201",
			UpdatedAt:     fallbackUpdatedAt,
		},
		{
			ID:            "scanner_tool",
			Name:          en("Scanner Tool"),
			Description:   en("Reveals nearby enemies."),
			Type:          "Gadget",
			Rarity:        domain.RarityEpic,
			WeightKg:      2,
			Value:         15000,
			ImageFilename: "https://picsum.photos/202/202",
			UpdatedAt:     fallbackUpdatedAt,
		},
		{
			ID:            "desktop_fan",
			Name:          en("Desktop Fan"),
			Description:   en("A common household item. Useful for parts."),
			Type:          domain.CategoryRecyclable,
			Rarity:        domain.RarityCommon,
			WeightKg:      1,
			Value:         50,
			ImageFilename: "https://picsum.photos/203/203",
			UpdatedAt:     fallbackUpdatedAt,
			RecyclesInto: domain.Components{
				{ItemID: "mechanical_components", Quantity: 2},
			},
		},
	}
}
