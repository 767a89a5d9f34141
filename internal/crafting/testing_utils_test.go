package crafting

import (
	"github.com/osse101/ArcPlanner_Go/internal/catalog"
	"github.com/osse101/ArcPlanner_Go/internal/domain"
)

// comps builds an ordered component list from alternating id, count pairs
func comps(pairs ...interface{}) domain.Components {
	out := domain.Components{}
	for i := 0; i+1 < len(pairs); i += 2 {
		out = append(out, domain.Component{ItemID: pairs[i].(string), Quantity: pairs[i+1].(int)})
	}
	return out
}

func leafItem(id string) domain.Item {
	return domain.Item{ID: id, Name: domain.LocalizedString{"en": id}, Type: "Basic Material"}
}

func recipeItem(id string, recipe domain.Components) domain.Item {
	item := leafItem(id)
	item.Recipe = recipe
	return item
}

func upgradeItem(id string, cost domain.Components) domain.Item {
	item := leafItem(id)
	item.UpgradeCost = cost
	return item
}

func recyclable(id string, yields domain.Components) domain.Item {
	item := leafItem(id)
	item.Type = domain.CategoryRecyclable
	item.RecyclesInto = yields
	return item
}

func newTestIndex(items ...domain.Item) *catalog.Index {
	return catalog.NewIndex(items)
}

// setupTestCatalog returns a small catalog covering recipes, an upgrade chain and recyclables
func setupTestCatalog() []domain.Item {
	return []domain.Item{
		leafItem("metal_parts"),
		leafItem("rubber_parts"),
		leafItem("mechanical_components"),
		recipeItem("medkit_standard", comps("fabric", 3, "chemicals", 2)),
		recipeItem("heavy_armor_plate", comps("metal_parts", 4, "rubber_parts", 1)),
		{ID: "anvil_i", Name: domain.LocalizedString{"en": "Anvil I"}, Type: "Hand Cannon", Value: 200, WeightKg: 1.5,
			Recipe: comps("metal_parts", 5, "mechanical_components", 1)},
		{ID: "anvil_ii", Name: domain.LocalizedString{"en": "Anvil II"}, Type: "Hand Cannon", Value: 400, WeightKg: 1.6,
			UpgradeCost: comps("metal_parts", 3, "mechanical_components", 2)},
		recyclable("desktop_fan", comps("mechanical_components", 2, "rubber_parts", 1)),
		{ID: "scanner_tool", Name: domain.LocalizedString{"en": "Scanner"}, Type: "Gadget",
			RecyclesInto: comps("mechanical_components", 2)},
	}
}
