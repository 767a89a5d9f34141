package item

import (
	"sort"
	"strings"

	"github.com/osse101/ArcPlanner_Go/internal/domain"
)

var (
	quickUseKeywords = []string{
		"quick", "consumable", "med", "health", "grenade", "gadget", "stim", "tool",
		"utility", "throwable", "deployable", "mine", "trap", "sensor", "scanner", "kit",
	}
	weaponKeywords = []string{
		"weapon", "rifle", "gun", "launcher", "melee", "pistol", "cannon", "shotgun", "smg", "sniper",
	}
	modKeywords = []string{"mod", "attachment", "scope", "barrel", "magazine"}
)

// Category returns the browse category of an item. Weapons report their own
// type (e.g. "Hand Cannon"). Materials and junk have no category.
// Checks run in priority order: quick-use gadgets win over the weapon flag.
func Category(item *domain.Item) (string, bool) {
	t := strings.ToLower(item.Type)
	name := strings.ToLower(item.Name.En(""))

	switch {
	case strings.Contains(t, "ammo") || strings.Contains(name, "ammo") || strings.Contains(t, "ammunition"):
		return domain.BrowseCategoryAmmunition, true
	case domain.TypeContainsAny(t, "armor", "shield", "helmet", "chest"):
		return domain.BrowseCategoryShield, true
	case domain.TypeContainsAny(t, quickUseKeywords...):
		return domain.BrowseCategoryQuickUse, true
	case item.IsWeaponFlag || domain.TypeContainsAny(t, weaponKeywords...):
		if item.Type == "" {
			return domain.BrowseCategoryWeapon, true
		}
		return item.Type, true
	case domain.TypeContainsAny(t, modKeywords...):
		return domain.BrowseCategoryModification, true
	case strings.Contains(t, "augment"):
		return domain.BrowseCategoryAugment, true
	}
	return "", false
}

// Tabs lists the browse filters for a catalog: All, the weapon types present
// in sorted order, then the fixed categories
func Tabs(items []domain.Item) []string {
	fixed := make(map[string]bool, len(domain.FixedBrowseCategories))
	for _, c := range domain.FixedBrowseCategories {
		fixed[c] = true
	}

	seen := map[string]bool{}
	var weaponTypes []string
	for i := range items {
		cat, ok := Category(&items[i])
		if !ok || fixed[cat] || seen[cat] {
			continue
		}
		seen[cat] = true
		weaponTypes = append(weaponTypes, cat)
	}
	sort.Strings(weaponTypes)

	tabs := make([]string, 0, 1+len(weaponTypes)+len(domain.FixedBrowseCategories))
	tabs = append(tabs, domain.BrowseCategoryAll)
	tabs = append(tabs, weaponTypes...)
	return append(tabs, domain.FixedBrowseCategories...)
}

// Filter selects browse results.
//
// An empty category matches every item, including uncategorized materials.
// "All" matches every categorized item. Any other value must equal the
// item's category. rarity, when non-empty, must equal the item's rarity
// (any case). query is a case-insensitive substring of the English name.
func Filter(items []domain.Item, category, rarity, query string) []domain.Item {
	query = strings.ToLower(strings.TrimSpace(query))
	rarity = strings.TrimSpace(rarity)

	out := []domain.Item{}
	for i := range items {
		item := &items[i]

		if category != "" {
			cat, ok := Category(item)
			if !ok {
				continue
			}
			if category != domain.BrowseCategoryAll && cat != category {
				continue
			}
		}
		if rarity != "" && !strings.EqualFold(item.Rarity.String(), rarity) {
			continue
		}
		if query != "" && !strings.Contains(strings.ToLower(item.DisplayName()), query) {
			continue
		}
		out = append(out, *item)
	}
	return out
}
