package domain

// Language codes used in localized item text
const (
	LangEnglish = "en"
)

// Item categories with planner semantics. Category matching is exact and case-sensitive.
const (
	// CategoryRecyclable marks items that exist to be broken down into materials
	CategoryRecyclable = "Recyclable"
)

// Browse categories assigned by the item browser filter
const (
	BrowseCategoryAll          = "All"
	BrowseCategoryAmmunition   = "Ammunition"
	BrowseCategoryShield       = "Shield"
	BrowseCategoryQuickUse     = "Quick use"
	BrowseCategoryModification = "Modification"
	BrowseCategoryAugment      = "Augment"
	BrowseCategoryWeapon       = "Weapon"
)

// FixedBrowseCategories are always offered as filters, after the dynamic weapon types
var FixedBrowseCategories = []string{
	BrowseCategoryAmmunition,
	BrowseCategoryShield,
	BrowseCategoryQuickUse,
	BrowseCategoryModification,
	BrowseCategoryAugment,
}

// TierSuffixes is the ordered roman-numeral tier sequence used in item ids (anvil_ii)
var TierSuffixes = []string{"i", "ii", "iii", "iv", "v", "vi", "vii", "viii", "ix", "x"}

// TierDelimiter separates the tier suffix from the rest of an item id
const TierDelimiter = "_"
