package domain

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// LocalizedString maps a language code to text. "en" is the display fallback.
type LocalizedString map[string]string

// En returns the English text, or fallback when none is set
func (s LocalizedString) En(fallback string) string {
	if v := s[LangEnglish]; v != "" {
		return v
	}
	return fallback
}

// Effect is a single named stat on an item (e.g. "Magazine Size": {value: 6}).
// Value is kept as decoded JSON since the upstream data mixes strings and numbers.
type Effect map[string]interface{}

// Item is a catalog record as published by the upstream item dataset.
// Records are immutable once loaded; nothing in the planner writes to them.
type Item struct {
	ID            string            `json:"id"`
	Name          LocalizedString   `json:"name"`
	Description   LocalizedString   `json:"description,omitempty"`
	Type          string            `json:"type"`
	Rarity        Rarity            `json:"rarity"`
	WeightKg      float64           `json:"weightKg"`
	Value         float64           `json:"value"`
	ImageFilename string            `json:"imageFilename"`
	UpdatedAt     string            `json:"updatedAt,omitempty"`
	Recipe        Components        `json:"recipe,omitempty"`
	UpgradeCost   Components        `json:"upgradeCost,omitempty"`
	RecyclesInto  Components        `json:"recyclesInto,omitempty"`
	SalvagesInto  Components        `json:"salvagesInto,omitempty"`
	IsWeaponFlag  bool              `json:"isWeapon,omitempty"`
	Effects       map[string]Effect `json:"effects,omitempty"`
	CraftBench    string            `json:"craftBench,omitempty"`
	Slot          string            `json:"slot,omitempty"`
}

// DisplayName returns the English name, or the id when the record has none
func (i *Item) DisplayName() string {
	return i.Name.En(i.ID)
}

// IsWeapon reports whether the item is flagged as a weapon or its type reads like one
func (i *Item) IsWeapon() bool {
	if i.IsWeaponFlag {
		return true
	}
	return typeContainsAny(i.Type, "weapon", "gun", "rifle")
}

// IsRecyclable reports whether the item is a recycling source candidate:
// exact recyclable category and at least one yield entry.
func (i *Item) IsRecyclable() bool {
	return i.Type == CategoryRecyclable && len(i.RecyclesInto) > 0
}

// Composition classifies how the item is produced.
// A plain recipe takes precedence over an upgrade cost; empty mappings count as absent.
func (i *Item) Composition() Composition {
	switch {
	case len(i.Recipe) > 0:
		return Composition{Kind: CompositionRecipe, Components: i.Recipe}
	case len(i.UpgradeCost) > 0:
		return Composition{Kind: CompositionUpgrade, Components: i.UpgradeCost}
	default:
		return Composition{Kind: CompositionLeaf}
	}
}

func typeContainsAny(itemType string, needles ...string) bool {
	t := strings.ToLower(itemType)
	for _, n := range needles {
		if strings.Contains(t, n) {
			return true
		}
	}
	return false
}

// TypeContainsAny is the case-insensitive substring test used by slot and browse predicates
func TypeContainsAny(itemType string, needles ...string) bool {
	return typeContainsAny(itemType, needles...)
}

// Rarity is an ordered quality tier
type Rarity int

const (
	RarityCommon Rarity = iota
	RarityUncommon
	RarityRare
	RarityEpic
	RarityLegendary
)

var rarityNames = [...]string{"common", "uncommon", "rare", "epic", "legendary"}

var titleCaser = cases.Title(language.English)

// ParseRarity parses a rarity name case-insensitively. Unknown or empty values are Common.
func ParseRarity(s string) Rarity {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range rarityNames {
		if name == s {
			return Rarity(i)
		}
	}
	return RarityCommon
}

// String returns the lower-case rarity name
func (r Rarity) String() string {
	if r < RarityCommon || r > RarityLegendary {
		return rarityNames[RarityCommon]
	}
	return rarityNames[r]
}

// Display returns the title-cased rarity name (e.g. "Legendary")
func (r Rarity) Display() string {
	return titleCaser.String(r.String())
}

// MarshalText encodes the rarity in display form, matching the upstream dataset
func (r Rarity) MarshalText() ([]byte, error) {
	return []byte(r.Display()), nil
}

// UnmarshalText accepts any casing; unrecognized values decode as Common
func (r *Rarity) UnmarshalText(text []byte) error {
	*r = ParseRarity(string(text))
	return nil
}
