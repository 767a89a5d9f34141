package domain

// SlotType names an equipment slot a loadout entry can occupy
type SlotType string

const (
	SlotWeapon1   SlotType = "weapon1"
	SlotWeapon2   SlotType = "weapon2"
	SlotShield    SlotType = "shield"
	SlotAugment   SlotType = "augment"
	SlotBackpack  SlotType = "backpack"
	SlotWeaponMod SlotType = "modification"
)

// ModSlotsPerWeapon is the fixed number of modification slots on each weapon
const ModSlotsPerWeapon = 4

// ParseSlotType validates a slot name
func ParseSlotType(s string) (SlotType, bool) {
	switch SlotType(s) {
	case SlotWeapon1, SlotWeapon2, SlotShield, SlotAugment, SlotBackpack, SlotWeaponMod:
		return SlotType(s), true
	}
	return "", false
}

// Accepts reports whether an item may be placed in this slot
func (s SlotType) Accepts(item *Item) bool {
	switch s {
	case SlotWeapon1, SlotWeapon2:
		return item.IsWeapon()
	case SlotShield:
		return TypeContainsAny(item.Type, "armor", "helmet", "shield")
	case SlotAugment:
		return TypeContainsAny(item.Type, "augment", "gadget")
	case SlotWeaponMod:
		return TypeContainsAny(item.Type, "mod", "attachment")
	case SlotBackpack:
		return true
	}
	return false
}
