package loadout

import "time"

// Store defaults
const (
	DefaultStoreSize = 1024
	DefaultTTL       = 24 * time.Hour
)

// Weapon positions accepted by mod operations
const (
	WeaponPrimary   = 1
	WeaponSecondary = 2
)

// MinBackpackQuantity is the floor applied by quantity adjustments
const MinBackpackQuantity = 1

const (
	LogMsgLoadoutCreated = "Loadout created"
	LogMsgLoadoutUpdated = "Loadout updated"
)

const (
	ErrFmtWeaponPosition = "%w: weapon must be 1 or 2, got %d"
	ErrFmtModIndex       = "%w: mod index must be 0-3, got %d"
	ErrFmtSlotMismatch   = "%w: %s cannot hold %s (%s)"
	ErrFmtUseModSlot     = "%w: modifications are equipped per weapon"
	ErrFmtEntryNotFound  = "%w: %s in %s"
	ErrFmtLoadoutMissing = "%w: %s"
	ErrFmtUnknownItem    = "%w: %s"
)
