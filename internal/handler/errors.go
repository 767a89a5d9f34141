package handler

// Client-facing error messages. Internal error text is logged, never returned.
const (
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	ErrMsgMissingPathParam = "Missing %s"
	ErrMsgInvalidIntParam  = "Invalid %s: must be an integer"
	ErrMsgInvalidQuantity  = "Invalid quantity: must be a positive integer"
	ErrMsgInvalidRarity    = "Invalid rarity"
	ErrMsgInvalidSlotParam = "Invalid slot"
	ErrMsgInvalidWeapon    = "Invalid weapon: must be 1 or 2"

	// also used as log messages
	ErrMsgListItemsFailed      = "Failed to list items"
	ErrMsgGetItemFailed        = "Failed to get item"
	ErrMsgBuildTreeFailed      = "Failed to build crafting tree"
	ErrMsgPredecessorFailed    = "Failed to resolve predecessor"
	ErrMsgPlanFailed           = "Failed to compute crafting plan"
	ErrMsgCreateLoadoutFailed  = "Failed to create loadout"
	ErrMsgGetLoadoutFailed     = "Failed to get loadout"
	ErrMsgDeleteLoadoutFailed  = "Failed to delete loadout"
	ErrMsgEquipFailed          = "Failed to equip item"
	ErrMsgUnequipFailed        = "Failed to remove item"
	ErrMsgAdjustQuantityFailed = "Failed to adjust quantity"
	ErrMsgLoadoutPlanFailed    = "Failed to compute loadout plan"
	ErrMsgRefreshCatalogFailed = "Failed to refresh catalog"
)

const (
	MsgLoadoutDeleted   = "Loadout deleted"
	MsgCatalogRefreshed = "Catalog refreshed"
)
