package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Item errors
	ErrMsgItemNotFound      = "item not found"
	ErrMsgInvalidComponents = "invalid component mapping"
	ErrMsgInvalidItem       = "invalid item record"

	// Catalog errors
	ErrMsgCatalogUnavailable = "catalog unavailable"
	ErrMsgCatalogEmpty       = "catalog is empty"

	// Loadout errors
	ErrMsgLoadoutNotFound = "loadout not found"
	ErrMsgInvalidSlot     = "invalid slot"
	ErrMsgSlotMismatch    = "item does not fit slot"
	ErrMsgEntryNotFound   = "loadout entry not found"

	// Validation errors (used for partial matches)
	ErrMsgInvalidQuantity = "quantity"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Item errors
	ErrItemNotFound      = errors.New(ErrMsgItemNotFound)
	ErrInvalidComponents = errors.New(ErrMsgInvalidComponents)
	ErrInvalidItem       = errors.New(ErrMsgInvalidItem)

	// Catalog errors
	ErrCatalogUnavailable = errors.New(ErrMsgCatalogUnavailable)
	ErrCatalogEmpty       = errors.New(ErrMsgCatalogEmpty)

	// Loadout errors
	ErrLoadoutNotFound = errors.New(ErrMsgLoadoutNotFound)
	ErrInvalidSlot     = errors.New(ErrMsgInvalidSlot)
	ErrSlotMismatch    = errors.New(ErrMsgSlotMismatch)
	ErrEntryNotFound   = errors.New(ErrMsgEntryNotFound)

	// Validation errors
	ErrInvalidQuantity = errors.New("invalid " + ErrMsgInvalidQuantity)
	ErrInvalidInput    = errors.New(ErrMsgInvalidInput)
)
