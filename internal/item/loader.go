package item

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/osse101/ArcPlanner_Go/configs"
	"github.com/osse101/ArcPlanner_Go/internal/domain"
	"github.com/osse101/ArcPlanner_Go/internal/logger"
	"github.com/osse101/ArcPlanner_Go/internal/validation"
)

// Loader parses and validates item records
type Loader interface {
	// Parse decodes either a JSON array of records or a single record object.
	// Records failing validation are logged and skipped; only malformed
	// top-level JSON is an error.
	Parse(ctx context.Context, data []byte, origin string) ([]domain.Item, error)
	Validate(item *domain.Item) error
}

type itemLoader struct {
	schemaValidator validation.SchemaValidator
	schemaPath      string
}

// NewLoader creates a loader that checks records against the bundled item schema
func NewLoader() Loader {
	return &itemLoader{
		schemaValidator: validation.NewSchemaValidatorFS(configs.Schemas),
		schemaPath:      configs.ItemSchemaName,
	}
}

func (l *itemLoader) Parse(ctx context.Context, data []byte, origin string) ([]domain.Item, error) {
	log := logger.FromContext(ctx)

	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf(ErrMsgParseCatalogFailed, origin, fmt.Errorf("%w: empty document", domain.ErrInvalidInput))
	}

	var raws []json.RawMessage
	if trimmed[0] == '[' {
		if err := json.Unmarshal(trimmed, &raws); err != nil {
			return nil, fmt.Errorf(ErrMsgParseCatalogFailed, origin, err)
		}
	} else {
		raws = []json.RawMessage{trimmed}
	}

	items := make([]domain.Item, 0, len(raws))
	for i, raw := range raws {
		item, err := l.parseRecord(raw)
		if err != nil {
			log.Warn(LogMsgRecordSkipped, logger.AttrKeyOrigin, origin, "index", i, "error", err)
			continue
		}
		items = append(items, item)
	}
	return items, nil
}

func (l *itemLoader) parseRecord(raw json.RawMessage) (domain.Item, error) {
	var item domain.Item
	if err := l.schemaValidator.ValidateBytes(raw, l.schemaPath); err != nil {
		return item, fmt.Errorf("%w: %v", domain.ErrInvalidItem, err)
	}
	if err := json.Unmarshal(raw, &item); err != nil {
		return item, fmt.Errorf("%w: %v", domain.ErrInvalidItem, err)
	}
	if err := l.Validate(&item); err != nil {
		return item, err
	}
	return item, nil
}

// Validate checks the invariants the planner relies on
func (l *itemLoader) Validate(item *domain.Item) error {
	if item.ID == "" {
		return fmt.Errorf(ErrFmtEmptyID, domain.ErrInvalidItem)
	}
	if item.WeightKg < 0 {
		return fmt.Errorf(ErrFmtNegativeWeight, domain.ErrInvalidItem, item.ID)
	}
	if item.Value < 0 {
		return fmt.Errorf(ErrFmtNegativeValue, domain.ErrInvalidItem, item.ID)
	}

	mappings := []struct {
		field string
		comps domain.Components
	}{
		{"recipe", item.Recipe},
		{"upgradeCost", item.UpgradeCost},
		{"recyclesInto", item.RecyclesInto},
		{"salvagesInto", item.SalvagesInto},
	}
	for _, m := range mappings {
		for _, c := range m.comps {
			if c.ItemID == "" {
				return fmt.Errorf(ErrFmtEmptyComponentID, domain.ErrInvalidItem, item.ID, m.field)
			}
			if c.Quantity <= 0 {
				return fmt.Errorf(ErrFmtNonPositiveCount, domain.ErrInvalidItem, item.ID, m.field, c.ItemID, c.Quantity)
			}
		}
	}
	return nil
}
