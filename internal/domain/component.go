package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
)

// Component is one (item id, count) entry of a recipe, upgrade cost or yield mapping
type Component struct {
	ItemID   string `json:"item_id"`
	Quantity int    `json:"quantity"`
}

// Components is an ordered component mapping. It is encoded as a JSON object
// ({"mechanical_components": 5}) and keeps the key order of the source document,
// so crafting trees list children in the order the data author wrote them.
type Components []Component

// Quantity returns the count for itemID, or 0 when absent
func (c Components) Quantity(itemID string) int {
	for _, comp := range c {
		if comp.ItemID == itemID {
			return comp.Quantity
		}
	}
	return 0
}

// MarshalJSON writes the components as an object in slice order
func (c Components) MarshalJSON() ([]byte, error) {
	if c == nil {
		return []byte("null"), nil
	}
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, comp := range c {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(comp.ItemID)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		fmt.Fprintf(&buf, "%d", comp.Quantity)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads an object of id → count, preserving key order.
// A repeated key overwrites the earlier count in place, so {"ore":1,"ore":2}
// decodes to a single ore entry of 2 at the position ore first appeared.
func (c *Components) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*c = nil
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("%w: components must be a JSON object", ErrInvalidComponents)
	}

	out := Components{}
	seen := make(map[string]int)
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("%w: non-string key", ErrInvalidComponents)
		}

		var n json.Number
		if err := dec.Decode(&n); err != nil {
			return fmt.Errorf("%w: count for %q: %v", ErrInvalidComponents, key, err)
		}
		qty, err := parseCount(n)
		if err != nil {
			return fmt.Errorf("%w: count for %q: %v", ErrInvalidComponents, key, err)
		}

		if idx, ok := seen[key]; ok {
			out[idx].Quantity = qty
			continue
		}
		seen[key] = len(out)
		out = append(out, Component{ItemID: key, Quantity: qty})
	}

	if _, err := dec.Token(); err != nil {
		return err
	}

	*c = out
	return nil
}

// parseCount accepts integral JSON numbers, including forms such as 3.0 or 1e3.
// Fractional and out-of-range values are rejected.
func parseCount(n json.Number) (int, error) {
	if i, err := n.Int64(); err == nil {
		if i < math.MinInt || i > math.MaxInt {
			return 0, fmt.Errorf("%s is out of range", n)
		}
		return int(i), nil
	}
	f, err := n.Float64()
	if err != nil {
		return 0, fmt.Errorf("%s is not a number", n)
	}
	if f != math.Trunc(f) {
		return 0, fmt.Errorf("%s is not an integer", n)
	}
	if f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, fmt.Errorf("%s is out of range", n)
	}
	return int(f), nil
}

// CompositionKind tags how an item is produced
type CompositionKind string

const (
	// CompositionLeaf is an irreducible raw material
	CompositionLeaf CompositionKind = "leaf"
	// CompositionRecipe is built from scratch out of its components
	CompositionRecipe CompositionKind = "recipe"
	// CompositionUpgrade is built from its predecessor tier plus its components
	CompositionUpgrade CompositionKind = "upgrade"
)

// Composition is the tagged production relation of an item
type Composition struct {
	Kind       CompositionKind
	Components Components
}

// IsLeaf reports whether the item has no production relation
func (c Composition) IsLeaf() bool {
	return c.Kind == CompositionLeaf
}
