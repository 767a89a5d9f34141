package crafting

import (
	"github.com/osse101/ArcPlanner_Go/internal/catalog"
	"github.com/osse101/ArcPlanner_Go/internal/domain"
)

// Node is one unit of demand for one item in a crafting tree.
// Item is nil when ItemID did not resolve against the catalog.
// Quantity is per unit of the parent; Total is Quantity times the parent's Total.
// Saturated marks a Total clamped at math.MaxInt, here or in an ancestor.
type Node struct {
	Item            *domain.Item `json:"item,omitempty"`
	ItemID          string       `json:"item_id"`
	Quantity        int          `json:"quantity"`
	Total           int          `json:"total"`
	IsUpgrade       bool         `json:"is_upgrade,omitempty"`
	Truncated       bool         `json:"truncated,omitempty"`
	TruncatedReason string       `json:"truncated_reason,omitempty"`
	Saturated       bool         `json:"saturated,omitempty"`
	Children        []*Node      `json:"children"`
}

// IsLeaf reports whether the node contributes directly to the requirement totals
func (n *Node) IsLeaf() bool {
	return len(n.Children) == 0
}

// Resolved reports whether the node's id was found in the catalog
func (n *Node) Resolved() bool {
	return n.Item != nil
}

// Builder expands items into crafting trees against a read-only catalog handle.
// A Builder holds no per-build state and is safe for concurrent use.
type Builder struct {
	lookup   catalog.Lookup
	maxDepth int
}

// NewBuilder creates a builder. maxDepth <= 0 selects DefaultMaxDepth.
func NewBuilder(lookup catalog.Lookup, maxDepth int) *Builder {
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	return &Builder{lookup: lookup, maxDepth: maxDepth}
}

type childSpec struct {
	id       string
	quantity int
	upgrade  bool
}

type frame struct {
	node  *Node
	specs []childSpec
	next  int
	depth int
}

// Build expands item at quantity into a fresh tree.
//
// Expansion uses an explicit stack and tracks the ids on the current
// root-to-node path. A component whose id is already on the path, or that
// would sit deeper than the depth cap, becomes a truncated leaf.
func (b *Builder) Build(item *domain.Item, quantity int) *Node {
	root := newNode(item, item.ID, quantity, quantity, false)

	specs := childSpecs(item)
	if len(specs) == 0 {
		return root
	}

	onPath := map[string]bool{item.ID: true}
	stack := []*frame{{node: root, specs: specs}}

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		if top.next == len(top.specs) {
			delete(onPath, top.node.ItemID)
			stack = stack[:len(stack)-1]
			continue
		}

		spec := top.specs[top.next]
		top.next++

		rec, _ := b.lookup.Get(spec.id)
		total, clamped := mulSat(spec.quantity, top.node.Total)
		child := newNode(rec, spec.id, spec.quantity, total, spec.upgrade)
		child.Saturated = clamped || top.node.Saturated
		top.node.Children = append(top.node.Children, child)
		if rec == nil {
			continue
		}

		grand := childSpecs(rec)
		depth := top.depth + 1
		switch {
		case len(grand) == 0:
		case onPath[spec.id]:
			child.Truncated, child.TruncatedReason = true, TruncatedCycle
		case depth >= b.maxDepth:
			child.Truncated, child.TruncatedReason = true, TruncatedDepth
		default:
			onPath[spec.id] = true
			stack = append(stack, &frame{node: child, specs: grand, depth: depth})
		}
	}

	return root
}

// BuildID expands the item with the given id. An unknown id yields a
// placeholder leaf carrying the id and quantity.
func (b *Builder) BuildID(id string, quantity int) *Node {
	item, ok := b.lookup.Get(id)
	if !ok {
		return newNode(nil, id, quantity, quantity, false)
	}
	return b.Build(item, quantity)
}

func newNode(item *domain.Item, id string, quantity, total int, upgrade bool) *Node {
	return &Node{
		Item:      item,
		ItemID:    id,
		Quantity:  quantity,
		Total:     total,
		IsUpgrade: upgrade,
		Children:  []*Node{},
	}
}

// childSpecs lists the children an item expands into. Upgrades list their
// cost components first, then the predecessor tier at quantity 1.
func childSpecs(item *domain.Item) []childSpec {
	comp := item.Composition()
	if comp.IsLeaf() {
		return nil
	}

	specs := make([]childSpec, 0, len(comp.Components)+1)
	for _, c := range comp.Components {
		specs = append(specs, childSpec{id: c.ItemID, quantity: c.Quantity})
	}
	if comp.Kind == domain.CompositionUpgrade {
		if prev, ok := PredecessorID(item.ID); ok {
			specs = append(specs, childSpec{id: prev, quantity: 1, upgrade: true})
		}
	}
	return specs
}

// Walk visits every node of root depth-first in child order
func Walk(root *Node, fn func(n *Node, depth int)) {
	type entry struct {
		node  *Node
		depth int
	}
	if root == nil {
		return
	}
	stack := []entry{{root, 0}}
	for len(stack) > 0 {
		e := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		fn(e.node, e.depth)
		for i := len(e.node.Children) - 1; i >= 0; i-- {
			stack = append(stack, entry{e.node.Children[i], e.depth + 1})
		}
	}
}
