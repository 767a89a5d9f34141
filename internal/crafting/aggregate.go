package crafting

import (
	"sort"

	"github.com/osse101/ArcPlanner_Go/internal/domain"
)

// Requirement is the accumulated demand for one irreducible item.
// When Saturated is set, Quantity was clamped at math.MaxInt and is a lower bound.
type Requirement struct {
	Item      *domain.Item `json:"item,omitempty"`
	ItemID    string       `json:"item_id"`
	Quantity  int          `json:"quantity"`
	Saturated bool         `json:"saturated,omitempty"`
}

type workItem struct {
	node       *Node
	multiplier int
	saturated  bool
}

// Aggregate flattens roots into one entry per distinct leaf id, summing the
// effective totals of every occurrence. A node's effective total is its
// quantity times the multiplier carried from its parent (1 for roots).
// Entries are sorted by descending quantity; ties keep first-seen order.
// Products and sums that exceed math.MaxInt are clamped and flagged Saturated.
func Aggregate(roots []*Node) []Requirement {
	var reqs []Requirement
	byID := make(map[string]int)

	work := make([]workItem, 0, len(roots))
	for i := len(roots) - 1; i >= 0; i-- {
		if roots[i] != nil {
			work = append(work, workItem{node: roots[i], multiplier: 1})
		}
	}

	for len(work) > 0 {
		w := work[len(work)-1]
		work = work[:len(work)-1]

		total, clamped := mulSat(w.node.Quantity, w.multiplier)
		saturated := clamped || w.saturated
		if w.node.IsLeaf() {
			if idx, ok := byID[w.node.ItemID]; ok {
				sum, overflow := addSat(reqs[idx].Quantity, total)
				reqs[idx].Quantity = sum
				reqs[idx].Saturated = reqs[idx].Saturated || saturated || overflow
				continue
			}
			byID[w.node.ItemID] = len(reqs)
			reqs = append(reqs, Requirement{
				Item:      w.node.Item,
				ItemID:    w.node.ItemID,
				Quantity:  total,
				Saturated: saturated,
			})
			continue
		}

		for i := len(w.node.Children) - 1; i >= 0; i-- {
			work = append(work, workItem{node: w.node.Children[i], multiplier: total, saturated: saturated})
		}
	}

	sort.SliceStable(reqs, func(i, j int) bool {
		return reqs[i].Quantity > reqs[j].Quantity
	})
	if reqs == nil {
		reqs = []Requirement{}
	}
	return reqs
}
