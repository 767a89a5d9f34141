package crafting

import (
	"github.com/osse101/ArcPlanner_Go/internal/domain"
)

// Source is a recyclable catalog item that yields a required item
type Source struct {
	Item  *domain.Item `json:"item"`
	Yield int          `json:"yield"`
}

// MatchSources maps every requirement id to the recyclable items whose
// recycle yield contains it, in catalog order. Decoded components hold one
// entry per id, so each item appears at most once per requirement.
// Requirements without a source map to an empty list.
func MatchSources(reqs []Requirement, items []domain.Item) map[string][]Source {
	sources := make(map[string][]Source, len(reqs))
	for _, r := range reqs {
		sources[r.ItemID] = []Source{}
	}

	for i := range items {
		item := &items[i]
		if !item.IsRecyclable() {
			continue
		}
		for _, y := range item.RecyclesInto {
			list, ok := sources[y.ItemID]
			if !ok {
				continue
			}
			sources[y.ItemID] = append(list, Source{Item: item, Yield: y.Quantity})
		}
	}
	return sources
}
