package crafting

import (
	"fmt"
	"testing"

	"github.com/osse101/ArcPlanner_Go/internal/domain"
)

// benchCatalog builds a tiered catalog: width recipes per level, each using
// every item of the level below, over a shared set of leaves
func benchCatalog(levels, width int) ([]domain.Item, string) {
	var items []domain.Item
	for w := 0; w < width; w++ {
		items = append(items, leafItem(fmt.Sprintf("raw_%d", w)))
	}
	prev := func(l, w int) string {
		if l == 0 {
			return fmt.Sprintf("raw_%d", w)
		}
		return fmt.Sprintf("part_%d_%d", l, w)
	}
	for l := 1; l <= levels; l++ {
		for w := 0; w < width; w++ {
			recipe := domain.Components{}
			for k := 0; k < width; k++ {
				recipe = append(recipe, domain.Component{ItemID: prev(l-1, k), Quantity: k + 1})
			}
			items = append(items, recipeItem(prev(l, w), recipe))
		}
	}
	return items, prev(levels, 0)
}

func BenchmarkBuild(b *testing.B) {
	items, top := benchCatalog(5, 4)
	builder := NewBuilder(newTestIndex(items...), 0)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = builder.BuildID(top, 1)
	}
}

func BenchmarkAggregate(b *testing.B) {
	items, top := benchCatalog(5, 4)
	root := NewBuilder(newTestIndex(items...), 0).BuildID(top, 3)
	roots := []*Node{root}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Aggregate(roots)
	}
}

func BenchmarkMatchSources(b *testing.B) {
	items, top := benchCatalog(5, 4)
	for i := 0; i < 200; i++ {
		items = append(items, recyclable(fmt.Sprintf("junk_%d", i), comps(fmt.Sprintf("raw_%d", i%4), 2)))
	}
	reqs := Aggregate([]*Node{NewBuilder(newTestIndex(items...), 0).BuildID(top, 1)})

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = MatchSources(reqs, items)
	}
}
