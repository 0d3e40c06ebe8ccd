// internal/board/generator.go
//
// Board generation: weighted category sampling without duplicate phrases.
//
// Algorithm:
//   1. Build a flat pool where every category key appears round(weight*10)
//      times (weights ≈0.5–1.3 → 5–13 pool entries per category).
//   2. Draw a category uniformly from the pool, then a phrase uniformly
//      from that category; keep it only if the phrase is new on this board.
//      Repeat until 24 distinct phrases are collected (rejection sampling;
//      terminates because the catalog is much larger than a board).
//   3. Fisher-Yates shuffle the 24 picks.
//   4. Splice the free-space cell in at index 12.
//
// The random source is injected so tests can fix the seed.

package board

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/robalobadob/bahnbingo/internal/events"
)

// Generator produces boards from a category catalog.
type Generator struct {
	rng     *rand.Rand
	catalog []events.Category
}

// NewGenerator builds a Generator over the shipped catalog.
func NewGenerator(rng *rand.Rand) *Generator {
	return NewGeneratorWithCatalog(rng, events.Catalog)
}

// NewGeneratorWithCatalog builds a Generator over an explicit catalog.
// Used by tests with tiny fixtures.
func NewGeneratorWithCatalog(rng *rand.Rand, catalog []events.Category) *Generator {
	return &Generator{rng: rng, catalog: catalog}
}

// Generate produces a fresh shuffled board: 24 distinct sampled phrases
// plus the free space at index 12.
//
// Returns an error when the catalog cannot supply 24 distinct phrases;
// that is a broken static configuration, never a runtime condition with
// the shipped catalog.
func (g *Generator) Generate() (Board, error) {
	total := 0
	for i := range g.catalog {
		total += len(g.catalog[i].Events)
	}
	if total < Picks {
		return nil, fmt.Errorf("%w: have %d phrases, need %d", events.ErrCatalogTooSmall, total, Picks)
	}

	// Weighted selection pool of category indices.
	var pool []int
	for i := range g.catalog {
		n := int(math.Round(g.catalog[i].Weight * 10))
		for j := 0; j < n; j++ {
			pool = append(pool, i)
		}
	}

	picks := make([]Cell, 0, Picks)
	used := make(map[string]struct{}, Picks)
	for len(picks) < Picks {
		cat := &g.catalog[pool[g.rng.Intn(len(pool))]]
		phrase := cat.Events[g.rng.Intn(len(cat.Events))]
		if _, dup := used[phrase]; dup {
			continue
		}
		used[phrase] = struct{}{}
		picks = append(picks, Cell{Text: phrase, CategoryKey: cat.Key, Icon: cat.Icon})
	}

	// Unbiased in-place shuffle.
	for i := len(picks) - 1; i > 0; i-- {
		j := g.rng.Intn(i + 1)
		picks[i], picks[j] = picks[j], picks[i]
	}

	// Free space goes in the middle, shifting the rest.
	b := make(Board, 0, Cells)
	b = append(b, picks[:FreeSpaceIndex]...)
	b = append(b, Cell{Text: "FREI", Icon: "⭐", IsFreeSpace: true})
	b = append(b, picks[FreeSpaceIndex:]...)
	return b, nil
}
