// internal/events/events.go
//
// Categorized event pool for board generation.
//
// Responsibilities:
//   - Hold the static, weighted catalog of bingo phrases (see data.go).
//   - Validate the catalog exactly once at startup (Init).
//   - Expose lookup helpers used by the board generator and tests.
//
// Validation rules (Init):
//   • Every category has a positive weight and a non-empty phrase list.
//   • Phrases are unique within their category.
//   • The catalog holds at least MinPhrases distinct phrases in total,
//     otherwise board generation could never terminate.
//
// Categories keep their original German display strings; keys and code
// identifiers are English/ASCII.

package events

import (
	"errors"
	"fmt"
	"sync"
)

// MinPhrases is the minimum total phrase count the catalog must provide:
// a board needs 24 distinct phrases next to the free space.
const MinPhrases = 24

// Category is one themed group of bingo phrases.
type Category struct {
	Key    string   // stable identifier, e.g. "verspaetung"
	Name   string   // display name
	Icon   string   // emoji shown on cells of this category
	Weight float64  // sampling weight, > 0 (≈0.5–1.3 in the shipped catalog)
	Events []string // distinct phrases, in catalog order
}

// ErrCatalogTooSmall is returned by Init when the catalog cannot fill a board.
var ErrCatalogTooSmall = errors.New("events: catalog holds fewer phrases than a board needs")

var (
	initOnce   sync.Once
	initialErr error
	byKey      map[string]*Category
	totalCount int
)

// Init validates the embedded catalog exactly once.
// Subsequent calls return the first result.
func Init() error {
	initOnce.Do(func() {
		byKey = make(map[string]*Category, len(Catalog))
		for i := range Catalog {
			c := &Catalog[i]
			if c.Key == "" {
				initialErr = fmt.Errorf("events: category %d has empty key", i)
				return
			}
			if _, dup := byKey[c.Key]; dup {
				initialErr = fmt.Errorf("events: duplicate category key %q", c.Key)
				return
			}
			if c.Weight <= 0 {
				initialErr = fmt.Errorf("events: category %q has non-positive weight %v", c.Key, c.Weight)
				return
			}
			if len(c.Events) == 0 {
				initialErr = fmt.Errorf("events: category %q has no phrases", c.Key)
				return
			}
			seen := make(map[string]struct{}, len(c.Events))
			for _, e := range c.Events {
				if e == "" {
					initialErr = fmt.Errorf("events: empty phrase in category %q", c.Key)
					return
				}
				if _, dup := seen[e]; dup {
					initialErr = fmt.Errorf("events: duplicate phrase %q in category %q", e, c.Key)
					return
				}
				seen[e] = struct{}{}
			}
			byKey[c.Key] = c
			totalCount += len(c.Events)
		}
		if totalCount < MinPhrases {
			initialErr = fmt.Errorf("%w: have %d, need %d", ErrCatalogTooSmall, totalCount, MinPhrases)
		}
	})
	return initialErr
}

// ByKey returns the category with the given key, or nil if unknown.
// Init must have been called.
func ByKey(key string) *Category {
	return byKey[key]
}

// TotalPhrases reports the number of phrases across all categories.
// Init must have been called.
func TotalPhrases() int { return totalCount }

// Contains reports whether text is a catalog phrase (any category).
func Contains(text string) bool {
	for i := range Catalog {
		for _, e := range Catalog[i].Events {
			if e == text {
				return true
			}
		}
	}
	return false
}
