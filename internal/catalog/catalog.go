package catalog

import (
	"errors"
	"fmt"
	"slices"

	"github.com/abhisek/mathplay/internal/problemgen"
)

// ErrUnknownGame is returned by Get for IDs not in the catalog.
var ErrUnknownGame = errors.New("unknown game")

// catalog holds the game list with precomputed indices.
type catalog struct {
	games    []Game
	byID     map[string]*Game
	byFamily map[problemgen.Family][]Game
}

// c is the package-level catalog, set by init() in seed.go.
var c *catalog

func buildCatalog(gs []Game) *catalog {
	cat := &catalog{
		games:    gs,
		byID:     make(map[string]*Game, len(gs)),
		byFamily: make(map[problemgen.Family][]Game),
	}
	for i := range cat.games {
		g := &cat.games[i]
		cat.byID[g.ID] = g
		cat.byFamily[g.Family] = append(cat.byFamily[g.Family], *g)
	}
	return cat
}

// Get returns a game by ID.
func Get(id string) (Game, error) {
	g, ok := c.byID[id]
	if !ok {
		return Game{}, fmt.Errorf("%w: %q", ErrUnknownGame, id)
	}
	return *g, nil
}

// All returns every game in display order.
func All() []Game {
	return slices.Clone(c.games)
}

// ByFamily returns the games built on an operation family.
func ByFamily(f problemgen.Family) []Game {
	return slices.Clone(c.byFamily[f])
}

// IDs returns every game ID in display order.
func IDs() []string {
	ids := make([]string, len(c.games))
	for i, g := range c.games {
		ids[i] = g.ID
	}
	return ids
}
