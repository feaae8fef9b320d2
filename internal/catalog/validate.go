package catalog

import (
	"errors"
	"fmt"
	"strings"

	"github.com/abhisek/mathplay/internal/problemgen"
)

// validateGames performs structural checks on a game list.
// Returns a combined error describing all problems found, or nil if valid.
func validateGames(gs []Game) error {
	var errs []string
	known := make(map[problemgen.Family]bool)
	for _, f := range problemgen.AllFamilies() {
		known[f] = true
	}

	ids := make(map[string]bool, len(gs))
	for _, g := range gs {
		if g.ID == "" {
			errs = append(errs, fmt.Sprintf("game %q has an empty ID", g.Title))
		}
		if ids[g.ID] {
			errs = append(errs, fmt.Sprintf("duplicate game ID: %q", g.ID))
		}
		ids[g.ID] = true
		if !known[g.Family] {
			errs = append(errs, fmt.Sprintf("game %q uses unknown family %q", g.ID, g.Family))
		}
		if g.Title == "" {
			errs = append(errs, fmt.Sprintf("game %q has no title", g.ID))
		}
		if n := strings.Count(g.Prompt, "%d"); g.Prompt != "" && n != 2 {
			errs = append(errs, fmt.Sprintf("game %q prompt needs exactly two %%d verbs, has %d", g.ID, n))
		}
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

// Validate checks the built-in catalog.
func Validate() error {
	return validateGames(c.games)
}
