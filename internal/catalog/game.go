package catalog

import "github.com/abhisek/mathplay/internal/problemgen"

// DefaultRounds is the round count for games that don't set one.
const DefaultRounds = 8

// Game describes one mini-game. Every game is a themed front end over the
// same session engine and one operation family.
type Game struct {
	ID          string
	Title       string
	Description string
	Family      problemgen.Family
	Rounds      int

	// Prompt phrases a problem in the game's story. The %d verbs receive
	// First and Second in display order. Empty means the plain
	// "What is a op b?" prompt.
	Prompt string
}

// Levels returns the playable difficulty levels in ascending order.
func (g Game) Levels() []int {
	levels := make([]int, 0, problemgen.MaxLevel-problemgen.MinLevel+1)
	for l := problemgen.MinLevel; l <= problemgen.MaxLevel; l++ {
		levels = append(levels, l)
	}
	return levels
}

// RoundCount returns Rounds, or DefaultRounds when unset.
func (g Game) RoundCount() int {
	if g.Rounds <= 0 {
		return DefaultRounds
	}
	return g.Rounds
}
