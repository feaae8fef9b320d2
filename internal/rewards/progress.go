package rewards

import (
	"github.com/abhisek/mathplay/internal/problemgen"
	"github.com/abhisek/mathplay/internal/store"
)

// Progress is the learner's best rating per game level.
type Progress struct {
	best map[store.LevelKey]int
}

// NewProgress wraps a best-stars table. A nil map is an empty history.
func NewProgress(best map[store.LevelKey]int) Progress {
	if best == nil {
		best = map[store.LevelKey]int{}
	}
	return Progress{best: best}
}

// Stars returns the best rating earned on a game level, 0 if never played.
func (p Progress) Stars(gameID string, level int) int {
	return p.best[store.LevelKey{GameID: gameID, Level: level}]
}

// Unlocked reports whether a level may be played. Level 1 is always open;
// level n+1 opens once level n has earned UnlockStars.
func (p Progress) Unlocked(gameID string, level int) bool {
	if level < problemgen.MinLevel || level > problemgen.MaxLevel {
		return false
	}
	if level == problemgen.MinLevel {
		return true
	}
	return p.Stars(gameID, level-1) >= UnlockStars
}

// HighestUnlocked returns the highest open level of a game.
func (p Progress) HighestUnlocked(gameID string) int {
	level := problemgen.MinLevel
	for level < problemgen.MaxLevel && p.Unlocked(gameID, level+1) {
		level++
	}
	return level
}

// GameStars sums the best ratings across a game's levels.
func (p Progress) GameStars(gameID string) int {
	total := 0
	for l := problemgen.MinLevel; l <= problemgen.MaxLevel; l++ {
		total += p.Stars(gameID, l)
	}
	return total
}

// TotalStars sums every best rating.
func (p Progress) TotalStars() int {
	total := 0
	for _, s := range p.best {
		total += s
	}
	return total
}

// with returns a copy of p with a rating applied if it beats the best.
func (p Progress) with(gameID string, level, stars int) Progress {
	next := make(map[store.LevelKey]int, len(p.best)+1)
	for k, v := range p.best {
		next[k] = v
	}
	key := store.LevelKey{GameID: gameID, Level: level}
	if stars > next[key] {
		next[key] = stars
	}
	return Progress{best: next}
}
