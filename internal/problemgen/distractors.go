package problemgen

import (
	"math"
	"math/rand/v2"
)

// MaxDistractorAttempts caps the randomized phase of distractor sampling.
const MaxDistractorAttempts = 200

// minSpread is the smallest offset window, so tiny answers still get
// nearby decoys on both sides where room allows.
const minSpread = 3

// Spread returns the maximum distance of a sampled distractor from answer.
func Spread(answer int) int {
	s := int(math.Ceil(float64(answer) * 0.5))
	return max(minSpread, s)
}

// Distractors returns count wrong answers for answer: all distinct, all
// non-negative, none equal to answer.
//
// Candidates are first sampled at random within Spread(answer) of the
// answer. If the attempt cap is reached first (few non-negative neighbors
// exist for very small answers), the remaining slots are filled by walking
// upward from answer+1. The result always has exactly count entries.
func Distractors(r *rand.Rand, answer, count int) []int {
	if count <= 0 {
		return []int{}
	}

	out := make([]int, 0, count)
	seen := map[int]bool{answer: true}
	spread := Spread(answer)

	for attempt := 0; attempt < MaxDistractorAttempts && len(out) < count; attempt++ {
		offset := 1 + r.IntN(spread)
		if r.IntN(2) == 0 {
			offset = -offset
		}
		candidate := answer + offset
		if candidate < 0 || seen[candidate] {
			continue
		}
		seen[candidate] = true
		out = append(out, candidate)
	}

	next := max(answer+1, 0)
	for len(out) < count {
		if !seen[next] {
			seen[next] = true
			out = append(out, next)
		}
		next++
	}
	return out
}
