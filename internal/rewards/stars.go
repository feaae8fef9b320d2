package rewards

import "strings"

// MaxStars is the best rating a play-through can earn.
const MaxStars = 3

// UnlockStars is the rating a level needs before the next level opens.
const UnlockStars = 2

// Stars returns the rating for a rounded accuracy percentage.
func Stars(accuracy int) int {
	switch {
	case accuracy >= 90:
		return 3
	case accuracy >= 70:
		return 2
	case accuracy >= 50:
		return 1
	default:
		return 0
	}
}

// StarString renders n filled stars out of MaxStars, e.g. "★★☆".
func StarString(n int) string {
	n = min(max(n, 0), MaxStars)
	return strings.Repeat("★", n) + strings.Repeat("☆", MaxStars-n)
}

// Cheer returns a short message for a rating.
func Cheer(stars int) string {
	switch stars {
	case 3:
		return "Superstar!"
	case 2:
		return "Great job!"
	case 1:
		return "Nice try, keep going!"
	default:
		return "Practice makes perfect."
	}
}
