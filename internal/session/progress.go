package session

import "math"

// Accuracy returns round(correct/answered*100), or 0 when nothing has been
// answered.
func Accuracy(correct, answered int) int {
	if answered <= 0 {
		return 0
	}
	return int(math.Round(float64(correct) / float64(answered) * 100))
}
