package problemgen

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseAnswer parses a typed answer. Whitespace is trimmed and leading
// zeros are ignored ("007" is 7). Negative or non-numeric input is rejected.
func ParseAnswer(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty answer")
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("not a whole number: %q", s)
	}
	if n < 0 {
		return 0, fmt.Errorf("answer must not be negative: %d", n)
	}
	return n, nil
}

// CheckAnswer reports whether the typed input is the correct answer to p.
// Unparseable input is simply wrong.
func CheckAnswer(input string, p Problem) bool {
	n, err := ParseAnswer(input)
	if err != nil {
		return false
	}
	return p.IsCorrect(n)
}
