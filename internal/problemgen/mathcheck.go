package problemgen

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
)

// MathCheckValidator independently recomputes the answer from the rendered
// question text, so a problem whose prompt and stored answer disagree is
// caught even if its fields look consistent.
type MathCheckValidator struct{}

func (v *MathCheckValidator) Name() string { return "math-check" }

func (v *MathCheckValidator) Validate(p Problem) *ValidationError {
	computed, err := computeAnswer(p.Text())
	if err != nil {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("cannot compute %q: %v", p.Text(), err),
		}
	}
	if computed != p.Answer {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("computed %d from %q but answer is %d", computed, p.Text(), p.Answer),
		}
	}
	return nil
}

// Binary integer expression with any of the displayed operator glyphs.
// Division requires spaces around the operator, matching Expression().
var arithRe = regexp.MustCompile(`(\d+)\s*([+\-*×])\s*(\d+)|(\d+)\s+[/÷]\s+(\d+)`)

var errNotComputable = errors.New("no arithmetic expression found")

// computeAnswer extracts the first arithmetic expression in text and
// evaluates it. Division must be exact.
func computeAnswer(text string) (int, error) {
	m := arithRe.FindStringSubmatch(text)
	if m == nil {
		return 0, errNotComputable
	}

	if m[4] != "" {
		a, _ := strconv.Atoi(m[4])
		b, _ := strconv.Atoi(m[5])
		if b == 0 {
			return 0, errors.New("division by zero")
		}
		if a%b != 0 {
			return 0, fmt.Errorf("%d / %d is not exact", a, b)
		}
		return a / b, nil
	}

	a, _ := strconv.Atoi(m[1])
	b, _ := strconv.Atoi(m[3])
	switch normalizeOp(m[2]) {
	case "+":
		return a + b, nil
	case "-":
		return a - b, nil
	case "*":
		return a * b, nil
	}
	return 0, fmt.Errorf("unsupported operator: %s", m[2])
}

// normalizeOp normalizes multiplication and division symbols.
func normalizeOp(op string) string {
	switch op {
	case "×":
		return "*"
	case "÷":
		return "/"
	default:
		return op
	}
}
