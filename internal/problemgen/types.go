package problemgen

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// ChoiceCount is the number of multiple-choice options on every problem.
const ChoiceCount = 4

// Operation is the arithmetic operation a problem exercises.
type Operation string

const (
	OpAdd      Operation = "add"
	OpSubtract Operation = "subtract"
	OpMultiply Operation = "multiply"
	OpDivide   Operation = "divide"
)

// Symbol returns the operator glyph shown to the learner.
func (o Operation) Symbol() string {
	switch o {
	case OpAdd:
		return "+"
	case OpSubtract:
		return "-"
	case OpMultiply:
		return "×"
	case OpDivide:
		return "÷"
	default:
		return "?"
	}
}

// Apply computes a op b. Division by zero yields 0 so callers stay total;
// generated problems never divide by zero.
func (o Operation) Apply(a, b int) int {
	switch o {
	case OpAdd:
		return a + b
	case OpSubtract:
		return a - b
	case OpMultiply:
		return a * b
	case OpDivide:
		if b == 0 {
			return 0
		}
		return a / b
	default:
		return 0
	}
}

// Family selects which generator table and sampling rule apply.
type Family string

const (
	FamilyAdd      Family = "add"
	FamilySubtract Family = "subtract"
	FamilyMultiply Family = "multiply"
	FamilyDivide   Family = "divide"
	FamilyMixed    Family = "mixed"
	FamilyAllOps   Family = "all-ops"
)

// ErrUnknownFamily is returned by ParseFamily for unrecognized names.
var ErrUnknownFamily = errors.New("unknown operation family")

// AllFamilies returns every operation family in display order.
func AllFamilies() []Family {
	return []Family{FamilyAdd, FamilySubtract, FamilyMultiply, FamilyDivide, FamilyMixed, FamilyAllOps}
}

// ParseFamily resolves a family name. Matching is case-insensitive and
// accepts a few common aliases ("addition", "all", ...).
func ParseFamily(s string) (Family, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "add", "addition", "plus":
		return FamilyAdd, nil
	case "subtract", "subtraction", "minus", "sub":
		return FamilySubtract, nil
	case "multiply", "multiplication", "times", "mul":
		return FamilyMultiply, nil
	case "divide", "division", "div":
		return FamilyDivide, nil
	case "mixed", "add-subtract":
		return FamilyMixed, nil
	case "all-ops", "all", "allops":
		return FamilyAllOps, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFamily, s)
}

// DisplayName returns a human-readable label for the family.
func (f Family) DisplayName() string {
	switch f {
	case FamilyAdd:
		return "Addition"
	case FamilySubtract:
		return "Subtraction"
	case FamilyMultiply:
		return "Multiplication"
	case FamilyDivide:
		return "Division"
	case FamilyMixed:
		return "Add & Subtract"
	case FamilyAllOps:
		return "All Operations"
	default:
		return string(f)
	}
}

// VisualHint lets a renderer draw a multiplicative problem as concrete
// groups. GroupCount*ItemsPerGroup is the product (multiply) or the dividend
// (divide), using the factors that were actually sampled.
type VisualHint struct {
	GroupCount    int
	ItemsPerGroup int
}

// Total returns the number of items across all groups.
func (h VisualHint) Total() int {
	return h.GroupCount * h.ItemsPerGroup
}

// Problem is one generated arithmetic problem. Treat it as immutable.
type Problem struct {
	// First and Second are the displayed operands, in display order.
	First  int
	Second int

	Op Operation

	// Answer is always Op.Apply(First, Second); division is exact.
	Answer int

	// Choices holds ChoiceCount distinct non-negative values in random
	// order, exactly one of which is Answer.
	Choices []int

	// Hint is set only for multiply and divide problems.
	Hint *VisualHint
}

// Expression renders the problem as "a op b".
func (p Problem) Expression() string {
	return fmt.Sprintf("%d %s %d", p.First, p.Op.Symbol(), p.Second)
}

// Text renders the question prompt, e.g. "What is 6 × 3?".
func (p Problem) Text() string {
	return "What is " + p.Expression() + "?"
}

// CorrectIndex returns the position of Answer within Choices, or -1.
func (p Problem) CorrectIndex() int {
	return slices.Index(p.Choices, p.Answer)
}

// IsCorrect reports whether value is the correct answer.
func (p Problem) IsCorrect(value int) bool {
	return value == p.Answer
}

// ChoiceCorrect reports whether the choice at index i is the correct one.
// Out-of-range indexes are simply wrong.
func (p Problem) ChoiceCorrect(i int) bool {
	if i < 0 || i >= len(p.Choices) {
		return false
	}
	return p.Choices[i] == p.Answer
}
