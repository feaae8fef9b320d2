package problemgen

import "fmt"

// StructuralValidator checks the choice set and the visual hint.
type StructuralValidator struct{}

func (v *StructuralValidator) Name() string { return "structural" }

func (v *StructuralValidator) Validate(p Problem) *ValidationError {
	if len(p.Choices) != ChoiceCount {
		return v.fail("expected %d choices, got %d", ChoiceCount, len(p.Choices))
	}

	seen := make(map[int]bool, len(p.Choices))
	hits := 0
	for _, c := range p.Choices {
		if c < 0 {
			return v.fail("choice %d is negative", c)
		}
		if seen[c] {
			return v.fail("choice %d appears more than once", c)
		}
		seen[c] = true
		if c == p.Answer {
			hits++
		}
	}
	if hits != 1 {
		return v.fail("answer %d appears %d times in choices", p.Answer, hits)
	}

	switch p.Op {
	case OpMultiply, OpDivide:
		if p.Hint == nil {
			return v.fail("%s problem has no visual hint", p.Op)
		}
		want := p.Answer
		if p.Op == OpDivide {
			want = p.First
		}
		if p.Hint.Total() != want {
			return v.fail("hint %dx%d does not total %d", p.Hint.GroupCount, p.Hint.ItemsPerGroup, want)
		}
	default:
		if p.Hint != nil {
			return v.fail("%s problem must not carry a visual hint", p.Op)
		}
	}
	return nil
}

func (v *StructuralValidator) fail(format string, args ...any) *ValidationError {
	return &ValidationError{Validator: v.Name(), Message: fmt.Sprintf(format, args...)}
}

// OperationValidator checks operand domain rules and the stored answer.
type OperationValidator struct{}

func (v *OperationValidator) Name() string { return "operation" }

func (v *OperationValidator) Validate(p Problem) *ValidationError {
	if p.First < 0 || p.Second < 0 {
		return v.fail("operands must be non-negative, got %d and %d", p.First, p.Second)
	}
	switch p.Op {
	case OpAdd, OpMultiply:
	case OpSubtract:
		if p.First < p.Second {
			return v.fail("subtraction %d - %d would be negative", p.First, p.Second)
		}
	case OpDivide:
		if p.Second == 0 {
			return v.fail("division by zero")
		}
		if p.First%p.Second != 0 {
			return v.fail("%d is not divisible by %d", p.First, p.Second)
		}
	default:
		return v.fail("unknown operation %q", p.Op)
	}
	if got := p.Op.Apply(p.First, p.Second); got != p.Answer {
		return v.fail("%s is %d, stored answer is %d", p.Expression(), got, p.Answer)
	}
	return nil
}

func (v *OperationValidator) fail(format string, args ...any) *ValidationError {
	return &ValidationError{Validator: v.Name(), Message: fmt.Sprintf(format, args...)}
}
