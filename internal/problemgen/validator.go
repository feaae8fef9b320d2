package problemgen

import "fmt"

// Validator checks a generated problem for correctness.
// Implementations should be stateless and safe for concurrent use.
type Validator interface {
	// Name returns a short identifier for this validator (for error messages
	// and logging), e.g. "structural", "operation", "math-check".
	Name() string

	// Validate returns nil if the problem passes.
	Validate(p Problem) *ValidationError
}

// ValidationError describes why a problem failed validation.
type ValidationError struct {
	Validator string // Name of the validator that failed
	Message   string // Human-readable description of the failure
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validator %q: %s", e.Validator, e.Message)
}

// Validate runs the default validator chain on p. The first failure stops
// the chain and is returned as a *ValidationError.
func Validate(p Problem) error {
	return ValidateWith(p, DefaultValidators()...)
}

// ValidateWith runs validators in order and returns the first failure.
func ValidateWith(p Problem, validators ...Validator) error {
	for _, v := range validators {
		if verr := v.Validate(p); verr != nil {
			return verr
		}
	}
	return nil
}

// ValidateBatch validates every problem and returns the index and error
// of the first invalid one, or -1 and nil.
func ValidateBatch(problems []Problem) (int, error) {
	validators := DefaultValidators()
	for i, p := range problems {
		if err := ValidateWith(p, validators...); err != nil {
			return i, err
		}
	}
	return -1, nil
}
