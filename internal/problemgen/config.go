package problemgen

// DefaultValidators returns the standard validator chain: structure of
// the choice set first, then operand rules, then an independent
// recomputation from the rendered text.
func DefaultValidators() []Validator {
	return []Validator{
		&StructuralValidator{},
		&OperationValidator{},
		&MathCheckValidator{},
	}
}
