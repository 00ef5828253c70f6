package config

// ValidationResult collects the outcome of a detailed validation pass.
// The zero value is a valid (error-free) result. Once returned by
// ValidateWithDetails a result is never mutated by the engine.
type ValidationResult struct {
	errors []string
}

// IsValid reports whether no validation errors were recorded.
func (r *ValidationResult) IsValid() bool {
	return len(r.errors) == 0
}

// Errors returns the recorded validation errors in the order they were
// found. The returned slice is a copy; callers cannot mutate the result's
// internal state through it.
func (r *ValidationResult) Errors() []string {
	out := make([]string, len(r.errors))
	copy(out, r.errors)
	return out
}

func (r *ValidationResult) addError(msg string) {
	r.errors = append(r.errors, msg)
}
