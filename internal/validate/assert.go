package validate

import "fmt"

// AssertionError is the structured panic value raised when a Must* helper
// observes input that violates a programmer-trust boundary. It is a defect
// signal, not a recoverable condition: a single top-level recover converts
// it into a generic internal-error result.
type AssertionError struct {
	Field    string
	Received any
	Expected string
}

func (e *AssertionError) Error() string {
	return fmt.Sprintf("assertion failed: field %q expected %s, received %v (%T)",
		e.Field, e.Expected, e.Received, e.Received)
}

// MustNonEmptyString narrows v to a non-empty string or panics with an
// AssertionError. Use only where the value was produced by trusted code;
// untrusted input goes through detailed validation instead.
func MustNonEmptyString(v any, field string) string {
	if !IsNonEmptyString(v) {
		panic(&AssertionError{Field: field, Received: v, Expected: "non-empty string"})
	}
	return v.(string)
}

// MustPositiveInt narrows v to a positive integer or panics with an
// AssertionError.
func MustPositiveInt(v any, field string) int {
	if !IsPositiveInt(v) {
		panic(&AssertionError{Field: field, Received: v, Expected: "positive integer"})
	}
	f, _ := AsFloat(v)
	return int(f)
}

// MustPlainMap narrows v to a map[string]any or panics with an
// AssertionError.
func MustPlainMap(v any, field string) map[string]any {
	if !IsPlainMap(v) {
		panic(&AssertionError{Field: field, Received: v, Expected: "plain object"})
	}
	return v.(map[string]any)
}
