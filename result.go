package shapecheck

// Result is the discriminated outcome of a validation call: either a value or
// a non-empty list of issues, never both. It is the single channel through
// which validators communicate outcome; there is no out-of-band error signal.
type Result[T any] struct {
	value  T
	issues []Issue
}

// OK returns a successful Result holding v.
func OK[T any](v T) Result[T] { return Result[T]{value: v} }

// Fail returns a failed Result carrying the given issues in order. A failure
// always carries at least one issue; calling Fail with none yields a single
// generic issue so the discriminant stays unambiguous.
func Fail[T any](issues ...Issue) Result[T] {
	if len(issues) == 0 {
		issues = []Issue{{Message: "Validation failed"}}
	}
	return Result[T]{issues: issues}
}

// Ok reports whether the validation succeeded.
func (r Result[T]) Ok() bool { return len(r.issues) == 0 }

// Value returns the validated value. It is meaningful only when Ok reports
// true; a failed Result never carries a usable value.
func (r Result[T]) Value() T { return r.value }

// Issues returns the failure issues in the order they were raised, or nil on
// success.
func (r Result[T]) Issues() []Issue { return r.issues }
