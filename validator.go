package shapecheck

// Validator pairs a validation function with throwing and non-throwing entry
// points. A Validator is immutable once constructed and holds no mutable
// state; it may be stored, composed, and reused across unrelated validations
// concurrently without coordination.
type Validator[T any] struct {
	fn func(any) Result[T]
}

// New wraps a raw validation function into a Validator. The function must be
// pure: every invocation independent, side effects limited to allocating fresh
// output structures.
func New[T any](fn func(in any) Result[T]) Validator[T] {
	return Validator[T]{fn: fn}
}

// CheckSafe runs the validation and reports the outcome as data. It is the
// underlying function exposed verbatim and never fails out of band.
func (v Validator[T]) CheckSafe(in any) Result[T] {
	return v.fn(in)
}

// Check runs the validation and returns the value, or a *SchemaError carrying
// the full issue list when it fails. Check and CheckSafe share the same
// underlying logic and differ only in control-flow surface.
func (v Validator[T]) Check(in any) (T, error) {
	r := v.fn(in)
	if !r.Ok() {
		var zero T
		return zero, &SchemaError{Issues: r.Issues()}
	}
	return r.Value(), nil
}

// MustCheck is like Check but panics on failure. Useful for inputs known to be
// valid, such as compiled-in configuration.
func (v Validator[T]) MustCheck(in any) T {
	out, err := v.Check(in)
	if err != nil {
		panic(err)
	}
	return out
}

// Any type-erases the validator so heterogeneous validators can share a record
// shape. Outcomes are forwarded unchanged apart from the boxing of the value.
func (v Validator[T]) Any() Validator[any] {
	fn := v.fn
	return New(func(in any) Result[any] {
		r := fn(in)
		if !r.Ok() {
			return Fail[any](r.Issues()...)
		}
		return OK[any](r.Value())
	})
}
