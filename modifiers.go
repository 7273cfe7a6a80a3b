package shapecheck

// Optional wraps child so absent input succeeds immediately. Decoded null and
// missing properties both arrive as nil; Optional normalizes them to a single
// canonical absent representation, the nil pointer, so downstream code never
// distinguishes two kinds of absence. Any other input delegates entirely to
// child, with success values boxed and issues passed through unchanged.
func Optional[T any](child Validator[T]) Validator[*T] {
	return New(func(in any) Result[*T] {
		if in == nil {
			return OK[*T](nil)
		}
		r := child.CheckSafe(in)
		if !r.Ok() {
			return Fail[*T](r.Issues()...)
		}
		v := r.Value()
		return OK(&v)
	})
}

// OptionalWithDefault wraps child so absent input succeeds with def. The
// default is supplied once at construction, not recomputed per call. Any other
// input delegates entirely to child.
func OptionalWithDefault[T any](child Validator[T], def T) Validator[T] {
	return New(func(in any) Result[T] {
		if in == nil {
			return OK(def)
		}
		return child.CheckSafe(in)
	})
}
