package shapecheck

import "github.com/shapecheck/shapecheck/i18n"

// SequenceOf returns a validator for ordered sequences whose elements all
// satisfy elem. Input that is not a sequence fails with one path-less issue.
// Element validation short-circuits: the result for the first failing element
// is that element's issues with its zero-based index prepended to each path,
// and later elements are never evaluated. On success a freshly allocated slice
// of validated elements is returned in original order.
func SequenceOf[E any](elem Validator[E], msg ...string) Validator[[]E] {
	m := messageOr(msg, i18n.KeySequence)
	return New(func(in any) Result[[]E] {
		items, ok := asSequence[E](in)
		if !ok {
			return Fail[[]E](Issue{Message: m})
		}
		out := make([]E, 0, len(items))
		for i, el := range items {
			r := elem.CheckSafe(el)
			if !r.Ok() {
				return Fail[[]E](prefixIssues(Index(i), r.Issues())...)
			}
			out = append(out, r.Value())
		}
		return OK(out)
	})
}

// asSequence widens sequence input to []any. Decoded untyped data arrives as
// []any; already-typed []E slices are accepted for composition ergonomics and
// still validated element by element.
func asSequence[E any](in any) ([]any, bool) {
	switch t := in.(type) {
	case []any:
		return t, true
	case []E:
		items := make([]any, len(t))
		for i := range t {
			items[i] = t[i]
		}
		return items, true
	}
	return nil, false
}
