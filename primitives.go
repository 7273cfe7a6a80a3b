package shapecheck

import (
	"math"

	"github.com/shapecheck/shapecheck/i18n"
)

// messageOr resolves the optional custom failure message of a constructor,
// falling back to the default catalog. The message is captured once at
// construction, not looked up per call.
func messageOr(msg []string, key string) string {
	if len(msg) > 0 && msg[len(msg)-1] != "" {
		return msg[len(msg)-1]
	}
	return i18n.T(key)
}

// Text returns a validator that accepts string input and returns it unchanged.
func Text(msg ...string) Validator[string] {
	m := messageOr(msg, i18n.KeyString)
	return New(func(in any) Result[string] {
		s, ok := in.(string)
		if !ok {
			return Fail[string](Issue{Message: m})
		}
		return OK(s)
	})
}

// Numeric returns a validator that accepts finite numbers. Every Go numeric
// kind is normalized to float64; NaN and both signed infinities are rejected
// even though their runtime kind is numeric, since they are rarely valid
// domain values.
func Numeric(msg ...string) Validator[float64] {
	m := messageOr(msg, i18n.KeyNumber)
	return New(func(in any) Result[float64] {
		f, ok := toFloat(in)
		if !ok || math.IsNaN(f) || math.IsInf(f, 0) {
			return Fail[float64](Issue{Message: m})
		}
		return OK(f)
	})
}

// Boolean returns a validator that accepts bool input.
func Boolean(msg ...string) Validator[bool] {
	m := messageOr(msg, i18n.KeyBoolean)
	return New(func(in any) Result[bool] {
		b, ok := in.(bool)
		if !ok {
			return Fail[bool](Issue{Message: m})
		}
		return OK(b)
	})
}

// Literal returns a validator that accepts only input strictly equal to want.
// Supported literal targets are text, numeric, and boolean values plus nil;
// numerics are compared after float64 normalization so 1 and 1.0 denote the
// same literal. Intended for discriminant and tag fields.
func Literal(want any, msg ...string) Validator[any] {
	m := messageOr(msg, i18n.KeyLiteral)
	return New(func(in any) Result[any] {
		if literalEqual(want, in) {
			return OK(in)
		}
		return Fail[any](Issue{Message: m})
	})
}

func literalEqual(want, in any) bool {
	if want == nil || in == nil {
		return want == nil && in == nil
	}
	if wf, ok := toFloat(want); ok {
		f, ok := toFloat(in)
		return ok && f == wf
	}
	switch w := want.(type) {
	case string:
		s, ok := in.(string)
		return ok && s == w
	case bool:
		b, ok := in.(bool)
		return ok && b == w
	}
	return false
}

// toFloat reports whether v's runtime kind is numeric, normalizing to float64.
func toFloat(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case float32:
		return float64(t), true
	case int:
		return float64(t), true
	case int8:
		return float64(t), true
	case int16:
		return float64(t), true
	case int32:
		return float64(t), true
	case int64:
		return float64(t), true
	case uint:
		return float64(t), true
	case uint8:
		return float64(t), true
	case uint16:
		return float64(t), true
	case uint32:
		return float64(t), true
	case uint64:
		return float64(t), true
	}
	return 0, false
}
