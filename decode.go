package shapecheck

import (
	"fmt"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// DefaultMaxDepth bounds input nesting. Recursive descent depth equals input
// nesting depth, so unbounded documents could exhaust the call stack; the
// decode front-ends refuse anything deeper.
const DefaultMaxDepth = 1000

// DecodeOpt bundles decoding limits.
type DecodeOpt struct {
	MaxDepth int   // maximum nesting depth; DefaultMaxDepth when zero
	MaxBytes int64 // maximum input size in bytes; unlimited when zero
}

func normalizeDecodeOpt(opts []DecodeOpt) DecodeOpt {
	var opt DecodeOpt
	if len(opts) > 0 {
		opt = opts[len(opts)-1]
	}
	if opt.MaxDepth == 0 {
		opt.MaxDepth = DefaultMaxDepth
	}
	return opt
}

// DecodeJSON decodes b into untyped data suitable for validation: objects
// become map[string]any, arrays []any, numbers float64.
func DecodeJSON(b []byte, opts ...DecodeOpt) (any, error) {
	opt := normalizeDecodeOpt(opts)
	if opt.MaxBytes > 0 && int64(len(b)) > opt.MaxBytes {
		return nil, fmt.Errorf("shapecheck: input exceeds %d bytes", opt.MaxBytes)
	}
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return nil, fmt.Errorf("shapecheck: decode json: %w", err)
	}
	if exceedsDepth(v, opt.MaxDepth) {
		return nil, fmt.Errorf("shapecheck: input nested deeper than %d", opt.MaxDepth)
	}
	return v, nil
}

// DecodeYAML decodes b into untyped data suitable for validation. Mappings
// become map[string]any; numbers arrive as int or float64, both of which the
// numeric validator accepts.
func DecodeYAML(b []byte, opts ...DecodeOpt) (any, error) {
	opt := normalizeDecodeOpt(opts)
	if opt.MaxBytes > 0 && int64(len(b)) > opt.MaxBytes {
		return nil, fmt.Errorf("shapecheck: input exceeds %d bytes", opt.MaxBytes)
	}
	var v any
	if err := yaml.Unmarshal(b, &v); err != nil {
		return nil, fmt.Errorf("shapecheck: decode yaml: %w", err)
	}
	if exceedsDepth(v, opt.MaxDepth) {
		return nil, fmt.Errorf("shapecheck: input nested deeper than %d", opt.MaxDepth)
	}
	return v, nil
}

// CheckJSON decodes b as JSON and validates the result with v.
func CheckJSON[T any](v Validator[T], b []byte, opts ...DecodeOpt) (T, error) {
	data, err := DecodeJSON(b, opts...)
	if err != nil {
		var zero T
		return zero, err
	}
	return v.Check(data)
}

// CheckYAML decodes b as YAML and validates the result with v.
func CheckYAML[T any](v Validator[T], b []byte, opts ...DecodeOpt) (T, error) {
	data, err := DecodeYAML(b, opts...)
	if err != nil {
		var zero T
		return zero, err
	}
	return v.Check(data)
}

// exceedsDepth walks containers, stopping as soon as the limit is crossed so
// pathological inputs are never scanned past the boundary.
func exceedsDepth(v any, remaining int) bool {
	switch t := v.(type) {
	case map[string]any:
		if remaining <= 0 {
			return true
		}
		for _, e := range t {
			if exceedsDepth(e, remaining-1) {
				return true
			}
		}
	case []any:
		if remaining <= 0 {
			return true
		}
		for _, e := range t {
			if exceedsDepth(e, remaining-1) {
				return true
			}
		}
	}
	return false
}
