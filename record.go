package shapecheck

import "github.com/shapecheck/shapecheck/i18n"

// FieldSpec is one declared field of a record shape: its name and the
// type-erased validator applied to it.
type FieldSpec struct {
	Name      string
	Validator Validator[any]
}

// RecordBuilder assembles a record validator field by field. Declaration order
// is preserved and drives validation order.
type RecordBuilder struct {
	fields []FieldSpec
	msg    string
}

// Record starts building a validator over a plain data record. Example:
//
//	user := shapecheck.Record().
//		Field("name", shapecheck.Text().Any()).
//		Field("age", shapecheck.Numeric().Any()).
//		Build()
func Record() *RecordBuilder { return &RecordBuilder{} }

// Field declares a named field validated by v.
func (b *RecordBuilder) Field(name string, v Validator[any]) *RecordBuilder {
	b.fields = append(b.fields, FieldSpec{Name: name, Validator: v})
	return b
}

// Message overrides the failure message raised when the input is not a record.
func (b *RecordBuilder) Message(m string) *RecordBuilder {
	b.msg = m
	return b
}

// Build finalizes the shape into an immutable RecordValidator. The builder can
// be discarded afterwards; later mutation does not affect built validators.
func (b *RecordBuilder) Build() RecordValidator {
	fields := make([]FieldSpec, len(b.fields))
	copy(fields, b.fields)
	m := b.msg
	if m == "" {
		m = i18n.T(i18n.KeyRecord)
	}
	v := New(func(in any) Result[map[string]any] {
		rec, ok := in.(map[string]any)
		if !ok {
			// Sequences, scalars, nil, and foreign map types are all rejected
			// where a record is expected.
			return Fail[map[string]any](Issue{Message: m})
		}
		out := make(map[string]any, len(fields))
		for _, f := range fields {
			// Absent properties validate as nil so optional wrappers can
			// special-case them.
			r := f.Validator.CheckSafe(rec[f.Name])
			if !r.Ok() {
				return Fail[map[string]any](prefixIssues(Field(f.Name), r.Issues())...)
			}
			out[f.Name] = r.Value()
		}
		return OK(out)
	})
	return RecordValidator{Validator: v, shape: fields}
}

// RecordValidator validates plain data records and additionally exposes the
// shape it was built from, enabling external tooling to introspect structure
// without re-deriving it. Validation short-circuits across fields exactly as
// SequenceOf does across elements. Extra input fields not present in the shape
// are silently dropped; the validator behaves as a field allow-list, and a
// successful result is a freshly allocated map holding exactly the declared
// fields.
type RecordValidator struct {
	Validator[map[string]any]
	shape []FieldSpec
}

// Shape returns the declared fields in declaration order. The returned slice
// is a copy; mutating it does not affect the validator.
func (r RecordValidator) Shape() []FieldSpec {
	out := make([]FieldSpec, len(r.shape))
	copy(out, r.shape)
	return out
}
