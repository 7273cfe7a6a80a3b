package shapecheck_test

import (
	"reflect"
	"testing"

	"github.com/shapecheck/shapecheck"
)

func TestSequenceOf_Success_AllocatesFreshSlice(t *testing.T) {
	v := shapecheck.SequenceOf(shapecheck.Numeric())
	in := []any{1.0, 2.0, 3.0}
	r := v.CheckSafe(in)
	if !r.Ok() {
		t.Fatalf("expected success, got %+v", r.Issues())
	}
	if want := []float64{1, 2, 3}; !reflect.DeepEqual(r.Value(), want) {
		t.Fatalf("expected %v, got %v", want, r.Value())
	}
	// mutating the output must not touch the input
	r.Value()[0] = 99
	if in[0] != 1.0 {
		t.Fatalf("output aliases input")
	}
}

func TestSequenceOf_NonSequenceInput(t *testing.T) {
	v := shapecheck.SequenceOf(shapecheck.Numeric())
	for _, in := range []any{"nope", 1.0, nil, map[string]any{}} {
		r := v.CheckSafe(in)
		if r.Ok() {
			t.Fatalf("expected failure for %#v", in)
		}
		if len(r.Issues()) != 1 || r.Issues()[0].Path != nil {
			t.Fatalf("expected one path-less issue, got %+v", r.Issues())
		}
	}
}

func TestSequenceOf_FirstDefectShortCircuits(t *testing.T) {
	evaluated := make(map[int]bool)
	counting := shapecheck.New(func(in any) shapecheck.Result[float64] {
		evaluated[len(evaluated)] = true
		return shapecheck.Numeric().CheckSafe(in)
	})

	r := shapecheck.SequenceOf(counting).CheckSafe([]any{1.0, "x", 3.0})
	if r.Ok() {
		t.Fatalf("expected failure")
	}
	issues := r.Issues()
	if len(issues) != 1 {
		t.Fatalf("expected exactly one issue, got %d", len(issues))
	}
	if issues[0].Message != "Expected number" {
		t.Fatalf("message must come from the child verbatim, got %q", issues[0].Message)
	}
	if want := (shapecheck.Path{shapecheck.Index(1)}); !reflect.DeepEqual(issues[0].Path, want) {
		t.Fatalf("expected path [1], got %v", issues[0].Path)
	}
	// index 2 is never evaluated in the same call
	if len(evaluated) != 2 {
		t.Fatalf("expected scanning to stop at index 1, evaluated %d elements", len(evaluated))
	}
}

func TestSequenceOf_EmptySequence(t *testing.T) {
	r := shapecheck.SequenceOf(shapecheck.Text()).CheckSafe([]any{})
	if !r.Ok() || len(r.Value()) != 0 {
		t.Fatalf("expected empty success, got %+v", r)
	}
}

func TestSequenceOf_AcceptsTypedSlices(t *testing.T) {
	r := shapecheck.SequenceOf(shapecheck.Text()).CheckSafe([]string{"a", "b"})
	if !r.Ok() || !reflect.DeepEqual(r.Value(), []string{"a", "b"}) {
		t.Fatalf("expected typed slice acceptance, got %+v", r)
	}
}
