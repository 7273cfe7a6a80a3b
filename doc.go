// Package shapecheck validates and coerces untyped input data against a
// declared shape, producing either a typed value or a structured list of
// validation issues. It targets API boundaries, form submissions, and
// configuration objects where data arrives untyped and must be checked before
// use.
//
// Validators are immutable values built by composition:
//
//	user := shapecheck.Record().
//		Field("name", shapecheck.Text().Any()).
//		Field("age", shapecheck.Numeric().Any()).
//		Field("tags", shapecheck.SequenceOf(shapecheck.Text()).Any()).
//		Build()
//
//	out, err := user.Check(input)            // fail-fast path
//	res := user.CheckSafe(input)             // issues-as-data path
//
// Both entry points run the same underlying logic; they differ only in
// control-flow surface. Failed validations carry ordered issues whose paths
// read root-to-leaf, composed as failures bubble out of nested validators.
//
// Validation is short-circuit: sequences and records report the first failing
// element or field per pass rather than an exhaustive list.
//
// All operations are synchronous and free of shared mutable state, so a
// validator may be used from any number of goroutines at once.
package shapecheck
