package shapecheck

// Vendor is the fixed string identifying this implementation in the
// cross-library validation contract.
const Vendor = "shapecheck"

// InteropVersion is the protocol version of the cross-library contract.
const InteropVersion = 1

// SchemaProps is the vendor-neutral capability a validator exposes to external
// tooling. Validate maps an arbitrary value to a Result with semantics
// identical to CheckSafe; Vendor and Version let consumers detect protocol
// compliance without depending on this package's concrete types.
type SchemaProps struct {
	Vendor   string
	Version  int
	Validate func(in any) Result[any]
}

// StandardSchema is implemented by any value that can be consumed as a
// validator through the interop contract. External code receiving any
// implementation may treat it as a validator regardless of its origin.
type StandardSchema interface {
	StandardSchema() SchemaProps
}

// StandardSchema exposes the interop capability marker. For any input the
// returned Validate produces a result equivalent to CheckSafe.
func (v Validator[T]) StandardSchema() SchemaProps {
	erased := v.Any()
	return SchemaProps{
		Vendor:   Vendor,
		Version:  InteropVersion,
		Validate: erased.CheckSafe,
	}
}
