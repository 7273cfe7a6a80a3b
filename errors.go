package shapecheck

import (
	"errors"
	"fmt"
	"strings"
)

// SchemaError is the throwable counterpart of a failed Result. It carries the
// issue list verbatim: no message is rewritten, no path is transformed. It is
// constructed only by Check and MustCheck, never by CheckSafe.
type SchemaError struct {
	Issues []Issue
}

// Error summarizes the first few issues.
func (e *SchemaError) Error() string {
	if e == nil || len(e.Issues) == 0 {
		return "shapecheck: validation failed"
	}
	const maxShown = 3
	b := &strings.Builder{}
	b.WriteString("shapecheck: ")
	n := len(e.Issues)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := e.Issues[i]
		fmt.Fprintf(b, "%s at %s", it.Message, it.Path.String())
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// AsSchemaError extracts a *SchemaError from an error chain using errors.As
// internally.
func AsSchemaError(err error) (*SchemaError, bool) {
	if err == nil {
		return nil, false
	}
	var se *SchemaError
	if errors.As(err, &se) {
		return se, true
	}
	return nil, false
}
