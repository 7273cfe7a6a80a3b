package shapecheck

import (
	"strconv"
	"strings"
)

// SegKind discriminates path segment variants.
type SegKind int

const (
	SegField SegKind = iota // record field name
	SegIndex                // zero-based sequence index
)

// Seg is one step in an issue path: either a record field name or a sequence
// index, never both.
type Seg struct {
	Kind  SegKind
	Name  string
	Index int
}

// Field returns a path segment addressing a record field.
func Field(name string) Seg { return Seg{Kind: SegField, Name: name} }

// Index returns a path segment addressing a sequence element.
func Index(i int) Seg { return Seg{Kind: SegIndex, Index: i} }

// Path locates where, within a nested input, an issue occurred. It is nil for
// issues raised at the root, otherwise ordered outermost-to-innermost.
type Path []Seg

// Prepend returns a new Path with seg in front. Issues bubble from inner to
// outer validators, so enclosing validators always prepend, never append; the
// final path reads root-to-leaf.
func (p Path) Prepend(seg Seg) Path {
	out := make(Path, 0, len(p)+1)
	out = append(out, seg)
	return append(out, p...)
}

// String renders the path as a JSON-Pointer-like string, e.g. /items/2/price.
// The root path renders as "/".
func (p Path) String() string {
	if len(p) == 0 {
		return "/"
	}
	b := &strings.Builder{}
	for _, s := range p {
		b.WriteByte('/')
		if s.Kind == SegIndex {
			b.WriteString(strconv.Itoa(s.Index))
		} else {
			b.WriteString(s.Name)
		}
	}
	return b.String()
}

// Issue represents a single validation failure.
type Issue struct {
	Message string
	Path    Path // nil when raised at the root
}

// prefixIssues prepends seg to the path of every issue. Messages are carried
// verbatim; compound validators relocate issues, they never rewrite them.
func prefixIssues(seg Seg, issues []Issue) []Issue {
	out := make([]Issue, len(issues))
	for i, it := range issues {
		out[i] = Issue{Message: it.Message, Path: it.Path.Prepend(seg)}
	}
	return out
}
