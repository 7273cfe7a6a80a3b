// Package formdata serializes nested records into flat key-path form pairs and
// reconstructs them. Sequence elements are addressed with bracketed numeric
// indices (items[0]) and record fields with bracketed names (user[name]).
// Scalars lose their type on the wire: decoding yields text for every scalar,
// while binary attachments stay distinct from text fields.
package formdata

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

var (
	// ErrUnsupportedValue reports a value kind that has no form representation.
	ErrUnsupportedValue = errors.New("formdata: unsupported value")
	// ErrMalformedKey reports a key path that cannot be parsed.
	ErrMalformedKey = errors.New("formdata: malformed key")
	// ErrShapeConflict reports a key set that addresses the same location both
	// as a record and as a sequence.
	ErrShapeConflict = errors.New("formdata: conflicting shapes for key")
)

// Pair is one flat key-path/value text field.
type Pair struct {
	Key   string
	Value string
}

// File is a binary attachment addressed by the same key-path syntax as text
// fields but carried separately.
type File struct {
	Key  string
	Data []byte
}

// Form is the flat wire representation of a nested record.
type Form struct {
	Pairs []Pair
	Files []File
}

// Encode flattens a nested record into a Form. Record fields are emitted in
// lexicographic order so output is deterministic. Nil values are skipped: the
// wire format has no way to round-trip them.
func Encode(rec map[string]any) (Form, error) {
	var f Form
	if err := encodeRecord(&f, "", rec); err != nil {
		return Form{}, err
	}
	return f, nil
}

func encodeRecord(f *Form, prefix string, rec map[string]any) error {
	keys := make([]string, 0, len(rec))
	for k := range rec {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		key := k
		if prefix != "" {
			key = prefix + "[" + k + "]"
		}
		if err := encodeValue(f, key, rec[k]); err != nil {
			return err
		}
	}
	return nil
}

func encodeValue(f *Form, key string, v any) error {
	switch t := v.(type) {
	case nil:
		return nil
	case map[string]any:
		return encodeRecord(f, key, t)
	case []any:
		for i, el := range t {
			if err := encodeValue(f, key+"["+strconv.Itoa(i)+"]", el); err != nil {
				return err
			}
		}
		return nil
	case []byte:
		f.Files = append(f.Files, File{Key: key, Data: t})
		return nil
	case string:
		f.Pairs = append(f.Pairs, Pair{Key: key, Value: t})
		return nil
	case bool:
		f.Pairs = append(f.Pairs, Pair{Key: key, Value: strconv.FormatBool(t)})
		return nil
	case float64:
		f.Pairs = append(f.Pairs, Pair{Key: key, Value: strconv.FormatFloat(t, 'g', -1, 64)})
		return nil
	case float32:
		f.Pairs = append(f.Pairs, Pair{Key: key, Value: strconv.FormatFloat(float64(t), 'g', -1, 32)})
		return nil
	case int:
		f.Pairs = append(f.Pairs, Pair{Key: key, Value: strconv.Itoa(t)})
		return nil
	case int64:
		f.Pairs = append(f.Pairs, Pair{Key: key, Value: strconv.FormatInt(t, 10)})
		return nil
	case uint64:
		f.Pairs = append(f.Pairs, Pair{Key: key, Value: strconv.FormatUint(t, 10)})
		return nil
	default:
		return fmt.Errorf("%w: %T at %q", ErrUnsupportedValue, v, key)
	}
}

// Decode reconstructs the nested record a Form was encoded from. Every scalar
// comes back as text; attachments come back as []byte. The nested shape is
// identical to the encoded one apart from those value kinds.
func Decode(f Form) (map[string]any, error) {
	root := map[string]any{}
	for _, p := range f.Pairs {
		if err := place(root, p.Key, p.Value); err != nil {
			return nil, err
		}
	}
	for _, file := range f.Files {
		if err := place(root, file.Key, file.Data); err != nil {
			return nil, err
		}
	}
	return root, nil
}

// place walks/creates containers along the key path and sets the leaf value.
func place(root map[string]any, key string, v any) error {
	segs, err := splitKey(key)
	if err != nil {
		return err
	}
	return placeInRecord(root, key, segs, v)
}

func placeInRecord(rec map[string]any, key string, segs []string, v any) error {
	name := segs[0]
	if len(segs) == 1 {
		rec[name] = v
		return nil
	}
	child, err := containerFor(rec[name], key, segs[1])
	if err != nil {
		return err
	}
	child, err = placeIn(child, key, segs[1:], v)
	if err != nil {
		return err
	}
	rec[name] = child
	return nil
}

// placeIn dispatches on the container kind. Sequences may be reallocated when
// grown, so the (possibly new) container is returned.
func placeIn(container any, key string, segs []string, v any) (any, error) {
	switch c := container.(type) {
	case map[string]any:
		return c, placeInRecord(c, key, segs, v)
	case []any:
		idx, _ := strconv.Atoi(segs[0])
		for len(c) <= idx {
			c = append(c, nil)
		}
		if len(segs) == 1 {
			c[idx] = v
			return c, nil
		}
		child, err := containerFor(c[idx], key, segs[1])
		if err != nil {
			return nil, err
		}
		child, err = placeIn(child, key, segs[1:], v)
		if err != nil {
			return nil, err
		}
		c[idx] = child
		return c, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrShapeConflict, key)
	}
}

// containerFor returns the existing container at a location or allocates one
// matching the next segment: all-digit segments address sequences, anything
// else addresses records.
func containerFor(existing any, key, nextSeg string) (any, error) {
	wantSeq := isIndexSeg(nextSeg)
	switch existing.(type) {
	case nil:
		if wantSeq {
			return []any{}, nil
		}
		return map[string]any{}, nil
	case map[string]any:
		if wantSeq {
			return nil, fmt.Errorf("%w: %q", ErrShapeConflict, key)
		}
		return existing, nil
	case []any:
		if !wantSeq {
			return nil, fmt.Errorf("%w: %q", ErrShapeConflict, key)
		}
		return existing, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrShapeConflict, key)
	}
}

func isIndexSeg(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// splitKey parses "user[addr][0]" into ["user", "addr", "0"].
func splitKey(key string) ([]string, error) {
	head := key
	rest := ""
	if i := strings.IndexByte(key, '['); i >= 0 {
		head, rest = key[:i], key[i:]
	}
	if head == "" {
		return nil, fmt.Errorf("%w: %q", ErrMalformedKey, key)
	}
	segs := []string{head}
	for rest != "" {
		if rest[0] != '[' {
			return nil, fmt.Errorf("%w: %q", ErrMalformedKey, key)
		}
		end := strings.IndexByte(rest, ']')
		if end < 0 {
			return nil, fmt.Errorf("%w: %q", ErrMalformedKey, key)
		}
		seg := rest[1:end]
		if seg == "" {
			return nil, fmt.Errorf("%w: %q", ErrMalformedKey, key)
		}
		segs = append(segs, seg)
		rest = rest[end+1:]
	}
	return segs, nil
}
