// Package cursor implements dot-notation navigation and auto-vivifying
// mutation of a document.Value tree: "server.host", "items.0.name".
package cursor

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/themactep/jct/document"
)

// ErrNavigate is returned when a dot-path cannot be followed: an
// intermediate segment names an object key on an array, or vice versa, or
// indexes past a scalar.
var ErrNavigate = errors.New("cursor: cannot navigate path")

// Get walks root following the dot-separated segments of key, returning the
// value at the end of the path. At each step: an object looks up the
// segment as a key; an array parses the segment as a non-negative decimal
// index. Any other combination (or an out-of-range index, or a missing
// key) fails with ErrNavigate.
func Get(root *document.Value, key string) (*document.Value, error) {
	cur := root
	for _, seg := range splitPath(key) {
		next, err := step(cur, seg)
		if err != nil {
			return nil, err
		}
		cur = next
	}
	return cur, nil
}

// Set walks root the same way Get does, auto-creating missing intermediate
// objects and extending arrays with Null up to the target index, then
// assigns val at the final segment. Set requires root to be a
// document.Value of kind Object at the top (the document root is always an
// object in this system).
func Set(root *document.Value, key string, val *document.Value) error {
	segs := splitPath(key)
	if len(segs) == 0 {
		return fmt.Errorf("%w: empty key", ErrNavigate)
	}

	cur := root
	for _, seg := range segs[:len(segs)-1] {
		next, err := stepAutoVivify(cur, seg)
		if err != nil {
			return err
		}
		cur = next
	}

	last := segs[len(segs)-1]
	switch cur.Kind() {
	case document.KindObject:
		cur.Set(last, val)
		return nil
	case document.KindArray:
		idx, err := parseIndex(last)
		if err != nil {
			return err
		}
		cur.SetIndex(idx, val)
		return nil
	default:
		return fmt.Errorf("%w: segment %q has a scalar parent", ErrNavigate, last)
	}
}

func splitPath(key string) []string {
	if key == "" {
		return nil
	}
	return strings.Split(key, ".")
}

func step(cur *document.Value, seg string) (*document.Value, error) {
	switch cur.Kind() {
	case document.KindObject:
		v, ok := cur.Member(seg)
		if !ok {
			return nil, fmt.Errorf("%w: no key %q", ErrNavigate, seg)
		}
		return v, nil
	case document.KindArray:
		idx, err := parseIndex(seg)
		if err != nil {
			return nil, err
		}
		if idx >= cur.Len() {
			return nil, fmt.Errorf("%w: index %d out of range (len %d)", ErrNavigate, idx, cur.Len())
		}
		return cur.Index(idx), nil
	default:
		return nil, fmt.Errorf("%w: segment %q has a scalar parent", ErrNavigate, seg)
	}
}

// stepAutoVivify is step's Set-side counterpart: a missing object key, or
// an object member that holds a scalar, is replaced by a fresh object; an
// array index at or beyond the current length extends the array with Null
// and places a fresh object at that index. An existing array element is
// returned as it is, so descending further into a scalar element fails.
func stepAutoVivify(cur *document.Value, seg string) (*document.Value, error) {
	switch cur.Kind() {
	case document.KindObject:
		v, ok := cur.Member(seg)
		if !ok {
			v = document.Object()
			cur.Set(seg, v)
			return v, nil
		}
		if v.Kind() != document.KindObject && v.Kind() != document.KindArray {
			// A scalar sits where we need to descend further: replace it
			// with a fresh object, the conventional auto-vivify behavior.
			v = document.Object()
			cur.Set(seg, v)
		}
		return v, nil
	case document.KindArray:
		idx, err := parseIndex(seg)
		if err != nil {
			return nil, err
		}
		if idx >= cur.Len() {
			cur.SetIndex(idx, document.Object())
		}
		return cur.Index(idx), nil
	default:
		return nil, fmt.Errorf("%w: segment %q has a scalar parent", ErrNavigate, seg)
	}
}

func parseIndex(seg string) (int, error) {
	idx, err := strconv.Atoi(seg)
	if err != nil || idx < 0 {
		return 0, fmt.Errorf("%w: %q is not a valid array index", ErrNavigate, seg)
	}
	return idx, nil
}

// Coerce interprets a raw CLI value string per spec.md §4.2: the literal
// tokens "true"/"false"/"null" coerce to their JSON counterparts; otherwise,
// if the entire non-empty string parses as a number (matching C's strtod
// whole-string contract), it coerces to a number; otherwise it is a string.
// The empty string always coerces to an empty string, never to zero.
func Coerce(s string) *document.Value {
	switch s {
	case "true":
		return document.Bool(true)
	case "false":
		return document.Bool(false)
	case "null":
		return document.Null()
	case "":
		return document.String("")
	}
	if n, err := strconv.ParseFloat(s, 64); err == nil {
		return document.Number(n)
	}
	return document.String(s)
}
