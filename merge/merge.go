// Package merge implements deep merge and structural diff over
// document.Value trees (spec.md §4.3).
package merge

import "github.com/themactep/jct/document"

// Merge merges src into dest and returns the result. If both dest and src
// are objects, each key in src is merged recursively: a key present as an
// object on both sides is merged in place; otherwise dest's value for that
// key becomes a clone of src's value. If either side is not an object
// (including dest == nil), the result is wholesale a clone of src —
// mergeProfile in the harvx teacher pack expresses the same "objects merge
// field-by-field, anything else replaces wholesale" rule over a concrete
// struct; here it operates over the generic document tree.
func Merge(dest, src *document.Value) *document.Value {
	if dest == nil {
		return document.Clone(src)
	}
	if dest.Kind() != document.KindObject || src.Kind() != document.KindObject {
		return document.Clone(src)
	}

	result := document.Clone(dest)
	for _, k := range src.Keys() {
		srcVal, _ := src.Member(k)
		if destVal, ok := result.Member(k); ok && destVal.Kind() == document.KindObject && srcVal.Kind() == document.KindObject {
			result.Set(k, Merge(destVal, srcVal))
			continue
		}
		result.Set(k, document.Clone(srcVal))
	}
	return result
}
