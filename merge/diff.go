package merge

import "github.com/themactep/jct/document"

// Diff returns an object containing only the keys whose values in modified
// differ structurally from original, recursing into nested objects and
// omitting any subtree whose own diff is empty. If either side is not an
// object, Diff returns a clone of modified when the two values are
// unequal, or an empty object when they are equal.
func Diff(modified, original *document.Value) *document.Value {
	if modified.Kind() != document.KindObject || original.Kind() != document.KindObject {
		if document.Equal(modified, original) {
			return document.Object()
		}
		return document.Clone(modified)
	}

	out := document.Object()
	for _, k := range modified.Keys() {
		modVal, _ := modified.Member(k)
		origVal, hadKey := original.Member(k)
		if !hadKey {
			out.Set(k, document.Clone(modVal))
			continue
		}
		if modVal.Kind() == document.KindObject && origVal.Kind() == document.KindObject {
			sub := Diff(modVal, origVal)
			if sub.Len() > 0 {
				out.Set(k, sub)
			}
			continue
		}
		if !document.Equal(modVal, origVal) {
			out.Set(k, document.Clone(modVal))
		}
	}
	return out
}
