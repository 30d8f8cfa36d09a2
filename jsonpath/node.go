package jsonpath

import (
	"fmt"
	"strings"

	"github.com/themactep/jct/document"
)

// node is a single member of the working set: a value paired with the
// canonical path string that reaches it from the root.
type node struct {
	val  *document.Value
	path string
}

func isIdentSafe(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if i == 0 && !isIdentStart(r) {
			return false
		}
		if i > 0 && !isIdentCont(r) {
			return false
		}
	}
	return true
}

// memberSuffix renders the path component for an object member name,
// preferring dotted form when the name is a safe identifier and falling
// back to bracket-quoted form otherwise.
func memberSuffix(name string) string {
	if isIdentSafe(name) {
		return "." + name
	}
	return "['" + strings.ReplaceAll(name, "'", "\\'") + "']"
}

func indexSuffix(i int) string {
	return fmt.Sprintf("[%d]", i)
}
