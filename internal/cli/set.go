package cli

import (
	"github.com/themactep/jct/cursor"
	"github.com/themactep/jct/internal/cliutil"
	"github.com/themactep/jct/resolver"
)

// runSet implements "set <key> <value>": the target may be an explicit
// path (which may not yet exist) or a short name that must already resolve
// (set never creates a file reached by short name — spec.md §4.5).
func runSet(target string, args []string) error {
	if len(args) != 2 {
		return cliutil.BadInputErr("usage: jct <target> set <key> <value>", nil)
	}
	key, rawValue := args[0], args[1]

	path, err := resolver.ResolveForSet(target, traceSink())
	if err != nil {
		return err
	}

	root, err := readOrEmpty(path)
	if err != nil {
		return err
	}

	val := cursor.Coerce(rawValue)
	if err := cursor.Set(root, key, val); err != nil {
		return cliutil.BadInputErr("set "+key, err)
	}

	return saveDocument(path, root)
}
