package cli

import (
	"fmt"
	"os"

	"github.com/themactep/jct/document"
	"github.com/themactep/jct/internal/cliutil"
	"github.com/themactep/jct/resolver"
)

// runCreate implements "create": the target must be an explicit path
// (never a short name) and must not already exist.
func runCreate(target string, args []string) error {
	if len(args) != 0 {
		return cliutil.BadInputErr("usage: jct <target> create", nil)
	}

	path, err := resolver.ResolveForCreate(target)
	if err != nil {
		return err
	}
	if _, err := os.Stat(path); err == nil {
		return cliutil.BadInputErr(fmt.Sprintf("create: %s already exists", path), nil)
	}

	return saveDocument(path, document.Object())
}
