package cli

import (
	"fmt"
	"os"

	"github.com/themactep/jct/document"
	"github.com/themactep/jct/internal/cliutil"
	"github.com/themactep/jct/merge"
)

// runImport implements "import <source>": deep-merge source into target
// (spec.md §4.3) and persist the result back to target.
func runImport(target string, args []string) error {
	if len(args) != 1 {
		return cliutil.BadInputErr("usage: jct <target> import <source>", nil)
	}
	source := args[0]

	dest, path, err := loadDocument(target)
	if err != nil {
		return err
	}

	srcData, err := os.ReadFile(source)
	if err != nil {
		return cliutil.IOErr(fmt.Sprintf("reading %s", source), err)
	}
	src, err := document.Parse(srcData)
	if err != nil {
		return cliutil.JSONParseErr(fmt.Sprintf("parsing %s", source), err)
	}

	merged := merge.Merge(dest, src)
	return saveDocument(path, merged)
}
