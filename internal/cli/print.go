package cli

import (
	"fmt"
	"os"

	"github.com/themactep/jct/document"
	"github.com/themactep/jct/internal/cliutil"
)

// runPrint implements "print": pretty-print the whole document.
func runPrint(target string, args []string) error {
	if len(args) != 0 {
		return cliutil.BadInputErr("usage: jct <target> print", nil)
	}

	root, _, err := loadDocument(target)
	if err != nil {
		return err
	}

	pretty, err := document.SerializePretty(root)
	if err != nil {
		return cliutil.BadInputErr("serializing document", err)
	}
	fmt.Fprintln(os.Stdout, pretty)
	return nil
}
