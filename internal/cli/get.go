package cli

import (
	"fmt"
	"os"

	"github.com/themactep/jct/cursor"
	"github.com/themactep/jct/document"
	"github.com/themactep/jct/internal/cliutil"
)

// runGet implements "get <key>": a scalar prints raw on one line; an
// object or array prints as pretty JSON followed by a newline (spec.md
// §6's "Output shaping for get").
func runGet(target string, args []string) error {
	if len(args) != 1 {
		return cliutil.BadInputErr("usage: jct <target> get <key>", nil)
	}
	key := args[0]

	root, _, err := loadDocument(target)
	if err != nil {
		return err
	}

	val, err := cursor.Get(root, key)
	if err != nil {
		return cliutil.NotFoundErr(fmt.Sprintf("get %q", key), err)
	}

	if text, ok := document.ScalarText(val); ok {
		fmt.Fprintln(os.Stdout, text)
		return nil
	}
	pretty, err := document.SerializePretty(val)
	if err != nil {
		return cliutil.BadInputErr("serializing result", err)
	}
	fmt.Fprintln(os.Stdout, pretty)
	return nil
}
