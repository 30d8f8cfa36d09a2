package cli

import (
	"fmt"
	"os"

	"github.com/themactep/jct/atomicfile"
	"github.com/themactep/jct/document"
	"github.com/themactep/jct/internal/cliutil"
	"github.com/themactep/jct/resolver"
)

const defaultFileMode = 0o644

// atomicWrite writes data to path atomically, preserving the existing
// file's mode if path already exists.
func atomicWrite(path string, data []byte) error {
	mode := os.FileMode(defaultFileMode)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}
	return atomicfile.Write(path, data, mode)
}

// dispatch routes a parsed (target, verb, args) triple to its handler.
func dispatch(target, verb string, args []string) error {
	switch verb {
	case "get":
		return runGet(target, args)
	case "set":
		return runSet(target, args)
	case "create":
		return runCreate(target, args)
	case "print":
		return runPrint(target, args)
	case "import":
		return runImport(target, args)
	case "restore":
		return runRestore(target, args)
	case "path":
		return runPath(target, args)
	default:
		return cliutil.BadInputErr(fmt.Sprintf("unknown verb %q", verb), nil)
	}
}

func traceSink() resolver.Trace {
	if !traceResolve {
		return nil
	}
	return resolver.TraceTo(cliutil.NewTraceWriter(os.Stderr))
}

// loadDocument resolves target for a read-oriented verb (get/print/path,
// and import's destination) and parses it.
func loadDocument(target string) (*document.Value, string, error) {
	path, err := resolver.Resolve(target, traceSink())
	if err != nil {
		return nil, "", err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, "", cliutil.IOErr(fmt.Sprintf("reading %s", path), err)
	}
	root, err := document.Parse(data)
	if err != nil {
		return nil, "", cliutil.JSONParseErr(fmt.Sprintf("parsing %s", path), err)
	}
	return root, path, nil
}

// readOrEmpty parses the document at path, or returns a fresh empty object
// if path does not yet exist — set's explicit-path form may create.
func readOrEmpty(path string) (*document.Value, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return document.Object(), nil
		}
		return nil, cliutil.IOErr(fmt.Sprintf("reading %s", path), err)
	}
	root, err := document.Parse(data)
	if err != nil {
		return nil, cliutil.JSONParseErr(fmt.Sprintf("parsing %s", path), err)
	}
	return root, nil
}

// saveDocument serializes root as canonical pretty JSON (sorted keys,
// two-space indent, trailing newline) and writes it atomically to path.
func saveDocument(path string, root *document.Value) error {
	out, err := document.SerializePretty(root)
	if err != nil {
		return cliutil.BadInputErr(fmt.Sprintf("serializing %s", path), err)
	}
	if err := atomicWrite(path, []byte(out+"\n")); err != nil {
		return cliutil.IOErr(fmt.Sprintf("writing %s", path), err)
	}
	return nil
}
