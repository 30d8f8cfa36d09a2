package cli

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"
	"github.com/themactep/jct/document"
	"github.com/themactep/jct/internal/cliutil"
	"github.com/themactep/jct/jsonpath"
)

// runPath implements "path <expr> [options]". Its flags (--mode, --limit,
// --strict, --pretty, --unwrap-single) belong to path alone, so they are
// parsed with a dedicated pflag.FlagSet rather than being registered on the
// disabled-flag-parsing root command (spec.md §6).
func runPath(target string, args []string) error {
	fs := pflag.NewFlagSet("path", pflag.ContinueOnError)
	mode := fs.String("mode", "values", "result mode: values|paths|pairs")
	limit := fs.Int("limit", 0, "truncate results to the first N matches")
	strict := fs.Bool("strict", false, "strict JSONPath failure semantics")
	pretty := fs.Bool("pretty", false, "pretty-print value results")
	unwrapSingle := fs.Bool("unwrap-single", false, "emit a lone scalar result unwrapped")

	if err := fs.Parse(args); err != nil {
		return cliutil.BadInputErr("parsing path options", err)
	}
	positional := fs.Args()
	if len(positional) != 1 {
		return cliutil.BadInputErr("usage: jct <target> path <expr> [options]", nil)
	}
	expr := positional[0]

	resultMode, err := parseMode(*mode)
	if err != nil {
		return err
	}

	root, _, err := loadDocument(target)
	if err != nil {
		return err
	}

	compiled, err := jsonpath.Compile(expr, *strict)
	if err != nil {
		return cliutil.PathParseErr(fmt.Sprintf("compiling %q", expr), err)
	}

	res, err := compiled.Evaluate(root, jsonpath.Options{
		Mode:         resultMode,
		Limit:        *limit,
		UnwrapSingle: *unwrapSingle,
	})
	if err != nil {
		return cliutil.PathEvalErr(fmt.Sprintf("evaluating %q", expr), err)
	}

	return printPathResult(res, resultMode, *pretty)
}

func parseMode(s string) (jsonpath.Mode, error) {
	switch s {
	case "values":
		return jsonpath.ModeValues, nil
	case "paths":
		return jsonpath.ModePaths, nil
	case "pairs":
		return jsonpath.ModePairs, nil
	default:
		return 0, cliutil.BadInputErr(fmt.Sprintf("unknown --mode %q (want values|paths|pairs)", s), nil)
	}
}

func printPathResult(res jsonpath.Result, mode jsonpath.Mode, pretty bool) error {
	switch mode {
	case jsonpath.ModePaths:
		for _, p := range res.Paths {
			fmt.Fprintln(os.Stdout, p)
		}
		return nil
	case jsonpath.ModePairs:
		arr := document.Array()
		for _, p := range res.Pairs {
			pair := document.Object()
			pair.Set("path", document.String(p.Path))
			pair.Set("value", p.Value)
			arr.Append(pair)
		}
		return printValuesArray(arr, pretty)
	default:
		if res.Unwrapped {
			return printSingleValue(res.Single, pretty)
		}
		arr := document.Array()
		for _, v := range res.Values {
			arr.Append(v)
		}
		return printValuesArray(arr, pretty)
	}
}

func printSingleValue(v *document.Value, pretty bool) error {
	if text, ok := document.ScalarText(v); ok {
		fmt.Fprintln(os.Stdout, text)
		return nil
	}
	return printValuesArray(v, pretty)
}

func printValuesArray(v *document.Value, pretty bool) error {
	if pretty {
		out, err := document.SerializePretty(v)
		if err != nil {
			return cliutil.BadInputErr("serializing path result", err)
		}
		fmt.Fprintln(os.Stdout, out)
		return nil
	}
	out, err := document.Serialize(v)
	if err != nil {
		return cliutil.BadInputErr("serializing path result", err)
	}
	fmt.Fprintln(os.Stdout, out)
	return nil
}
