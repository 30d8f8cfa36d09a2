package jsonpath_test

import (
	"testing"

	"github.com/themactep/jct/document"
	"github.com/themactep/jct/jsonpath"
)

const bookstoreDoc = `{
	"store": {
		"book": [
			{"category": "fiction", "author": "Herbert", "title": "Dune", "price": 8},
			{"category": "fiction", "author": "Tolkien", "title": "The Hobbit", "price": 12.5},
			{"category": "reference", "author": "Knuth", "title": "TAOCP", "price": 39.95}
		]
	},
	"arrays": {
		"strings": ["a", "b", "c"]
	},
	"flag": true
}`

func mustDoc(t *testing.T) *document.Value {
	t.Helper()
	v, err := document.Parse([]byte(bookstoreDoc))
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	return v
}

func mustCompile(t *testing.T, expr string) *jsonpath.Expr {
	t.Helper()
	e, err := jsonpath.Compile(expr, true)
	if err != nil {
		t.Fatalf("Compile(%q) error: %v", expr, err)
	}
	return e
}

func asStrings(t *testing.T, vals []*document.Value) []string {
	t.Helper()
	out := make([]string, len(vals))
	for i, v := range vals {
		s, err := v.AsString()
		if err != nil {
			t.Fatalf("value %d is not a string: %v", i, err)
		}
		out[i] = s
	}
	return out
}

func TestRecursiveDescentValues(t *testing.T) {
	root := mustDoc(t)
	expr := mustCompile(t, "$..author")

	res, err := expr.Evaluate(root, jsonpath.Options{Mode: jsonpath.ModeValues})
	if err != nil {
		t.Fatalf("Evaluate error: %v", err)
	}

	got := asStrings(t, res.Values)
	want := []string{"Herbert", "Tolkien", "Knuth"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("index %d: got %q, want %q", i, got[i], want[i])
		}
	}
}

func TestFilterTitles(t *testing.T) {
	root := mustDoc(t)
	expr := mustCompile(t, "$.store.book[?(@.price < 10)].title")

	res, err := expr.Evaluate(root, jsonpath.Options{Mode: jsonpath.ModeValues})
	if err != nil {
		t.Fatalf("Evaluate error: %v", err)
	}

	got := asStrings(t, res.Values)
	if len(got) != 1 || got[0] != "Dune" {
		t.Fatalf("got %v, want [Dune]", got)
	}
}

func TestSlice(t *testing.T) {
	root := mustDoc(t)
	expr := mustCompile(t, "$.store.book[0:2].title")

	res, err := expr.Evaluate(root, jsonpath.Options{Mode: jsonpath.ModeValues})
	if err != nil {
		t.Fatalf("Evaluate error: %v", err)
	}

	got := asStrings(t, res.Values)
	want := []string{"Dune", "The Hobbit"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("index %d: got %q, want %q", i, got[i], want[i])
		}
	}
}

func TestPathsMode(t *testing.T) {
	root := mustDoc(t)
	expr := mustCompile(t, "$.arrays.strings[*]")

	res, err := expr.Evaluate(root, jsonpath.Options{Mode: jsonpath.ModePaths})
	if err != nil {
		t.Fatalf("Evaluate error: %v", err)
	}

	want := []string{"$.arrays.strings[0]", "$.arrays.strings[1]", "$.arrays.strings[2]"}
	if len(res.Paths) != len(want) {
		t.Fatalf("got %v, want %v", res.Paths, want)
	}
	for i := range want {
		if res.Paths[i] != want[i] {
			t.Errorf("index %d: got %q, want %q", i, res.Paths[i], want[i])
		}
	}
}

func TestPairsMode(t *testing.T) {
	root := mustDoc(t)
	expr := mustCompile(t, "$.arrays.strings[0]")

	res, err := expr.Evaluate(root, jsonpath.Options{Mode: jsonpath.ModePairs})
	if err != nil {
		t.Fatalf("Evaluate error: %v", err)
	}
	if len(res.Pairs) != 1 {
		t.Fatalf("expected 1 pair, got %d", len(res.Pairs))
	}
	if res.Pairs[0].Path != "$.arrays.strings[0]" {
		t.Errorf("unexpected path %q", res.Pairs[0].Path)
	}
	s, _ := res.Pairs[0].Value.AsString()
	if s != "a" {
		t.Errorf("unexpected value %q", s)
	}
}

func TestUnwrapSingle(t *testing.T) {
	root := mustDoc(t)
	expr := mustCompile(t, "$.flag")

	res, err := expr.Evaluate(root, jsonpath.Options{Mode: jsonpath.ModeValues, UnwrapSingle: true})
	if err != nil {
		t.Fatalf("Evaluate error: %v", err)
	}
	if !res.Unwrapped || res.Single == nil {
		t.Fatalf("expected unwrapped single result, got %+v", res)
	}
	b, err := res.Single.AsBool()
	if err != nil || !b {
		t.Errorf("expected unwrapped value true, got %v (err=%v)", b, err)
	}
}

func TestLimit(t *testing.T) {
	root := mustDoc(t)
	expr := mustCompile(t, "$.store.book[*].title")

	res, err := expr.Evaluate(root, jsonpath.Options{Mode: jsonpath.ModeValues, Limit: 2})
	if err != nil {
		t.Fatalf("Evaluate error: %v", err)
	}
	if len(res.Values) != 2 {
		t.Fatalf("expected 2 results under limit, got %d", len(res.Values))
	}
}

func TestStrictNegativeIndexIsEvalError(t *testing.T) {
	root := mustDoc(t)
	expr := mustCompile(t, "$.arrays.strings[-1]")

	_, err := expr.Evaluate(root, jsonpath.Options{Mode: jsonpath.ModeValues})
	if err == nil {
		t.Fatal("expected a strict-mode error for negative index")
	}
}

func TestLenientNegativeIndexSkips(t *testing.T) {
	root := mustDoc(t)
	e, err := jsonpath.Compile("$.arrays.strings[-1]", false)
	if err != nil {
		t.Fatalf("unexpected compile error: %v", err)
	}

	res, err := e.Evaluate(root, jsonpath.Options{Mode: jsonpath.ModeValues})
	if err != nil {
		t.Fatalf("lenient mode must not return an error: %v", err)
	}
	if len(res.Values) != 0 {
		t.Errorf("expected empty result, got %v", res.Values)
	}
}

func TestLenientBadSyntaxYieldsEmptyResult(t *testing.T) {
	e, err := jsonpath.Compile("$.store[", false)
	if err != nil {
		t.Fatalf("lenient Compile must not error: %v", err)
	}

	root := mustDoc(t)
	res, err := e.Evaluate(root, jsonpath.Options{Mode: jsonpath.ModeValues})
	if err != nil {
		t.Fatalf("lenient Evaluate must not error: %v", err)
	}
	if len(res.Values) != 0 {
		t.Errorf("expected empty result, got %v", res.Values)
	}
}

func TestStrictBadSyntaxIsParseError(t *testing.T) {
	_, err := jsonpath.Compile("$.store[", true)
	if err == nil {
		t.Fatal("expected a parse error in strict mode")
	}
}

func TestFilterAtDoubleDotIsParseError(t *testing.T) {
	_, err := jsonpath.Compile("$.store.book[?(@..price < 10)]", true)
	if err == nil {
		t.Fatal("expected a parse error for '..' inside a filter sub-path")
	}
}

func TestFilterAndOrNot(t *testing.T) {
	root := mustDoc(t)
	expr := mustCompile(t, "$.store.book[?(@.price > 10 && !(@.category == 'reference') || @.price < 0)].title")

	res, err := expr.Evaluate(root, jsonpath.Options{Mode: jsonpath.ModeValues})
	if err != nil {
		t.Fatalf("Evaluate error: %v", err)
	}
	got := asStrings(t, res.Values)
	if len(got) != 1 || got[0] != "The Hobbit" {
		t.Fatalf("got %v, want [The Hobbit]", got)
	}
}

func TestWildcardObject(t *testing.T) {
	root := mustDoc(t)
	expr := mustCompile(t, "$.store.*")

	res, err := expr.Evaluate(root, jsonpath.Options{Mode: jsonpath.ModeValues})
	if err != nil {
		t.Fatalf("Evaluate error: %v", err)
	}
	if len(res.Values) != 1 {
		t.Fatalf("expected 1 value, got %d", len(res.Values))
	}
}
