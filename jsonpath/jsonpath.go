package jsonpath

import (
	"fmt"

	"github.com/themactep/jct/document"
)

// Mode selects the shape of a query's result set.
type Mode int

const (
	// ModeValues returns the matched values themselves, deep-cloned from
	// the source document.
	ModeValues Mode = iota
	// ModePaths returns the canonical path string of each match.
	ModePaths
	// ModePairs returns {path, value} for each match.
	ModePairs
)

// Pair is one element of a ModePairs result.
type Pair struct {
	Path  string
	Value *document.Value
}

// Options controls how Evaluate shapes its result.
type Options struct {
	Mode Mode
	// Limit caps the number of matches returned. Zero means unlimited.
	Limit int
	// UnwrapSingle, meaningful only with Mode == ModeValues, sets
	// Result.Single to the lone matched value when the match count is
	// exactly one and that value is a scalar (not an array or object).
	// Values still holds the match as a one-element slice.
	UnwrapSingle bool
}

// Result is the outcome of evaluating a compiled expression.
type Result struct {
	Values []*document.Value
	Paths  []string
	Pairs  []Pair
	// Single holds the lone matched value when Options.UnwrapSingle
	// applied; Unwrapped reports whether it did.
	Single    *document.Value
	Unwrapped bool
}

// Expr is a compiled JSONPath expression.
type Expr struct {
	steps  []step
	strict bool
	// empty marks an expression that failed to parse in lenient mode: it
	// always evaluates to zero matches rather than propagating the parse
	// error.
	empty bool
}

// Compile parses a JSONPath expression. In strict mode a malformed
// expression is returned as an error (ErrParse); in lenient mode it is
// instead captured as an Expr that always evaluates to an empty result, per
// the "any error yields an empty result, silently" contract (spec.md §4.4).
func Compile(expr string, strict bool) (*Expr, error) {
	steps, err := parseExpr(expr)
	if err != nil {
		if strict {
			return nil, err
		}
		return &Expr{strict: false, empty: true}, nil
	}
	return &Expr{steps: steps, strict: strict}, nil
}

// Evaluate runs the compiled expression against root and shapes the result
// per opts. In strict mode an evaluation-time error (ErrEval) aborts and is
// returned; in lenient mode any such error instead yields an empty result
// with no error.
func (e *Expr) Evaluate(root *document.Value, opts Options) (Result, error) {
	if e.empty {
		return shapeResult(nil, opts), nil
	}

	working := []node{{val: root, path: "$"}}
	var err error
	for _, s := range e.steps {
		working, err = s.apply(working, e.strict)
		if err != nil {
			if e.strict {
				return Result{}, fmt.Errorf("evaluating jsonpath expression: %w", err)
			}
			return shapeResult(nil, opts), nil
		}
	}

	if opts.Limit > 0 && len(working) > opts.Limit {
		working = working[:opts.Limit]
	}
	return shapeResult(working, opts), nil
}

func shapeResult(working []node, opts Options) Result {
	var res Result
	switch opts.Mode {
	case ModePaths:
		res.Paths = make([]string, len(working))
		for i, n := range working {
			res.Paths[i] = n.path
		}
	case ModePairs:
		res.Pairs = make([]Pair, len(working))
		for i, n := range working {
			res.Pairs[i] = Pair{Path: n.path, Value: document.Clone(n.val)}
		}
	default:
		res.Values = make([]*document.Value, len(working))
		for i, n := range working {
			res.Values[i] = document.Clone(n.val)
		}
		if opts.UnwrapSingle && len(res.Values) == 1 {
			if k := res.Values[0].Kind(); k != document.KindArray && k != document.KindObject {
				res.Single = res.Values[0]
				res.Unwrapped = true
			}
		}
	}
	return res
}
