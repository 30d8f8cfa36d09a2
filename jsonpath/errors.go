package jsonpath

import "errors"

// ErrParse is returned (wrapped) for malformed JSONPath expression syntax:
// unknown selector syntax, an unterminated string literal, a bad slice
// spec, or `@..` inside a filter sub-path (spec.md §9's redesign flag).
var ErrParse = errors.New("jsonpath: parse error")

// ErrEval is returned (wrapped) for evaluation-time problems over an
// otherwise well-formed expression: a negative array index in strict mode,
// a slice with a non-positive step, and similar.
var ErrEval = errors.New("jsonpath: evaluation error")
