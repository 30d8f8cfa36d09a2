package jsonpath

import (
	"fmt"

	"github.com/themactep/jct/document"
)

// step transforms a working set into the next working set. Each selector in
// a compiled expression is one step; evaluation runs the steps in sequence
// starting from the single-element root working set.
type step interface {
	apply(nodes []node, strict bool) ([]node, error)
}

// childStep selects one or more named object members (".name" or the
// bracket union form ['a','b']). A node that is not an object, or does not
// carry one of the names, simply contributes nothing — a missing key is not
// an error in either mode.
type childStep struct {
	names []string
}

func (s childStep) apply(nodes []node, strict bool) ([]node, error) {
	var out []node
	for _, n := range nodes {
		if n.val.Kind() != document.KindObject {
			continue
		}
		for _, name := range s.names {
			if child, ok := n.val.Member(name); ok {
				out = append(out, node{val: child, path: n.path + memberSuffix(name)})
			}
		}
	}
	return out, nil
}

// wildcardStep selects every member of an object or every element of an
// array, in document order. Any other kind contributes nothing.
type wildcardStep struct{}

func (wildcardStep) apply(nodes []node, strict bool) ([]node, error) {
	var out []node
	for _, n := range nodes {
		switch n.val.Kind() {
		case document.KindObject:
			for _, k := range n.val.Keys() {
				child, _ := n.val.Member(k)
				out = append(out, node{val: child, path: n.path + memberSuffix(k)})
			}
		case document.KindArray:
			arr, _ := n.val.AsArray()
			for i, child := range arr {
				out = append(out, node{val: child, path: n.path + indexSuffix(i)})
			}
		}
	}
	return out, nil
}

// indexStep selects one or more array elements by position (the bracket
// union form [0,2,-1] included). In strict mode a negative index is a hard
// evaluation error; in lenient mode it is silently skipped. An index out of range is never an
// error — it just contributes nothing, the same as a missing object key.
type indexStep struct {
	indices []int
}

func (s indexStep) apply(nodes []node, strict bool) ([]node, error) {
	var out []node
	for _, n := range nodes {
		if n.val.Kind() != document.KindArray {
			continue
		}
		arr, _ := n.val.AsArray()
		for _, idx := range s.indices {
			i := idx
			if i < 0 {
				if strict {
					return nil, fmt.Errorf("%w: negative index %d", ErrEval, idx)
				}
				continue
			}
			if i < 0 || i >= len(arr) {
				continue
			}
			out = append(out, node{val: arr[i], path: n.path + indexSuffix(i)})
		}
	}
	return out, nil
}

// sliceStep selects a [start:end:step] range of an array, Python-slice
// style. start defaults to 0, end defaults to the array length, step
// defaults to 1. A non-positive step is a hard error in both modes. A
// negative start or end is a strict-mode error and, in lenient mode,
// produces no elements from that node (rather than aborting the whole
// evaluation).
type sliceStep struct {
	start    *int
	end      *int
	hasStep  bool
	stepSize int
}

func (s sliceStep) apply(nodes []node, strict bool) ([]node, error) {
	step := 1
	if s.hasStep {
		step = s.stepSize
	}
	if step <= 0 {
		return nil, fmt.Errorf("%w: slice step must be positive, got %d", ErrEval, step)
	}

	var out []node
	for _, n := range nodes {
		if n.val.Kind() != document.KindArray {
			continue
		}
		arr, _ := n.val.AsArray()
		length := len(arr)

		start := 0
		if s.start != nil {
			start = *s.start
		}
		end := length
		if s.end != nil {
			end = *s.end
		}

		if (s.start != nil && start < 0) || (s.end != nil && end < 0) {
			if strict {
				return nil, fmt.Errorf("%w: negative bound in slice", ErrEval)
			}
			continue
		}
		if start > length {
			start = length
		}
		if end > length {
			end = length
		}
		for i := start; i < end; i += step {
			out = append(out, node{val: arr[i], path: n.path + indexSuffix(i)})
		}
	}
	return out, nil
}

// recursiveStep expands the working set to every descendant of each current
// node — object members and array elements at any depth, parents appearing
// before their children — without including the nodes themselves. The
// selector that follows (if any) then applies normally to this expanded set.
type recursiveStep struct{}

func (recursiveStep) apply(nodes []node, strict bool) ([]node, error) {
	var out []node
	for _, n := range nodes {
		appendDescendants(&out, n)
	}
	return out, nil
}

func appendDescendants(out *[]node, n node) {
	switch n.val.Kind() {
	case document.KindObject:
		for _, k := range n.val.Keys() {
			child, _ := n.val.Member(k)
			cn := node{val: child, path: n.path + memberSuffix(k)}
			*out = append(*out, cn)
			appendDescendants(out, cn)
		}
	case document.KindArray:
		arr, _ := n.val.AsArray()
		for i, child := range arr {
			cn := node{val: child, path: n.path + indexSuffix(i)}
			*out = append(*out, cn)
			appendDescendants(out, cn)
		}
	}
}

// filterStep evaluates a boolean expression with "@" bound to a candidate
// value. For a node that is an array, the candidate is each element in turn
// and matching elements are selected individually; for any other node, the
// candidate is the node itself and the node is selected wholesale if it
// passes.
type filterStep struct {
	expr boolNode
}

func (s filterStep) apply(nodes []node, strict bool) ([]node, error) {
	var out []node
	for _, n := range nodes {
		if n.val.Kind() == document.KindArray {
			arr, _ := n.val.AsArray()
			for i, elem := range arr {
				ok, err := s.expr.eval(elem)
				if err != nil {
					return nil, err
				}
				if ok {
					out = append(out, node{val: elem, path: n.path + indexSuffix(i)})
				}
			}
			continue
		}
		ok, err := s.expr.eval(n.val)
		if err != nil {
			return nil, err
		}
		if ok {
			out = append(out, n)
		}
	}
	return out, nil
}
