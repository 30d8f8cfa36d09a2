// Package resolver implements jct's short-name path resolution (spec.md
// §4.5): an explicit path (one with a separator, or ending in ".json")
// bypasses search entirely; anything else is probed against an ordered
// candidate list. The symlink-following and diagnostic-logging style is
// grounded on harvx's config.DiscoverRepoConfig, generalized from "walk
// parent directories looking for one filename" to "probe a fixed ordered
// list of candidate paths".
package resolver

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/themactep/jct/internal/cliutil"
)

// Trace receives one line per candidate considered, when the caller wants
// --trace-resolve narration. A nil Trace is a valid no-op sink.
type Trace func(format string, args ...any)

// TraceTo adapts an io.Writer (e.g. cliutil.NewTraceWriter's output) into a
// Trace callback.
func TraceTo(w io.Writer) Trace {
	if w == nil {
		return nil
	}
	return func(format string, args ...any) {
		fmt.Fprintf(w, format+"\n", args...)
	}
}

// IsExplicit reports whether target is an explicit path: it contains a
// path separator, or ends in ".json". Explicit paths are never searched.
func IsExplicit(target string) bool {
	if strings.ContainsRune(target, '/') || strings.ContainsRune(target, '\\') {
		return true
	}
	return strings.HasSuffix(target, ".json")
}

// Candidates returns the ordered list of paths that a short name resolves
// against: "./<name>", "./<name>.json", "/etc/<name>.json".
func Candidates(name string) []string {
	return []string{
		"./" + name,
		"./" + name + ".json",
		"/etc/" + name + ".json",
	}
}

// trace invokes t if non-nil.
func trace(t Trace, format string, args ...any) {
	if t != nil {
		t(format, args...)
	}
}

// candidateOutcome is probe's verdict on one candidate: probe follows
// symlinks at path and reports whether it selects a readable regular file,
// is absent, should be skipped (directory or other non-regular node), or is
// present but unreadable (permission denied — a terminal outcome, no further
// candidates are tried).
type candidateOutcome int

const (
	outcomeAbsent candidateOutcome = iota
	outcomeSkip
	outcomeSelected
	outcomeUnreadable
)

func probe(path string) (candidateOutcome, string) {
	resolved, err := filepath.EvalSymlinks(path)
	if err != nil {
		if os.IsNotExist(err) {
			return outcomeAbsent, path
		}
		// A broken symlink or a path component that isn't a directory
		// resolves neither to "exists" nor cleanly to ENOENT on every
		// platform; treat it as absent and move on to the next candidate.
		return outcomeAbsent, path
	}

	info, err := os.Stat(resolved)
	if err != nil {
		if os.IsNotExist(err) {
			return outcomeAbsent, resolved
		}
		if os.IsPermission(err) {
			return outcomeUnreadable, resolved
		}
		return outcomeAbsent, resolved
	}
	if !info.Mode().IsRegular() {
		return outcomeSkip, resolved
	}

	f, err := os.Open(resolved)
	if err != nil {
		if os.IsPermission(err) {
			return outcomeUnreadable, resolved
		}
		return outcomeAbsent, resolved
	}
	f.Close()
	return outcomeSelected, resolved
}

// Resolve implements the full decision in spec.md §4.5's "Given a target
// argument and a command category" search, for verbs that require an
// existing file (get/print/path, and set's short-name form). For an
// explicit target it simply checks existence/readability without search.
func Resolve(target string, t Trace) (string, error) {
	if IsExplicit(target) {
		trace(t, "explicit path %s, no search performed", target)
		outcome, resolved := probe(target)
		switch outcome {
		case outcomeSelected:
			trace(t, "selected %s", resolved)
			return resolved, nil
		case outcomeUnreadable:
			trace(t, "permission denied: %s", resolved)
			return "", cliutil.PermissionDeniedErr(fmt.Sprintf("permission denied: %s", target), nil)
		default:
			trace(t, "not found: %s", target)
			return "", cliutil.NotFoundErr(fmt.Sprintf("file not found: %s", target), nil)
		}
	}

	var tried []string
	for _, cand := range Candidates(target) {
		tried = append(tried, cand)
		outcome, resolved := probe(cand)
		switch outcome {
		case outcomeAbsent:
			trace(t, "candidate %s: not found", cand)
			continue
		case outcomeSkip:
			trace(t, "candidate %s: not a regular file, skipping", cand)
			continue
		case outcomeUnreadable:
			trace(t, "candidate %s: permission denied, stopping search", cand)
			return "", cliutil.PermissionDeniedErr(fmt.Sprintf("permission denied: %s", cand), nil)
		case outcomeSelected:
			trace(t, "candidate %s: selected", cand)
			return resolved, nil
		}
	}

	trace(t, "no candidate resolved for %q", target)
	return "", cliutil.NotFoundErr(
		fmt.Sprintf("short name %q did not resolve; tried: %s", target, strings.Join(tried, ", ")),
		nil,
	)
}

// ResolveForCreate implements create's policy: the target must be an
// explicit path. A short name is rejected with a diagnostic advising the
// caller to supply an explicit "./<name>.json" path.
func ResolveForCreate(target string) (string, error) {
	if !IsExplicit(target) {
		return "", cliutil.BadInputErr(
			fmt.Sprintf("create requires an explicit path; try ./%s.json", target), nil,
		)
	}
	return target, nil
}

// ResolveForSet implements set's policy: an explicit path is accepted and
// may not yet exist (set may create it); a short name must resolve to an
// existing, readable file — set never creates a file reached by short name.
func ResolveForSet(target string, t Trace) (string, error) {
	if IsExplicit(target) {
		trace(t, "explicit path %s, may create", target)
		return target, nil
	}
	return Resolve(target, t)
}
