// Package cli implements the jct command-line front-end: a cobra root
// command over a dispatcher that resolves "<target> <verb> [args...]" to
// one of the seven verb handlers (spec.md §6). The overall Execute/exit-code
// extraction pattern, and the one-file-per-verb layout, are grounded on
// harvx's internal/cli package (root.go's Execute/extractExitCode, and
// generate.go/preview.go/... as one file per subcommand).
package cli

import (
	"errors"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/themactep/jct/internal/cliutil"
)

var traceResolve bool

// rootCmd does not use cobra subcommands: the verb is a positional
// argument, not a command name (spec.md's "jct [--trace-resolve] <target>
// <verb> [args...]"), so flag parsing is disabled here and handled by hand
// in runRoot, letting the "path" verb own a second, independent flag set
// for its own options.
var rootCmd = &cobra.Command{
	Use:                "jct <target> <verb> [args...]",
	Short:              "Read, query, and modify JSON configuration documents.",
	SilenceUsage:       true,
	SilenceErrors:      true,
	DisableFlagParsing: true,
	Args:               cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRoot(args)
	},
}

func runRoot(args []string) error {
	trace := false
	var rest []string
	for _, a := range args {
		if a == "--trace-resolve" {
			trace = true
			continue
		}
		rest = append(rest, a)
	}
	traceResolve = trace

	if len(rest) < 2 {
		return cliutil.BadInputErr("usage: jct [--trace-resolve] <target> <verb> [args...]", nil)
	}
	target, verb, verbArgs := rest[0], rest[1], rest[2:]
	return dispatch(target, verb, verbArgs)
}

// Execute runs the root command and returns the process exit code, per
// harvx's cli.Execute/extractExitCode.
func Execute() int {
	level := cliutil.ResolveLogLevel(false, false)
	cliutil.SetupLogging(level, cliutil.ResolveLogFormat())

	if err := rootCmd.Execute(); err != nil {
		slog.Error(err.Error())
		return extractExitCode(err)
	}
	return 0
}

func extractExitCode(err error) int {
	if err == nil {
		return 0
	}
	var cerr *cliutil.Error
	if errors.As(err, &cerr) {
		return cerr.Code
	}
	return 1
}

// RootCmd returns the root cobra.Command, for tests.
func RootCmd() *cobra.Command { return rootCmd }
