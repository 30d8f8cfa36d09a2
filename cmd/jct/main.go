// Package main is the entry point for the jct CLI tool.
package main

import (
	"os"

	"github.com/themactep/jct/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
