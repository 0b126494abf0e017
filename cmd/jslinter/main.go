// Command jslinter runs JSLint on one JavaScript file and prints the
// findings.
//
// Usage:
//
//	jslinter <filename> [-node] [-browser] [-this] [-for] [options]
//
// The engine is loaded from jslint.js next to the executable or in the
// working directory unless --jslint is given, and runs under node.
package main

import (
	"context"
	"os"

	"github.com/bdwood3/jslinter/internal/cli"
)

func main() {
	os.Exit(cli.Run(context.Background(), os.Args[1:], cli.Env{}))
}
