// Command pixie is a thin harness around the interpreter core: it is
// not a REPL, reader, or compiler (spec.md §1), just enough of an
// entry point to run a JSON-encoded AST through internal/interp.Evaluate
// and observe the result.
package main

import (
	"os"

	"github.com/tmclane/pixie/cmd/pixie/cmd"
)

func main() {
	os.Exit(cmd.Main())
}
