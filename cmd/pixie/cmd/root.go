package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Version information (set by build flags).
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "pixie",
	Short: "Run a JSON-encoded AST against the pixie interpreter core",
	Long: `pixie is a harness for a stack-safe, continuation-passing
tree-walking interpreter core for a small Lisp-family language.

It is not a reader, compiler, or REPL: "pixie eval" decodes a JSON AST
document (the wire format a real compiler would otherwise hand the
driver directly) and runs it to completion.`,
	Version: Version,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// Main runs the root command and reports a process exit code, letting
// cmd/pixie's main() and its testscript-driven CLI tests share one
// entry point (rogpeppe/go-internal/testscript.RunMain registers exactly
// this func() int shape as an in-process subprocess).
func Main() int {
	if err := Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "pixie.yaml", "path to an optional pixie.yaml config file")
}
