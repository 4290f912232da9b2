package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/tmclane/pixie/internal/config"
	"github.com/tmclane/pixie/internal/interp/runner"
)

var functionsCmd = &cobra.Command{
	Use:   "functions",
	Short: "List the native functions registered with the interpreter core",
	RunE:  runFunctions,
}

func init() {
	rootCmd.AddCommand(functionsCmd)
}

func runFunctions(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	in := runner.NewWithOptions(os.Stdout, cfg)
	for _, info := range in.Registry.All() {
		fmt.Fprintf(cmd.OutOrStdout(), "%-10s %-12s %s\n", info.Name, info.Category, info.Description)
	}
	return nil
}
