package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/tmclane/pixie/internal/astjson"
	"github.com/tmclane/pixie/internal/config"
	"github.com/tmclane/pixie/internal/interp/runner"
	"github.com/tmclane/pixie/pkg/value"
)

var (
	evalExpr string
	jsonOut  bool
)

var evalCmd = &cobra.Command{
	Use:   "eval [file.json]",
	Short: "Decode a JSON AST document and run it to completion",
	Long: `Decode a JSON AST document (internal/astjson's schema) and run it
against the interpreter core.

Examples:
  # Evaluate a JSON AST file
  pixie eval program.json

  # Evaluate an inline document
  pixie eval -e '{"node":"const","value":42}'`,
	Args: cobra.MaximumNArgs(1),
	RunE: runEval,
}

func init() {
	rootCmd.AddCommand(evalCmd)

	evalCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "evaluate an inline JSON AST document instead of reading a file")
	evalCmd.Flags().BoolVar(&jsonOut, "json", false, "render a terminal Exception as a JSON object instead of text")
}

func runEval(cmd *cobra.Command, args []string) error {
	doc, err := readEvalInput(args)
	if err != nil {
		return err
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	in := runner.NewWithOptions(os.Stdout, cfg)
	decoder := astjson.NewDecoder(in.Interner)

	root, err := decoder.DecodeString(doc)
	if err != nil {
		return fmt.Errorf("decoding AST: %w", err)
	}

	result := in.Evaluate(root)
	return renderResult(cmd, result, jsonOut || cfg.OutputFormat == "json")
}

func readEvalInput(args []string) (string, error) {
	if evalExpr != "" {
		return evalExpr, nil
	}
	if len(args) == 1 {
		content, err := os.ReadFile(args[0])
		if err != nil {
			return "", fmt.Errorf("reading %s: %w", args[0], err)
		}
		return string(content), nil
	}
	return "", fmt.Errorf("either provide a file path or use -e for an inline document")
}

func renderResult(cmd *cobra.Command, result value.Value, asJSON bool) error {
	exc, isException := result.(*value.ExceptionValue)
	if !isException {
		fmt.Fprintln(cmd.OutOrStdout(), result.String())
		return nil
	}

	if asJSON {
		doc, err := astjson.EncodeException(exc)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), doc)
	} else {
		fmt.Fprintf(os.Stderr, "%s: %s (%s)\n", exc.Kind, exc.Message, exc.Location)
	}
	return fmt.Errorf("evaluation raised %s", exc.Kind)
}
