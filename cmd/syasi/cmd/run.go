package cmd

import (
	"fmt"
	"os"

	"github.com/cwbudde/go-syasi/pkg/syasi"
	"github.com/spf13/cobra"
)

var evalExpr string

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Run a syasi program",
	Long: `Execute a syasi program from a file or inline expression.

Examples:
  # Run a program file
  syasi run program.scm

  # Evaluate an inline expression
  syasi run -e "(display (+ 1 2))"`,
	Args: cobra.MaximumNArgs(1),
	RunE: runProgram,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "evaluate inline code instead of reading from file")
}

func runProgram(_ *cobra.Command, args []string) error {
	var source, filename string

	switch {
	case evalExpr != "":
		source = evalExpr
		filename = "<eval>"
	case len(args) == 1:
		filename = args[0]
		content, err := os.ReadFile(filename)
		if err != nil {
			return fmt.Errorf("failed to read file %s: %w", filename, err)
		}
		source = string(content)
	default:
		return fmt.Errorf("either provide a file path or use -e flag for inline code")
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "[running %s]\n", filename)
	}

	interp := syasi.New()
	result, err := interp.RunString(source)
	if err != nil {
		return fmt.Errorf("%s: %w", filename, err)
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "=> %s\n", syasi.Repr(result))
	}
	return nil
}
