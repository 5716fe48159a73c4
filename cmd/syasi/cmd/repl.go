package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/cwbudde/go-syasi/internal/reader"
	"github.com/cwbudde/go-syasi/pkg/syasi"
	"github.com/spf13/cobra"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive read-eval-print loop",
	RunE:  runRepl,
}

func init() {
	rootCmd.AddCommand(replCmd)
}

func runRepl(_ *cobra.Command, _ []string) error {
	interp := syasi.New()
	in := bufio.NewReader(os.Stdin)

	for {
		fmt.Fprint(os.Stdout, "syasi> ")
		line, err := in.ReadString('\n')
		if err != nil {
			if err == io.EOF {
				fmt.Fprintln(os.Stdout)
				return nil
			}
			return err
		}

		form, err := reader.Read(interp.Store(), line)
		if err != nil {
			fmt.Fprintf(os.Stderr, "read error: %v\n", err)
			continue
		}
		if form == nil {
			continue
		}

		result, err := interp.Eval(form)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			continue
		}
		fmt.Fprintln(os.Stdout, syasi.Repr(result))
	}
}
