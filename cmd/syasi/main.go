// Command syasi is the interpreter's command-line entry point.
package main

import (
	"fmt"
	"os"

	"github.com/cwbudde/go-syasi/cmd/syasi/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
