// Command esvalidate is the CLI driver around the esvalidate package: a
// thin wrapper over Validate that reads a file or -s string, prints the
// checkmark/cross verdict, and exits 0 on acceptance, 1 on rejection or
// argument error. It carries no parsing logic of its own.
package main

import (
	"os"

	"github.com/esvalidate/esvalidate/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
