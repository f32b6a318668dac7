// Command keel exercises the value, stream, graphics and parallel
// packages from the terminal. Each subcommand is a small self-checking
// demo; a non-zero exit means a demo observed something it should not.
package main

import (
	"fmt"
	"os"

	"github.com/go-drift/keel/cmd/keel/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
