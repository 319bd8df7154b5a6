// Command keystat aggregates per-key min/mean/max statistics from a
// key;value input file.
package main

import (
	"fmt"
	"os"

	"github.com/eunmann/keystat/internal/cli"
)

func main() {
	if err := cli.Run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
