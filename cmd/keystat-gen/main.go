// Command keystat-gen writes synthetic key;value input files for testing
// and benchmarking keystat.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/eunmann/keystat/pkg/datagen"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("keystat-gen", flag.ContinueOnError)
	out := fs.String("out", "", "output file path")
	records := fs.Int("records", 1_000_000, "number of records to generate")
	keys := fs.Int("keys", 1000, "number of distinct keys")
	seed := fs.Int64("seed", 42, "random seed")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if *out == "" {
		return errors.New("-out is required")
	}

	cfg := datagen.DefaultConfig(*records)
	cfg.Keys = *keys
	cfg.Seed = *seed
	return datagen.WriteFile(*out, cfg)
}
