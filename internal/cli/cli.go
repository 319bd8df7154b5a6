// Package cli implements the command-line interface for keystat.
package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/eunmann/keystat/internal/logctx"
	"github.com/eunmann/keystat/pkg/engine"
	"github.com/eunmann/keystat/pkg/humanfmt"
	"github.com/eunmann/keystat/pkg/mmap"
	"github.com/eunmann/keystat/pkg/s3input"
	"github.com/eunmann/keystat/pkg/sysmem"
)

const usage = "usage: keystat [flags] <file | s3://bucket/key>"

// Run executes the CLI with the given arguments and writes the result table
// to stdout.
func Run(args []string) error {
	fs := flag.NewFlagSet("keystat", flag.ContinueOnError)
	workers := fs.Int("workers", 0, "number of parallel workers (default: number of CPUs)")
	debug := fs.Bool("debug", false, "enable debug logging")
	pretty := fs.Bool("log-pretty", false, "human-friendly console logging")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return errors.New(usage)
	}
	input := fs.Arg(0)

	logger := logctx.NewConfiguredLogger(*debug, *pretty)
	ctx := logctx.WithStr(logctx.WithLogger(context.Background(), logger), "input", input)

	path := input
	if s3input.IsURI(input) {
		localPath, cleanup, err := s3input.FetchToTemp(ctx, input, s3input.DefaultDownloadConfig())
		if err != nil {
			return fmt.Errorf("fetch %s: %w", input, err)
		}
		defer cleanup()
		path = localPath
	}

	return aggregateTo(ctx, path, *workers, os.Stdout)
}

// aggregateTo maps the file at path, runs the engine, and writes the final
// table to w.
func aggregateTo(ctx context.Context, path string, workers int, w io.Writer) error {
	log := logctx.FromContext(ctx)
	start := time.Now()

	m, err := mmap.Open(path)
	if err != nil {
		return fmt.Errorf("map input: %w", err)
	}
	defer m.Close()

	if mem := sysmem.Total(); mem.Reliable && uint64(m.Size()) > mem.TotalBytes/2 {
		log.Warn().
			Str("input_size", humanfmt.Bytes(m.Size())).
			Str("system_ram", humanfmt.Bytes(int64(mem.TotalBytes))).
			Msg("input exceeds half of system memory, expect paging")
	}

	result, err := engine.Run(ctx, m.Data(), engine.Config{Workers: workers})
	if err != nil {
		return err
	}

	if err := engine.WriteTable(w, result.Rows); err != nil {
		return fmt.Errorf("write results: %w", err)
	}

	elapsed := time.Since(start)
	log.Info().
		Str("input_size", humanfmt.Bytes(m.Size())).
		Int64("records", result.Records).
		Int("keys", len(result.Rows)).
		Int("workers", result.Workers).
		Str("duration", humanfmt.Duration(elapsed)).
		Str("throughput", humanfmt.Throughput(m.Size(), elapsed)).
		Msg("run complete")

	return nil
}
