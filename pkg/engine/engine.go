// Package engine implements the parallel scan-parse-aggregate-merge core of
// keystat.
//
// A run proceeds in four steps:
//  1. Partition the input buffer into line-aligned, non-overlapping spans,
//     one per worker.
//  2. Aggregate each span on its own goroutine: scan lines, parse records,
//     fold values into a span-local key table.
//  3. Collect the partial tables, failing fast on the first worker error.
//  4. Merge the partial tables and produce rows in ascending key order.
//
// The input buffer is shared read-only across workers, and each partial
// table is owned by exactly one worker until it is handed to the merge
// step, so no locking is needed anywhere. The merged result is identical
// for every worker count because the per-key merge is associative and
// commutative.
package engine

import (
	"runtime"
	"time"
)

// Config controls a single engine run.
type Config struct {
	// Workers is the number of parallel segment workers.
	// Default: runtime.NumCPU(), minimum 1.
	Workers int
}

// Result holds the merged output of a run.
type Result struct {
	// Rows are the per-key statistics in ascending byte-wise key order.
	Rows []Row

	// Records is the total number of records parsed across all segments.
	Records int64

	// Workers is the worker count actually used.
	Workers int

	// Duration is the wall time of the run.
	Duration time.Duration
}

func (c Config) workers() int {
	if c.Workers > 0 {
		return c.Workers
	}
	if n := runtime.NumCPU(); n > 1 {
		return n
	}
	return 1
}
