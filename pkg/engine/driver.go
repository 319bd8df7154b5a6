package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/eunmann/keystat/internal/logctx"
)

// segmentResult carries one worker's output back to the driver. The index
// attributes the result to its originating span.
type segmentResult struct {
	index   int
	table   partialTable
	records int64
	dur     time.Duration
	err     error
}

// Run partitions data into line-aligned spans, aggregates each span on its
// own goroutine, and merges the partial tables into one key-ordered result.
//
// The first worker error observed aborts the run. In-flight siblings are
// not cancelled; the results channel is buffered to span count so they can
// finish on their own and be discarded.
func Run(ctx context.Context, data []byte, cfg Config) (*Result, error) {
	start := time.Now()
	log := logctx.FromContext(ctx)
	workers := cfg.workers()

	spans, err := Partition(data, workers)
	if err != nil {
		return nil, fmt.Errorf("partition input: %w", err)
	}

	log.Debug().
		Int("workers", workers).
		Int("input_bytes", len(data)).
		Msg("dispatching segment workers")

	results := make(chan segmentResult, len(spans))
	for i, sp := range spans {
		go func(i int, seg []byte) {
			segStart := time.Now()
			table, records, err := aggregateSegment(seg)
			results <- segmentResult{
				index:   i,
				table:   table,
				records: records,
				dur:     time.Since(segStart),
				err:     err,
			}
		}(i, data[sp.Start:sp.End])
	}

	partials := make([]partialTable, len(spans))
	var records int64
	for range spans {
		res := <-results
		if res.err != nil {
			return nil, fmt.Errorf("segment %d: %w", res.index, res.err)
		}
		log.Debug().
			Int("segment", res.index).
			Int64("records", res.records).
			Dur("duration", res.dur).
			Msg("segment complete")
		partials[res.index] = res.table
		records += res.records
	}

	rows := mergeTables(partials)
	duration := time.Since(start)

	log.Info().
		Int("workers", workers).
		Int64("records", records).
		Int("keys", len(rows)).
		Dur("duration", duration).
		Msg("aggregation complete")

	return &Result{
		Rows:     rows,
		Records:  records,
		Workers:  workers,
		Duration: duration,
	}, nil
}
