package engine

import (
	"errors"
	"testing"
)

func TestAggregateSegment(t *testing.T) {
	table, records, err := aggregateSegment([]byte("a;1.0\nb;2.5\na;3.0\n"))
	if err != nil {
		t.Fatalf("aggregateSegment: %v", err)
	}
	if records != 3 {
		t.Fatalf("records = %d, want 3", records)
	}
	if len(table) != 2 {
		t.Fatalf("table has %d keys, want 2", len(table))
	}

	a := table["a"]
	if a == nil || a.Min != 10 || a.Max != 30 || a.Sum != 40 || a.Count != 2 {
		t.Fatalf("table[a] = %+v, want {Min:10 Max:30 Sum:40 Count:2}", a)
	}
	b := table["b"]
	if b == nil || b.Min != 25 || b.Max != 25 || b.Sum != 25 || b.Count != 1 {
		t.Fatalf("table[b] = %+v, want {Min:25 Max:25 Sum:25 Count:1}", b)
	}
}

func TestAggregateSegmentNoTrailingNewline(t *testing.T) {
	table, records, err := aggregateSegment([]byte("a;1.0\nb;2.5"))
	if err != nil {
		t.Fatalf("aggregateSegment: %v", err)
	}
	if records != 2 || len(table) != 2 {
		t.Fatalf("got %d records over %d keys, want 2 over 2", records, len(table))
	}
}

func TestAggregateSegmentEmpty(t *testing.T) {
	table, records, err := aggregateSegment(nil)
	if err != nil {
		t.Fatalf("aggregateSegment: %v", err)
	}
	if records != 0 || len(table) != 0 {
		t.Fatalf("empty segment produced %d records over %d keys", records, len(table))
	}
}

func TestAggregateSegmentAbortsOnMalformedRecord(t *testing.T) {
	table, _, err := aggregateSegment([]byte("a;1.0\nb;oops\nc;2.0\n"))
	if !errors.Is(err, ErrMalformedNumber) {
		t.Fatalf("aggregateSegment = %v, want ErrMalformedNumber", err)
	}
	if table != nil {
		t.Fatal("aborting segment returned a partial table")
	}
}

func TestPartialTableOwnsKeys(t *testing.T) {
	// The table must not retain views into the scanned buffer; keys have to
	// survive the buffer being overwritten.
	buf := []byte("alpha;1.0\n")
	table, _, err := aggregateSegment(buf)
	if err != nil {
		t.Fatalf("aggregateSegment: %v", err)
	}
	for i := range buf {
		buf[i] = 'x'
	}
	if _, ok := table["alpha"]; !ok {
		t.Fatal("key lost after the source buffer was overwritten")
	}
}
