package engine

import (
	"bytes"
	"errors"
	"fmt"
)

// ErrNoLineBoundary reports that a computed cut point has no newline between
// it and the end of the buffer, so the buffer cannot be split there without
// cutting a line in half.
var ErrNoLineBoundary = errors.New("no line boundary at or after cut point")

// Span is a half-open byte range [Start, End) into the input buffer.
type Span struct {
	Start int
	End   int
}

// Len returns the number of bytes covered by the span.
func (s Span) Len() int { return s.End - s.Start }

// Partition divides data into n contiguous, non-overlapping spans whose
// concatenation equals the whole buffer and whose boundaries always fall
// immediately after a newline (or at the buffer ends).
//
// Each of the first n-1 spans extends at least len(data)/n bytes past its
// start and ends just after the next newline; the final span takes whatever
// remains. A cut point at or past the end of the buffer resolves to the
// end-of-buffer boundary, so when n exceeds the number of lines trailing
// spans come out empty; callers must treat an empty span as a no-op. A cut
// point strictly inside a final line that has no trailing newline fails
// with ErrNoLineBoundary rather than mis-splitting the line.
func Partition(data []byte, n int) ([]Span, error) {
	if n < 1 {
		return nil, fmt.Errorf("partition count must be at least 1, got %d", n)
	}

	spans := make([]Span, n)
	target := len(data) / n
	cursor := 0

	for i := 0; i < n-1; i++ {
		cut := cursor + target
		if cut >= len(data) {
			spans[i] = Span{Start: cursor, End: len(data)}
			cursor = len(data)
			continue
		}

		j := bytes.IndexByte(data[cut:], '\n')
		if j < 0 {
			return nil, fmt.Errorf("%w (cut offset %d, buffer size %d)",
				ErrNoLineBoundary, cut, len(data))
		}

		end := cut + j + 1
		spans[i] = Span{Start: cursor, End: end}
		cursor = end
	}

	spans[n-1] = Span{Start: cursor, End: len(data)}
	return spans, nil
}
