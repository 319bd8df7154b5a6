package engine

import (
	"bytes"
	"errors"
	"fmt"
)

// ErrMalformedNumber reports a value token that does not match the accepted
// fixed-point grammar, or a line with no ';' delimiter.
var ErrMalformedNumber = errors.New("malformed number")

// ParseRecord splits one line (which must contain no newline) at the first
// ';' and parses the value token. The returned key aliases the input slice;
// the value is the decimal scaled by 10 (e.g. "-3.7" parses to -37).
func ParseRecord(line []byte) (key []byte, val int64, err error) {
	i := bytes.IndexByte(line, ';')
	if i < 0 {
		return nil, 0, fmt.Errorf("%w: no ';' delimiter in %q", ErrMalformedNumber, line)
	}
	val, err = parseValue(line[i+1:])
	if err != nil {
		return nil, 0, err
	}
	return line[:i], val, nil
}

// parseValue parses an optional '-' followed by exactly "D.D" or "DD.D".
// Integers, extra fractional digits, and three or more integer digits are
// all rejected: the grammar is deliberately this narrow, not a general
// float parser.
func parseValue(tok []byte) (int64, error) {
	digits := tok
	neg := false
	if len(digits) > 0 && digits[0] == '-' {
		neg = true
		digits = digits[1:]
	}

	var v int64
	switch {
	case len(digits) == 3 && digits[1] == '.':
		d0, ok0 := digit(digits[0])
		d1, ok1 := digit(digits[2])
		if !ok0 || !ok1 {
			return 0, fmt.Errorf("%w: %q", ErrMalformedNumber, tok)
		}
		v = d0*10 + d1
	case len(digits) == 4 && digits[2] == '.':
		d0, ok0 := digit(digits[0])
		d1, ok1 := digit(digits[1])
		d2, ok2 := digit(digits[3])
		if !ok0 || !ok1 || !ok2 {
			return 0, fmt.Errorf("%w: %q", ErrMalformedNumber, tok)
		}
		v = d0*100 + d1*10 + d2
	default:
		return 0, fmt.Errorf("%w: %q", ErrMalformedNumber, tok)
	}

	if neg {
		v = -v
	}
	return v, nil
}

func digit(c byte) (int64, bool) {
	if c < '0' || c > '9' {
		return 0, false
	}
	return int64(c - '0'), true
}
