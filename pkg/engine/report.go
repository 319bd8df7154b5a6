package engine

import (
	"bufio"
	"io"
	"strconv"
)

// WriteTable writes rows as tab-separated lines in the canonical column
// order key, min, mean, max. Every value is rendered with exactly one
// fractional digit. No header, no trailing summary.
func WriteTable(w io.Writer, rows []Row) error {
	bw := bufio.NewWriterSize(w, 256*1024)
	buf := make([]byte, 0, 128)

	for _, row := range rows {
		buf = buf[:0]
		buf = append(buf, row.Key...)
		buf = append(buf, '\t')
		buf = appendTenths(buf, row.Stats.Min)
		buf = append(buf, '\t')
		buf = appendTenths(buf, row.Stats.Mean())
		buf = append(buf, '\t')
		buf = appendTenths(buf, row.Stats.Max)
		buf = append(buf, '\n')

		if _, err := bw.Write(buf); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// appendTenths renders a value scaled by 10 with one fractional digit.
func appendTenths(buf []byte, v int64) []byte {
	if v < 0 {
		buf = append(buf, '-')
		v = -v
	}
	buf = strconv.AppendInt(buf, v/10, 10)
	buf = append(buf, '.')
	return strconv.AppendInt(buf, v%10, 10)
}
