package engine

import "bytes"

// partialTable holds per-key statistics for one segment. A key string is
// materialized once per distinct key on first insertion; lookups index the
// map with a converted byte slice, which does not allocate.
type partialTable map[string]*Stats

// update folds one parsed value into the table.
func (t partialTable) update(key []byte, v int64) {
	if s, ok := t[string(key)]; ok {
		s.Update(v)
		return
	}
	t[string(key)] = singleStats(v)
}

// aggregateSegment scans one line-aligned byte range and folds every record
// into a fresh partial table. The range's final line may lack a trailing
// newline and is still processed. An empty range yields an empty table.
//
// The first parse error aborts the scan; nothing is salvaged from an
// aborting segment.
func aggregateSegment(data []byte) (partialTable, int64, error) {
	table := make(partialTable)
	var records int64

	for len(data) > 0 {
		line := data
		if j := bytes.IndexByte(data, '\n'); j >= 0 {
			line = data[:j]
			data = data[j+1:]
		} else {
			data = nil
		}

		key, val, err := ParseRecord(line)
		if err != nil {
			return nil, records, err
		}
		table.update(key, val)
		records++
	}

	return table, records, nil
}
