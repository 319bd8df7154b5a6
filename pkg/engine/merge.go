package engine

import (
	"slices"
	"strings"
)

// Row is one key's merged statistics in the final table.
type Row struct {
	Key   string
	Stats Stats
}

// mergeTables folds all partial tables into a single table and returns its
// rows sorted ascending by key. Any permutation of the partials produces
// identical rows because Stats.Merge is associative and commutative.
func mergeTables(partials []partialTable) []Row {
	merged := make(map[string]*Stats)
	for _, t := range partials {
		for key, s := range t {
			if dst, ok := merged[key]; ok {
				dst.Merge(s)
			} else {
				merged[key] = s
			}
		}
	}

	rows := make([]Row, 0, len(merged))
	for key, s := range merged {
		rows = append(rows, Row{Key: key, Stats: *s})
	}
	slices.SortFunc(rows, func(a, b Row) int {
		return strings.Compare(a.Key, b.Key)
	})
	return rows
}
