package engine

import "math"

// Stats accumulates min, max, sum and count for one key. All values are
// fixed-point integers scaled by 10.
type Stats struct {
	Min   int64
	Max   int64
	Sum   int64
	Count int64
}

// singleStats returns an accumulator holding exactly one value.
func singleStats(v int64) *Stats {
	return &Stats{Min: v, Max: v, Sum: v, Count: 1}
}

// Update folds one value into the accumulator.
func (s *Stats) Update(v int64) {
	if v < s.Min {
		s.Min = v
	}
	if v > s.Max {
		s.Max = v
	}
	s.Sum += v
	s.Count++
}

// Merge folds another accumulator into this one. Merge is associative and
// commutative, so partial tables combine to the same result in any order.
func (s *Stats) Merge(other *Stats) {
	if other.Min < s.Min {
		s.Min = other.Min
	}
	if other.Max > s.Max {
		s.Max = other.Max
	}
	s.Sum += other.Sum
	s.Count += other.Count
}

// Mean returns the arithmetic mean in tenths, rounded half away from zero.
func (s *Stats) Mean() int64 {
	return int64(math.Round(float64(s.Sum) / float64(s.Count)))
}
