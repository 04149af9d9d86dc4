package story

import (
	"math"
	"sort"
	"strconv"
)

// sortKey ranks an id for display. Ids made entirely of decimal digits sort
// ascending by integer value; everything else (including digit strings too
// large for int64) ranks as the maximum value so it sorts after all numeric
// ids. Ties break by plain string comparison.
func sortKey(id string) int64 {
	if id == "" {
		return math.MaxInt64
	}
	for i := 0; i < len(id); i++ {
		if id[i] < '0' || id[i] > '9' {
			return math.MaxInt64
		}
	}
	v, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		// Overflows rank with non-numeric ids rather than failing.
		return math.MaxInt64
	}
	return v
}

// SortIDs orders ids in place using the display policy above.
func SortIDs(ids []string) {
	sort.Slice(ids, func(i, j int) bool {
		ki, kj := sortKey(ids[i]), sortKey(ids[j])
		if ki != kj {
			return ki < kj
		}
		return ids[i] < ids[j]
	})
}
