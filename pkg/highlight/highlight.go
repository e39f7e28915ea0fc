// Package highlight marks the counter that a chart should pull out of the pie.
package highlight

import "github.com/jmylchreest/optview/pkg/counter"

// MarkLargest flags the record with the strictly greatest count and clears
// the flag on every other record. Ties go to the earliest record. The
// running maximum starts at zero, so when no count is positive the first
// record is marked. It returns the marked index, or false for an empty batch.
func MarkLargest(records counter.Records) (int, bool) {
	for i := range records {
		records[i].Largest = false
	}
	if len(records) == 0 {
		return -1, false
	}

	best, top := 0, 0
	for i, r := range records {
		if r.Count > top {
			best, top = i, r.Count
		}
	}

	records[best].Largest = true
	return best, true
}
