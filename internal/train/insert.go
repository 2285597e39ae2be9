package train

import (
	"slices"
	"sort"

	"github.com/samber/lo"
)

// Insert adds record to records unless an equal record is already present.
// The result stays ordered by TimeDeparture (plain string comparison) and a new
// record goes after every existing one with the same departure time.
//
// records is never modified; changed reports whether a new slice was built.
func Insert(records []Record, record Record) (result []Record, changed bool) {
	if lo.Contains(records, record) {
		return records, false
	}

	idx := sort.Search(len(records), func(i int) bool {
		return records[i].TimeDeparture > record.TimeDeparture
	})

	// Clip forces slices.Insert to allocate, so the caller's backing array is untouched.
	return slices.Insert(slices.Clip(records), idx, record), true
}
