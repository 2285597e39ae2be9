package train

import (
	"strings"

	"github.com/samber/lo"
)

// Select returns the records whose destination equals destination, ignoring case.
// Order is preserved. No match yields an empty, non-nil slice.
func Select(records []Record, destination string) []Record {
	return lo.Filter(records, func(r Record, _ int) bool {
		return strings.EqualFold(r.Destination, destination)
	})
}
