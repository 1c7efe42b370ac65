package bubbleboard

import (
	"cmp"
	"slices"
	"strings"

	"github.com/etnz/bubbleboard/date"
)

// Sort orders records in place in the canonical board order, ascending:
// priority rank, then target end date, then start date, then category, then
// title as the final tie-break. The sort is stable so presentation order is
// reproducible across refreshes when the underlying data is unchanged.
func Sort(records []Record) {
	slices.SortStableFunc(records, Compare)
}

// Compare is the composite ordering used by Sort.
func Compare(a, b Record) int {
	if c := cmp.Compare(a.PriorityRank, b.PriorityRank); c != 0 {
		return c
	}
	if c := compareDates(a.TargetEndDate, b.TargetEndDate); c != 0 {
		return c
	}
	if c := compareDates(a.StartDate, b.StartDate); c != 0 {
		return c
	}
	if c := strings.Compare(a.Category, b.Category); c != 0 {
		return c
	}
	return strings.Compare(a.Title, b.Title)
}

// compareDates orders dates ascending, absent dates after all present ones.
func compareDates(a, b date.Date) int {
	switch {
	case a.IsZero() && b.IsZero():
		return 0
	case a.IsZero():
		return 1
	case b.IsZero():
		return -1
	case a.Before(b):
		return -1
	case a.After(b):
		return 1
	}
	return 0
}
