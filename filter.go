package bubbleboard

import (
	"slices"
	"strings"
)

// Criteria is one compound filter request: a free-text search term plus
// three categorical facets. An empty facet means "facet not applied".
type Criteria struct {
	Search     string
	Categories []string
	Statuses   []string
	Priorities []int
}

// IsZero reports whether the criteria filters nothing out.
func (c Criteria) IsZero() bool {
	return strings.TrimSpace(c.Search) == "" &&
		len(c.Categories) == 0 && len(c.Statuses) == 0 && len(c.Priorities) == 0
}

// Match reports whether a record passes the criteria.
//
// The predicate is the conjunction (AND) of the four facets; each facet is
// internally a union (OR) over its selected values. The search term is a
// case-insensitive substring match against title, next action, dependencies
// and category, passing when any of them contains it.
func (c Criteria) Match(r Record) bool {
	if search := strings.ToLower(strings.TrimSpace(c.Search)); search != "" {
		hit := strings.Contains(strings.ToLower(r.Title), search) ||
			strings.Contains(strings.ToLower(r.NextAction), search) ||
			strings.Contains(strings.ToLower(r.Dependencies), search) ||
			strings.Contains(strings.ToLower(r.Category), search)
		if !hit {
			return false
		}
	}
	if len(c.Categories) > 0 && !slices.Contains(c.Categories, r.Category) {
		return false
	}
	if len(c.Statuses) > 0 && !slices.Contains(c.Statuses, r.Status) {
		return false
	}
	if len(c.Priorities) > 0 && !slices.Contains(c.Priorities, r.PriorityRank) {
		return false
	}
	return true
}

// Filter returns the subset of records passing the criteria. It is pure: the
// input is never mutated, and records keep their identity and fields.
func Filter(records []Record, c Criteria) []Record {
	out := make([]Record, 0, len(records))
	for _, r := range records {
		if c.Match(r) {
			out = append(out, r)
		}
	}
	return out
}
