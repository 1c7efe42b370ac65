package bubbleboard

import (
	"github.com/shopspring/decimal"

	"github.com/etnz/bubbleboard/date"
)

// Record is one normalized task/project row.
//
// Every Record exposes all schema fields: a column missing from the source
// yields the empty/absent value, never an omitted field. The ID is the
// 1-based source row index assigned at load time, before sorting; it is the
// identity key for selection across refreshes and is never reused or
// reassigned while the process runs.
type Record struct {
	ID int `json:"id"`

	Category     string `json:"category"`
	Title        string `json:"title"`
	Status       string `json:"status"`
	NextAction   string `json:"nextAction"`
	Dependencies string `json:"dependencies"`

	// Priority keeps the raw cell ("High", "3", ...); PriorityRank is its
	// resolved total order (see Rank).
	Priority     string `json:"priority"`
	PriorityRank int    `json:"priorityRank"`

	StartDate     date.Date `json:"startDate"`
	TargetEndDate date.Date `json:"targetEndDate"`

	EstimatedCost decimal.NullDecimal `json:"estimatedCost"`
}

// CostString returns the estimated cost formatted as USD, or "" when absent.
func (r Record) CostString() string {
	if !r.EstimatedCost.Valid {
		return ""
	}
	return USD(r.EstimatedCost.Decimal).String()
}
