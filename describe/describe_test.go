package describe

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/etnz/bubbleboard"
	"github.com/etnz/bubbleboard/date"
)

func TestPrompt(t *testing.T) {
	r := bubbleboard.Record{
		ID:            3,
		Category:      "House",
		Title:         "Fix gutters",
		Status:        "In progress",
		NextAction:    "Order brackets",
		Dependencies:  "Ladder",
		Priority:      "High",
		PriorityRank:  1,
		StartDate:     date.New(2025, 8, 1),
		TargetEndDate: date.New(2025, 9, 15),
		EstimatedCost: decimal.NullDecimal{Decimal: decimal.NewFromInt(250), Valid: true},
	}

	got := Prompt(r)

	// Every schema field must appear under its column header so the model
	// sees the full task summary.
	for _, want := range []string{
		"Category: House",
		"Project / Item: Fix gutters",
		"Current Status: In progress",
		"Start Date: 2025-08-01",
		"Target End Date: 2025-09-15",
		"Dependencies / Prerequisites: Ladder",
		"Next Action: Order brackets",
		"Priority: High",
		"$250.00",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("Prompt() missing %q in:\n%s", want, got)
		}
	}
}
