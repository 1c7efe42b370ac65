package renderer

import "github.com/etnz/bubbleboard"

// BoardView is the display-ready projection of a filtered record set.
type BoardView struct {
	Source string // source path, shown under the title
	Count  int
	Rows   []BubbleRow
}

// BubbleRow is one task bubble, all fields pre-formatted for display.
type BubbleRow struct {
	ID       int
	Title    string
	Category string
	Status   string
	Priority string
	Target   string
	Cost     string
}

// NewBoardView projects records into a BoardView.
func NewBoardView(source string, records []bubbleboard.Record) *BoardView {
	v := &BoardView{Source: source, Count: len(records)}
	for _, r := range records {
		row := BubbleRow{
			ID:       r.ID,
			Title:    r.Title,
			Category: r.Category,
			Status:   r.Status,
			Priority: r.Priority,
			Target:   r.TargetEndDate.String(),
			Cost:     r.CostString(),
		}
		if row.Priority == "" {
			row.Priority = "-"
		}
		v.Rows = append(v.Rows, row)
	}
	return v
}

// Detail is the display-ready projection of one selected task.
type Detail struct {
	ID           int
	Title        string
	Category     string
	Status       string
	Priority     string
	Start        string
	Target       string
	Cost         string
	Dependencies string
	NextAction   string

	// Description is the generated blurb; empty until requested.
	Description string
}

// NewDetail projects a record into a Detail.
func NewDetail(r bubbleboard.Record) *Detail {
	return &Detail{
		ID:           r.ID,
		Title:        r.Title,
		Category:     r.Category,
		Status:       r.Status,
		Priority:     r.Priority,
		Start:        r.StartDate.String(),
		Target:       r.TargetEndDate.String(),
		Cost:         r.CostString(),
		Dependencies: r.Dependencies,
		NextAction:   r.NextAction,
	}
}
