package bubbleboard

import "time"

// Canonical column headers of the source table. The loader addresses
// projected fields by these names after whitespace trimming.
const (
	ColCategory      = "Category"
	ColTitle         = "Project / Item"
	ColStatus        = "Current Status"
	ColStartDate     = "Start Date"
	ColTargetEndDate = "Target End Date"
	ColEstimatedCost = "Estimated Cost ($)"
	ColDependencies  = "Dependencies / Prerequisites"
	ColNextAction    = "Next Action"
	ColPriority      = "Priority"
)

// DefaultColumns is the required column list, in projection order.
func DefaultColumns() []string {
	return []string{
		ColCategory,
		ColTitle,
		ColStatus,
		ColStartDate,
		ColTargetEndDate,
		ColEstimatedCost,
		ColDependencies,
		ColNextAction,
		ColPriority,
	}
}

// Settings is the resolved configuration consumed by the board core.
//
// It is owned by the caller (the cmd package resolves it from a YAML file,
// .env and the environment) and treated as immutable per invocation; the
// core never reads environment state directly.
type Settings struct {
	// Spreadsheet source.
	SpreadsheetPath string   `yaml:"spreadsheet_path"`
	SheetName       string   `yaml:"sheet_name"` // empty means first sheet
	RequiredColumns []string `yaml:"required_columns"`

	// Priority scale (1 = highest).
	PriorityMin int `yaml:"priority_min"`
	PriorityMax int `yaml:"priority_max"`

	// Presentation.
	RefreshSeconds int `yaml:"refresh_seconds"`
	BubbleColumns  int `yaml:"bubble_columns"`

	// Stock tickers.
	Tickers         []string `yaml:"tickers"`
	QuoteTTLSeconds int      `yaml:"quote_ttl_seconds"`

	// Description generator.
	DescribeModel          string `yaml:"describe_model"`
	DescribeTimeoutSeconds int    `yaml:"describe_timeout_seconds"`

	// Presentation API.
	ListenAddr string `yaml:"listen_addr"`
}

// DefaultSettings returns the settings used when nothing is configured.
func DefaultSettings() Settings {
	return Settings{
		SpreadsheetPath:        "projects.xlsx",
		RequiredColumns:        DefaultColumns(),
		PriorityMin:            1,
		PriorityMax:            5,
		RefreshSeconds:         60,
		BubbleColumns:          3,
		Tickers:                []string{"VOO", "VOOG", "ORCL", "PLTR"},
		QuoteTTLSeconds:        300,
		DescribeModel:          "gemini-2.0-flash",
		DescribeTimeoutSeconds: 60,
		ListenAddr:             ":8080",
	}
}

// QuoteTTL returns the quote cache time-to-live as a duration.
func (s Settings) QuoteTTL() time.Duration {
	return time.Duration(s.QuoteTTLSeconds) * time.Second
}

// RefreshInterval returns the UI refresh interval as a duration.
func (s Settings) RefreshInterval() time.Duration {
	return time.Duration(s.RefreshSeconds) * time.Second
}

// DescribeTimeout returns the description-generator timeout as a duration.
func (s Settings) DescribeTimeout() time.Duration {
	return time.Duration(s.DescribeTimeoutSeconds) * time.Second
}
