package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/google/subcommands"

	"github.com/etnz/bubbleboard"
	"github.com/etnz/bubbleboard/renderer"
)

// boardCmd holds the flags for the 'board' subcommand.
type boardCmd struct {
	search     string
	categories string
	statuses   string
	priorities string
}

func (*boardCmd) Name() string     { return "board" }
func (*boardCmd) Synopsis() string { return "display the prioritized task board" }
func (*boardCmd) Usage() string {
	return `bbd board [-q <text>] [-category a,b] [-status a,b] [-priority 1,2]

  Loads the spreadsheet and displays the sorted, filtered task board.
`
}

func (c *boardCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.search, "q", "", "Free-text search over title, next action, dependencies and category.")
	f.StringVar(&c.categories, "category", "", "Comma-separated categories to keep.")
	f.StringVar(&c.statuses, "status", "", "Comma-separated statuses to keep.")
	f.StringVar(&c.priorities, "priority", "", "Comma-separated priority ranks to keep.")
}

// criteria builds the filter criteria from the flags.
func (c *boardCmd) criteria() bubbleboard.Criteria {
	criteria := bubbleboard.Criteria{
		Search:     c.search,
		Categories: splitCSV(c.categories),
		Statuses:   splitCSV(c.statuses),
	}
	for _, p := range splitCSV(c.priorities) {
		if n, err := strconv.Atoi(p); err == nil {
			criteria.Priorities = append(criteria.Priorities, n)
		}
	}
	return criteria
}

func (c *boardCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	settings, err := loadSettings()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error resolving settings: %v\n", err)
		return subcommands.ExitUsageError
	}

	board := bubbleboard.NewBoard(settings)
	if err := board.Refresh(); err != nil {
		fmt.Fprintf(os.Stderr, "Error loading tasks: %v\n", err)
		return subcommands.ExitFailure
	}

	view := board.View(c.criteria())
	printMarkdown(renderer.RenderBoard(renderer.NewBoardView(settings.SpreadsheetPath, view)))
	return subcommands.ExitSuccess
}
