package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/etnz/bubbleboard"
	"github.com/etnz/bubbleboard/describe"
	"github.com/etnz/bubbleboard/renderer"
)

// describeCmd holds the flags for the 'describe' subcommand.
type describeCmd struct {
	id int
}

func (*describeCmd) Name() string     { return "describe" }
func (*describeCmd) Synopsis() string { return "generate the description for one task" }
func (*describeCmd) Usage() string {
	return `bbd describe -id <record id>

  Selects the task and generates its description through the configured
  model, then displays the task detail.
`
}

func (c *describeCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.id, "id", 0, "Record id of the task to describe (see the board's # column).")
}

func (c *describeCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	if !board.Select(c.id) {
		fmt.Fprintf(os.Stderr, "No task with id %d\n", c.id)
		return subcommands.ExitUsageError
	}
	record, _ := board.Selected()

	detail := renderer.NewDetail(record)

	generator, err := describe.New(ctx, settings.DescribeModel, settings.DescribeTimeout())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing the description model: %v\n", err)
		return subcommands.ExitFailure
	}
	text, err := generator.Describe(ctx, record)
	if err != nil {
		// The detail is still worth showing; the description degrades to an error note.
		fmt.Fprintf(os.Stderr, "Description failed: %v\n", err)
	} else {
		detail.Description = text
	}

	printMarkdown(renderer.RenderDetail(detail))
	return subcommands.ExitSuccess
}
