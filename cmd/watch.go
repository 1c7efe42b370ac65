package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/subcommands"

	"github.com/etnz/bubbleboard"
	"github.com/etnz/bubbleboard/renderer"
)

// watchCmd holds the flags for the 'watch' subcommand.
type watchCmd struct{}

func (*watchCmd) Name() string     { return "watch" }
func (*watchCmd) Synopsis() string { return "continuously display the board and tickers" }
func (*watchCmd) Usage() string {
	return `bbd watch

  TV mode: redraws the board and the ticker panel at the configured refresh
  interval until interrupted.
`
}

func (*watchCmd) SetFlags(_ *flag.FlagSet) {}

func (c *watchCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	settings, err := loadSettings()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error resolving settings: %v\n", err)
		return subcommands.ExitUsageError
	}

	board := bubbleboard.NewBoard(settings)
	cache := newQuoteCache(settings)

	ticker := time.NewTicker(settings.RefreshInterval())
	defer ticker.Stop()

	for {
		// Each cycle is one synchronous loader pass and one cache lookup; a
		// failed cycle keeps the previous record set on screen.
		if err := board.Refresh(); err != nil {
			fmt.Fprintf(os.Stderr, "Refresh failed: %v\n", err)
		}
		quotes := cache.Quotes(ctx, settings.Tickers)
		sparks := cache.Sparklines(ctx, settings.Tickers)

		fmt.Print("\033[2J\033[H") // clear screen
		printMarkdown(renderer.RenderBoard(renderer.NewBoardView(settings.SpreadsheetPath, board.Records())))
		printMarkdown(renderer.RenderTickers(renderer.NewTickerPanel(settings.Tickers, quotes, sparks)))

		select {
		case <-ctx.Done():
			return subcommands.ExitSuccess
		case <-ticker.C:
		}
	}
}
