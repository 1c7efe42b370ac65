package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/etnz/bubbleboard/renderer"
)

// quotesCmd holds the flags for the 'quotes' subcommand.
type quotesCmd struct{}

func (*quotesCmd) Name() string     { return "quotes" }
func (*quotesCmd) Synopsis() string { return "display the live ticker panel" }
func (*quotesCmd) Usage() string {
	return `bbd quotes

  Fetches (or serves from cache) the configured tickers and displays the
  quote widgets with sparklines.
`
}

func (*quotesCmd) SetFlags(_ *flag.FlagSet) {}

func (c *quotesCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	settings, err := loadSettings()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error resolving settings: %v\n", err)
		return subcommands.ExitUsageError
	}

	cache := newQuoteCache(settings)
	quotes := cache.Quotes(ctx, settings.Tickers)
	sparks := cache.Sparklines(ctx, settings.Tickers)

	panel := renderer.NewTickerPanel(settings.Tickers, quotes, sparks)
	printMarkdown(renderer.RenderTickers(panel))
	return subcommands.ExitSuccess
}
