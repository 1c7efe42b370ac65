package cmd

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/google/subcommands"

	"github.com/etnz/bubbleboard"
	"github.com/etnz/bubbleboard/describe"
	"github.com/etnz/bubbleboard/server"
)

// serveCmd holds the flags for the 'serve' subcommand.
type serveCmd struct {
	addr string
}

func (*serveCmd) Name() string     { return "serve" }
func (*serveCmd) Synopsis() string { return "serve the board as a JSON API" }
func (*serveCmd) Usage() string {
	return `bbd serve [-addr :8080]

  Serves records, quotes, sparklines and on-demand descriptions to the
  presentation layer.
`
}

func (c *serveCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.addr, "addr", "", "Listen address, overrides the configured one.")
}

func (c *serveCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	settings, err := loadSettings()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error resolving settings: %v\n", err)
		return subcommands.ExitUsageError
	}
	addr := settings.ListenAddr
	if c.addr != "" {
		addr = c.addr
	}

	board := bubbleboard.NewBoard(settings)
	cache := newQuoteCache(settings)

	// The description model is optional: without credentials the endpoint
	// answers with an error message instead of the server not starting.
	var describer server.Describer
	if generator, err := describe.New(ctx, settings.DescribeModel, settings.DescribeTimeout()); err != nil {
		log.Printf("description model unavailable: %v", err)
	} else {
		describer = generator
	}

	if err := server.New(board, cache, describer).Run(addr); err != nil {
		fmt.Fprintf(os.Stderr, "Server failed: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
