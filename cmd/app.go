// Package cmd implements the CLI application to browse the bubble board.
package cmd

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/etnz/bubbleboard"
	"github.com/etnz/bubbleboard/quote"
)

// Commands lists the subcommands.
// A main package registers each of them and Execute()s the user-selected one.
var Commands = []subcommands.Command{
	&boardCmd{},
	&quotesCmd{},
	&describeCmd{},
	&watchCmd{},
	&serveCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var settingsFile = flag.String("settings", "", "Path to a YAML settings file (defaults to board.yaml when present)")

// loadSettings resolves the application settings: defaults, then the
// optional YAML settings file, then .env / environment overrides. The
// resolved struct is the only configuration the core ever sees.
func loadSettings() (bubbleboard.Settings, error) {
	// .env is optional; plain environment variables work without it.
	_ = godotenv.Load()

	s := bubbleboard.DefaultSettings()

	file := *settingsFile
	optional := file == ""
	if optional {
		file = "board.yaml"
	}
	data, err := os.ReadFile(file)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &s); err != nil {
			return s, fmt.Errorf("invalid settings file %q: %w", file, err)
		}
	case !optional:
		return s, fmt.Errorf("cannot read settings file %q: %w", file, err)
	}

	// Environment overrides, highest precedence.
	envString(&s.SpreadsheetPath, "BOARD_XLSX_PATH")
	envString(&s.SheetName, "BOARD_SHEET")
	envInt(&s.RefreshSeconds, "BOARD_REFRESH_SECONDS")
	envInt(&s.BubbleColumns, "BOARD_COLUMNS")
	envInt(&s.QuoteTTLSeconds, "STOCK_TTL_SECONDS")
	envString(&s.DescribeModel, "AI_MODEL")
	envInt(&s.DescribeTimeoutSeconds, "AI_TIMEOUT_SECONDS")
	envString(&s.ListenAddr, "BOARD_ADDR")
	if v := os.Getenv("TICKERS"); v != "" {
		s.Tickers = splitCSV(v)
	}
	// Whatever the source (defaults, YAML file or TICKERS), symbols are
	// canonical upper case: the quote cache keys its results that way.
	for i, t := range s.Tickers {
		s.Tickers[i] = strings.ToUpper(strings.TrimSpace(t))
	}

	if len(s.RequiredColumns) == 0 {
		s.RequiredColumns = bubbleboard.DefaultColumns()
	}
	return s, nil
}

func envString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func envInt(dst *int, key string) {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
}

// splitCSV splits a comma-separated flag value, dropping blanks.
func splitCSV(v string) []string {
	var out []string
	for _, s := range strings.Split(v, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// newQuoteCache builds the process-wide quote cache against the live chart endpoint.
func newQuoteCache(s bubbleboard.Settings) *quote.Cache {
	fetch := quote.NewChartFetcher(quote.DefaultChartURL, 15*time.Second)
	return quote.NewCache(fetch, s.QuoteTTL())
}

// printMarkdown renders markdown for the terminal, falling back to the raw
// text when the terminal renderer fails.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "dark")
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
