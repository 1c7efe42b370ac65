package renderer

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/etnz/bubbleboard/quote"
)

// TickerPanel is the display-ready projection of the quote mapping.
type TickerPanel struct {
	Lines []TickerLine
}

// TickerLine is one ticker widget. Absent quotes render as a "no data"
// line rather than failing the panel.
type TickerLine struct {
	Symbol    string
	HasQuote  bool
	Price     string
	ChangeAbs string
	ChangePct string
	AsOf      string
	Spark     string
}

// NewTickerPanel projects quotes and sparklines, in the configured ticker
// order, into a TickerPanel.
func NewTickerPanel(tickers []string, quotes map[string]quote.Quote, sparks map[string][]decimal.Decimal) *TickerPanel {
	p := &TickerPanel{}
	for _, t := range tickers {
		// The cache keys its mappings by the canonical upper-cased symbol,
		// whatever case the configuration used.
		t = strings.ToUpper(strings.TrimSpace(t))
		line := TickerLine{Symbol: t}
		if q, ok := quotes[t]; ok {
			line.HasQuote = true
			line.Price = q.PriceString()
			line.ChangeAbs = q.ChangeAbsString()
			line.ChangePct = q.ChangePctString()
			line.AsOf = q.AsOfString()
		}
		line.Spark = Sparkline(sparks[t])
		p.Lines = append(p.Lines, line)
	}
	return p
}

var sparkGlyphs = []rune("▁▂▃▄▅▆▇█")

// Sparkline renders a price series as a row of block glyphs scaled between
// the series min and max. Display only; the raw series is never altered.
func Sparkline(series []decimal.Decimal) string {
	if len(series) < 2 {
		return ""
	}
	lo, hi := series[0], series[0]
	for _, s := range series[1:] {
		if s.LessThan(lo) {
			lo = s
		}
		if s.GreaterThan(hi) {
			hi = s
		}
	}
	span := hi.Sub(lo)
	out := make([]rune, 0, len(series))
	for _, s := range series {
		level := len(sparkGlyphs) / 2 // flat series renders mid-height
		if !span.IsZero() {
			ratio := s.Sub(lo).Div(span).InexactFloat64()
			level = int(ratio * float64(len(sparkGlyphs)-1))
		}
		out = append(out, sparkGlyphs[level])
	}
	return string(out)
}
