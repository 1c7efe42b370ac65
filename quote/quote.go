// Package quote maintains a time-bounded cache of stock quotes and
// sparklines over an unreliable external source.
//
// A failed or partial fetch never surfaces as an error to the page: the
// affected tickers are simply absent from the returned mapping for one TTL
// window, self-healing on the next refresh.
package quote

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/etnz/bubbleboard"
)

// Quote is one ticker's latest market snapshot.
//
// Values are kept raw; formatting for display (currency, signed delta,
// signed percentage) happens at the presentation boundary through the
// *String methods.
type Quote struct {
	Price     decimal.Decimal
	ChangeAbs decimal.Decimal

	// ChangePct is absent when the reference price in the window is zero.
	ChangePct    bubbleboard.Percent
	HasChangePct bool

	AsOf time.Time
}

// newQuote derives a quote from the chronological samples of the fetch
// window: price is the latest sample, the change is measured against the
// earliest sample in the window.
func newQuote(samples []decimal.Decimal, asOf time.Time) (Quote, bool) {
	if len(samples) == 0 {
		return Quote{}, false
	}
	price := samples[len(samples)-1]
	prev := samples[0]
	q := Quote{
		Price:     price,
		ChangeAbs: price.Sub(prev),
		AsOf:      asOf,
	}
	if !prev.IsZero() {
		pct := q.ChangeAbs.Div(prev).Mul(decimal.NewFromInt(100))
		q.ChangePct = bubbleboard.Percent(pct.InexactFloat64())
		q.HasChangePct = true
	}
	return q, true
}

// PriceString returns the price formatted as currency.
func (q Quote) PriceString() string {
	return bubbleboard.USD(q.Price).String()
}

// ChangeAbsString returns the absolute change as a signed decimal.
func (q Quote) ChangeAbsString() string {
	if q.ChangeAbs.IsNegative() {
		return q.ChangeAbs.StringFixed(2)
	}
	return "+" + q.ChangeAbs.StringFixed(2)
}

// ChangePctString returns the percentage change as a signed percentage, or
// "-" when it is absent.
func (q Quote) ChangePctString() string {
	if !q.HasChangePct {
		return "-"
	}
	return q.ChangePct.SignedString()
}

// AsOfString returns the snapshot timestamp for display.
func (q Quote) AsOfString() string {
	return q.AsOf.Format("2006-01-02 15:04")
}
