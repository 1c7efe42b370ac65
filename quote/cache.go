package quote

import (
	"context"
	"log"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"
)

// Fetch windows. Quotes use a two-day intraday window so the change is
// measured against the earliest sample of the previous session; sparklines
// use a shorter window with coarser bars.
const (
	quoteWindow   = "2d"
	quoteInterval = "1m"
	sparkWindow   = "1d"
	sparkInterval = "5m"
)

// Cache is a process-wide, time-bounded cache over a Fetcher, keyed by
// (ticker-set, purpose). An entry younger than the TTL is served without
// re-fetching; an expired or missing entry triggers exactly one new fetch.
// Each entry is replaced atomically as a whole batch, so all readers in an
// expiry window get the same snapshot.
type Cache struct {
	mu      sync.Mutex
	ttl     time.Duration
	fetch   Fetcher
	now     func() time.Time // injectable clock for tests
	entries map[string]entry
}

type entry struct {
	quotes    map[string]Quote
	series    map[string][]decimal.Decimal
	fetchedAt time.Time
}

// NewCache returns a cache serving entries younger than ttl from memory.
func NewCache(fetch Fetcher, ttl time.Duration) *Cache {
	return &Cache{
		ttl:     ttl,
		fetch:   fetch,
		now:     time.Now,
		entries: make(map[string]entry),
	}
}

// Quotes returns the latest snapshot for each ticker. Tickers whose fetch
// failed or returned no data are absent from the mapping; no error escapes.
func (c *Cache) Quotes(ctx context.Context, tickers []string) map[string]Quote {
	e := c.lookup(ctx, "quotes", tickers)
	return e.quotes
}

// Sparklines returns the ordered non-absent price series over the lookback
// window for each ticker, as-is with no downsampling. Failed tickers are
// absent from the mapping.
func (c *Cache) Sparklines(ctx context.Context, tickers []string) map[string][]decimal.Decimal {
	e := c.lookup(ctx, "sparklines", tickers)
	return e.series
}

// lookup serves a fresh entry from the cache or re-fetches the whole batch.
// The mutex is held across the fetch: refresh cycles are serialized, and a
// cycle that finds a fetch in flight waits for its result.
func (c *Cache) lookup(ctx context.Context, purpose string, tickers []string) entry {
	tickers = canonical(tickers)
	key := purpose + " " + strings.Join(tickers, ",")

	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.entries[key]; ok && c.now().Sub(e.fetchedAt) < c.ttl {
		return e
	}

	e := entry{
		quotes:    make(map[string]Quote),
		series:    make(map[string][]decimal.Decimal),
		fetchedAt: c.now(),
	}
	window, interval := quoteWindow, quoteInterval
	if purpose == "sparklines" {
		window, interval = sparkWindow, sparkInterval
	}
	for _, t := range tickers {
		samples, err := c.fetch(ctx, t, window, interval)
		if err != nil {
			// One bad ticker must not fail the batch.
			log.Printf("quote fetch %s failed (ignored): %v", t, err)
			continue
		}
		if purpose == "sparklines" {
			e.series[t] = samples
			continue
		}
		if q, ok := newQuote(samples, e.fetchedAt); ok {
			e.quotes[t] = q
		}
	}
	c.entries[key] = e
	return e
}

// canonical returns the upper-cased, trimmed, sorted ticker set.
func canonical(tickers []string) []string {
	out := make([]string, 0, len(tickers))
	for _, t := range tickers {
		t = strings.ToUpper(strings.TrimSpace(t))
		if t != "" && !slices.Contains(out, t) {
			out = append(out, t)
		}
	}
	slices.Sort(out)
	return out
}
