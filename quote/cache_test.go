package quote

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

// countingFetcher counts fetches per ticker and fails the tickers listed in bad.
type countingFetcher struct {
	calls int
	bad   map[string]bool
}

func (f *countingFetcher) fetch(_ context.Context, ticker, _, _ string) ([]decimal.Decimal, error) {
	f.calls++
	if f.bad[ticker] {
		return nil, fmt.Errorf("no data for %q", ticker)
	}
	return samples(100, 110), nil
}

// testClock is an injectable clock advanced manually by tests.
type testClock struct{ now time.Time }

func (c *testClock) Now() time.Time { return c.now }

func newTestCache(f *countingFetcher, ttl time.Duration) (*Cache, *testClock) {
	clock := &testClock{now: time.Date(2025, 8, 30, 12, 0, 0, 0, time.UTC)}
	c := NewCache(f.fetch, ttl)
	c.now = clock.Now
	return c, clock
}

func TestCacheServesWithinTTL(t *testing.T) {
	f := &countingFetcher{}
	c, clock := newTestCache(f, 300*time.Second)
	tickers := []string{"VOO", "PLTR"}

	first := c.Quotes(context.Background(), tickers)
	if len(first) != 2 {
		t.Fatalf("Quotes() = %d entries, want 2", len(first))
	}
	if f.calls != 2 {
		t.Fatalf("fetch calls = %d, want 2 (one per ticker)", f.calls)
	}

	// A second call within the TTL serves the cache: no fetch observable.
	clock.now = clock.now.Add(299 * time.Second)
	second := c.Quotes(context.Background(), tickers)
	if f.calls != 2 {
		t.Errorf("fetch calls = %d after cached call, want still 2", f.calls)
	}
	if first["VOO"] != second["VOO"] {
		t.Errorf("cached Quotes() differ: %v vs %v", first["VOO"], second["VOO"])
	}
}

func TestCacheRefetchesAfterExpiry(t *testing.T) {
	f := &countingFetcher{}
	c, clock := newTestCache(f, 300*time.Second)
	tickers := []string{"VOO"}

	c.Quotes(context.Background(), tickers)
	clock.now = clock.now.Add(301 * time.Second)
	c.Quotes(context.Background(), tickers)

	if f.calls != 2 {
		t.Errorf("fetch calls = %d, want exactly 2 (one per expiry window)", f.calls)
	}
}

func TestCacheDegradesPerTicker(t *testing.T) {
	f := &countingFetcher{bad: map[string]bool{"ZZZZ": true}}
	c, _ := newTestCache(f, 300*time.Second)

	quotes := c.Quotes(context.Background(), []string{"VOO", "ZZZZ", "ORCL"})

	if _, ok := quotes["ZZZZ"]; ok {
		t.Error("Quotes() contains ZZZZ, want it absent after its fetch failed")
	}
	for _, ticker := range []string{"VOO", "ORCL"} {
		if _, ok := quotes[ticker]; !ok {
			t.Errorf("Quotes() missing %s, unrelated tickers must be unaffected", ticker)
		}
	}
}

func TestCacheKeyedByPurpose(t *testing.T) {
	f := &countingFetcher{}
	c, _ := newTestCache(f, 300*time.Second)
	tickers := []string{"VOO"}

	c.Quotes(context.Background(), tickers)
	series := c.Sparklines(context.Background(), tickers)

	// Sparklines use their own window: a fresh quotes entry does not cover them.
	if f.calls != 2 {
		t.Errorf("fetch calls = %d, want 2 (quotes and sparklines cached separately)", f.calls)
	}
	if len(series["VOO"]) != 2 {
		t.Errorf("Sparklines() series = %v, want the fetched samples as-is", series["VOO"])
	}
}

func TestCacheCanonicalTickers(t *testing.T) {
	f := &countingFetcher{}
	c, _ := newTestCache(f, 300*time.Second)

	c.Quotes(context.Background(), []string{"voo ", "pltr"})
	c.Quotes(context.Background(), []string{"PLTR", "VOO"})

	// Same ticker set in any order or case hits the same entry.
	if f.calls != 2 {
		t.Errorf("fetch calls = %d, want 2", f.calls)
	}
}
