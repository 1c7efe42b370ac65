package quote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/PaesslerAG/jsonpath"
	"github.com/shopspring/decimal"
)

// A Fetcher retrieves the chronological price samples for one ticker over
// the given lookback window. Implementations must honor the context.
type Fetcher func(ctx context.Context, ticker, window, interval string) ([]decimal.Decimal, error)

// DefaultChartURL is the chart-series endpoint used by NewChartFetcher.
const DefaultChartURL = "https://query1.finance.yahoo.com/v8/finance/chart"

/*
	{
	    "chart": {
	        "result": [
	            {
	                "meta": {"symbol": "VOO", ...},
	                "timestamp": [1724913000, ...],
	                "indicators": {
	                    "quote": [
	                        {"close": [512.43, null, 512.51, ...], ...}
	                    ]
	                }
	            }
	        ],
	        "error": null
	    }
	}
*/

// NewChartFetcher returns a Fetcher against a chart-series endpoint in the
// shape above. Null samples (halted minutes, empty bars) are dropped so the
// result is the ordered, non-absent subsequence of the window.
func NewChartFetcher(baseURL string, timeout time.Duration) Fetcher {
	client := &http.Client{Timeout: timeout}
	return func(ctx context.Context, ticker, window, interval string) ([]decimal.Decimal, error) {
		addr := fmt.Sprintf("%s/%s?range=%s&interval=%s", baseURL, url.PathEscape(ticker), window, interval)
		var jobj any
		if err := jwget(ctx, client, addr, &jobj); err != nil {
			return nil, fmt.Errorf("error retrieving %q: %w", ticker, err)
		}

		path := "$.chart.result[0].indicators.quote[0].close"
		jval, err := jsonpath.Get(path, jobj)
		if err != nil {
			return nil, fmt.Errorf("error parsing %q: %q %w", ticker, path, err)
		}
		jlist, ok := jval.([]any)
		if !ok {
			return nil, fmt.Errorf("error parsing %q: %q is not a list", ticker, path)
		}

		samples := make([]decimal.Decimal, 0, len(jlist))
		for _, v := range jlist {
			f, ok := v.(float64)
			if !ok {
				continue // null sample
			}
			samples = append(samples, decimal.NewFromFloat(f))
		}
		if len(samples) == 0 {
			return nil, fmt.Errorf("no usable samples for %q", ticker)
		}
		return samples, nil
	}
}

// jwget performs an HTTP GET request and unmarshals the JSON response into the provided data structure.
func jwget(ctx context.Context, client *http.Client, addr string, data any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, addr, nil)
	if err != nil {
		return err
	}
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != 200 {
		return fmt.Errorf("cannot http GET %v/%v: %v", resp.Request.URL.Host, resp.Request.URL.Path, resp.Status)
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, resp.Body); err != nil {
		return err
	}
	return json.Unmarshal(buf.Bytes(), data)
}
