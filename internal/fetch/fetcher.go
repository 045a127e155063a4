// Package fetch retrieves feed content over HTTP.
//
// It handles the network half of ingestion (requests, timeouts, rate
// limiting) and converts parsed entries to feeds.Item structs. What to do
// with the items is the caller's decision.
package fetch

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/mmcdole/gofeed"
	"golang.org/x/time/rate"

	"github.com/abelbrown/radar/internal/feeds"
	"github.com/abelbrown/radar/internal/feeds/rss"
)

// Source represents a feed source configuration.
type Source struct {
	Name  string // Display name
	URL   string // Feed URL
	Limit int    // Max entries to take per fetch, 0 = default
}

// Fetcher retrieves items from feed sources.
type Fetcher struct {
	client  *http.Client
	limiter *rate.Limiter
}

// NewFetcher creates a Fetcher with the given HTTP client timeout.
// Requests across all sources share one rate limiter so a burst of
// sources does not hammer slow upstreams.
func NewFetcher(timeout time.Duration) *Fetcher {
	return &Fetcher{
		client: &http.Client{
			Timeout: timeout,
		},
		limiter: rate.NewLimiter(rate.Every(200*time.Millisecond), 5),
	}
}

// Fetch retrieves items from a source. Returns items and any error.
// Does NOT store items - caller decides what to do with them.
//
// The function respects context cancellation and will return early
// if the context is cancelled.
func (f *Fetcher) Fetch(ctx context.Context, src Source) ([]feeds.Item, error) {
	if err := f.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, src.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	// Set a user agent to be a good citizen
	req.Header.Set("User-Agent", "Radar/0.1 (+https://github.com/abelbrown/radar)")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch feed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP error: %d %s", resp.StatusCode, resp.Status)
	}

	parser := gofeed.NewParser()
	feed, err := parser.Parse(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to parse feed: %w", err)
	}

	entries := feed.Items
	if src.Limit > 0 && len(entries) > src.Limit {
		entries = entries[:src.Limit]
	}

	now := time.Now()
	items := make([]feeds.Item, 0, len(entries))
	for _, entry := range entries {
		items = append(items, rss.Convert(entry, src.Name, src.URL, now))
	}

	return items, nil
}
