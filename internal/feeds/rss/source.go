package rss

import (
	"crypto/sha256"
	"fmt"
	"time"

	"github.com/abelbrown/radar/internal/feeds"
	"github.com/mmcdole/gofeed"
)

// Source fetches items from an RSS/Atom feed
type Source struct {
	name   string
	url    string
	parser *gofeed.Parser
}

// New creates a new RSS source
func New(name, url string) *Source {
	return &Source{
		name:   name,
		url:    url,
		parser: gofeed.NewParser(),
	}
}

func (s *Source) Name() string {
	return s.name
}

func (s *Source) Type() feeds.SourceType {
	return feeds.SourceRSS
}

// Fetch retrieves up to limit items from the feed.
// limit <= 0 means no cap.
func (s *Source) Fetch(limit int) ([]feeds.Item, error) {
	feed, err := s.parser.ParseURL(s.url)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", s.url, err)
	}

	entries := feed.Items
	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}

	items := make([]feeds.Item, 0, len(entries))
	now := time.Now()

	for _, entry := range entries {
		items = append(items, Convert(entry, s.name, s.url, now))
	}

	return items, nil
}

// Convert maps a parsed feed entry to a feeds.Item.
func Convert(entry *gofeed.Item, sourceName, sourceURL string, fetched time.Time) feeds.Item {
	// Generate stable ID from URL
	id := fmt.Sprintf("%x", sha256.Sum256([]byte(entry.Link)))[:16]

	// Parse published time
	published := fetched
	if entry.PublishedParsed != nil {
		published = *entry.PublishedParsed
	} else if entry.UpdatedParsed != nil {
		published = *entry.UpdatedParsed
	}

	// Get summary
	summary := entry.Description
	if summary == "" && entry.Content != "" {
		summary = truncate(entry.Content, 200)
	}

	author := ""
	if entry.Author != nil {
		author = entry.Author.Name
	}

	return feeds.Item{
		ID:         id,
		Source:     feeds.SourceRSS,
		SourceName: sourceName,
		SourceURL:  sourceURL,
		Title:      entry.Title,
		Summary:    summary,
		URL:        entry.Link,
		Author:     author,
		Published:  published,
		Fetched:    fetched,
		Primary:    feeds.CategoryMisc,
	}
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
