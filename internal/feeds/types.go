package feeds

import "time"

// SourceType identifies the origin of a feed item
type SourceType string

const (
	SourceRSS  SourceType = "rss"
	SourceAtom SourceType = "atom"
)

// Item represents a single piece of content from any source.
// This is the unified type that flows through the daily pipeline.
type Item struct {
	ID         string     `json:"id"`
	Source     SourceType `json:"source_type"`
	SourceName string     `json:"source"` // "NVIDIA Blog", "arXiv cs.AI"
	SourceURL  string     `json:"source_url,omitempty"`
	Title      string     `json:"title"`
	Summary    string     `json:"summary,omitempty"`
	URL        string     `json:"url"`
	Author     string     `json:"author,omitempty"`
	Published  time.Time  `json:"published"`
	Fetched    time.Time  `json:"fetched"`

	// Set by classification
	Score    int      `json:"score"`              // 0-100 relevance score
	Primary  Category `json:"primary"`            // primary category
	Tags     []string `json:"tags,omitempty"`     // matched keyword groups
	Why      string   `json:"why,omitempty"`      // one-line justification shown on the daily page
	Entities []string `json:"entities,omitempty"` // normalized entity names
}

// Source is the interface all feed sources implement
type Source interface {
	// Name returns human-readable source name
	Name() string

	// Type returns the source type
	Type() SourceType

	// Fetch retrieves latest items from this source
	Fetch(limit int) ([]Item, error)
}
