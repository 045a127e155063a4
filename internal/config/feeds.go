package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// FeedSource is one entry in the YAML feed list
type FeedSource struct {
	Name string   `yaml:"name"`
	URL  string   `yaml:"url"`
	Type string   `yaml:"type"` // only "rss" is fetched
	Tags []string `yaml:"tags,omitempty"`

	// Cap limits how many of this source's items survive into the daily
	// snapshot candidate pool. 0 = uncapped.
	Cap int `yaml:"cap,omitempty"`
}

// FeedList is the parsed feeds.yaml
type FeedList struct {
	Sources []FeedSource `yaml:"sources"`
}

// LoadFeeds reads the YAML feed list. A missing file returns the built-in
// default set rather than an error, so a fresh checkout works.
func LoadFeeds(path string) (*FeedList, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultFeeds(), nil
		}
		return nil, fmt.Errorf("failed to read feeds file: %w", err)
	}

	var fl FeedList
	if err := yaml.Unmarshal(data, &fl); err != nil {
		return nil, fmt.Errorf("failed to parse feeds file: %w", err)
	}
	return &fl, nil
}

// DefaultFeeds returns the built-in source list
func DefaultFeeds() *FeedList {
	return &FeedList{
		Sources: []FeedSource{
			{Name: "arXiv cs.AI", URL: "https://rss.arxiv.org/rss/cs.AI", Type: "rss", Tags: []string{"research"}, Cap: 2},
			{Name: "arXiv cs.LG", URL: "https://rss.arxiv.org/rss/cs.LG", Type: "rss", Tags: []string{"research"}, Cap: 2},
			{Name: "NVIDIA Blog", URL: "https://blogs.nvidia.com/feed/", Type: "rss", Tags: []string{"infra"}, Cap: 2},
			{Name: "Google AI Blog", URL: "https://blog.google/technology/ai/rss/", Type: "rss", Tags: []string{"models"}},
			{Name: "Hacker News", URL: "https://hnrss.org/frontpage", Type: "rss"},
			{Name: "SemiWiki", URL: "https://semiwiki.com/feed/", Type: "rss", Tags: []string{"chips"}},
		},
	}
}

// EntryLimit returns how many entries to take from a source per fetch.
// arXiv firehoses get a lower limit, everything else the default.
func (s FeedSource) EntryLimit(defaultLimit int) int {
	if strings.HasPrefix(s.Name, "arXiv") {
		return defaultLimit / 2
	}
	return defaultLimit
}
