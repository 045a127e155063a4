package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Digest.MaxWindow != 7 {
		t.Errorf("MaxWindow = %d, want 7", cfg.Digest.MaxWindow)
	}
	if cfg.Digest.HalfLifeDays != 3.0 {
		t.Errorf("HalfLifeDays = %v, want 3.0", cfg.Digest.HalfLifeDays)
	}
	if cfg.Digest.TopShareN != 3 {
		t.Errorf("TopShareN = %d, want 3", cfg.Digest.TopShareN)
	}
	if cfg.Pipeline.MaxConcurrent <= 0 || cfg.Pipeline.FinalItems <= 0 {
		t.Error("pipeline defaults must be positive")
	}
}

func TestApplyFloors(t *testing.T) {
	// Simulate a hand-edited config that omits most fields
	var cfg Config
	if err := json.Unmarshal([]byte(`{"digest":{"max_window":14}}`), &cfg); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	cfg.applyFloors()

	if cfg.Digest.MaxWindow != 14 {
		t.Errorf("explicit MaxWindow overwritten: %d", cfg.Digest.MaxWindow)
	}
	def := DefaultConfig()
	if cfg.Digest.HalfLifeDays != def.Digest.HalfLifeDays {
		t.Errorf("HalfLifeDays = %v, want default %v", cfg.Digest.HalfLifeDays, def.Digest.HalfLifeDays)
	}
	if cfg.Pipeline.FetchTimeoutSec != def.Pipeline.FetchTimeoutSec {
		t.Errorf("FetchTimeoutSec = %d, want default %d", cfg.Pipeline.FetchTimeoutSec, def.Pipeline.FetchTimeoutSec)
	}
	if cfg.Digest.EvidenceLimit != def.Digest.EvidenceLimit {
		t.Errorf("EvidenceLimit = %d, want default %d", cfg.Digest.EvidenceLimit, def.Digest.EvidenceLimit)
	}
}

func TestLoadFeedsMissingFile(t *testing.T) {
	fl, err := LoadFeeds(filepath.Join(t.TempDir(), "feeds.yaml"))
	if err != nil {
		t.Fatalf("LoadFeeds on missing file: %v", err)
	}
	if len(fl.Sources) == 0 {
		t.Error("missing feeds file should fall back to the built-in list")
	}
}

func TestLoadFeedsParses(t *testing.T) {
	path := filepath.Join(t.TempDir(), "feeds.yaml")
	raw := `sources:
  - name: Example Wire
    url: https://wire.example/feed
    type: rss
    tags: [infra, chips]
    cap: 3
  - name: Example Blog
    url: https://blog.example/rss
    type: rss
`
	if err := os.WriteFile(path, []byte(raw), 0644); err != nil {
		t.Fatal(err)
	}

	fl, err := LoadFeeds(path)
	if err != nil {
		t.Fatalf("LoadFeeds: %v", err)
	}
	if len(fl.Sources) != 2 {
		t.Fatalf("got %d sources, want 2", len(fl.Sources))
	}
	s := fl.Sources[0]
	if s.Name != "Example Wire" || s.URL != "https://wire.example/feed" || s.Cap != 3 {
		t.Errorf("first source = %+v", s)
	}
	if len(s.Tags) != 2 || s.Tags[0] != "infra" {
		t.Errorf("tags = %v", s.Tags)
	}
	if fl.Sources[1].Cap != 0 {
		t.Errorf("omitted cap should be 0 (uncapped), got %d", fl.Sources[1].Cap)
	}
}

func TestLoadFeedsBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "feeds.yaml")
	os.WriteFile(path, []byte(":\n  - ["), 0644)
	if _, err := LoadFeeds(path); err == nil {
		t.Error("broken YAML should error, not fall back silently")
	}
}

func TestEntryLimit(t *testing.T) {
	arxiv := FeedSource{Name: "arXiv cs.AI"}
	blog := FeedSource{Name: "NVIDIA Blog"}
	if got := arxiv.EntryLimit(12); got != 6 {
		t.Errorf("arXiv limit = %d, want 6", got)
	}
	if got := blog.EntryLimit(12); got != 12 {
		t.Errorf("blog limit = %d, want 12", got)
	}
}
