package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config is the persistent application configuration
type Config struct {
	// DataDir holds daily snapshot JSON files and the feed cache
	DataDir string `json:"data_dir"`

	// OutDir receives rendered HTML pages
	OutDir string `json:"out_dir"`

	// ArchivePath is the sqlite item archive
	ArchivePath string `json:"archive_path"`

	// FeedsFile is the YAML feed list
	FeedsFile string `json:"feeds_file"`

	// Digest holds the trend analytics parameters
	Digest DigestConfig `json:"digest"`

	// Pipeline holds daily ingestion settings
	Pipeline PipelineConfig `json:"pipeline"`
}

// DigestConfig holds the trailing-window analytics parameters
type DigestConfig struct {
	MaxWindow     int     `json:"max_window"`     // trailing days to analyze
	HalfLifeDays  float64 `json:"half_life_days"` // recency decay half-life
	TopShareN     int     `json:"top_share_n"`    // keys in the top-share numerator
	EvidenceLimit int     `json:"evidence_limit"` // items per evidence cluster
}

// PipelineConfig holds daily ingestion settings
type PipelineConfig struct {
	FetchTimeoutSec int `json:"fetch_timeout_sec"`
	MaxConcurrent   int `json:"max_concurrent"`
	DefaultLimit    int `json:"default_limit"`  // entries taken per feed
	Preselect       int `json:"preselect"`      // candidates kept after scoring
	FinalItems      int `json:"final_items"`    // items in the daily snapshot
	MaxEntities     int `json:"max_entities"`   // entities extracted per title
}

// DefaultConfig returns sensible defaults
func DefaultConfig() *Config {
	return &Config{
		DataDir:     "docs/data",
		OutDir:      "docs",
		ArchivePath: "radar.db",
		FeedsFile:   "feeds.yaml",
		Digest: DigestConfig{
			MaxWindow:     7,
			HalfLifeDays:  3.0,
			TopShareN:     3,
			EvidenceLimit: 6,
		},
		Pipeline: PipelineConfig{
			FetchTimeoutSec: 30,
			MaxConcurrent:   5,
			DefaultLimit:    12,
			Preselect:       30,
			FinalItems:      15,
			MaxEntities:     8,
		},
	}
}

// configPath returns the path to the config file
func configPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".radar", "config.json"), nil
}

// Load reads the config file, returning defaults if it doesn't exist
func Load() (*Config, error) {
	path, err := configPath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := DefaultConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.applyFloors()
	return cfg, nil
}

// Save writes the config to disk
func (c *Config) Save() error {
	path, err := configPath()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	return os.WriteFile(path, data, 0644)
}

// applyFloors pulls zero-valued fields back to their defaults so a
// hand-edited config can omit sections it doesn't care about.
func (c *Config) applyFloors() {
	def := DefaultConfig()
	if c.Digest.MaxWindow <= 0 {
		c.Digest.MaxWindow = def.Digest.MaxWindow
	}
	if c.Digest.HalfLifeDays <= 0 {
		c.Digest.HalfLifeDays = def.Digest.HalfLifeDays
	}
	if c.Digest.TopShareN <= 0 {
		c.Digest.TopShareN = def.Digest.TopShareN
	}
	if c.Digest.EvidenceLimit <= 0 {
		c.Digest.EvidenceLimit = def.Digest.EvidenceLimit
	}
	if c.Pipeline.FetchTimeoutSec <= 0 {
		c.Pipeline.FetchTimeoutSec = def.Pipeline.FetchTimeoutSec
	}
	if c.Pipeline.MaxConcurrent <= 0 {
		c.Pipeline.MaxConcurrent = def.Pipeline.MaxConcurrent
	}
	if c.Pipeline.DefaultLimit <= 0 {
		c.Pipeline.DefaultLimit = def.Pipeline.DefaultLimit
	}
	if c.Pipeline.Preselect <= 0 {
		c.Pipeline.Preselect = def.Pipeline.Preselect
	}
	if c.Pipeline.FinalItems <= 0 {
		c.Pipeline.FinalItems = def.Pipeline.FinalItems
	}
	if c.Pipeline.MaxEntities <= 0 {
		c.Pipeline.MaxEntities = def.Pipeline.MaxEntities
	}
}
