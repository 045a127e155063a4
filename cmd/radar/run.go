package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/abelbrown/radar/internal/cache"
	"github.com/abelbrown/radar/internal/config"
	"github.com/abelbrown/radar/internal/digest"
	"github.com/abelbrown/radar/internal/logging"
	"github.com/abelbrown/radar/internal/pipeline"
	"github.com/abelbrown/radar/internal/render"
	"github.com/abelbrown/radar/internal/store"
)

func runDaily() {
	fs := flag.NewFlagSet("run", flag.ExitOnError)
	date := fs.String("date", time.Now().Format("2006-01-02"), "Snapshot date (YYYY-MM-DD)")
	noArchive := fs.Bool("no-archive", false, "Skip the sqlite archive")
	noCache := fs.Bool("no-cache", false, "Skip the feed response cache")
	fs.Parse(os.Args[1:])

	cfg := loadConfig()

	feedList, err := config.LoadFeeds(cfg.FeedsFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "radar: %v\n", err)
		os.Exit(1)
	}

	var c *cache.Cache
	if !*noCache {
		c = cache.New(cache.DayFile(cfg.DataDir, *date))
	}

	var archive *store.Store
	if !*noArchive {
		archive = openArchive(cfg)
		defer archive.Close()
	}
	p := pipeline.New(cfg, feedList, c, archive)

	day, err := p.Run(context.Background(), *date)
	if err != nil {
		logging.Error("Pipeline failed", "error", err)
		fmt.Fprintf(os.Stderr, "radar: pipeline failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Snapshot %s written (%d items)\n", day.Date, len(day.Items))

	// Daily page
	html, err := render.Daily(day)
	if err == nil {
		err = writePage(filepath.Join(cfg.OutDir, "index.html"), html)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "radar: daily render failed: %v\n", err)
		os.Exit(1)
	}

	// Weekly digest over the refreshed window
	d := digest.FromDir(cfg.DataDir, digestConfig(cfg))
	weekly, err := render.Weekly(d)
	if err == nil {
		err = writePage(filepath.Join(cfg.OutDir, "weekly.html"), weekly)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "radar: weekly render failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Rendered index.html and weekly.html (window %d days)\n", d.N)
}

func writePage(path, content string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(content), 0644)
}

func digestConfig(cfg *config.Config) digest.Config {
	return digest.Config{
		MaxWindow:     cfg.Digest.MaxWindow,
		HalfLife:      cfg.Digest.HalfLifeDays,
		TopShareN:     cfg.Digest.TopShareN,
		EvidenceLimit: cfg.Digest.EvidenceLimit,
	}
}
