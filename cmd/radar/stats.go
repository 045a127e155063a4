package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/abelbrown/radar/internal/snapshot"
)

func runStats() {
	fs := flag.NewFlagSet("stats", flag.ExitOnError)
	byCat := fs.Bool("categories", false, "Include per-category archive counts")
	fs.Parse(os.Args[1:])

	cfg := loadConfig()
	st := openArchive(cfg)
	defer st.Close()

	total, err := st.CountAllItems()
	if err != nil {
		fmt.Fprintf(os.Stderr, "radar: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Total in archive:      %d\n", total)

	days := snapshot.LoadWindow(cfg.DataDir, cfg.Digest.MaxWindow)
	fmt.Printf("Snapshot window:       %d days\n", len(days))
	for _, d := range days {
		fmt.Printf("  %s  %3d items\n", d.Date, len(d.Items))
	}

	stats, err := st.SourceStats()
	if err != nil {
		fmt.Fprintf(os.Stderr, "radar: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("\nSources (%d):\n", len(stats))
	for _, s := range stats {
		last := "never"
		if !s.LastFetched.IsZero() {
			last = s.LastFetched.Format("2006-01-02 15:04")
		}
		fmt.Printf("  %-35s %4d  last %s\n", s.Name, s.ItemCount, last)
	}

	if !*byCat {
		return
	}

	cats, err := st.CountByCategory()
	if err != nil {
		fmt.Fprintf(os.Stderr, "radar: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("\nCategories (%d):\n", len(cats))
	for cat, n := range cats {
		fmt.Printf("  %-16s %d\n", cat, n)
	}
}
