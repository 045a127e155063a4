package main

import (
	"fmt"
	"os"

	"github.com/abelbrown/radar/internal/config"
	"github.com/abelbrown/radar/internal/store"
)

// loadConfig loads the app config or exits.
func loadConfig() *config.Config {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "radar: failed to load config: %v\n", err)
		os.Exit(1)
	}
	return cfg
}

// openArchive opens the sqlite archive or exits.
func openArchive(cfg *config.Config) *store.Store {
	st, err := store.Open(cfg.ArchivePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "radar: failed to open archive %s: %v\n", cfg.ArchivePath, err)
		os.Exit(1)
	}
	return st
}
