package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/abelbrown/radar/internal/digest"
	"github.com/abelbrown/radar/internal/render"
)

func runDigest() {
	fs := flag.NewFlagSet("digest", flag.ExitOnError)
	printTerm := fs.Bool("print", false, "Print the terminal rendering to stdout")
	asJSON := fs.Bool("json", false, "Dump the digest result as JSON")
	window := fs.Int("window", 0, "Override the trailing window length")
	fs.Parse(os.Args[1:])

	cfg := loadConfig()
	dc := digestConfig(cfg)
	if *window > 0 {
		dc.MaxWindow = *window
	}

	d := digest.FromDir(cfg.DataDir, dc)

	if *asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(d); err != nil {
			fmt.Fprintf(os.Stderr, "radar: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if *printTerm {
		fmt.Print(render.Terminal(d))
		return
	}

	html, err := render.Weekly(d)
	if err == nil {
		err = writePage(filepath.Join(cfg.OutDir, "weekly.html"), html)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "radar: weekly render failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Rendered weekly.html (window %d days, %d entities, %d categories)\n",
		d.N, len(d.Entities), len(d.Categories))
}
