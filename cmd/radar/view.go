package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/abelbrown/radar/internal/digest"
	"github.com/abelbrown/radar/internal/render"
	"github.com/abelbrown/radar/internal/ui"
)

func runView() {
	fs := flag.NewFlagSet("view", flag.ExitOnError)
	window := fs.Int("window", 0, "Override the trailing window length")
	fs.Parse(os.Args[1:])

	cfg := loadConfig()
	dc := digestConfig(cfg)
	if *window > 0 {
		dc.MaxWindow = *window
	}

	d := digest.FromDir(cfg.DataDir, dc)
	content := render.Terminal(d)

	prog := tea.NewProgram(ui.New(content), tea.WithAltScreen())
	if _, err := prog.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "radar: viewer failed: %v\n", err)
		os.Exit(1)
	}
}
