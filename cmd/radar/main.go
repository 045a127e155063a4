// Command radar is the daily attention-radar pipeline and digest CLI.
//
// Usage:
//
//	radar                   Show help
//	radar run               Daily pipeline: fetch, classify, snapshot, render
//	radar digest            Recompute the trailing-window digest
//	radar view              Interactive terminal digest viewer
//	radar stats             Archive statistics
package main

import (
	"fmt"
	"os"

	"github.com/abelbrown/radar/internal/logging"
)

const usage = `radar — topical attention radar

Usage:
  radar <command> [flags]

Commands:
  run         Daily pipeline: fetch feeds, classify, write today's snapshot, render pages
  digest      Recompute the trailing-window digest and render weekly.html
  view        Interactive terminal digest viewer
  stats       Archive statistics (items and sources in sqlite)

Run 'radar <command> -h' for command-specific help.
`

func main() {
	if len(os.Args) < 2 {
		fmt.Print(usage)
		os.Exit(0)
	}

	if err := logging.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "radar: logging init failed: %v\n", err)
	}
	defer logging.Close()

	cmd := os.Args[1]
	// Strip the program name + subcommand so flag sets see only their flags
	os.Args = os.Args[1:]

	switch cmd {
	case "run":
		runDaily()
	case "digest":
		runDigest()
	case "view":
		runView()
	case "stats":
		runStats()
	case "-h", "--help", "help":
		fmt.Print(usage)
	default:
		fmt.Fprintf(os.Stderr, "radar: unknown command %q\n\n", cmd)
		fmt.Print(usage)
		os.Exit(1)
	}
}
