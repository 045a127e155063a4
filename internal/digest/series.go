package digest

import (
	"strings"

	"github.com/abelbrown/radar/internal/entity"
	"github.com/abelbrown/radar/internal/feeds"
	"github.com/abelbrown/radar/internal/snapshot"
)

// Series holds the per-key daily count vectors for one window.
// Every series has length N, zero-filled for days the key was absent.
type Series struct {
	Entities   map[string][]int
	Categories map[string][]int
	Sources    map[string][]int

	// ItemsPerDay is the total item volume per day index, used as the
	// share denominator by the rotation analyzer.
	ItemsPerDay []int
}

// BuildSeries tallies the window into per-key count vectors across the
// three key spaces. Keys are normalized before aggregation so variant
// spellings merge. An entity is counted at most once per item.
func BuildSeries(days []snapshot.Day) Series {
	n := len(days)
	s := Series{
		Entities:    map[string][]int{},
		Categories:  map[string][]int{},
		Sources:     map[string][]int{},
		ItemsPerDay: make([]int, n),
	}

	for di, day := range days {
		s.ItemsPerDay[di] = len(day.Items)

		for _, it := range day.Items {
			cat := feeds.ParseCategory(strings.TrimSpace(it.Primary))
			bump(s.Categories, cat.String(), di, n)

			src := normalizeSource(it.Source)
			bump(s.Sources, src, di, n)

			seen := map[string]bool{}
			for _, e := range it.Entities {
				e2 := entity.Normalize(e)
				if e2 == "" || seen[e2] {
					continue
				}
				seen[e2] = true
				bump(s.Entities, e2, di, n)
			}
		}
	}
	return s
}

func bump(m map[string][]int, key string, day, n int) {
	series, ok := m[key]
	if !ok {
		series = make([]int, n)
		m[key] = series
	}
	series[day]++
}

func normalizeSource(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	if s == "" {
		return "unknown"
	}
	return s
}
