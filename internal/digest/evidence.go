package digest

import (
	"strings"

	"github.com/abelbrown/radar/internal/entity"
	"github.com/abelbrown/radar/internal/feeds"
	"github.com/abelbrown/radar/internal/snapshot"
)

// Cluster is the bounded evidence set for one ranked key.
type Cluster struct {
	Name  string
	Items []snapshot.Record
}

// PickForEntity walks the window newest day first, preserving in-day
// order, and collects items whose normalized entity list contains the
// target. Stops at limit; may return fewer.
func PickForEntity(days []snapshot.Day, target string, limit int) []snapshot.Record {
	var hits []snapshot.Record
	for di := len(days) - 1; di >= 0; di-- {
		for _, it := range days[di].Items {
			if !mentions(it, target) {
				continue
			}
			hits = append(hits, it)
			if len(hits) >= limit {
				return hits
			}
		}
	}
	return hits
}

func mentions(it snapshot.Record, target string) bool {
	for _, e := range it.Entities {
		if entity.Normalize(e) == target {
			return true
		}
	}
	return false
}

// PickForCategory collects items whose normalized primary category
// equals the target, newest day first.
func PickForCategory(days []snapshot.Day, target string, limit int) []snapshot.Record {
	var hits []snapshot.Record
	for di := len(days) - 1; di >= 0; di-- {
		for _, it := range days[di].Items {
			cat := feeds.ParseCategory(strings.TrimSpace(it.Primary))
			if cat.String() != target {
				continue
			}
			hits = append(hits, it)
			if len(hits) >= limit {
				return hits
			}
		}
	}
	return hits
}
