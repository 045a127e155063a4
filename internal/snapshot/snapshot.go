// Package snapshot defines the per-day record format and the trailing
// window loader the digest engine consumes.
//
// One file per day, named YYYY-MM-DD.json, owned by the daily pipeline.
// The loader is deliberately forgiving: a malformed file degrades to an
// empty day, a malformed item is skipped, and an empty data dir yields
// an empty window rather than an error.
package snapshot

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// DateFormat is the file-stem date layout.
const DateFormat = "2006-01-02"

// Record is one item inside a day file. Either URL or Link may carry
// the address; Href resolves the two.
type Record struct {
	Title     string   `json:"title"`
	URL       string   `json:"url,omitempty"`
	Link      string   `json:"link,omitempty"`
	Source    string   `json:"source"`
	Primary   string   `json:"primary,omitempty"`
	Tags      []string `json:"tags,omitempty"`
	Entities  []string `json:"entities,omitempty"`
	Published string   `json:"published,omitempty"`
	Score     int      `json:"score,omitempty"`
	Why       string   `json:"why,omitempty"`
}

// Href returns the item's address, preferring url over link.
func (r Record) Href() string {
	if u := strings.TrimSpace(r.URL); u != "" {
		return u
	}
	return strings.TrimSpace(r.Link)
}

// EntityCount pairs an entity with its daily mention count.
type EntityCount struct {
	Entity string `json:"entity"`
	Count  int    `json:"count"`
}

// Briefing is the day's summary block.
type Briefing struct {
	Signals     []string `json:"signals"`
	Risks       []string `json:"risks"`
	Watch       []string `json:"watch"`
	EntitiesTop []string `json:"entities_top"`
}

// Day is one calendar day's snapshot.
type Day struct {
	Date        string         `json:"date"`
	ScoreAvg    float64        `json:"score_avg,omitempty"`
	PrimaryDist map[string]int `json:"primary_dist,omitempty"`
	TopEntities []EntityCount  `json:"top_entities,omitempty"`
	Briefing    *Briefing      `json:"briefing,omitempty"`
	Items       []Record       `json:"items"`
}

// UnmarshalJSON decodes a day record item by item so one malformed item
// doesn't take the whole day down with it.
func (d *Day) UnmarshalJSON(data []byte) error {
	type alias struct {
		Date        string            `json:"date"`
		ScoreAvg    float64           `json:"score_avg"`
		PrimaryDist map[string]int    `json:"primary_dist"`
		TopEntities []EntityCount     `json:"top_entities"`
		Briefing    *Briefing         `json:"briefing"`
		Items       []json.RawMessage `json:"items"`
	}

	var raw alias
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	d.Date = raw.Date
	d.ScoreAvg = raw.ScoreAvg
	d.PrimaryDist = raw.PrimaryDist
	d.TopEntities = raw.TopEntities
	d.Briefing = raw.Briefing

	d.Items = make([]Record, 0, len(raw.Items))
	for _, ri := range raw.Items {
		var rec Record
		if err := json.Unmarshal(ri, &rec); err != nil {
			continue // wrong shape, skip this item
		}
		d.Items = append(d.Items, rec)
	}
	return nil
}

// ParseDate parses a file stem as a calendar date.
func ParseDate(stem string) (time.Time, bool) {
	t, err := time.Parse(DateFormat, stem)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// Write stores a day file under dir, creating dir if needed.
func Write(dir string, day *Day) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(day, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, day.Date+".json"), data, 0644)
}

// LoadWindow reads the trailing window of day files from dir, oldest
// first. File names that don't parse as dates are ignored; files that
// don't parse as day records become empty days. A missing dir or no
// matching files yields an empty slice, never an error.
func LoadWindow(dir string, maxWindow int) []Day {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}

	type dated struct {
		stem string
		date time.Time
	}
	var stems []dated
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		stem := strings.TrimSuffix(e.Name(), ".json")
		t, ok := ParseDate(stem)
		if !ok {
			continue
		}
		stems = append(stems, dated{stem: stem, date: t})
	}

	sort.Slice(stems, func(i, j int) bool { return stems[i].date.Before(stems[j].date) })
	if maxWindow > 0 && len(stems) > maxWindow {
		stems = stems[len(stems)-maxWindow:]
	}

	days := make([]Day, 0, len(stems))
	for _, s := range stems {
		days = append(days, loadDay(filepath.Join(dir, s.stem+".json"), s.stem))
	}
	return days
}

// loadDay reads one day file, substituting an empty day on any failure.
func loadDay(path, stem string) Day {
	day := Day{Date: stem, Items: []Record{}}

	data, err := os.ReadFile(path)
	if err != nil {
		return day
	}

	var parsed Day
	if err := json.Unmarshal(data, &parsed); err != nil {
		return day
	}
	if parsed.Date == "" {
		parsed.Date = stem
	}
	if parsed.Items == nil {
		parsed.Items = []Record{}
	}
	return parsed
}
