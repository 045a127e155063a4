package digest

import (
	"testing"

	"github.com/abelbrown/radar/internal/snapshot"
)

func day(date string, items ...snapshot.Record) snapshot.Day {
	return snapshot.Day{Date: date, Items: items}
}

func TestBuildSeriesLengths(t *testing.T) {
	days := []snapshot.Day{
		day("2026-08-25", snapshot.Record{Title: "a", Source: "S1", Primary: "infra", Entities: []string{"NVIDIA"}}),
		day("2026-08-26"),
		day("2026-08-27", snapshot.Record{Title: "b", Source: "S2", Primary: "models", Entities: []string{"OpenAI"}}),
	}
	s := BuildSeries(days)

	for space, m := range map[string]map[string][]int{
		"entities": s.Entities, "categories": s.Categories, "sources": s.Sources,
	} {
		for key, series := range m {
			if len(series) != 3 {
				t.Errorf("%s[%s] length = %d, want 3", space, key, len(series))
			}
		}
	}
	if got := s.ItemsPerDay; got[0] != 1 || got[1] != 0 || got[2] != 1 {
		t.Errorf("ItemsPerDay = %v, want [1 0 1]", got)
	}
}

func TestBuildSeriesEntityOncePerItem(t *testing.T) {
	// Item listing the same entity twice counts once for that day
	days := []snapshot.Day{
		day("2026-08-27",
			snapshot.Record{Title: "a", Source: "s", Entities: []string{"NVIDIA", "NVIDIA"}},
			snapshot.Record{Title: "b", Source: "s", Entities: []string{"NVIDIA"}},
		),
	}
	s := BuildSeries(days)
	if got := s.Entities["NVIDIA"][0]; got != 2 {
		t.Errorf("NVIDIA day count = %d, want 2 (one per item)", got)
	}
}

func TestBuildSeriesNormalizationMerges(t *testing.T) {
	days := []snapshot.Day{
		day("2026-08-26", snapshot.Record{Title: "a", Source: "s", Entities: []string{"  Hugging   Face "}}),
		day("2026-08-27", snapshot.Record{Title: "b", Source: "s", Entities: []string{"Hugging Face"}}),
	}
	s := BuildSeries(days)

	series, ok := s.Entities["Hugging Face"]
	if !ok {
		t.Fatalf("normalized key missing, have %v", keysOf(s.Entities))
	}
	if series[0] != 1 || series[1] != 1 {
		t.Errorf("series = %v, want [1 1]", series)
	}
	if len(s.Entities) != 1 {
		t.Errorf("expected one merged entity key, got %d", len(s.Entities))
	}
}

func TestBuildSeriesDefaults(t *testing.T) {
	days := []snapshot.Day{
		day("2026-08-27",
			snapshot.Record{Title: "no category", Source: ""},
			snapshot.Record{Title: "odd category", Source: "s", Primary: "definitely-not-a-category"},
		),
	}
	s := BuildSeries(days)

	if got := s.Categories["misc"][0]; got != 2 {
		t.Errorf("misc count = %d, want 2 (blank and unknown labels collapse)", got)
	}
	if got := s.Sources["unknown"][0]; got != 1 {
		t.Errorf("unknown source count = %d, want 1", got)
	}
}

func keysOf(m map[string][]int) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
