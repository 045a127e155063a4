package snapshot

import (
	"os"
	"path/filepath"
	"testing"
)

func TestHref(t *testing.T) {
	tests := []struct {
		rec  Record
		want string
	}{
		{Record{URL: "https://a.example/x"}, "https://a.example/x"},
		{Record{Link: "https://b.example/y"}, "https://b.example/y"},
		{Record{URL: "https://a.example/x", Link: "https://b.example/y"}, "https://a.example/x"},
		{Record{URL: "  https://a.example/x  "}, "https://a.example/x"},
		{Record{}, ""},
	}
	for _, tt := range tests {
		if got := tt.rec.Href(); got != tt.want {
			t.Errorf("Href(%+v) = %q, want %q", tt.rec, got, tt.want)
		}
	}
}

func TestParseDate(t *testing.T) {
	if _, ok := ParseDate("2026-08-27"); !ok {
		t.Error("valid date rejected")
	}
	for _, bad := range []string{"2026-8-27", "latest", "2026-08-27.feedcache", ""} {
		if _, ok := ParseDate(bad); ok {
			t.Errorf("ParseDate(%q) accepted, want rejected", bad)
		}
	}
}

func TestWriteLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	day := &Day{
		Date:     "2026-08-27",
		ScoreAvg: 42.5,
		Items: []Record{
			{Title: "one", URL: "https://a.example/1", Source: "Wire", Primary: "infra"},
			{Title: "two", Link: "https://a.example/2", Source: "Blog", Entities: []string{"NVIDIA"}},
		},
	}
	if err := Write(dir, day); err != nil {
		t.Fatalf("Write: %v", err)
	}

	days := LoadWindow(dir, 7)
	if len(days) != 1 {
		t.Fatalf("LoadWindow returned %d days, want 1", len(days))
	}
	got := days[0]
	if got.Date != "2026-08-27" || got.ScoreAvg != 42.5 {
		t.Errorf("day header = %q/%v, want 2026-08-27/42.5", got.Date, got.ScoreAvg)
	}
	if len(got.Items) != 2 || got.Items[0].Title != "one" || got.Items[1].Entities[0] != "NVIDIA" {
		t.Errorf("items did not round-trip: %+v", got.Items)
	}
}

func TestLoadWindowOrderAndTrim(t *testing.T) {
	dir := t.TempDir()
	// Written out of order; loader must sort by date.
	for _, date := range []string{"2026-08-25", "2026-08-21", "2026-08-23", "2026-08-22", "2026-08-24"} {
		if err := Write(dir, &Day{Date: date}); err != nil {
			t.Fatalf("Write %s: %v", date, err)
		}
	}

	days := LoadWindow(dir, 3)
	if len(days) != 3 {
		t.Fatalf("got %d days, want 3", len(days))
	}
	want := []string{"2026-08-23", "2026-08-24", "2026-08-25"}
	for i, w := range want {
		if days[i].Date != w {
			t.Errorf("days[%d] = %s, want %s", i, days[i].Date, w)
		}
	}
}

func TestLoadWindowIgnoresNonDateFiles(t *testing.T) {
	dir := t.TempDir()
	Write(dir, &Day{Date: "2026-08-27"})
	os.WriteFile(filepath.Join(dir, "notes.json"), []byte(`{"date":"x"}`), 0644)
	os.WriteFile(filepath.Join(dir, "2026-08-27.feedcache.json"), []byte(`{}`), 0644)
	os.WriteFile(filepath.Join(dir, "readme.txt"), []byte("hi"), 0644)
	os.MkdirAll(filepath.Join(dir, "2026-08-26.json"), 0755) // a dir, not a file

	days := LoadWindow(dir, 7)
	if len(days) != 1 || days[0].Date != "2026-08-27" {
		t.Errorf("got %d days (%v), want just 2026-08-27", len(days), days)
	}
}

func TestLoadWindowMissingDir(t *testing.T) {
	if days := LoadWindow(filepath.Join(t.TempDir(), "absent"), 7); len(days) != 0 {
		t.Errorf("missing dir yielded %d days, want 0", len(days))
	}
}

func TestLoadWindowMalformedFile(t *testing.T) {
	dir := t.TempDir()
	os.WriteFile(filepath.Join(dir, "2026-08-27.json"), []byte("{not json"), 0644)

	days := LoadWindow(dir, 7)
	if len(days) != 1 {
		t.Fatalf("got %d days, want 1", len(days))
	}
	if days[0].Date != "2026-08-27" || len(days[0].Items) != 0 {
		t.Errorf("malformed file should degrade to an empty day, got %+v", days[0])
	}
}

func TestLoadWindowSkipsMalformedItems(t *testing.T) {
	dir := t.TempDir()
	raw := `{"date":"2026-08-27","items":[
		{"title":"good","source":"Wire"},
		"not-an-object",
		{"title":"also good","source":"Blog"}
	]}`
	os.WriteFile(filepath.Join(dir, "2026-08-27.json"), []byte(raw), 0644)

	days := LoadWindow(dir, 7)
	if len(days) != 1 {
		t.Fatalf("got %d days, want 1", len(days))
	}
	items := days[0].Items
	if len(items) != 2 || items[0].Title != "good" || items[1].Title != "also good" {
		t.Errorf("malformed item should be skipped, got %+v", items)
	}
}

func TestLoadWindowFillsDateFromStem(t *testing.T) {
	dir := t.TempDir()
	os.WriteFile(filepath.Join(dir, "2026-08-27.json"), []byte(`{"items":[]}`), 0644)

	days := LoadWindow(dir, 7)
	if len(days) != 1 || days[0].Date != "2026-08-27" {
		t.Errorf("date should fall back to the file stem, got %+v", days)
	}
}
