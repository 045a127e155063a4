package rss

import (
	"testing"
	"time"

	"github.com/abelbrown/radar/internal/feeds"
	"github.com/mmcdole/gofeed"
)

func TestConvert(t *testing.T) {
	pub := time.Date(2026, 8, 27, 9, 0, 0, 0, time.UTC)
	fetched := time.Date(2026, 8, 27, 10, 0, 0, 0, time.UTC)

	entry := &gofeed.Item{
		Title:           "TSMC ramps CoWoS",
		Link:            "https://wire.example/tsmc",
		Description:     "short summary",
		PublishedParsed: &pub,
		Author:          &gofeed.Person{Name: "A. Writer"},
	}

	it := Convert(entry, "Wire", "https://wire.example/feed", fetched)

	if len(it.ID) != 16 {
		t.Errorf("ID length = %d, want 16 hex chars", len(it.ID))
	}
	if it.Source != feeds.SourceRSS || it.SourceName != "Wire" {
		t.Errorf("source fields = %s / %s", it.Source, it.SourceName)
	}
	if it.Title != "TSMC ramps CoWoS" || it.URL != "https://wire.example/tsmc" {
		t.Errorf("title/url = %q / %q", it.Title, it.URL)
	}
	if !it.Published.Equal(pub) || !it.Fetched.Equal(fetched) {
		t.Errorf("times = %v / %v", it.Published, it.Fetched)
	}
	if it.Author != "A. Writer" {
		t.Errorf("author = %q", it.Author)
	}
	if it.Primary != feeds.CategoryMisc {
		t.Errorf("primary = %s, want misc before classification", it.Primary)
	}
}

func TestConvertStableID(t *testing.T) {
	fetched := time.Now()
	a := Convert(&gofeed.Item{Link: "https://wire.example/x"}, "Wire", "", fetched)
	b := Convert(&gofeed.Item{Link: "https://wire.example/x", Title: "retitled"}, "Wire", "", fetched)
	c := Convert(&gofeed.Item{Link: "https://wire.example/y"}, "Wire", "", fetched)

	if a.ID != b.ID {
		t.Error("same link must yield the same ID")
	}
	if a.ID == c.ID {
		t.Error("different links must yield different IDs")
	}
}

func TestConvertTimeFallbacks(t *testing.T) {
	fetched := time.Date(2026, 8, 27, 10, 0, 0, 0, time.UTC)
	upd := time.Date(2026, 8, 26, 8, 0, 0, 0, time.UTC)

	noDates := Convert(&gofeed.Item{Link: "u"}, "Wire", "", fetched)
	if !noDates.Published.Equal(fetched) {
		t.Errorf("published without dates = %v, want fetch time", noDates.Published)
	}

	updated := Convert(&gofeed.Item{Link: "u", UpdatedParsed: &upd}, "Wire", "", fetched)
	if !updated.Published.Equal(upd) {
		t.Errorf("published = %v, want updated time fallback", updated.Published)
	}
}

func TestConvertSummaryFromContent(t *testing.T) {
	fetched := time.Now()
	long := make([]byte, 300)
	for i := range long {
		long[i] = 'x'
	}

	it := Convert(&gofeed.Item{Link: "u", Content: string(long)}, "Wire", "", fetched)
	if len(it.Summary) != 203 {
		t.Errorf("summary length = %d, want 200 + ellipsis", len(it.Summary))
	}

	both := Convert(&gofeed.Item{Link: "u", Description: "desc", Content: string(long)}, "Wire", "", fetched)
	if both.Summary != "desc" {
		t.Errorf("summary = %q, description should win", both.Summary)
	}
}
