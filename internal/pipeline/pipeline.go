// Package pipeline runs the daily ingest: fetch, classify, cap, dedup,
// snapshot, archive. The digest engine consumes what it writes.
package pipeline

import (
	"context"
	"sort"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/abelbrown/radar/internal/cache"
	"github.com/abelbrown/radar/internal/classify"
	"github.com/abelbrown/radar/internal/config"
	"github.com/abelbrown/radar/internal/entity"
	"github.com/abelbrown/radar/internal/feeds"
	"github.com/abelbrown/radar/internal/fetch"
	"github.com/abelbrown/radar/internal/logging"
	"github.com/abelbrown/radar/internal/snapshot"
	"github.com/abelbrown/radar/internal/store"
)

// Pipeline assembles one day's snapshot from the configured feeds.
type Pipeline struct {
	cfg     *config.Config
	list    *config.FeedList
	fetcher *fetch.Fetcher
	cache   *cache.Cache
	archive *store.Store // optional: nil disables archiving
}

// New creates a Pipeline. archive may be nil.
func New(cfg *config.Config, list *config.FeedList, c *cache.Cache, archive *store.Store) *Pipeline {
	return &Pipeline{
		cfg:     cfg,
		list:    list,
		fetcher: fetch.NewFetcher(time.Duration(cfg.Pipeline.FetchTimeoutSec) * time.Second),
		cache:   c,
		archive: archive,
	}
}

// Run fetches all sources, builds the day's snapshot for date (a
// YYYY-MM-DD string) and writes it under the data dir. Individual
// source failures are logged and skipped, never fatal.
func (p *Pipeline) Run(ctx context.Context, date string) (*snapshot.Day, error) {
	fetched := p.fetchAll(ctx)

	// Score + classify, applying per-source caps at ingest
	capCount := map[string]int{}
	var items []feeds.Item
	for _, it := range fetched {
		if it.Title == "" || it.URL == "" {
			continue
		}
		src := p.sourceFor(it.SourceName)
		if src != nil && src.Cap > 0 && capCount[it.SourceName] >= src.Cap {
			continue
		}
		capCount[it.SourceName]++

		res := classify.Score(it.Title, it.Summary, it.SourceName)
		it.Score = res.Score
		it.Primary = res.Primary
		it.Tags = res.Tags
		if it.Why == "" {
			it.Why = truncate(it.Summary, 160)
		}
		items = append(items, it)
	}

	// Dedup by link
	seen := map[string]bool{}
	deduped := items[:0]
	for _, it := range items {
		if seen[it.URL] {
			continue
		}
		seen[it.URL] = true
		deduped = append(deduped, it)
	}

	// Preselect and final cut by score, title as deterministic tiebreak
	sort.SliceStable(deduped, func(i, j int) bool {
		if deduped[i].Score != deduped[j].Score {
			return deduped[i].Score > deduped[j].Score
		}
		return deduped[i].Title < deduped[j].Title
	})
	if len(deduped) > p.cfg.Pipeline.Preselect {
		deduped = deduped[:p.cfg.Pipeline.Preselect]
	}

	if p.archive != nil {
		if n, err := p.archive.SaveItems(deduped); err != nil {
			logging.Error("Archive save failed", "error", err)
		} else {
			logging.Info("Archived items", "new", n, "total", len(deduped))
		}
	}

	final := deduped
	if len(final) > p.cfg.Pipeline.FinalItems {
		final = final[:p.cfg.Pipeline.FinalItems]
	}

	// Entity fallback from titles for items the classifier left empty
	for i := range final {
		if len(final[i].Entities) == 0 {
			final[i].Entities = entity.FromTitle(final[i].Title, p.cfg.Pipeline.MaxEntities)
		}
	}

	day := p.buildDay(date, final)
	if err := snapshot.Write(p.cfg.DataDir, day); err != nil {
		return nil, err
	}

	if p.cache != nil {
		if err := p.cache.Flush(); err != nil {
			logging.Warn("Feed cache flush failed", "error", err)
		}
	}

	logging.Info("Snapshot written", "date", date, "items", len(day.Items))
	return day, nil
}

// fetchAll retrieves every configured RSS source, bounded-concurrent,
// consulting the response cache first. Source order is preserved in the
// returned items regardless of completion order.
func (p *Pipeline) fetchAll(ctx context.Context) []feeds.Item {
	sources := p.list.Sources
	results := make([][]feeds.Item, len(sources))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.cfg.Pipeline.MaxConcurrent)

	for i, src := range sources {
		if src.Type != "rss" {
			continue
		}
		i, src := i, src
		g.Go(func() error {
			if p.cache != nil {
				if hit, ok := p.cache.Get(src.URL); ok {
					logging.Debug("Feed cache hit", "source", src.Name)
					results[i] = hit
					return nil
				}
			}

			fctx, cancel := context.WithTimeout(gctx, time.Duration(p.cfg.Pipeline.FetchTimeoutSec)*time.Second)
			defer cancel()

			items, err := p.fetcher.Fetch(fctx, fetch.Source{
				Name:  src.Name,
				URL:   src.URL,
				Limit: src.EntryLimit(p.cfg.Pipeline.DefaultLimit),
			})
			if p.archive != nil {
				if terr := p.archive.TouchSource(src.Name, len(items), err); terr != nil {
					logging.Warn("Source stat update failed", "source", src.Name, "error", terr)
				}
			}
			if err != nil {
				// A dead feed must not kill the run
				logging.Warn("Fetch failed", "source", src.Name, "error", err)
				return nil
			}
			results[i] = items
			if p.cache != nil {
				p.cache.Put(src.URL, items)
			}
			return nil
		})
	}
	g.Wait()

	var all []feeds.Item
	for _, r := range results {
		all = append(all, r...)
	}
	return all
}

func (p *Pipeline) sourceFor(name string) *config.FeedSource {
	for i := range p.list.Sources {
		if p.list.Sources[i].Name == name {
			return &p.list.Sources[i]
		}
	}
	return nil
}

// buildDay assembles the snapshot record with its summary metrics and
// heuristic briefing.
func (p *Pipeline) buildDay(date string, final []feeds.Item) *snapshot.Day {
	records := make([]snapshot.Record, 0, len(final))
	var scoreSum int

	primaryDist := map[string]int{}
	entityCounts := map[string]int{}

	for _, it := range final {
		scoreSum += it.Score
		primaryDist[it.Primary.String()]++

		var ents []string
		for _, e := range it.Entities {
			e2 := entity.Normalize(e)
			if entity.Bad(e2) {
				continue
			}
			ents = append(ents, e2)
			entityCounts[e2]++
		}

		records = append(records, snapshot.Record{
			Title:     strings.TrimSpace(it.Title),
			URL:       it.URL,
			Source:    it.SourceName,
			Primary:   it.Primary.String(),
			Tags:      it.Tags,
			Entities:  ents,
			Published: it.Published.Format(time.RFC3339),
			Score:     it.Score,
			Why:       it.Why,
		})
	}

	scoreAvg := 0.0
	if len(final) > 0 {
		scoreAvg = float64(scoreSum) / float64(len(final))
	}

	topEntities := topCounts(entityCounts, 5)

	return &snapshot.Day{
		Date:        date,
		ScoreAvg:    scoreAvg,
		PrimaryDist: primaryDist,
		TopEntities: topEntities,
		Briefing:    buildBriefing(len(final), primaryDist, topEntities),
		Items:       records,
	}
}

func topCounts(counts map[string]int, n int) []snapshot.EntityCount {
	out := make([]snapshot.EntityCount, 0, len(counts))
	for e, c := range counts {
		out = append(out, snapshot.EntityCount{Entity: e, Count: c})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Entity < out[j].Entity
	})
	if len(out) > n {
		out = out[:n]
	}
	return out
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen]
}
