// Package digest turns a trailing window of daily snapshots into ranked
// trend, momentum and concentration signals.
//
// The engine is a pure function of the loaded window: it holds no cache
// and no cross-run state, and rerunning it on the same snapshots yields
// byte-identical results. Degenerate input (no days, zero totals) yields
// an explicit empty result, never an error.
package digest

import (
	"github.com/abelbrown/radar/internal/snapshot"
)

// Config holds the analytics parameters.
type Config struct {
	// MaxWindow is the most trailing days to analyze.
	MaxWindow int

	// HalfLife is the recency decay half-life in days.
	HalfLife float64

	// TopShareN is how many top keys the top-share numerator sums.
	TopShareN int

	// EvidenceLimit caps items per evidence cluster.
	EvidenceLimit int
}

// DefaultConfig returns the standard seven-day window.
func DefaultConfig() Config {
	return Config{
		MaxWindow:     7,
		HalfLife:      3.0,
		TopShareN:     3,
		EvidenceLimit: 6,
	}
}

// Digest is the full analytic result for one window.
type Digest struct {
	// Days are the window's dates, oldest first. N == len(Days).
	Days []string
	N    int

	HalfLife float64
	Weights  []float64

	// Ranked metric rows per key space.
	Entities   []MetricRow
	Categories []CategoryRow
	Sources    []MetricRow

	EntityConcentration   Concentration
	CategoryConcentration Concentration
	SourceConcentration   Concentration

	// Risers holds the top categories by rising share, best first.
	Risers []Rotation
	// Fallers holds the categories losing share, worst (most negative
	// rotation delta) first.
	Fallers []Rotation

	NewEntrants []MetricRow
	Breakouts   []MetricRow

	EntityClusters   []Cluster
	CategoryClusters []Cluster

	Implications []string
}

// Empty reports whether the window held no data.
func (d *Digest) Empty() bool { return d.N == 0 }

// FromDir loads the trailing window from dir and computes its digest.
func FromDir(dir string, cfg Config) *Digest {
	return Compute(snapshot.LoadWindow(dir, cfg.MaxWindow), cfg)
}

// Compute runs the full pipeline over an ordered window of days.
// days must be oldest first; the day index is the slice index.
func Compute(days []snapshot.Day, cfg Config) *Digest {
	n := len(days)
	d := &Digest{
		N:        n,
		HalfLife: cfg.HalfLife,
	}
	if n == 0 {
		return d
	}

	d.Days = make([]string, n)
	for i, day := range days {
		d.Days[i] = day.Date
	}

	d.Weights = RecencyWeights(n, cfg.HalfLife)

	series := BuildSeries(days)

	d.Entities = entityRows(series.Entities, d.Weights)
	d.Categories = categoryRows(series.Categories, series.ItemsPerDay, d.Weights)
	d.Sources = sourceRows(series.Sources, d.Weights)

	d.EntityConcentration = Concentrate(weightedTotals(d.Entities), cfg.TopShareN)
	d.CategoryConcentration = Concentrate(categoryWeightedTotals(d.Categories), cfg.TopShareN)
	d.SourceConcentration = Concentrate(weightedTotals(d.Sources), cfg.TopShareN)

	d.Risers, d.Fallers = Rotate(d.Categories, n)

	d.NewEntrants = NewEntrants(d.Entities, d.Weights)
	d.Breakouts = Breakouts(d.Entities)

	for _, r := range topRows(d.Entities, 5) {
		d.EntityClusters = append(d.EntityClusters, Cluster{
			Name:  r.Name,
			Items: PickForEntity(days, r.Name, cfg.EvidenceLimit),
		})
	}
	for _, r := range topCategoryRows(d.Categories, 3) {
		d.CategoryClusters = append(d.CategoryClusters, Cluster{
			Name:  r.Name,
			Items: PickForCategory(days, r.Name, cfg.EvidenceLimit),
		})
	}

	d.Implications = implications(d)
	return d
}

func weightedTotals(rows []MetricRow) map[string]float64 {
	out := make(map[string]float64, len(rows))
	for _, r := range rows {
		out[r.Name] = r.WeightedTotal
	}
	return out
}

func categoryWeightedTotals(rows []CategoryRow) map[string]float64 {
	out := make(map[string]float64, len(rows))
	for _, r := range rows {
		out[r.Name] = r.WeightedTotal
	}
	return out
}

func topRows(rows []MetricRow, n int) []MetricRow {
	if len(rows) < n {
		n = len(rows)
	}
	return rows[:n]
}

func topCategoryRows(rows []CategoryRow, n int) []CategoryRow {
	if len(rows) < n {
		n = len(rows)
	}
	return rows[:n]
}
