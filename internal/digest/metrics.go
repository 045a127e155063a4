package digest

import "sort"

// MetricRow is the immutable per-key summary for one window.
type MetricRow struct {
	Name          string
	Series        []int
	Total         int
	WeightedTotal float64
	Slope         float64
	Streak        int
	Delta         float64
	Last          int
}

// CategoryRow extends MetricRow with the per-day share series a
// category holds of total daily volume.
type CategoryRow struct {
	MetricRow
	Shares     []float64
	ShareSlope float64
}

// Slope returns the ordinary least-squares slope of xs against its
// indices 0..n-1. Fewer than two points has no trend and returns 0.
func Slope(xs []float64) float64 {
	n := len(xs)
	if n < 2 {
		return 0.0
	}
	mx := float64(n-1) / 2.0
	var my float64
	for _, y := range xs {
		my += y
	}
	my /= float64(n)

	var num, den float64
	for i, y := range xs {
		dx := float64(i) - mx
		num += dx * (y - my)
		den += dx * dx
	}
	if den == 0 {
		den = 1.0
	}
	return num / den
}

// Streak returns the trailing run of consecutive nonzero days, counted
// backward from the last day. A zero last day means streak 0.
func Streak(series []int) int {
	s := 0
	for i := len(series) - 1; i >= 0; i-- {
		if series[i] <= 0 {
			break
		}
		s++
	}
	return s
}

// WeightedTotal sums counts times recency weights.
func WeightedTotal(series []int, weights []float64) float64 {
	var total float64
	for i, v := range series {
		if i >= len(weights) {
			break
		}
		total += float64(v) * weights[i]
	}
	return total
}

// Delta contrasts the weighted sum of the trailing k days with the
// weighted sum of the leading k days, k = min(3, n/2). Windows shorter
// than four days have no meaningful contrast and return 0.
func Delta(series []int, weights []float64) float64 {
	n := len(series)
	if n < 4 {
		return 0.0
	}
	k := 3
	if n/2 < k {
		k = n / 2
	}
	var early, recent float64
	for i := 0; i < k; i++ {
		early += float64(series[i]) * weights[i]
	}
	for i := n - k; i < n; i++ {
		recent += float64(series[i]) * weights[i]
	}
	return recent - early
}

// newRow computes the full metric row for one key.
func newRow(name string, series []int, weights []float64) MetricRow {
	total := 0
	for _, v := range series {
		total += v
	}
	last := 0
	if len(series) > 0 {
		last = series[len(series)-1]
	}
	fs := make([]float64, len(series))
	for i, v := range series {
		fs[i] = float64(v)
	}
	return MetricRow{
		Name:          name,
		Series:        series,
		Total:         total,
		WeightedTotal: WeightedTotal(series, weights),
		Slope:         Slope(fs),
		Streak:        Streak(series),
		Delta:         Delta(series, weights),
		Last:          last,
	}
}

// entityRows builds and ranks the entity key space.
// Order: (weighted_total, delta, streak, total) descending, then name.
func entityRows(series map[string][]int, weights []float64) []MetricRow {
	rows := make([]MetricRow, 0, len(series))
	for name, s := range series {
		rows = append(rows, newRow(name, s, weights))
	}
	sort.Slice(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if a.WeightedTotal != b.WeightedTotal {
			return a.WeightedTotal > b.WeightedTotal
		}
		if a.Delta != b.Delta {
			return a.Delta > b.Delta
		}
		if a.Streak != b.Streak {
			return a.Streak > b.Streak
		}
		if a.Total != b.Total {
			return a.Total > b.Total
		}
		return a.Name < b.Name
	})
	return rows
}

// categoryRows builds and ranks the category key space, attaching the
// per-day share series used by the rotation analyzer.
// Order: (share_slope, weighted_total, total, streak) descending, then name.
func categoryRows(series map[string][]int, itemsPerDay []int, weights []float64) []CategoryRow {
	rows := make([]CategoryRow, 0, len(series))
	for name, s := range series {
		row := CategoryRow{MetricRow: newRow(name, s, weights)}
		row.Shares = make([]float64, len(s))
		for i, v := range s {
			denom := itemsPerDay[i]
			if denom < 1 {
				denom = 1 // guard for zero-item days
			}
			row.Shares[i] = float64(v) / float64(denom)
		}
		row.ShareSlope = Slope(row.Shares)
		rows = append(rows, row)
	}
	sort.Slice(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if a.ShareSlope != b.ShareSlope {
			return a.ShareSlope > b.ShareSlope
		}
		if a.WeightedTotal != b.WeightedTotal {
			return a.WeightedTotal > b.WeightedTotal
		}
		if a.Total != b.Total {
			return a.Total > b.Total
		}
		if a.Streak != b.Streak {
			return a.Streak > b.Streak
		}
		return a.Name < b.Name
	})
	return rows
}

// sourceRows builds and ranks the source key space.
// Order: (weighted_total, total, streak) descending, then name.
func sourceRows(series map[string][]int, weights []float64) []MetricRow {
	rows := make([]MetricRow, 0, len(series))
	for name, s := range series {
		rows = append(rows, newRow(name, s, weights))
	}
	sort.Slice(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if a.WeightedTotal != b.WeightedTotal {
			return a.WeightedTotal > b.WeightedTotal
		}
		if a.Total != b.Total {
			return a.Total > b.Total
		}
		if a.Streak != b.Streak {
			return a.Streak > b.Streak
		}
		return a.Name < b.Name
	})
	return rows
}
