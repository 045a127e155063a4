package digest

import "sort"

// anomalyCap limits both anomaly lists.
const anomalyCap = 8

// NewEntrants flags entity keys with zero presence before the trailing
// k = min(3, n) days and positive presence within them. Ranked by
// (weighted_total, last, delta) descending, name ascending, capped at 8.
func NewEntrants(rows []MetricRow, weights []float64) []MetricRow {
	var out []MetricRow
	for _, r := range rows {
		n := len(r.Series)
		if n == 0 {
			continue
		}
		k := 3
		if n < k {
			k = n
		}
		before, within := 0, 0
		for i := 0; i < n-k; i++ {
			before += r.Series[i]
		}
		for i := n - k; i < n; i++ {
			within += r.Series[i]
		}
		if before == 0 && within > 0 {
			out = append(out, r)
		}
	}

	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.WeightedTotal != b.WeightedTotal {
			return a.WeightedTotal > b.WeightedTotal
		}
		if a.Last != b.Last {
			return a.Last > b.Last
		}
		if a.Delta != b.Delta {
			return a.Delta > b.Delta
		}
		return a.Name < b.Name
	})

	if len(out) > anomalyCap {
		out = out[:anomalyCap]
	}
	return out
}

// Breakouts flags entity keys whose last day spiked to 2 or more
// against a quiet history: mean of all prior days at most 0.5. Ranked
// by (last, weighted_total, delta) descending, name ascending, capped
// at 8.
func Breakouts(rows []MetricRow) []MetricRow {
	var out []MetricRow
	for _, r := range rows {
		n := len(r.Series)
		if n == 0 {
			continue
		}
		last := r.Series[n-1]
		prior := 0
		for i := 0; i < n-1; i++ {
			prior += r.Series[i]
		}
		denom := n - 1
		if denom < 1 {
			denom = 1
		}
		priorAvg := float64(prior) / float64(denom)
		if last >= 2 && priorAvg <= 0.5 {
			out = append(out, r)
		}
	}

	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Last != b.Last {
			return a.Last > b.Last
		}
		if a.WeightedTotal != b.WeightedTotal {
			return a.WeightedTotal > b.WeightedTotal
		}
		if a.Delta != b.Delta {
			return a.Delta > b.Delta
		}
		return a.Name < b.Name
	})

	if len(out) > anomalyCap {
		out = out[:anomalyCap]
	}
	return out
}
