package digest

import "sort"

// Concentration measures how much weighted mass the top keys hold in
// one key space.
type Concentration struct {
	// HHI is the Herfindahl index: the sum of squared shares. It lies
	// in [1/k, 1] for k keys and hits 1 only when one key holds all
	// the mass.
	HHI float64

	// TopShare is the fraction of mass held by the N largest keys.
	TopShare float64
}

// Concentrate computes the concentration of a key -> weighted-total
// mapping. A zero or negative total yields zeros rather than dividing.
func Concentrate(counts map[string]float64, topN int) Concentration {
	var total float64
	for _, v := range counts {
		total += v
	}
	if total <= 0 {
		return Concentration{}
	}

	var hhi float64
	vals := make([]float64, 0, len(counts))
	for _, v := range counts {
		share := v / total
		hhi += share * share
		vals = append(vals, v)
	}

	sort.Sort(sort.Reverse(sort.Float64Slice(vals)))
	if topN > len(vals) {
		topN = len(vals)
	}
	var top float64
	for _, v := range vals[:topN] {
		top += v
	}

	return Concentration{HHI: hhi, TopShare: top / total}
}
