package digest

import "testing"

func rowsFor(series map[string][]int, n int) []MetricRow {
	return entityRows(series, RecencyWeights(n, 3.0))
}

func names(rows []MetricRow) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r.Name
	}
	return out
}

func contains(rows []MetricRow, name string) bool {
	for _, r := range rows {
		if r.Name == name {
			return true
		}
	}
	return false
}

func TestNewEntrants(t *testing.T) {
	w := RecencyWeights(5, 3.0)
	rows := rowsFor(map[string][]int{
		"fresh":    {0, 0, 0, 1, 2}, // absent early, present late
		"veteran":  {2, 1, 0, 0, 1}, // present from day 0
		"boundary": {0, 1, 0, 0, 2}, // present on day N-k-1 = 1
	}, 5)

	got := NewEntrants(rows, w)
	if !contains(got, "fresh") {
		t.Errorf("fresh should be a new entrant, got %v", names(got))
	}
	if contains(got, "veteran") {
		t.Error("veteran must not be a new entrant")
	}
	if contains(got, "boundary") {
		t.Error("a key present on day N-k-1 must never be a new entrant")
	}
}

func TestNewEntrantsShortWindow(t *testing.T) {
	// N=2, k=min(3,2)=2: the early segment is empty, so any present key qualifies
	w := RecencyWeights(2, 3.0)
	rows := rowsFor(map[string][]int{"x": {1, 1}}, 2)

	got := NewEntrants(rows, w)
	if !contains(got, "x") {
		t.Errorf("with N<=k every present key is a new entrant, got %v", names(got))
	}
}

func TestNewEntrantsCap(t *testing.T) {
	series := map[string][]int{}
	for _, n := range []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j"} {
		series[n] = []int{0, 0, 0, 0, 1}
	}
	rows := rowsFor(series, 5)

	got := NewEntrants(rows, RecencyWeights(5, 3.0))
	if len(got) != 8 {
		t.Errorf("new entrants = %d, want capped at 8", len(got))
	}
}

func TestBreakouts(t *testing.T) {
	// Series lengths differ per case, so build each row with its own weights
	mk := func(name string, series []int) MetricRow {
		return newRow(name, series, RecencyWeights(len(series), 3.0))
	}
	rows := []MetricRow{
		mk("spike", []int{0, 0, 0, 0, 2}),       // quiet then 2
		mk("gradual", []int{1, 1, 1, 1, 2}),     // prior mean 1.0, too loud
		mk("edge", []int{0, 1, 2}),              // prior mean 0.5 exactly, still qualifies
		mk("overedge", []int{1, 1, 1, 0, 0, 2}), // prior mean 0.6, must not qualify
		mk("smalllast", []int{0, 0, 0, 0, 1}),   // last day only 1
	}

	got := Breakouts(rows)
	if !contains(got, "spike") {
		t.Errorf("spike should break out, got %v", names(got))
	}
	if !contains(got, "edge") {
		t.Error("prior mean exactly 0.5 still qualifies")
	}
	if contains(got, "gradual") {
		t.Error("gradual must not break out (noisy history)")
	}
	if contains(got, "overedge") {
		t.Error("prior mean 0.6 must not qualify")
	}
	if contains(got, "smalllast") {
		t.Error("last-day count below 2 must not qualify")
	}
}

func TestBreakoutRanking(t *testing.T) {
	rows := rowsFor(map[string][]int{
		"big":   {0, 0, 0, 0, 4},
		"small": {0, 0, 0, 0, 2},
	}, 5)

	got := Breakouts(rows)
	if len(got) != 2 || got[0].Name != "big" {
		t.Errorf("breakouts ranked by last-day count descending, got %v", names(got))
	}
}

func TestScenarioBothAnomalies(t *testing.T) {
	// Counts [0,0,0,0,2] over N=5 is both a breakout and a new entrant
	w := RecencyWeights(5, 3.0)
	rows := rowsFor(map[string][]int{"x": {0, 0, 0, 0, 2}}, 5)

	if got := Breakouts(rows); !contains(got, "x") {
		t.Error("expected breakout flag")
	}
	if got := NewEntrants(rows, w); !contains(got, "x") {
		t.Error("expected new entrant flag")
	}
}
