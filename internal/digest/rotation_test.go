package digest

import (
	"math"
	"testing"
)

func catRow(name string, series []int, itemsPerDay []int, w []float64) CategoryRow {
	rows := categoryRows(map[string][]int{name: series}, itemsPerDay, w)
	return rows[0]
}

func TestRotateFallingCategory(t *testing.T) {
	// items_per_day [5,5], counts [5,1]: share 1.0 -> 0.2, delta -0.8
	w := RecencyWeights(2, 3.0)
	rows := []CategoryRow{catRow("infra", []int{5, 1}, []int{5, 5}, w)}

	risers, fallers := Rotate(rows, 2)
	if len(fallers) != 1 {
		t.Fatalf("expected 1 faller, got %d", len(fallers))
	}
	f := fallers[0]
	if math.Abs(f.Early-1.0) > 1e-9 || math.Abs(f.Recent-0.2) > 1e-9 {
		t.Errorf("early/recent = %f/%f, want 1.0/0.2", f.Early, f.Recent)
	}
	if math.Abs(f.Delta-(-0.8)) > 1e-9 {
		t.Errorf("rotation delta = %f, want -0.8", f.Delta)
	}
	// With one category, riser and faller lists both contain it
	if len(risers) != 1 {
		t.Errorf("expected 1 riser, got %d", len(risers))
	}
}

func TestRotateOrdering(t *testing.T) {
	w := RecencyWeights(4, 3.0)
	itemsPerDay := []int{10, 10, 10, 10}
	rows := []CategoryRow{
		catRow("up", []int{1, 2, 5, 8}, itemsPerDay, w),
		catRow("down", []int{8, 5, 2, 1}, itemsPerDay, w),
		catRow("flat", []int{3, 3, 3, 3}, itemsPerDay, w),
	}

	risers, fallers := Rotate(rows, 4)
	if risers[0].Name != "up" {
		t.Errorf("top riser = %s, want up", risers[0].Name)
	}
	// Fallers are reported worst first
	if fallers[0].Name != "down" {
		t.Errorf("first faller = %s, want down (worst first)", fallers[0].Name)
	}
	if fallers[0].Delta >= fallers[1].Delta {
		t.Errorf("fallers not ascending by delta: %f then %f", fallers[0].Delta, fallers[1].Delta)
	}
}

func TestRotateCaps(t *testing.T) {
	w := RecencyWeights(4, 3.0)
	itemsPerDay := []int{10, 10, 10, 10}
	var rows []CategoryRow
	names := []string{"a", "b", "c", "d", "e", "f", "g"}
	for i, n := range names {
		rows = append(rows, catRow(n, []int{i, i, i, i + 1}, itemsPerDay, w))
	}

	risers, fallers := Rotate(rows, 4)
	if len(risers) != 5 {
		t.Errorf("risers = %d, want capped at 5", len(risers))
	}
	if len(fallers) != 5 {
		t.Errorf("fallers = %d, want capped at 5", len(fallers))
	}
}

func TestRotateShortWindow(t *testing.T) {
	w := RecencyWeights(1, 3.0)
	rows := []CategoryRow{catRow("misc", []int{3}, []int{3}, w)}

	risers, fallers := Rotate(rows, 1)
	if len(risers) != 0 || len(fallers) != 0 {
		t.Errorf("N=1 should yield no rotation, got %d risers %d fallers", len(risers), len(fallers))
	}
}
