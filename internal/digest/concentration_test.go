package digest

import (
	"math"
	"testing"
)

func TestConcentrateTwoEqualKeys(t *testing.T) {
	c := Concentrate(map[string]float64{"A": 10, "B": 10}, 3)
	if math.Abs(c.HHI-0.5) > 1e-9 {
		t.Errorf("HHI = %f, want 0.5", c.HHI)
	}
	if math.Abs(c.TopShare-1.0) > 1e-9 {
		t.Errorf("TopShare = %f, want 1.0", c.TopShare)
	}
}

func TestConcentrateEqualKeysIsOneOverK(t *testing.T) {
	counts := map[string]float64{"a": 2, "b": 2, "c": 2, "d": 2}
	c := Concentrate(counts, 3)
	if math.Abs(c.HHI-0.25) > 1e-9 {
		t.Errorf("HHI for 4 equal keys = %f, want 0.25", c.HHI)
	}
	if math.Abs(c.TopShare-0.75) > 1e-9 {
		t.Errorf("TopShare(3) for 4 equal keys = %f, want 0.75", c.TopShare)
	}
}

func TestConcentrateSingleKey(t *testing.T) {
	c := Concentrate(map[string]float64{"only": 7.5}, 3)
	if c.HHI != 1.0 {
		t.Errorf("HHI with one key = %f, want 1.0", c.HHI)
	}
	if c.TopShare != 1.0 {
		t.Errorf("TopShare with one key = %f, want 1.0", c.TopShare)
	}
}

func TestConcentrateZeroTotal(t *testing.T) {
	for _, counts := range []map[string]float64{
		{},
		{"a": 0, "b": 0},
	} {
		c := Concentrate(counts, 3)
		if c.HHI != 0.0 || c.TopShare != 0.0 {
			t.Errorf("zero total: got HHI=%f TopShare=%f, want zeros", c.HHI, c.TopShare)
		}
	}
}

func TestConcentrateBounds(t *testing.T) {
	counts := map[string]float64{"a": 1, "b": 3, "c": 9, "d": 0.5}
	c := Concentrate(counts, 3)
	if c.HHI < 0.0 || c.HHI > 1.0 {
		t.Errorf("HHI out of bounds: %f", c.HHI)
	}
	if c.TopShare < 0.0 || c.TopShare > 1.0 {
		t.Errorf("TopShare out of bounds: %f", c.TopShare)
	}
	// 4 keys: HHI must be at least 1/4
	if c.HHI < 0.25 {
		t.Errorf("HHI = %f below 1/k floor", c.HHI)
	}
}
