package utils

import "testing"

func TestStatsUpdate(t *testing.T) {
	s := NewStats()

	s.Update(0, 100)
	if s.AveragePopulation != 100 || s.Population != 100 {
		t.Fatalf("Expected first update to seed the average, got %+v", s)
	}

	s.Update(1, 0)
	if s.TotalGenerations != 1 || s.Population != 0 {
		t.Errorf("Unexpected stats: %+v", s)
	}
	if s.AveragePopulation < 89.999 || s.AveragePopulation > 90.001 {
		t.Errorf("Expected moving average 90, got %v", s.AveragePopulation)
	}
	if s.Runtime() < 0 {
		t.Error("Expected non-negative runtime")
	}
}
