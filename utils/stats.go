package utils

import "time"

// Stats for the running simulation
type Stats struct {
	TotalGenerations  int
	Population        int
	AveragePopulation float64
	StartTime         time.Time
}

func NewStats() *Stats {
	return &Stats{StartTime: time.Now()}
}

func (s *Stats) Update(generation int, population int) {
	s.TotalGenerations = generation
	s.Population = population

	// Simple moving average for population
	if s.AveragePopulation == 0 {
		s.AveragePopulation = float64(population)
	} else {
		s.AveragePopulation = (s.AveragePopulation * 0.9) + (float64(population) * 0.1)
	}
}

// Runtime returns how long the simulation has been running
func (s *Stats) Runtime() time.Duration {
	return time.Since(s.StartTime)
}
