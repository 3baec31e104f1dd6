package game

import "time"

// Stats are the run statistics, updated continuously while PLAYING and frozen
// when the run reaches a terminal phase.
type Stats struct {
	Score    int           // Derived from distance
	Distance float64       // Distance traveled
	TopSpeed float64       // Highest display speed observed; monotonic max
	Elapsed  time.Duration // Run clock, from first PLAYING tick
	Cause    string        // Termination cause; empty on victory or while playing
}

// ObserveSpeed records a display speed sample, keeping the monotonic maximum.
func (s *Stats) ObserveSpeed(speed float64) {
	if speed > s.TopSpeed {
		s.TopSpeed = speed
	}
}
