package component

import "math"

// Session holds the per-session counters owned by the simulation loop
type Session struct {
	Distance float64
	Bonus    int
	Coins    int
	Speed    float64
	Ticks    uint64

	Over       bool
	FinalScore int
}

// Score is floor(distance / perPoint) plus coin bonus; perPoint <= 0 counts bonus only
func (s Session) Score(perPoint float64) int {
	if perPoint <= 0 {
		return s.Bonus
	}
	return int(math.Floor(s.Distance/perPoint)) + s.Bonus
}
