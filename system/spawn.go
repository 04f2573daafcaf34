package system

import (
	"github.com/lixenwraith/gravity-shift/component"
	"github.com/lixenwraith/gravity-shift/parameter"
	"github.com/lixenwraith/gravity-shift/vmath"
)

// SpawnSystem keeps the field stocked with obstacles and coins
// Spacing is controlled only through the distance of the newest obstacle from the right edge
type SpawnSystem struct {
	tuning *parameter.Tuning
	rng    vmath.Rand
}

// NewSpawnSystem creates a spawner drawing every decision from rng
func NewSpawnSystem(tuning *parameter.Tuning, rng vmath.Rand) *SpawnSystem {
	return &SpawnSystem{tuning: tuning, rng: rng}
}

// Due reports whether a new obstacle should enter the field this tick
// A fresh gap is drawn per evaluation, only when there is a newest obstacle to measure
func (s *SpawnSystem) Due(obstacles []component.Obstacle, width float64) bool {
	if len(obstacles) == 0 {
		return true
	}
	last := obstacles[len(obstacles)-1]
	gap := vmath.Range(s.rng, s.tuning.MinGap, s.tuning.MaxGap)
	return last.X < width-gap
}

// Update appends at most one obstacle and at most one coin, returning true when it spawned
func (s *SpawnSystem) Update(
	obstacles []component.Obstacle,
	coins []component.Coin,
	width, height float64,
) ([]component.Obstacle, []component.Coin, bool) {
	if !s.Due(obstacles, width) {
		return obstacles, coins, false
	}

	size := s.tuning.ObstacleSize
	onCeiling := s.rng.Float64() > s.tuning.CeilingChance

	kind := component.KindBlock
	if s.rng.Float64() > s.tuning.SpikeChance {
		kind = component.KindSpike
	}

	o := component.Obstacle{
		X:     width,
		Y:     height - size,
		W:     size,
		H:     size,
		Kind:  kind,
		Mount: component.MountFloor,
	}
	if onCeiling {
		o.Y = 0
		o.Mount = component.MountCeiling
	}
	obstacles = append(obstacles, o)

	if s.rng.Float64() > s.tuning.CoinChance {
		// Coin rides the lane on the same wall as the obstacle
		y := height - s.tuning.CoinLaneInset
		if onCeiling {
			y = s.tuning.CoinLaneInset
		}
		coins = append(coins, component.Coin{
			X:      width + size + s.tuning.CoinOffset,
			Y:      y,
			Radius: s.tuning.CoinRadius,
		})
	}

	return obstacles, coins, true
}
