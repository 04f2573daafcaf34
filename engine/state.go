package engine

import "github.com/lixenwraith/gravity-shift/component"

// TickResult is the scalar outcome of one Advance call
type TickResult struct {
	Score          int
	CoinsCollected int
	Ended          bool
	// FinalScore is meaningful only when Ended is set
	FinalScore int
	// Pickups counts coins collected during this tick
	Pickups int
	Tick    uint64
}

// State is a deep copy of the engine taken between ticks
// Renderers and hosts may hold it indefinitely; it shares no memory with the engine
type State struct {
	Width, Height float64
	PlayerSize    float64

	Player       component.Player
	Presentation component.Presentation
	Obstacles    []component.Obstacle
	Coins        []component.Coin
	Particles    []component.Particle

	Score          int
	CoinsCollected int
	Speed          float64
	Distance       float64
	Tick           uint64
	Over           bool
	FinalScore     int
}

// Snapshot copies the current state
func (e *Engine) Snapshot() State {
	return State{
		Width:      e.width,
		Height:     e.height,
		PlayerSize: e.tuning.PlayerSize,

		Player:       e.player,
		Presentation: e.look.Clone(),
		Obstacles:    append([]component.Obstacle(nil), e.obstacles...),
		Coins:        append([]component.Coin(nil), e.coins...),
		Particles:    append([]component.Particle(nil), e.sparks...),

		Score:          e.Score(),
		CoinsCollected: e.session.Coins,
		Speed:          e.session.Speed,
		Distance:       e.session.Distance,
		Tick:           e.session.Ticks,
		Over:           e.session.Over,
		FinalScore:     e.session.FinalScore,
	}
}
