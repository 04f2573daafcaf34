package engine

import (
	"time"

	"github.com/lixenwraith/gravity-shift/component"
	"github.com/lixenwraith/gravity-shift/parameter"
	"github.com/lixenwraith/gravity-shift/physics"
	"github.com/lixenwraith/gravity-shift/system"
	"github.com/lixenwraith/gravity-shift/vmath"
)

// Engine owns the whole simulation state and advances it one tick at a time
// Not safe for concurrent use; Scheduler serializes access from hosts
type Engine struct {
	tuning   parameter.Tuning
	rng      vmath.Rand
	reporter Reporter

	spawner   *system.SpawnSystem
	collider  *system.CollisionSystem
	particles *system.ParticleSystem

	player    component.Player
	look      component.Presentation
	obstacles []component.Obstacle
	coins     []component.Coin
	sparks    []component.Particle
	session   component.Session

	width, height float64
	lastScore     int
}

// Option configures an Engine at construction
type Option func(*Engine)

// WithRand injects the random source used by spawning and particle bursts
func WithRand(rng vmath.Rand) Option {
	return func(e *Engine) { e.rng = rng }
}

// WithReporter installs host callbacks for score, coin, and game over notifications
func WithReporter(r Reporter) Option {
	return func(e *Engine) { e.reporter = r }
}

// New creates an engine with an empty zero-sized field; call Reset with real dimensions before playing
func New(tuning parameter.Tuning, opts ...Option) *Engine {
	e := &Engine{tuning: tuning}
	for _, opt := range opts {
		opt(e)
	}
	if e.rng == nil {
		e.rng = vmath.NewFastRand(uint64(time.Now().UnixNano()))
	}
	if e.reporter == nil {
		e.reporter = NopReporter{}
	}

	e.spawner = system.NewSpawnSystem(&e.tuning, e.rng)
	e.collider = system.NewCollisionSystem()
	e.particles = system.NewParticleSystem(&e.tuning, e.rng)

	e.Reset(0, 0)
	return e
}

// Tuning returns the constants this engine was built with
func (e *Engine) Tuning() parameter.Tuning {
	return e.tuning
}

// Reset starts a fresh session in a field of the given size
// An invalid field still clears the session but parks the player at y=0
func (e *Engine) Reset(width, height float64) {
	t := &e.tuning

	e.width, e.height = width, height
	e.session = component.Session{Speed: t.InitialSpeed}
	e.obstacles = e.obstacles[:0]
	e.coins = e.coins[:0]
	e.sparks = e.sparks[:0]
	e.lastScore = 0

	y := 0.0
	if validField(width, height) {
		y = height - t.PlayerSize
	}
	e.player = component.Player{
		X:       t.PlayerX,
		Y:       y,
		Gravity: component.GravityDown,
	}
	e.look = component.NewPresentation(t.CapeLength, e.player.Center(t.PlayerSize))

	e.reporter.Score(0)
	e.reporter.Coins(0)
}

// FlipGravity inverts gravity; returns false while mid-flip or after game over
func (e *Engine) FlipGravity() bool {
	if e.session.Over {
		return false
	}
	return physics.Flip(&e.player, e.tuning.FlipImpulse)
}

// Ended reports whether the current session has hit an obstacle
func (e *Engine) Ended() bool {
	return e.session.Over
}

// Score returns floor(distance/perPoint) plus bonus for the current session
func (e *Engine) Score() int {
	return e.session.Score(e.tuning.DistancePerPoint)
}

// Advance runs one tick against a field of the given size
// Order: movement and scroll, spawn, prune, collision, pickups, particles
func (e *Engine) Advance(width, height float64) TickResult {
	if e.session.Over || !validField(width, height) {
		return e.result(0)
	}
	e.width, e.height = width, height
	t := &e.tuning

	// Movement
	physics.Integrate(&e.player, t.GravityPull, height-t.PlayerSize, 0)
	physics.Spin(&e.look, e.player, t.RotationRate, t.RotationDamping)
	physics.FollowCape(&e.look, e.player.Center(t.PlayerSize), t.CapeFollow)

	physics.Accelerate(&e.session, t.SpeedIncrement, t.MaxSpeed)
	speed := e.session.Speed
	e.session.Distance += speed
	e.session.Ticks++
	physics.ScrollObstacles(e.obstacles, speed)
	physics.ScrollCoins(e.coins, speed)

	// Spawn and prune
	e.obstacles, e.coins, _ = e.spawner.Update(e.obstacles, e.coins, width, height)
	e.obstacles = system.CullObstacles(e.obstacles)
	e.coins = system.CullCoins(e.coins)

	// Collision ends the tick
	box := e.player.Box(t.PlayerSize)
	contact, coins := e.collider.Resolve(box, e.obstacles, e.coins, height)
	e.coins = coins
	if contact.Collided {
		e.session.Over = true
		e.session.FinalScore = e.Score()
		// Mirror the counters at the terminal tick before the game over report
		e.lastScore = e.session.FinalScore
		e.reporter.Score(e.session.FinalScore)
		e.reporter.Coins(e.session.Coins)
		e.reporter.GameOver(e.session.FinalScore)
		return e.result(0)
	}

	for _, at := range contact.Pickups {
		e.sparks = e.particles.SpawnBurst(e.sparks, at)
		e.session.Bonus += t.CoinBonus
		e.session.Coins++
	}
	e.sparks = e.particles.Update(e.sparks, speed)

	score := e.Score()
	if score != e.lastScore {
		e.lastScore = score
		e.reporter.Score(score)
	}
	if len(contact.Pickups) > 0 {
		e.reporter.Coins(e.session.Coins)
	}

	return e.result(len(contact.Pickups))
}

func (e *Engine) result(pickups int) TickResult {
	return TickResult{
		Score:          e.Score(),
		CoinsCollected: e.session.Coins,
		Ended:          e.session.Over,
		FinalScore:     e.session.FinalScore,
		Pickups:        pickups,
		Tick:           e.session.Ticks,
	}
}

func validField(width, height float64) bool {
	return vmath.Finite(width, height) && width > 0 && height > 0
}
