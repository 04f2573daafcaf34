package system

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/gravity-shift/component"
	"github.com/lixenwraith/gravity-shift/parameter"
	"github.com/lixenwraith/gravity-shift/vmath"
)

// ParticleSystem emits and ages pickup bursts
type ParticleSystem struct {
	tuning *parameter.Tuning
	rng    vmath.Rand
}

func NewParticleSystem(tuning *parameter.Tuning, rng vmath.Rand) *ParticleSystem {
	return &ParticleSystem{tuning: tuning, rng: rng}
}

// SpawnBurst appends BurstCount particles radiating from origin in random directions
func (s *ParticleSystem) SpawnBurst(ps []component.Particle, origin mgl64.Vec2) []component.Particle {
	t := s.tuning
	for i := 0; i < t.BurstCount; i++ {
		angle := s.rng.Float64() * 2 * math.Pi
		speed := vmath.Range(s.rng, t.ParticleMinSpeed, t.ParticleMaxSpeed)
		ps = append(ps, component.Particle{
			Pos:    origin,
			Vel:    mgl64.Vec2{math.Cos(angle), math.Sin(angle)}.Mul(speed),
			Radius: vmath.Range(s.rng, t.ParticleMinRadius, t.ParticleMaxRadius),
			Alpha:  1,
			Decay:  vmath.Range(s.rng, t.ParticleMinDecay, t.ParticleMaxDecay),
		})
	}
	return ps
}

// Update moves particles by their own velocity plus the world scroll, fades them, and culls the faded
func (s *ParticleSystem) Update(ps []component.Particle, scroll float64) []component.Particle {
	drift := mgl64.Vec2{-scroll, 0}
	for i := range ps {
		p := &ps[i]
		p.Pos = p.Pos.Add(p.Vel).Add(drift)
		p.Alpha -= p.Decay
	}
	return CullParticles(ps)
}
