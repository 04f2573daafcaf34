package physics

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/gravity-shift/component"
)

// Flip inverts gravity and kicks the player toward the new wall
// Returns false without change while a previous flip is still in flight
func Flip(p *component.Player, impulse float64) bool {
	if p.Flipping {
		return false
	}
	p.Gravity = -p.Gravity
	p.VY = impulse * p.Gravity
	p.Flipping = true
	return true
}

// Integrate applies one tick of gravity and clamps to the active wall
// floor is the largest legal Y, ceiling the smallest; returns true on contact
func Integrate(p *component.Player, pull, floor, ceiling float64) bool {
	p.VY += p.Gravity * pull
	p.Y += p.VY

	switch {
	case p.Gravity > 0 && p.Y >= floor:
		p.Y = floor
	case p.Gravity < 0 && p.Y <= ceiling:
		p.Y = ceiling
	default:
		return false
	}

	p.VY = 0
	p.Flipping = false
	return true
}

// Spin advances the cosmetic rotation: spin while flipping, decay otherwise
func Spin(pr *component.Presentation, p component.Player, rate, damping float64) {
	if p.Flipping {
		pr.Rotation += rate * p.Gravity
		return
	}
	pr.Rotation *= damping
}

// FollowCape pulls each cape point toward its predecessor by follow of the gap
// The first point chases head; later points chase the already-moved point ahead
func FollowCape(pr *component.Presentation, head mgl64.Vec2, follow float64) {
	prev := head
	for i := range pr.Cape {
		seg := pr.Cape[i]
		seg = seg.Add(prev.Sub(seg).Mul(follow))
		pr.Cape[i] = seg
		prev = seg
	}
}

// Accelerate raises scroll speed by increment, capped at max when max > 0
func Accelerate(s *component.Session, increment, max float64) {
	s.Speed += increment
	if max > 0 && s.Speed > max {
		s.Speed = max
	}
}
