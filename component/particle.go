package component

import "github.com/go-gl/mathgl/mgl64"

// Particle is a decaying visual fragment; it never collides
type Particle struct {
	Pos    mgl64.Vec2
	Vel    mgl64.Vec2
	Radius float64
	Alpha  float64
	Decay  float64
}

// Alive reports whether the particle is still visible
func (p Particle) Alive() bool {
	return p.Alpha > 0
}
