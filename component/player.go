package component

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/gravity-shift/vmath"
)

// Gravity signs
const (
	GravityDown = 1.0
	GravityUp   = -1.0
)

// Player is the collision-relevant player state; X never changes within a session
type Player struct {
	X, Y     float64
	VY       float64
	Gravity  float64
	Flipping bool
}

// Box returns the player's collision box for an edge length of size
func (p Player) Box(size float64) vmath.Rect {
	return vmath.Rect{X: p.X, Y: p.Y, W: size, H: size}
}

// Center returns the middle of the collision box
func (p Player) Center(size float64) mgl64.Vec2 {
	return mgl64.Vec2{p.X + size/2, p.Y + size/2}
}

// Inverted reports whether gravity currently pulls toward the ceiling
func (p Player) Inverted() bool {
	return p.Gravity < 0
}
