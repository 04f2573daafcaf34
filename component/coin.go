package component

import "github.com/go-gl/mathgl/mgl64"

// Coin is a collectible disc
type Coin struct {
	X, Y   float64
	Radius float64
}

func (c Coin) Center() mgl64.Vec2 { return mgl64.Vec2{c.X, c.Y} }
func (c Coin) Right() float64     { return c.X + c.Radius }
