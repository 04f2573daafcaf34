package component

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/gravity-shift/vmath"
)

// ObstacleKind selects the collision shape
type ObstacleKind uint8

const (
	KindSpike ObstacleKind = iota
	KindBlock
)

func (k ObstacleKind) String() string {
	switch k {
	case KindSpike:
		return "spike"
	case KindBlock:
		return "block"
	}
	return "unknown"
}

// Mount is the wall an obstacle is attached to
type Mount uint8

const (
	MountFloor Mount = iota
	MountCeiling
)

func (m Mount) String() string {
	if m == MountCeiling {
		return "ceiling"
	}
	return "floor"
}

// Obstacle is a hazard scrolling toward the player
// Y is 0 for ceiling mounts and fieldHeight-H for floor mounts
type Obstacle struct {
	X, Y  float64
	W, H  float64
	Kind  ObstacleKind
	Mount Mount
}

func (o Obstacle) Right() float64 { return o.X + o.W }

// Bounds returns the axis-aligned extent of the obstacle in a field of the given height
func (o Obstacle) Bounds(fieldHeight float64) vmath.Rect {
	y := o.Y
	switch {
	case o.Mount == MountCeiling:
		y = 0
	case o.Kind == KindSpike:
		y = fieldHeight - o.H
	}
	return vmath.Rect{X: o.X, Y: y, W: o.W, H: o.H}
}

// Silhouette returns the spike triangle with its base on the mounting wall
func (o Obstacle) Silhouette(fieldHeight float64) vmath.Triangle {
	if o.Mount == MountCeiling {
		return vmath.Triangle{
			A: mgl64.Vec2{o.X, 0},
			B: mgl64.Vec2{o.X + o.W, 0},
			C: mgl64.Vec2{o.X + o.W/2, o.H},
		}
	}
	return vmath.Triangle{
		A: mgl64.Vec2{o.X, fieldHeight},
		B: mgl64.Vec2{o.X + o.W, fieldHeight},
		C: mgl64.Vec2{o.X + o.W/2, fieldHeight - o.H},
	}
}
