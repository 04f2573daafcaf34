package system

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/gravity-shift/component"
	"github.com/lixenwraith/gravity-shift/physics"
	"github.com/lixenwraith/gravity-shift/vmath"
)

// Contact is the outcome of one resolution pass
type Contact struct {
	// Collided is set when any obstacle hit the player; pickups are skipped in that case
	Collided bool
	// Pickups holds the centers of collected coins, in field order
	Pickups []mgl64.Vec2
}

// CollisionSystem resolves the player box against hazards and collectibles
type CollisionSystem struct {
	pickups []mgl64.Vec2
}

func NewCollisionSystem() *CollisionSystem {
	return &CollisionSystem{}
}

// Resolve tests obstacles first and stops at the first hit
// Without a hit, every reachable coin is removed from coins and reported in Contact.Pickups
// The returned Pickups slice is reused across calls
func (s *CollisionSystem) Resolve(
	box vmath.Rect,
	obstacles []component.Obstacle,
	coins []component.Coin,
	fieldHeight float64,
) (Contact, []component.Coin) {
	for _, o := range obstacles {
		if physics.HitsObstacle(box, o, fieldHeight) {
			return Contact{Collided: true}, coins
		}
	}

	s.pickups = s.pickups[:0]
	kept := coins[:0]
	for _, c := range coins {
		if physics.ReachesCoin(box, c) {
			s.pickups = append(s.pickups, c.Center())
			continue
		}
		kept = append(kept, c)
	}
	clear(coins[len(kept):])

	return Contact{Pickups: s.pickups}, kept
}
