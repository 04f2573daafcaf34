package physics

import (
	"github.com/lixenwraith/gravity-shift/component"
	"github.com/lixenwraith/gravity-shift/vmath"
)

// HitsObstacle tests the player box against one obstacle
// Blocks use the box overlap alone; spikes use the overlap as a cheap reject before the triangle test
func HitsObstacle(box vmath.Rect, o component.Obstacle, fieldHeight float64) bool {
	if !box.Overlaps(o.Bounds(fieldHeight)) {
		return false
	}
	if o.Kind == component.KindBlock {
		return true
	}
	corners := box.Corners()
	return o.Silhouette(fieldHeight).ContainsAny(corners[:])
}

// ReachesCoin reports a pickup: center distance strictly below half box width plus coin radius
func ReachesCoin(box vmath.Rect, c component.Coin) bool {
	return vmath.Distance(box.Center(), c.Center()) < box.W/2+c.Radius
}
