package system

import "github.com/lixenwraith/gravity-shift/component"

// CullObstacles drops obstacles whose right edge is at or past the left border, in place
func CullObstacles(obs []component.Obstacle) []component.Obstacle {
	kept := obs[:0]
	for _, o := range obs {
		if o.Right() > 0 {
			kept = append(kept, o)
		}
	}
	clear(obs[len(kept):])
	return kept
}

// CullCoins drops coins whose right edge is at or past the left border, in place
func CullCoins(coins []component.Coin) []component.Coin {
	kept := coins[:0]
	for _, c := range coins {
		if c.Right() > 0 {
			kept = append(kept, c)
		}
	}
	clear(coins[len(kept):])
	return kept
}

// CullParticles drops fully faded particles, in place
func CullParticles(ps []component.Particle) []component.Particle {
	kept := ps[:0]
	for _, p := range ps {
		if p.Alive() {
			kept = append(kept, p)
		}
	}
	clear(ps[len(kept):])
	return kept
}
