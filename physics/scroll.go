package physics

import "github.com/lixenwraith/gravity-shift/component"

// ScrollObstacles translates every obstacle left by dx
func ScrollObstacles(obs []component.Obstacle, dx float64) {
	for i := range obs {
		obs[i].X -= dx
	}
}

// ScrollCoins translates every coin left by dx
func ScrollCoins(coins []component.Coin, dx float64) {
	for i := range coins {
		coins[i].X -= dx
	}
}
