package parameter

// Scroll speed progression
const (
	// InitialSpeed is the leftward scroll per tick at session start
	InitialSpeed = 6.0
	// SpeedIncrement is added to scroll speed every tick
	SpeedIncrement = 0.0015
	// MaxSpeed caps scroll speed; zero leaves it unbounded
	MaxSpeed = 0.0
)

// Obstacle spawning
const (
	// ObstacleSize is the width and height of spikes and blocks
	ObstacleSize = 40.0
	// ObstacleMinGap is the lower bound of the randomized spawn threshold from the right edge
	ObstacleMinGap = 280.0
	// ObstacleMaxGap is the upper bound of the randomized spawn threshold from the right edge
	ObstacleMaxGap = 450.0
	// CeilingChance is the draw threshold above which an obstacle mounts on the ceiling
	CeilingChance = 0.5
	// SpikeChance is the draw threshold above which an obstacle is a spike (about 70% spikes)
	SpikeChance = 0.3
)

// Coins
const (
	// CoinRadius is the pickup and render radius
	CoinRadius = 12.0
	// CoinChance is the draw threshold above which a coin accompanies a new obstacle
	CoinChance = 0.5
	// CoinOffset is the horizontal distance between the obstacle's right edge and the coin
	CoinOffset = 100.0
	// CoinLaneInset is the coin's distance from the wall opposite the obstacle's face
	CoinLaneInset = 100.0
)

// Scoring
const (
	// DistancePerPoint converts distance traveled into base score
	DistancePerPoint = 100.0
	// CoinBonus is the score added per coin pickup
	CoinBonus = 10
)
