package parameter

// Tuning is the runtime-adjustable subset of the simulation constants
// Zero values are not meaningful; start from DefaultTuning
type Tuning struct {
	PlayerSize  float64 `toml:"player_size"`
	PlayerX     float64 `toml:"player_x"`
	GravityPull float64 `toml:"gravity_pull"`
	FlipImpulse float64 `toml:"flip_impulse"`

	RotationRate    float64 `toml:"rotation_rate"`
	RotationDamping float64 `toml:"rotation_damping"`
	CapeLength      int     `toml:"cape_length"`
	CapeFollow      float64 `toml:"cape_follow"`

	InitialSpeed   float64 `toml:"initial_speed"`
	SpeedIncrement float64 `toml:"speed_increment"`
	MaxSpeed       float64 `toml:"max_speed"`

	ObstacleSize  float64 `toml:"obstacle_size"`
	MinGap        float64 `toml:"min_gap"`
	MaxGap        float64 `toml:"max_gap"`
	CeilingChance float64 `toml:"ceiling_chance"`
	SpikeChance   float64 `toml:"spike_chance"`

	CoinRadius    float64 `toml:"coin_radius"`
	CoinChance    float64 `toml:"coin_chance"`
	CoinOffset    float64 `toml:"coin_offset"`
	CoinLaneInset float64 `toml:"coin_lane_inset"`

	DistancePerPoint float64 `toml:"distance_per_point"`
	CoinBonus        int     `toml:"coin_bonus"`

	BurstCount        int     `toml:"burst_count"`
	ParticleMinSpeed  float64 `toml:"particle_min_speed"`
	ParticleMaxSpeed  float64 `toml:"particle_max_speed"`
	ParticleMinRadius float64 `toml:"particle_min_radius"`
	ParticleMaxRadius float64 `toml:"particle_max_radius"`
	ParticleMinDecay  float64 `toml:"particle_min_decay"`
	ParticleMaxDecay  float64 `toml:"particle_max_decay"`
}

// DefaultTuning returns the constants of this package as a Tuning
func DefaultTuning() Tuning {
	return Tuning{
		PlayerSize:  PlayerSize,
		PlayerX:     PlayerX,
		GravityPull: GravityPull,
		FlipImpulse: FlipImpulse,

		RotationRate:    RotationRate,
		RotationDamping: RotationDamping,
		CapeLength:      CapeLength,
		CapeFollow:      CapeFollow,

		InitialSpeed:   InitialSpeed,
		SpeedIncrement: SpeedIncrement,
		MaxSpeed:       MaxSpeed,

		ObstacleSize:  ObstacleSize,
		MinGap:        ObstacleMinGap,
		MaxGap:        ObstacleMaxGap,
		CeilingChance: CeilingChance,
		SpikeChance:   SpikeChance,

		CoinRadius:    CoinRadius,
		CoinChance:    CoinChance,
		CoinOffset:    CoinOffset,
		CoinLaneInset: CoinLaneInset,

		DistancePerPoint: DistancePerPoint,
		CoinBonus:        CoinBonus,

		BurstCount:        BurstCount,
		ParticleMinSpeed:  ParticleMinSpeed,
		ParticleMaxSpeed:  ParticleMaxSpeed,
		ParticleMinRadius: ParticleMinRadius,
		ParticleMaxRadius: ParticleMaxRadius,
		ParticleMinDecay:  ParticleMinDecay,
		ParticleMaxDecay:  ParticleMaxDecay,
	}
}
