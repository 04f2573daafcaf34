package parameter

// Coin pickup burst
const (
	// BurstCount is the number of particles emitted per pickup
	BurstCount = 8
	// ParticleMinSpeed and ParticleMaxSpeed bound the initial speed in field units per tick
	ParticleMinSpeed = 1.0
	ParticleMaxSpeed = 4.0
	// ParticleMinRadius and ParticleMaxRadius bound the render radius
	ParticleMinRadius = 1.0
	ParticleMaxRadius = 4.0
	// ParticleMinDecay and ParticleMaxDecay bound the per-tick opacity loss
	ParticleMinDecay = 0.01
	ParticleMaxDecay = 0.03
)
