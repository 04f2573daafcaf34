package parameter

// Player body and gravity
const (
	// PlayerSize is the edge length of the player's square collision box
	PlayerSize = 30.0
	// PlayerX is the fixed horizontal position of the player's left edge
	PlayerX = 100.0
	// GravityPull is the per-tick velocity change along the gravity sign
	GravityPull = 0.9
	// FlipImpulse is the velocity magnitude applied toward the new gravity on a flip
	FlipImpulse = 3.0
)

// Presentation only, never read by collision
const (
	// RotationRate is the per-tick spin while mid-flip, multiplied by gravity sign
	RotationRate = 0.2
	// RotationDamping is the per-tick factor pulling rotation back to zero once landed
	RotationDamping = 0.9
	// CapeLength is the number of trailing cape points
	CapeLength = 10
	// CapeFollow is the fraction of the gap each cape point closes per tick
	CapeFollow = 0.5
)
