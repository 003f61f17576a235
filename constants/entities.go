package constants

// Entity box sizes in world units
const (
	PlayerWidth  = 8.0
	PlayerHeight = 8.0
	AlienWidth   = 8.0
	AlienHeight  = 8.0
)

// Movement speeds in world units per frame
const (
	PlayerSpeed       = 3.0
	AlienSweepSpeed   = 0.5
	BulletSpeedPlayer = 2.0
	BulletSpeedAlien  = 1.0
)

// Bullet collision radii
const (
	BulletRadiusPlayer = 2.0
	BulletRadiusAlien  = 1.0
)

// Pool capacities. Allocation is round-robin; a saturated pool silently
// reuses the oldest slot, so alien spawns must stay under AlienPoolCap.
const (
	AlienPoolCap  = 128
	BulletPoolCap = 256
)

// StartLives is the lives count at session start and after a full reset
const StartLives = 3
