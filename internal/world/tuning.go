package world

// World bounds match the fixed orthographic camera.
const (
	WorldMin = -4.0
	WorldMax = 4.0

	// WallX is the left wall; anything at or past it has its x-velocity reflected.
	WallX = -4.0
)

// Launch tuning.
const (
	LaunchScale = 0.1      // velocity per unit of muzzle-to-projectile offset
	Gravity     = -0.0006  // downward acceleration per frame
	DragFactor  = -0.00005 // horizontal acceleration per unit of launch x-velocity
)

// Collision response tuning.
const (
	GroundRestitution  = 0.9
	TargetRestitution  = 0.8
	ImpulseRestitution = 0.5

	FloorY         = -2.0  // projectile rests at or below this height on ground contact
	HitThreshold   = 25    // target hits tolerated before it breaks
	HitWobble      = 0.005 // per-hit nudge applied to a struck target
	DamageTint     = 0.2   // blue channel of a struck target
	HitSpin        = 5.0   // degrees of spin added per target hit
	ProjectileSpin = 5.0   // degrees of spin added every frame
)

// Aim guide.
const (
	MuzzleLipY = 0.1
	MaxPower   = 3.0
	PowerBarX  = -3.0
	PowerBarY  = 3.5
)
