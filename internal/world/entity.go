package world

// Role selects the collision policy applied to an entity.
type Role int

const (
	RoleGround Role = iota
	RoleLauncher
	RoleProjectile
	RoleTarget
	RoleGoal
)

func (r Role) String() string {
	switch r {
	case RoleGround:
		return "ground"
	case RoleLauncher:
		return "launcher"
	case RoleProjectile:
		return "projectile"
	case RoleTarget:
		return "target"
	case RoleGoal:
		return "goal"
	}
	return "unknown"
}

// Entity is a circular game object. Radius doubles as mass and moment of
// inertia for the impulse response.
type Entity struct {
	ID     string
	Role   Role
	Radius float64
	Sides  int

	Pos Vec2
	Vel Vec2
	Acc Vec2

	// Angle is the resting orientation in degrees, Spin the accumulated
	// rotation on top of it.
	Angle float64
	Spin  float64

	Color Color

	Hits  int // overlap frames taken as a target
	Score int // points collected, only meaningful for the projectile
	Value int // points awarded when captured
}

// Rotation returns the total draw rotation in degrees.
func (e *Entity) Rotation() float64 { return e.Angle + e.Spin }

// Overlaps reports whether the circumcircles of e and o touch.
func (e *Entity) Overlaps(o *Entity) bool {
	return e.Pos.Dist(o.Pos) <= e.Radius+o.Radius
}

// EntitySpec describes an entity to create.
type EntitySpec struct {
	ID     string
	Radius float64
	Sides  int
	Pos    Vec2
	Color  Color
	Role   Role
	Value  int

	// Angle overrides the default 180/sides orientation when non-zero.
	Angle float64
}
