package world

import "fmt"

// Scene is a literal level layout.
type Scene struct {
	Name     string
	Entities []EntitySpec
	Muzzle   string // launcher piece the projectile is fired toward
}

const groundSides = 200

// DefaultScene is the single hand-placed level: five ground mounds, a
// stacked cannon, two trees, three pigs and three floating goals.
var DefaultScene = Scene{
	Name:   "meadow",
	Muzzle: "cannon4",
	Entities: []EntitySpec{
		{ID: "ground1", Radius: 1.2, Sides: groundSides, Pos: Vec2{X: -3.2, Y: -3.2}, Color: Palette.Ground, Role: RoleGround},
		{ID: "ground2", Radius: 1.2, Sides: groundSides, Pos: Vec2{X: -1.6, Y: -3.2}, Color: Palette.Ground, Role: RoleGround},
		{ID: "ground3", Radius: 1.2, Sides: groundSides, Pos: Vec2{X: 0, Y: -3.2}, Color: Palette.Ground, Role: RoleGround},
		{ID: "ground4", Radius: 1.2, Sides: groundSides, Pos: Vec2{X: 1.6, Y: -3.2}, Color: Palette.Ground, Role: RoleGround},
		{ID: "ground5", Radius: 1.2, Sides: groundSides, Pos: Vec2{X: 3.2, Y: -3.2}, Color: Palette.Ground, Role: RoleGround},

		// Cannon barrel, bottom to top. cannon4 is the muzzle.
		{ID: "cannon0", Radius: 0.3, Sides: 4, Pos: Vec2{X: -2.8, Y: -2.2}, Color: Palette.Cannon, Role: RoleLauncher, Angle: 45},
		{ID: "cannon1", Radius: 0.3, Sides: 4, Pos: Vec2{X: -2.8, Y: -2.0}, Color: Palette.Cannon, Role: RoleLauncher, Angle: 45},
		{ID: "cannon2", Radius: 0.3, Sides: 4, Pos: Vec2{X: -2.8, Y: -1.8}, Color: Palette.Cannon, Role: RoleLauncher, Angle: 45},
		{ID: "cannon3", Radius: 0.3, Sides: 4, Pos: Vec2{X: -2.8, Y: -1.6}, Color: Palette.Cannon, Role: RoleLauncher, Angle: 45},
		{ID: "cannon5", Radius: 0.3, Sides: 4, Pos: Vec2{X: -2.8, Y: -1.4}, Color: Palette.Cannon, Role: RoleLauncher, Angle: 45},
		{ID: "cannon6", Radius: 0.3, Sides: 4, Pos: Vec2{X: -2.8, Y: -1.2}, Color: Palette.Cannon, Role: RoleLauncher, Angle: 45},
		{ID: "cannon4", Radius: 0.3, Sides: 4, Pos: Vec2{X: -2.8, Y: -1.0}, Color: Palette.Cannon, Role: RoleLauncher, Angle: 45},

		{ID: "tree14", Radius: 0.1, Sides: 4, Pos: Vec2{X: 3.2, Y: -2.0}, Color: Palette.Trunk, Role: RoleTarget, Value: 10, Angle: 45},
		{ID: "tree11", Radius: 0.3, Sides: 3, Pos: Vec2{X: 3.2, Y: -1.8}, Color: Palette.LeafDark, Role: RoleTarget, Value: 10, Angle: 90},
		{ID: "tree12", Radius: 0.3, Sides: 3, Pos: Vec2{X: 3.2, Y: -1.6}, Color: Palette.LeafMid, Role: RoleTarget, Value: 10, Angle: 90},
		{ID: "tree13", Radius: 0.3, Sides: 3, Pos: Vec2{X: 3.2, Y: -1.4}, Color: Palette.LeafLite, Role: RoleTarget, Value: 10, Angle: 90},
		{ID: "tree24", Radius: 0.1, Sides: 4, Pos: Vec2{X: 1.6, Y: -2.0}, Color: Palette.Trunk, Role: RoleTarget, Value: 10, Angle: 45},
		{ID: "tree21", Radius: 0.3, Sides: 3, Pos: Vec2{X: 1.6, Y: -1.8}, Color: Palette.LeafOld, Role: RoleTarget, Value: 10, Angle: 90},
		{ID: "tree22", Radius: 0.2, Sides: 3, Pos: Vec2{X: 1.6, Y: -1.6}, Color: Palette.LeafNew, Role: RoleTarget, Value: 10, Angle: 90},

		// Spawns on top of cannon3.
		{ID: "player", Radius: 0.2, Sides: 5, Pos: Vec2{X: -2.8, Y: -1.2}, Color: Palette.Player, Role: RoleProjectile},

		{ID: "pig1", Radius: 0.17, Sides: 6, Pos: Vec2{X: 0.745, Y: -2.1}, Color: Palette.PigGreen, Role: RoleTarget, Value: 50},
		{ID: "pig2", Radius: 0.17, Sides: 7, Pos: Vec2{X: 2.9, Y: -1.9}, Color: Palette.PigRed, Role: RoleTarget, Value: 50},
		{ID: "pig3", Radius: 0.17, Sides: 7, Pos: Vec2{X: 3.2, Y: -1.0}, Color: Palette.PigRed, Role: RoleTarget, Value: 50},

		{ID: "goal1", Radius: 0.18, Sides: groundSides, Pos: Vec2{X: 1.5, Y: 0}, Color: Palette.Goal, Role: RoleGoal, Value: 100},
		{ID: "goal2", Radius: 0.2, Sides: groundSides, Pos: Vec2{X: 0, Y: 0.8}, Color: Palette.Goal, Role: RoleGoal, Value: 100},
		{ID: "goal3", Radius: 0.18, Sides: groundSides, Pos: Vec2{X: 0.5, Y: -1.0}, Color: Palette.Goal, Role: RoleGoal, Value: 100},
	},
}

// Build populates w with the scene. Any rejected entity aborts the build.
func (s Scene) Build(w *World) error {
	for _, spec := range s.Entities {
		if _, err := w.CreateEntity(spec); err != nil {
			return fmt.Errorf("scene %s: %w", s.Name, err)
		}
	}
	if s.Muzzle != "" {
		if err := w.SetMuzzle(s.Muzzle); err != nil {
			return fmt.Errorf("scene %s: %w", s.Name, err)
		}
	}
	return nil
}

// Targets returns the number of live targets and goals.
func (w *World) Targets() int {
	n := 0
	w.Each(func(e *Entity) {
		if e.Role == RoleTarget || e.Role == RoleGoal {
			n++
		}
	})
	return n
}
