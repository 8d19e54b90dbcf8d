package world

// CollisionEngine tests the projectile against every other entity once per
// frame and applies the contact policy for the struck entity's role. Only
// the projectile is dynamic: the struck entity's side of a response is
// discarded so ground and targets never drift.
type CollisionEngine struct {
	world    *World
	response Response
}

// NewCollisionEngine binds an engine to w. A nil response selects
// DefaultRestitution.
func NewCollisionEngine(w *World, response Response) *CollisionEngine {
	if response == nil {
		response = DefaultRestitution
	}
	return &CollisionEngine{world: w, response: response}
}

// Resolve handles this frame's overlaps. It does nothing until the
// projectile has been fired. Overlaps are handled in world order and each
// one overwrites the projectile velocity, so with several simultaneous
// contacts the last one wins.
func (c *CollisionEngine) Resolve() {
	w := c.world
	if !w.fired {
		return
	}
	p := w.Projectile()
	if p == nil {
		return
	}

	// Entities removed below leave nil slots, so the bound and the indices
	// stay valid for the whole pass.
	n := len(w.slots)
	for i := 0; i < n; i++ {
		e := w.slots[i]
		if e == nil || e == p || e.Role == RoleLauncher || e.Role == RoleProjectile {
			continue
		}
		if !p.Overlaps(e) {
			continue
		}
		if e.Role == RoleGround {
			c.hitGround(p, e)
		} else {
			c.hitTarget(p, e)
		}
	}
}

func (c *CollisionEngine) hitGround(p, g *Entity) {
	moving := !p.Vel.IsZero() || !p.Acc.IsZero()
	p.Vel, _ = c.response.Respond(p, g)
	p.Spin = 0

	if p.Pos.Y <= FloorY {
		p.Pos.Y = FloorY
		p.Vel = Vec2{}
		p.Acc = Vec2{}
		p.Spin = 0
		// A resting projectile keeps touching the ground every frame.
		if moving {
			c.world.bus.Emit(Event{Type: EventRest, ID: g.ID, Pos: p.Pos, Score: p.Score})
		}
		return
	}
	c.world.bus.Emit(Event{Type: EventBounce, ID: g.ID, Pos: p.Pos, Score: p.Score})
}

func (c *CollisionEngine) hitTarget(p, t *Entity) {
	t.Hits++
	t.Pos = t.Pos.Add(Vec2{X: HitWobble, Y: HitWobble})
	t.Color.B = DamageTint

	if t.Role == RoleGoal || t.Hits > HitThreshold {
		c.world.capture(t)
	} else {
		c.world.bus.Emit(Event{Type: EventHit, ID: t.ID, Pos: t.Pos, Score: p.Score})
	}

	p.Vel, _ = c.response.Respond(p, t)
	p.Spin += HitSpin
}
