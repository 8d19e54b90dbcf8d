package world

import "fmt"

// World owns every entity in the scene plus the launch state of the single
// projectile. It is not safe for concurrent use; the frame loop owns it.
type World struct {
	// Dense entity slots in insertion order. Removal nils a slot so indices
	// held by an in-progress traversal stay valid; holes are compacted at the
	// start of the next Integrate.
	slots []*Entity
	index map[string]int
	holes int

	projectile string
	muzzle     string
	spawn      Vec2

	fired bool // projectile has been launched
	armed bool // a launch is allowed (cleared by Launch, restored by Reset)

	bus *EventBus
}

// NewWorld returns an empty world. bus may be nil.
func NewWorld(bus *EventBus) *World {
	return &World{
		index: make(map[string]int, 32),
		armed: true,
		bus:   bus,
	}
}

// CreateEntity validates spec and inserts a new entity.
func (w *World) CreateEntity(spec EntitySpec) (*Entity, error) {
	switch {
	case spec.ID == "":
		return nil, fmt.Errorf("entity #%d: %w", len(w.index), ErrEmptyID)
	case !(spec.Radius > 0):
		return nil, fmt.Errorf("entity %q: %w", spec.ID, ErrInvalidRadius)
	case spec.Sides <= 0:
		return nil, fmt.Errorf("entity %q: %w", spec.ID, ErrInvalidSides)
	}
	if _, ok := w.index[spec.ID]; ok {
		return nil, fmt.Errorf("entity %q: %w", spec.ID, ErrDuplicateID)
	}
	if spec.Role == RoleProjectile && w.projectile != "" {
		return nil, fmt.Errorf("entity %q: %w (%q)", spec.ID, ErrSecondProjectile, w.projectile)
	}

	angle := spec.Angle
	if angle == 0 {
		angle = 180.0 / float64(spec.Sides)
	}
	e := &Entity{
		ID:     spec.ID,
		Role:   spec.Role,
		Radius: spec.Radius,
		Sides:  spec.Sides,
		Pos:    spec.Pos,
		Angle:  angle,
		Color:  spec.Color,
		Value:  spec.Value,
	}
	w.index[e.ID] = len(w.slots)
	w.slots = append(w.slots, e)

	if e.Role == RoleProjectile {
		w.projectile = e.ID
		w.spawn = e.Pos
	}
	return e, nil
}

// Get returns the entity with the given id, or nil.
func (w *World) Get(id string) *Entity {
	i, ok := w.index[id]
	if !ok {
		return nil
	}
	return w.slots[i]
}

// Remove deletes an entity. Removing an absent id is a no-op.
func (w *World) Remove(id string) bool {
	i, ok := w.index[id]
	if !ok {
		return false
	}
	delete(w.index, id)
	w.slots[i] = nil
	w.holes++
	if id == w.projectile {
		w.projectile = ""
	}
	if id == w.muzzle {
		w.muzzle = ""
	}
	return true
}

// Len returns the number of live entities.
func (w *World) Len() int { return len(w.index) }

// Each calls fn for every live entity in insertion order.
func (w *World) Each(fn func(*Entity)) {
	for _, e := range w.slots {
		if e != nil {
			fn(e)
		}
	}
}

// Projectile returns the single projectile, or nil if it was removed.
func (w *World) Projectile() *Entity { return w.Get(w.projectile) }

// Muzzle returns the launcher piece the projectile is fired from.
func (w *World) Muzzle() *Entity { return w.Get(w.muzzle) }

// SetMuzzle selects the launcher piece used as the cannon tip.
func (w *World) SetMuzzle(id string) error {
	e := w.Get(id)
	if e == nil {
		return fmt.Errorf("muzzle %q: no such entity", id)
	}
	if e.Role != RoleLauncher {
		return fmt.Errorf("muzzle %q: role is %s, want %s", id, e.Role, RoleLauncher)
	}
	w.muzzle = id
	return nil
}

// Spawn returns the position the projectile returns to on Reset.
func (w *World) Spawn() Vec2 { return w.spawn }

// Fired reports whether the projectile is in flight or has landed since the
// last Reset.
func (w *World) Fired() bool { return w.fired }

// Armed reports whether the next Launch will take effect.
func (w *World) Armed() bool { return w.armed }

// Integrate advances every entity by one frame: velocity first, then
// position. Anything at or left of WallX has its x-velocity reflected,
// whatever its role.
func (w *World) Integrate() {
	w.compact()
	for _, e := range w.slots {
		e.Vel = e.Vel.Add(e.Acc)
		e.Pos = e.Pos.Add(e.Vel)
		if e.Pos.X <= WallX {
			e.Vel.X = -e.Vel.X
		}
	}
}

// Aim moves the unfired projectile to p.
func (w *World) Aim(p Vec2) {
	if w.fired {
		return
	}
	if pr := w.Projectile(); pr != nil {
		pr.Pos = p
	}
}

// Launch aims at aim and fires the projectile toward the muzzle. It is a
// no-op returning false once a shot has been fired and until Reset.
func (w *World) Launch(aim Vec2) bool {
	w.Aim(aim)
	if w.fired || !w.armed {
		return false
	}
	p, m := w.Projectile(), w.Muzzle()
	if p == nil || m == nil {
		return false
	}

	p.Vel = m.Pos.Sub(p.Pos).Scale(LaunchScale)
	p.Acc = Vec2{X: DragFactor * p.Vel.X, Y: Gravity}
	w.fired = true
	w.armed = false

	w.bus.Emit(Event{Type: EventLaunch, ID: p.ID, Pos: p.Pos, Score: p.Score})
	return true
}

// Reset returns the projectile to its spawn point at rest and re-arms it.
// Captured targets stay removed.
func (w *World) Reset() {
	w.fired = false
	w.armed = true
	p := w.Projectile()
	if p == nil {
		return
	}
	p.Vel = Vec2{}
	p.Acc = Vec2{}
	p.Spin = 0
	p.Pos = w.spawn
	w.bus.Emit(Event{Type: EventReset, ID: p.ID, Pos: p.Pos, Score: p.Score})
}

// SpinProjectile adds deg to the projectile's accumulated rotation.
func (w *World) SpinProjectile(deg float64) {
	if p := w.Projectile(); p != nil {
		p.Spin += deg
	}
}

// capture credits e's value to the projectile and removes e.
func (w *World) capture(e *Entity) {
	p := w.Projectile()
	if p != nil {
		p.Score += e.Value
	}
	w.Remove(e.ID)

	score := 0
	if p != nil {
		score = p.Score
	}
	w.bus.Emit(Event{Type: EventCapture, ID: e.ID, Pos: e.Pos, Score: score, Value: e.Value})
}

func (w *World) compact() {
	if w.holes == 0 {
		return
	}
	kept := w.slots[:0]
	for _, e := range w.slots {
		if e != nil {
			w.index[e.ID] = len(kept)
			kept = append(kept, e)
		}
	}
	for i := len(kept); i < len(w.slots); i++ {
		w.slots[i] = nil
	}
	w.slots = kept
	w.holes = 0
}
