package world

import (
	"errors"
	"math"
	"strings"
	"testing"
)

const epsilon = 1e-9

func approxEqual(a, b, eps float64) bool {
	return math.Abs(a-b) < eps
}

func vecEqual(a, b Vec2) bool {
	return approxEqual(a.X, b.X, epsilon) && approxEqual(a.Y, b.Y, epsilon)
}

func mustCreate(t *testing.T, w *World, spec EntitySpec) *Entity {
	t.Helper()
	e, err := w.CreateEntity(spec)
	if err != nil {
		t.Fatalf("CreateEntity(%q): %v", spec.ID, err)
	}
	return e
}

func TestCreateEntityDefaults(t *testing.T) {
	w := NewWorld(nil)
	e := mustCreate(t, w, EntitySpec{ID: "pig", Radius: 0.17, Sides: 6, Role: RoleTarget, Value: 50})
	if e.Angle != 30 {
		t.Errorf("Angle = %f, want 30 (180/sides)", e.Angle)
	}
	if e.Value != 50 || e.Role != RoleTarget {
		t.Errorf("entity = %+v, want value 50 role target", e)
	}
	if w.Get("pig") != e {
		t.Error("Get(pig) did not return the created entity")
	}
	if w.Len() != 1 {
		t.Errorf("Len = %d, want 1", w.Len())
	}
}

func TestCreateEntityRejects(t *testing.T) {
	tests := []struct {
		name string
		spec EntitySpec
		want error
	}{
		{"empty id", EntitySpec{Radius: 1, Sides: 3}, ErrEmptyID},
		{"zero radius", EntitySpec{ID: "a", Radius: 0, Sides: 3}, ErrInvalidRadius},
		{"negative radius", EntitySpec{ID: "a", Radius: -1, Sides: 3}, ErrInvalidRadius},
		{"nan radius", EntitySpec{ID: "a", Radius: math.NaN(), Sides: 3}, ErrInvalidRadius},
		{"zero sides", EntitySpec{ID: "a", Radius: 1, Sides: 0}, ErrInvalidSides},
		{"duplicate", EntitySpec{ID: "taken", Radius: 1, Sides: 3}, ErrDuplicateID},
		{"second projectile", EntitySpec{ID: "p2", Radius: 1, Sides: 3, Role: RoleProjectile}, ErrSecondProjectile},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := NewWorld(nil)
			mustCreate(t, w, EntitySpec{ID: "taken", Radius: 1, Sides: 3})
			mustCreate(t, w, EntitySpec{ID: "p1", Radius: 1, Sides: 3, Role: RoleProjectile})
			before := w.Len()

			_, err := w.CreateEntity(tt.spec)
			if !errors.Is(err, tt.want) {
				t.Fatalf("err = %v, want %v", err, tt.want)
			}
			if w.Len() != before {
				t.Errorf("Len = %d after rejected create, want %d", w.Len(), before)
			}
		})
	}
}

func TestIntegrateUpdatesVelocityBeforePosition(t *testing.T) {
	w := NewWorld(nil)
	e := mustCreate(t, w, EntitySpec{ID: "a", Radius: 1, Sides: 3, Pos: Vec2{X: 1, Y: 2}})
	e.Vel = Vec2{X: 0.5, Y: -0.25}
	e.Acc = Vec2{X: 0.1, Y: -0.1}

	w.Integrate()

	wantVel := Vec2{X: 0.6, Y: -0.35}
	wantPos := Vec2{X: 1.6, Y: 1.65}
	if !vecEqual(e.Vel, wantVel) {
		t.Errorf("Vel = %v, want %v", e.Vel, wantVel)
	}
	if !vecEqual(e.Pos, wantPos) {
		t.Errorf("Pos = %v, want %v", e.Pos, wantPos)
	}
}

func TestIntegrateWallBounceAppliesToEveryRole(t *testing.T) {
	for _, role := range []Role{RoleGround, RoleLauncher, RoleProjectile, RoleTarget, RoleGoal} {
		t.Run(role.String(), func(t *testing.T) {
			w := NewWorld(nil)
			e := mustCreate(t, w, EntitySpec{ID: "e", Radius: 1, Sides: 3, Pos: Vec2{X: -3.95}, Role: role})
			e.Vel = Vec2{X: -0.1}

			w.Integrate()

			if !approxEqual(e.Pos.X, -4.05, epsilon) {
				t.Fatalf("Pos.X = %f, want -4.05", e.Pos.X)
			}
			if !approxEqual(e.Vel.X, 0.1, epsilon) {
				t.Errorf("Vel.X = %f, want 0.1 (reflected)", e.Vel.X)
			}
		})
	}
}

func TestRemoveIsIdempotent(t *testing.T) {
	w := NewWorld(nil)
	mustCreate(t, w, EntitySpec{ID: "a", Radius: 1, Sides: 3})
	mustCreate(t, w, EntitySpec{ID: "b", Radius: 1, Sides: 3})

	if !w.Remove("a") {
		t.Fatal("Remove(a) = false, want true")
	}
	if w.Remove("a") {
		t.Error("second Remove(a) = true, want false")
	}
	if w.Remove("missing") {
		t.Error("Remove(missing) = true, want false")
	}
	if w.Len() != 1 || w.Get("b") == nil {
		t.Errorf("world changed by absent removal: len=%d", w.Len())
	}
}

func TestRemoveThenIntegrateCompacts(t *testing.T) {
	w := NewWorld(nil)
	for _, id := range []string{"a", "b", "c", "d"} {
		mustCreate(t, w, EntitySpec{ID: id, Radius: 1, Sides: 3})
	}
	w.Remove("b")
	w.Remove("c")
	w.Integrate()

	if len(w.slots) != 2 {
		t.Fatalf("slots = %d after compaction, want 2", len(w.slots))
	}
	var order []string
	w.Each(func(e *Entity) { order = append(order, e.ID) })
	if len(order) != 2 || order[0] != "a" || order[1] != "d" {
		t.Errorf("order = %v, want [a d]", order)
	}
	if w.Get("d") == nil || w.Get("d").ID != "d" {
		t.Error("Get(d) broken after compaction")
	}

	mustCreate(t, w, EntitySpec{ID: "b", Radius: 1, Sides: 3})
	if w.Get("b") == nil {
		t.Error("re-created id not found")
	}
}

func newLaunchWorld(t *testing.T) (*World, *Entity, *Entity) {
	t.Helper()
	w := NewWorld(nil)
	m := mustCreate(t, w, EntitySpec{ID: "muzzle", Radius: 0.3, Sides: 4, Pos: Vec2{X: -2.8, Y: -1.0}, Role: RoleLauncher})
	p := mustCreate(t, w, EntitySpec{ID: "player", Radius: 0.2, Sides: 5, Pos: Vec2{X: -2.8, Y: -1.2}, Role: RoleProjectile})
	if err := w.SetMuzzle("muzzle"); err != nil {
		t.Fatal(err)
	}
	return w, m, p
}

func TestLaunchSetsVelocityAndAcceleration(t *testing.T) {
	w, _, p := newLaunchWorld(t)

	aim := Vec2{X: -3.5, Y: -2.0}
	if !w.Launch(aim) {
		t.Fatal("Launch = false, want true")
	}
	wantVel := Vec2{X: 0.07, Y: 0.1} // (muzzle - aim) * 0.1
	if !vecEqual(p.Vel, wantVel) {
		t.Errorf("Vel = %v, want %v", p.Vel, wantVel)
	}
	wantAcc := Vec2{X: -0.00005 * 0.07, Y: -0.0006}
	if !vecEqual(p.Acc, wantAcc) {
		t.Errorf("Acc = %v, want %v", p.Acc, wantAcc)
	}
	if !vecEqual(p.Pos, aim) {
		t.Errorf("Pos = %v, want aim %v", p.Pos, aim)
	}
	if !w.Fired() || w.Armed() {
		t.Errorf("fired=%v armed=%v, want true false", w.Fired(), w.Armed())
	}
}

func TestLaunchOnlyOnceUntilReset(t *testing.T) {
	w, _, p := newLaunchWorld(t)
	w.Launch(Vec2{X: -3.5, Y: -2.0})
	vel := p.Vel

	if w.Launch(Vec2{X: 0, Y: 0}) {
		t.Error("second Launch = true, want false")
	}
	if p.Vel != vel {
		t.Errorf("second Launch changed velocity to %v", p.Vel)
	}
	if p.Pos == (Vec2{}) {
		t.Error("second Launch moved a fired projectile")
	}

	w.Reset()
	if !w.Launch(Vec2{X: -3.0, Y: -1.5}) {
		t.Error("Launch after Reset = false, want true")
	}
}

func TestLaunchWithoutMuzzle(t *testing.T) {
	w := NewWorld(nil)
	mustCreate(t, w, EntitySpec{ID: "player", Radius: 0.2, Sides: 5, Role: RoleProjectile})
	if w.Launch(Vec2{X: 1, Y: 1}) {
		t.Error("Launch without muzzle = true, want false")
	}
	if w.Fired() {
		t.Error("Fired = true after failed launch")
	}
}

func TestSetMuzzleRequiresLauncher(t *testing.T) {
	w := NewWorld(nil)
	mustCreate(t, w, EntitySpec{ID: "pig", Radius: 0.2, Sides: 5, Role: RoleTarget})
	if err := w.SetMuzzle("pig"); err == nil {
		t.Error("SetMuzzle(pig) = nil, want error")
	}
	if err := w.SetMuzzle("missing"); err == nil {
		t.Error("SetMuzzle(missing) = nil, want error")
	}
}

func TestAimTracksOnlyWhileUnfired(t *testing.T) {
	w, _, p := newLaunchWorld(t)
	w.Aim(Vec2{X: 1, Y: 2})
	if p.Pos != (Vec2{X: 1, Y: 2}) {
		t.Fatalf("Pos = %v, want (1,2)", p.Pos)
	}
	if !p.Vel.IsZero() || !p.Acc.IsZero() {
		t.Errorf("unfired projectile has vel=%v acc=%v", p.Vel, p.Acc)
	}
	w.Launch(Vec2{X: 1, Y: 2})
	w.Aim(Vec2{X: -1, Y: -1})
	if p.Pos != (Vec2{X: 1, Y: 2}) {
		t.Errorf("Aim moved a fired projectile to %v", p.Pos)
	}
}

func TestResetRestoresSpawn(t *testing.T) {
	w, _, p := newLaunchWorld(t)
	spawn := p.Pos
	w.Launch(Vec2{X: -3.5, Y: -2.0})
	for i := 0; i < 10; i++ {
		w.Integrate()
		w.SpinProjectile(ProjectileSpin)
	}

	w.Reset()

	if !p.Vel.IsZero() || !p.Acc.IsZero() {
		t.Errorf("after Reset vel=%v acc=%v, want zero", p.Vel, p.Acc)
	}
	if p.Pos != spawn {
		t.Errorf("Pos = %v, want spawn %v", p.Pos, spawn)
	}
	if p.Spin != 0 {
		t.Errorf("Spin = %f, want 0", p.Spin)
	}
	if w.Fired() || !w.Armed() {
		t.Errorf("fired=%v armed=%v, want false true", w.Fired(), w.Armed())
	}
}

func TestRemovingProjectileClearsIt(t *testing.T) {
	w, _, _ := newLaunchWorld(t)
	w.Remove("player")
	if w.Projectile() != nil {
		t.Fatal("Projectile() not nil after removal")
	}
	mustCreate(t, w, EntitySpec{ID: "player2", Radius: 0.2, Sides: 5, Role: RoleProjectile})
	if w.Projectile() == nil || w.Projectile().ID != "player2" {
		t.Error("new projectile not registered")
	}
	w.Reset() // must not panic with the new projectile
}

func TestGuide(t *testing.T) {
	w, m, p := newLaunchWorld(t)
	w.Aim(Vec2{X: -2.8, Y: -3.0})

	g := w.Guide()
	if !g.Visible {
		t.Fatal("guide hidden before firing")
	}
	if !approxEqual(g.Power, 2.1, epsilon) {
		t.Errorf("Power = %f, want 2.1", g.Power)
	}
	if g.Barrel.A != m.Pos || g.Barrel.B != p.Pos {
		t.Errorf("Barrel = %v", g.Barrel)
	}
	if !approxEqual(g.Bar.B.X, PowerBarX+2.1, epsilon) || g.Bar.B.Y != PowerBarY {
		t.Errorf("Bar = %v", g.Bar)
	}

	w.Aim(Vec2{X: 3.9, Y: 3.9})
	if g := w.Guide(); g.Power != MaxPower {
		t.Errorf("Power = %f, want clamp %f", g.Power, MaxPower)
	}

	w.Launch(Vec2{X: 3.9, Y: 3.9})
	g = w.Guide()
	if g.Visible || g.Power != 0 {
		t.Errorf("after launch guide = %+v, want hidden with zero power", g)
	}
}

func TestDefaultSceneBuilds(t *testing.T) {
	w := NewWorld(nil)
	if err := DefaultScene.Build(w); err != nil {
		t.Fatalf("Build: %v", err)
	}
	if w.Len() != 26 {
		t.Errorf("Len = %d, want 26", w.Len())
	}
	if w.Targets() != 13 {
		t.Errorf("Targets = %d, want 13", w.Targets())
	}
	if w.Muzzle() == nil || w.Muzzle().ID != "cannon4" {
		t.Errorf("Muzzle = %v, want cannon4", w.Muzzle())
	}
	if w.Spawn() != (Vec2{X: -2.8, Y: -1.2}) {
		t.Errorf("Spawn = %v", w.Spawn())
	}

	if err := DefaultScene.Build(w); !errors.Is(err, ErrDuplicateID) {
		t.Errorf("second Build err = %v, want ErrDuplicateID", err)
	}
}

func TestEmptyIDErrorNamesSlot(t *testing.T) {
	w := NewWorld(nil)
	mustCreate(t, w, EntitySpec{ID: "a", Radius: 1, Sides: 3})

	_, err := w.CreateEntity(EntitySpec{Radius: 1, Sides: 3})
	if !errors.Is(err, ErrEmptyID) {
		t.Fatalf("err = %v, want ErrEmptyID", err)
	}
	if !strings.Contains(err.Error(), "entity #1") {
		t.Errorf("err = %q, want it to name entity #1", err)
	}
}
