package world

// Response computes post-contact velocities for a projectile a striking b.
type Response interface {
	Respond(a, b *Entity) (va, vb Vec2)
}

// Restitution reverses and damps a's velocity by a per-role factor and
// leaves b untouched. The whole vector is scaled, not just the normal
// component.
type Restitution struct {
	Ground float64
	Target float64
}

// DefaultRestitution is the response the game ships with.
var DefaultRestitution = Restitution{Ground: GroundRestitution, Target: TargetRestitution}

func (r Restitution) Respond(a, b *Entity) (Vec2, Vec2) {
	f := r.Target
	if b.Role == RoleGround {
		f = r.Ground
	}
	return a.Vel.Scale(-f), b.Vel
}

// Impulse is a closed-form two-body impulse exchange with restitution E.
// Radius stands in for both mass and moment of inertia, and the lever arms
// are the absolute centre positions. When the system matrix is singular the
// input velocities come back unchanged.
type Impulse struct {
	E float64
}

func (im Impulse) Respond(a, b *Entity) (Vec2, Vec2) {
	ra, rb := a.Pos, b.Pos
	vai, vbi := a.Vel, b.Vel
	ma, mb := a.Radius, b.Radius
	ia, ib := a.Radius, b.Radius

	k := 1/(ma*ma) + 2/(ma*mb) + 1/(mb*mb) -
		ra.X*ra.X/(ma*ia) - rb.X*rb.X/(ma*ib) - ra.Y*ra.Y/(ma*ia) -
		ra.Y*ra.Y/(mb*ia) - ra.X*ra.X/(mb*ia) - rb.X*rb.X/(mb*ib) -
		rb.Y*rb.Y/(ma*ib) - rb.Y*rb.Y/(mb*ib) +
		ra.Y*ra.Y*rb.X*rb.X/(ia*ib) + ra.X*ra.X*rb.Y*rb.Y/(ia*ib) -
		2*ra.X*ra.Y*rb.X*rb.Y/(ia*ib)
	if k == 0 || !finite(k) {
		return vai, vbi
	}

	c := (im.E + 1) / k
	dv := vai.Sub(vbi)
	cross := ra.X*ra.Y/ia + rb.X*rb.Y/ib

	j := Vec2{
		X: c*dv.X*(1/ma-ra.X*ra.X/ia+1/mb-rb.X*rb.X/ib) - c*dv.Y*cross,
		Y: -c*dv.X*cross + c*dv.Y*(1/ma-ra.Y*ra.Y/ia+1/mb-rb.Y*rb.Y/ib),
	}
	if !finite(j.X) || !finite(j.Y) {
		return vai, vbi
	}
	return vai.Sub(j.Scale(1 / ma)), vbi.Sub(j.Scale(1 / mb))
}

// ResponseByName maps a config value to a Response. Unknown names yield nil.
func ResponseByName(name string) Response {
	switch name {
	case "", "restitution":
		return DefaultRestitution
	case "impulse":
		return Impulse{E: ImpulseRestitution}
	}
	return nil
}
