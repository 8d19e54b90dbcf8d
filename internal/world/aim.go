package world

// Segment is a line from A to B in world units.
type Segment struct {
	A, B Vec2
}

// AimGuide is what the HUD shows while aiming: two lines from the muzzle to
// the projectile and a power bar whose length is the pull distance.
type AimGuide struct {
	Visible bool // false once fired
	Lip     Segment
	Barrel  Segment
	Power   float64 // in [0, MaxPower]
	Bar     Segment
}

// Guide computes the aim guide for the current frame.
func (w *World) Guide() AimGuide {
	g := AimGuide{}
	p, m := w.Projectile(), w.Muzzle()
	if !w.fired && p != nil && m != nil {
		lip := m.Pos.Add(Vec2{Y: MuzzleLipY})
		g.Visible = true
		g.Lip = Segment{A: lip, B: p.Pos}
		g.Barrel = Segment{A: m.Pos, B: p.Pos}
		g.Power = Clamp(lip.Dist(p.Pos), 0, MaxPower)
	}
	g.Bar = Segment{
		A: Vec2{X: PowerBarX, Y: PowerBarY},
		B: Vec2{X: PowerBarX + g.Power, Y: PowerBarY},
	}
	return g
}
