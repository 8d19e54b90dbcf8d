package view

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"cannonball/internal/world"
)

// HUD colours. The aim lines are deliberately over-bright; GL clamps them.
var (
	Background = world.Color{R: 0.3, G: 0.3, B: 0.3}
	AimFrom    = world.Color{R: 2, G: 3, B: 0}
	AimTo      = world.Color{R: 2.6, G: 3.5, B: 0}
	PowerLow   = world.Color{R: 0.1, G: 0.9, B: 0.4}
	PowerHigh  = world.Color{R: 0.6, G: 0.5, B: 0.4}
	FlashColor = world.Color{R: 0.9, G: 0.85, B: 0.6}
)

// HUDLines turns the aim guide into drawable lines: the power bar always,
// the two aim lines only while aiming.
func HUDLines(g world.AimGuide) []Line {
	out := make([]Line, 0, 3)
	if g.Visible {
		out = append(out,
			Line{Seg: g.Lip, From: AimFrom, To: AimTo},
			Line{Seg: g.Barrel, From: AimFrom, To: AimTo},
		)
	}
	out = append(out, Line{Seg: g.Bar, From: PowerLow, To: PowerColor(g.Power)})
	return out
}

// PowerColor eases the power bar tip from PowerLow to PowerHigh as the pull
// approaches MaxPower.
func PowerColor(power float64) world.Color {
	t := float32(power / world.MaxPower)
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	return world.Color{
		R: ease.InOutQuad(t, PowerLow.R, PowerHigh.R-PowerLow.R, 1),
		G: ease.InOutQuad(t, PowerLow.G, PowerHigh.G-PowerLow.G, 1),
		B: ease.InOutQuad(t, PowerLow.B, PowerHigh.B-PowerLow.B, 1),
	}
}

// FlashDuration is how long the background glows after a capture, in seconds.
const FlashDuration = 0.35

// Flash brightens the background after a capture and eases it back.
type Flash struct {
	tween  *gween.Tween
	amount float32
}

func NewFlash() *Flash {
	return &Flash{}
}

// Trigger restarts the flash at full strength.
func (f *Flash) Trigger() {
	f.tween = gween.New(1, 0, FlashDuration, ease.OutCubic)
	f.amount = 1
}

// Update advances the flash by dt seconds and returns its strength in [0,1].
func (f *Flash) Update(dt float64) float32 {
	if f.tween == nil {
		return 0
	}
	cur, done := f.tween.Update(float32(dt))
	f.amount = cur
	if done {
		f.tween = nil
		f.amount = 0
	}
	return f.amount
}

// ClearColor blends the background toward FlashColor by the current amount.
func (f *Flash) ClearColor() world.Color {
	a := f.amount
	return world.Color{
		R: Background.R + (FlashColor.R-Background.R)*a,
		G: Background.G + (FlashColor.G-Background.G)*a,
		B: Background.B + (FlashColor.B-Background.B)*a,
	}
}
