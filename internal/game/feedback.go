//go:build !android

package game

import (
	"fmt"
	"log"

	"github.com/go-gl/glfw/v3.3/glfw"

	"cannonball/internal/session"
	"cannonball/internal/view"
	"cannonball/internal/world"
)

// subscribeFeedback hooks sound, the capture flash and the score log to
// world events.
func subscribeFeedback(bus *world.EventBus, flash *view.Flash) {
	bus.Subscribe(world.EventLaunch, func(world.Event) { PlaySound(SoundLaunch) })
	bus.Subscribe(world.EventBounce, func(world.Event) { PlaySound(SoundBounce) })
	bus.Subscribe(world.EventRest, func(world.Event) { PlaySound(SoundRest) })
	bus.Subscribe(world.EventHit, func(world.Event) { PlaySound(SoundHit) })
	bus.Subscribe(world.EventReset, func(world.Event) { PlaySound(SoundReset) })
	bus.Subscribe(world.EventCapture, func(e world.Event) {
		log.Printf("score : %d", e.Score)
		PlaySound(SoundCapture)
		flash.Trigger()
	})
}

// titleHUD shows score and state in the window title. There is no text
// rendering, so this is the only textual HUD.
type titleHUD struct {
	window *glfw.Window
	base   string
	last   string
}

func newTitleHUD(window *glfw.Window, base string) *titleHUD {
	return &titleHUD{window: window, base: base}
}

func (h *titleHUD) update(s *session.GameSession) {
	title := fmt.Sprintf("%s | round %d | score %d | best %d | %s", h.base, s.Round, s.Score, s.Best, s.State)
	if title == h.last {
		return
	}
	h.last = title
	h.window.SetTitle(title)
}
