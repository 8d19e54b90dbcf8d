//go:build !android

package game

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"cannonball/internal/session"
	"cannonball/internal/view"
)

// Input tracks previous key and button state so edges can be detected by
// polling once per frame.
type Input struct {
	prevMouse map[glfw.MouseButton]bool
	prevKeys  map[glfw.Key]bool
}

func NewInput() *Input {
	return &Input{
		prevMouse: make(map[glfw.MouseButton]bool),
		prevKeys:  make(map[glfw.Key]bool),
	}
}

func (in *Input) key(window *glfw.Window, key glfw.Key) (pressed, released bool) {
	down := window.GetKey(key) == glfw.Press
	was := in.prevKeys[key]
	in.prevKeys[key] = down
	return down && !was, !down && was
}

func (in *Input) button(window *glfw.Window, btn glfw.MouseButton) (pressed, released bool) {
	down := window.GetMouseButton(btn) == glfw.Press
	was := in.prevMouse[btn]
	in.prevMouse[btn] = down
	return down && !was, !down && was
}

// Poll samples this frame's actions. Shots fire when the left button or S
// is released; R resets the shot and N starts a new round, also on release.
func (in *Input) Poll(window *glfw.Window) session.Actions {
	var a session.Actions

	cx, cy := window.GetCursorPos()
	winW, winH := window.GetSize()
	a.Aim = view.CursorToWorld(cx, cy, winW, winH)

	_, click := in.button(window, glfw.MouseButtonLeft)
	_, s := in.key(window, glfw.KeyS)
	a.Fire = click || s

	_, a.Reset = in.key(window, glfw.KeyR)
	_, a.Rebuild = in.key(window, glfw.KeyN)

	esc, _ := in.key(window, glfw.KeyEscape)
	q, _ := in.key(window, glfw.KeyQ)
	a.Quit = esc || q
	return a
}
