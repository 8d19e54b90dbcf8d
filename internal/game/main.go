//go:build !android

package game

import (
	"fmt"
	"log"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"cannonball/internal/config"
	"cannonball/internal/session"
	"cannonball/internal/view"
	"cannonball/internal/world"
)

// RunDesktop opens the window and runs the game until it is closed.
func RunDesktop() error {
	runtime.LockOSThread()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	window, err := initWindow(cfg.Window)
	if err != nil {
		return err
	}
	defer glfw.Terminate()
	defer window.Destroy()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	if cfg.Audio.Mute {
		log.Print("audio muted")
	} else if err := InitAudio(cfg.Audio.Volume); err != nil {
		log.Printf("audio init failed (continuing without sound): %v", err)
	}

	// GL state. Entities share z=0, so draw order decides overlap.
	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)
	gl.Enable(gl.MULTISAMPLE)

	sess, err := session.NewGameSession(world.DefaultScene, world.ResponseByName(cfg.Physics.Response))
	if err != nil {
		return err
	}
	flash := view.NewFlash()
	subscribeFeedback(sess.Bus, flash)
	log.Printf("round %d: %s, %d targets, %s response", sess.Round, sess.Scene.Name, sess.World.Targets(), cfg.Physics.Response)

	rend, err := NewRenderer()
	if err != nil {
		return fmt.Errorf("renderer: %w", err)
	}
	defer rend.Destroy()

	cam := view.NewCamera()
	input := NewInput()
	hud := newTitleHUD(window, cfg.Window.Title)

	last := glfw.GetTime()
	for !window.ShouldClose() {
		now := glfw.GetTime()
		dt := now - last
		last = now
		if dt > 0.1 {
			dt = 0.1
		}

		glfw.PollEvents()
		actions := input.Poll(window)
		if actions.Quit {
			window.SetShouldClose(true)
			continue
		}

		round := sess.Round
		prev, err := sess.Step(actions)
		if err != nil {
			return err
		}
		if sess.Round != round {
			log.Printf("round %d: %d targets", sess.Round, sess.World.Targets())
		}
		if sess.State != prev && sess.State == session.StateCleared {
			log.Printf("round %d cleared in %d shots, score %d", sess.Round, sess.Shots, sess.Score)
			PlaySound(SoundCleared)
			flash.Trigger()
		}
		hud.update(sess)

		fbW, fbH := window.GetFramebufferSize()
		if fbW <= 0 || fbH <= 0 {
			continue
		}

		flash.Update(dt)
		rend.BeginFrame(fbW, fbH, flash.ClearColor())
		rend.DrawWorld(cam, sess.World)
		rend.DrawLines(cam, view.HUDLines(sess.World.Guide()))
		rend.EndFrame()
		window.SwapBuffers()
	}
	return nil
}
