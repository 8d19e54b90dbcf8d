package view

import (
	"github.com/go-gl/mathgl/mgl32"

	"cannonball/internal/world"
)

// Fixed 2D camera: an 8x8 orthographic box looking down -z from z=3.
const (
	Near = 0.1
	Far  = 500.0
)

var (
	Eye    = mgl32.Vec3{0, 0, 3}
	Target = mgl32.Vec3{0, 0, 0}
	Up     = mgl32.Vec3{0, 1, 0}
)

type Camera struct {
	Projection mgl32.Mat4
	View       mgl32.Mat4
}

func NewCamera() Camera {
	return Camera{
		Projection: mgl32.Ortho(world.WorldMin, world.WorldMax, world.WorldMin, world.WorldMax, Near, Far),
		View:       mgl32.LookAtV(Eye, Target, Up),
	}
}

// VP returns projection * view.
func (c Camera) VP() mgl32.Mat4 {
	return c.Projection.Mul4(c.View)
}

// Model places a mesh at pos rotated by rotDeg degrees about +z.
func Model(pos world.Vec2, rotDeg float64) mgl32.Mat4 {
	t := mgl32.Translate3D(float32(pos.X), float32(pos.Y), 0)
	r := mgl32.HomogRotate3DZ(mgl32.DegToRad(float32(rotDeg)))
	return t.Mul4(r)
}

// MVP returns the full transform for an entity.
func (c Camera) MVP(e *world.Entity) mgl32.Mat4 {
	return c.VP().Mul4(Model(e.Pos, e.Rotation()))
}

// CursorToWorld maps a cursor position in window pixels (origin top-left)
// to world units. A 600px window gives x/75-4, 4-y/75.
func CursorToWorld(cx, cy float64, winW, winH int) world.Vec2 {
	if winW <= 0 || winH <= 0 {
		return world.Vec2{}
	}
	span := world.WorldMax - world.WorldMin
	return world.Vec2{
		X: cx/float64(winW)*span + world.WorldMin,
		Y: world.WorldMax - cy/float64(winH)*span,
	}
}
