package view

import (
	"math"

	"cannonball/internal/world"
)

// MeshKey identifies a cached polygon mesh. Struck targets change colour,
// which produces a new key.
type MeshKey struct {
	Radius float64
	Sides  int
	Color  world.Color
}

func KeyOf(e *world.Entity) MeshKey {
	return MeshKey{Radius: e.Radius, Sides: e.Sides, Color: e.Color}
}

// PolygonVertices returns a triangle fan around the origin unrolled into
// GL_TRIANGLES: sides triangles, xyz per vertex.
func PolygonVertices(radius float64, sides int) []float32 {
	if sides <= 0 {
		return nil
	}
	buf := make([]float32, 0, sides*9)
	step := 2 * math.Pi / float64(sides)
	for i := 1; i <= sides; i++ {
		a0 := step * float64(i)
		a1 := step * float64(i+1)
		buf = append(buf,
			0, 0, 0,
			float32(radius*math.Cos(a0)), float32(radius*math.Sin(a0)), 0,
			float32(radius*math.Cos(a1)), float32(radius*math.Sin(a1)), 0,
		)
	}
	return buf
}

// SolidColors returns n vertices' worth of the same rgb colour.
func SolidColors(n int, c world.Color) []float32 {
	buf := make([]float32, 0, n*3)
	for i := 0; i < n; i++ {
		buf = append(buf, c.R, c.G, c.B)
	}
	return buf
}

// Line is a two-vertex segment with a colour per end.
type Line struct {
	Seg      world.Segment
	From, To world.Color
}

func (l Line) Vertices() []float32 {
	return []float32{
		float32(l.Seg.A.X), float32(l.Seg.A.Y), 0,
		float32(l.Seg.B.X), float32(l.Seg.B.Y), 0,
	}
}

func (l Line) Colors() []float32 {
	return []float32{l.From.R, l.From.G, l.From.B, l.To.R, l.To.G, l.To.B}
}
