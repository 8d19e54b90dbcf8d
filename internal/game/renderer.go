//go:build !android

package game

import (
	"fmt"
	"log"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"cannonball/internal/view"
	"cannonball/internal/world"
)

// glOffset converts a byte offset to unsafe.Pointer for OpenGL VBO offset params.
func glOffset(n int) unsafe.Pointer { return unsafe.Pointer(uintptr(n)) }

// mesh is one uploaded polygon: positions and colours in separate buffers.
type mesh struct {
	vao   uint32
	vbo   uint32
	cbo   uint32
	count int32
	used  bool // drawn since the last EndFrame
}

type Renderer struct {
	prog uint32
	uMVP int32

	// Polygons are shared by every entity with the same radius, sides and
	// colour. A damaged target gets a new key and its old mesh is swept.
	meshes map[view.MeshKey]*mesh

	// Streaming buffers for HUD lines, rebuilt each frame.
	lineVAO uint32
	lineVBO uint32
	lineCBO uint32
	linePos []float32
	lineCol []float32
}

func NewRenderer() (*Renderer, error) {
	prog, err := linkProgram(shapeVertSrc, shapeFragSrc)
	if err != nil {
		return nil, fmt.Errorf("shape program: %w", err)
	}

	r := &Renderer{
		prog:   prog,
		meshes: make(map[view.MeshKey]*mesh),
	}
	gl.UseProgram(prog)
	r.uMVP = gl.GetUniformLocation(prog, gl.Str("uMVP\x00"))

	r.lineVAO, r.lineVBO, r.lineCBO = newColoredVAO()
	gl.BindVertexArray(0)

	log.Printf("gl: %s, %s", gl.GoStr(gl.GetString(gl.RENDERER)), gl.GoStr(gl.GetString(gl.VERSION)))
	return r, nil
}

// newColoredVAO creates a VAO with a vec3 position buffer at location 0 and
// a vec3 colour buffer at location 1. The VAO is left bound.
func newColoredVAO() (vao, vbo, cbo uint32) {
	gl.GenVertexArrays(1, &vao)
	gl.GenBuffers(1, &vbo)
	gl.GenBuffers(1, &cbo)
	gl.BindVertexArray(vao)

	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, 3*4, glOffset(0))

	gl.BindBuffer(gl.ARRAY_BUFFER, cbo)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 3, gl.FLOAT, false, 3*4, glOffset(0))
	return vao, vbo, cbo
}

func (r *Renderer) upload(key view.MeshKey) *mesh {
	verts := view.PolygonVertices(key.Radius, key.Sides)
	n := len(verts) / 3
	cols := view.SolidColors(n, key.Color)

	m := &mesh{count: int32(n)}
	m.vao, m.vbo, m.cbo = newColoredVAO()
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(verts)*4, gl.Ptr(&verts[0]), gl.STATIC_DRAW)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.cbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(cols)*4, gl.Ptr(&cols[0]), gl.STATIC_DRAW)
	r.meshes[key] = m
	return m
}

func (m *mesh) delete() {
	gl.DeleteBuffers(1, &m.vbo)
	gl.DeleteBuffers(1, &m.cbo)
	gl.DeleteVertexArrays(1, &m.vao)
}

func (r *Renderer) Destroy() {
	for key, m := range r.meshes {
		m.delete()
		delete(r.meshes, key)
	}
	for _, id := range []uint32{r.lineVBO, r.lineCBO} {
		if id != 0 {
			gl.DeleteBuffers(1, &id)
		}
	}
	if r.lineVAO != 0 {
		gl.DeleteVertexArrays(1, &r.lineVAO)
	}
	if r.prog != 0 {
		gl.DeleteProgram(r.prog)
	}
}

func (r *Renderer) BeginFrame(fbW, fbH int, clear world.Color) {
	gl.Viewport(0, 0, int32(fbW), int32(fbH))
	gl.ClearColor(clear.R, clear.G, clear.B, 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT)
	gl.UseProgram(r.prog)
}

// DrawWorld draws every live entity in world order, so later entities
// cover earlier ones.
func (r *Renderer) DrawWorld(cam view.Camera, w *world.World) {
	w.Each(func(e *world.Entity) {
		key := view.KeyOf(e)
		if key.Sides <= 0 {
			return
		}
		m, ok := r.meshes[key]
		if !ok {
			m = r.upload(key)
		}
		m.used = true

		mvp := cam.MVP(e)
		gl.UniformMatrix4fv(r.uMVP, 1, false, &mvp[0])
		gl.BindVertexArray(m.vao)
		gl.DrawArrays(gl.TRIANGLES, 0, m.count)
	})
}

// DrawLines draws HUD segments given in world units.
func (r *Renderer) DrawLines(cam view.Camera, lines []view.Line) {
	if len(lines) == 0 {
		return
	}
	r.linePos = r.linePos[:0]
	r.lineCol = r.lineCol[:0]
	for _, l := range lines {
		r.linePos = append(r.linePos, l.Vertices()...)
		r.lineCol = append(r.lineCol, l.Colors()...)
	}

	vp := cam.VP()
	gl.UniformMatrix4fv(r.uMVP, 1, false, &vp[0])
	gl.BindVertexArray(r.lineVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.lineVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(r.linePos)*4, gl.Ptr(&r.linePos[0]), gl.STREAM_DRAW)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.lineCBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(r.lineCol)*4, gl.Ptr(&r.lineCol[0]), gl.STREAM_DRAW)
	gl.DrawArrays(gl.LINES, 0, int32(len(r.linePos)/3))
}

// EndFrame frees meshes nothing drew this frame.
func (r *Renderer) EndFrame() {
	for key, m := range r.meshes {
		if !m.used {
			m.delete()
			delete(r.meshes, key)
			continue
		}
		m.used = false
	}
	gl.BindVertexArray(0)
}
