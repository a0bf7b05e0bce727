package ui

import (
	"gridinv/internal/graphics"
	"gridinv/internal/ui/layout"
	"gridinv/internal/ui/theme"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// UI draws screen-space rectangles, filled or textured, in pixels with
// a top-left origin. It is a helper owned by other renderables.
type UI struct {
	shader     *graphics.Shader
	vao        uint32
	vbo        uint32
	projection mgl32.Mat4
}

// NewUI creates a new UI helper
func NewUI() *UI {
	return &UI{}
}

// Init compiles the program and allocates one quad worth of buffer
func (u *UI) Init() error {
	var err error
	u.shader, err = graphics.LoadShader("ui")
	if err != nil {
		return err
	}

	gl.GenVertexArrays(1, &u.vao)
	gl.GenBuffers(1, &u.vbo)
	gl.BindVertexArray(u.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, u.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, 6*4*4, nil, gl.DYNAMIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, 4*4, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 2, gl.FLOAT, false, 4*4, gl.PtrOffset(2*4))
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	return nil
}

// SetViewport updates the pixel projection
func (u *UI) SetViewport(width, height int) {
	u.projection = mgl32.Ortho(0, float32(width), float32(height), 0, -1, 1)
}

// Dispose cleans up OpenGL resources
func (u *UI) Dispose() {
	if u.vao != 0 {
		gl.DeleteVertexArrays(1, &u.vao)
	}
	if u.vbo != 0 {
		gl.DeleteBuffers(1, &u.vbo)
	}
	if u.shader != nil {
		u.shader.Delete()
	}
}

// DrawFilledRect draws a solid rectangle
func (u *UI) DrawFilledRect(r layout.Rect, color mgl32.Vec4) {
	u.draw(r, 0, color)
}

// DrawTexturedRect stretches tex over r, tinted by color
func (u *UI) DrawTexturedRect(r layout.Rect, tex uint32, color mgl32.Vec4) {
	u.draw(r, tex, color)
}

// DrawBox draws a filled rectangle with a one pixel outline
func (u *UI) DrawBox(r layout.Rect, b theme.Box) {
	u.DrawFilledRect(r, b.Background)

	w, h := r.Size.X(), r.Size.Y()
	u.DrawFilledRect(layout.NewRect(r.Min.X(), r.Min.Y(), w, 1), b.Border)
	u.DrawFilledRect(layout.NewRect(r.Min.X(), r.Min.Y()+h-1, w, 1), b.Border)
	u.DrawFilledRect(layout.NewRect(r.Min.X(), r.Min.Y(), 1, h), b.Border)
	u.DrawFilledRect(layout.NewRect(r.Min.X()+w-1, r.Min.Y(), 1, h), b.Border)
}

func (u *UI) draw(r layout.Rect, tex uint32, color mgl32.Vec4) {
	x0, y0 := r.Min.X(), r.Min.Y()
	maxP := r.Max()
	x1, y1 := maxP.X(), maxP.Y()
	verts := []float32{
		x0, y0, 0, 0,
		x1, y0, 1, 0,
		x1, y1, 1, 1,
		x0, y0, 0, 0,
		x1, y1, 1, 1,
		x0, y1, 0, 1,
	}

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	u.shader.Use()
	u.shader.SetMatrix4("projection", &u.projection[0])
	u.shader.SetVector4("uColor", color)
	u.shader.SetBool("uTextured", tex != 0)
	if tex != 0 {
		u.shader.SetInt("uTexture", 0)
		gl.ActiveTexture(gl.TEXTURE0)
		gl.BindTexture(gl.TEXTURE_2D, tex)
	}

	gl.BindVertexArray(u.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, u.vbo)
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(verts)*4, gl.Ptr(verts))
	gl.DrawArrays(gl.TRIANGLES, 0, 6)
	gl.BindVertexArray(0)

	gl.Disable(gl.BLEND)
}
