package renderer

import (
	"gridinv/internal/hud"
	"gridinv/internal/profiling"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// Renderer orchestrates rendering via renderable features
type Renderer struct {
	renderables []Renderable
	width       int
	height      int
	clearColor  mgl32.Vec4
}

// NewRenderer initializes every renderable in order. On failure the
// ones already initialized are disposed.
func NewRenderer(width, height int, rs ...Renderable) (*Renderer, error) {
	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)

	r := &Renderer{
		width:      width,
		height:     height,
		clearColor: mgl32.Vec4{0.18, 0.2, 0.24, 1},
	}
	for _, rend := range rs {
		if err := rend.Init(); err != nil {
			r.Dispose()
			return nil, err
		}
		rend.SetViewport(width, height)
		r.renderables = append(r.renderables, rend)
	}
	return r, nil
}

// Render clears the frame and draws every feature
func (r *Renderer) Render(v hud.View, dt float64) {
	defer profiling.Track("render.GL")()

	c := r.clearColor
	gl.ClearColor(c.X(), c.Y(), c.Z(), c.W())
	gl.Clear(gl.COLOR_BUFFER_BIT)

	ctx := RenderContext{
		View:   v,
		DT:     dt,
		Width:  r.width,
		Height: r.height,
		Proj:   mgl32.Ortho(0, float32(r.width), float32(r.height), 0, -1, 1),
	}
	for _, renderable := range r.renderables {
		renderable.Render(ctx)
	}
}

// Dispose cleans up all renderables in reverse order
func (r *Renderer) Dispose() {
	for i := len(r.renderables) - 1; i >= 0; i-- {
		r.renderables[i].Dispose()
	}
	r.renderables = nil
}

// UpdateViewport resizes the GL viewport and informs every feature
func (r *Renderer) UpdateViewport(width, height int) {
	r.width, r.height = width, height
	gl.Viewport(0, 0, int32(width), int32(height))
	for _, renderable := range r.renderables {
		renderable.SetViewport(width, height)
	}
}
