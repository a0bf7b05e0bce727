// Package overlay draws frame timings in the top-left corner.
package overlay

import (
	"fmt"
	"time"

	"gridinv/internal/graphics"
	renderer "gridinv/internal/graphics/renderer"
	"gridinv/internal/profiling"

	"github.com/go-gl/mathgl/mgl32"
)

// Overlay renders FPS, frame time window and the slowest tracked spans
type Overlay struct {
	stats   *profiling.FrameStats
	font    *graphics.FontRenderer
	enabled bool
}

// New creates a hidden overlay reading stats
func New(stats *profiling.FrameStats) *Overlay {
	return &Overlay{stats: stats}
}

// Toggle shows or hides the overlay
func (o *Overlay) Toggle() { o.enabled = !o.enabled }

func (o *Overlay) Init() error {
	face, err := graphics.LoadFace("", 0)
	if err != nil {
		return err
	}
	o.font, err = graphics.NewFontRenderer(graphics.BuildFontAtlas(face), 1, 1)
	return err
}

func (o *Overlay) SetViewport(width, height int) {
	if o.font != nil {
		o.font.SetViewport(width, height)
	}
}

func (o *Overlay) Render(ctx renderer.RenderContext) {
	if !o.enabled {
		return
	}
	lo, avg, hi := o.stats.Window()
	lines := []string{
		fmt.Sprintf("FPS: %d", o.stats.FPS()),
		fmt.Sprintf("Frame: min %s avg %s max %s", ms(lo), ms(avg), ms(hi)),
		profiling.TopN(4),
	}
	lineH := float32(o.font.Atlas().LineHeight)
	o.font.RenderLines(lines, 10, 10+lineH, lineH, 1, mgl32.Vec4{1, 1, 0.6, 1})
}

func (o *Overlay) Dispose() {
	if o.font != nil {
		o.font.Dispose()
	}
}

func ms(d time.Duration) string {
	return fmt.Sprintf("%.1fms", float64(d.Microseconds())/1000.0)
}
