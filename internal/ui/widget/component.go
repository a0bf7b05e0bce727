package widget

import (
	"gridinv/internal/ui/layout"

	"github.com/go-gl/mathgl/mgl32"
)

// Component is a rectangular widget that reacts to presses.
type Component interface {
	Bounds() layout.Rect
	HandlePress(p mgl32.Vec2) bool
	SetPosition(x, y float32)
	SetSize(w, h float32)
}

type BaseComponent struct {
	X, Y, W, H float32
}

func (b *BaseComponent) SetPosition(x, y float32) { b.X, b.Y = x, y }
func (b *BaseComponent) SetSize(w, h float32)     { b.W, b.H = w, h }
func (b *BaseComponent) Bounds() layout.Rect      { return layout.NewRect(b.X, b.Y, b.W, b.H) }
