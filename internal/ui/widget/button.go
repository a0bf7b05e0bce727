package widget

import "github.com/go-gl/mathgl/mgl32"

// Button is a clickable label. It holds no render state; renderers draw
// it from Bounds and Text.
type Button struct {
	BaseComponent
	Text    string
	OnClick func()
}

func NewButton(text string, x, y, w, h float32, onClick func()) *Button {
	return &Button{
		BaseComponent: BaseComponent{X: x, Y: y, W: w, H: h},
		Text:          text,
		OnClick:       onClick,
	}
}

// IsHovered reports whether p is over the button
func (b *Button) IsHovered(p mgl32.Vec2) bool {
	return b.Bounds().Contains(p)
}

// HandlePress fires OnClick when p is over the button
func (b *Button) HandlePress(p mgl32.Vec2) bool {
	if !b.IsHovered(p) {
		return false
	}
	if b.OnClick != nil {
		b.OnClick()
	}
	return true
}
