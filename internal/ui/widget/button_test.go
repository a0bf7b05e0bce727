package widget

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestButtonHandlePress(t *testing.T) {
	clicks := 0
	b := NewButton("Use", 10, 10, 80, 20, func() { clicks++ })

	assert.True(t, b.HandlePress(mgl32.Vec2{15, 15}))
	assert.False(t, b.HandlePress(mgl32.Vec2{95, 15}))
	assert.False(t, b.HandlePress(mgl32.Vec2{15, 30}))
	assert.Equal(t, 1, clicks)

	b.SetPosition(100, 100)
	assert.False(t, b.IsHovered(mgl32.Vec2{15, 15}))
	assert.True(t, b.IsHovered(mgl32.Vec2{150, 110}))

	var c Component = b
	c.SetSize(10, 10)
	assert.False(t, c.HandlePress(mgl32.Vec2{150, 110}))
}

func TestButtonWithoutHandler(t *testing.T) {
	b := NewButton("Destroy", 0, 0, 80, 20, nil)
	assert.True(t, b.HandlePress(mgl32.Vec2{1, 1}))
}
