package theme

import (
	"image/color"
	"testing"

	"gridinv/internal/config"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestPlainText(t *testing.T) {
	lines := PlainText("<b>X-Potion</b>\n\n<color=#ff0000><i>Sample</i></color> Text")
	assert.Equal(t, []string{"X-Potion", "", "Sample Text"}, lines)
}

func TestNRGBA(t *testing.T) {
	assert.Equal(t, color.NRGBA{R: 255, G: 0, B: 128, A: 255}, NRGBA(mgl32.Vec4{1, -1, 0.5, 2}))
}

func TestWithStyles(t *testing.T) {
	base := Default()
	panel := &config.Style{Background: mgl32.Vec4{1, 0, 0, 1}}

	p := base.WithStyles(panel, nil)
	assert.Equal(t, mgl32.Vec4{1, 0, 0, 1}, p.Panel.Background)
	assert.Equal(t, base.Tooltip, p.Tooltip)
}
