// Package theme holds the colors and text helpers shared by the
// renderers.
package theme

import (
	"image/color"
	"regexp"
	"strings"

	"gridinv/internal/config"

	"github.com/go-gl/mathgl/mgl32"
)

// Box is the fill, outline and text color of one kind of box
type Box struct {
	Background mgl32.Vec4
	Border     mgl32.Vec4
	Text       mgl32.Vec4
}

// Palette is the full set of colors for the inventory screen
type Palette struct {
	Panel   Box
	Cell    Box
	Item    Box
	Tooltip Box
	Menu    Box
	Button  Box
	// Highlight is blended over the hovered cell and menu button
	Highlight mgl32.Vec4
}

// Default returns the built-in look: dark translucent boxes, white text.
func Default() Palette {
	white := mgl32.Vec4{1, 1, 1, 1}
	return Palette{
		Panel:   Box{Background: mgl32.Vec4{0.1, 0.1, 0.1, 0.8}, Border: mgl32.Vec4{0.4, 0.4, 0.4, 1}, Text: white},
		Cell:    Box{Background: mgl32.Vec4{0.2, 0.2, 0.2, 0.9}, Border: mgl32.Vec4{0.45, 0.45, 0.45, 1}, Text: white},
		Item:    Box{Background: mgl32.Vec4{0.35, 0.3, 0.2, 1}, Border: mgl32.Vec4{0.8, 0.7, 0.4, 1}, Text: white},
		Tooltip: Box{Background: mgl32.Vec4{0.05, 0.05, 0.1, 0.9}, Border: mgl32.Vec4{0.5, 0.5, 0.6, 1}, Text: white},
		Menu:    Box{Background: mgl32.Vec4{0.15, 0.15, 0.15, 0.95}, Border: mgl32.Vec4{0.5, 0.5, 0.5, 1}, Text: white},
		Button:  Box{Background: mgl32.Vec4{0.3, 0.3, 0.3, 1}, Border: mgl32.Vec4{0.6, 0.6, 0.6, 1}, Text: white},

		Highlight: mgl32.Vec4{1, 1, 1, 0.15},
	}
}

// WithStyles applies the configured overrides, leaving nil ones alone.
func (p Palette) WithStyles(panel, tooltip *config.Style) Palette {
	if panel != nil {
		p.Panel = Box(*panel)
	}
	if tooltip != nil {
		p.Tooltip = Box(*tooltip)
	}
	return p
}

// NRGBA converts a [0,1] color to an 8-bit color
func NRGBA(c mgl32.Vec4) color.NRGBA {
	return color.NRGBA{R: channel(c.X()), G: channel(c.Y()), B: channel(c.Z()), A: channel(c.W())}
}

func channel(v float32) uint8 {
	v = mgl32.Clamp(v, 0, 1)
	return uint8(v*255 + 0.5)
}

var richTag = regexp.MustCompile(`</?(b|i|size(=[^>]*)?|color(=[^>]*)?)>`)

// PlainText strips rich-text tags and splits the result into lines.
func PlainText(s string) []string {
	return strings.Split(richTag.ReplaceAllString(s, ""), "\n")
}
