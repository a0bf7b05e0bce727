// Package inventory draws the inventory screen described by a hud.View.
package inventory

import (
	"log/slog"
	"strconv"

	"gridinv/internal/assets"
	"gridinv/internal/graphics"
	"gridinv/internal/graphics/renderables/ui"
	renderer "gridinv/internal/graphics/renderer"
	"gridinv/internal/profiling"
	"gridinv/internal/ui/theme"

	"github.com/go-gl/mathgl/mgl32"
)

const textPadding = 6

// Inventory renders panel, slots, the dragged item, tooltip and menu
type Inventory struct {
	ui      *ui.UI
	font    *graphics.FontRenderer
	icons   *graphics.IconTextures
	palette theme.Palette
	logger  *slog.Logger

	fontPath string
	fontSize int
	warned   map[string]bool
}

// New creates the renderable. fontPath may be empty for the built-in
// bitmap face.
func New(icons assets.IconSource, fontPath string, fontSize int, logger *slog.Logger) *Inventory {
	if logger == nil {
		logger = slog.Default()
	}
	return &Inventory{
		ui:       ui.NewUI(),
		icons:    graphics.NewIconTextures(icons),
		palette:  theme.Default(),
		logger:   logger,
		fontPath: fontPath,
		fontSize: fontSize,
		warned:   make(map[string]bool),
	}
}

// Init compiles shaders and bakes the font
func (r *Inventory) Init() error {
	if err := r.ui.Init(); err != nil {
		return err
	}
	face, err := graphics.LoadFace(r.fontPath, r.fontSize)
	if err != nil {
		return err
	}
	r.font, err = graphics.NewFontRenderer(graphics.BuildFontAtlas(face), 1, 1)
	return err
}

// SetViewport forwards the window size to the helpers
func (r *Inventory) SetViewport(width, height int) {
	r.ui.SetViewport(width, height)
	if r.font != nil {
		r.font.SetViewport(width, height)
	}
}

// Render draws ctx.View; a hidden view draws nothing
func (r *Inventory) Render(ctx renderer.RenderContext) {
	defer profiling.Track("render.inventory")()

	v := ctx.View
	if !v.Visible {
		return
	}
	pal := r.palette.WithStyles(v.PanelStyle, v.TooltipStyle)

	r.ui.DrawBox(v.Panel, pal.Panel)
	for _, cell := range v.Cells {
		r.ui.DrawBox(cell, pal.Cell)
	}

	atlas := r.font.Atlas()
	for _, s := range v.Slots {
		if tex := r.texture(s.Image); tex != 0 {
			r.ui.DrawTexturedRect(s.Rect, tex, mgl32.Vec4{1, 1, 1, 1})
		} else {
			r.ui.DrawBox(s.Rect, pal.Item)
		}
		if s.Stackable {
			label := strconv.Itoa(s.Count)
			w, _ := atlas.Measure(label, 1)
			maxP := s.Rect.Max()
			r.font.Render(label, maxP.X()-w-2, maxP.Y()-3, 1, pal.Item.Text)
		}
	}

	// Hover highlight sits over the item, under the tooltip
	if v.Hovered >= 0 && v.Hovered < len(v.Cells) {
		r.ui.DrawFilledRect(v.Cells[v.Hovered], pal.Highlight)
	}

	if t := v.Tooltip; t != nil {
		r.ui.DrawBox(t.Rect, pal.Tooltip)
		x := t.Rect.Min.X() + textPadding
		y := t.Rect.Min.Y() + textPadding + float32(atlas.Ascent)
		r.font.RenderLines(theme.PlainText(t.Text), x, y, float32(atlas.LineHeight), 1, pal.Tooltip.Text)
	}

	if m := v.Menu; m != nil {
		r.ui.DrawBox(m.Rect, pal.Menu)
		for _, b := range m.Buttons {
			r.ui.DrawBox(b.Rect, pal.Button)
			if b.Hovered {
				r.ui.DrawFilledRect(b.Rect, pal.Highlight)
			}
			w, _ := atlas.Measure(b.Label, 1)
			c := b.Rect.Center()
			r.font.Render(b.Label, c.X()-w/2, c.Y()+float32(atlas.Ascent)/2, 1, pal.Button.Text)
		}
	}
}

// Dispose releases textures and GL objects
func (r *Inventory) Dispose() {
	r.icons.Dispose()
	if r.font != nil {
		r.font.Dispose()
	}
	r.ui.Dispose()
}

func (r *Inventory) texture(name string) uint32 {
	if name == "" {
		return 0
	}
	tex, err := r.icons.Get(name)
	if err != nil {
		if !r.warned[name] {
			r.logger.Warn("icon unavailable", "image", name, "error", err)
			r.warned[name] = true
		}
		return 0
	}
	return tex
}
