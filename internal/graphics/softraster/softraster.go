// Package softraster draws an inventory View into an image without a
// GPU. The demo uses it for headless screenshots.
package softraster

import (
	"image"
	"image/draw"
	"image/png"
	"io"
	"log/slog"
	"math"
	"strconv"

	"gridinv/internal/assets"
	"gridinv/internal/hud"
	"gridinv/internal/profiling"
	"gridinv/internal/ui/layout"
	"gridinv/internal/ui/theme"

	"github.com/go-gl/mathgl/mgl32"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Renderer rasterizes views. Icons that fail to load are drawn as a
// flat item-colored box.
type Renderer struct {
	icons   assets.IconSource
	palette theme.Palette
	face    font.Face
	logger  *slog.Logger

	missing map[string]bool
}

// New creates a renderer. icons may be nil.
func New(icons assets.IconSource, logger *slog.Logger) *Renderer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Renderer{
		icons:   icons,
		palette: theme.Default(),
		face:    basicfont.Face7x13,
		logger:  logger,
		missing: make(map[string]bool),
	}
}

// Render draws v onto a transparent canvas of the given size.
func (r *Renderer) Render(v hud.View, width, height int) *image.RGBA {
	defer profiling.Track("render.Soft")()

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	if !v.Visible {
		return dst
	}
	pal := r.palette.WithStyles(v.PanelStyle, v.TooltipStyle)

	r.box(dst, v.Panel, pal.Panel)
	for _, cell := range v.Cells {
		r.box(dst, cell, pal.Cell)
	}

	for _, s := range v.Slots {
		r.box(dst, s.Rect, pal.Item)
		if icon := r.icon(s.Image); icon != nil {
			xdraw.ApproxBiLinear.Scale(dst, toRect(s.Rect), icon, icon.Bounds(), draw.Over, nil)
		}
		if s.Stackable {
			label := strconv.Itoa(s.Count)
			w := font.MeasureString(r.face, label).Ceil()
			maxP := s.Rect.Max()
			r.text(dst, label, int(maxP.X())-w-2, int(maxP.Y())-3, pal.Item.Text)
		}
	}

	// Hover highlight sits over the item, under the tooltip
	if v.Hovered >= 0 && v.Hovered < len(v.Cells) {
		r.fill(dst, v.Cells[v.Hovered], pal.Highlight)
	}

	if t := v.Tooltip; t != nil {
		r.box(dst, t.Rect, pal.Tooltip)
		lineH := r.face.Metrics().Height.Ceil()
		x, y := int(t.Rect.Min.X())+6, int(t.Rect.Min.Y())+6+r.face.Metrics().Ascent.Ceil()
		for i, line := range theme.PlainText(t.Text) {
			r.text(dst, line, x, y+i*lineH, pal.Tooltip.Text)
		}
	}

	if m := v.Menu; m != nil {
		r.box(dst, m.Rect, pal.Menu)
		for _, b := range m.Buttons {
			r.box(dst, b.Rect, pal.Button)
			if b.Hovered {
				r.fill(dst, b.Rect, pal.Highlight)
			}
			w := font.MeasureString(r.face, b.Label).Ceil()
			c := b.Rect.Center()
			r.text(dst, b.Label, int(c.X())-w/2, int(c.Y())+r.face.Metrics().Ascent.Ceil()/2, pal.Button.Text)
		}
	}
	return dst
}

// WritePNG encodes img as PNG
func WritePNG(w io.Writer, img image.Image) error {
	return png.Encode(w, img)
}

func (r *Renderer) icon(name string) image.Image {
	if r.icons == nil || name == "" || r.missing[name] {
		return nil
	}
	img, err := r.icons.Icon(name)
	if err != nil {
		r.logger.Warn("icon unavailable", "image", name, "error", err)
		r.missing[name] = true
		return nil
	}
	return img
}

func (r *Renderer) fill(dst *image.RGBA, rect layout.Rect, c mgl32.Vec4) {
	draw.Draw(dst, toRect(rect), image.NewUniform(theme.NRGBA(c)), image.Point{}, draw.Over)
}

func (r *Renderer) box(dst *image.RGBA, rect layout.Rect, b theme.Box) {
	ir := toRect(rect)
	r.fill(dst, rect, b.Background)

	border := image.NewUniform(theme.NRGBA(b.Border))
	edges := []image.Rectangle{
		image.Rect(ir.Min.X, ir.Min.Y, ir.Max.X, ir.Min.Y+1),
		image.Rect(ir.Min.X, ir.Max.Y-1, ir.Max.X, ir.Max.Y),
		image.Rect(ir.Min.X, ir.Min.Y, ir.Min.X+1, ir.Max.Y),
		image.Rect(ir.Max.X-1, ir.Min.Y, ir.Max.X, ir.Max.Y),
	}
	for _, e := range edges {
		draw.Draw(dst, e.Intersect(ir), border, image.Point{}, draw.Over)
	}
}

func (r *Renderer) text(dst *image.RGBA, s string, x, y int, c mgl32.Vec4) {
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(theme.NRGBA(c)),
		Face: r.face,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(s)
}

func toRect(r layout.Rect) image.Rectangle {
	maxP := r.Max()
	return image.Rect(
		int(math.Floor(float64(r.Min.X()))),
		int(math.Floor(float64(r.Min.Y()))),
		int(math.Ceil(float64(maxP.X()))),
		int(math.Ceil(float64(maxP.Y()))),
	)
}
