package softraster

import (
	"bytes"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"testing"

	"gridinv/internal/config"
	"gridinv/internal/hud"
	"gridinv/internal/input"
	"gridinv/internal/inventory"
	"gridinv/internal/item"
	"gridinv/internal/ui/layout"
	"gridinv/internal/ui/theme"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedIcons map[string]image.Image

func (f fixedIcons) Icon(name string) (image.Image, error) {
	if img, ok := f[name]; ok {
		return img, nil
	}
	return nil, assert.AnError
}

func solid(c color.RGBA) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	draw.Draw(img, img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
	return img
}

func newScene(t *testing.T) (*hud.Controller, *inventory.Inventory) {
	t.Helper()
	inv := inventory.New(6)
	require.True(t, inv.Insert(item.NewBasic("0", item.Definition{Name: "Evenstar Helmet", Tooltip: "<b>Evenstar Helmet</b>", Image: "evenstar_helm"}, inv)))
	require.True(t, inv.Insert(item.NewBasic("1", item.Definition{Name: "X-Potion", Image: "x_potion", Stackable: true, Consumable: true}, inv)))

	grid := layout.NewGrid(mgl32.Vec2{10, 10}, mgl32.Vec2{40, 40}, 2, 3)
	return hud.NewController(inv, grid, hud.Features{Tooltips: true, Dragging: true, Options: true}), inv
}

func TestRenderHiddenViewIsBlank(t *testing.T) {
	img := New(nil, nil).Render(hud.View{}, 32, 32)
	assert.Equal(t, color.RGBA{}, img.RGBAAt(16, 16))
}

func TestRenderSlotsAndIcons(t *testing.T) {
	ctrl, _ := newScene(t)
	red := color.RGBA{R: 255, A: 255}
	r := New(fixedIcons{"evenstar_helm": solid(red)}, nil)

	v := ctrl.View()
	img := r.Render(v, 300, 200)

	// Icon covers slot 0
	c0 := v.Slots[0].Rect.Center()
	assert.Equal(t, red, img.RGBAAt(int(c0.X()), int(c0.Y())))

	// Missing icon falls back to the opaque item color
	c1 := v.Slots[1].Rect.Center()
	want := theme.NRGBA(theme.Default().Item.Background)
	got := img.RGBAAt(int(c1.X()), int(c1.Y()-10))
	assert.Equal(t, color.RGBA{R: want.R, G: want.G, B: want.B, A: 255}, got)

	// Empty cell differs from an item
	c3 := v.Cells[3].Center()
	assert.NotEqual(t, got, img.RGBAAt(int(c3.X()), int(c3.Y())))

	// Outside the panel stays transparent
	assert.Equal(t, color.RGBA{}, img.RGBAAt(250, 190))
}

func TestRenderPanelStyleOverride(t *testing.T) {
	ctrl, inv := newScene(t)
	green := mgl32.Vec4{0, 1, 0, 1}
	ctrl = hud.NewController(inv, ctrl.Grid(), hud.Features{}, hud.WithStyles(&config.Style{Background: green, Border: green}, nil))

	img := New(nil, nil).Render(ctrl.View(), 300, 200)
	// Panel inset pixel, outside every cell
	assert.Equal(t, color.RGBA{G: 255, A: 255}, img.RGBAAt(12, 12))
}

func TestRenderTooltipAndMenu(t *testing.T) {
	ctrl, _ := newScene(t)
	r := New(nil, nil)
	slot0 := ctrl.Grid().SlotRect(0).Center()

	ctrl.Handle(input.Event{Type: input.EventMove, Pos: slot0})
	v := ctrl.View()
	require.NotNil(t, v.Tooltip)
	img := r.Render(v, 400, 300)
	corner := v.Tooltip.Rect.Max().Sub(mgl32.Vec2{3, 3})
	assert.NotEqual(t, color.RGBA{}, img.RGBAAt(int(corner.X()), int(corner.Y())))

	ctrl.Handle(input.Event{Type: input.EventPress, Button: input.ButtonRight, Pos: slot0})
	v = ctrl.View()
	require.NotNil(t, v.Menu)
	require.Nil(t, v.Tooltip)
	img = r.Render(v, 400, 300)
	b := v.Menu.Buttons[1].Rect
	edge := b.Min.Add(mgl32.Vec2{2, 2})
	assert.NotEqual(t, color.RGBA{}, img.RGBAAt(int(edge.X()), int(edge.Y())))
}

func TestRenderHoverHighlight(t *testing.T) {
	ctrl, _ := newScene(t)
	r := New(nil, nil)
	empty := ctrl.Grid().SlotRect(3).Center()
	x, y := int(empty.X()), int(empty.Y())

	before := r.Render(ctrl.View(), 300, 200).RGBAAt(x, y)
	ctrl.Handle(input.Event{Type: input.EventMove, Pos: empty})
	after := r.Render(ctrl.View(), 300, 200).RGBAAt(x, y)

	assert.Greater(t, after.R, before.R)
}

func TestWritePNG(t *testing.T) {
	ctrl, _ := newScene(t)
	img := New(nil, nil).Render(ctrl.View(), 200, 120)

	var buf bytes.Buffer
	require.NoError(t, WritePNG(&buf, img))

	decoded, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, img.Bounds(), decoded.Bounds())
}
