package graphics

import (
	"fmt"
	"image"
	"image/draw"
	"math"
	"os"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

const (
	atlasWidth = 512
	firstRune  = rune(32)
	lastRune   = rune(126)
)

// FontCharacter describes a single character's placement and metrics within the atlas
type FontCharacter struct {
	// Pixel coordinates of the glyph in the atlas texture (top-left origin)
	AtlasX float32
	AtlasY float32
	// Glyph bitmap size in pixels
	Width  float32
	Height float32
	// Bearing (offset from baseline) in pixels
	BearingX float32
	BearingY float32
	// Advance in pixels
	Advance int
}

// FontAtlas is the baked glyph set. TextureID is zero until Upload.
type FontAtlas struct {
	TextureID  uint32
	AtlasW     int
	AtlasH     int
	LineHeight int
	Ascent     int
	Characters map[rune]FontCharacter

	image *image.Alpha
}

// LoadFace opens a TrueType/OpenType font at the given pixel size. An
// empty path selects the built-in 7x13 bitmap face.
func LoadFace(path string, pixels int) (font.Face, error) {
	if path == "" {
		return basicfont.Face7x13, nil
	}
	fontBytes, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read font: %w", err)
	}
	f, err := opentype.Parse(fontBytes)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{Size: float64(pixels), DPI: 72, Hinting: font.HintingFull})
	if err != nil {
		return nil, fmt.Errorf("new face: %w", err)
	}
	return face, nil
}

// BuildFontAtlas bakes the printable ASCII range of face into an alpha
// image. It touches no GL state.
func BuildFontAtlas(face font.Face) *FontAtlas {
	padding := 1
	characters := make(map[rune]FontCharacter)

	// First pass: pack rows to find the atlas height
	offsetX, offsetY, rowHeight := 0, 0, 0
	type placed struct {
		r    rune
		dr   image.Rectangle
		x, y int
	}
	var glyphs []placed
	for r := firstRune; r <= lastRune; r++ {
		dr, _, _, advance, ok := face.Glyph(fixed.P(0, 0), r)
		if !ok {
			continue
		}
		fc := FontCharacter{
			BearingX: float32(dr.Min.X),
			BearingY: float32(-dr.Min.Y),
			Advance:  int(math.Round(float64(advance) / 64.0)),
		}
		gw, gh := dr.Dx(), dr.Dy()
		if gw == 0 || gh == 0 {
			// Space or non-drawable glyph; still record advance
			characters[r] = fc
			continue
		}
		if offsetX+gw > atlasWidth {
			offsetX = 0
			offsetY += rowHeight + padding
			rowHeight = 0
		}
		fc.AtlasX, fc.AtlasY = float32(offsetX), float32(offsetY)
		fc.Width, fc.Height = float32(gw), float32(gh)
		characters[r] = fc
		glyphs = append(glyphs, placed{r: r, dr: dr, x: offsetX, y: offsetY})

		offsetX += gw + padding
		rowHeight = max(rowHeight, gh)
	}
	atlasH := max(offsetY+rowHeight, 1)

	// Second pass: copy glyph masks into place
	atlasImg := image.NewAlpha(image.Rect(0, 0, atlasWidth, atlasH))
	for _, g := range glyphs {
		_, mask, maskp, _, _ := face.Glyph(fixed.P(0, 0), g.r)
		dst := image.Rect(g.x, g.y, g.x+g.dr.Dx(), g.y+g.dr.Dy())
		draw.Draw(atlasImg, dst, mask, maskp, draw.Src)
	}

	m := face.Metrics()
	return &FontAtlas{
		AtlasW:     atlasWidth,
		AtlasH:     atlasH,
		LineHeight: m.Height.Ceil(),
		Ascent:     m.Ascent.Ceil(),
		Characters: characters,
		image:      atlasImg,
	}
}

// Upload sends the atlas to the GPU as a single red channel texture
func (a *FontAtlas) Upload() {
	gl.GenTextures(1, &a.TextureID)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, a.TextureID)
	// Ensure tight byte alignment for single-channel (alpha) upload
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RED, int32(a.AtlasW), int32(a.AtlasH), 0, gl.RED, gl.UNSIGNED_BYTE, gl.Ptr(a.image.Pix))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.BindTexture(gl.TEXTURE_2D, 0)
}

// Measure returns the width and line height in pixels of text at scale
func (a *FontAtlas) Measure(text string, scale float32) (float32, float32) {
	var width float32
	for _, r := range text {
		fc, ok := a.Characters[r]
		if !ok {
			fc = a.Characters[' ']
		}
		width += float32(fc.Advance) * scale
	}
	return width, float32(a.LineHeight) * scale
}

// vertices returns two textured triangles per glyph, 4 floats per
// vertex: x, y, u, v. y is the baseline.
func (a *FontAtlas) vertices(text string, x, y, scale float32) []float32 {
	out := make([]float32, 0, len(text)*6*4)
	for _, r := range text {
		fc, ok := a.Characters[r]
		if !ok {
			// Skip missing glyphs
			x += float32(a.Characters[' '].Advance) * scale
			continue
		}
		if fc.Width > 0 {
			out = append(out, a.quad(fc, x, y, scale)...)
		}
		x += float32(fc.Advance) * scale
	}
	return out
}

func (a *FontAtlas) quad(fc FontCharacter, x, y, scale float32) []float32 {
	xPos := x + fc.BearingX*scale
	yPos := y - fc.BearingY*scale
	w := fc.Width * scale
	h := fc.Height * scale

	u0 := fc.AtlasX / float32(a.AtlasW)
	v0 := fc.AtlasY / float32(a.AtlasH)
	u1 := u0 + fc.Width/float32(a.AtlasW)
	v1 := v0 + fc.Height/float32(a.AtlasH)

	return []float32{
		xPos, yPos + h, u0, v1,
		xPos, yPos, u0, v0,
		xPos + w, yPos, u1, v0,

		xPos, yPos + h, u0, v1,
		xPos + w, yPos, u1, v0,
		xPos + w, yPos + h, u1, v1,
	}
}

// FontRenderer draws text from an uploaded atlas in pixel coordinates
// with a top-left origin.
type FontRenderer struct {
	atlas      *FontAtlas
	shader     *Shader
	projection mgl32.Mat4
	vao        uint32
	vbo        uint32
}

// NewFontRenderer uploads atlas and compiles the font program
func NewFontRenderer(atlas *FontAtlas, width, height int) (*FontRenderer, error) {
	if atlas == nil || len(atlas.Characters) == 0 {
		return nil, fmt.Errorf("invalid font atlas")
	}
	shader, err := LoadShader("font")
	if err != nil {
		return nil, err
	}
	if atlas.TextureID == 0 {
		atlas.Upload()
	}
	fr := &FontRenderer{atlas: atlas, shader: shader}
	fr.SetViewport(width, height)

	gl.GenVertexArrays(1, &fr.vao)
	gl.GenBuffers(1, &fr.vbo)
	gl.BindVertexArray(fr.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, fr.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, 256*6*4*4, nil, gl.DYNAMIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 4, gl.FLOAT, false, 4*4, gl.PtrOffset(0))
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)
	return fr, nil
}

// Atlas returns the glyph metrics used for layout
func (fr *FontRenderer) Atlas() *FontAtlas { return fr.atlas }

// SetViewport updates the pixel projection
func (fr *FontRenderer) SetViewport(width, height int) {
	fr.projection = mgl32.Ortho(0, float32(width), float32(height), 0, -1, 1)
}

// Render draws text with its baseline at y
func (fr *FontRenderer) Render(text string, x, y, scale float32, color mgl32.Vec4) {
	fr.RenderLines([]string{text}, x, y, 0, scale, color)
}

// RenderLines draws multiple lines of text in a single pass to minimize GL state changes.
// Lines start at baseline yStart, each subsequent line lineStep pixels lower.
func (fr *FontRenderer) RenderLines(lines []string, x, yStart, lineStep, scale float32, color mgl32.Vec4) {
	var vertices []float32
	y := yStart
	for _, line := range lines {
		vertices = append(vertices, fr.atlas.vertices(line, x, y, scale)...)
		y += lineStep
	}
	if len(vertices) == 0 {
		return
	}

	fr.shader.Use()
	fr.shader.SetVector4("textColor", color)
	fr.shader.SetMatrix4("projection", &fr.projection[0])
	fr.shader.SetInt("text", 0)

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, fr.atlas.TextureID)
	gl.BindVertexArray(fr.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, fr.vbo)

	// Orphan then fill to avoid GPU stalls on dynamic updates
	size := len(vertices) * 4
	gl.BufferData(gl.ARRAY_BUFFER, size, nil, gl.DYNAMIC_DRAW)
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, size, gl.Ptr(vertices))
	gl.DrawArrays(gl.TRIANGLES, 0, int32(len(vertices)/4))

	gl.BindVertexArray(0)
	gl.Disable(gl.BLEND)
}

// Dispose releases GL objects
func (fr *FontRenderer) Dispose() {
	gl.DeleteVertexArrays(1, &fr.vao)
	gl.DeleteBuffers(1, &fr.vbo)
	gl.DeleteTextures(1, &fr.atlas.TextureID)
	fr.shader.Delete()
}
