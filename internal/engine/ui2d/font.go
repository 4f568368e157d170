package ui2d

import (
	"fmt"
	"image"
	"image/color"

	"github.com/go-gl/gl/v4.1-core/gl"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Atlas layout: printable ASCII in a 16-column grid of fixed cells.
const (
	firstGlyph   = ' '
	lastGlyph    = '~'
	atlasCols    = 16
	glyphCount   = lastGlyph - firstGlyph + 1
	atlasRows    = (glyphCount + atlasCols - 1) / atlasCols
	fallbackRune = '?'
)

// Font is a monospaced bitmap font backed by a GL texture atlas.
type Font struct {
	atlas   *image.RGBA
	glyphW  int
	glyphH  int
	texture uint32
}

// NewFont rasterizes the basic 7x13 face into an atlas and uploads it. A
// GL context must be current.
func NewFont() (*Font, error) {
	f := buildFont(basicfont.Face7x13)

	gl.GenTextures(1, &f.texture)
	gl.BindTexture(gl.TEXTURE_2D, f.texture)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)

	b := f.atlas.Bounds()
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, int32(b.Dx()), int32(b.Dy()), 0,
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(f.atlas.Pix))
	gl.BindTexture(gl.TEXTURE_2D, 0)

	if code := gl.GetError(); code != gl.NO_ERROR {
		f.Close()
		return nil, fmt.Errorf("upload font atlas: gl error 0x%x", code)
	}
	return f, nil
}

// buildFont draws every atlas glyph in white with coverage in alpha.
func buildFont(face *basicfont.Face) *Font {
	f := &Font{
		glyphW: face.Advance,
		glyphH: face.Height,
	}
	f.atlas = image.NewRGBA(image.Rect(0, 0, atlasCols*f.glyphW, atlasRows*f.glyphH))

	d := &font.Drawer{
		Dst:  f.atlas,
		Src:  image.NewUniform(color.White),
		Face: face,
	}
	for i := 0; i < glyphCount; i++ {
		x := (i % atlasCols) * f.glyphW
		y := (i / atlasCols) * f.glyphH
		d.Dot = fixed.P(x, y+face.Ascent)
		d.DrawString(string(rune(firstGlyph + i)))
	}
	return f
}

// GlyphSize returns the cell size in pixels.
func (f *Font) GlyphSize() (int, int) {
	return f.glyphW, f.glyphH
}

// TextureID returns the atlas texture.
func (f *Font) TextureID() uint32 {
	return f.texture
}

// GetGlyphUV returns the atlas coordinates of r. Runes outside the atlas
// map to '?'.
func (f *Font) GetGlyphUV(r rune) (u0, v0, u1, v1 float32) {
	if r < firstGlyph || r > lastGlyph {
		r = fallbackRune
	}
	i := int(r - firstGlyph)
	b := f.atlas.Bounds()
	w, h := float32(b.Dx()), float32(b.Dy())

	x := float32((i % atlasCols) * f.glyphW)
	y := float32((i / atlasCols) * f.glyphH)
	return x / w, y / h, (x + float32(f.glyphW)) / w, (y + float32(f.glyphH)) / h
}

// MeasureText returns the size of text at scale, honouring newlines.
func (f *Font) MeasureText(text string, scale float32) (float32, float32) {
	if text == "" {
		return 0, 0
	}
	lines, widest, cur := 1, 0, 0
	for _, r := range text {
		if r == '\n' {
			lines++
			cur = 0
			continue
		}
		cur++
		if cur > widest {
			widest = cur
		}
	}
	return float32(widest*f.glyphW) * scale, float32(lines*f.glyphH) * scale
}

// Close deletes the atlas texture.
func (f *Font) Close() {
	if f.texture != 0 {
		gl.DeleteTextures(1, &f.texture)
		f.texture = 0
	}
}
