package main

import (
	"image"

	"github.com/go-gl/gl/v4.6-core/gl"
)

// FractalTexture owns the GL texture holding the current pixel buffer.
type FractalTexture struct {
	id uint32
}

// Replace uploads img to a new texture, and only then releases the old one,
// so a half-uploaded buffer is never bound.
func (t *FractalTexture) Replace(img *image.RGBA) {
	var id uint32
	gl.GenTextures(1, &id)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, id)

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)

	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.PixelStorei(gl.UNPACK_ROW_LENGTH, int32(img.Stride/4))
	gl.TexImage2D(
		gl.TEXTURE_2D,
		0,
		gl.RGBA8,
		int32(img.Rect.Dx()),
		int32(img.Rect.Dy()),
		0,
		gl.RGBA,
		gl.UNSIGNED_BYTE,
		gl.Ptr(img.Pix[img.PixOffset(img.Rect.Min.X, img.Rect.Min.Y):]),
	)
	gl.PixelStorei(gl.UNPACK_ROW_LENGTH, 0)

	old := t.id
	t.id = id
	if old != 0 {
		gl.DeleteTextures(1, &old)
	}
}

func (t *FractalTexture) Bind(unit int32) {
	gl.ActiveTexture(gl.TEXTURE0 + uint32(unit))
	gl.BindTexture(gl.TEXTURE_2D, t.id)
}

func (t *FractalTexture) Delete() {
	if t.id != 0 {
		gl.DeleteTextures(1, &t.id)
		t.id = 0
	}
}
