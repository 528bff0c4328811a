package programs

import (
	_ "embed"
	"image"
	"image/color"
	"math"
)

//go:embed shaders/pixelizer.frag
var pixelizerFragment string

//go:embed shaders/passthrough.frag
var passthroughFragment string

func init() {
	Register(Program{
		Name:           "pixelizer",
		VertexShader:   defaultVertexShader,
		FragmentShader: pixelizerFragment,
		Filter: func(src image.Image, uniforms Uniforms) image.Image {
			return &sampledImage{
				src:    src,
				width:  int(uniforms.RenderSize[0]),
				height: int(uniforms.RenderSize[1]),
				blockW: float64(uniforms.PixelWidth),
				blockH: float64(uniforms.PixelHeight),
			}
		},
	})

	Register(Program{
		Name:           "passthrough",
		VertexShader:   defaultVertexShader,
		FragmentShader: passthroughFragment,
		Filter: func(src image.Image, uniforms Uniforms) image.Image {
			return &sampledImage{
				src:    src,
				width:  int(uniforms.RenderSize[0]),
				height: int(uniforms.RenderSize[1]),
			}
		},
	})
}

// sampledImage mirrors a fragment shader doing a nearest-neighbour texture
// lookup, optionally snapping fragments to a grid of blockW*blockH blocks.
// The snapping is done in render pixels rather than texture coordinates so
// block origins land exactly on texels.
type sampledImage struct {
	src            image.Image
	width, height  int
	blockW, blockH float64
}

func (i *sampledImage) ColorModel() color.Model {
	return i.src.ColorModel()
}

func (i *sampledImage) Bounds() image.Rectangle {
	return image.Rect(0, 0, i.width, i.height)
}

func (i *sampledImage) At(x, y int) color.Color {
	// fragments are sampled at their centre
	fx := float64(x) + 0.5
	fy := float64(y) + 0.5

	if i.blockW > 0 {
		fx = i.blockW * math.Floor(fx/i.blockW)
	}
	if i.blockH > 0 {
		fy = i.blockH * math.Floor(fy/i.blockH)
	}

	b := i.src.Bounds()
	return i.src.At(
		b.Min.X+texel(fx, i.width, b.Dx()),
		b.Min.Y+texel(fy, i.height, b.Dy()),
	)
}

func (i *sampledImage) Opaque() bool {
	return true
}

// texel maps a position in a render of renderSize pixels to a texel index
// of a texture size texels wide.
func texel(pos float64, renderSize, size int) int {
	t := int(math.Floor(pos * float64(size) / float64(renderSize)))
	if t < 0 {
		return 0
	}
	if t >= size {
		return size - 1
	}
	return t
}
