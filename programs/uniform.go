package programs

import "github.com/go-gl/mathgl/mgl32"

// Uniforms are uploaded to the shader every frame.
// The uniform tag names the GLSL uniform each field is bound to.
type Uniforms struct {
	PixelWidth  float32    `uniform:"pixelWidth"`
	PixelHeight float32    `uniform:"pixelHeight"`
	RenderSize  mgl32.Vec2 `uniform:"renderSize"`

	// Texture unit the fractal is bound to.
	Fractal int32 `uniform:"fractal"`
}
