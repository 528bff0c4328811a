package fractal

import "github.com/go-gl/mathgl/mgl32"

// Range is a closed interval along one axis.
type Range struct {
	Min, Max float32
}

func (r Range) Degenerate() bool {
	return r.Min == r.Max
}

// Scale affinely maps v from one range onto another.
func Scale(v float32, from, to Range) (float32, error) {
	if from.Degenerate() {
		return 0, domainErrorf("scale", "source range [%v, %v] is degenerate", from.Min, from.Max)
	}

	return scale(v, from, to), nil
}

func scale(v float32, from, to Range) float32 {
	return ((v-from.Min)*(to.Max-to.Min))/(from.Max-from.Min) + to.Min
}

// Viewport is the region of the complex plane sampled onto the pixel grid.
type Viewport struct {
	Real Range
	Imag Range
}

var DefaultViewport = Viewport{
	Real: Range{Min: -2.00, Max: 0.47},
	Imag: Range{Min: -1.12, Max: 1.12},
}

func (v Viewport) Validate() error {
	if v.Real.Degenerate() {
		return domainErrorf("viewport", "real range [%v, %v] is degenerate", v.Real.Min, v.Real.Max)
	}
	if v.Imag.Degenerate() {
		return domainErrorf("viewport", "imaginary range [%v, %v] is degenerate", v.Imag.Min, v.Imag.Max)
	}
	return nil
}

// Map returns the complex sample point for pixel (x, y) of a width*height image
// as (real, imag). Pixel (0, 0) lands exactly on (Real.Min, Imag.Min).
func (v Viewport) Map(x, y, width, height int) (mgl32.Vec2, error) {
	if width <= 0 || height <= 0 {
		return mgl32.Vec2{}, domainErrorf("map", "image size %vx%v has no pixels", width, height)
	}
	if err := v.Validate(); err != nil {
		return mgl32.Vec2{}, err
	}

	return v.sample(x, y, width, height), nil
}

// sample is Map without the checks, for callers that have already validated
// the viewport and image size.
func (v Viewport) sample(x, y, width, height int) mgl32.Vec2 {
	return mgl32.Vec2{
		scale(float32(x), Range{0, float32(width)}, v.Real),
		scale(float32(y), Range{0, float32(height)}, v.Imag),
	}
}
