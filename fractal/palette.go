package fractal

import "image/color"

// Palette is indexed by iteration count modulo its length.
type Palette []color.RGBA

var DefaultPalette = Palette{
	{R: 66, G: 30, B: 16, A: 255},
	{R: 25, G: 7, B: 26, A: 255},
	{R: 9, G: 1, B: 47, A: 255},
	{R: 4, G: 4, B: 73, A: 255},
	{R: 0, G: 7, B: 100, A: 255},
	{R: 12, G: 44, B: 138, A: 255},
	{R: 24, G: 82, B: 177, A: 255},
	{R: 57, G: 125, B: 209, A: 255},
	{R: 134, G: 181, B: 229, A: 255},
	{R: 211, G: 236, B: 248, A: 255},
	{R: 241, G: 233, B: 191, A: 255},
	{R: 248, G: 201, B: 95, A: 255},
	{R: 255, G: 170, B: 0, A: 255},
	{R: 204, G: 128, B: 0, A: 255},
	{R: 153, G: 87, B: 0, A: 255},
	{R: 106, G: 52, B: 3, A: 255},
}

// Interior is the colour of points that never escape.
var Interior = color.RGBA{R: 0, G: 0, B: 0, A: 255}

func (p Palette) clone() Palette {
	c := make(Palette, len(p))
	copy(c, p)
	return c
}
