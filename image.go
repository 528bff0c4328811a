package main

import (
	"context"
	"image"

	"github.com/stewi1014/pixelbrot/fractal"
	xdraw "golang.org/x/image/draw"
)

var iconSizes = []int{16, 32, 48}

// windowIcons renders the fractal once at a high resolution and scales it
// down to each icon size.
func windowIcons(ctx context.Context, generator *fractal.Generator) ([]image.Image, error) {
	src, err := generator.Generate(ctx, 256, 256)
	if err != nil {
		return nil, err
	}

	icons := make([]image.Image, 0, len(iconSizes))
	for _, size := range iconSizes {
		dst := image.NewRGBA(image.Rect(0, 0, size, size))
		xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
		icons = append(icons, dst)
	}

	return icons, nil
}
