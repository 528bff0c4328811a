package fractal

import (
	"context"
	"image"
	"image/color"
	"runtime"
	"sync"

	"github.com/go-gl/mathgl/mgl32"
)

// rows per unit of work handed to a worker.
const chunkSize = 16

type Config struct {
	Viewport            Viewport
	MaxIteration        int
	EscapeRadiusSquared float32
	Palette             Palette
	Interior            color.RGBA

	// Workers bounds the number of goroutines used by Generate.
	// Values below 1 generate on the calling goroutine.
	Workers int
}

func DefaultConfig() Config {
	return Config{
		Viewport:            DefaultViewport,
		MaxIteration:        400,
		EscapeRadiusSquared: 4,
		Palette:             DefaultPalette,
		Interior:            Interior,
		Workers:             runtime.NumCPU(),
	}
}

func (c Config) Validate() error {
	if err := c.Viewport.Validate(); err != nil {
		return err
	}
	if c.MaxIteration < 1 {
		return domainErrorf("config", "max iteration %v must be at least 1", c.MaxIteration)
	}
	if c.EscapeRadiusSquared <= 0 {
		return domainErrorf("config", "escape radius squared %v must be positive", c.EscapeRadiusSquared)
	}
	if len(c.Palette) == 0 {
		return domainErrorf("config", "palette is empty")
	}
	return nil
}

// Generator renders the Mandelbrot set with escape-time colouring.
// It holds no mutable state and is safe for concurrent use.
type Generator struct {
	config Config
}

func New(config Config) (*Generator, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	config.Palette = config.Palette.clone()
	return &Generator{
		config: config,
	}, nil
}

func (g *Generator) Config() Config {
	c := g.config
	c.Palette = c.Palette.clone()
	return c
}

// Iterate returns the number of iterations of z = z² + c, starting from z = 0,
// performed before |z|² exceeds the escape bound, capped at MaxIteration.
func (g *Generator) Iterate(c mgl32.Vec2) int {
	var x, y, x2, y2 float32
	iteration := 0

	for x2+y2 <= g.config.EscapeRadiusSquared && iteration < g.config.MaxIteration {
		y = 2*x*y + c[1]
		x = x2 - y2 + c[0]
		x2 = x * x
		y2 = y * y
		iteration++
	}

	return iteration
}

func (g *Generator) Colour(iteration int) color.RGBA {
	if iteration >= g.config.MaxIteration {
		return g.config.Interior
	}
	return g.config.Palette[iteration%len(g.config.Palette)]
}

// At returns the colour of pixel (x, y) in a width*height image.
func (g *Generator) At(x, y, width, height int) (color.RGBA, error) {
	c, err := g.config.Viewport.Map(x, y, width, height)
	if err != nil {
		return color.RGBA{}, err
	}

	return g.Colour(g.Iterate(c)), nil
}

// Generate renders a complete width*height image.
// Either the whole image is returned or an error; never a partial image.
func (g *Generator) Generate(ctx context.Context, width, height int) (*image.RGBA, error) {
	if width <= 0 || height <= 0 {
		return nil, domainErrorf("generate", "image size %vx%v has no pixels", width, height)
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))

	if g.config.Workers < 1 {
		g.fillRows(ctx, img, 0, height)
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		return img, nil
	}

	sem := make(chan struct{}, g.config.Workers)
	var wg sync.WaitGroup

	for chunkMin := 0; chunkMin < height; chunkMin += chunkSize {
		chunkMax := chunkMin + chunkSize
		if chunkMax > height {
			chunkMax = height
		}

		select {
		case sem <- struct{}{}:
		case <-ctx.Done():
		}
		if ctx.Err() != nil {
			break
		}

		wg.Add(1)
		go func(chunkMin, chunkMax int) {
			defer wg.Done()
			defer func() { <-sem }()
			g.fillRows(ctx, img, chunkMin, chunkMax)
		}(chunkMin, chunkMax)
	}

	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return img, nil
}

func (g *Generator) fillRows(ctx context.Context, img *image.RGBA, minY, maxY int) {
	width, height := img.Rect.Dx(), img.Rect.Dy()

	for y := minY; y < maxY; y++ {
		if ctx.Err() != nil {
			return
		}

		i := img.PixOffset(0, y)
		for x := 0; x < width; x++ {
			c := g.Colour(g.Iterate(g.config.Viewport.sample(x, y, width, height)))
			img.Pix[i+0] = c.R
			img.Pix[i+1] = c.G
			img.Pix[i+2] = c.B
			img.Pix[i+3] = c.A
			i += 4
		}
	}
}
