package fractal

import (
	"bytes"
	"context"
	"errors"
	"image/color"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func newTestGenerator(t *testing.T, config Config) *Generator {
	t.Helper()
	g, err := New(config)
	if err != nil {
		t.Fatalf("New returned %v", err)
	}
	return g
}

func TestIterateOriginIsInterior(t *testing.T) {
	for _, maxIteration := range []int{1, 2, 400, 1000} {
		config := DefaultConfig()
		config.MaxIteration = maxIteration
		g := newTestGenerator(t, config)

		if got := g.Iterate(mgl32.Vec2{0, 0}); got != maxIteration {
			t.Errorf("Iterate(0) with max %v = %v, want %v", maxIteration, got, maxIteration)
		}
		if got := g.Colour(g.Iterate(mgl32.Vec2{0, 0})); got != Interior {
			t.Errorf("Colour of origin with max %v = %v, want %v", maxIteration, got, Interior)
		}
	}
}

func TestIterateKnownEscapes(t *testing.T) {
	g := newTestGenerator(t, DefaultConfig())

	tests := []struct {
		c    mgl32.Vec2
		want int
	}{
		// |z|² = 9 after the first step
		{mgl32.Vec2{3, 0}, 1},
		// |z|² = 4 after the first step is still bounded
		{mgl32.Vec2{2, 0}, 2},
		{mgl32.Vec2{-2, 0}, 400},
		{mgl32.Vec2{0, 3}, 1},
	}

	for _, test := range tests {
		if got := g.Iterate(test.c); got != test.want {
			t.Errorf("Iterate(%v) = %v, want %v", test.c, got, test.want)
		}
	}
}

func TestAtKnownEscape(t *testing.T) {
	config := DefaultConfig()
	config.Viewport = Viewport{
		Real: Range{3, 4},
		Imag: Range{0, 1},
	}
	g := newTestGenerator(t, config)

	got, err := g.At(0, 0, 1, 1)
	if err != nil {
		t.Fatal(err)
	}
	if got != DefaultPalette[1] {
		t.Errorf("At(0, 0) = %v, want %v", got, DefaultPalette[1])
	}

	img, err := g.Generate(context.Background(), 1, 1)
	if err != nil {
		t.Fatal(err)
	}
	if c := img.RGBAAt(0, 0); c != DefaultPalette[1] {
		t.Errorf("Generate pixel (0, 0) = %v, want %v", c, DefaultPalette[1])
	}
}

func TestColourCycles(t *testing.T) {
	g := newTestGenerator(t, DefaultConfig())

	for k := 0; k < 400; k++ {
		if got, want := g.Colour(k), DefaultPalette[k%16]; got != want {
			t.Fatalf("Colour(%v) = %v, want %v", k, got, want)
		}
	}

	for _, k := range []int{400, 416, 1000} {
		if got := g.Colour(k); got != Interior {
			t.Errorf("Colour(%v) = %v, want interior %v", k, got, Interior)
		}
	}
}

func TestCustomPalette(t *testing.T) {
	red := color.RGBA{R: 255, A: 255}
	blue := color.RGBA{B: 255, A: 255}
	white := color.RGBA{R: 255, G: 255, B: 255, A: 255}

	config := DefaultConfig()
	config.Palette = Palette{red, blue}
	config.Interior = white
	config.MaxIteration = 10
	g := newTestGenerator(t, config)

	// the generator keeps its own copy
	config.Palette[0] = white
	g.Config().Palette[1] = white

	if got := g.Colour(4); got != red {
		t.Errorf("Colour(4) = %v, want %v", got, red)
	}
	if got := g.Colour(5); got != blue {
		t.Errorf("Colour(5) = %v, want %v", got, blue)
	}
	if got := g.Colour(10); got != white {
		t.Errorf("Colour(10) = %v, want %v", got, white)
	}
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"degenerate real", func(c *Config) { c.Viewport.Real = Range{0.5, 0.5} }},
		{"degenerate imag", func(c *Config) { c.Viewport.Imag = Range{-1, -1} }},
		{"no iterations", func(c *Config) { c.MaxIteration = 0 }},
		{"no escape radius", func(c *Config) { c.EscapeRadiusSquared = 0 }},
		{"empty palette", func(c *Config) { c.Palette = nil }},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			config := DefaultConfig()
			test.modify(&config)

			g, err := New(config)
			var domainErr *DomainError
			if !errors.As(err, &domainErr) {
				t.Errorf("New returned %v, want *DomainError", err)
			}
			if g != nil {
				t.Errorf("New returned generator %v alongside error", g)
			}
		})
	}
}

func TestGenerateDeterministic(t *testing.T) {
	config := DefaultConfig()
	config.Workers = 4
	parallel := newTestGenerator(t, config)

	config.Workers = 0
	sequential := newTestGenerator(t, config)

	a, err := parallel.Generate(context.Background(), 120, 80)
	if err != nil {
		t.Fatal(err)
	}
	b, err := parallel.Generate(context.Background(), 120, 80)
	if err != nil {
		t.Fatal(err)
	}
	c, err := sequential.Generate(context.Background(), 120, 80)
	if err != nil {
		t.Fatal(err)
	}

	if !bytes.Equal(a.Pix, b.Pix) {
		t.Error("repeated generation produced different images")
	}
	if !bytes.Equal(a.Pix, c.Pix) {
		t.Error("parallel and sequential generation produced different images")
	}
}

func TestGenerateMatchesAt(t *testing.T) {
	g := newTestGenerator(t, DefaultConfig())
	width, height := 37, 23

	img, err := g.Generate(context.Background(), width, height)
	if err != nil {
		t.Fatal(err)
	}
	if img.Bounds().Dx() != width || img.Bounds().Dy() != height {
		t.Fatalf("Generate bounds = %v, want %vx%v", img.Bounds(), width, height)
	}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			want, err := g.At(x, y, width, height)
			if err != nil {
				t.Fatal(err)
			}
			if got := img.RGBAAt(x, y); got != want {
				t.Fatalf("pixel (%v, %v) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestGenerateResizeAndBack(t *testing.T) {
	g := newTestGenerator(t, DefaultConfig())
	ctx := context.Background()

	original, err := g.Generate(ctx, 64, 48)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := g.Generate(ctx, 100, 30); err != nil {
		t.Fatal(err)
	}
	again, err := g.Generate(ctx, 64, 48)
	if err != nil {
		t.Fatal(err)
	}

	if !bytes.Equal(original.Pix, again.Pix) {
		t.Error("image differs after resizing and resizing back")
	}
}

func TestGenerateErrors(t *testing.T) {
	g := newTestGenerator(t, DefaultConfig())

	for _, size := range [][2]int{{0, 10}, {10, 0}, {-5, -5}} {
		img, err := g.Generate(context.Background(), size[0], size[1])
		var domainErr *DomainError
		if !errors.As(err, &domainErr) {
			t.Errorf("Generate(%v, %v) returned %v, want *DomainError", size[0], size[1], err)
		}
		if img != nil {
			t.Errorf("Generate(%v, %v) returned a partial image", size[0], size[1])
		}
	}
}

func TestGenerateCanceled(t *testing.T) {
	g := newTestGenerator(t, DefaultConfig())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	img, err := g.Generate(ctx, 200, 200)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Generate returned %v, want %v", err, context.Canceled)
	}
	if img != nil {
		t.Error("Generate returned an image after cancellation")
	}
}
