package main

import (
	"context"
	"fmt"
	"image"
	"time"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stewi1014/pixelbrot/animation"
	"github.com/stewi1014/pixelbrot/fractal"
	"github.com/stewi1014/pixelbrot/programs"
)

func NewRenderWindow(
	ctx context.Context,
	settings Settings,
	generator *fractal.Generator,
	program programs.Program,
) (*RenderWindow, error) {
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 6)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.True)
	if settings.Debug {
		glfw.WindowHint(glfw.OpenGLDebugContext, glfw.True)
	}

	window, err := glfw.CreateWindow(
		settings.Width,
		settings.Height,
		settings.Title,
		nil,
		nil,
	)
	if err != nil {
		return nil, fmt.Errorf("glfw.CreateWindow failed: %w", err)
	}

	oscillator, err := animation.NewOscillator(
		settings.PixelSizeMin,
		settings.PixelSizeMax,
		settings.PixelSizeStep,
	)
	if err != nil {
		window.Destroy()
		return nil, err
	}

	w := &RenderWindow{
		Window:      window,
		generator:   generator,
		program:     program,
		oscillator:  oscillator,
		snapshotDir: settings.SnapshotDir,
	}

	w.MakeContextCurrent()
	glfw.SwapInterval(1)

	w.renderer, err = NewRenderer(program, settings.Debug)
	if err != nil {
		window.Destroy()
		return nil, err
	}

	icons, err := windowIcons(ctx, generator)
	if err != nil {
		w.Destroy()
		return nil, err
	}
	w.SetIcon(icons)

	width, height := w.GetFramebufferSize()
	w.resize = newResizeTracker(width, height)
	if width > 0 && height > 0 {
		err = w.regenerate(ctx, width, height)
		if err != nil {
			w.Destroy()
			return nil, err
		}
	}

	w.SetKeyCallback(w.key)

	return w, nil
}

type RenderWindow struct {
	*glfw.Window

	generator  *fractal.Generator
	program    programs.Program
	renderer   *Renderer
	texture    FractalTexture
	oscillator *animation.Oscillator
	resize     resizeTracker

	// image is the pixel buffer currently uploaded to texture.
	// It is never modified once generated.
	image *image.RGBA

	snapshotDir   string
	snapshotQueue bool
}

// Run draws frames until the window is closed or ctx is done.
func (w *RenderWindow) Run(ctx context.Context) error {
	for !w.ShouldClose() {
		if ctx.Err() != nil {
			return context.Cause(ctx)
		}

		glfw.PollEvents()

		width, height := w.GetFramebufferSize()
		if w.resize.Observe(width, height) {
			err := w.regenerate(ctx, width, height)
			if err != nil {
				return err
			}
		}

		// minimized
		if width <= 0 || height <= 0 || w.image == nil {
			glfw.WaitEventsTimeout(0.1)
			continue
		}

		size := w.oscillator.Next()
		uniforms := programs.Uniforms{
			PixelWidth:  size,
			PixelHeight: size,
			RenderSize:  mgl32.Vec2{float32(width), float32(height)},
			Fractal:     0,
		}

		w.renderer.Draw(&w.texture, uniforms, width, height)

		if w.snapshotQueue {
			w.snapshotQueue = false
			w.snapshot(uniforms)
		}

		w.SwapBuffers()
	}

	return nil
}

// Destroy releases the GL resources and the window.
func (w *RenderWindow) Destroy() {
	w.texture.Delete()
	if w.renderer != nil {
		w.renderer.Delete()
	}
	w.Window.Destroy()
}

func (w *RenderWindow) regenerate(ctx context.Context, width, height int) error {
	start := time.Now()
	img, err := w.generator.Generate(ctx, width, height)
	if err != nil {
		return fmt.Errorf("unable to generate %vx%v fractal: %w", width, height, err)
	}

	w.texture.Replace(img)
	w.image = img

	renderLogger.Info(fmt.Sprintf("Generated %vx%v fractal in %v", width, height, time.Since(start)))
	return nil
}

func (w *RenderWindow) key(
	window *glfw.Window,
	key glfw.Key,
	scancode int,
	action glfw.Action,
	mods glfw.ModifierKey,
) {
	if action != glfw.Press {
		return
	}

	switch key {
	case glfw.KeyEscape:
		window.SetShouldClose(true)
	case glfw.KeyS:
		w.snapshotQueue = true
	}
}

func (w *RenderWindow) snapshot(uniforms programs.Uniforms) {
	img := w.image
	go func() {
		name, err := saveSnapshot(w.snapshotDir, img, w.program, uniforms, time.Now())
		if err != nil {
			renderLogger.Error(fmt.Sprintf("Unable to save snapshot: %v", err))
			return
		}
		renderLogger.Info(fmt.Sprintf("Saved snapshot to %v", name))
	}()
}
