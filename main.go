package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/stewi1014/pixelbrot/fractal"
	"github.com/stewi1014/pixelbrot/programs"
)

func init() {
	// GLFW and GL calls must come from the main thread.
	runtime.LockOSThread()
}

func main() {
	settings, err := ParseSettings(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		settingsLogger.Error(err.Error())
		os.Exit(2)
	}
	settingsLogger.Debug(settings.String())

	mainContext, mainQuit := context.WithCancelCause(context.Background())

	func() {
		defer CatchPanicToContext(mainQuit)
		mainQuit(run(mainContext, settings))
	}()

	<-mainContext.Done()
	if err := context.Cause(mainContext); err != nil && !errors.Is(err, context.Canceled) {
		mainLogger.Error(err.Error())
		ShowErrorDialog(settings.Title, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, settings Settings) error {
	generator, err := fractal.New(settings.FractalConfig())
	if err != nil {
		return err
	}

	program, err := programs.Get(settings.Program)
	if err != nil {
		return err
	}

	err = glfw.Init()
	if err != nil {
		return fmt.Errorf("glfw.Init failed: %w", err)
	}
	defer glfw.Terminate()

	w, err := NewRenderWindow(ctx, settings, generator, program)
	if err != nil {
		return err
	}
	defer w.Destroy()

	mainLogger.Info("Rendering, press S to save a snapshot or Escape to quit")
	return w.Run(ctx)
}
