package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/stewi1014/pixelbrot/fractal"
	"github.com/stewi1014/pixelbrot/programs"
)

type Settings struct {
	Width  int
	Height int
	Title  string

	Program      string
	MaxIteration int
	Viewport     fractal.Viewport

	// The pixel block size bounces between PixelSizeMin and PixelSizeMax,
	// moving PixelSizeStep every frame.
	PixelSizeMin  float32
	PixelSizeMax  float32
	PixelSizeStep float32

	SnapshotDir string
	Debug       bool
}

// LoadSettings reads settings from a JSON file. An empty path gives the zero
// Settings, which Verify fills with defaults.
func LoadSettings(path string) (Settings, error) {
	var s Settings
	if path == "" {
		return s, nil
	}

	bytes, err := os.ReadFile(path)
	if err != nil {
		return s, fmt.Errorf("unable to read settings: %w", err)
	}

	err = json.Unmarshal(bytes, &s)
	if err != nil {
		return s, fmt.Errorf("unable to parse settings %v: %w", path, err)
	}

	return s, nil
}

// ParseSettings builds settings from command line arguments, layering flags
// over an optional settings file.
func ParseSettings(args []string) (Settings, error) {
	fs := flag.NewFlagSet("pixelbrot", flag.ContinueOnError)
	settingsFile := fs.String("settings", "", "JSON file with settings")
	width := fs.Int("width", 0, "initial window width")
	height := fs.Int("height", 0, "initial window height")
	program := fs.String("program", "", "shader program, one of "+strings.Join(programs.Names(), ", "))
	snapshots := fs.String("snapshots", "", "directory snapshots are saved to")
	debug := fs.Bool("debug", false, "enable OpenGL debug output")

	err := fs.Parse(args)
	if err != nil {
		return Settings{}, err
	}

	s, err := LoadSettings(*settingsFile)
	if err != nil {
		return s, err
	}

	if *width != 0 {
		s.Width = *width
	}
	if *height != 0 {
		s.Height = *height
	}
	if *program != "" {
		s.Program = *program
	}
	if *snapshots != "" {
		s.SnapshotDir = *snapshots
	}
	s.Debug = s.Debug || *debug

	return s, s.Verify()
}

// Verify fills unset values with defaults, repairs values that are out of range
// and rejects settings that cannot be rendered.
func (s *Settings) Verify() error {
	if s.Width <= 0 {
		s.Width = 1200
	}
	if s.Height <= 0 {
		s.Height = 800
	}
	if s.Title == "" {
		s.Title = "Pixelbrot"
	}

	if s.Program == "" {
		s.Program = programs.Default
	}
	if _, err := programs.Get(s.Program); err != nil {
		return err
	}

	if s.MaxIteration <= 0 {
		s.MaxIteration = 400
	}
	if s.Viewport == (fractal.Viewport{}) {
		s.Viewport = fractal.DefaultViewport
	}
	if err := s.Viewport.Validate(); err != nil {
		return err
	}

	if s.PixelSizeMin <= 0 {
		s.PixelSizeMin = 3
	}
	if s.PixelSizeMax == 0 {
		s.PixelSizeMax = 5
	}
	if s.PixelSizeMax <= s.PixelSizeMin {
		settingsLogger.Warning(fmt.Sprintf(
			"PixelSizeMax %v is not above PixelSizeMin %v, using %v",
			s.PixelSizeMax, s.PixelSizeMin, s.PixelSizeMin+2,
		))
		s.PixelSizeMax = s.PixelSizeMin + 2
	}
	if s.PixelSizeStep <= 0 {
		s.PixelSizeStep = 0.001
	}

	if s.SnapshotDir == "" {
		s.SnapshotDir = "."
	}

	return nil
}

func (s *Settings) FractalConfig() fractal.Config {
	config := fractal.DefaultConfig()
	config.Viewport = s.Viewport
	config.MaxIteration = s.MaxIteration
	return config
}

func (s *Settings) String() string {
	output := "\nSettings\n"
	output += fmt.Sprintf("Window: %vx%v %q\n", s.Width, s.Height, s.Title)
	output += fmt.Sprintf("Program: %v\n", s.Program)
	output += fmt.Sprintf("Max Iteration: %v\n", s.MaxIteration)
	output += fmt.Sprintf("Viewport: %v\n", s.Viewport)
	output += fmt.Sprintf("Pixel Size: %v to %v by %v\n", s.PixelSizeMin, s.PixelSizeMax, s.PixelSizeStep)
	output += fmt.Sprintf("Snapshots: %v\n", s.SnapshotDir)
	return output
}
