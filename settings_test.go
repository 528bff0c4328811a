package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stewi1014/pixelbrot/fractal"
	"github.com/stewi1014/pixelbrot/programs"
)

func TestVerifyDefaults(t *testing.T) {
	var s Settings
	if err := s.Verify(); err != nil {
		t.Fatal(err)
	}

	want := Settings{
		Width:         1200,
		Height:        800,
		Title:         "Pixelbrot",
		Program:       programs.Default,
		MaxIteration:  400,
		Viewport:      fractal.DefaultViewport,
		PixelSizeMin:  3,
		PixelSizeMax:  5,
		PixelSizeStep: 0.001,
		SnapshotDir:   ".",
	}
	if s != want {
		t.Errorf("Verify() gave %+v, want %+v", s, want)
	}
}

func TestVerifyRepairsPixelBounds(t *testing.T) {
	s := Settings{PixelSizeMin: 6, PixelSizeMax: 2}
	if err := s.Verify(); err != nil {
		t.Fatal(err)
	}
	if s.PixelSizeMax != 8 {
		t.Errorf("PixelSizeMax = %v, want 8", s.PixelSizeMax)
	}
}

func TestVerifyRejects(t *testing.T) {
	s := Settings{Program: "crt"}
	if err := s.Verify(); !errors.Is(err, programs.ErrUnknownProgram) {
		t.Errorf("Verify() with unknown program returned %v, want %v", err, programs.ErrUnknownProgram)
	}

	s = Settings{Viewport: fractal.Viewport{
		Real: fractal.Range{Min: 1, Max: 1},
		Imag: fractal.Range{Min: -1, Max: 1},
	}}
	var domainErr *fractal.DomainError
	if err := s.Verify(); !errors.As(err, &domainErr) {
		t.Errorf("Verify() with degenerate viewport returned %v, want *fractal.DomainError", err)
	}
}

func TestParseSettings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	err := os.WriteFile(path, []byte(`{
		"Width": 640,
		"Height": 480,
		"MaxIteration": 1000,
		"Program": "passthrough"
	}`), 0o644)
	if err != nil {
		t.Fatal(err)
	}

	s, err := ParseSettings([]string{"-settings", path, "-height", "600", "-debug"})
	if err != nil {
		t.Fatal(err)
	}

	if s.Width != 640 || s.Height != 600 {
		t.Errorf("window = %vx%v, want 640x600", s.Width, s.Height)
	}
	if s.MaxIteration != 1000 {
		t.Errorf("MaxIteration = %v, want 1000", s.MaxIteration)
	}
	if s.Program != "passthrough" {
		t.Errorf("Program = %q, want %q", s.Program, "passthrough")
	}
	if !s.Debug {
		t.Error("Debug = false, want true")
	}

	config := s.FractalConfig()
	if config.MaxIteration != 1000 || config.Viewport != fractal.DefaultViewport {
		t.Errorf("FractalConfig() = %+v", config)
	}
}

func TestParseSettingsMissingFile(t *testing.T) {
	_, err := ParseSettings([]string{"-settings", filepath.Join(t.TempDir(), "missing.json")})
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("ParseSettings returned %v, want %v", err, os.ErrNotExist)
	}
}
