package main

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"github.com/stewi1014/pixelbrot/programs"
)

// saveSnapshot writes img, as program would draw it with uniforms, to a PNG in dir.
func saveSnapshot(
	dir string,
	img image.Image,
	program programs.Program,
	uniforms programs.Uniforms,
	now time.Time,
) (string, error) {
	out, err := program.Apply(img, uniforms)
	if err != nil {
		return "", err
	}

	name := filepath.Join(dir, fmt.Sprintf("pixelbrot-%v.png", now.Unix()))
	file, err := os.Create(name)
	if err != nil {
		return "", fmt.Errorf("unable to create snapshot: %w", err)
	}

	err = png.Encode(file, out)
	if err != nil {
		file.Close()
		os.Remove(name)
		return "", fmt.Errorf("unable to encode snapshot %v: %w", name, err)
	}

	return name, file.Close()
}
