package programs

import (
	_ "embed"
	"errors"
	"fmt"
	"image"
	"sort"
)

var (
	ErrNoCPUImplementation = errors.New("program does not have a CPU implementation")
	ErrUnknownProgram      = errors.New("unknown program")
)

const Default = "pixelizer"

//go:embed default.vert
var defaultVertexShader string

var programs = make(map[string]Program)

func Register(p Program) {
	programs[p.Name] = p
}

func Get(name string) (Program, error) {
	p, ok := programs[name]
	if !ok {
		return Program{}, fmt.Errorf("%w %q", ErrUnknownProgram, name)
	}
	return p, nil
}

// Names lists the registered programs in alphabetical order.
func Names() []string {
	names := make([]string, 0, len(programs))
	for name := range programs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// FilterFunc is the CPU rendition of a program's fragment shader.
type FilterFunc func(src image.Image, uniforms Uniforms) image.Image

type Program struct {
	Name           string
	VertexShader   string
	FragmentShader string
	Filter         FilterFunc
}

// Apply runs the program over src on the CPU, producing an image of
// uniforms.RenderSize.
func (p *Program) Apply(src image.Image, uniforms Uniforms) (image.Image, error) {
	if p.Filter == nil {
		return nil, ErrNoCPUImplementation
	}
	if src.Bounds().Empty() {
		return nil, fmt.Errorf("%v: source image is empty", p.Name)
	}
	if uniforms.RenderSize[0] < 1 || uniforms.RenderSize[1] < 1 {
		return nil, fmt.Errorf("%v: render size %v has no pixels", p.Name, uniforms.RenderSize)
	}

	return p.Filter(src, uniforms), nil
}
