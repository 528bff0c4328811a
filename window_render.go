package main

import (
	"fmt"
	"reflect"
	"runtime"
	"strings"
	"unsafe"

	"github.com/go-gl/gl/v4.6-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stewi1014/pixelbrot/programs"
)

// Renderer draws the fractal texture through a shader program onto the
// current framebuffer. It must only be used from the thread owning the GL context.
type Renderer struct {
	vao              uint32
	vbo              uint32
	program          uint32
	vertexAttrib     uint32
	uniformLocations map[string]int32
}

func glDebugMessage(
	source,
	gltype,
	id,
	severity uint32,
	length int32,
	message string,
	user unsafe.Pointer,
) {
	sourceStr := "unknownSource"
	switch source {
	case gl.DEBUG_SOURCE_API:
		sourceStr = "api"
	case gl.DEBUG_SOURCE_APPLICATION:
		sourceStr = "application"
	case gl.DEBUG_SOURCE_OTHER:
		sourceStr = "other"
	case gl.DEBUG_SOURCE_SHADER_COMPILER:
		sourceStr = "shaderCompiler"
	case gl.DEBUG_SOURCE_THIRD_PARTY:
		sourceStr = "thirdParty"
	case gl.DEBUG_SOURCE_WINDOW_SYSTEM:
		sourceStr = "windowSystem"
	}

	typeStr := "unknownType"
	switch gltype {
	case gl.DEBUG_TYPE_ERROR:
		typeStr = "error"
	case gl.DEBUG_TYPE_DEPRECATED_BEHAVIOR:
		typeStr = "depreciatedBehavior"
	case gl.DEBUG_TYPE_MARKER:
		typeStr = "marker"
	case gl.DEBUG_TYPE_OTHER:
		typeStr = "other"
	case gl.DEBUG_TYPE_PERFORMANCE:
		typeStr = "performance"
	case gl.DEBUG_TYPE_PORTABILITY:
		typeStr = "portability"
	case gl.DEBUG_TYPE_UNDEFINED_BEHAVIOR:
		typeStr = "undefinedBehavior"
	}

	msg := fmt.Sprintf("%v: %v; %v", sourceStr, typeStr, message)
	switch severity {
	case gl.DEBUG_SEVERITY_HIGH:
		renderLogger.Error(msg)
	case gl.DEBUG_SEVERITY_MEDIUM:
		renderLogger.Warning(msg)
	case gl.DEBUG_SEVERITY_LOW:
		renderLogger.Info(msg)
	default:
		renderLogger.Debug(msg)
	}
}

// NewRenderer initialises GL for the current context and loads program.
func NewRenderer(program programs.Program, debug bool) (*Renderer, error) {
	err := gl.Init()
	if err != nil {
		return nil, fmt.Errorf("gl.Init failed: %w", err)
	}
	renderLogger.Info(fmt.Sprintf("OpenGL version %v", gl.GoStr(gl.GetString(gl.VERSION))))

	if debug {
		gl.DebugMessageCallback(glDebugMessage, nil)
		gl.Enable(gl.DEBUG_OUTPUT)
	}

	// one triangle covering the whole of clip space
	verticies := []float32{
		-3, -2,
		0, 3,
		3, -2,
	}

	r := &Renderer{}

	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)

	gl.GenBuffers(1, &r.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(verticies)*4, gl.Ptr(verticies), gl.STATIC_DRAW)

	err = r.loadProgram(program)
	if err != nil {
		r.Delete()
		return nil, err
	}

	return r, nil
}

// Draw renders texture stretched over a width*height viewport.
func (r *Renderer) Draw(texture *FractalTexture, uniforms programs.Uniforms, width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
	gl.ClearColor(1, 1, 1, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT)

	gl.UseProgram(r.program)
	texture.Bind(uniforms.Fractal)
	r.loadUniforms(&uniforms)

	gl.BindVertexArray(r.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, 3)
}

func (r *Renderer) Delete() {
	if r.program != 0 {
		gl.DeleteProgram(r.program)
		r.program = 0
	}
	if r.vbo != 0 {
		gl.DeleteBuffers(1, &r.vbo)
		r.vbo = 0
	}
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
		r.vao = 0
	}
}

func (r *Renderer) loadUniforms(uniforms *programs.Uniforms) {
	v := reflect.ValueOf(uniforms).Elem()
	for i := 0; i < v.NumField(); i++ {
		f := v.Field(i)

		ptr := f.Addr().UnsafePointer()
		loc, ok := r.uniformLocations[v.Type().Field(i).Tag.Get("uniform")]
		if !ok || loc < 0 {
			continue
		}

		switch f.Type() {
		case reflect.TypeOf(mgl32.Vec2{}):
			gl.Uniform2fv(loc, 1, (*float32)(ptr))
		case reflect.TypeOf(mgl32.Vec3{}):
			gl.Uniform3fv(loc, 1, (*float32)(ptr))
		case reflect.TypeOf(mgl32.Vec4{}):
			gl.Uniform4fv(loc, 1, (*float32)(ptr))
		case reflect.TypeOf(int32(0)):
			gl.Uniform1iv(loc, 1, (*int32)(ptr))
		case reflect.TypeOf(float32(0)):
			gl.Uniform1fv(loc, 1, (*float32)(ptr))
		default:
			renderLogger.Warning(fmt.Sprintf("unsupported uniform type %v", f.Type()))
		}
	}
}

func (r *Renderer) loadProgram(program programs.Program) error {
	vertexShader, err := compileShader(program.VertexShader+"\x00", gl.VERTEX_SHADER)
	if err != nil {
		return fmt.Errorf("%v: %w", program.Name, err)
	}
	defer gl.DeleteShader(vertexShader)

	fragmentShader, err := compileShader(program.FragmentShader+"\x00", gl.FRAGMENT_SHADER)
	if err != nil {
		return fmt.Errorf("%v: %w", program.Name, err)
	}
	defer gl.DeleteShader(fragmentShader)

	r.program = gl.CreateProgram()
	gl.AttachShader(r.program, vertexShader)
	gl.AttachShader(r.program, fragmentShader)
	gl.BindFragDataLocation(r.program, 0, gl.Str("outputColor\x00"))
	gl.LinkProgram(r.program)

	var status int32
	gl.GetProgramiv(r.program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var l int32
		gl.GetProgramiv(r.program, gl.INFO_LOG_LENGTH, &l)

		log := strings.Repeat("\x00", int(l+1))
		gl.GetProgramInfoLog(r.program, l, nil, gl.Str(log))
		return fmt.Errorf("failed to link program %v: %v", program.Name, log)
	}

	gl.UseProgram(r.program)

	r.uniformLocations = make(map[string]int32)
	t := reflect.TypeOf(programs.Uniforms{})
	for i := 0; i < t.NumField(); i++ {
		name := t.Field(i).Tag.Get("uniform")
		r.uniformLocations[name] = gl.GetUniformLocation(r.program, gl.Str(name+"\x00"))
	}

	r.vertexAttrib = uint32(gl.GetAttribLocation(r.program, gl.Str("vert\x00")))
	gl.EnableVertexAttribArray(r.vertexAttrib)
	gl.VertexAttribPointerWithOffset(r.vertexAttrib, 2, gl.FLOAT, false, 2*4, 0)

	renderLogger.Info(fmt.Sprintf("Loaded program %v", program.Name))
	return nil
}

func compileShader(source string, shaderType uint32) (uint32, error) {
	defer runtime.KeepAlive(source)
	cstring, free := gl.Strs(source)
	defer free()

	shader := gl.CreateShader(shaderType)
	gl.ShaderSource(shader, 1, cstring, nil)
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var l int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &l)

		log := strings.Repeat("\x00", int(l+1))
		gl.GetShaderInfoLog(shader, l, nil, gl.Str(log))
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("shader\n\"\n%v\n\"\nfailed to compile: %v", source, log)
	}

	return shader, nil
}
