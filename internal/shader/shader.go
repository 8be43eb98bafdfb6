// Package shader compiles the engine's GLSL programs and exposes typed
// uniform setters so the rest of the engine never touches raw locations.
package shader

import (
	"fmt"
	"strings"

	gl "github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// Binder is the uniform surface the scene layer draws through. The GL
// Program implements it; tests substitute a recording fake.
type Binder interface {
	Use()
	SetBool(name string, value bool)
	SetInt(name string, value int32)
	SetFloat(name string, value float32)
	SetVec2(name string, value mgl32.Vec2)
	SetVec3(name string, value mgl32.Vec3)
	SetVec4(name string, value mgl32.Vec4)
	SetMat4(name string, value mgl32.Mat4)
	SetSampler(name string, unit int32)
}

// Program is a linked GLSL program with a lazily filled uniform
// location cache.
type Program struct {
	handle    uint32
	locations map[string]int32
}

// New compiles and links a program from vertex and fragment sources.
// Sources need not be NUL-terminated.
func New(vertexSrc, fragmentSrc string) (*Program, error) {
	vert, err := compile(vertexSrc, gl.VERTEX_SHADER)
	if err != nil {
		return nil, fmt.Errorf("vertex shader: %w", err)
	}
	frag, err := compile(fragmentSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vert)
		return nil, fmt.Errorf("fragment shader: %w", err)
	}

	prog := gl.CreateProgram()
	gl.AttachShader(prog, vert)
	gl.AttachShader(prog, frag)
	gl.LinkProgram(prog)
	gl.DeleteShader(vert)
	gl.DeleteShader(frag)

	var status int32
	gl.GetProgramiv(prog, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(prog, gl.INFO_LOG_LENGTH, &logLen)
		infoLog := strings.Repeat("\x00", int(logLen+1))
		gl.GetProgramInfoLog(prog, logLen, nil, gl.Str(infoLog))
		gl.DeleteProgram(prog)
		return nil, fmt.Errorf("link failed: %v", strings.TrimRight(infoLog, "\x00"))
	}

	return &Program{handle: prog, locations: make(map[string]int32)}, nil
}

// NewScene builds the engine's standard Phong program.
func NewScene() (*Program, error) {
	return New(sceneVertexSrc, sceneFragmentSrc)
}

func compile(src string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csrc, free := gl.Strs(src + "\x00")
	gl.ShaderSource(shader, 1, csrc, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLen)
		infoLog := strings.Repeat("\x00", int(logLen+1))
		gl.GetShaderInfoLog(shader, logLen, nil, gl.Str(infoLog))
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("compile failed: %v", strings.TrimRight(infoLog, "\x00"))
	}
	return shader, nil
}

// Use makes the program current.
func (p *Program) Use() {
	gl.UseProgram(p.handle)
}

// Handle exposes the raw program object.
func (p *Program) Handle() uint32 { return p.handle }

// Delete releases the program object.
func (p *Program) Delete() {
	gl.DeleteProgram(p.handle)
	p.handle = 0
}

func (p *Program) location(name string) int32 {
	if loc, ok := p.locations[name]; ok {
		return loc
	}
	loc := gl.GetUniformLocation(p.handle, gl.Str(name+"\x00"))
	p.locations[name] = loc
	return loc
}

func (p *Program) SetBool(name string, value bool) {
	v := int32(0)
	if value {
		v = 1
	}
	gl.Uniform1i(p.location(name), v)
}

func (p *Program) SetInt(name string, value int32) {
	gl.Uniform1i(p.location(name), value)
}

func (p *Program) SetFloat(name string, value float32) {
	gl.Uniform1f(p.location(name), value)
}

func (p *Program) SetVec2(name string, value mgl32.Vec2) {
	gl.Uniform2f(p.location(name), value.X(), value.Y())
}

func (p *Program) SetVec3(name string, value mgl32.Vec3) {
	gl.Uniform3f(p.location(name), value.X(), value.Y(), value.Z())
}

func (p *Program) SetVec4(name string, value mgl32.Vec4) {
	gl.Uniform4f(p.location(name), value.X(), value.Y(), value.Z(), value.W())
}

func (p *Program) SetMat4(name string, value mgl32.Mat4) {
	gl.UniformMatrix4fv(p.location(name), 1, false, &value[0])
}

// SetSampler assigns a texture unit to a sampler uniform.
func (p *Program) SetSampler(name string, unit int32) {
	gl.Uniform1i(p.location(name), unit)
}
