package shaders

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

var (
	//go:embed default.vert
	DefaultVertex string
	//go:embed default.frag
	DefaultFragment string
	//go:embed overlay.vert
	OverlayVertex string
	//go:embed overlay.frag
	OverlayFragment string
)

// Program is a linked shader program with cached uniform locations.
// When built from files it can be rebuilt in place with Reload.
type Program struct {
	ID uint32

	vertexPath   string
	fragmentPath string
	uniforms     map[string]int32
}

// NewProgram builds a program from GLSL sources
func NewProgram(vertexSource, fragmentSource string) (*Program, error) {
	id, err := buildProgram(vertexSource, fragmentSource)
	if err != nil {
		return nil, err
	}
	return &Program{ID: id, uniforms: make(map[string]int32)}, nil
}

// LoadProgram builds a program from files. An empty path falls back to the
// matching built-in scene shader.
func LoadProgram(vertexPath, fragmentPath string) (*Program, error) {
	vs, fs, err := readSources(vertexPath, fragmentPath)
	if err != nil {
		return nil, err
	}
	p, err := NewProgram(vs, fs)
	if err != nil {
		return nil, fmt.Errorf("failed to build shader program: %w", err)
	}
	p.vertexPath = vertexPath
	p.fragmentPath = fragmentPath
	return p, nil
}

// Reload rebuilds the program from its files. On failure the previous
// program stays in use and the error is returned.
func (p *Program) Reload() error {
	vs, fs, err := readSources(p.vertexPath, p.fragmentPath)
	if err != nil {
		return err
	}
	id, err := buildProgram(vs, fs)
	if err != nil {
		return err
	}
	gl.DeleteProgram(p.ID)
	p.ID = id
	p.uniforms = make(map[string]int32)
	return nil
}

// Paths returns the shader files this program was loaded from
func (p *Program) Paths() []string {
	var paths []string
	if p.vertexPath != "" {
		paths = append(paths, p.vertexPath)
	}
	if p.fragmentPath != "" {
		paths = append(paths, p.fragmentPath)
	}
	return paths
}

// Use makes the program current
func (p *Program) Use() {
	gl.UseProgram(p.ID)
}

// Location returns a uniform location, looking it up once
func (p *Program) Location(name string) int32 {
	if loc, ok := p.uniforms[name]; ok {
		return loc
	}
	loc := gl.GetUniformLocation(p.ID, gl.Str(name+"\x00"))
	if loc < 0 {
		fmt.Printf("WARNING: %s uniform not found in shader!\n", name)
	}
	p.uniforms[name] = loc
	return loc
}

// SetMat4 sets a mat4 uniform on the current program
func (p *Program) SetMat4(name string, m mgl32.Mat4) {
	gl.UniformMatrix4fv(p.Location(name), 1, false, &m[0])
}

// SetVec4 sets a vec4 uniform on the current program
func (p *Program) SetVec4(name string, v mgl32.Vec4) {
	gl.Uniform4fv(p.Location(name), 1, &v[0])
}

// Delete frees the GL program
func (p *Program) Delete() {
	if p.ID != 0 {
		gl.DeleteProgram(p.ID)
		p.ID = 0
	}
}

func readSources(vertexPath, fragmentPath string) (string, string, error) {
	vs, err := readSource(vertexPath, DefaultVertex)
	if err != nil {
		return "", "", err
	}
	fs, err := readSource(fragmentPath, DefaultFragment)
	if err != nil {
		return "", "", err
	}
	return vs, fs, nil
}

func readSource(path, fallback string) (string, error) {
	if path == "" {
		return fallback, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read shader %s: %w", path, err)
	}
	return string(data), nil
}
