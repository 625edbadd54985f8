package overlay

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"boatscene/rendering/hud"
	"boatscene/rendering/opengl/shaders"
)

// StatsOverlay draws the HUD rectangles in the top left corner
type StatsOverlay struct {
	program *shaders.Program
	vao     uint32
	vbo     uint32

	width  float32
	height float32

	stats hud.Stats
}

// NewStatsOverlay creates a stats overlay renderer
func NewStatsOverlay(width, height int) (*StatsOverlay, error) {
	program, err := shaders.NewProgram(shaders.OverlayVertex, shaders.OverlayFragment)
	if err != nil {
		return nil, fmt.Errorf("failed to build overlay shaders: %w", err)
	}

	so := &StatsOverlay{
		program: program,
		width:   float32(width),
		height:  float32(height),
	}

	gl.GenVertexArrays(1, &so.vao)
	gl.GenBuffers(1, &so.vbo)

	gl.BindVertexArray(so.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, so.vbo)

	stride := int32(hud.FloatsPerVertex * 4)

	// Position attribute (2 floats)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, stride, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(0)

	// Color attribute (4 floats)
	gl.VertexAttribPointer(1, 4, gl.FLOAT, false, stride, gl.PtrOffset(2*4))
	gl.EnableVertexAttribArray(1)

	gl.BindVertexArray(0)

	return so, nil
}

// UpdateStats updates the stats to display
func (so *StatsOverlay) UpdateStats(stats hud.Stats) {
	so.stats = stats
}

// Render draws the overlay over whatever is in the framebuffer
func (so *StatsOverlay) Render() {
	vertices := hud.Vertices(hud.Layout(so.stats))
	if len(vertices) == 0 {
		return
	}

	gl.Disable(gl.DEPTH_TEST)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	so.program.Use()
	so.program.SetMat4("projection", mgl32.Ortho2D(0, so.width, so.height, 0))

	gl.BindVertexArray(so.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, so.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, gl.Ptr(vertices), gl.DYNAMIC_DRAW)
	gl.DrawArrays(gl.TRIANGLES, 0, int32(len(vertices)/hud.FloatsPerVertex))

	gl.Enable(gl.DEPTH_TEST)
	gl.Disable(gl.BLEND)
	gl.BindVertexArray(0)
}

// UpdateSize updates viewport size
func (so *StatsOverlay) UpdateSize(width, height int) {
	so.width = float32(width)
	so.height = float32(height)
}

// Release cleans up resources
func (so *StatsOverlay) Release() {
	if so.program != nil {
		so.program.Delete()
	}
	if so.vao != 0 {
		gl.DeleteVertexArrays(1, &so.vao)
	}
	if so.vbo != 0 {
		gl.DeleteBuffers(1, &so.vbo)
	}
}
