package opengl

import (
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

const vec3Size = 3 * 4

// Mesh is an indexed triangle mesh: positions in one VBO, indices in an EBO.
// Colour comes from the uColor uniform so parts can share the cube mesh.
type Mesh struct {
	vao, vbo, ebo uint32
	vertexCount   int
	indexCount    int32
}

// NewMesh uploads positions and indices. usage is gl.STATIC_DRAW or
// gl.DYNAMIC_DRAW for meshes updated with UpdatePositions.
func NewMesh(positions []mgl32.Vec3, indices []uint32, usage uint32) *Mesh {
	m := &Mesh{
		vertexCount: len(positions),
		indexCount:  int32(len(indices)),
	}

	gl.GenVertexArrays(1, &m.vao)
	gl.GenBuffers(1, &m.vbo)
	gl.GenBuffers(1, &m.ebo)

	gl.BindVertexArray(m.vao)

	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(positions)*vec3Size, gl.Ptr(positions), usage)

	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, gl.Ptr(indices), gl.STATIC_DRAW)

	// Position attribute (3 floats)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, vec3Size, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(0)

	gl.BindVertexArray(0)
	return m
}

// UpdatePositions rewrites the vertex buffer in place. The vertex count must not change.
func (m *Mesh) UpdatePositions(positions []mgl32.Vec3) {
	if len(positions) != m.vertexCount || len(positions) == 0 {
		return
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(positions)*vec3Size, gl.Ptr(positions))
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
}

// Draw issues the indexed draw call with whatever program is current
func (m *Mesh) Draw() {
	gl.BindVertexArray(m.vao)
	gl.DrawElements(gl.TRIANGLES, m.indexCount, gl.UNSIGNED_INT, gl.PtrOffset(0))
	gl.BindVertexArray(0)
}

// Delete frees the GL objects
func (m *Mesh) Delete() {
	if m.vao != 0 {
		gl.DeleteVertexArrays(1, &m.vao)
		gl.DeleteBuffers(1, &m.vbo)
		gl.DeleteBuffers(1, &m.ebo)
		m.vao, m.vbo, m.ebo = 0, 0, 0
	}
}
