package render

import (
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/samuelyuan/go-tabletop/mesh"
)

const FLOAT_SIZE = 4

// GPUMesh is a mesh uploaded into one vertex array and one vertex buffer
type GPUMesh struct {
	Vao  uint32
	Vbo  uint32
	Mesh *mesh.Mesh
}

func UploadMesh(m *mesh.Mesh) *GPUMesh {
	gpuMesh := &GPUMesh{Mesh: m}
	gl.GenVertexArrays(1, &gpuMesh.Vao)
	gl.BindVertexArray(gpuMesh.Vao)

	vertices := m.Floats()
	gl.GenBuffers(1, &gpuMesh.Vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, gpuMesh.Vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*FLOAT_SIZE, gl.Ptr(vertices), gl.STATIC_DRAW)

	// 3 floats for position, 3 floats for normal, 2 floats for texture UV
	stride := int32(mesh.Stride * FLOAT_SIZE)

	// Position attribute
	gl.VertexAttribPointer(0, mesh.FloatsPerPosition, gl.FLOAT, false, stride, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(0)

	// Normal
	gl.VertexAttribPointer(1, mesh.FloatsPerNormal, gl.FLOAT, false, stride,
		gl.PtrOffset(mesh.FloatsPerPosition*FLOAT_SIZE))
	gl.EnableVertexAttribArray(1)

	// Texture
	gl.VertexAttribPointer(2, mesh.FloatsPerUV, gl.FLOAT, false, stride,
		gl.PtrOffset((mesh.FloatsPerPosition+mesh.FloatsPerNormal)*FLOAT_SIZE))
	gl.EnableVertexAttribArray(2)

	gl.BindVertexArray(0)
	return gpuMesh
}

// Draw issues one draw call for a slice of the vertex stream
func (m *GPUMesh) Draw(r mesh.Range) {
	gl.DrawArrays(gl.TRIANGLES, r.Offset, r.Count)
}

func (m *GPUMesh) Release() {
	if m.Vao != 0 {
		gl.DeleteVertexArrays(1, &m.Vao)
		m.Vao = 0
	}
	if m.Vbo != 0 {
		gl.DeleteBuffers(1, &m.Vbo)
		m.Vbo = 0
	}
}
