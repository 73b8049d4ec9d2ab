package renderer

import (
	"errors"
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/launchpad/pkg/mesh"
)

// ErrEmptyMesh is returned when uploading a record with no vertices.
var ErrEmptyMesh = errors.New("empty mesh")

// GPUMesh is a mesh record uploaded to one VAO with a buffer per attribute.
type GPUMesh struct {
	vao   uint32
	vbos  [len(Attributes)]uint32
	count int32
}

// UploadMesh validates d and uploads it with STATIC_DRAW buffers.
func UploadMesh(d mesh.Data) (*GPUMesh, error) {
	if err := d.Validate(); err != nil {
		return nil, fmt.Errorf("uploading mesh: %w", err)
	}
	if d.Len() == 0 {
		return nil, ErrEmptyMesh
	}

	m := &GPUMesh{count: int32(d.Len())}
	streams := AttributeStreams(d)

	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)
	gl.GenBuffers(int32(len(m.vbos)), &m.vbos[0])

	for i, attr := range Attributes {
		data := streams[i]
		gl.BindBuffer(gl.ARRAY_BUFFER, m.vbos[i])
		gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, gl.Ptr(data), gl.STATIC_DRAW)
		gl.VertexAttribPointerWithOffset(attr.Location, attr.Components, gl.FLOAT, false, 0, 0)
		gl.EnableVertexAttribArray(attr.Location)
	}

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)
	return m, nil
}

// VertexCount returns the number of uploaded vertices.
func (m *GPUMesh) VertexCount() int {
	return int(m.count)
}

// Draw issues one non-indexed triangle draw.
func (m *GPUMesh) Draw() {
	gl.BindVertexArray(m.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, m.count)
	gl.BindVertexArray(0)
}

// Delete releases the VAO and its buffers.
func (m *GPUMesh) Delete() {
	if m.vao != 0 {
		gl.DeleteVertexArrays(1, &m.vao)
		m.vao = 0
	}
	if m.vbos[0] != 0 {
		gl.DeleteBuffers(int32(len(m.vbos)), &m.vbos[0])
		m.vbos = [len(Attributes)]uint32{}
	}
}
