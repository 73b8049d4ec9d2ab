package renderer

import (
	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/launchpad/internal/engine/debug"
)

// LineBuffer is a dynamic vertex buffer for debug lines (position + color).
type LineBuffer struct {
	vao   uint32
	vbo   uint32
	count int32
	size  int
}

// NewLineBuffer allocates an empty line buffer.
func NewLineBuffer() *LineBuffer {
	lb := &LineBuffer{}
	stride := int32(debug.LineVertexFloats * 4)

	gl.GenVertexArrays(1, &lb.vao)
	gl.BindVertexArray(lb.vao)
	gl.GenBuffers(1, &lb.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, lb.vbo)

	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, stride, 3*4)
	gl.EnableVertexAttribArray(1)

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)
	return lb
}

// Update replaces the buffer contents with vs.
func (lb *LineBuffer) Update(vs []debug.LineVertex) {
	lb.count = int32(len(vs))
	if len(vs) == 0 {
		return
	}
	data := debug.PackLines(vs)
	gl.BindBuffer(gl.ARRAY_BUFFER, lb.vbo)
	if len(data) > lb.size {
		gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, gl.Ptr(data), gl.DYNAMIC_DRAW)
		lb.size = len(data)
	} else {
		gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(data)*4, gl.Ptr(data))
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
}

// Draw renders the buffered line list.
func (lb *LineBuffer) Draw() {
	if lb.count == 0 {
		return
	}
	gl.BindVertexArray(lb.vao)
	gl.DrawArrays(gl.LINES, 0, lb.count)
	gl.BindVertexArray(0)
}

// Delete releases the GL objects.
func (lb *LineBuffer) Delete() {
	if lb.vao != 0 {
		gl.DeleteVertexArrays(1, &lb.vao)
		lb.vao = 0
	}
	if lb.vbo != 0 {
		gl.DeleteBuffers(1, &lb.vbo)
		lb.vbo = 0
	}
}
