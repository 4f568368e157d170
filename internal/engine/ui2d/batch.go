package ui2d

import (
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// batch is a growable vertex list drawn as triangles from one VAO/VBO.
type batch struct {
	vao, vbo uint32
	stride   int32 // floats per vertex
	vertices []float32
}

// newBatch creates a batch whose vertex is made of the given attribute
// sizes, bound to locations 0, 1, 2... in order.
func newBatch(sizes ...int32) *batch {
	b := &batch{vertices: make([]float32, 0, 4096)}
	for _, n := range sizes {
		b.stride += n
	}

	gl.GenVertexArrays(1, &b.vao)
	gl.BindVertexArray(b.vao)
	gl.GenBuffers(1, &b.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, b.vbo)

	offset := 0
	for loc, n := range sizes {
		gl.VertexAttribPointerWithOffset(uint32(loc), n, gl.FLOAT, false, b.stride*4, uintptr(offset*4))
		gl.EnableVertexAttribArray(uint32(loc))
		offset += int(n)
	}

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	return b
}

func (b *batch) reset() {
	b.vertices = b.vertices[:0]
}

func (b *batch) empty() bool {
	return len(b.vertices) == 0
}

// draw uploads the vertices and draws them with the bound program.
func (b *batch) draw() {
	if b.empty() {
		return
	}
	gl.BindVertexArray(b.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, b.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(b.vertices)*4, unsafe.Pointer(&b.vertices[0]), gl.STREAM_DRAW)
	gl.DrawArrays(gl.TRIANGLES, 0, int32(len(b.vertices))/b.stride)
}

func (b *batch) delete() {
	if b.vao != 0 {
		gl.DeleteVertexArrays(1, &b.vao)
	}
	if b.vbo != 0 {
		gl.DeleteBuffers(1, &b.vbo)
	}
}
