package gpu

import (
	"github.com/go-gl/gl/v4.1-core/gl"
)

// GLDevice issues calls to the current OpenGL 4.1 core context.
// gl.Init must have been called on the owning thread.
type GLDevice struct{}

// NewGLDevice creates a device bound to the current context
func NewGLDevice() *GLDevice {
	return &GLDevice{}
}

func (GLDevice) GenVertexArray() uint32 {
	var vao uint32
	gl.GenVertexArrays(1, &vao)
	return vao
}

func (GLDevice) GenBuffer() uint32 {
	var vbo uint32
	gl.GenBuffers(1, &vbo)
	return vbo
}

func (GLDevice) BindVertexArray(vao uint32) {
	gl.BindVertexArray(vao)
}

func (GLDevice) BindBuffer(target, buffer uint32) {
	gl.BindBuffer(target, buffer)
}

func (GLDevice) BufferData(target uint32, data []byte, usage uint32) {
	if len(data) == 0 {
		gl.BufferData(target, 0, nil, usage)
		return
	}
	gl.BufferData(target, len(data), gl.Ptr(data), usage)
}

func (GLDevice) EnableVertexAttribArray(index uint32) {
	gl.EnableVertexAttribArray(index)
}

func (GLDevice) VertexAttribPointer(index uint32, size int32, xtype uint32, normalized bool, stride int32, offset uintptr) {
	gl.VertexAttribPointerWithOffset(index, size, xtype, normalized, stride, offset)
}

func (GLDevice) DeleteVertexArray(vao uint32) {
	gl.DeleteVertexArrays(1, &vao)
}

func (GLDevice) DeleteBuffer(buffer uint32) {
	gl.DeleteBuffers(1, &buffer)
}
