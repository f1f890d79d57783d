// Package gpu wraps the buffer-object subset of OpenGL that chunk uploads need.
// All calls must happen on the thread that owns the GL context.
package gpu

// Buffer binding targets
const (
	ArrayBuffer        uint32 = 0x8892 // GL_ARRAY_BUFFER
	ElementArrayBuffer uint32 = 0x8893 // GL_ELEMENT_ARRAY_BUFFER
)

// Usage hints
const (
	StaticDraw  uint32 = 0x88E4 // GL_STATIC_DRAW
	DynamicDraw uint32 = 0x88E8 // GL_DYNAMIC_DRAW
)

// Component types
const (
	Float       uint32 = 0x1406 // GL_FLOAT
	UnsignedInt uint32 = 0x1405 // GL_UNSIGNED_INT
)

// Device is the set of GPU calls used to create, fill and release vertex data.
// Gen* calls return 0 when the driver could not allocate an object.
type Device interface {
	GenVertexArray() uint32
	GenBuffer() uint32
	BindVertexArray(vao uint32)
	BindBuffer(target, buffer uint32)
	BufferData(target uint32, data []byte, usage uint32)
	EnableVertexAttribArray(index uint32)
	VertexAttribPointer(index uint32, size int32, xtype uint32, normalized bool, stride int32, offset uintptr)
	DeleteVertexArray(vao uint32)
	DeleteBuffer(buffer uint32)
}
