package meshing

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/mathgl/mgl32"
)

// Vertex is the interleaved record uploaded to the GPU: position, normal, color.
// Field order and sizes are the buffer layout; do not reorder.
type Vertex struct {
	Position mgl32.Vec3
	Normal   mgl32.Vec3
	Color    mgl32.Vec4
}

// Byte layout of Vertex
const (
	VertexSize     = int(unsafe.Sizeof(Vertex{}))
	PositionOffset = int(unsafe.Offsetof(Vertex{}.Position))
	NormalOffset   = int(unsafe.Offsetof(Vertex{}.Normal))
	ColorOffset    = int(unsafe.Offsetof(Vertex{}.Color))
	IndexSize      = int(unsafe.Sizeof(uint32(0)))
)

// NewVertex creates a vertex
func NewVertex(position, normal mgl32.Vec3, color mgl32.Vec4) Vertex {
	return Vertex{Position: position, Normal: normal, Color: color}
}

// Mesh accumulates vertices and triangle indices. It is append-only.
type Mesh struct {
	Vertices []Vertex
	Indices  []uint32
}

// NewMesh wraps existing vertex and index slices without copying them.
func NewMesh(vertices []Vertex, indices []uint32) *Mesh {
	return &Mesh{Vertices: vertices, Indices: indices}
}

// NewMeshWithCapacity preallocates room for the given number of quads.
func NewMeshWithCapacity(quads int) *Mesh {
	return &Mesh{
		Vertices: make([]Vertex, 0, quads*4),
		Indices:  make([]uint32, 0, quads*6),
	}
}

// PushVertex appends v and returns its index.
func (m *Mesh) PushVertex(v Vertex) uint32 {
	m.Vertices = append(m.Vertices, v)
	return uint32(len(m.Vertices) - 1)
}

// PushTriangle appends three indices in the given order. The order is the
// front-face winding seen by the consumer.
func (m *Mesh) PushTriangle(a, b, c uint32) {
	assertIndices(len(m.Vertices), a, b, c)
	m.Indices = append(m.Indices, a, b, c)
}

// VertexCount returns the number of vertices
func (m *Mesh) VertexCount() int {
	return len(m.Vertices)
}

// IndexCount returns the number of indices, i.e. the element count of a draw call.
func (m *Mesh) IndexCount() int {
	return len(m.Indices)
}

// Empty reports whether the mesh has no geometry
func (m *Mesh) Empty() bool {
	return len(m.Vertices) == 0 && len(m.Indices) == 0
}

// VertexBytes returns the backing memory of Vertices as bytes. The slice aliases
// the mesh and must not outlive it.
func (m *Mesh) VertexBytes() []byte {
	if len(m.Vertices) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(&m.Vertices[0])), len(m.Vertices)*VertexSize)
}

// IndexBytes returns the backing memory of Indices as bytes.
func (m *Mesh) IndexBytes() []byte {
	if len(m.Indices) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(&m.Indices[0])), len(m.Indices)*IndexSize)
}

// Validate checks that indices form whole triangles and that every index
// references an existing vertex.
func (m *Mesh) Validate() error {
	if len(m.Indices)%3 != 0 {
		return fmt.Errorf("index count %d is not a multiple of 3", len(m.Indices))
	}
	n := uint32(len(m.Vertices))
	for i, idx := range m.Indices {
		if idx >= n {
			return fmt.Errorf("index %d at position %d out of range (%d vertices)", idx, i, n)
		}
	}
	return nil
}
