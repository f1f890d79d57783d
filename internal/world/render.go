package world

import (
	"errors"
	"fmt"

	"voxelchunk/internal/graphics/gpu"
	"voxelchunk/internal/logger"
	"voxelchunk/internal/meshing"
	"voxelchunk/internal/profiling"

	"go.uber.org/zap"
)

// Attribute locations expected by chunk shaders
const (
	AttribPosition uint32 = 0
	AttribNormal   uint32 = 1
	AttribColor    uint32 = 2
)

// VertexLayout describes meshing.Vertex to the GPU
var VertexLayout = gpu.AttribLayout{
	Stride: meshing.VertexSize,
	Attribs: []gpu.Attrib{
		{Location: AttribPosition, Components: 3, Offset: meshing.PositionOffset},
		{Location: AttribNormal, Components: 3, Offset: meshing.NormalOffset},
		{Location: AttribColor, Components: 4, Offset: meshing.ColorOffset},
	},
}

// ErrNotUploaded is returned by DrawInfo before a successful Render
var ErrNotUploaded = errors.New("chunk has no GPU buffers")

// DrawInfo is what a renderer needs to draw an uploaded chunk
// with DrawElements(TRIANGLES, IndexCount, UNSIGNED_INT, 0).
type DrawInfo struct {
	VertexArray uint32
	IndexCount  int32
}

type chunkBuffers struct {
	vao        gpu.VertexArray
	vbo        gpu.Buffer
	ebo        gpu.Buffer
	indexCount int32
}

func (b *chunkBuffers) delete(d gpu.Device) {
	b.vao.Delete(d)
	b.vbo.Delete(d)
	b.ebo.Delete(d)
}

// Render builds the chunk mesh and uploads it into a fresh vertex array,
// replacing any objects from a previous Render. On error the chunk holds no
// GPU objects. It must run on the thread that owns the GL context.
func (c *Chunk) Render(d gpu.Device) (DrawInfo, error) {
	if !c.populated {
		return DrawInfo{}, ErrChunkNotPopulated
	}

	stop := profiling.Track("chunk.buildMesh")
	mesh := c.BuildMesh()
	stop()

	c.Dispose(d)

	stop = profiling.Track("chunk.upload")
	bufs, err := uploadMesh(d, mesh)
	stop()
	if err != nil {
		logger.Log.Warn("chunk upload failed", zap.Error(err))
		return DrawInfo{}, fmt.Errorf("render chunk: %w", err)
	}

	c.buffers = bufs
	c.dirty = false
	logger.Log.Debug("chunk uploaded",
		zap.Uint32("vao", bufs.vao.ID),
		zap.Int("vertices", mesh.VertexCount()),
		zap.Int("indices", mesh.IndexCount()))
	return c.DrawInfo()
}

// DrawInfo returns the draw parameters of the last successful Render.
func (c *Chunk) DrawInfo() (DrawInfo, error) {
	if c.buffers == nil {
		return DrawInfo{}, ErrNotUploaded
	}
	return DrawInfo{VertexArray: c.buffers.vao.ID, IndexCount: c.buffers.indexCount}, nil
}

// Handles returns the vertex array, vertex buffer and index buffer ids.
// ok is false when the chunk has not been uploaded.
func (c *Chunk) Handles() (vao, vbo, ebo uint32, ok bool) {
	if c.buffers == nil {
		return 0, 0, 0, false
	}
	return c.buffers.vao.ID, c.buffers.vbo.ID, c.buffers.ebo.ID, true
}

// Dispose deletes the GPU objects owned by the chunk
func (c *Chunk) Dispose(d gpu.Device) {
	if c.buffers == nil {
		return
	}
	c.buffers.delete(d)
	c.buffers = nil
}

func uploadMesh(d gpu.Device, mesh *meshing.Mesh) (*chunkBuffers, error) {
	vao, err := gpu.NewVertexArray(d)
	if err != nil {
		return nil, err
	}
	vbo, err := gpu.NewBuffer(d, "vertex buffer")
	if err != nil {
		vao.Delete(d)
		return nil, err
	}
	ebo, err := gpu.NewBuffer(d, "index buffer")
	if err != nil {
		vao.Delete(d)
		vbo.Delete(d)
		return nil, err
	}

	vao.Bind(d)
	vbo.Upload(d, gpu.ArrayBuffer, mesh.VertexBytes(), gpu.StaticDraw)
	ebo.Upload(d, gpu.ElementArrayBuffer, mesh.IndexBytes(), gpu.StaticDraw)
	VertexLayout.Apply(d)

	// element buffer binding is vertex array state; only the array buffer is unbound
	gpu.UnbindVertexArray(d)
	d.BindBuffer(gpu.ArrayBuffer, 0)

	return &chunkBuffers{
		vao:        vao,
		vbo:        vbo,
		ebo:        ebo,
		indexCount: int32(mesh.IndexCount()),
	}, nil
}
