package chunks

import (
	_ "embed"

	"voxelchunk/internal/config"
	"voxelchunk/internal/graphics"
	"voxelchunk/internal/graphics/gpu"
	renderer "voxelchunk/internal/graphics/renderer"
	"voxelchunk/internal/logger"
	"voxelchunk/internal/profiling"
	"voxelchunk/internal/world"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

var (
	//go:embed shaders/chunk.vert
	chunkVertShader string
	//go:embed shaders/chunk.frag
	chunkFragShader string
)

type entry struct {
	chunk  *world.Chunk
	origin mgl32.Vec3
	draw   world.DrawInfo
	ready  bool
}

// bounds returns the world-space box covered by every cube the chunk can emit.
func (e *entry) bounds() (mgl32.Vec3, mgl32.Vec3) {
	r := world.CubeRenderSize + frustumMargin
	hi := float32(world.ChunkSize-1) + r
	return e.origin.Sub(mgl32.Vec3{r, r, r}), e.origin.Add(mgl32.Vec3{hi, hi, hi})
}

// Chunks uploads dirty chunks and draws them with indexed triangles
type Chunks struct {
	device  gpu.Device
	shader  *graphics.Shader
	entries []*entry

	lastVisible int
}

// NewChunks creates the renderable. device performs the buffer uploads.
func NewChunks(device gpu.Device) *Chunks {
	return &Chunks{device: device}
}

// Add registers a chunk drawn with its grid origin at origin
func (r *Chunks) Add(c *world.Chunk, origin mgl32.Vec3) {
	r.entries = append(r.entries, &entry{chunk: c, origin: origin})
}

// Init compiles the chunk shader
func (r *Chunks) Init() error {
	var err error
	r.shader, err = graphics.NewShaderFromSource(chunkVertShader, chunkFragShader)
	return err
}

// syncBuffers re-renders chunks that changed or were never uploaded and
// returns how many uploads succeeded. A failed chunk is retried next frame.
func (r *Chunks) syncBuffers() int {
	defer profiling.Track("chunks.sync")()
	uploaded := 0
	for _, e := range r.entries {
		if e.ready && !e.chunk.IsDirty() {
			continue
		}
		info, err := e.chunk.Render(r.device)
		if err != nil {
			e.ready = false
			logger.Log.Error("chunk render failed",
				zap.Float32("x", e.origin.X()),
				zap.Float32("y", e.origin.Y()),
				zap.Float32("z", e.origin.Z()),
				zap.Error(err))
			continue
		}
		e.draw = info
		e.ready = true
		uploaded++
	}
	return uploaded
}

// visible returns the ready entries whose bounds intersect the view frustum
func (r *Chunks) visible(view, proj mgl32.Mat4) []*entry {
	planes := extractFrustumPlanes(proj.Mul4(view))
	out := make([]*entry, 0, len(r.entries))
	for _, e := range r.entries {
		if !e.ready || e.draw.IndexCount == 0 {
			continue
		}
		min, max := e.bounds()
		if aabbIntersectsFrustum(min, max, planes) {
			out = append(out, e)
		}
	}
	return out
}

// Render uploads pending chunks and draws the visible ones
func (r *Chunks) Render(ctx renderer.RenderContext) {
	r.syncBuffers()

	if config.GetWireframe() {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
		defer gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
	}

	defer profiling.Track("chunks.draw")()
	visible := r.visible(ctx.View, ctx.Proj)
	r.lastVisible = len(visible)
	if len(visible) == 0 {
		return
	}

	r.shader.Use()
	r.shader.SetMatrix4("proj", &ctx.Proj[0])
	r.shader.SetMatrix4("view", &ctx.View[0])
	light := mgl32.Vec3{0.3, 1.0, 0.5}.Normalize()
	r.shader.SetVector3("lightDir", light.X(), light.Y(), light.Z())
	r.shader.SetFloat("ambient", 0.35)

	for _, e := range visible {
		model := mgl32.Translate3D(e.origin.X(), e.origin.Y(), e.origin.Z())
		r.shader.SetMatrix4("model", &model[0])
		gl.BindVertexArray(e.draw.VertexArray)
		gl.DrawElements(gl.TRIANGLES, e.draw.IndexCount, gl.UNSIGNED_INT, gl.PtrOffset(0))
	}
	gl.BindVertexArray(0)
}

// LastVisible returns how many chunks were drawn in the previous frame
func (r *Chunks) LastVisible() int {
	return r.lastVisible
}

// Dispose releases chunk buffers and the shader
func (r *Chunks) Dispose() {
	for _, e := range r.entries {
		e.chunk.Dispose(r.device)
		e.ready = false
	}
	if r.shader != nil {
		r.shader.Delete()
	}
}

func (r *Chunks) SetViewport(width, height int) {}
