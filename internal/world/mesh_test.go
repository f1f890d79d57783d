package world

import (
	"math/rand"
	"testing"

	"voxelchunk/internal/meshing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func singleCubeChunk(x, y, z int) *Chunk {
	c := NewEmptyChunk()
	c.Fill(NewCube(MaterialDirt, false))
	c.Set(x, y, z, DefaultCube())
	return c
}

func randomChunk(rng *rand.Rand, density float64) *Chunk {
	cubes := make([]Cube, ChunkVolume)
	for i := range cubes {
		m := MaterialDirt
		if rng.Intn(2) == 0 {
			m = MaterialStone
		}
		cubes[i] = NewCube(m, rng.Float64() < density)
	}
	c := NewEmptyChunk()
	if err := c.Populate(cubes); err != nil {
		panic(err)
	}
	return c
}

func TestSingleCubeMesh(t *testing.T) {
	mesh := singleCubeChunk(0, 0, 0).BuildMesh()
	require.Len(t, mesh.Vertices, 24)
	require.Len(t, mesh.Indices, 36)
	require.NoError(t, mesh.Validate())

	normals := make(map[mgl32.Vec3]int)
	for _, v := range mesh.Vertices {
		normals[v.Normal]++
		assert.Equal(t, CubeColor, v.Color)
	}
	assert.Len(t, normals, 6)
	for n, count := range normals {
		assert.Equal(t, 4, count, "normal %v", n)
	}
}

func TestSingleCubeCorners(t *testing.T) {
	mesh := singleCubeChunk(0, 0, 0).BuildMesh()
	// front face comes first
	assert.Equal(t, mgl32.Vec3{-1, -1, 1}, mesh.Vertices[0].Position)
	assert.Equal(t, mgl32.Vec3{1, -1, 1}, mesh.Vertices[1].Position)
	assert.Equal(t, mgl32.Vec3{1, 1, 1}, mesh.Vertices[2].Position)
	assert.Equal(t, mgl32.Vec3{-1, 1, 1}, mesh.Vertices[3].Position)
	assert.Equal(t, []uint32{0, 1, 2, 0, 2, 3}, mesh.Indices[:6])

	for _, v := range mesh.Vertices {
		for k := 0; k < 3; k++ {
			assert.Equal(t, float32(1), abs32(v.Position[k]))
		}
	}
}

func TestCubePositionFollowsIndex(t *testing.T) {
	mesh := singleCubeChunk(5, 9, 14).BuildMesh()
	var min, max mgl32.Vec3
	for k := 0; k < 3; k++ {
		min[k], max[k] = mesh.Vertices[0].Position[k], mesh.Vertices[0].Position[k]
	}
	for _, v := range mesh.Vertices {
		for k := 0; k < 3; k++ {
			min[k] = min32(min[k], v.Position[k])
			max[k] = max32(max[k], v.Position[k])
		}
	}
	assert.Equal(t, mgl32.Vec3{4, 8, 13}, min)
	assert.Equal(t, mgl32.Vec3{6, 10, 15}, max)
}

func TestInactiveChunkProducesEmptyMesh(t *testing.T) {
	c := NewEmptyChunk()
	c.Fill(NewCube(MaterialStone, false))
	mesh := c.BuildMesh()
	assert.True(t, mesh.Empty())
}

func TestMeshSizeScalesWithActiveCubes(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for _, density := range []float64{0, 0.01, 0.3, 1} {
		c := randomChunk(rng, density)
		mesh := c.BuildMesh()
		active := c.ActiveCount()
		assert.Equal(t, VerticesPerCube*active, mesh.VertexCount(), "density %v", density)
		assert.Equal(t, IndicesPerCube*active, mesh.IndexCount(), "density %v", density)
		require.NoError(t, mesh.Validate())
	}
}

func TestEveryIndexReferencesEarlierVertex(t *testing.T) {
	mesh := &meshing.Mesh{}
	for _, i := range []int{0, 17, 300, 4095} {
		EmitCube(mesh, i, DefaultCube())
		for _, idx := range mesh.Indices {
			require.Less(t, int(idx), len(mesh.Vertices))
		}
	}
}

func TestFaceTriangles(t *testing.T) {
	mesh := singleCubeChunk(3, 2, 1).BuildMesh()
	for fi, f := range Faces {
		tri1 := mesh.Indices[fi*6 : fi*6+3]
		tri2 := mesh.Indices[fi*6+3 : fi*6+6]

		for _, tri := range [][]uint32{tri1, tri2} {
			assert.NotEqual(t, tri[0], tri[1], "%s", f)
			assert.NotEqual(t, tri[1], tri[2], "%s", f)
			assert.NotEqual(t, tri[0], tri[2], "%s", f)
		}

		shared := 0
		for _, a := range tri1 {
			for _, b := range tri2 {
				if a == b {
					shared++
				}
			}
		}
		assert.Equal(t, 2, shared, "%s triangles must share exactly one edge", f)
	}
}

func TestWindingIsCounterClockwiseFromOutside(t *testing.T) {
	mesh := singleCubeChunk(8, 8, 8).BuildMesh()
	for tri := 0; tri < len(mesh.Indices); tri += 3 {
		a := mesh.Vertices[mesh.Indices[tri]]
		b := mesh.Vertices[mesh.Indices[tri+1]]
		c := mesh.Vertices[mesh.Indices[tri+2]]

		n := b.Position.Sub(a.Position).Cross(c.Position.Sub(a.Position)).Normalize()
		assert.True(t, n.ApproxEqual(a.Normal), "triangle %d: face normal %v, vertex normal %v", tri/3, n, a.Normal)
	}
}

func TestFaceNormals(t *testing.T) {
	for _, f := range Faces {
		n := f.Normal()
		assert.InDelta(t, 1, n.Len(), 1e-6, "%s", f)
	}
	assert.Equal(t, mgl32.Vec3{0, 0, 1}, FaceFront.Normal())
	assert.Equal(t, mgl32.Vec3{0, -1, 0}, FaceBottom.Normal())
	assert.Equal(t, "left", FaceLeft.String())
}

func BenchmarkBuildMesh_Full(b *testing.B) {
	c := NewChunk()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = c.BuildMesh()
	}
}

func BenchmarkBuildMesh_Sparse(b *testing.B) {
	c := randomChunk(rand.New(rand.NewSource(1)), 0.1)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = c.BuildMesh()
	}
}

func abs32(f float32) float32 {
	if f < 0 {
		return -f
	}
	return f
}

func min32(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func max32(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}
