package terrain

import (
	"testing"

	"voxelchunk/internal/world"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeightWithinChunk(t *testing.T) {
	g := New(Params{Seed: 3, Scale: 0.3, BaseHeight: 8, Amplitude: 40, StoneDepth: 2})
	for x := 0; x < world.ChunkSize; x++ {
		for z := 0; z < world.ChunkSize; z++ {
			h := g.Height(x, z)
			assert.GreaterOrEqual(t, h, 1)
			assert.LessOrEqual(t, h, world.ChunkSize)
		}
	}
}

func TestDeterministicForSeed(t *testing.T) {
	a := New(DefaultParams()).Cubes()
	b := New(DefaultParams()).Cubes()
	assert.Equal(t, a, b)
}

func TestPopulateColumns(t *testing.T) {
	g := New(DefaultParams())
	c := world.NewEmptyChunk()
	require.NoError(t, g.Populate(c))
	require.True(t, c.Populated())

	total := 0
	for x := 0; x < world.ChunkSize; x++ {
		for z := 0; z < world.ChunkSize; z++ {
			h := g.Height(x, z)
			total += h
			for y := 0; y < world.ChunkSize; y++ {
				cube := c.Cube(x, y, z)
				assert.Equal(t, y < h, cube.Active, "column (%d,%d) y=%d", x, z, y)
			}
			assert.Equal(t, world.MaterialDirt, c.Cube(x, h-1, z).Material)
			if h > 3 {
				assert.Equal(t, world.MaterialStone, c.Cube(x, 0, z).Material)
			}
		}
	}
	assert.Equal(t, total, c.ActiveCount())

	mesh := c.BuildMesh()
	assert.Equal(t, total*world.VerticesPerCube, mesh.VertexCount())
}
